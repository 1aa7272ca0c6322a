package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User บัญชีผู้ใช้ (ผู้สมัครหรือเจ้าหน้าที่)
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"` // ✅ ส่งมาได้จาก frontend, แต่ไม่ส่งกลับ
	Role     string             `bson:"role" json:"role"`            // "Admin" หรือ "Applicant"
	Name     string             `bson:"name" json:"name"`
}

// SuccessResponse ใช้เป็นโครงสร้าง JSON Response ที่ Swagger ใช้
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
