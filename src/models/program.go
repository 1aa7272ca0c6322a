package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ProgramCategory หมวดหลักสูตร
type ProgramCategory string

const (
	CategoryEngineering ProgramCategory = "Engineering"
	CategoryManagement  ProgramCategory = "Management"
	CategoryScience     ProgramCategory = "Science"
	CategoryArts        ProgramCategory = "Arts"
	CategoryCommerce    ProgramCategory = "Commerce"
)

// Program หลักสูตรใน catalog (read-only สำหรับ recommender)
type Program struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name     *string            `json:"name" bson:"name" example:"Computer Science Engineering"`
	Category ProgramCategory    `json:"category" bson:"category" example:"Engineering"`
	MinScore float64            `json:"minScore" bson:"minScore" example:"75"`
	Seats    *int               `json:"seats,omitempty" bson:"seats,omitempty" example:"120"`
}
