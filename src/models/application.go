package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationStage ขั้นตอนการพิจารณาใบสมัคร (เรียงตามลำดับ ห้ามข้ามหรือถอยกลับ)
type ApplicationStage string

const (
	StageSubmitted            ApplicationStage = "submitted"
	StageDocumentVerification ApplicationStage = "document_verification"
	StageUnderReview          ApplicationStage = "under_review"
	StageInterview            ApplicationStage = "interview"
	StageFinalDecision        ApplicationStage = "final_decision"
)

// StageStatus สถานะย่อยภายในแต่ละขั้นตอน
type StageStatus string

const (
	StatusPending    StageStatus = "pending"
	StatusInProgress StageStatus = "in_progress"
	StatusCompleted  StageStatus = "completed"

	// ใช้ได้เฉพาะขั้นตอนสุดท้าย (final_decision)
	StatusApproved StageStatus = "approved"
	StatusRejected StageStatus = "rejected"
)

// StageRecord สถานะย่อย + หมายเหตุ + เวลาอัปเดตของขั้นตอนหนึ่ง
type StageRecord struct {
	Status    StageStatus `json:"status" bson:"status" example:"pending"`
	Remarks   []string    `json:"remarks,omitempty" bson:"remarks,omitempty"`
	UpdatedAt *time.Time  `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Application ใบสมัครเข้าศึกษา
type Application struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ApplicantID     primitive.ObjectID `json:"applicantId" bson:"applicantId"`
	CourseID        primitive.ObjectID `json:"courseId" bson:"courseId"`
	Stage           ApplicationStage   `json:"stage" bson:"stage" example:"submitted"`
	SubmitStatus    StageRecord        `json:"submitStatus" bson:"submitStatus"`
	DocumentStatus  StageRecord        `json:"documentStatus" bson:"documentStatus"`
	ReviewStatus    StageRecord        `json:"reviewStatus" bson:"reviewStatus"`
	InterviewStatus StageRecord        `json:"interviewStatus" bson:"interviewStatus"`
	FinalStatus     StageRecord        `json:"finalStatus" bson:"finalStatus"`
	SubmittedAt     time.Time          `json:"submittedAt" bson:"submittedAt"`
}

// ApplicationDto ใบสมัครพร้อมเปอร์เซ็นต์ความคืบหน้าสำหรับ dashboard
type ApplicationDto struct {
	Application `bson:",inline"`
	Progress    int `json:"progress" bson:"-" example:"40"`
}

// BulkItemResult ผลลัพธ์รายใบสมัครของ bulk operation
type BulkItemResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty" example:"invalid_transition"`
}

// BulkDecisionResult ผลรวมของ bulk operation หนึ่งครั้ง
type BulkDecisionResult struct {
	BatchID   string           `json:"batchId"`
	Total     int              `json:"total"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Results   []BulkItemResult `json:"results"`
}
