package models

// StatusBucket กลุ่มสถานะที่ dashboard ใช้แสดงผล
type StatusBucket string

const (
	BucketPending     StatusBucket = "pending"
	BucketUnderReview StatusBucket = "under_review"
	BucketApproved    StatusBucket = "approved"
	BucketRejected    StatusBucket = "rejected"
)

// StatisticsSnapshot จำนวนและเปอร์เซ็นต์รายกลุ่มสถานะ (derived — คำนวณใหม่ทุกครั้ง)
type StatisticsSnapshot struct {
	Total       int                      `json:"total"`
	Counts      map[StatusBucket]int     `json:"counts"`
	Percentages map[StatusBucket]float64 `json:"percentages"`
}

// MonthlyTrendPoint จำนวนใบสมัครที่ยื่น/อนุมัติ ในเดือนหนึ่ง
type MonthlyTrendPoint struct {
	Month     string `json:"month" example:"2026-01"`
	Submitted int    `json:"submitted"`
	Approved  int    `json:"approved"`
}
