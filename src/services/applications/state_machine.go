package applications

import (
	"Backend-AdmitHub/src/models"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ลำดับขั้นตอนการพิจารณา ห้ามข้ามและห้ามถอยกลับ
var stageOrder = []models.ApplicationStage{
	models.StageSubmitted,
	models.StageDocumentVerification,
	models.StageUnderReview,
	models.StageInterview,
	models.StageFinalDecision,
}

// StageIndex คืนตำแหน่งของ stage ในลำดับ (-1 ถ้าไม่รู้จัก)
func StageIndex(stage models.ApplicationStage) int {
	for i, s := range stageOrder {
		if s == stage {
			return i
		}
	}
	return -1
}

// NextStage คืนขั้นตอนถัดไป (ok = false ถ้าเป็นขั้นตอนสุดท้ายแล้ว)
func NextStage(stage models.ApplicationStage) (models.ApplicationStage, bool) {
	idx := StageIndex(stage)
	if idx < 0 || idx >= len(stageOrder)-1 {
		return "", false
	}
	return stageOrder[idx+1], true
}

// StageRecordOf คืน pointer ไปยัง record ของ stage ที่ระบุ
func StageRecordOf(app *models.Application, stage models.ApplicationStage) *models.StageRecord {
	switch stage {
	case models.StageSubmitted:
		return &app.SubmitStatus
	case models.StageDocumentVerification:
		return &app.DocumentStatus
	case models.StageUnderReview:
		return &app.ReviewStatus
	case models.StageInterview:
		return &app.InterviewStatus
	case models.StageFinalDecision:
		return &app.FinalStatus
	}
	return nil
}

// IsClosed ใบสมัครปิดแล้วเมื่อ final_decision เป็น approved หรือ rejected
func IsClosed(app *models.Application) bool {
	return app.FinalStatus.Status == models.StatusApproved ||
		app.FinalStatus.Status == models.StatusRejected
}

// StagePrecondition สถานะที่ caller เห็นตอนอ่านข้อมูล ใช้เป็น optimistic precondition
// ถ้าค่าที่เก็บไว้ไม่ตรงกับที่ caller เห็น transition จะล้มเหลวด้วย ErrConflict
type StagePrecondition struct {
	Stage  models.ApplicationStage `json:"stage"`
	Status models.StageStatus      `json:"status"`
}

// CheckPrecondition เทียบสถานะที่เก็บไว้จริงกับที่ caller เคยเห็น (pure)
// expected = nil คือไม่ตรวจ, ไม่ตรงกัน = มีคนอื่นแก้ไปก่อนแล้ว → ErrConflict
func CheckPrecondition(app *models.Application, expected *StagePrecondition) error {
	if expected == nil {
		return nil
	}
	record := StageRecordOf(app, expected.Stage)
	if app.Stage != expected.Stage || record == nil || record.Status != expected.Status {
		return fmt.Errorf("%w: expected %s/%s but found %s",
			ErrConflict, expected.Stage, expected.Status, app.Stage)
	}
	return nil
}

// NewApplication สร้างใบสมัครใหม่: submitted ถือว่าเสร็จทันที ขั้นตอนอื่น pending
func NewApplication(applicantID, courseID primitive.ObjectID) *models.Application {
	now := time.Now()
	return &models.Application{
		ID:              primitive.NewObjectID(),
		ApplicantID:     applicantID,
		CourseID:        courseID,
		Stage:           models.StageSubmitted,
		SubmitStatus:    models.StageRecord{Status: models.StatusCompleted, UpdatedAt: &now},
		DocumentStatus:  models.StageRecord{Status: models.StatusPending},
		ReviewStatus:    models.StageRecord{Status: models.StatusPending},
		InterviewStatus: models.StageRecord{Status: models.StatusPending},
		FinalStatus:     models.StageRecord{Status: models.StatusPending},
		SubmittedAt:     now,
	}
}

// statusAllowed เช็คว่า sub-status ใช้ได้กับ stage นั้นหรือไม่
// ขั้นตอนสุดท้ายใช้ pending/approved/rejected, ขั้นตอนอื่นใช้ pending/in_progress/completed
func statusAllowed(stage models.ApplicationStage, status models.StageStatus) bool {
	if stage == models.StageFinalDecision {
		return status == models.StatusPending ||
			status == models.StatusApproved ||
			status == models.StatusRejected
	}
	return status == models.StatusPending ||
		status == models.StatusInProgress ||
		status == models.StatusCompleted
}

// Advance ปรับสถานะใบสมัคร (pure — แก้ไขเฉพาะ struct ที่ส่งเข้ามา ไม่แตะฐานข้อมูล)
//   - ไปได้เฉพาะ stage ปัจจุบันหรือ stage ถัดไปเท่านั้น (ข้ามหรือถอยกลับ = ErrInvalidTransition)
//   - เมื่อ stage เสร็จ (completed/approved/rejected) ปลดล็อก stage ถัดไปเป็น pending
//   - remarks ถูก append เข้า record ของ stage นั้น
func Advance(app *models.Application, target models.ApplicationStage, status models.StageStatus, remarks string) error {
	if IsClosed(app) {
		return fmt.Errorf("%w: final decision already %s", ErrApplicationClosed, app.FinalStatus.Status)
	}

	targetIdx := StageIndex(target)
	if targetIdx < 0 {
		return fmt.Errorf("%w: unknown stage %q", ErrInvalidTransition, target)
	}
	if !statusAllowed(target, status) {
		return fmt.Errorf("%w: status %q not allowed for stage %q", ErrInvalidTransition, status, target)
	}

	currentIdx := StageIndex(app.Stage)
	if targetIdx != currentIdx && targetIdx != currentIdx+1 {
		return fmt.Errorf("%w: cannot move from %q to %q", ErrInvalidTransition, app.Stage, target)
	}

	// ย้ายเข้า stage ถัดไป
	if targetIdx == currentIdx+1 {
		app.Stage = target
	}

	now := time.Now()
	record := StageRecordOf(app, target)
	record.Status = status
	record.UpdatedAt = &now
	if remarks != "" {
		record.Remarks = append(record.Remarks, remarks)
	}

	// ปลดล็อก stage ถัดไปเมื่อ stage นี้เสร็จแล้ว
	if status == models.StatusCompleted {
		if next, ok := NextStage(target); ok {
			nextRecord := StageRecordOf(app, next)
			if nextRecord.Status == "" {
				nextRecord.Status = models.StatusPending
			}
		}
	}

	return nil
}

// Progress เปอร์เซ็นต์ความคืบหน้า = จำนวน stage ที่เสร็จแล้ว / 5 * 100 (ปัดเป็นจำนวนเต็ม)
func Progress(app *models.Application) int {
	resolved := 0
	for _, stage := range stageOrder {
		record := StageRecordOf(app, stage)
		if record.Status == models.StatusCompleted ||
			record.Status == models.StatusApproved ||
			record.Status == models.StatusRejected {
			resolved++
		}
	}
	return int(math.Round(float64(resolved) / float64(len(stageOrder)) * 100))
}
