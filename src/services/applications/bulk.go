package applications

import (
	"Backend-AdmitHub/src/models"
	"log"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplyEach ใช้ transition เดียวกับใบสมัครหลายใบแบบแยกอิสระต่อกัน
// ใบที่ fail ไม่หยุดใบถัดไป และไม่ rollback ใบที่สำเร็จไปแล้ว
func ApplyEach(ids []string, apply func(primitive.ObjectID) error) []models.BulkItemResult {
	results := make([]models.BulkItemResult, 0, len(ids))

	for _, raw := range ids {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			// id ที่ parse ไม่ได้ = ไม่รู้จัก
			results = append(results, models.BulkItemResult{ID: raw, Error: ErrorKind(ErrApplicationNotFound)})
			continue
		}

		if err := apply(id); err != nil {
			results = append(results, models.BulkItemResult{ID: raw, Error: ErrorKind(err)})
			continue
		}
		results = append(results, models.BulkItemResult{ID: raw, Success: true})
	}

	return results
}

// BulkAdvance ใช้ transition intent เดียว (stage + status + remarks) กับใบสมัครทั้ง list
func BulkAdvance(ids []string, target models.ApplicationStage, status models.StageStatus, remarks string) *models.BulkDecisionResult {
	results := ApplyEach(ids, func(id primitive.ObjectID) error {
		_, err := AdvanceApplication(id, target, status, remarks, nil)
		return err
	})

	result := &models.BulkDecisionResult{
		BatchID: uuid.NewString(),
		Total:   len(results),
		Results: results,
	}
	for _, r := range results {
		if r.Success {
			result.Succeeded++
		} else {
			result.Failed++
		}
	}

	log.Printf("✅ Bulk %s/%s batch %s: %d succeeded, %d failed",
		target, status, result.BatchID, result.Succeeded, result.Failed)
	return result
}
