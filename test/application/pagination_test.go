package application

import (
	"testing"

	"Backend-AdmitHub/src/models"
	"Backend-AdmitHub/test"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParams(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Pagination Params Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestNormalizeClampsPageAndLimit", func(t *testing.T) {
		timer := test.NewTestTimer("Normalize Clamps")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Normalize Clamps", Duration: duration, Passed: true})
		}()

		// limit=0 จาก query ต้องไม่ทำให้คำนวณ totalPages หารศูนย์
		params := models.PaginationParams{Page: 0, Limit: 0}
		params.Normalize()
		assert.Equal(t, 1, params.Page)
		assert.Equal(t, 1, params.Limit)

		params = models.PaginationParams{Page: -5, Limit: -10}
		params.Normalize()
		assert.Equal(t, 1, params.Page)
		assert.Equal(t, 1, params.Limit)
		assert.Equal(t, int64(0), params.GetSkip())

		// ค่าที่ใช้ได้อยู่แล้วต้องไม่ถูกแก้
		params = models.PaginationParams{Page: 3, Limit: 25}
		params.Normalize()
		assert.Equal(t, 3, params.Page)
		assert.Equal(t, 25, params.Limit)
		assert.Equal(t, int64(50), params.GetSkip())
	})

	t.Run("TestDefaultPagination", func(t *testing.T) {
		timer := test.NewTestTimer("Default Pagination")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Default Pagination", Duration: duration, Passed: true})
		}()

		params := models.DefaultPagination()
		assert.Equal(t, 1, params.Page)
		assert.Equal(t, 10, params.Limit)
		assert.Equal(t, "submittedAt", params.SortBy)
		assert.Equal(t, "desc", params.Order)
	})
}
