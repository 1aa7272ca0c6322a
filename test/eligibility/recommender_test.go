package eligibility

import (
	"testing"

	"Backend-AdmitHub/src/models"
	"Backend-AdmitHub/src/services/eligibility"
	"Backend-AdmitHub/test"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func catalogFixture() []models.Program {
	return []models.Program{
		{Name: strPtr("Computer Science Engineering"), Category: models.CategoryEngineering, MinScore: 75},
		{Name: strPtr("Business Administration"), Category: models.CategoryManagement, MinScore: 60},
		{Name: strPtr("Physics"), Category: models.CategoryScience, MinScore: 55},
		{Name: strPtr("English Literature"), Category: models.CategoryArts, MinScore: 40},
	}
}

func TestProgramRecommender(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Program Recommender Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestFilterByMinScore", func(t *testing.T) {
		timer := test.NewTestTimer("Filter By Min Score")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Filter By Min Score", Duration: duration, Passed: true})
		}()

		recommended := eligibility.RecommendPrograms(65, catalogFixture())

		assert.Len(t, recommended, 3)
		for _, p := range recommended {
			assert.LessOrEqual(t, p.MinScore, 65.0)
		}
	})

	t.Run("TestCatalogOrderPreserved", func(t *testing.T) {
		timer := test.NewTestTimer("Catalog Order Preserved")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Catalog Order Preserved", Duration: duration, Passed: true})
		}()

		// ไม่ sort เพิ่ม — ลำดับต้องตรงกับ catalog เดิม
		recommended := eligibility.RecommendPrograms(100, catalogFixture())

		assert.Len(t, recommended, 4)
		assert.Equal(t, "Computer Science Engineering", *recommended[0].Name)
		assert.Equal(t, "Business Administration", *recommended[1].Name)
		assert.Equal(t, "Physics", *recommended[2].Name)
		assert.Equal(t, "English Literature", *recommended[3].Name)
	})

	t.Run("TestExactThresholdIncluded", func(t *testing.T) {
		timer := test.NewTestTimer("Exact Threshold Included")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Exact Threshold Included", Duration: duration, Passed: true})
		}()

		// minScore <= score — คะแนนเท่าเกณฑ์พอดีต้องติดมาด้วย
		recommended := eligibility.RecommendPrograms(55, catalogFixture())

		assert.Len(t, recommended, 2)
		assert.Equal(t, "Physics", *recommended[0].Name)
	})

	t.Run("TestEmptyResultIsNotError", func(t *testing.T) {
		timer := test.NewTestTimer("Empty Result")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Empty Result", Duration: duration, Passed: true})
		}()

		recommended := eligibility.RecommendPrograms(10, catalogFixture())
		assert.NotNil(t, recommended)
		assert.Empty(t, recommended)

		// catalog ว่างก็ได้ list ว่างเช่นกัน
		recommended = eligibility.RecommendPrograms(90, []models.Program{})
		assert.NotNil(t, recommended)
		assert.Empty(t, recommended)
	})
}
