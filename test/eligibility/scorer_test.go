package eligibility

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"Backend-AdmitHub/src/models"
	"Backend-AdmitHub/src/services/eligibility"
	"Backend-AdmitHub/test"

	"github.com/stretchr/testify/assert"
)

// profileWithScore สร้าง profile ที่คะแนนถ่วงน้ำหนักเท่ากับ s พอดี (category general ไม่มีโบนัส)
// เพราะ 0.2s + 0.3s + 0.4s + 0.1s = s
func profileWithScore(s float64) models.AcademicProfile {
	return models.AcademicProfile{
		TenthMarks:      s,
		TwelfthMarks:    s,
		EntranceScore:   s,
		Extracurricular: s / 10,
		Category:        "general",
	}
}

func TestEligibilityScoring(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Eligibility Scoring Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestExampleScenario", func(t *testing.T) {
		timer := test.NewTestTimer("Example Scenario")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Example Scenario", Duration: duration, Passed: true})
			test.PerformanceAssertion(t, "Example Scenario", duration, 100*time.Millisecond)
		}()

		// 0.2*90 + 0.3*85 + 0.4*78 + 0.1*60 = 18 + 25.5 + 31.2 + 6 = 80.7
		profile := models.AcademicProfile{
			TenthMarks:      90,
			TwelfthMarks:    85,
			EntranceScore:   78,
			Extracurricular: 6,
			Category:        "general",
		}

		result, err := eligibility.CalculateEligibility(profile)
		assert.NoError(t, err)
		assert.InDelta(t, 80.7, result.Score, 1e-9)
		assert.Equal(t, models.TierHighlyEligible, result.Tier)

		// องค์ประกอบใน breakdown ต้องรวมกันเท่าคะแนนสุดท้าย
		assert.InDelta(t, 18.0, result.Breakdown.Tenth, 1e-9)
		assert.InDelta(t, 25.5, result.Breakdown.Twelfth, 1e-9)
		assert.InDelta(t, 31.2, result.Breakdown.Entrance, 1e-9)
		assert.InDelta(t, 6.0, result.Breakdown.Extracurricular, 1e-9)
		assert.InDelta(t, 0.0, result.Breakdown.CategoryBonus, 1e-9)
	})

	t.Run("TestTierBoundaries", func(t *testing.T) {
		timer := test.NewTestTimer("Tier Boundaries")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Tier Boundaries", Duration: duration, Passed: true})
		}()

		cases := []struct {
			score float64
			tier  models.EligibilityTier
		}{
			{80, models.TierHighlyEligible},
			{79.999, models.TierEligible},
			{60, models.TierEligible},
			{59.999, models.TierConditionallyEligible},
			{40, models.TierConditionallyEligible},
			{39.999, models.TierNotEligible},
			{0, models.TierNotEligible},
			{100, models.TierHighlyEligible},
		}

		for _, c := range cases {
			result, err := eligibility.CalculateEligibility(profileWithScore(c.score))
			assert.NoError(t, err)
			assert.Equal(t, c.tier, result.Tier, "score %v", c.score)
		}
	})

	t.Run("TestCategoryBonus", func(t *testing.T) {
		timer := test.NewTestTimer("Category Bonus")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Category Bonus", Duration: duration, Passed: true})
		}()

		base := profileWithScore(50)

		scProfile := base
		scProfile.Category = "sc"
		stProfile := base
		stProfile.Category = "st"
		obcProfile := base
		obcProfile.Category = "obc"

		general, _ := eligibility.CalculateEligibility(base)
		sc, _ := eligibility.CalculateEligibility(scProfile)
		st, _ := eligibility.CalculateEligibility(stProfile)
		obc, _ := eligibility.CalculateEligibility(obcProfile)

		// โบนัสเต็มจำนวนเมื่อยังไม่ชนเพดาน
		assert.InDelta(t, general.Score+10, sc.Score, 1e-9)
		assert.InDelta(t, general.Score+10, st.Score, 1e-9)
		assert.InDelta(t, general.Score+5, obc.Score, 1e-9)
	})

	t.Run("TestBonusClampedAtHundred", func(t *testing.T) {
		timer := test.NewTestTimer("Bonus Clamped")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Bonus Clamped", Duration: duration, Passed: true})
		}()

		// คะแนนเต็มอยู่แล้ว โบนัส sc ต้องไม่ดันเกิน 100
		perfect := profileWithScore(100)
		perfect.Category = "sc"

		result, err := eligibility.CalculateEligibility(perfect)
		assert.NoError(t, err)
		assert.Equal(t, 100.0, result.Score)
		assert.Equal(t, models.TierHighlyEligible, result.Tier)
	})

	t.Run("TestScoreAlwaysInRange", func(t *testing.T) {
		timer := test.NewTestTimer("Score Range Property")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Score Range Property", Duration: duration, Passed: true})
		}()

		categories := []string{"general", "obc", "sc", "st"}
		rng := rand.New(rand.NewSource(42))

		for i := 0; i < 1000; i++ {
			profile := models.AcademicProfile{
				TenthMarks:      rng.Float64() * 100,
				TwelfthMarks:    rng.Float64() * 100,
				EntranceScore:   rng.Float64() * 100,
				Extracurricular: rng.Float64() * 10,
				Category:        categories[rng.Intn(len(categories))],
			}

			result, err := eligibility.CalculateEligibility(profile)
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, result.Score, 0.0)
			assert.LessOrEqual(t, result.Score, 100.0)
		}
	})
}

func TestProfileValidation(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Profile Validation Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestInvalidFieldsNamed", func(t *testing.T) {
		timer := test.NewTestTimer("Invalid Fields Named")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Invalid Fields Named", Duration: duration, Passed: true})
		}()

		valid := profileWithScore(70)

		cases := []struct {
			name    string
			mutate  func(p *models.AcademicProfile)
			field   string
		}{
			{"tenth below zero", func(p *models.AcademicProfile) { p.TenthMarks = -1 }, "tenthMarks"},
			{"twelfth above hundred", func(p *models.AcademicProfile) { p.TwelfthMarks = 101 }, "twelfthMarks"},
			{"entrance NaN", func(p *models.AcademicProfile) { p.EntranceScore = math.NaN() }, "entranceScore"},
			{"entrance Inf", func(p *models.AcademicProfile) { p.EntranceScore = math.Inf(1) }, "entranceScore"},
			{"extracurricular above ten", func(p *models.AcademicProfile) { p.Extracurricular = 10.5 }, "extracurricular"},
			{"unknown category", func(p *models.AcademicProfile) { p.Category = "ews" }, "category"},
			{"empty category", func(p *models.AcademicProfile) { p.Category = "" }, "category"},
		}

		for _, c := range cases {
			profile := valid
			c.mutate(&profile)

			result, err := eligibility.CalculateEligibility(profile)
			assert.Nil(t, result, c.name)
			assert.Error(t, err, c.name)

			var vErr *eligibility.ValidationError
			assert.True(t, errors.As(err, &vErr), c.name)
			assert.Equal(t, c.field, vErr.Field, c.name)
		}
	})

	t.Run("TestBoundaryValuesAccepted", func(t *testing.T) {
		timer := test.NewTestTimer("Boundary Values Accepted")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Boundary Values Accepted", Duration: duration, Passed: true})
		}()

		// ขอบล่างและขอบบนของทุกฟิลด์ต้องผ่าน validation
		low := models.AcademicProfile{Category: "general"}
		_, err := eligibility.CalculateEligibility(low)
		assert.NoError(t, err)

		high := models.AcademicProfile{
			TenthMarks:      100,
			TwelfthMarks:    100,
			EntranceScore:   100,
			Extracurricular: 10,
			Category:        "st",
		}
		_, err = eligibility.CalculateEligibility(high)
		assert.NoError(t, err)
	})
}
