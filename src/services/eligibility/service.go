package eligibility

import (
	"Backend-AdmitHub/src/models"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// น้ำหนักคะแนนแต่ละองค์ประกอบ รวมกันเป็น 1.0
const (
	weightTenth           = 0.20
	weightTwelfth         = 0.30
	weightEntrance        = 0.40
	weightExtracurricular = 0.10
)

// คะแนนโบนัสตาม category (บวกหลังถ่วงน้ำหนัก แล้วค่อย clamp)
var categoryBonus = map[string]float64{
	"general": 0,
	"obc":     5,
	"sc":      10,
	"st":      10,
}

// ขีดแบ่ง tier ประเมินจากสูงไปต่ำ
const (
	thresholdHighlyEligible        = 80.0
	thresholdEligible              = 60.0
	thresholdConditionallyEligible = 40.0
)

var validate = validator.New()

// แปลงชื่อ struct field เป็นชื่อฟิลด์ฝั่ง JSON สำหรับ error message
var fieldNames = map[string]string{
	"TenthMarks":      "tenthMarks",
	"TwelfthMarks":    "twelfthMarks",
	"EntranceScore":   "entranceScore",
	"Extracurricular": "extracurricular",
	"Category":        "category",
}

// ValidationError ข้อมูลคะแนนไม่ถูกต้อง ระบุฟิลด์ที่มีปัญหา
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateProfile ตรวจสอบว่า AcademicProfile อยู่ในช่วงที่กำหนดและ category ถูกต้อง
func ValidateProfile(profile models.AcademicProfile) error {
	// validator เทียบค่าไม่ได้กับ NaN/Inf ต้องเช็คก่อน
	finiteChecks := []struct {
		field string
		value float64
	}{
		{"tenthMarks", profile.TenthMarks},
		{"twelfthMarks", profile.TwelfthMarks},
		{"entranceScore", profile.EntranceScore},
		{"extracurricular", profile.Extracurricular},
	}
	for _, c := range finiteChecks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return &ValidationError{Field: c.field, Message: "must be a finite number"}
		}
	}

	if err := validate.Struct(profile); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			fe := errs[0]
			field := fieldNames[fe.StructField()]
			if field == "" {
				field = fe.StructField()
			}
			if fe.Tag() == "oneof" {
				return &ValidationError{Field: field, Message: "must be one of general, obc, sc, st"}
			}
			return &ValidationError{Field: field, Message: fmt.Sprintf("must satisfy %s=%s", fe.Tag(), fe.Param())}
		}
		return err
	}

	return nil
}

// CalculateEligibility คำนวณคะแนนถ่วงน้ำหนัก + โบนัส category → EligibilityResult
// pure function: ไม่แตะฐานข้อมูล ไม่แก้ไข input
func CalculateEligibility(profile models.AcademicProfile) (*models.EligibilityResult, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}

	breakdown := models.ScoreBreakdown{
		Tenth:           weightTenth * profile.TenthMarks,
		Twelfth:         weightTwelfth * profile.TwelfthMarks,
		Entrance:        weightEntrance * profile.EntranceScore,
		Extracurricular: weightExtracurricular * (profile.Extracurricular / 10 * 100),
		CategoryBonus:   categoryBonus[profile.Category],
	}

	score := breakdown.Tenth + breakdown.Twelfth + breakdown.Entrance +
		breakdown.Extracurricular + breakdown.CategoryBonus

	// คะแนนสุดท้ายต้องอยู่ใน [0,100] เสมอ
	score = clamp(score, 0, 100)

	return &models.EligibilityResult{
		Score:     score,
		Tier:      tierForScore(score),
		Breakdown: breakdown,
	}, nil
}

// RecommendPrograms คืนหลักสูตรที่ minScore <= score โดยคงลำดับเดิมของ catalog
// ได้ list ว่างถ้าไม่มีหลักสูตรไหนผ่านเกณฑ์ (ไม่ถือเป็น error)
func RecommendPrograms(score float64, catalog []models.Program) []models.Program {
	recommended := []models.Program{}
	for _, program := range catalog {
		if program.MinScore <= score {
			recommended = append(recommended, program)
		}
	}
	return recommended
}

// tierForScore ประเมินขีดแบ่งจากสูงไปต่ำ
func tierForScore(score float64) models.EligibilityTier {
	switch {
	case score >= thresholdHighlyEligible:
		return models.TierHighlyEligible
	case score >= thresholdEligible:
		return models.TierEligible
	case score >= thresholdConditionallyEligible:
		return models.TierConditionallyEligible
	default:
		return models.TierNotEligible
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
