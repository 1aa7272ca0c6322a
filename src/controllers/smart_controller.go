package controllers

import (
	"Backend-AdmitHub/src/models"
	"Backend-AdmitHub/src/services/eligibility"
	"Backend-AdmitHub/src/services/programs"
	"Backend-AdmitHub/src/utils"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// RecommendCourses godoc
// @Summary      คำนวณ eligibility และแนะนำหลักสูตรที่ผ่านเกณฑ์
// @Description  รับคะแนนวิชาการ คำนวณคะแนนถ่วงน้ำหนัก + tier แล้วกรองหลักสูตรจาก catalog
// @Tags         smart
// @Accept       json
// @Produce      json
// @Param        profile body models.AcademicProfile true "Academic profile"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /smart/recommend-courses [post]
func RecommendCourses(c *fiber.Ctx) error {
	var profile models.AcademicProfile
	if err := c.BodyParser(&profile); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}

	result, err := eligibility.CalculateEligibility(profile)
	if err != nil {
		var vErr *eligibility.ValidationError
		if errors.As(err, &vErr) {
			return utils.HandleValidationError(c, vErr.Field, vErr.Message)
		}
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	// not_eligible ไม่ได้รับคำแนะนำหลักสูตร
	recommended := []models.Program{}
	if result.IsEligible() {
		catalog, err := programs.GetAllPrograms()
		if err != nil {
			return utils.HandleError(c, http.StatusInternalServerError, err.Error())
		}
		recommended = eligibility.RecommendPrograms(result.Score, catalog)
	}

	return c.JSON(fiber.Map{
		"eligibility":  result,
		"recommended":  recommended,
		"totalMatches": len(recommended),
	})
}

// PredictAdmission godoc
// @Summary      ประเมินโอกาสการรับเข้าจากคะแนน
// @Description  คำนวณ eligibility เหมือน recommend-courses แต่ตอบเป็นระดับโอกาส
// @Tags         smart
// @Accept       json
// @Produce      json
// @Param        profile body models.AcademicProfile true "Academic profile"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /smart/predict-admission [post]
func PredictAdmission(c *fiber.Ctx) error {
	var profile models.AcademicProfile
	if err := c.BodyParser(&profile); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}

	result, err := eligibility.CalculateEligibility(profile)
	if err != nil {
		var vErr *eligibility.ValidationError
		if errors.As(err, &vErr) {
			return utils.HandleValidationError(c, vErr.Field, vErr.Message)
		}
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	chance := map[models.EligibilityTier]string{
		models.TierHighlyEligible:        "very_high",
		models.TierEligible:              "high",
		models.TierConditionallyEligible: "moderate",
		models.TierNotEligible:           "low",
	}

	return c.JSON(fiber.Map{
		"eligibility":     result,
		"admissionChance": chance[result.Tier],
	})
}
