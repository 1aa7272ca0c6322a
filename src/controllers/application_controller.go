package controllers

import (
	"Backend-AdmitHub/src/models"
	"Backend-AdmitHub/src/services/applications"
	"Backend-AdmitHub/src/utils"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// statusForTransitionError แปลง error จาก state machine เป็น HTTP status
func statusForTransitionError(err error) int {
	switch {
	case errors.Is(err, applications.ErrApplicationNotFound),
		errors.Is(err, applications.ErrProgramNotFound):
		return http.StatusNotFound
	case errors.Is(err, applications.ErrApplicationClosed),
		errors.Is(err, applications.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, applications.ErrInvalidTransition):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// CreateApplication godoc
// @Summary      ยื่นใบสมัครใหม่
// @Description  สร้างใบสมัครที่ขั้นตอน submitted (ถือว่าเสร็จทันที) ขั้นตอนอื่น pending
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application body object true "applicantId + courseId"
// @Success      201  {object}  models.Application
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /applications [post]
func CreateApplication(c *fiber.Ctx) error {
	var req struct {
		ApplicantID string `json:"applicantId"`
		CourseID    string `json:"courseId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}

	applicantID, err := primitive.ObjectIDFromHex(req.ApplicantID)
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid applicantId format")
	}
	courseID, err := primitive.ObjectIDFromHex(req.CourseID)
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid courseId format")
	}

	app, err := applications.CreateApplication(applicantID, courseID)
	if err != nil {
		return utils.HandleErrorKind(c, statusForTransitionError(err), applications.ErrorKind(err), err.Error())
	}

	return c.Status(http.StatusCreated).JSON(app)
}

// GetAllApplications godoc
// @Summary      ดึงใบสมัครทั้งหมดแบบแบ่งหน้า
// @Tags         applications
// @Produce      json
// @Param        page query int false "Page number"
// @Param        limit query int false "Items per page"
// @Param        stages query string false "Comma-separated stage filter"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /applications [get]
func GetAllApplications(c *fiber.Ctx) error {
	// ✅ 1. ตั้งค่าพารามิเตอร์แบ่งหน้า
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", "")
	params.SortBy = c.Query("sortBy", params.SortBy)
	params.Order = c.Query("order", params.Order)

	// ✅ 2. แปลง Query stages เป็น array
	stageFilter := strings.Split(c.Query("stages"), ",")
	if len(stageFilter) == 1 && stageFilter[0] == "" {
		stageFilter = []string{}
	}

	// ✅ 3. เรียก service
	apps, total, totalPages, err := applications.GetAllApplications(params, stageFilter)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"data": apps,
		"meta": fiber.Map{
			"page":       params.Page,
			"limit":      params.Limit,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}

// GetApplicationById godoc
// @Summary      ดึงใบสมัครตาม ID พร้อมความคืบหน้า
// @Tags         applications
// @Produce      json
// @Param        id path string true "Application ID"
// @Success      200  {object}  models.ApplicationDto
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /applications/{id} [get]
func GetApplicationById(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid id format")
	}

	app, err := applications.GetApplicationByID(id)
	if err != nil {
		return utils.HandleErrorKind(c, statusForTransitionError(err), applications.ErrorKind(err), err.Error())
	}

	return c.JSON(app)
}

// GetApplicationsByApplicant godoc
// @Summary      ดึงใบสมัครทั้งหมดของผู้สมัครคนหนึ่ง
// @Tags         applications
// @Produce      json
// @Param        applicantId path string true "Applicant ID"
// @Success      200  {array}   models.ApplicationDto
// @Failure      400  {object}  models.ErrorResponse
// @Router       /applications/applicant/{applicantId} [get]
func GetApplicationsByApplicant(c *fiber.Ctx) error {
	applicantID, err := primitive.ObjectIDFromHex(c.Params("applicantId"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid applicantId format")
	}

	apps, err := applications.GetApplicationsByApplicant(applicantID)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(apps)
}

// UpdateApplicationStatus godoc
// @Summary      ปรับสถานะใบสมัครหนึ่งใบ
// @Description  ไปได้เฉพาะขั้นตอนปัจจุบันหรือขั้นตอนถัดไป ส่ง expectedStage/expectedStatus มาด้วยเพื่อกันการแก้ชนกัน
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path string true "Application ID"
// @Param        body body object true "stage + status + remarks (+ expectedStage/expectedStatus)"
// @Success      200  {object}  models.Application
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /applications/{id}/status [put]
func UpdateApplicationStatus(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid id format")
	}

	var req struct {
		Stage          string `json:"stage"`
		Status         string `json:"status"`
		Remarks        string `json:"remarks"`
		ExpectedStage  string `json:"expectedStage"`
		ExpectedStatus string `json:"expectedStatus"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if req.Status == "" {
		return utils.HandleError(c, http.StatusBadRequest, "status is required")
	}

	target := models.ApplicationStage(req.Stage)
	status := models.StageStatus(req.Status)

	// ไม่ระบุ stage: approved/rejected หมายถึงขั้นตอนสุดท้าย นอกนั้นคือขั้นตอนปัจจุบัน
	if target == "" {
		if status == models.StatusApproved || status == models.StatusRejected {
			target = models.StageFinalDecision
		} else {
			current, err := applications.GetApplicationByID(id)
			if err != nil {
				return utils.HandleErrorKind(c, statusForTransitionError(err), applications.ErrorKind(err), err.Error())
			}
			target = current.Stage
		}
	}

	var expected *applications.StagePrecondition
	if req.ExpectedStage != "" {
		expected = &applications.StagePrecondition{
			Stage:  models.ApplicationStage(req.ExpectedStage),
			Status: models.StageStatus(req.ExpectedStatus),
		}
	}

	app, err := applications.AdvanceApplication(id, target, status, req.Remarks, expected)
	if err != nil {
		return utils.HandleErrorKind(c, statusForTransitionError(err), applications.ErrorKind(err), err.Error())
	}

	return c.JSON(app)
}

// BulkApproveApplications godoc
// @Summary      อนุมัติใบสมัครหลายใบพร้อมกัน
// @Description  แต่ละใบสำเร็จ/ล้มเหลวแยกกัน ใบที่ fail ไม่หยุดใบอื่นและไม่มี rollback
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body body object true "applicationIds (+ remarks)"
// @Success      200  {object}  models.BulkDecisionResult
// @Failure      400  {object}  models.ErrorResponse
// @Router       /applications/bulk-approve [post]
func BulkApproveApplications(c *fiber.Ctx) error {
	var req struct {
		ApplicationIDs []string `json:"applicationIds"`
		Remarks        string   `json:"remarks"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if len(req.ApplicationIDs) == 0 {
		return utils.HandleError(c, http.StatusBadRequest, "applicationIds is required")
	}

	result := applications.BulkAdvance(req.ApplicationIDs, models.StageFinalDecision, models.StatusApproved, req.Remarks)
	return c.JSON(result)
}

// BulkUpdateApplicationStatus godoc
// @Summary      ใช้ transition เดียวกับใบสมัครหลายใบ
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body body object true "applicationIds + stage + status (+ remarks)"
// @Success      200  {object}  models.BulkDecisionResult
// @Failure      400  {object}  models.ErrorResponse
// @Router       /applications/bulk-status [post]
func BulkUpdateApplicationStatus(c *fiber.Ctx) error {
	var req struct {
		ApplicationIDs []string `json:"applicationIds"`
		Stage          string   `json:"stage"`
		Status         string   `json:"status"`
		Remarks        string   `json:"remarks"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if len(req.ApplicationIDs) == 0 || req.Stage == "" || req.Status == "" {
		return utils.HandleError(c, http.StatusBadRequest, "applicationIds, stage and status are required")
	}

	result := applications.BulkAdvance(req.ApplicationIDs,
		models.ApplicationStage(req.Stage), models.StageStatus(req.Status), req.Remarks)
	return c.JSON(result)
}
