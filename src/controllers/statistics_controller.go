package controllers

import (
	DB "Backend-AdmitHub/src/database"
	"Backend-AdmitHub/src/jobs"
	"Backend-AdmitHub/src/services/statistics"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

// GetAdmissionStatistics godoc
// @Summary      สถิติรวมของใบสมัครทุกกลุ่มสถานะ
// @Description  จำนวนและเปอร์เซ็นต์ของ pending / under_review / approved / rejected
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  models.StatisticsSnapshot
// @Failure      500  {object}  models.ErrorResponse
// @Router       /applications/admin/statistics [get]
func GetAdmissionStatistics(c *fiber.Ctx) error {
	snapshot, err := statistics.GetAdmissionStatistics()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(snapshot)
}

// GetAdmissionAnalytics godoc
// @Summary      แนวโน้มใบสมัครรายเดือน (ยื่น/อนุมัติ)
// @Tags         statistics
// @Produce      json
// @Success      200  {array}   models.MonthlyTrendPoint
// @Failure      500  {object}  models.ErrorResponse
// @Router       /applications/admin/analytics [get]
func GetAdmissionAnalytics(c *fiber.Ctx) error {
	trend, err := statistics.GetAdmissionAnalytics()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"monthly": trend})
}

// TriggerStatsRefresh godoc
// @Summary      สั่งคำนวณสถิติใหม่ผ่าน background job
// @Description  Enqueue statistics refresh task. Requires Asynq (Redis) configured.
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  models.ErrorResponse
// @Router       /applications/admin/statistics/refresh [post]
func TriggerStatsRefresh(c *fiber.Ctx) error {
	if DB.AsynqClient == nil {
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"error": "asynq client not initialized"})
	}

	task, err := jobs.NewStatsRefreshTask()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	_, err = DB.AsynqClient.Enqueue(task, asynq.TaskID("stats-refresh-"+time.Now().Format("20060102150405")))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "enqueued"})
}
