package routes

import (
	"Backend-AdmitHub/src/controllers"
	"Backend-AdmitHub/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// applicationRoutes เส้นทางสำหรับ Application API
func applicationRoutes(app *fiber.App) {
	applicationGroup := app.Group("/applications")
	applicationGroup.Use(middleware.AuthJWT)

	applicationGroup.Post("/", controllers.CreateApplication)                            // ยื่นใบสมัคร
	applicationGroup.Get("/", controllers.GetAllApplications)                            // ดึงใบสมัครทั้งหมด
	applicationGroup.Get("/applicant/:applicantId", controllers.GetApplicationsByApplicant)

	// ฝั่งเจ้าหน้าที่
	adminGroup := applicationGroup.Group("/admin", middleware.RequireAdmin)
	adminGroup.Get("/statistics", controllers.GetAdmissionStatistics)
	adminGroup.Get("/analytics", controllers.GetAdmissionAnalytics)
	adminGroup.Post("/statistics/refresh", controllers.TriggerStatsRefresh)

	applicationGroup.Post("/bulk-approve", middleware.RequireAdmin, controllers.BulkApproveApplications)
	applicationGroup.Post("/bulk-status", middleware.RequireAdmin, controllers.BulkUpdateApplicationStatus)

	applicationGroup.Get("/:id", controllers.GetApplicationById)
	applicationGroup.Put("/:id/status", middleware.RequireAdmin, controllers.UpdateApplicationStatus)
}
