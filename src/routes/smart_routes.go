package routes

import (
	"Backend-AdmitHub/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// smartRoutes เส้นทางสำหรับคำนวณ eligibility และแนะนำหลักสูตร
func smartRoutes(app *fiber.App) {
	smartGroup := app.Group("/smart")
	smartGroup.Post("/recommend-courses", controllers.RecommendCourses)
	smartGroup.Post("/predict-admission", controllers.PredictAdmission)
}
