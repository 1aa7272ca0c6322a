package routes

import (
	"Backend-AdmitHub/src/controllers"
	"Backend-AdmitHub/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// programRoutes เส้นทางสำหรับ catalog หลักสูตร
func programRoutes(app *fiber.App) {
	programGroup := app.Group("/programs")
	programGroup.Get("/", controllers.GetPrograms)
	programGroup.Get("/:id", controllers.GetProgramById)

	// แก้ไข catalog ได้เฉพาะ admin
	programGroup.Post("/", middleware.AuthJWT, middleware.RequireAdmin, controllers.CreateProgram)
	programGroup.Put("/:id", middleware.AuthJWT, middleware.RequireAdmin, controllers.UpdateProgram)
	programGroup.Delete("/:id", middleware.AuthJWT, middleware.RequireAdmin, controllers.DeleteProgram)
}
