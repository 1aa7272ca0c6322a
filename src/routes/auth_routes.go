package routes

import (
	"Backend-AdmitHub/src/controllers"
	"Backend-AdmitHub/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes เส้นทางสำหรับ login / refresh / me
func authRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")
	authGroup.Post("/login", controllers.LoginUser)
	authGroup.Post("/refresh", controllers.RefreshToken)
	authGroup.Get("/me", middleware.AuthJWT, controllers.GetMe)
	authGroup.Post("/logout", middleware.AuthJWT, controllers.Logout)
}
