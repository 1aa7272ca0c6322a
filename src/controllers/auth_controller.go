package controllers

import (
	"Backend-AdmitHub/src/services"
	"Backend-AdmitHub/src/utils"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// LoginUser - สำหรับ login ทั้ง applicant และ admin
func LoginUser(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// 1. Input validation
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}

	// 2. Validate required fields
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
			"code":  "MISSING_CREDENTIALS",
		})
	}

	// 3. Rate limiting
	if services.IsRateLimited(req.Email) {
		// คำนวณเวลาที่เหลือ
		remainingTime := services.GetRemainingCooldownTime(req.Email)
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": fmt.Sprintf("Too many login attempts. Please try again in %d minutes and %d seconds.",
				int(remainingTime.Minutes()),
				int(remainingTime.Seconds())%60),
			"code":          "RATE_LIMITED",
			"remainingTime": int(remainingTime.Seconds()),
		})
	}

	// 4. Authenticate user
	user, err := services.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		// 5. Log failed attempt
		services.LogLoginAttempt(req.Email, c.IP(), false)

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
			"code":  "INVALID_CREDENTIALS",
		})
	}

	// 6. Generate tokens
	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Token generation failed",
			"code":  "TOKEN_ERROR",
		})
	}

	refreshToken, err := utils.GenerateRefreshJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Token generation failed",
			"code":  "TOKEN_ERROR",
		})
	}
	if err := utils.StoreRefreshToken(user.ID.Hex(), refreshToken, 7*24*time.Hour); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store refresh token",
			"code":  "TOKEN_ERROR",
		})
	}

	// 7. Log successful login
	services.LogLoginAttempt(req.Email, c.IP(), true)

	// 8. Set security headers
	c.Set("X-Frame-Options", "DENY")
	c.Set("X-Content-Type-Options", "nosniff")

	// 9. Return response
	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": refreshToken,
		"expiresIn":    86400,
		"user": fiber.Map{
			"id":        user.ID.Hex(),
			"name":      user.Name,
			"email":     user.Email,
			"role":      user.Role,
			"lastLogin": time.Now(),
		},
		"message": "Login successful",
	})
}

// RefreshToken - แลก refresh token เป็น access token ใหม่
func RefreshToken(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "refreshToken is required"})
	}

	claims, err := utils.ParseJWT(req.RefreshToken)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired refresh token"})
	}

	valid, err := utils.ValidateRefreshToken(claims.UserID, req.RefreshToken)
	if err != nil || !valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Refresh token revoked or unknown"})
	}

	token, err := utils.GenerateJWT(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Token generation failed"})
	}

	return c.JSON(fiber.Map{"token": token, "expiresIn": 86400})
}

// GetMe - ข้อมูลผู้ใช้จาก token ที่ login อยู่
func GetMe(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"id":    c.Locals("userId"),
		"email": c.Locals("email"),
		"role":  c.Locals("role"),
	})
}

// Logout - ยกเลิก refresh token
func Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	if err := utils.RevokeRefreshToken(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to revoke refresh token"})
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}
