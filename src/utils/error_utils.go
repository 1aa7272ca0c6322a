// error_utils.go
package utils

import (
	"Backend-AdmitHub/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleErrorKind เหมือน HandleError แต่แนบชนิดของ error ไปด้วย
func HandleErrorKind(c *fiber.Ctx, status int, kind, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
		Kind:    kind,
	})
}

// HandleValidationError สำหรับข้อมูลคะแนน/ฟอร์มไม่ผ่าน validation ระบุฟิลด์ที่มีปัญหา
func HandleValidationError(c *fiber.Ctx, field, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
		Kind:    "validation",
		Field:   field,
	})
}
