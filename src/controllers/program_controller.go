package controllers

import (
	"Backend-AdmitHub/src/models"
	"Backend-AdmitHub/src/services/programs"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetPrograms godoc
// @Summary      ดึง catalog หลักสูตรทั้งหมด
// @Tags         programs
// @Produce      json
// @Success      200  {array}   models.Program
// @Failure      500  {object}  models.ErrorResponse
// @Router       /programs [get]
func GetPrograms(c *fiber.Ctx) error {
	catalog, err := programs.GetAllPrograms()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(catalog)
}

// GetProgramById godoc
// @Summary      ดึงหลักสูตรตาม ID
// @Tags         programs
// @Produce      json
// @Param        id path string true "Program ID"
// @Success      200  {object}  models.Program
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /programs/{id} [get]
func GetProgramById(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id format"})
	}

	program, err := programs.GetProgramByID(id)
	if err != nil {
		if errors.Is(err, programs.ErrProgramNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(program)
}

// CreateProgram godoc
// @Summary      เพิ่มหลักสูตรใหม่ (admin)
// @Tags         programs
// @Accept       json
// @Produce      json
// @Param        program body models.Program true "Program data"
// @Success      201  {object}  models.Program
// @Failure      400  {object}  models.ErrorResponse
// @Router       /programs [post]
func CreateProgram(c *fiber.Ctx) error {
	var program models.Program
	if err := c.BodyParser(&program); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	if err := programs.CreateProgram(&program); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(http.StatusCreated).JSON(program)
}

// UpdateProgram godoc
// @Summary      แก้ไขหลักสูตร (admin)
// @Tags         programs
// @Accept       json
// @Produce      json
// @Param        id path string true "Program ID"
// @Param        program body models.Program true "Program data"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /programs/{id} [put]
func UpdateProgram(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id format"})
	}

	var program models.Program
	if err := c.BodyParser(&program); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	if err := programs.UpdateProgram(id, &program); err != nil {
		if errors.Is(err, programs.ErrProgramNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Program updated successfully"})
}

// DeleteProgram godoc
// @Summary      ลบหลักสูตรออกจาก catalog (admin)
// @Tags         programs
// @Param        id path string true "Program ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /programs/{id} [delete]
func DeleteProgram(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id format"})
	}

	if err := programs.DeleteProgram(id); err != nil {
		if errors.Is(err, programs.ErrProgramNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Program deleted successfully"})
}
