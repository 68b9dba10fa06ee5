package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/petconnect/petconnect/db"
	"github.com/petconnect/petconnect/models"
	"github.com/petconnect/petconnect/utils"
)

// CreateReport files a lost or found pet report.
func CreateReport(c *fiber.Ctx) error {
	report := new(models.LostFoundReport)
	if err := c.BodyParser(report); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if report.Type != "lost" && report.Type != "found" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: `type must be "lost" or "found"`,
		})
	}
	if report.PetType == "" || report.Location == "" || report.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "pet_type, location and description are required",
		})
	}

	userID, _ := c.Locals("userID").(uint)
	report.UserID = userID
	if report.Status == "" {
		report.Status = "open"
	}

	if err := db.DB.Create(report).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create report",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

// GetAllReports lists reports filtered by type, pet type, status or location.
func GetAllReports(c *fiber.Ctx) error {
	query := db.DB.Model(&models.LostFoundReport{})

	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}
	if petType := c.Query("petType"); petType != "" {
		query = query.Where("pet_type = ?", petType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("location ILIKE ?", "%"+location+"%")
	}

	var reports []models.LostFoundReport
	if err := query.Order("created_at DESC").Find(&reports).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch reports",
			Error:   err.Error(),
		})
	}
	return c.JSON(reports)
}

// GetReport returns one report.
func GetReport(c *fiber.Ctx) error {
	var report models.LostFoundReport
	if err := db.DB.First(&report, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Report not found",
		})
	}
	return c.JSON(report)
}

// UpdateReport edits a report; only the reporter or an admin may change it.
func UpdateReport(c *fiber.Ctx) error {
	var report models.LostFoundReport
	if err := db.DB.First(&report, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Report not found",
		})
	}

	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)
	if report.UserID != userID && role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Not authorized to update this report",
		})
	}

	ownerID := report.UserID
	if err := c.BodyParser(&report); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	report.UserID = ownerID // reporter never changes

	if err := db.DB.Save(&report).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update report",
			Error:   err.Error(),
		})
	}
	return c.JSON(report)
}

// DeleteReport removes a report; only the reporter or an admin may do so.
func DeleteReport(c *fiber.Ctx) error {
	var report models.LostFoundReport
	if err := db.DB.First(&report, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Report not found",
		})
	}

	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)
	if report.UserID != userID && role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Not authorized to delete this report",
		})
	}

	if err := db.DB.Delete(&report).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete report",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Report deleted successfully"})
}

// GetMyReports lists the authenticated user's own reports.
func GetMyReports(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	var reports []models.LostFoundReport
	if err := db.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch your reports",
			Error:   err.Error(),
		})
	}
	return c.JSON(reports)
}
