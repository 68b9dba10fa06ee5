package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/petconnect/petconnect/db"
	"github.com/petconnect/petconnect/models"
	"github.com/petconnect/petconnect/utils"
)

// CreateCampaign opens a donation campaign owned by the authenticated user.
func CreateCampaign(c *fiber.Ctx) error {
	campaign := new(models.Charity)
	if err := c.BodyParser(campaign); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if campaign.Name == "" || campaign.Description == "" || campaign.Goal <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "name, description and a positive goal are required",
		})
	}

	userID, _ := c.Locals("userID").(uint)
	campaign.OwnerID = userID
	campaign.Raised = 0
	if campaign.Image.URL == "" {
		campaign.Image = models.Image{URL: "https://placehold.co/600x400?text=No+Image"}
	}

	if err := db.DB.Create(campaign).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create campaign",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(campaign)
}

// GetAllCampaigns lists every campaign, newest first.
func GetAllCampaigns(c *fiber.Ctx) error {
	var campaigns []models.Charity
	if err := db.DB.Order("created_at DESC").Find(&campaigns).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch campaigns",
			Error:   err.Error(),
		})
	}
	return c.JSON(campaigns)
}

// GetMyCampaigns lists the authenticated shelter's campaigns.
func GetMyCampaigns(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	var campaigns []models.Charity
	if err := db.DB.Where("owner_id = ?", userID).
		Order("created_at DESC").
		Find(&campaigns).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch your campaigns",
			Error:   err.Error(),
		})
	}
	return c.JSON(campaigns)
}

// GetCampaign returns a single campaign.
func GetCampaign(c *fiber.Ctx) error {
	var campaign models.Charity
	if err := db.DB.First(&campaign, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Campaign not found",
		})
	}
	return c.JSON(campaign)
}

// GetShelterStats aggregates donations across the shelter's campaigns.
func GetShelterStats(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	var campaignIDs []uint
	if err := db.DB.Model(&models.Charity{}).
		Where("owner_id = ?", userID).
		Pluck("id", &campaignIDs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch shelter stats",
			Error:   err.Error(),
		})
	}

	var stats struct {
		TotalRaised   float64 `json:"total_raised"`
		DonationCount int64   `json:"donation_count"`
	}
	if len(campaignIDs) > 0 {
		err := db.DB.Model(&models.Donation{}).
			Where("charity_id IN ? AND status = ?", campaignIDs, models.DonationCompleted).
			Select("COALESCE(SUM(amount), 0) AS total_raised, COUNT(*) AS donation_count").
			Scan(&stats).Error
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch shelter stats",
				Error:   err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{
		"total_raised":   stats.TotalRaised,
		"donation_count": stats.DonationCount,
		"campaign_count": len(campaignIDs),
	})
}
