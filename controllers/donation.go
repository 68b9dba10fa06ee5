package controllers

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/petconnect/petconnect/db"
	"github.com/petconnect/petconnect/models"
	"github.com/petconnect/petconnect/utils"
)

// InitiateDonation creates a pending donation and hands back the payment form
// payload. The gateway is a black box here; we only ever record its verdict.
func InitiateDonation(c *fiber.Ctx) error {
	type donateInput struct {
		CharityID     uint    `json:"charity_id"`
		Amount        float64 `json:"amount"`
		PaymentMethod string  `json:"payment_method"`
		UserName      string  `json:"user_name"`
	}

	input := new(donateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.CharityID == 0 || input.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "charity_id and a positive amount are required",
		})
	}

	var charity models.Charity
	if err := db.DB.First(&charity, input.CharityID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Campaign not found",
		})
	}

	userID, _ := c.Locals("userID").(uint)

	donation := models.Donation{
		UserID:          userID,
		UserName:        input.UserName,
		CharityID:       charity.ID,
		CharityName:     charity.Name,
		Amount:          input.Amount,
		Status:          models.DonationPending,
		PaymentMethod:   input.PaymentMethod,
		TransactionUUID: uuid.NewString(),
	}
	if donation.UserName == "" {
		donation.UserName = "Anonymous"
	}
	if donation.PaymentMethod == "" {
		donation.PaymentMethod = "esewa"
	}

	if err := db.DB.Create(&donation).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to initiate donation",
			Error:   err.Error(),
		})
	}

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:3000"
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Donation initiated",
		"donation_id": donation.ID,
		"esewa_data": fiber.Map{
			"amount":             donation.Amount,
			"tax_amount":         0,
			"total_amount":       donation.Amount,
			"transaction_uuid":   donation.TransactionUUID,
			"product_code":       "EPAYTEST",
			"success_url":        fmt.Sprintf("%s/dashboard/donations/success?donationId=%d", appURL, donation.ID),
			"failure_url":        fmt.Sprintf("%s/dashboard/donations/failure?donationId=%d", appURL, donation.ID),
			"signed_field_names": "total_amount,transaction_uuid,product_code",
		},
	})
}

// VerifyDonation records the gateway verdict and refreshes the campaign's
// raised total on success.
func VerifyDonation(c *fiber.Ctx) error {
	type verifyInput struct {
		DonationID uint   `json:"donation_id"`
		Status     string `json:"status"`
		RefID      string `json:"ref_id"`
	}

	input := new(verifyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var donation models.Donation
	if err := db.DB.First(&donation, input.DonationID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Donation not found",
		})
	}

	if input.Status == "success" {
		donation.Status = models.DonationCompleted
		donation.EsewaRefID = input.RefID
	} else {
		donation.Status = models.DonationFailed
	}

	if err := db.DB.Save(&donation).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to verify donation",
			Error:   err.Error(),
		})
	}

	if donation.Status == models.DonationCompleted {
		var charity models.Charity
		if err := db.DB.First(&charity, donation.CharityID).Error; err == nil {
			if err := charity.RefreshRaisedAmount(db.DB); err != nil {
				// Raised total drifts until the next completed donation; the
				// donation record itself is already saved.
				log.Printf("Failed to refresh raised amount for charity %d: %v", charity.ID, err)
			}
		}
	}

	return c.JSON(donation)
}

// GetMyDonations lists the authenticated user's donations.
func GetMyDonations(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	var donations []models.Donation
	if err := db.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch your donations",
			Error:   err.Error(),
		})
	}
	return c.JSON(donations)
}
