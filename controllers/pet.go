package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/petconnect/petconnect/db"
	"github.com/petconnect/petconnect/models"
	"github.com/petconnect/petconnect/utils"
)

// CreatePet registers a pet profile. A collar tag ID is generated when the
// caller doesn't bring one.
func CreatePet(c *fiber.Ctx) error {
	pet := new(models.Pet)
	if err := c.BodyParser(pet); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if pet.OwnerID == 0 || pet.Name == "" || pet.Species == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "owner_id, name, and species are required",
		})
	}

	if pet.TagID == "" {
		pet.TagID = utils.GeneratePetTag()
	}

	if err := db.DB.Create(pet).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Pet tag ID already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create pet",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Pet registered successfully",
		"pet":     pet,
	})
}

// GetPetsByOwner lists an owner's pets, newest first.
func GetPetsByOwner(c *fiber.Ctx) error {
	var pets []models.Pet
	if err := db.DB.Where("owner_id = ?", c.Params("ownerId")).
		Order("created_at DESC").
		Find(&pets).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch pets",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"pets": pets})
}

// GetPet returns a pet by database ID.
func GetPet(c *fiber.Ctx) error {
	var pet models.Pet
	if err := db.DB.Preload("Owner").First(&pet, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Pet not found",
		})
	}
	pet.Owner.Password = ""
	return c.JSON(fiber.Map{"pet": pet})
}

// GetPetByTag returns a pet by collar tag ID (the QR code lookup).
func GetPetByTag(c *fiber.Ctx) error {
	var pet models.Pet
	if err := db.DB.Preload("Owner").First(&pet, "tag_id = ?", c.Params("tagId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Pet not found",
		})
	}
	pet.Owner.Password = ""
	return c.JSON(fiber.Map{"pet": pet})
}

// UpdatePet applies profile changes.
func UpdatePet(c *fiber.Ctx) error {
	var pet models.Pet
	if err := db.DB.First(&pet, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Pet not found",
		})
	}
	if err := c.BodyParser(&pet); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&pet).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update pet",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Pet updated successfully",
		"pet":     pet,
	})
}

// DeletePet removes a pet profile.
func DeletePet(c *fiber.Ctx) error {
	var pet models.Pet
	if err := db.DB.First(&pet, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Pet not found",
		})
	}
	if err := db.DB.Delete(&pet).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete pet",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
