package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/petconnect/petconnect/db"
	"github.com/petconnect/petconnect/models"
	"github.com/petconnect/petconnect/utils"
)

// GetAllDoctors lists active veterinarians.
func GetAllDoctors(c *fiber.Ctx) error {
	var doctors []models.Doctor
	if err := db.DB.Where("is_active = ?", true).
		Order("first_name ASC").
		Find(&doctors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch doctors",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"doctors": doctors})
}

// GetDoctor returns one veterinarian profile.
func GetDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := db.DB.First(&doctor, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
		})
	}
	return c.JSON(fiber.Map{"doctor": doctor})
}

// GetDoctorByUserID resolves the doctor profile behind a login account.
func GetDoctorByUserID(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := db.DB.First(&doctor, "user_id = ?", c.Params("userId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor profile not found",
		})
	}
	return c.JSON(fiber.Map{"doctor": doctor})
}

// UpdateDoctorAvailability updates scheduling and practice settings.
// Only the fields present in the request change.
func UpdateDoctorAvailability(c *fiber.Ctx) error {
	type updateInput struct {
		Availability        *models.StringList `json:"availability"`
		AppointmentDuration *int               `json:"appointment_duration"`
		BookingFee          *float64           `json:"booking_fee"`
		ClinicAddress       *string            `json:"clinic_address"`
		LocationPreference  *string            `json:"location_preference"`
		Specialization      *string            `json:"specialization"`
		Experience          *int               `json:"experience"`
		Bio                 *string            `json:"bio"`
	}

	input := new(updateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var doctor models.Doctor
	if err := db.DB.First(&doctor, "id = ?", c.Params("doctorId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
		})
	}

	if input.Availability != nil {
		// Entries must look like "Monday 9-17"; reject the write rather than
		// store lines the resolver would silently drop.
		for _, entry := range *input.Availability {
			if utils.ParseAvailabilityEntry(entry) == nil {
				return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
					Message: "Invalid availability entry: " + entry,
					Error:   `expected format: "Day StartHour-EndHour"`,
				})
			}
		}
		doctor.Availability = *input.Availability
	}
	if input.AppointmentDuration != nil {
		if *input.AppointmentDuration <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Appointment duration must be positive",
			})
		}
		doctor.AppointmentDuration = *input.AppointmentDuration
	}
	if input.BookingFee != nil {
		doctor.BookingFee = *input.BookingFee
	}
	if input.ClinicAddress != nil {
		doctor.ClinicAddress = *input.ClinicAddress
	}
	if input.LocationPreference != nil {
		doctor.LocationPreference = *input.LocationPreference
	}
	if input.Specialization != nil {
		doctor.Specialization = *input.Specialization
	}
	if input.Experience != nil {
		doctor.Experience = *input.Experience
	}
	if input.Bio != nil {
		doctor.Bio = *input.Bio
	}

	if err := db.DB.Save(&doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update availability",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Availability updated successfully",
		"doctor":  doctor,
	})
}
