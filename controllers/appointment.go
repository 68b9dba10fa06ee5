package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/petconnect/petconnect/db"
	"github.com/petconnect/petconnect/models"
	"github.com/petconnect/petconnect/utils"
)

var errSlotTaken = errors.New("time slot already booked")

// workingHoursFor returns the doctor's first availability entry matching the
// date's weekday. Malformed entries are skipped, not reported; a doctor with
// no usable entry for the day is simply not working.
func workingHoursFor(doctor *models.Doctor, date time.Time) *utils.WorkingHoursEntry {
	day := utils.DayOfWeekName(date)
	for _, raw := range doctor.Availability {
		entry := utils.ParseAvailabilityEntry(raw)
		if entry != nil && entry.Day == day {
			return entry
		}
	}
	return nil
}

// bookedSlotsForDay fetches the timeSlot labels of non-cancelled appointments
// for a doctor on the given calendar day.
func bookedSlotsForDay(tx *gorm.DB, doctorID uint, date time.Time) ([]string, error) {
	dayStart, dayEnd := utils.DayBounds(date)
	var slots []string
	err := tx.Model(&models.Appointment{}).
		Where("doctor_id = ? AND date BETWEEN ? AND ? AND status <> ?",
			doctorID, dayStart, dayEnd, models.StatusCancelled).
		Pluck("time_slot", &slots).Error
	return slots, err
}

// GetAvailability returns the free slots for a doctor on a date.
// GET /appointments/availability?doctorId=..&date=YYYY-MM-DD
func GetAvailability(c *fiber.Ctx) error {
	doctorID := c.Query("doctorId")
	dateStr := c.Query("date")
	if doctorID == "" || dateStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "doctorId and date are required (YYYY-MM-DD)",
		})
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date",
		})
	}

	var doctor models.Doctor
	if err := db.DB.First(&doctor, "id = ?", doctorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
		})
	}

	slots := make([]string, 0)

	entry := workingHoursFor(&doctor, date)
	if entry == nil {
		// Not an error: the doctor just isn't scheduled that day
		return c.JSON(fiber.Map{"date": dateStr, "slots": slots})
	}

	baseSlots := utils.GenerateSlotsForDay(date, entry.StartHour, entry.EndHour, doctor.Duration())

	booked, err := bookedSlotsForDay(db.DB, doctor.ID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute availability",
			Error:   err.Error(),
		})
	}

	for _, slot := range baseSlots {
		free := true
		for _, existing := range booked {
			if existing == slot || utils.SlotOverlaps(slot, existing) {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, slot)
		}
	}

	return c.JSON(fiber.Map{"date": dateStr, "slots": slots})
}

// CreateAppointment books a slot with a doctor.
// POST /appointments
func CreateAppointment(c *fiber.Ctx) error {
	type createInput struct {
		User               uint   `json:"user"`
		Doctor             uint   `json:"doctor"`
		Date               string `json:"date"`
		TimeSlot           string `json:"time_slot"`
		PetName            string `json:"pet_name"`
		PetType            string `json:"pet_type"`
		Reason             string `json:"reason"`
		LocationPreference string `json:"location_preference"`
		Address            string `json:"address"`
		Notes              string `json:"notes"`
	}

	input := new(createInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.User == 0 || input.Doctor == 0 || input.Date == "" || input.TimeSlot == "" ||
		input.PetName == "" || input.PetType == "" || input.Reason == "" || input.LocationPreference == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing required fields",
		})
	}

	// Always re-fetch the doctor: duration and fee are validated against the
	// current settings, never against a client-cached availability snapshot.
	var doctor models.Doctor
	if err := db.DB.First(&doctor, input.Doctor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
		})
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date",
		})
	}

	entry := workingHoursFor(&doctor, date)
	if entry == nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Doctor not available on selected day",
		})
	}

	generated := utils.GenerateSlotsForDay(date, entry.StartHour, entry.EndHour, doctor.Duration())
	requestedValid := false
	for _, slot := range generated {
		if slot == input.TimeSlot {
			requestedValid = true
			break
		}
	}
	if !requestedValid {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Requested time slot is not within doctor's availability",
		})
	}

	// The requested slot plus every theoretical slot overlapping it; a booked
	// appointment on any of these labels blocks the booking.
	blocking := []string{input.TimeSlot}
	for _, slot := range generated {
		if slot != input.TimeSlot && utils.SlotOverlaps(slot, input.TimeSlot) {
			blocking = append(blocking, slot)
		}
	}

	appointment := models.Appointment{
		UserID:              input.User,
		DoctorID:            doctor.ID,
		Date:                date,
		TimeSlot:            input.TimeSlot,
		PetName:             input.PetName,
		PetType:             input.PetType,
		Reason:              input.Reason,
		Status:              models.StatusPending,
		Notes:               input.Notes,
		LocationPreference:  input.LocationPreference,
		Address:             input.Address,
		AppointmentDuration: doctor.Duration(),
		Payment: models.Payment{
			Status: models.PaymentPending,
			Amount: doctor.BookingFee,
		},
	}

	dayStart, dayEnd := utils.DayBounds(date)

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		// Lock conflicting rows so a concurrent booking for an overlapping
		// slot serializes behind this one.
		var conflict models.Appointment
		err := tx.Raw(`
			SELECT *
			FROM appointments
			WHERE doctor_id = ? AND date BETWEEN ? AND ?
			  AND status <> 'cancelled' AND deleted_at IS NULL
			  AND time_slot IN (?)
			FOR UPDATE
			LIMIT 1
		`, doctor.ID, dayStart, dayEnd, blocking).Scan(&conflict).Error
		if err != nil {
			return err
		}
		if conflict.ID != 0 {
			return errSlotTaken
		}

		return tx.Create(&appointment).Error
	})
	if err != nil {
		// The partial unique index backstops the check above: two concurrent
		// requests for the same exact slot surface here as a duplicate key.
		var pgErr *pgconn.PgError
		if errors.Is(err, errSlotTaken) || (errors.As(err, &pgErr) && pgErr.Code == "23505") {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Selected time slot is already booked",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	// Confirmation email; the booking is already committed, so a mail failure
	// is logged rather than surfaced.
	var owner models.User
	if err := db.DB.First(&owner, appointment.UserID).Error; err == nil {
		body := fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>Your appointment has been booked.</p>
			<ul>
				<li><strong>Doctor:</strong> %s %s</li>
				<li><strong>Date:</strong> %s</li>
				<li><strong>Time:</strong> %s</li>
				<li><strong>Pet:</strong> %s (%s)</li>
				<li><strong>Status:</strong> %s</li>
			</ul>
			<p>Best regards,<br>PetConnect</p>
		`, owner.Name(), doctor.FirstName, doctor.LastName,
			input.Date, appointment.TimeSlot, appointment.PetName, appointment.PetType, appointment.Status)
		if err := utils.SendEmail(owner.Email, "Appointment Booked", body); err != nil {
			log.Printf("Failed to send booking confirmation to %s: %v", owner.Email, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Appointment booked",
		"appointment": appointment,
	})
}

// GetAppointmentsByDoctor lists a doctor's appointments, newest first.
// GET /appointments/doctor/:doctorId
func GetAppointmentsByDoctor(c *fiber.Ctx) error {
	doctorID := c.Params("doctorId")
	var appointments []models.Appointment
	if err := db.DB.Where("doctor_id = ?", doctorID).
		Order("date DESC, time_slot DESC").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"appointments": appointments})
}

// GetAppointmentsByUser lists a user's appointments, newest first.
// GET /appointments/user/:userId
func GetAppointmentsByUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	var appointments []models.Appointment
	if err := db.DB.Preload("Doctor").Where("user_id = ?", userID).
		Order("date DESC, time_slot DESC").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"appointments": appointments})
}

// UpdateAppointmentStatus moves an appointment to a new lifecycle state.
// PUT /appointments/:id/status
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	type statusInput struct {
		Status             models.AppointmentStatus `json:"status"`
		CancellationReason string                   `json:"cancellation_reason"`
	}

	input := new(statusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if !models.ValidStatus(input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status",
		})
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
		})
	}

	appointment.Status = input.Status
	if input.CancellationReason != "" {
		appointment.CancellationReason = input.CancellationReason
	}

	if err := db.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"appointment": appointment})
}
