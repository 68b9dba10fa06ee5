package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/petconnect/petconnect/db"
	"github.com/petconnect/petconnect/models"
	"github.com/petconnect/petconnect/utils"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for appointments in the next hour
	_, err := c.AddFunc("* * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders emails owners whose confirmed appointment starts
// roughly an hour from now. ReminderSent keeps each booking to one email.
func sendAppointmentReminders() {
	now := time.Now()
	dayStart, dayEnd := utils.DayBounds(now)

	var appointments []models.Appointment
	err := db.DB.Preload("User").Preload("Doctor").
		Where("status = ? AND reminder_sent = ? AND date BETWEEN ? AND ?",
			models.StatusConfirmed, false, dayStart, dayEnd).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Reminder query failed: %v", err)
		return
	}

	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	for _, appointment := range appointments {
		start, err := utils.SlotStart(appointment.Date, appointment.TimeSlot)
		if err != nil {
			log.Printf("Skipping reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		if start.Before(startWindow) || start.After(endWindow) {
			continue
		}

		body := fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>This is a reminder of your upcoming appointment.</p>
			<ul>
				<li><strong>Doctor:</strong> %s %s</li>
				<li><strong>Time:</strong> %s</li>
				<li><strong>Pet:</strong> %s</li>
			</ul>
			<p>Best regards,<br>PetConnect</p>
		`, appointment.User.Name(),
			appointment.Doctor.FirstName, appointment.Doctor.LastName,
			appointment.TimeSlot, appointment.PetName)

		if err := utils.SendEmail(appointment.User.Email, "Appointment Reminder", body); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}

		if err := db.DB.Model(&appointment).Update("reminder_sent", true).Error; err != nil {
			log.Printf("Failed to mark reminder sent for appointment %d: %v", appointment.ID, err)
		}
	}
}
