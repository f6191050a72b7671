package jobs

import (
	"context"
	"log"
	"time"

	"CareHub360/config"
	"CareHub360/models"
	"CareHub360/services"
	"CareHub360/util"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// StartDailyScheduler starts the reminder job. It lives outside the booking
// workflow and never mutates booking state.
func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 08:00 UTC
	c.AddFunc("0 8 * * *", func() {
		log.Println("Running daily appointment reminder job...")
		SendDailyReminders()
	})

	c.Start()
}

/*
* Find tomorrow's scheduled appointments
* Mail each patient a reminder
 */
func SendDailyReminders() {
	ctx := context.Background()
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format(util.DateLayout)

	collection := config.OpenCollection(util.AppointmentCollection)
	cursor, err := collection.Find(ctx, bson.M{
		"date":   tomorrow,
		"status": models.StatusScheduled,
	})
	if err != nil {
		log.Println("Error fetching tomorrow's appointments:", err)
		return
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		log.Println("Error decoding tomorrow's appointments:", err)
		return
	}
	if len(appointments) == 0 {
		log.Println("No appointments scheduled for", tomorrow)
		return
	}

	for i := range appointments {
		appointment := &appointments[i]
		doctorName := ""
		doctor, err := services.GetDoctor(ctx, appointment.DoctorId.Hex())
		if err != nil {
			log.Println("Error resolving doctor for reminder:", err)
		} else {
			doctorName = doctor.Name
		}
		services.SendAppointmentReminder(appointment, doctorName)
	}
	log.Printf("Sent %d appointment reminders for %s", len(appointments), tomorrow)
}
