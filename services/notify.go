package services

import (
	"fmt"
	"log"
	"os"

	"CareHub360/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers a message through SendGrid. Mail is optional plumbing:
// without an API key the send is skipped and logged, never failed.
func SendEmail(toEmail, toName, subject, plainText, htmlContent string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		log.Println("SENDGRID_API_KEY not set, skipping email to", toEmail)
		return nil
	}
	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		log.Println("SENDGRID_FROM_EMAIL not set, skipping email to", toEmail)
		return nil
	}
	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "CareHub360"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)

	response, err := sendgrid.NewSendClient(apiKey).Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		log.Printf("SendGrid returned status %d for %s: %s", response.StatusCode, toEmail, response.Body)
		return fmt.Errorf("sendgrid status %d", response.StatusCode)
	}
	log.Printf("Email sent to %s (subject: %s)", toEmail, subject)
	return nil
}

// SendBookingConfirmation mails the patient after a successful booking.
func SendBookingConfirmation(appointment *models.Appointment, doctorName string) {
	when := appointment.Date
	if appointment.Time != "" {
		when += " at " + appointment.Time
	}
	subject := "Your appointment is scheduled"
	plain := fmt.Sprintf("Hello %s,\n\nYour appointment with Dr. %s (%s) is scheduled for %s.\n\nThank you!",
		appointment.Patient.Name, doctorName, appointment.Department, when)
	html := fmt.Sprintf("<p>Hello %s,</p><p>Your appointment with Dr. %s (%s) is scheduled for <b>%s</b>.</p><p>Thank you!</p>",
		appointment.Patient.Name, doctorName, appointment.Department, when)
	if err := SendEmail(appointment.Patient.Email, appointment.Patient.Name, subject, plain, html); err != nil {
		log.Println("Error sending booking confirmation:", err)
	}
}

// SendAppointmentReminder mails the patient the day before the visit.
func SendAppointmentReminder(appointment *models.Appointment, doctorName string) {
	when := appointment.Date
	if appointment.Time != "" {
		when += " at " + appointment.Time
	}
	subject := "Appointment reminder"
	plain := fmt.Sprintf("Hello %s,\n\nThis is a reminder of your appointment with Dr. %s (%s) on %s.\n\nThank you!",
		appointment.Patient.Name, doctorName, appointment.Department, when)
	html := fmt.Sprintf("<p>Hello %s,</p><p>This is a reminder of your appointment with Dr. %s (%s) on <b>%s</b>.</p><p>Thank you!</p>",
		appointment.Patient.Name, doctorName, appointment.Department, when)
	if err := SendEmail(appointment.Patient.Email, appointment.Patient.Name, subject, plain, html); err != nil {
		log.Println("Error sending appointment reminder:", err)
	}
}
