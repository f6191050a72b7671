package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment lifecycle statuses. Scheduled moves to completed or cancelled,
// both terminal; nothing moves back to scheduled.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

func IsValidStatus(status string) bool {
	switch status {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether the ledger accepts a move from one status to
// another. Re-applying the current status is a permitted no-op.
func CanTransition(from, to string) bool {
	if !IsValidStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	return from == StatusScheduled
}

// PatientSnapshot is the patient's contact details captured at booking time,
// independent of any persisted account.
type PatientSnapshot struct {
	Name        string `json:"name" bson:"name"`
	Email       string `json:"email" bson:"email"`
	Phone       string `json:"phone" bson:"phone"`
	DateOfBirth string `json:"dateOfBirth" bson:"dateOfBirth"`
}

type Appointment struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DoctorId    primitive.ObjectID `json:"doctorId" bson:"doctorId"`
	Date        string             `json:"date" bson:"date"`
	Time        string             `json:"time" bson:"time"`
	Department  string             `json:"department" bson:"department"`
	Status      string             `json:"status" bson:"status"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Patient     PatientSnapshot    `json:"patient" bson:"patient"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
