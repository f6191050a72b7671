package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Departments the hospital serves. Department values are validated against
// this set both when a doctor is created and when an appointment is booked.
var Departments = []string{
	"Cardiology",
	"Dentistry",
	"Ophthalmology",
	"Pediatrics",
	"Anesthesiology",
}

func IsValidDepartment(department string) bool {
	for _, d := range Departments {
		if d == department {
			return true
		}
	}
	return false
}

type TimeSlot struct {
	StartTime string `json:"startTime" bson:"startTime"`
	EndTime   string `json:"endTime" bson:"endTime"`
	IsBooked  bool   `json:"isBooked" bson:"isBooked"`
}

// Availability is one calendar date plus its set of bookable slots. Date is
// a normalized UTC calendar day (YYYY-MM-DD); dates are unique within one
// doctor's calendar.
type Availability struct {
	Date      string     `json:"date" bson:"date"`
	TimeSlots []TimeSlot `json:"timeSlots" bson:"timeSlots"`
}

type Doctor struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Department     string             `json:"department" bson:"department"`
	Qualification  string             `json:"qualification" bson:"qualification"`
	Experience     int                `json:"experience" bson:"experience"`
	Specialization string             `json:"specialization" bson:"specialization"`
	ImageUrl       string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Available      bool               `json:"available" bson:"available"`
	Availability   []Availability     `json:"availability" bson:"availability"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}
