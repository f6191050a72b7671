package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account roles. Every account carries exactly one; role claims from clients
// are never trusted directly, only the verified token's userType is.
const (
	UserTypeDoctor  = "doctor"
	UserTypePatient = "patient"
	UserTypeAdmin   = "admin"
)

func IsValidUserType(userType string) bool {
	switch userType {
	case UserTypeDoctor, UserTypePatient, UserTypeAdmin:
		return true
	}
	return false
}

type User struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email" bson:"email"`
	Password   string             `json:"-" bson:"password"`
	UserType   string             `json:"userType" bson:"userType"`
	ProfilePic string             `json:"profilePic,omitempty" bson:"profilePic,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	LastLogin  time.Time          `json:"lastLogin" bson:"lastLogin"`
}
