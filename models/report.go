package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report is an uploaded medical document. The file bytes live in the
// document itself; downloads stream them back with the stored mime type.
type Report struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description" bson:"description"`
	PatientName  string             `json:"patientName" bson:"patientName"`
	PatientEmail string             `json:"patientEmail" bson:"patientEmail"`
	DoctorName   string             `json:"doctorName" bson:"doctorName"`
	PatientId    primitive.ObjectID `json:"patientId" bson:"patientId"`
	DoctorId     primitive.ObjectID `json:"doctorId" bson:"doctorId"`
	File         []byte             `json:"-" bson:"file"`
	FileName     string             `json:"fileName" bson:"fileName"`
	MimeType     string             `json:"mimeType" bson:"mimeType"`
	FileUrl      string             `json:"fileUrl" bson:"fileUrl"`
	UploadedAt   time.Time          `json:"uploadedAt" bson:"uploadedAt"`
}
