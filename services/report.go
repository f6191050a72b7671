package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"CareHub360/audit"
	"CareHub360/config"
	"CareHub360/metrics"
	"CareHub360/models"
	"CareHub360/util"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UploadReportInput struct {
	Title        string
	Description  string
	PatientName  string
	PatientEmail string
	DoctorName   string
	ReportDate   string
	FileName     string
	MimeType     string
	File         []byte
}

// ReportView is the listing shape the report pages consume.
type ReportView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileUrl     string `json:"file_url"`
	FileName    string `json:"file_name"`
	CreatedAt   string `json:"created_at"`
	DoctorName  string `json:"doctor_name"`
	PatientName string `json:"patient_name"`
}

func ValidateUploadReport(input *UploadReportInput) error {
	if input.Title == "" || input.Description == "" || input.PatientName == "" ||
		input.DoctorName == "" || len(input.File) == 0 || input.FileName == "" {
		return util.ValidationError(util.MISSING_REQUIRED_FIELDS)
	}
	if strings.TrimSpace(input.PatientEmail) == "" {
		return util.ValidationError(util.PATIENT_EMAIL_REQUIRED)
	}
	return nil
}

/*
* Resolve or create the patient account
* The named doctor account must exist
* Store the file bytes on the document itself
 */
func UploadReport(ctx context.Context, input *UploadReportInput, actor string) (*models.Report, error) {
	if err := ValidateUploadReport(input); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(input.PatientEmail))

	patient, err := FindOrCreatePatient(ctx, input.PatientName, email)
	if err != nil {
		return nil, err
	}
	doctor, err := FindDoctorAccountByName(ctx, input.DoctorName)
	if err != nil {
		return nil, err
	}

	uploadedAt := time.Now().UTC()
	if input.ReportDate != "" {
		if normalized, err := util.NormalizeDate(input.ReportDate); err == nil {
			uploadedAt, _ = time.Parse(util.DateLayout, normalized)
		}
	}

	report := &models.Report{
		ID:           primitive.NewObjectID(),
		Title:        input.Title,
		Description:  input.Description,
		PatientName:  input.PatientName,
		PatientEmail: email,
		DoctorName:   input.DoctorName,
		PatientId:    patient.ID,
		DoctorId:     doctor.ID,
		File:         input.File,
		FileName:     input.FileName,
		MimeType:     input.MimeType,
		FileUrl:      "/reports/files/" + uuid.NewString() + "-" + input.FileName,
		UploadedAt:   uploadedAt,
	}

	collection := config.OpenCollection(util.ReportCollection)
	if _, err := collection.InsertOne(ctx, report); err != nil {
		return nil, util.StoreError(err)
	}

	metrics.IncReportsUploaded()
	audit.Record(ctx, actor, "create", "report", report.ID.Hex(), report.Title)
	return report, nil
}

/*
* Filter by patient id or (case-insensitively) by email
* Newest uploads first
 */
func ListReports(ctx context.Context, patientId, email string) ([]ReportView, error) {
	filter := bson.M{}
	switch {
	case patientId != "":
		oid, err := primitive.ObjectIDFromHex(patientId)
		if err != nil {
			return nil, util.ValidationError(util.INVALID_OBJECT_ID)
		}
		filter["patientId"] = oid
	case email != "":
		normalized := strings.ToLower(strings.TrimSpace(email))
		filter["patientEmail"] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(normalized) + "$",
			Options: "i",
		}
	default:
		return nil, util.ValidationError(util.PATIENT_ID_OR_EMAIL_REQUIRED)
	}

	collection := config.OpenCollection(util.ReportCollection)
	cursor, err := collection.Find(ctx, filter,
		options.Find().
			SetSort(bson.D{{Key: "uploadedAt", Value: -1}}).
			SetProjection(bson.M{"file": 0}))
	if err != nil {
		return nil, util.StoreError(err)
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, util.StoreError(err)
	}

	views := []ReportView{}
	for _, r := range reports {
		views = append(views, ReportView{
			ID:          r.ID.Hex(),
			Title:       r.Title,
			Description: r.Description,
			FileUrl:     "/reports/" + r.ID.Hex() + "/download",
			FileName:    r.FileName,
			CreatedAt:   r.UploadedAt.UTC().Format(time.RFC3339),
			DoctorName:  r.DoctorName,
			PatientName: r.PatientName,
		})
	}
	return views, nil
}

func GetReport(ctx context.Context, reportId string) (*models.Report, error) {
	oid, err := primitive.ObjectIDFromHex(reportId)
	if err != nil {
		return nil, util.NotFoundError(util.REPORT_NOT_FOUND)
	}
	collection := config.OpenCollection(util.ReportCollection)
	report := &models.Report{}
	err = collection.FindOne(ctx, bson.M{"_id": oid}).Decode(report)
	if err == mongo.ErrNoDocuments {
		return nil, util.NotFoundError(util.REPORT_NOT_FOUND)
	}
	if err != nil {
		return nil, util.StoreError(err)
	}
	return report, nil
}

func DeleteReport(ctx context.Context, reportId, actor string) error {
	oid, err := primitive.ObjectIDFromHex(reportId)
	if err != nil {
		return util.NotFoundError(util.REPORT_NOT_FOUND)
	}
	collection := config.OpenCollection(util.ReportCollection)
	result, err := collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return util.StoreError(err)
	}
	if result.DeletedCount == 0 {
		return util.NotFoundError(util.REPORT_NOT_FOUND)
	}
	audit.Record(ctx, actor, "delete", "report", reportId, "")
	return nil
}
