package services

import (
	"context"
	"log"
	"strings"
	"time"

	"CareHub360/audit"
	"CareHub360/config"
	"CareHub360/metrics"
	"CareHub360/models"
	"CareHub360/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CreateAppointmentRequest struct {
	DoctorId    string `json:"doctorId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time"`
	Department  string `json:"department" binding:"required,department"`
	Description string `json:"description"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
}

// DoctorSummary is the doctor projection embedded in ledger listings.
type DoctorSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Department     string `json:"department"`
	Qualification  string `json:"qualification"`
	Specialization string `json:"specialization"`
}

// AppointmentView is one ledger entry enriched with its doctor's public
// fields. Doctor is nil when the referenced doctor no longer exists.
type AppointmentView struct {
	ID          string                 `json:"id"`
	Date        string                 `json:"date"`
	Time        string                 `json:"time"`
	Status      string                 `json:"status"`
	Department  string                 `json:"department"`
	Doctor      *DoctorSummary         `json:"doctor"`
	Patient     models.PatientSnapshot `json:"patient"`
	Description string                 `json:"description,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
}

/*
* Every patient snapshot field and the department are required
* Department must belong to the fixed set
 */
func ValidateCreateAppointment(req *CreateAppointmentRequest) error {
	if req.DoctorId == "" || req.Date == "" || req.Department == "" ||
		req.Name == "" || req.Email == "" || req.Phone == "" || req.DateOfBirth == "" {
		return util.ValidationError(util.MISSING_REQUIRED_FIELDS)
	}
	if !models.IsValidDepartment(req.Department) {
		return util.ValidationError(util.INVALID_DEPARTMENT)
	}
	return nil
}

/*
* Validate the request and normalize the date
* Resolve the doctor against the directory
* When a time was chosen, claim the slot first with the conditional write
* Insert the ledger entry; unbook the slot if the insert fails
 */
func CreateAppointment(ctx context.Context, req *CreateAppointmentRequest) (*models.Appointment, error) {
	if err := ValidateCreateAppointment(req); err != nil {
		return nil, err
	}
	date, err := util.NormalizeDate(req.Date)
	if err != nil {
		return nil, err
	}

	doctor, err := GetDoctor(ctx, req.DoctorId)
	if err != nil {
		return nil, err
	}

	slotBooked := false
	startTime := ""
	if req.Time != "" {
		if startTime, err = util.ParseClock(req.Time); err != nil {
			return nil, err
		}
		if err := BookSlot(ctx, req.DoctorId, date, startTime, ""); err != nil {
			return nil, err
		}
		slotBooked = true
	}

	appointment := &models.Appointment{
		ID:          primitive.NewObjectID(),
		DoctorId:    doctor.ID,
		Date:        date,
		Time:        startTime,
		Department:  req.Department,
		Status:      models.StatusScheduled,
		Description: req.Description,
		Patient: models.PatientSnapshot{
			Name:        req.Name,
			Email:       strings.ToLower(strings.TrimSpace(req.Email)),
			Phone:       req.Phone,
			DateOfBirth: req.DateOfBirth,
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	collection := config.OpenCollection(util.AppointmentCollection)
	if _, err := collection.InsertOne(ctx, appointment); err != nil {
		if slotBooked {
			if unbookErr := UnbookSlot(ctx, req.DoctorId, date, startTime); unbookErr != nil {
				log.Println("Error compensating slot booking:", unbookErr)
			}
		}
		return nil, util.StoreError(err)
	}

	metrics.IncAppointmentsCreated()
	audit.Record(ctx, appointment.Patient.Email, "create", "appointment", appointment.ID.Hex(),
		doctor.Name+" on "+date)
	go SendBookingConfirmation(appointment, doctor.Name)
	return appointment, nil
}

/*
* Sort by date then creation time, newest first
* Enrich each entry with the referenced doctor's public fields
 */
func ListAppointments(ctx context.Context) ([]AppointmentView, error) {
	collection := config.OpenCollection(util.AppointmentCollection)
	cursor, err := collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, util.StoreError(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, util.StoreError(err)
	}

	doctors, err := fetchDoctorSummaries(ctx, appointments)
	if err != nil {
		return nil, err
	}

	views := []AppointmentView{}
	for _, app := range appointments {
		view := AppointmentView{
			ID:          app.ID.Hex(),
			Date:        app.Date,
			Time:        app.Time,
			Status:      app.Status,
			Department:  app.Department,
			Patient:     app.Patient,
			Description: app.Description,
			CreatedAt:   app.CreatedAt,
		}
		if summary, ok := doctors[app.DoctorId]; ok {
			view.Doctor = summary
		}
		views = append(views, view)
	}
	return views, nil
}

func fetchDoctorSummaries(ctx context.Context, appointments []models.Appointment) (map[primitive.ObjectID]*DoctorSummary, error) {
	ids := []primitive.ObjectID{}
	seen := map[primitive.ObjectID]bool{}
	for _, app := range appointments {
		if !seen[app.DoctorId] {
			seen[app.DoctorId] = true
			ids = append(ids, app.DoctorId)
		}
	}
	summaries := map[primitive.ObjectID]*DoctorSummary{}
	if len(ids) == 0 {
		return summaries, nil
	}

	collection := config.OpenCollection(util.DoctorCollection)
	cursor, err := collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, util.StoreError(err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, util.StoreError(err)
	}
	for i := range doctors {
		d := doctors[i]
		summaries[d.ID] = &DoctorSummary{
			ID:             d.ID.Hex(),
			Name:           d.Name,
			Department:     d.Department,
			Qualification:  d.Qualification,
			Specialization: d.Specialization,
		}
	}
	return summaries, nil
}

func GetAppointment(ctx context.Context, appointmentId string) (*models.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(appointmentId)
	if err != nil {
		return nil, util.NotFoundError(util.APPOINTMENT_NOT_FOUND)
	}
	collection := config.OpenCollection(util.AppointmentCollection)
	appointment := &models.Appointment{}
	err = collection.FindOne(ctx, bson.M{"_id": oid}).Decode(appointment)
	if err == mongo.ErrNoDocuments {
		return nil, util.NotFoundError(util.APPOINTMENT_NOT_FOUND)
	}
	if err != nil {
		return nil, util.StoreError(err)
	}
	return appointment, nil
}

/*
* Validate the target status against the lifecycle
* Re-applying the current status is a successful no-op
* Terminal states accept nothing else
 */
func UpdateAppointmentStatus(ctx context.Context, appointmentId, status, actor string) (*models.Appointment, error) {
	if status == "" {
		return nil, util.ValidationError(util.STATUS_REQUIRED)
	}
	if !models.IsValidStatus(status) {
		return nil, util.ValidationError(util.INVALID_STATUS)
	}

	appointment, err := GetAppointment(ctx, appointmentId)
	if err != nil {
		return nil, err
	}
	if appointment.Status == status {
		return appointment, nil
	}
	if !models.CanTransition(appointment.Status, status) {
		return nil, util.ValidationError(util.INVALID_STATUS_TRANSITION)
	}

	collection := config.OpenCollection(util.AppointmentCollection)
	updated := &models.Appointment{}
	err = collection.FindOneAndUpdate(ctx,
		bson.M{"_id": appointment.ID},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(updated)
	if err == mongo.ErrNoDocuments {
		return nil, util.NotFoundError(util.APPOINTMENT_NOT_FOUND)
	}
	if err != nil {
		return nil, util.StoreError(err)
	}

	metrics.IncStatusUpdate(status)
	audit.Record(ctx, actor, "updateStatus", "appointment", appointmentId, appointment.Status+" -> "+status)
	return updated, nil
}

/*
* Hard delete, per the observed contract
* The audit trail keeps the trace the ledger loses
 */
func DeleteAppointment(ctx context.Context, appointmentId, actor string) error {
	oid, err := primitive.ObjectIDFromHex(appointmentId)
	if err != nil {
		return util.NotFoundError(util.APPOINTMENT_NOT_FOUND)
	}
	collection := config.OpenCollection(util.AppointmentCollection)
	result, err := collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return util.StoreError(err)
	}
	if result.DeletedCount == 0 {
		return util.NotFoundError(util.APPOINTMENT_NOT_FOUND)
	}
	audit.Record(ctx, actor, "delete", "appointment", appointmentId, "")
	return nil
}
