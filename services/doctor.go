package services

import (
	"context"
	"log"
	"time"

	"CareHub360/audit"
	"CareHub360/config"
	"CareHub360/models"
	"CareHub360/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CreateDoctorRequest struct {
	Name           string                `json:"name" binding:"required"`
	Department     string                `json:"department" binding:"required,department"`
	Qualification  string                `json:"qualification" binding:"required"`
	Experience     *int                  `json:"experience" binding:"required"`
	Specialization string                `json:"specialization" binding:"required"`
	ImageUrl       string                `json:"imageUrl"`
	Available      *bool                 `json:"available"`
	Availability   []models.Availability `json:"availability"`
}

/*
* Check every required field is present
* Department must belong to the fixed set
* Experience must be a non-negative integer
 */
func ValidateCreateDoctor(req *CreateDoctorRequest) error {
	if req.Name == "" || req.Department == "" || req.Qualification == "" ||
		req.Specialization == "" || req.Experience == nil {
		return util.ValidationError(util.MISSING_REQUIRED_FIELDS)
	}
	if !models.IsValidDepartment(req.Department) {
		return util.ValidationError(util.INVALID_DEPARTMENT)
	}
	if *req.Experience < 0 {
		return util.ValidationError(util.INVALID_EXPERIENCE)
	}
	return nil
}

// DefaultAvailability builds the standard booking calendar for a new doctor:
// the next 30 calendar days starting from start, weekends excluded, with two
// one-hour slots per day.
func DefaultAvailability(start time.Time) []models.Availability {
	start = start.UTC()
	var availability []models.Availability
	for i := 0; i < 30; i++ {
		date := start.AddDate(0, 0, i)
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			continue
		}
		availability = append(availability, models.Availability{
			Date: date.Format(util.DateLayout),
			TimeSlots: []models.TimeSlot{
				{StartTime: "09:00", EndTime: "10:00", IsBooked: false},
				{StartTime: "10:00", EndTime: "11:00", IsBooked: false},
			},
		})
	}
	return availability
}

/*
* Validate the input fields
* Generate the default calendar unless the caller supplied one
* Save to db and cache
 */
func CreateDoctor(ctx context.Context, req *CreateDoctorRequest, actor string) (*models.Doctor, error) {
	if err := ValidateCreateDoctor(req); err != nil {
		return nil, err
	}

	availability := req.Availability
	if len(availability) == 0 {
		availability = DefaultAvailability(time.Now())
	} else {
		for i := range availability {
			normalized, err := util.NormalizeDate(availability[i].Date)
			if err != nil {
				return nil, err
			}
			availability[i].Date = normalized
		}
	}

	doctor := &models.Doctor{
		ID:             primitive.NewObjectID(),
		Name:           req.Name,
		Department:     req.Department,
		Qualification:  req.Qualification,
		Experience:     *req.Experience,
		Specialization: req.Specialization,
		ImageUrl:       req.ImageUrl,
		Available:      true,
		Availability:   availability,
		CreatedAt:      time.Now().UTC(),
	}
	if req.Available != nil {
		doctor.Available = *req.Available
	}

	collection := config.OpenCollection(util.DoctorCollection)
	if _, err := collection.InsertOne(ctx, doctor); err != nil {
		return nil, util.StoreError(err)
	}

	if err := config.SetCache(ctx, util.DoctorKey+doctor.ID.Hex(), doctor); err != nil {
		log.Println("Error caching new doctor:", err)
	}
	audit.Record(ctx, actor, "create", "doctor", doctor.ID.Hex(), doctor.Name+" ("+doctor.Department+")")
	return doctor, nil
}

/*
* Optional exact department filter
* No pagination, insertion order
 */
func ListDoctors(ctx context.Context, department string) ([]models.Doctor, error) {
	filter := bson.M{}
	if department != "" {
		filter["department"] = department
	}

	collection := config.OpenCollection(util.DoctorCollection)
	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return nil, util.StoreError(err)
	}
	defer cursor.Close(ctx)

	doctors := []models.Doctor{}
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, util.StoreError(err)
	}
	return doctors, nil
}

/*
* Try the cache first
* Fall back to the store and refresh the cache
 */
func GetDoctor(ctx context.Context, doctorId string) (*models.Doctor, error) {
	oid, err := primitive.ObjectIDFromHex(doctorId)
	if err != nil {
		return nil, util.NotFoundError(util.DOCTOR_NOT_FOUND)
	}

	key := util.DoctorKey + doctorId
	cached := &models.Doctor{}
	if found, err := config.GetCache(ctx, key, cached); err != nil {
		log.Println("Error reading doctor from cache:", err)
	} else if found {
		return cached, nil
	}

	collection := config.OpenCollection(util.DoctorCollection)
	doctor := &models.Doctor{}
	err = collection.FindOne(ctx, bson.M{"_id": oid}).Decode(doctor)
	if err == mongo.ErrNoDocuments {
		return nil, util.NotFoundError(util.DOCTOR_NOT_FOUND)
	}
	if err != nil {
		return nil, util.StoreError(err)
	}

	if err := config.SetCache(ctx, key, doctor); err != nil {
		log.Println("Error caching doctor:", err)
	}
	return doctor, nil
}

/*
* Toggle the global visibility flag
* Refresh the cache with the updated document
 */
func SetDoctorAvailable(ctx context.Context, doctorId string, available bool, actor string) (*models.Doctor, error) {
	oid, err := primitive.ObjectIDFromHex(doctorId)
	if err != nil {
		return nil, util.NotFoundError(util.DOCTOR_NOT_FOUND)
	}

	collection := config.OpenCollection(util.DoctorCollection)
	doctor := &models.Doctor{}
	err = collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"available": available}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(doctor)
	if err == mongo.ErrNoDocuments {
		return nil, util.NotFoundError(util.DOCTOR_NOT_FOUND)
	}
	if err != nil {
		return nil, util.StoreError(err)
	}

	key := util.DoctorKey + doctorId
	if err := config.DeleteCache(ctx, key); err != nil {
		log.Println("Error deleting doctor from cache:", err)
	}
	if err := config.SetCache(ctx, key, doctor); err != nil {
		log.Println("Error caching updated doctor:", err)
	}
	audit.Record(ctx, actor, "setAvailable", "doctor", doctorId, doctor.Name)
	return doctor, nil
}
