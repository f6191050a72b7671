package fixtures

import (
	"context"
	"log"
	"time"

	"CareHub360/config"
	"CareHub360/models"
	"CareHub360/services"
	"CareHub360/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var sampleDoctors = []models.Doctor{
	{Name: "John Smith", Department: "Cardiology", Qualification: "MD, FACC", Experience: 15, Specialization: "Interventional Cardiology"},
	{Name: "Sarah Johnson", Department: "Pediatrics", Qualification: "MD, FAAP", Experience: 12, Specialization: "Pediatric Emergency Medicine"},
	{Name: "Michael Chen", Department: "Ophthalmology", Qualification: "MD, FACS", Experience: 10, Specialization: "Retinal Surgery"},
	{Name: "Emily Brown", Department: "Dentistry", Qualification: "DDS, MS", Experience: 8, Specialization: "Orthodontics"},
	{Name: "David Wilson", Department: "Anesthesiology", Qualification: "MD, FASA", Experience: 14, Specialization: "Cardiac Anesthesia"},
	{Name: "Lisa Anderson", Department: "Cardiology", Qualification: "MD, PhD", Experience: 20, Specialization: "Electrophysiology"},
	{Name: "Robert Taylor", Department: "Pediatrics", Qualification: "MD, MPH", Experience: 11, Specialization: "Neonatology"},
	{Name: "Maria Garcia", Department: "Ophthalmology", Qualification: "MD, FACS", Experience: 9, Specialization: "Cataract Surgery"},
}

// LoadDoctors upserts the sample directory. Loading is idempotent: doctors
// already present keep their calendars and booking state untouched.
func LoadDoctors(ctx context.Context) error {
	collection := config.OpenCollection(util.DoctorCollection)

	inserted := 0
	for _, doctor := range sampleDoctors {
		filter := bson.M{"name": doctor.Name, "department": doctor.Department}
		update := bson.M{"$setOnInsert": bson.M{
			"name":           doctor.Name,
			"department":     doctor.Department,
			"qualification":  doctor.Qualification,
			"experience":     doctor.Experience,
			"specialization": doctor.Specialization,
			"available":      true,
			"availability":   services.DefaultAvailability(time.Now()),
			"createdAt":      time.Now().UTC(),
		}}
		result, err := collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		if err != nil {
			return err
		}
		if result.UpsertedCount > 0 {
			inserted++
		}
	}
	log.Printf("Fixtures loaded: %d doctors inserted, %d already present", inserted, len(sampleDoctors)-inserted)
	return nil
}
