package migrations

import (
	"context"
	"log"

	"CareHub360/config"
	"CareHub360/models"
	"CareHub360/util"

	"go.mongodb.org/mongo-driver/bson"
)

// DedupeAvailability collapses duplicate calendar dates within a doctor's
// availability list. The first entry per date wins; a slot counts as booked
// if any duplicate had it booked. Legacy records predating the uniqueness
// rule are the only expected source of duplicates.
func DedupeAvailability(availability []models.Availability) ([]models.Availability, bool) {
	byDate := map[string]int{}
	deduped := []models.Availability{}
	changed := false

	for _, entry := range availability {
		date := entry.Date
		if normalized, err := util.NormalizeDate(entry.Date); err == nil {
			if normalized != entry.Date {
				changed = true
			}
			date = normalized
		}

		idx, seen := byDate[date]
		if !seen {
			byDate[date] = len(deduped)
			deduped = append(deduped, models.Availability{Date: date, TimeSlots: entry.TimeSlots})
			continue
		}

		changed = true
		kept := &deduped[idx]
		for _, slot := range entry.TimeSlots {
			if !slot.IsBooked {
				continue
			}
			for i := range kept.TimeSlots {
				if kept.TimeSlots[i].StartTime == slot.StartTime && kept.TimeSlots[i].EndTime == slot.EndTime {
					kept.TimeSlots[i].IsBooked = true
				}
			}
		}
	}
	return deduped, changed
}

// DedupeAvailabilityDates rewrites every doctor whose calendar holds
// duplicate or unnormalized dates.
func DedupeAvailabilityDates() {
	ctx := context.Background()
	collection := config.OpenCollection(util.DoctorCollection)

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		log.Println("Migration 001: error fetching doctors:", err)
		return
	}
	defer cursor.Close(ctx)

	updated := 0
	for cursor.Next(ctx) {
		var doctor models.Doctor
		if err := cursor.Decode(&doctor); err != nil {
			log.Println("Migration 001: error decoding doctor:", err)
			continue
		}
		deduped, changed := DedupeAvailability(doctor.Availability)
		if !changed {
			continue
		}
		_, err := collection.UpdateOne(ctx,
			bson.M{"_id": doctor.ID},
			bson.M{"$set": bson.M{"availability": deduped}})
		if err != nil {
			log.Println("Migration 001: error updating doctor:", err)
			continue
		}
		updated++
	}
	log.Printf("Migration 001: deduplicated availability for %d doctors", updated)
}
