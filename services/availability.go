package services

import (
	"context"
	"log"

	"CareHub360/config"
	"CareHub360/metrics"
	"CareHub360/models"
	"CareHub360/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
* Locate the calendar entry for the normalized date
* Return its slot list
 */
func FindSlotsForDate(ctx context.Context, doctorId, date string) (string, []models.TimeSlot, error) {
	normalized, err := util.NormalizeDate(date)
	if err != nil {
		return "", nil, err
	}
	doctor, err := GetDoctor(ctx, doctorId)
	if err != nil {
		return "", nil, err
	}
	if len(doctor.Availability) == 0 {
		return "", nil, util.ValidationError(util.NO_AVAILABILITY_SET)
	}
	for _, entry := range doctor.Availability {
		if entry.Date == normalized {
			return normalized, entry.TimeSlots, nil
		}
	}
	return "", nil, util.ValidationError(util.NO_AVAILABILITY_FOR_DATE)
}

// FindSlot scans a calendar for the slot matching the given times. An empty
// endTime matches on start time alone, the way the booking workflow selects
// a slot.
func FindSlot(availability []models.Availability, date, startTime, endTime string) (*models.TimeSlot, bool) {
	for _, entry := range availability {
		if entry.Date != date {
			continue
		}
		for i := range entry.TimeSlots {
			slot := &entry.TimeSlots[i]
			if slot.StartTime != startTime {
				continue
			}
			if endTime != "" && slot.EndTime != endTime {
				continue
			}
			return slot, true
		}
		return nil, true
	}
	return nil, false
}

// ClassifySlotFailure explains why a conditional slot write matched nothing,
// using a fresh read of the doctor's calendar.
func ClassifySlotFailure(doctor *models.Doctor, date, startTime, endTime string) error {
	if len(doctor.Availability) == 0 {
		return util.ValidationError(util.NO_AVAILABILITY_SET)
	}
	slot, dateFound := FindSlot(doctor.Availability, date, startTime, endTime)
	if !dateFound {
		return util.ValidationError(util.NO_AVAILABILITY_FOR_DATE)
	}
	if slot == nil {
		return util.ValidationError(util.INVALID_TIME_SLOT)
	}
	// Slot exists; either it was booked, or a concurrent caller beat us to
	// it between the write and this read. Both are the same answer.
	return util.ConflictError(util.SLOT_ALREADY_BOOKED)
}

/*
* Single conditional write keyed on the unbooked state
* Two concurrent callers for the same slot resolve to one winner
* On no-op, re-read and classify the failure
 */
func BookSlot(ctx context.Context, doctorId, date, startTime, endTime string) error {
	oid, err := primitive.ObjectIDFromHex(doctorId)
	if err != nil {
		return util.NotFoundError(util.DOCTOR_NOT_FOUND)
	}
	normalized, err := util.NormalizeDate(date)
	if err != nil {
		return err
	}
	start, err := util.ParseClock(startTime)
	if err != nil {
		return err
	}
	end := ""
	if endTime != "" {
		if end, err = util.ParseClock(endTime); err != nil {
			return err
		}
	}

	slotFilter := bson.M{"slot.startTime": start, "slot.isBooked": false}
	if end != "" {
		slotFilter["slot.endTime"] = end
	}

	collection := config.OpenCollection(util.DoctorCollection)
	result, err := collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"availability.$[day].timeSlots.$[slot].isBooked": true}},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{
				bson.M{"day.date": normalized},
				slotFilter,
			},
		}),
	)
	if err != nil {
		return util.StoreError(err)
	}
	if result.MatchedCount == 0 {
		return util.NotFoundError(util.DOCTOR_NOT_FOUND)
	}

	if result.ModifiedCount == 0 {
		if err := config.DeleteCache(ctx, util.DoctorKey+doctorId); err != nil {
			log.Println("Error deleting doctor from cache:", err)
		}
		doctor, err := GetDoctor(ctx, doctorId)
		if err != nil {
			return err
		}
		failure := ClassifySlotFailure(doctor, normalized, start, end)
		if appErr, ok := failure.(*util.AppError); ok && appErr.Message == util.SLOT_ALREADY_BOOKED {
			metrics.IncBookingConflicts()
		}
		return failure
	}

	metrics.IncSlotsBooked()
	if err := config.DeleteCache(ctx, util.DoctorKey+doctorId); err != nil {
		log.Println("Error deleting doctor from cache:", err)
	}
	return nil
}

// UnbookSlot reverses a slot booking. It is the compensating action when an
// appointment insert fails after its slot was already claimed.
func UnbookSlot(ctx context.Context, doctorId, date, startTime string) error {
	oid, err := primitive.ObjectIDFromHex(doctorId)
	if err != nil {
		return util.NotFoundError(util.DOCTOR_NOT_FOUND)
	}

	collection := config.OpenCollection(util.DoctorCollection)
	_, err = collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"availability.$[day].timeSlots.$[slot].isBooked": false}},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{
				bson.M{"day.date": date},
				bson.M{"slot.startTime": startTime, "slot.isBooked": true},
			},
		}),
	)
	if err != nil {
		return util.StoreError(err)
	}
	if err := config.DeleteCache(ctx, util.DoctorKey+doctorId); err != nil {
		log.Println("Error deleting doctor from cache:", err)
	}
	return nil
}
