// File: database/repository/timeslot/crud.go
package timeslotRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/models"
)

func (r *mongoTimeSlotRepo) Create(ctx context.Context, slot models.TimeSlot) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicateSlot
		}
		return "", fmt.Errorf("failed to insert time slot: %w", err)
	}
	return slot.ID, nil
}

// DeleteByValue removes every document holding the given slot value. Uniqueness
// was historically not enforced, so stale duplicates may still exist and all of
// them must go.
func (r *mongoTimeSlotRepo) DeleteByValue(ctx context.Context, slot string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"slot": slot})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *mongoTimeSlotRepo) ListAll(ctx context.Context) ([]models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.TimeSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding time slots: %w", err)
	}
	return slots, nil
}
