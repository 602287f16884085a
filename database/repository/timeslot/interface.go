// File: database/repository/timeslot/interface.go
package timeslotRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/database"
	"salonbook/models"
)

type TimeSlotRepository interface {
	Create(ctx context.Context, slot models.TimeSlot) (string, error)
	DeleteByValue(ctx context.Context, slot string) (int64, error)
	ListAll(ctx context.Context) ([]models.TimeSlot, error)
	EnsureIndexes() error
}

type mongoTimeSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoTimeSlotRepo constructs a new MongoDB TimeSlotRepository.
func NewMongoTimeSlotRepo() TimeSlotRepository {
	return &mongoTimeSlotRepo{
		coll: database.DB().Collection("timeSlots"),
	}
}
