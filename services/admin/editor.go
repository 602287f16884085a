package admin

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"salonbook/database"
	timeslotRepo "salonbook/database/repository/timeslot"
	"salonbook/models"
	"salonbook/utils"
)

// AddService validates and persists a new catalog service, then reloads the
// services mirror. Services are never updated in place; the only lifecycle is
// create and delete.
func (svc *DefaultEditorService) AddService(ctx context.Context, name string, duration int, price float64) (*models.Service, error) {
	if name == "" {
		return nil, models.NewValidationError("name", "service name is required")
	}
	if duration <= 0 {
		return nil, models.NewValidationError("duration", "duration must be a positive number of minutes")
	}
	if price < 0 {
		return nil, models.NewValidationError("price", "price must not be negative")
	}

	service := models.Service{Name: name, Duration: duration, Price: price}
	id, err := svc.ServiceRepo.Create(ctx, service)
	if err != nil {
		return nil, models.NewPersistenceError("addService", err, database.IsPermissionDenied(err))
	}
	service.ID = id

	svc.refresh(ctx, svc.Catalog.RefreshServices, "services")
	return &service, nil
}

func (svc *DefaultEditorService) DeleteService(ctx context.Context, id string) error {
	if id == "" {
		return models.NewValidationError("id", "service id is required")
	}

	if err := svc.ServiceRepo.DeleteByID(ctx, id); err != nil {
		return models.NewPersistenceError("deleteService", err, database.IsPermissionDenied(err))
	}

	svc.refresh(ctx, svc.Catalog.RefreshServices, "services")
	return nil
}

// AddTimeSlot persists a new slot value. Duplicate values are rejected at
// write time by the unique slot index.
func (svc *DefaultEditorService) AddTimeSlot(ctx context.Context, slot string) error {
	if slot == "" {
		return models.NewValidationError("slot", "time slot value is required")
	}

	if _, err := svc.TimeSlotRepo.Create(ctx, models.TimeSlot{Slot: slot}); err != nil {
		if errors.Is(err, timeslotRepo.ErrDuplicateSlot) {
			return models.NewValidationError("slot", "time slot value already exists")
		}
		return models.NewPersistenceError("addTimeSlot", err, database.IsPermissionDenied(err))
	}

	svc.refresh(ctx, svc.Catalog.RefreshTimeSlots, "timeSlots")
	return nil
}

// DeleteTimeSlot removes every stored document holding the slot value, so
// duplicates predating the unique index are cleaned up in one call.
func (svc *DefaultEditorService) DeleteTimeSlot(ctx context.Context, slot string) error {
	if slot == "" {
		return models.NewValidationError("slot", "time slot value is required")
	}

	if _, err := svc.TimeSlotRepo.DeleteByValue(ctx, slot); err != nil {
		return models.NewPersistenceError("deleteTimeSlot", err, database.IsPermissionDenied(err))
	}

	svc.refresh(ctx, svc.Catalog.RefreshTimeSlots, "timeSlots")
	return nil
}

// Bookings reloads and returns the bookings mirror for the admin dashboard.
func (svc *DefaultEditorService) Bookings(ctx context.Context) ([]models.Booking, error) {
	if err := svc.Catalog.RefreshBookings(ctx); err != nil {
		return nil, err
	}
	return svc.Catalog.Bookings(), nil
}

func (svc *DefaultEditorService) refresh(ctx context.Context, reload func(context.Context) error, collection string) {
	if err := reload(ctx); err != nil {
		utils.GetLogger().Warn("failed to refresh catalog mirror after mutation",
			zap.String("collection", collection), zap.Error(err))
	}
}
