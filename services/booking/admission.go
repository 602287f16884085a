package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"salonbook/database"
	bookingRepo "salonbook/database/repository/booking"
	"salonbook/models"
	"salonbook/utils"
)

// SubmitBooking admits a booking request. Validation failures reject the
// request before any repository call. The conflict query gives a friendly
// early rejection; the unique (date, time) index on insert is the actual
// guarantee, so two requests racing past the query cannot both commit.
func (svc *DefaultAdmissionService) SubmitBooking(ctx context.Context, req BookingRequest) (*models.Booking, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, err := svc.Repo.FindByDateTime(ctx, req.Date, req.Time)
	if err != nil {
		return nil, models.NewPersistenceError("checkConflicts", err, database.IsPermissionDenied(err))
	}
	if len(existing) > 0 {
		return nil, models.NewSlotConflictError(req.Date, req.Time)
	}

	booking := svc.buildRecord(req)
	id, err := svc.Repo.Insert(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, models.NewSlotConflictError(req.Date, req.Time)
		}
		return nil, models.NewPersistenceError("insertBooking", err, database.IsPermissionDenied(err))
	}
	booking.ID = id

	// The booking is committed at this point; a failed mirror refresh only
	// leaves the in-memory view stale until the next reload.
	if err := svc.Catalog.RefreshBookings(ctx); err != nil {
		utils.GetLogger().Warn("failed to refresh bookings after insert", zap.Error(err))
	}

	return &booking, nil
}

func validateRequest(req BookingRequest) error {
	if req.CustomerName == "" {
		return models.NewValidationError("customerName", "customer name is required")
	}
	if req.CustomerPhone == "" {
		return models.NewValidationError("customerPhone", "customer phone is required")
	}
	if len(req.Services) == 0 {
		return models.NewValidationError("services", "select at least one service")
	}
	if req.Date == "" {
		return models.NewValidationError("date", "date is required")
	}
	if req.Time == "" {
		return models.NewValidationError("time", "time is required")
	}
	return nil
}

func (svc *DefaultAdmissionService) buildRecord(req BookingRequest) models.Booking {
	now := time.Now
	if svc.Now != nil {
		now = svc.Now
	}

	names := make([]string, len(req.Services))
	var totalPrice float64
	var totalDuration int
	for i, s := range req.Services {
		names[i] = s.Name
		totalPrice += s.Price
		totalDuration += s.Duration
	}

	return models.Booking{
		Name:          req.CustomerName,
		Phone:         req.CustomerPhone,
		Services:      names,
		Date:          req.Date,
		Time:          req.Time,
		TotalPrice:    totalPrice,
		TotalDuration: totalDuration,
		CreatedAt:     now(),
	}
}
