package booking

import (
	"context"
	"time"

	bookingRepo "salonbook/database/repository/booking"
	"salonbook/models"
	"salonbook/services/catalog"
)

// BookingRequest carries a customer's intent to book one or more services for
// a date and time slot. Services is the customer's selection in selection
// order; its names, prices and durations are snapshotted into the record.
type BookingRequest struct {
	CustomerName  string
	CustomerPhone string
	Services      []models.Service
	Date          string
	Time          string
}

// AdmissionService validates booking requests, checks for scheduling
// conflicts and constructs the persisted booking record.
type AdmissionService interface {
	SubmitBooking(ctx context.Context, req BookingRequest) (*models.Booking, error)
}

// DefaultAdmissionService is the production implementation.
type DefaultAdmissionService struct {
	Repo    bookingRepo.BookingRepository
	Catalog catalog.CatalogService
	Now     func() time.Time // nil falls back to time.Now
}
