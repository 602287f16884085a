package catalog

import (
	"context"
	"sync"

	bookingRepo "salonbook/database/repository/booking"
	serviceRepo "salonbook/database/repository/service"
	timeslotRepo "salonbook/database/repository/timeslot"
	"salonbook/models"
)

// CatalogService mirrors the services, timeSlots and bookings collections in
// memory. Each Refresh does a full re-fetch and replaces the mirrored set only
// on success, so a failed fetch never clobbers the previous state.
type CatalogService interface {
	Services() []models.Service
	ServicesByIDs(ids []string) ([]models.Service, error)
	TimeSlots() []string
	Bookings() []models.Booking

	RefreshServices(ctx context.Context) error
	RefreshTimeSlots(ctx context.Context) error
	RefreshBookings(ctx context.Context) error
	RefreshAll(ctx context.Context) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	ServiceRepo  serviceRepo.ServiceRepository
	TimeSlotRepo timeslotRepo.TimeSlotRepository
	BookingRepo  bookingRepo.BookingRepository

	mu        sync.RWMutex
	services  []models.Service
	timeSlots []string
	bookings  []models.Booking
}
