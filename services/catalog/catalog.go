package catalog

import (
	"context"
	"fmt"

	"salonbook/database"
	"salonbook/models"
)

// RefreshServices re-fetches the full services collection.
func (svc *DefaultCatalogService) RefreshServices(ctx context.Context) error {
	services, err := svc.ServiceRepo.ListAll(ctx)
	if err != nil {
		return models.NewPersistenceError("loadServices", err, database.IsPermissionDenied(err))
	}

	svc.mu.Lock()
	svc.services = services
	svc.mu.Unlock()
	return nil
}

// RefreshTimeSlots re-fetches the full timeSlots collection. Only the slot
// values are mirrored; document ids stay a persistence-layer detail.
func (svc *DefaultCatalogService) RefreshTimeSlots(ctx context.Context) error {
	slots, err := svc.TimeSlotRepo.ListAll(ctx)
	if err != nil {
		return models.NewPersistenceError("loadTimeSlots", err, database.IsPermissionDenied(err))
	}

	values := make([]string, len(slots))
	for i, slot := range slots {
		values[i] = slot.Slot
	}

	svc.mu.Lock()
	svc.timeSlots = values
	svc.mu.Unlock()
	return nil
}

// RefreshBookings re-fetches the full bookings collection.
func (svc *DefaultCatalogService) RefreshBookings(ctx context.Context) error {
	bookings, err := svc.BookingRepo.ListAll(ctx)
	if err != nil {
		return models.NewPersistenceError("loadBookings", err, database.IsPermissionDenied(err))
	}

	svc.mu.Lock()
	svc.bookings = bookings
	svc.mu.Unlock()
	return nil
}

// RefreshAll reloads all three collections, stopping at the first failure.
func (svc *DefaultCatalogService) RefreshAll(ctx context.Context) error {
	if err := svc.RefreshServices(ctx); err != nil {
		return err
	}
	if err := svc.RefreshTimeSlots(ctx); err != nil {
		return err
	}
	return svc.RefreshBookings(ctx)
}

// Services returns a copy of the mirrored service list.
func (svc *DefaultCatalogService) Services() []models.Service {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return append([]models.Service(nil), svc.services...)
}

// ServicesByIDs resolves catalog services by id, preserving the order of the
// given ids. An unknown id rejects the whole lookup.
func (svc *DefaultCatalogService) ServicesByIDs(ids []string) ([]models.Service, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	byID := make(map[string]models.Service, len(svc.services))
	for _, s := range svc.services {
		byID[s.ID] = s
	}

	resolved := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, models.NewValidationError("serviceIds", fmt.Sprintf("unknown service id %q", id))
		}
		resolved = append(resolved, s)
	}
	return resolved, nil
}

// TimeSlots returns a copy of the mirrored slot values.
func (svc *DefaultCatalogService) TimeSlots() []string {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return append([]string(nil), svc.timeSlots...)
}

// Bookings returns a copy of the mirrored booking list.
func (svc *DefaultCatalogService) Bookings() []models.Booking {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return append([]models.Booking(nil), svc.bookings...)
}
