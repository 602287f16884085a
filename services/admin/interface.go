package admin

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	serviceRepo "salonbook/database/repository/service"
	timeslotRepo "salonbook/database/repository/timeslot"
	"salonbook/models"
	"salonbook/services/catalog"
)

// EditorService is the pass-through create/delete surface over the catalog
// collections. Every mutation reloads the matching in-memory mirror.
type EditorService interface {
	AddService(ctx context.Context, name string, duration int, price float64) (*models.Service, error)
	DeleteService(ctx context.Context, id string) error
	AddTimeSlot(ctx context.Context, slot string) error
	DeleteTimeSlot(ctx context.Context, slot string) error
	Bookings(ctx context.Context) ([]models.Booking, error)
}

// DefaultEditorService is the production implementation.
type DefaultEditorService struct {
	ServiceRepo  serviceRepo.ServiceRepository
	TimeSlotRepo timeslotRepo.TimeSlotRepository
	Catalog      catalog.CatalogService
}

// AuthService verifies admin credentials and manages revocable session
// tokens. This is the real collaborator replacing the old client-side
// constant comparison, which was never a security boundary.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
	Verify(ctx context.Context, token string) error
}

// DefaultAuthService verifies the configured admin credential (bcrypt hash)
// and keeps issued session token hashes in Redis so logout can revoke them.
type DefaultAuthService struct {
	Sessions   *redis.Client
	SessionTTL time.Duration
}
