package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	bookingRepo "salonbook/database/repository/booking"
	"salonbook/models"
	"salonbook/services/catalog"
)

// fakeBookingRepo mimics the bookings collection, including the unique
// (date, time) index on insert. It counts calls so tests can prove that
// validation failures never reach the gateway.
type fakeBookingRepo struct {
	bookings []models.Booking

	findCalls   int
	insertCalls int
	listCalls   int

	findErr   error
	insertErr error
}

func (f *fakeBookingRepo) Insert(ctx context.Context, b models.Booking) (string, error) {
	f.insertCalls++
	if f.insertErr != nil {
		return "", f.insertErr
	}
	for _, existing := range f.bookings {
		if existing.Date == b.Date && existing.Time == b.Time {
			return "", bookingRepo.ErrSlotTaken
		}
	}
	b.ID = fmt.Sprintf("bk-%d", len(f.bookings)+1)
	f.bookings = append(f.bookings, b)
	return b.ID, nil
}

func (f *fakeBookingRepo) FindByDateTime(ctx context.Context, date, timeSlot string) ([]models.Booking, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	var matches []models.Booking
	for _, b := range f.bookings {
		if b.Date == date && b.Time == timeSlot {
			matches = append(matches, b)
		}
	}
	return matches, nil
}

func (f *fakeBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	f.listCalls++
	return append([]models.Booking(nil), f.bookings...), nil
}

func (f *fakeBookingRepo) EnsureIndexes() error { return nil }

func newTestService(repo *fakeBookingRepo) *DefaultAdmissionService {
	return &DefaultAdmissionService{
		Repo:    repo,
		Catalog: &catalog.DefaultCatalogService{BookingRepo: repo},
		Now:     func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) },
	}
}

func validRequest() BookingRequest {
	return BookingRequest{
		CustomerName:  "Jane",
		CustomerPhone: "555-1234",
		Services: []models.Service{
			{ID: "s1", Name: "Haircut", Duration: 30, Price: 25},
			{ID: "s2", Name: "Color", Duration: 90, Price: 60},
		},
		Date: "2024-05-01",
		Time: "10:00",
	}
}

func TestSubmitBooking_ValidationRejectsBeforeGateway(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*BookingRequest)
	}{
		{"empty name", func(r *BookingRequest) { r.CustomerName = "" }},
		{"empty phone", func(r *BookingRequest) { r.CustomerPhone = "" }},
		{"no services", func(r *BookingRequest) { r.Services = nil }},
		{"empty date", func(r *BookingRequest) { r.Date = "" }},
		{"empty time", func(r *BookingRequest) { r.Time = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeBookingRepo{}
			svc := newTestService(repo)

			req := validRequest()
			tc.mutate(&req)

			created, err := svc.SubmitBooking(context.Background(), req)
			require.Error(t, err)
			assert.Nil(t, created)

			var validationErr *models.ValidationError
			assert.True(t, errors.As(err, &validationErr))

			assert.Zero(t, repo.findCalls, "validation failure must not query the gateway")
			assert.Zero(t, repo.insertCalls, "validation failure must not insert")
			assert.Zero(t, repo.listCalls, "validation failure must not refresh")
		})
	}
}

func TestSubmitBooking_BuildsSnapshotRecord(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newTestService(repo)

	created, err := svc.SubmitBooking(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Jane", created.Name)
	assert.Equal(t, "555-1234", created.Phone)
	assert.Equal(t, []string{"Haircut", "Color"}, created.Services, "snapshot keeps selection order")
	assert.Equal(t, "2024-05-01", created.Date)
	assert.Equal(t, "10:00", created.Time)
	assert.Equal(t, 85.0, created.TotalPrice)
	assert.Equal(t, 120, created.TotalDuration)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), created.CreatedAt)

	assert.Equal(t, 1, repo.insertCalls)
	assert.Equal(t, 1, repo.listCalls, "bookings mirror refreshed after insert")
}

func TestSubmitBooking_RejectsConflictingSlot(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.Booking{
		{ID: "bk-0", Date: "2024-05-01", Time: "10:00"},
	}}
	svc := newTestService(repo)

	created, err := svc.SubmitBooking(context.Background(), validRequest())
	require.Error(t, err)
	assert.Nil(t, created)

	var conflictErr *models.SlotConflictError
	require.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, "2024-05-01", conflictErr.Date)
	assert.Equal(t, "10:00", conflictErr.Time)

	assert.Zero(t, repo.insertCalls, "conflict must not insert")
}

func TestSubmitBooking_SecondSubmissionConflicts(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newTestService(repo)

	_, err := svc.SubmitBooking(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.CustomerName = "John"
	_, err = svc.SubmitBooking(context.Background(), second)

	var conflictErr *models.SlotConflictError
	require.True(t, errors.As(err, &conflictErr))
	assert.Len(t, repo.bookings, 1)
}

func TestSubmitBooking_UniqueIndexCatchesRace(t *testing.T) {
	// The conflict query sees nothing, but the insert loses to a concurrent
	// writer and hits the unique index.
	repo := &fakeBookingRepo{insertErr: bookingRepo.ErrSlotTaken}
	svc := newTestService(repo)

	created, err := svc.SubmitBooking(context.Background(), validRequest())
	assert.Nil(t, created)

	var conflictErr *models.SlotConflictError
	require.True(t, errors.As(err, &conflictErr))
}

func TestSubmitBooking_WrapsGatewayFailures(t *testing.T) {
	t.Run("conflict query fails", func(t *testing.T) {
		underlying := errors.New("connection reset")
		repo := &fakeBookingRepo{findErr: underlying}
		svc := newTestService(repo)

		_, err := svc.SubmitBooking(context.Background(), validRequest())

		var persistenceErr *models.PersistenceError
		require.True(t, errors.As(err, &persistenceErr))
		assert.ErrorIs(t, err, underlying)
		assert.False(t, persistenceErr.PermissionDenied)
		assert.Zero(t, repo.insertCalls)
	})

	t.Run("insert fails", func(t *testing.T) {
		underlying := errors.New("network down")
		repo := &fakeBookingRepo{insertErr: underlying}
		svc := newTestService(repo)

		_, err := svc.SubmitBooking(context.Background(), validRequest())

		var persistenceErr *models.PersistenceError
		require.True(t, errors.As(err, &persistenceErr))
		assert.ErrorIs(t, err, underlying)
	})

	t.Run("permission denied is flagged", func(t *testing.T) {
		repo := &fakeBookingRepo{findErr: mongo.CommandError{Code: 13, Message: "not authorized"}}
		svc := newTestService(repo)

		_, err := svc.SubmitBooking(context.Background(), validRequest())

		var persistenceErr *models.PersistenceError
		require.True(t, errors.As(err, &persistenceErr))
		assert.True(t, persistenceErr.PermissionDenied)
	})
}
