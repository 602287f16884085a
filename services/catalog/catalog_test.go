package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/models"
)

type fakeServiceRepo struct {
	services []models.Service
	listErr  error
}

func (f *fakeServiceRepo) Create(ctx context.Context, svc models.Service) (string, error) {
	f.services = append(f.services, svc)
	return svc.ID, nil
}

func (f *fakeServiceRepo) DeleteByID(ctx context.Context, id string) error { return nil }

func (f *fakeServiceRepo) ListAll(ctx context.Context) ([]models.Service, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Service(nil), f.services...), nil
}

func (f *fakeServiceRepo) EnsureIndexes() error { return nil }

type fakeTimeSlotRepo struct {
	slots   []models.TimeSlot
	listErr error
}

func (f *fakeTimeSlotRepo) Create(ctx context.Context, slot models.TimeSlot) (string, error) {
	f.slots = append(f.slots, slot)
	return slot.ID, nil
}

func (f *fakeTimeSlotRepo) DeleteByValue(ctx context.Context, slot string) (int64, error) {
	return 0, nil
}

func (f *fakeTimeSlotRepo) ListAll(ctx context.Context) ([]models.TimeSlot, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.TimeSlot(nil), f.slots...), nil
}

func (f *fakeTimeSlotRepo) EnsureIndexes() error { return nil }

func TestRefreshServices_ReplacesMirrorOnSuccess(t *testing.T) {
	repo := &fakeServiceRepo{services: []models.Service{
		{ID: "s1", Name: "Haircut", Duration: 30, Price: 25},
	}}
	cat := &DefaultCatalogService{ServiceRepo: repo}

	require.NoError(t, cat.RefreshServices(context.Background()))
	assert.Len(t, cat.Services(), 1)

	repo.services = append(repo.services, models.Service{ID: "s2", Name: "Color", Duration: 90, Price: 60})
	require.NoError(t, cat.RefreshServices(context.Background()))
	assert.Len(t, cat.Services(), 2)
}

func TestRefreshServices_KeepsPreviousMirrorOnFailure(t *testing.T) {
	repo := &fakeServiceRepo{services: []models.Service{
		{ID: "s1", Name: "Haircut", Duration: 30, Price: 25},
	}}
	cat := &DefaultCatalogService{ServiceRepo: repo}
	require.NoError(t, cat.RefreshServices(context.Background()))

	repo.listErr = errors.New("gateway unavailable")
	err := cat.RefreshServices(context.Background())
	require.Error(t, err)

	var persistenceErr *models.PersistenceError
	assert.True(t, errors.As(err, &persistenceErr))
	assert.Equal(t, "loadServices", persistenceErr.Op)

	got := cat.Services()
	require.Len(t, got, 1, "failed fetch must leave the previous mirror untouched")
	assert.Equal(t, "Haircut", got[0].Name)
}

func TestRefresh_IsIdempotentWithoutMutation(t *testing.T) {
	repo := &fakeServiceRepo{services: []models.Service{
		{ID: "s1", Name: "Haircut", Duration: 30, Price: 25},
		{ID: "s2", Name: "Color", Duration: 90, Price: 60},
	}}
	cat := &DefaultCatalogService{ServiceRepo: repo}

	require.NoError(t, cat.RefreshServices(context.Background()))
	first := cat.Services()
	require.NoError(t, cat.RefreshServices(context.Background()))
	second := cat.Services()

	assert.ElementsMatch(t, first, second)
}

func TestRefreshTimeSlots_MirrorsSlotValues(t *testing.T) {
	repo := &fakeTimeSlotRepo{slots: []models.TimeSlot{
		{ID: "t1", Slot: "10:00"},
		{ID: "t2", Slot: "11:00"},
	}}
	cat := &DefaultCatalogService{TimeSlotRepo: repo}

	require.NoError(t, cat.RefreshTimeSlots(context.Background()))
	assert.Equal(t, []string{"10:00", "11:00"}, cat.TimeSlots())
}

func TestServicesByIDs_PreservesRequestOrder(t *testing.T) {
	repo := &fakeServiceRepo{services: []models.Service{
		{ID: "s1", Name: "Haircut", Duration: 30, Price: 25},
		{ID: "s2", Name: "Color", Duration: 90, Price: 60},
	}}
	cat := &DefaultCatalogService{ServiceRepo: repo}
	require.NoError(t, cat.RefreshServices(context.Background()))

	resolved, err := cat.ServicesByIDs([]string{"s2", "s1"})
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, "Color", resolved[0].Name)
	assert.Equal(t, "Haircut", resolved[1].Name)
}

func TestServicesByIDs_RejectsUnknownID(t *testing.T) {
	cat := &DefaultCatalogService{ServiceRepo: &fakeServiceRepo{}}
	require.NoError(t, cat.RefreshServices(context.Background()))

	_, err := cat.ServicesByIDs([]string{"missing"})
	var validationErr *models.ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestAccessorsReturnCopies(t *testing.T) {
	repo := &fakeServiceRepo{services: []models.Service{
		{ID: "s1", Name: "Haircut", Duration: 30, Price: 25},
	}}
	cat := &DefaultCatalogService{ServiceRepo: repo}
	require.NoError(t, cat.RefreshServices(context.Background()))

	got := cat.Services()
	got[0].Name = "Mutated"
	assert.Equal(t, "Haircut", cat.Services()[0].Name)
}
