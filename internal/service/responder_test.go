package service_test

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/georise/incident_dispatch_system/internal/events"
	"github.com/georise/incident_dispatch_system/internal/models"
	"github.com/georise/incident_dispatch_system/internal/service"
	"github.com/georise/incident_dispatch_system/internal/service/mocks"
)

type responderFixture struct {
	svc         service.ResponderService
	repo        *mocks.MockResponderRepository
	broadcaster *recordingBroadcaster
}

func newResponderFixture(t *testing.T) *responderFixture {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockResponderRepository(ctrl)
	broadcaster := &recordingBroadcaster{}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := service.NewResponderService(repo, broadcaster, logger)
	return &responderFixture{svc: svc, repo: repo, broadcaster: broadcaster}
}

func TestCreateUnit_ForcesAvailableStatus(t *testing.T) {
	f := newResponderFixture(t)
	ctx := context.Background()

	unit := &models.ResponderUnit{
		AgencyID: uuid.New(),
		Name:     "Engine 12",
		Status:   models.UnitStatusOffline,
	}

	f.repo.EXPECT().
		Create(ctx, gomock.AssignableToTypeOf(&models.ResponderUnit{})).
		DoAndReturn(func(_ context.Context, u *models.ResponderUnit) error {
			assert.Equal(t, models.UnitStatusAvailable, u.Status)
			u.ID = uuid.New()
			return nil
		})

	err := f.svc.CreateUnit(ctx, unit)
	require.NoError(t, err)
}

func TestUpdateUnitLocation_PublishesEvent(t *testing.T) {
	f := newResponderFixture(t)
	ctx := context.Background()
	id := uuid.New()

	lat, lon := 9.01, 38.02
	updated := &models.ResponderUnit{ID: id, Latitude: &lat, Longitude: &lon}
	f.repo.EXPECT().UpdateLocation(ctx, id, lat, lon).Return(updated, nil)

	unit, err := f.svc.UpdateUnitLocation(ctx, id, lat, lon)
	require.NoError(t, err)
	assert.Equal(t, updated, unit)

	published := f.broadcaster.published()
	require.Len(t, published, 1)
	ev, ok := published[0].(events.UnitLocationUpdated)
	require.True(t, ok)
	assert.Equal(t, id, ev.UnitID)
	assert.Equal(t, lat, ev.Latitude)
	assert.Equal(t, lon, ev.Longitude)
}

func TestUpdateUnitLocation_NotFound(t *testing.T) {
	f := newResponderFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.repo.EXPECT().UpdateLocation(ctx, id, 0.0, 0.0).Return(nil, service.ErrUnitNotFound)

	_, err := f.svc.UpdateUnitLocation(ctx, id, 0, 0)
	assert.ErrorIs(t, err, service.ErrUnitNotFound)
	assert.Empty(t, f.broadcaster.published())
}

func TestSetUnitStatus_RejectsCoordinatorOwnedStatus(t *testing.T) {
	f := newResponderFixture(t)
	ctx := context.Background()

	_, err := f.svc.SetUnitStatus(ctx, uuid.New(), models.UnitStatusAssigned)
	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func TestSetUnitStatus_RejectsAssignedUnit(t *testing.T) {
	f := newResponderFixture(t)
	ctx := context.Background()
	id := uuid.New()

	// Занятый юнит освобождается только через resolve/cancel инцидента;
	// условный UPDATE хранилища его не трогает
	f.repo.EXPECT().SetStatus(ctx, id, models.UnitStatusOffline).
		Return(nil, fmt.Errorf("unit %s is assigned: %w", id, service.ErrInvalidState))

	_, err := f.svc.SetUnitStatus(ctx, id, models.UnitStatusOffline)
	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func TestSetUnitStatus_LosesRaceWithAssignment(t *testing.T) {
	f := newResponderFixture(t)
	ctx := context.Background()
	id := uuid.New()

	// Координатор назначил юнит между запросом диспетчера и записью:
	// условный UPDATE не находит строку, переключение отклоняется,
	// а не затирает свежее назначение
	f.repo.EXPECT().SetStatus(ctx, id, models.UnitStatusOffline).
		DoAndReturn(func(context.Context, uuid.UUID, models.UnitStatus) (*models.ResponderUnit, error) {
			return nil, fmt.Errorf("unit %s is assigned: %w", id, service.ErrInvalidState)
		})

	unit, err := f.svc.SetUnitStatus(ctx, id, models.UnitStatusOffline)
	assert.Nil(t, unit)
	assert.ErrorIs(t, err, service.ErrInvalidState)
}

func TestSetUnitStatus_TogglesOffline(t *testing.T) {
	f := newResponderFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.repo.EXPECT().SetStatus(ctx, id, models.UnitStatusOffline).
		Return(&models.ResponderUnit{ID: id, Status: models.UnitStatusOffline}, nil)

	unit, err := f.svc.SetUnitStatus(ctx, id, models.UnitStatusOffline)
	require.NoError(t, err)
	assert.Equal(t, models.UnitStatusOffline, unit.Status)
}

func TestListUnits_FiltersByAgency(t *testing.T) {
	f := newResponderFixture(t)
	ctx := context.Background()
	agencyID := uuid.New()

	expected := []*models.ResponderUnit{{ID: uuid.New(), AgencyID: agencyID}}
	f.repo.EXPECT().ListUnits(ctx, &agencyID).Return(expected, nil)

	units, err := f.svc.ListUnits(ctx, &agencyID)
	require.NoError(t, err)
	assert.Equal(t, expected, units)
}
