package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/georise/incident_dispatch_system/internal/events"
	event_mocks "github.com/georise/incident_dispatch_system/internal/events/mocks"
	"github.com/georise/incident_dispatch_system/internal/models"
	"github.com/georise/incident_dispatch_system/internal/service"
	"github.com/georise/incident_dispatch_system/internal/service/mocks"
)

type incidentFixture struct {
	svc         service.IncidentService
	repo        *mocks.MockIncidentRepository
	store       *fakeStore
	broadcaster *recordingBroadcaster
}

func newIncidentFixture(t *testing.T) *incidentFixture {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIncidentRepository(ctrl)
	store := newFakeStore()
	broadcaster := &recordingBroadcaster{}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := service.NewIncidentService(repo, store, broadcaster, logger, testDispatchConfig())
	return &incidentFixture{svc: svc, repo: repo, store: store, broadcaster: broadcaster}
}

func TestCreateIncident_ForcesReceivedStatus(t *testing.T) {
	f := newIncidentFixture(t)
	ctx := context.Background()

	incident := &models.Incident{
		Title:         "Warehouse fire",
		Category:      "FIRE",
		SeverityScore: 5,
		Latitude:      9.00,
		Longitude:     38.00,
		// Клиент не управляет статусом при создании
		Status: models.IncidentStatusResolved,
	}

	f.repo.EXPECT().
		Create(ctx, gomock.AssignableToTypeOf(&models.Incident{}), "reporter").
		DoAndReturn(func(_ context.Context, in *models.Incident, actor string) error {
			assert.Equal(t, models.IncidentStatusReceived, in.Status)
			// Заявитель попадает в стартовую запись REPORT хронологии
			assert.Equal(t, "reporter", actor)
			in.ID = uuid.New()
			return nil
		})

	err := f.svc.CreateIncident(ctx, incident, "reporter")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, incident.ID)
}

func TestGetIncident_FromCache(t *testing.T) {
	f := newIncidentFixture(t)
	ctx := context.Background()
	id := uuid.New()
	expected := &models.Incident{ID: id, Title: "Cached incident"}

	f.repo.EXPECT().GetIncidentFromCache(ctx, id).Return(expected, nil)

	incident, err := f.svc.GetIncident(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_CacheMissFallsToDB(t *testing.T) {
	f := newIncidentFixture(t)
	ctx := context.Background()
	id := uuid.New()
	expected := &models.Incident{ID: id, Title: "From database"}

	f.repo.EXPECT().GetIncidentFromCache(ctx, id).Return(nil, nil)
	f.repo.EXPECT().GetByID(ctx, id).Return(expected, nil)
	f.repo.EXPECT().SetIncidentCache(ctx, expected).Return(nil)

	incident, err := f.svc.GetIncident(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_CacheErrorIsNotFatal(t *testing.T) {
	f := newIncidentFixture(t)
	ctx := context.Background()
	id := uuid.New()
	expected := &models.Incident{ID: id}

	f.repo.EXPECT().GetIncidentFromCache(ctx, id).Return(nil, errors.New("redis down"))
	f.repo.EXPECT().GetByID(ctx, id).Return(expected, nil)
	f.repo.EXPECT().SetIncidentCache(ctx, expected).Return(errors.New("redis down"))

	incident, err := f.svc.GetIncident(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	f := newIncidentFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.repo.EXPECT().GetIncidentFromCache(ctx, id).Return(nil, nil)
	f.repo.EXPECT().GetByID(ctx, id).Return(nil, service.ErrIncidentNotFound)

	_, err := f.svc.GetIncident(ctx, id)
	assert.ErrorIs(t, err, service.ErrIncidentNotFound)
}

func TestListIncidents_NormalizesPagination(t *testing.T) {
	f := newIncidentFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().ListIncidents(ctx, "RECEIVED", 1, 20).Return([]*models.Incident{}, nil)

	_, err := f.svc.ListIncidents(ctx, "RECEIVED", -5, 1000)
	require.NoError(t, err)
}

func TestCancelIncident_ReleasesAssignedUnit(t *testing.T) {
	f := newIncidentFixture(t)
	ctx := context.Background()

	agencyID := uuid.New()
	unit := availableUnit(agencyID)
	unit.Status = models.UnitStatusAssigned
	incident := receivedIncident()
	incident.Status = models.IncidentStatusAssigned
	incident.AssignedAgencyID = &agencyID
	incident.AssignedUnitID = &unit.ID
	f.store.putUnit(unit)
	f.store.putIncident(incident)

	f.repo.EXPECT().InvalidateIncidentCache(ctx, incident.ID).Return(nil)

	cancelled, err := f.svc.CancelIncident(ctx, incident.ID, "dispatcher")
	require.NoError(t, err)

	assert.Equal(t, models.IncidentStatusCancelled, cancelled.Status)
	assert.Equal(t, models.IncidentStatusCancelled, f.store.incidentState(incident.ID).Status)
	assert.Equal(t, models.UnitStatusAvailable, f.store.unitState(unit.ID).Status)

	published := f.broadcaster.published()
	require.Len(t, published, 1)
	ev, ok := published[0].(events.IncidentCancelled)
	require.True(t, ok)
	require.NotNil(t, ev.UnitID)
	assert.Equal(t, unit.ID, *ev.UnitID)
}

func TestCancelIncident_PublishFailureDoesNotRollBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIncidentRepository(ctrl)
	store := newFakeStore()
	broadcaster := event_mocks.NewMockBroadcaster(ctrl)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := service.NewIncidentService(repo, store, broadcaster, logger, testDispatchConfig())

	incident := receivedIncident()
	store.putIncident(incident)

	repo.EXPECT().InvalidateIncidentCache(gomock.Any(), incident.ID).Return(nil)
	broadcaster.EXPECT().
		Publish(gomock.Any(), gomock.AssignableToTypeOf(events.IncidentCancelled{})).
		Return(errors.New("redis down"))

	// Сбой публикации не откатывает уже зафиксированную отмену
	cancelled, err := svc.CancelIncident(context.Background(), incident.ID, "dispatcher")
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusCancelled, cancelled.Status)
	assert.Equal(t, models.IncidentStatusCancelled, store.incidentState(incident.ID).Status)
}

func TestCancelIncident_TerminalStatus(t *testing.T) {
	f := newIncidentFixture(t)
	ctx := context.Background()

	incident := receivedIncident()
	incident.Status = models.IncidentStatusCancelled
	f.store.putIncident(incident)

	_, err := f.svc.CancelIncident(ctx, incident.ID, "dispatcher")
	assert.ErrorIs(t, err, service.ErrInvalidState)
	assert.Empty(t, f.broadcaster.published())
}

func TestListTimeline_IncidentMustExist(t *testing.T) {
	f := newIncidentFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.repo.EXPECT().GetByID(ctx, id).Return(nil, service.ErrIncidentNotFound)

	_, err := f.svc.ListTimeline(ctx, id)
	assert.ErrorIs(t, err, service.ErrIncidentNotFound)
}

func TestListTimeline_Success(t *testing.T) {
	f := newIncidentFixture(t)
	ctx := context.Background()
	id := uuid.New()
	entries := []*models.TimelineEntry{
		{IncidentID: id, Type: models.TimelineTypeReport, Message: "incident reported"},
		{IncidentID: id, Type: models.TimelineTypeAssignment, Message: "unit assigned"},
	}

	f.repo.EXPECT().GetByID(ctx, id).Return(&models.Incident{ID: id}, nil)
	f.repo.EXPECT().ListTimeline(ctx, id).Return(entries, nil)

	got, err := f.svc.ListTimeline(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
