package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/georise/incident_dispatch_system/internal/config"
	"github.com/georise/incident_dispatch_system/internal/models"
	"github.com/georise/incident_dispatch_system/internal/service"
	"github.com/georise/incident_dispatch_system/internal/service/mocks"
)

const testAPIKey = "test-api-key"

type handlerFixture struct {
	incidents  *mocks.MockIncidentService
	responders *mocks.MockResponderService
	dispatch   *mocks.MockDispatchService
	router     *gin.Engine
}

// newTestHandler создает Handler с мокированными сервисами
func newTestHandler(t *testing.T) *handlerFixture {
	ctrl := gomock.NewController(t)
	incidents := mocks.NewMockIncidentService(ctrl)
	responders := mocks.NewMockResponderService(ctrl)
	dispatch := mocks.NewMockDispatchService(ctrl)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		APIKeys: []string{testAPIKey},
	}

	handler := NewHandler(incidents, responders, dispatch, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return &handlerFixture{
		incidents:  incidents,
		responders: responders,
		dispatch:   dispatch,
		router:     router,
	}
}

// makeRequest выполняет HTTP-запрос к тестовому роутеру
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-API-Key", testAPIKey)
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestHealthCheck_NoAuthRequired(t *testing.T) {
	f := newTestHandler(t)

	req := httptest.NewRequest("GET", "/api/v1/system/health", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_MissingKey(t *testing.T) {
	f := newTestHandler(t)

	req := httptest.NewRequest("GET", "/api/v1/incidents", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_WrongKey(t *testing.T) {
	f := newTestHandler(t)

	req := httptest.NewRequest("GET", "/api/v1/incidents", nil)
	req.Header.Set("X-API-Key", "wrong-key")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateIncidentHandler_Success(t *testing.T) {
	f := newTestHandler(t)
	incidentID := uuid.New()

	reqBody := CreateIncidentRequest{
		Title:         "Multi-car accident",
		Description:   "Three cars involved",
		Category:      "ACCIDENT",
		SeverityScore: 4,
		Latitude:      9.00,
		Longitude:     38.00,
	}

	f.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any(), "dispatcher").
		DoAndReturn(func(_ any, in *models.Incident, _ string) error {
			in.ID = incidentID
			in.Status = models.IncidentStatusReceived
			return nil
		})

	w := makeRequest(f.router, "POST", "/api/v1/incidents", jsonBody(t, reqBody))
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, "RECEIVED", resp.Status)
	assert.Equal(t, reqBody.Title, resp.Title)
}

func TestCreateIncidentHandler_ValidationError(t *testing.T) {
	f := newTestHandler(t)

	// Невалидная широта и отсутствующая категория
	reqBody := CreateIncidentRequest{
		Title:    "Bad incident",
		Latitude: 123.0,
	}

	w := makeRequest(f.router, "POST", "/api/v1/incidents", jsonBody(t, reqBody))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateIncidentHandler_InvalidJSON(t *testing.T) {
	f := newTestHandler(t)

	w := makeRequest(f.router, "POST", "/api/v1/incidents", bytes.NewBufferString("{not json"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetIncidentHandler_NotFound(t *testing.T) {
	f := newTestHandler(t)
	id := uuid.New()

	f.incidents.EXPECT().GetIncident(gomock.Any(), id).Return(nil, service.ErrIncidentNotFound)

	w := makeRequest(f.router, "GET", "/api/v1/incidents/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetIncidentHandler_InvalidID(t *testing.T) {
	f := newTestHandler(t)

	w := makeRequest(f.router, "GET", "/api/v1/incidents/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelIncidentHandler_PassesActorHeader(t *testing.T) {
	f := newTestHandler(t)
	id := uuid.New()

	f.incidents.EXPECT().
		CancelIncident(gomock.Any(), id, "operator-7").
		Return(&models.Incident{ID: id, Status: models.IncidentStatusCancelled}, nil)

	w := makeRequest(f.router, "POST", "/api/v1/incidents/"+id.String()+"/cancel", nil,
		map[string]string{"X-Actor": "operator-7"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAssignHandler_Success(t *testing.T) {
	f := newTestHandler(t)

	incidentID, agencyID, unitID := uuid.New(), uuid.New(), uuid.New()
	reqBody := AssignRequest{IncidentID: incidentID, AgencyID: agencyID, UnitID: unitID}

	f.dispatch.EXPECT().
		Assign(gomock.Any(), service.AssignParams{
			IncidentID: incidentID,
			AgencyID:   agencyID,
			UnitID:     unitID,
			Actor:      "dispatcher",
		}).
		Return(&service.AssignmentResult{
			Incident: &models.Incident{ID: incidentID, Status: models.IncidentStatusAssigned, AssignedUnitID: &unitID},
			Unit:     &models.ResponderUnit{ID: unitID, AgencyID: agencyID, Status: models.UnitStatusAssigned},
		}, nil)

	w := makeRequest(f.router, "POST", "/api/v1/dispatch/assign", jsonBody(t, reqBody))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp AssignmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ASSIGNED", resp.Incident.Status)
	assert.Equal(t, "ASSIGNED", resp.Unit.Status)
}

func TestAssignHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"unit not available", service.ErrUnitNotAvailable, http.StatusConflict},
		{"invalid state", service.ErrInvalidState, http.StatusUnprocessableEntity},
		{"agency mismatch", service.ErrAgencyMismatch, http.StatusUnprocessableEntity},
		{"contended", service.ErrAssignContended, http.StatusServiceUnavailable},
		{"incident not found", service.ErrIncidentNotFound, http.StatusNotFound},
		{"unit not found", service.ErrUnitNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestHandler(t)
			reqBody := AssignRequest{IncidentID: uuid.New(), AgencyID: uuid.New(), UnitID: uuid.New()}

			f.dispatch.EXPECT().Assign(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			w := makeRequest(f.router, "POST", "/api/v1/dispatch/assign", jsonBody(t, reqBody))
			assert.Equal(t, tc.wantCode, w.Code)
		})
	}
}

func TestAssignHandler_MissingFields(t *testing.T) {
	f := newTestHandler(t)

	w := makeRequest(f.router, "POST", "/api/v1/dispatch/assign", jsonBody(t, AssignRequest{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecommendationsHandler_Success(t *testing.T) {
	f := newTestHandler(t)
	incidentID := uuid.New()
	unitID := uuid.New()
	dist := 2.5

	f.dispatch.EXPECT().
		Recommend(gomock.Any(), incidentID).
		Return([]models.CandidateScore{
			{AgencyID: uuid.New(), UnitID: &unitID, DistanceKm: &dist, TotalScore: 0.93},
			{AgencyID: uuid.New(), TotalScore: 0.41},
		}, nil)

	w := makeRequest(f.router, "GET", "/api/v1/dispatch/recommendations/"+incidentID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []CandidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, unitID, *resp[0].UnitID)
	assert.Nil(t, resp[1].UnitID)
}

func TestAutoAssignHandler_NoCandidates(t *testing.T) {
	f := newTestHandler(t)
	incidentID := uuid.New()

	f.dispatch.EXPECT().
		AutoAssign(gomock.Any(), incidentID, "dispatcher").
		Return(nil, service.ErrNoCandidates)

	w := makeRequest(f.router, "POST", "/api/v1/dispatch/auto-assign/"+incidentID.String(), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAcknowledgeHandler_WrongUnit(t *testing.T) {
	f := newTestHandler(t)
	reqBody := AcknowledgeRequest{IncidentID: uuid.New(), UnitID: uuid.New()}

	f.dispatch.EXPECT().
		Acknowledge(gomock.Any(), reqBody.IncidentID, reqBody.UnitID).
		Return(nil, service.ErrNotAssignedUnit)

	w := makeRequest(f.router, "POST", "/api/v1/dispatch/acknowledge", jsonBody(t, reqBody))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestResolveHandler_Success(t *testing.T) {
	f := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := ResolveRequest{IncidentID: incidentID}

	f.dispatch.EXPECT().
		Resolve(gomock.Any(), incidentID, "dispatcher").
		Return(&models.Incident{ID: incidentID, Status: models.IncidentStatusResolved}, nil)

	w := makeRequest(f.router, "POST", "/api/v1/dispatch/resolve", jsonBody(t, reqBody))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "RESOLVED", resp.Status)
}

func TestUpdateUnitStatusHandler_RejectsAssigned(t *testing.T) {
	f := newTestHandler(t)
	id := uuid.New()

	// ASSIGNED не входит в oneof
	body := jsonBody(t, UpdateUnitStatusRequest{Status: "ASSIGNED"})
	w := makeRequest(f.router, "PATCH", "/api/v1/units/"+id.String()+"/status", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUnitLocationHandler_Success(t *testing.T) {
	f := newTestHandler(t)
	id := uuid.New()
	lat, lon := 9.01, 38.02

	f.responders.EXPECT().
		UpdateUnitLocation(gomock.Any(), id, lat, lon).
		Return(&models.ResponderUnit{ID: id, Latitude: &lat, Longitude: &lon, Status: models.UnitStatusAvailable}, nil)

	body := jsonBody(t, UpdateUnitLocationRequest{Latitude: lat, Longitude: lon})
	w := makeRequest(f.router, "PATCH", "/api/v1/units/"+id.String()+"/location", body)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp UnitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Latitude)
	assert.Equal(t, lat, *resp.Latitude)
}

func TestListUnitsHandler_InvalidAgencyFilter(t *testing.T) {
	f := newTestHandler(t)

	w := makeRequest(f.router, "GET", "/api/v1/units?agencyId=nope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStatsHandler_Success(t *testing.T) {
	f := newTestHandler(t)

	f.dispatch.EXPECT().
		GetStats(gomock.Any()).
		Return(&service.DispatchStats{OpenIncidents: 5, AvailableUnits: 2}, nil)

	w := makeRequest(f.router, "GET", "/api/v1/dispatch/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.OpenIncidents)
	assert.Equal(t, 2, resp.AvailableUnits)
}
