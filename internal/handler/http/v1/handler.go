package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/georise/incident_dispatch_system/internal/config"
	"github.com/georise/incident_dispatch_system/internal/models"
	"github.com/georise/incident_dispatch_system/internal/service"
)

type Handler struct {
	incidentService  service.IncidentService
	responderService service.ResponderService
	dispatchService  service.DispatchService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	responderService service.ResponderService,
	dispatchService service.DispatchService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService:  incidentService,
		responderService: responderService,
		dispatchService:  dispatchService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// respondError транслирует доменные ошибки в HTTP статусы: конфликт
// назначения - 409, недопустимое состояние - 422, временная ошибка
// блокировки - 503 (можно повторить)
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrIncidentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
	case errors.Is(err, service.ErrUnitNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "responder unit not found"})
	case errors.Is(err, service.ErrUnitNotAvailable):
		c.JSON(http.StatusConflict, gin.H{"error": "responder unit is not available, pick another unit"})
	case errors.Is(err, service.ErrInvalidState):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "operation is not valid for current incident state"})
	case errors.Is(err, service.ErrNotAssignedUnit):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unit is not assigned to this incident"})
	case errors.Is(err, service.ErrAgencyMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unit does not belong to the given agency"})
	case errors.Is(err, service.ErrNoCandidates):
		c.JSON(http.StatusConflict, gin.H{"error": "no dispatch candidates found"})
	case errors.Is(err, service.ErrAssignContended):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assignment is contended, try again"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// actor возвращает идентификатор действующего лица для аудита
func actor(c *gin.Context) string {
	if a := c.GetHeader("X-Actor"); a != "" {
		return a
	}
	return "dispatcher"
}

// @Summary Create a new incident
// @Description Create a new incident report. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), model, actor(c)); err != nil {
		log.WithError(err).Error("Failed to create incident in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get a list of incidents
// @Description Get a paginated list of incidents with optional status filter. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Param status query string false "Filter by incident status"
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	status := c.Query("status")

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), status, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Cancel an incident
// @Description Cancel an incident from any non-terminal state. A previously assigned unit is released. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 422 {object} map[string]string "Incident is already terminal"
// @Router /incidents/{id}/cancel [post]
func (h *Handler) cancelIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "cancelIncident").WithField("id", id)

	incident, err := h.incidentService.CancelIncident(c.Request.Context(), id, actor(c))
	if err != nil {
		log.WithError(err).Warn("Failed to cancel incident in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get incident timeline
// @Description Get the audit timeline of an incident. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {array} TimelineEntryResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/timeline [get]
func (h *Handler) getIncidentTimeline(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncidentTimeline").WithField("id", id)

	entries, err := h.incidentService.ListTimeline(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to list timeline from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToTimelineResponses(entries))
}

// @Summary Register a responder unit
// @Description Register a new responder unit for an agency. Requires API key.
// @Tags Units
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param unit body CreateUnitRequest true "Unit registration request"
// @Success 201 {object} UnitResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /units [post]
func (h *Handler) createUnit(c *gin.Context) {
	var input CreateUnitRequest
	log := h.logger.WithField("method", "createUnit")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unit := &models.ResponderUnit{
		AgencyID: input.AgencyID,
		Name:     input.Name,
	}
	if err := h.responderService.CreateUnit(c.Request.Context(), unit); err != nil {
		log.WithError(err).Error("Failed to create unit in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToUnitResponse(unit))
}

// @Summary List responder units
// @Description List responder units, optionally filtered by agency. Requires API key.
// @Tags Units
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param agencyId query string false "Agency ID filter"
// @Success 200 {array} UnitResponse
// @Failure 400 {object} map[string]string "Invalid agency ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /units [get]
func (h *Handler) listUnits(c *gin.Context) {
	log := h.logger.WithField("method", "listUnits")

	var agencyID *uuid.UUID
	if raw := c.Query("agencyId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agency ID"})
			return
		}
		agencyID = &id
	}

	units, err := h.responderService.ListUnits(c.Request.Context(), agencyID)
	if err != nil {
		log.WithError(err).Error("Failed to list units from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToUnitResponses(units))
}

// @Summary Update unit location
// @Description Update the last known position of a responder unit. Requires API key.
// @Tags Units
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Unit ID"
// @Param location body UpdateUnitLocationRequest true "Unit location update"
// @Success 200 {object} UnitResponse
// @Failure 400 {object} map[string]string "Invalid unit ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Unit not found"
// @Router /units/{id}/location [patch]
func (h *Handler) updateUnitLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid unit ID"})
		return
	}
	log := h.logger.WithField("method", "updateUnitLocation").WithField("id", id)

	var input UpdateUnitLocationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unit, err := h.responderService.UpdateUnitLocation(c.Request.Context(), id, input.Latitude, input.Longitude)
	if err != nil {
		log.WithError(err).Warn("Failed to update unit location in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUnitResponse(unit))
}

// @Summary Update unit status
// @Description Manually switch a unit between AVAILABLE and OFFLINE. ASSIGNED is coordinator-owned. Requires API key.
// @Tags Units
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Unit ID"
// @Param status body UpdateUnitStatusRequest true "Unit status update"
// @Success 200 {object} UnitResponse
// @Failure 400 {object} map[string]string "Invalid unit ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Unit not found"
// @Failure 422 {object} map[string]string "Unit is assigned"
// @Router /units/{id}/status [patch]
func (h *Handler) updateUnitStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid unit ID"})
		return
	}
	log := h.logger.WithField("method", "updateUnitStatus").WithField("id", id)

	var input UpdateUnitStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unit, err := h.responderService.SetUnitStatus(c.Request.Context(), id, models.UnitStatus(input.Status))
	if err != nil {
		log.WithError(err).Warn("Failed to set unit status in service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUnitResponse(unit))
}

// @Summary Get dispatch recommendations
// @Description Get a ranked list of candidate units and agencies for an incident. Requires API key.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incidentId path string true "Incident ID"
// @Success 200 {array} CandidateResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /dispatch/recommendations/{incidentId} [get]
func (h *Handler) getRecommendations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("incidentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getRecommendations").WithField("incident_id", id)

	candidates, err := h.dispatchService.Recommend(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to build recommendations")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToCandidateResponses(candidates))
}

// @Summary Assign a unit to an incident
// @Description Atomically assign a responder unit to an incident. Concurrent assignments of the same unit serialize: at most one succeeds. Requires API key.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param assignment body AssignRequest true "Assignment request"
// @Success 200 {object} AssignmentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident or unit not found"
// @Failure 409 {object} map[string]string "Unit is not available"
// @Failure 422 {object} map[string]string "Incident state does not allow assignment"
// @Failure 503 {object} map[string]string "Assignment lock contended, retry"
// @Router /dispatch/assign [post]
func (h *Handler) assign(c *gin.Context) {
	var input AssignRequest
	log := h.logger.WithField("method", "assign")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.dispatchService.Assign(c.Request.Context(), service.AssignParams{
		IncidentID: input.IncidentID,
		AgencyID:   input.AgencyID,
		UnitID:     input.UnitID,
		Actor:      actor(c),
	})
	if err != nil {
		log.WithError(err).Warn("Assignment rejected")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ResultToAssignmentResponse(result))
}

// @Summary Auto-assign the best candidate
// @Description Pick the top-ranked available unit for an incident and assign it. Requires API key.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incidentId path string true "Incident ID"
// @Success 200 {object} AssignmentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "No assignable candidates"
// @Router /dispatch/auto-assign/{incidentId} [post]
func (h *Handler) autoAssign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("incidentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "autoAssign").WithField("incident_id", id)

	result, err := h.dispatchService.AutoAssign(c.Request.Context(), id, actor(c))
	if err != nil {
		log.WithError(err).Warn("Auto-assignment rejected")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ResultToAssignmentResponse(result))
}

// @Summary Acknowledge an assignment
// @Description Acknowledge an assignment on behalf of the assigned unit. Idempotent: a repeated call is a no-op. Requires API key.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param acknowledgement body AcknowledgeRequest true "Acknowledge request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 422 {object} map[string]string "Unit is not the assigned unit"
// @Router /dispatch/acknowledge [post]
func (h *Handler) acknowledge(c *gin.Context) {
	var input AcknowledgeRequest
	log := h.logger.WithField("method", "acknowledge")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.dispatchService.Acknowledge(c.Request.Context(), input.IncidentID, input.UnitID)
	if err != nil {
		log.WithError(err).Warn("Failed to acknowledge assignment")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Mark an incident as responding
// @Description Mark that the assigned unit is en route to the incident. Requires API key.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AcknowledgeRequest true "Respond request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 422 {object} map[string]string "Invalid state or unit"
// @Router /dispatch/respond [post]
func (h *Handler) respond(c *gin.Context) {
	var input AcknowledgeRequest
	log := h.logger.WithField("method", "respond")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.dispatchService.Respond(c.Request.Context(), input.IncidentID, input.UnitID)
	if err != nil {
		log.WithError(err).Warn("Failed to mark incident as responding")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Resolve an incident
// @Description Resolve an incident and release the assigned unit in the same transaction. Requires API key.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param resolution body ResolveRequest true "Resolve request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 422 {object} map[string]string "Incident is already terminal"
// @Router /dispatch/resolve [post]
func (h *Handler) resolve(c *gin.Context) {
	var input ResolveRequest
	log := h.logger.WithField("method", "resolve")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.dispatchService.Resolve(c.Request.Context(), input.IncidentID, actor(c))
	if err != nil {
		log.WithError(err).Warn("Failed to resolve incident")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get dispatch statistics
// @Description Get the count of open incidents and available units. Requires API key.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dispatch/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.dispatchService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatsResponse{
		OpenIncidents:  stats.OpenIncidents,
		AvailableUnits: stats.AvailableUnits,
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
