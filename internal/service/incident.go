package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/georise/incident_dispatch_system/internal/config"
	"github.com/georise/incident_dispatch_system/internal/events"
	"github.com/georise/incident_dispatch_system/internal/models"
)

type incidentService struct {
	repo        IncidentRepository
	store       DispatchStore
	broadcaster events.Broadcaster
	logger      *logrus.Logger
	cfg         *config.Config
}

// NewIncidentService создает сервис жизненного цикла инцидентов
func NewIncidentService(repo IncidentRepository, store DispatchStore, broadcaster events.Broadcaster, logger *logrus.Logger, cfg *config.Config) IncidentService {
	return &incidentService{
		repo:        repo,
		store:       store,
		broadcaster: broadcaster,
		logger:      logger,
		cfg:         cfg,
	}
}

// CreateIncident создает инцидент в статусе RECEIVED. Хронология
// открывается записью REPORT от имени заявителя
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident, actor string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"title":   incident.Title,
	})
	log.Info("Attempting to create a new incident")

	incident.Status = models.IncidentStatusReceived
	if err := s.repo.Create(ctx, incident, actor); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// GetIncident получает инцидент по ID с кешированием в Redis
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		// Проблемы кеша не фатальны, идем в бд
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		log.Info("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}

	log.Info("Incident fetched successfully")
	return incident, nil
}

// ListIncidents возвращает список инцидентов с пагинацией и необязательным
// фильтром по статусу
func (s *incidentService) ListIncidents(ctx context.Context, status string, page, pageSize int) ([]*models.Incident, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing incidents")

	incidents, err := s.repo.ListIncidents(ctx, status, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// CancelIncident переводит инцидент в CANCELLED из любого неконечного
// статуса. Назначенный юнит освобождается в той же транзакции.
func (s *incidentService) CancelIncident(ctx context.Context, id uuid.UUID, actor string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "CancelIncident",
		"incident_id": id,
	})
	log.Info("Attempting to cancel incident")

	var incident *models.Incident
	var releasedUnit *uuid.UUID
	err := s.store.WithIncidentLock(ctx, id, func(tx AssignmentTx) error {
		var err error
		incident, err = tx.GetIncidentForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if incident.Status.IsTerminal() {
			return fmt.Errorf("incident %s has status %s: %w", id, incident.Status, ErrInvalidState)
		}

		if err := tx.SetIncidentStatus(ctx, id, models.IncidentStatusCancelled); err != nil {
			return err
		}
		if incident.AssignedUnitID != nil {
			if err := tx.SetUnitStatus(ctx, *incident.AssignedUnitID, models.UnitStatusAvailable); err != nil {
				return err
			}
			releasedUnit = incident.AssignedUnitID
		}
		if err := tx.AppendTimeline(ctx, id, models.TimelineTypeStatusChange, "incident cancelled", actor); err != nil {
			return err
		}

		incident.Status = models.IncidentStatusCancelled
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Failed to cancel incident")
		return nil, err
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
	if err := s.broadcaster.Publish(ctx, events.IncidentCancelled{IncidentID: id, UnitID: releasedUnit}); err != nil {
		log.WithError(err).Warn("Failed to publish cancellation event")
	}

	log.Info("Incident cancelled successfully")
	return incident, nil
}

// ListTimeline возвращает хронологию инцидента
func (s *incidentService) ListTimeline(ctx context.Context, incidentID uuid.UUID) ([]*models.TimelineEntry, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ListTimeline",
		"incident_id": incidentID,
	})

	if _, err := s.repo.GetByID(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Attempted to list timeline of a non-existent incident")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	entries, err := s.repo.ListTimeline(ctx, incidentID)
	if err != nil {
		log.WithError(err).Error("Failed to list timeline from repository")
		return nil, fmt.Errorf("service: could not list timeline: %w", err)
	}
	return entries, nil
}
