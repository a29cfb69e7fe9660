package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/georise/incident_dispatch_system/internal/events"
	"github.com/georise/incident_dispatch_system/internal/models"
)

type responderService struct {
	repo        ResponderRepository
	broadcaster events.Broadcaster
	logger      *logrus.Logger
}

// NewResponderService создает сервис управления юнитами
func NewResponderService(repo ResponderRepository, broadcaster events.Broadcaster, logger *logrus.Logger) ResponderService {
	return &responderService{
		repo:        repo,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// CreateUnit регистрирует новый юнит в статусе AVAILABLE
func (s *responderService) CreateUnit(ctx context.Context, unit *models.ResponderUnit) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "responder",
		"method":    "CreateUnit",
		"unit_name": unit.Name,
	})
	log.Info("Registering a new responder unit")

	unit.Status = models.UnitStatusAvailable
	if err := s.repo.Create(ctx, unit); err != nil {
		log.WithError(err).Error("Failed to create unit in repository")
		return fmt.Errorf("service: could not create unit: %w", err)
	}

	log.WithField("unit_id", unit.ID).Info("Responder unit registered successfully")
	return nil
}

// ListUnits возвращает юниты, опционально отфильтрованные по агентству
func (s *responderService) ListUnits(ctx context.Context, agencyID *uuid.UUID) ([]*models.ResponderUnit, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "responder",
		"method":  "ListUnits",
	})
	log.Info("Listing responder units")

	units, err := s.repo.ListUnits(ctx, agencyID)
	if err != nil {
		log.WithError(err).Error("Failed to list units from repository")
		return nil, fmt.Errorf("service: could not list units: %w", err)
	}
	return units, nil
}

// UpdateUnitLocation обновляет позицию и last_seen юнита
func (s *responderService) UpdateUnitLocation(ctx context.Context, id uuid.UUID, lat, lon float64) (*models.ResponderUnit, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "responder",
		"method":  "UpdateUnitLocation",
		"unit_id": id,
	})
	log.Debug("Updating unit location")

	unit, err := s.repo.UpdateLocation(ctx, id, lat, lon)
	if err != nil {
		log.WithError(err).Warn("Failed to update unit location")
		return nil, fmt.Errorf("service: could not update unit location: %w", err)
	}

	if err := s.broadcaster.Publish(ctx, events.UnitLocationUpdated{UnitID: id, Latitude: lat, Longitude: lon}); err != nil {
		log.WithError(err).Warn("Failed to publish unit location event")
	}
	return unit, nil
}

// SetUnitStatus переключает юнит между AVAILABLE и OFFLINE вручную.
// Статус ASSIGNED принадлежит координатору и здесь недоступен; занятый
// юнит освобождается только через resolve/cancel инцидента. Проверку
// занятости выполняет хранилище атомарно с записью: предварительное
// чтение статуса гонку с назначением не закрывает.
func (s *responderService) SetUnitStatus(ctx context.Context, id uuid.UUID, status models.UnitStatus) (*models.ResponderUnit, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "responder",
		"method":  "SetUnitStatus",
		"unit_id": id,
		"status":  status,
	})
	log.Info("Setting unit status")

	if status != models.UnitStatusAvailable && status != models.UnitStatusOffline {
		return nil, fmt.Errorf("status %s is coordinator-owned: %w", status, ErrInvalidState)
	}

	updated, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		log.WithError(err).Warn("Failed to set unit status")
		return nil, fmt.Errorf("service: could not set unit status: %w", err)
	}
	return updated, nil
}
