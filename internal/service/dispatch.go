package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/georise/incident_dispatch_system/internal/config"
	"github.com/georise/incident_dispatch_system/internal/events"
	"github.com/georise/incident_dispatch_system/internal/models"
	"github.com/georise/incident_dispatch_system/internal/scoring"
)

type dispatchService struct {
	incidents   IncidentRepository
	responders  ResponderRepository
	store       DispatchStore
	scorer      *scoring.Scorer
	broadcaster events.Broadcaster
	logger      *logrus.Logger
	cfg         *config.Config
}

// NewDispatchService создает сервис рекомендаций и назначений
func NewDispatchService(
	incidents IncidentRepository,
	responders ResponderRepository,
	store DispatchStore,
	broadcaster events.Broadcaster,
	logger *logrus.Logger,
	cfg *config.Config,
) DispatchService {
	scorer := scoring.NewScorer(scoring.Weights{
		Jurisdiction:          cfg.Weights.Jurisdiction,
		Proximity:             cfg.Weights.Proximity,
		Severity:              cfg.Weights.Severity,
		ProximityCapKm:        cfg.ProximityCapKm,
		MutualAidScore:        cfg.MutualAidScore,
		CategoryCompatibility: cfg.CategoryCompatibility,
	})
	return &dispatchService{
		incidents:   incidents,
		responders:  responders,
		store:       store,
		scorer:      scorer,
		broadcaster: broadcaster,
		logger:      logger,
		cfg:         cfg,
	}
}

// Recommend возвращает ранжированный список кандидатов для инцидента.
// Чтение консультативное: без блокировок и без побочных эффектов.
func (s *dispatchService) Recommend(ctx context.Context, incidentID uuid.UUID) ([]models.CandidateScore, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "Recommend",
		"incident_id": incidentID,
	})
	log.Info("Building dispatch recommendations")

	incident, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Failed to load incident for recommendations")
		return nil, fmt.Errorf("service: could not load incident: %w", err)
	}

	agencies, err := s.responders.ListActiveAgencies(ctx, incident)
	if err != nil {
		log.WithError(err).Error("Failed to list active agencies")
		return nil, fmt.Errorf("service: could not list agencies: %w", err)
	}

	units, err := s.responders.ListEligibleUnits(ctx, incident)
	if err != nil {
		log.WithError(err).Error("Failed to list eligible units")
		return nil, fmt.Errorf("service: could not list eligible units: %w", err)
	}

	agencyByID := make(map[uuid.UUID]*models.Agency, len(agencies))
	for _, a := range agencies {
		agencyByID[a.ID] = a
	}

	candidates := make([]models.CandidateScore, 0, len(units)+len(agencies))
	agenciesWithUnits := make(map[uuid.UUID]bool)

	for _, eu := range units {
		agency, ok := agencyByID[eu.Unit.AgencyID]
		if !ok {
			// Юнит неактивного агентства в выдачу не попадает
			continue
		}
		agenciesWithUnits[agency.ID] = true
		candidates = append(candidates, s.scorer.ScoreUnit(incident, eu.Unit, agency, eu.DistanceKm))
	}

	// Агентства без доступных юнитов остаются в выдаче кандидатами
	// уровня агентства: диспетчер может вызвать их вручную
	for _, agency := range agencies {
		if agenciesWithUnits[agency.ID] {
			continue
		}
		candidates = append(candidates, s.scorer.ScoreAgency(incident, agency))
	}

	sortCandidates(candidates)

	log.WithField("count", len(candidates)).Info("Dispatch recommendations built")
	return candidates, nil
}

// sortCandidates упорядочивает кандидатов по убыванию оценки; равные оценки
// разрешаются по возрастанию id юнита, кандидаты без юнита идут последними.
// Порядок детерминирован при идентичном снимке данных.
func sortCandidates(candidates []models.CandidateScore) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].TotalScore != candidates[j].TotalScore {
			return candidates[i].TotalScore > candidates[j].TotalScore
		}
		ui, uj := candidates[i].UnitID, candidates[j].UnitID
		switch {
		case ui == nil && uj == nil:
			return candidates[i].AgencyID.String() < candidates[j].AgencyID.String()
		case ui == nil:
			return false
		case uj == nil:
			return true
		default:
			return ui.String() < uj.String()
		}
	})
}

// Assign атомарно назначает юнит на инцидент. Критическая секция
// скоупирована на юнит: конкурирующие назначения одного юнита
// сериализуются, назначения разных юнитов идут параллельно.
func (s *dispatchService) Assign(ctx context.Context, params AssignParams) (*AssignmentResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "Assign",
		"incident_id": params.IncidentID,
		"unit_id":     params.UnitID,
	})
	log.Info("Attempting to assign unit to incident")

	var result *AssignmentResult
	backoff := s.cfg.AssignRetryBackoff
	attempts := s.cfg.AssignMaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err = s.assignOnce(ctx, params)
		if err == nil {
			break
		}
		if !errors.Is(err, ErrAssignContended) {
			log.WithError(err).Warn("Assignment rejected")
			return nil, err
		}
		// Блокировка не получена: ограниченный повтор с экспоненциальной задержкой
		log.WithError(err).Warnf("Unit lock contended, retry %d/%d", attempt, attempts)
		if attempt < attempts {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("service: assignment cancelled: %w", ctx.Err())
			case <-time.After(backoff):
			}
			backoff *= 2
		}
	}
	if err != nil {
		log.WithError(err).Error("Assignment failed after retries")
		return nil, err
	}

	// Публикация строго после коммита; сбой уведомления не откатывает назначение
	s.publish(ctx, events.AssignmentCreated{
		IncidentID: params.IncidentID,
		AgencyID:   params.AgencyID,
		UnitID:     params.UnitID,
	})

	log.Info("Unit assigned successfully")
	return result, nil
}

// assignOnce выполняет одну попытку назначения внутри транзакции под
// блокировкой юнита
func (s *dispatchService) assignOnce(ctx context.Context, params AssignParams) (*AssignmentResult, error) {
	var result *AssignmentResult

	err := s.store.WithUnitLock(ctx, params.UnitID, func(tx AssignmentTx) error {
		// Перечитываем юнит уже под блокировкой: проверка до блокировки
		// ничего не гарантирует
		unit, err := tx.GetUnitForUpdate(ctx, params.UnitID)
		if err != nil {
			return err
		}
		if unit.AgencyID != params.AgencyID {
			return fmt.Errorf("unit %s: %w", params.UnitID, ErrAgencyMismatch)
		}
		if unit.Status != models.UnitStatusAvailable {
			return fmt.Errorf("unit %s has status %s: %w", params.UnitID, unit.Status, ErrUnitNotAvailable)
		}

		incident, err := tx.GetIncidentForUpdate(ctx, params.IncidentID)
		if err != nil {
			return err
		}
		if !incident.Status.Assignable() {
			return fmt.Errorf("incident %s has status %s: %w", params.IncidentID, incident.Status, ErrInvalidState)
		}

		// Переназначение: прежний юнит освобождается в той же транзакции
		if incident.AssignedUnitID != nil && *incident.AssignedUnitID != params.UnitID {
			if err := tx.SetUnitStatus(ctx, *incident.AssignedUnitID, models.UnitStatusAvailable); err != nil {
				return err
			}
			if err := tx.AppendTimeline(ctx, params.IncidentID, models.TimelineTypeAssignment,
				fmt.Sprintf("unit %s released on reassignment", *incident.AssignedUnitID), params.Actor); err != nil {
				return err
			}
		}

		if err := tx.SetUnitStatus(ctx, params.UnitID, models.UnitStatusAssigned); err != nil {
			return err
		}
		if err := tx.SetIncidentAssignment(ctx, params.IncidentID, params.AgencyID, params.UnitID); err != nil {
			return err
		}
		if err := tx.AppendTimeline(ctx, params.IncidentID, models.TimelineTypeAssignment,
			fmt.Sprintf("unit %s assigned by agency %s", params.UnitID, params.AgencyID), params.Actor); err != nil {
			return err
		}

		now := time.Now()
		incident.Status = models.IncidentStatusAssigned
		incident.AssignedAgencyID = &params.AgencyID
		incident.AssignedUnitID = &params.UnitID
		incident.UpdatedAt = now
		unit.Status = models.UnitStatusAssigned
		unit.UpdatedAt = now

		result = &AssignmentResult{Incident: incident, Unit: unit}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.incidents.InvalidateIncidentCache(ctx, params.IncidentID); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate incident cache after assignment")
	}
	return result, nil
}

// AutoAssign выбирает лучшего кандидата-юнита и назначает его
func (s *dispatchService) AutoAssign(ctx context.Context, incidentID uuid.UUID, actor string) (*AssignmentResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "AutoAssign",
		"incident_id": incidentID,
	})
	log.Info("Auto-assigning best candidate")

	candidates, err := s.Recommend(ctx, incidentID)
	if err != nil {
		return nil, err
	}

	for i := range candidates {
		if candidates[i].UnitID == nil {
			continue
		}
		result, err := s.Assign(ctx, AssignParams{
			IncidentID: incidentID,
			AgencyID:   candidates[i].AgencyID,
			UnitID:     *candidates[i].UnitID,
			Actor:      actor,
		})
		if err != nil {
			// Кандидата успели занять между снимком и блокировкой -
			// пробуем следующего
			if errors.Is(err, ErrUnitNotAvailable) {
				log.WithField("unit_id", candidates[i].UnitID).Warn("Top candidate taken, trying next")
				continue
			}
			return nil, err
		}
		selected := candidates[i]
		result.Selected = &selected
		return result, nil
	}

	log.Warn("No assignable candidates found")
	return nil, fmt.Errorf("service: incident %s: %w", incidentID, ErrNoCandidates)
}

// Acknowledge фиксирует подтверждение назначенным юнитом. Идемпотентен:
// повторный вызов не меняет acknowledged_at и не является ошибкой.
func (s *dispatchService) Acknowledge(ctx context.Context, incidentID, unitID uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "Acknowledge",
		"incident_id": incidentID,
		"unit_id":     unitID,
	})
	log.Info("Acknowledging assignment")

	var incident *models.Incident
	var acknowledged bool
	err := s.store.WithIncidentLock(ctx, incidentID, func(tx AssignmentTx) error {
		var err error
		incident, err = tx.GetIncidentForUpdate(ctx, incidentID)
		if err != nil {
			return err
		}
		if incident.AssignedUnitID == nil || *incident.AssignedUnitID != unitID {
			return fmt.Errorf("incident %s: %w", incidentID, ErrNotAssignedUnit)
		}
		if incident.Status != models.IncidentStatusAssigned && incident.Status != models.IncidentStatusResponding {
			return fmt.Errorf("incident %s has status %s: %w", incidentID, incident.Status, ErrInvalidState)
		}
		if incident.AcknowledgedAt != nil {
			// Уже подтверждено - no-op
			return nil
		}

		now := time.Now()
		if err := tx.SetAcknowledged(ctx, incidentID, now); err != nil {
			return err
		}
		if err := tx.AppendTimeline(ctx, incidentID, models.TimelineTypeAcknowledge,
			fmt.Sprintf("assignment acknowledged by unit %s", unitID), unitID.String()); err != nil {
			return err
		}
		incident.AcknowledgedAt = &now
		incident.UpdatedAt = now
		acknowledged = true
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Failed to acknowledge assignment")
		return nil, err
	}

	// Повторное подтверждение ничего не меняло: без инвалидации и события
	if !acknowledged {
		return incident, nil
	}

	if err := s.incidents.InvalidateIncidentCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
	s.publish(ctx, events.IncidentAcknowledged{IncidentID: incidentID, UnitID: unitID})
	return incident, nil
}

// Respond переводит инцидент в статус RESPONDING
func (s *dispatchService) Respond(ctx context.Context, incidentID, unitID uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "Respond",
		"incident_id": incidentID,
		"unit_id":     unitID,
	})
	log.Info("Marking incident as responding")

	var incident *models.Incident
	err := s.store.WithIncidentLock(ctx, incidentID, func(tx AssignmentTx) error {
		var err error
		incident, err = tx.GetIncidentForUpdate(ctx, incidentID)
		if err != nil {
			return err
		}
		if incident.AssignedUnitID == nil || *incident.AssignedUnitID != unitID {
			return fmt.Errorf("incident %s: %w", incidentID, ErrNotAssignedUnit)
		}
		if incident.Status != models.IncidentStatusAssigned {
			return fmt.Errorf("incident %s has status %s: %w", incidentID, incident.Status, ErrInvalidState)
		}

		if err := tx.SetIncidentStatus(ctx, incidentID, models.IncidentStatusResponding); err != nil {
			return err
		}
		if err := tx.AppendTimeline(ctx, incidentID, models.TimelineTypeStatusChange,
			fmt.Sprintf("unit %s is responding", unitID), unitID.String()); err != nil {
			return err
		}
		incident.Status = models.IncidentStatusResponding
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Failed to mark incident as responding")
		return nil, err
	}

	if err := s.incidents.InvalidateIncidentCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
	s.publish(ctx, events.IncidentResponding{IncidentID: incidentID, UnitID: unitID})
	return incident, nil
}

// Resolve закрывает инцидент и освобождает юнит в той же транзакции:
// юнит не может остаться ASSIGNED после закрытия инцидента.
func (s *dispatchService) Resolve(ctx context.Context, incidentID uuid.UUID, actor string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "Resolve",
		"incident_id": incidentID,
	})
	log.Info("Resolving incident")

	var incident *models.Incident
	var releasedUnit *uuid.UUID
	err := s.store.WithIncidentLock(ctx, incidentID, func(tx AssignmentTx) error {
		var err error
		incident, err = tx.GetIncidentForUpdate(ctx, incidentID)
		if err != nil {
			return err
		}
		if incident.Status.IsTerminal() {
			return fmt.Errorf("incident %s has status %s: %w", incidentID, incident.Status, ErrInvalidState)
		}

		now := time.Now()
		if err := tx.SetResolved(ctx, incidentID, now); err != nil {
			return err
		}
		if incident.AssignedUnitID != nil {
			if err := tx.SetUnitStatus(ctx, *incident.AssignedUnitID, models.UnitStatusAvailable); err != nil {
				return err
			}
			releasedUnit = incident.AssignedUnitID
		}
		if err := tx.AppendTimeline(ctx, incidentID, models.TimelineTypeResolution,
			"incident resolved", actor); err != nil {
			return err
		}

		incident.Status = models.IncidentStatusResolved
		incident.ResolvedAt = &now
		incident.UpdatedAt = now
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Failed to resolve incident")
		return nil, err
	}

	if err := s.incidents.InvalidateIncidentCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
	s.publish(ctx, events.IncidentResolved{IncidentID: incidentID, UnitID: releasedUnit})

	log.Info("Incident resolved successfully")
	return incident, nil
}

// GetStats возвращает сводку для дашборда диспетчера
func (s *dispatchService) GetStats(ctx context.Context) (*DispatchStats, error) {
	open, err := s.incidents.CountOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count open incidents: %w", err)
	}
	available, err := s.responders.CountAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count available units: %w", err)
	}
	return &DispatchStats{OpenIncidents: open, AvailableUnits: available}, nil
}

func (s *dispatchService) publish(ctx context.Context, event events.Event) {
	if err := s.broadcaster.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("event", event.Name()).Warn("Failed to publish dispatch event")
	}
}
