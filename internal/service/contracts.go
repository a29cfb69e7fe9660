package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/georise/incident_dispatch_system/internal/models"
)

// EligibleUnit - юнит-кандидат с дистанцией до инцидента, посчитанной
// хранилищем. DistanceKm == nil, если позиция юнита неизвестна.
type EligibleUnit struct {
	Unit       *models.ResponderUnit
	DistanceKm *float64
}

// IncidentRepository определяет контракт для работы с бд инцидентов.
// Create пишет инцидент и стартовую запись REPORT в хронологии атомарно.
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident, actor string) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, status string, page, pageSize int) ([]*models.Incident, error)
	ListTimeline(ctx context.Context, incidentID uuid.UUID) ([]*models.TimelineEntry, error)
	CountOpen(ctx context.Context) (int, error)

	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// ResponderRepository определяет контракт для работы с юнитами и агентствами.
// Запросы выборки кандидатов - консультативный снимок без блокировок.
type ResponderRepository interface {
	Create(ctx context.Context, unit *models.ResponderUnit) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ResponderUnit, error)
	ListUnits(ctx context.Context, agencyID *uuid.UUID) ([]*models.ResponderUnit, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, lat, lon float64) (*models.ResponderUnit, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.UnitStatus) (*models.ResponderUnit, error)
	CountAvailable(ctx context.Context) (int, error)

	ListEligibleUnits(ctx context.Context, incident *models.Incident) ([]*EligibleUnit, error)
	ListActiveAgencies(ctx context.Context, incident *models.Incident) ([]*models.Agency, error)
}

// AssignmentTx - операции, доступные внутри транзакции координатора.
// Все изменения либо фиксируются одним коммитом, либо откатываются целиком.
type AssignmentTx interface {
	GetUnitForUpdate(ctx context.Context, unitID uuid.UUID) (*models.ResponderUnit, error)
	GetIncidentForUpdate(ctx context.Context, incidentID uuid.UUID) (*models.Incident, error)
	SetUnitStatus(ctx context.Context, unitID uuid.UUID, status models.UnitStatus) error
	SetIncidentAssignment(ctx context.Context, incidentID, agencyID, unitID uuid.UUID) error
	SetIncidentStatus(ctx context.Context, incidentID uuid.UUID, status models.IncidentStatus) error
	SetAcknowledged(ctx context.Context, incidentID uuid.UUID, at time.Time) error
	SetResolved(ctx context.Context, incidentID uuid.UUID, at time.Time) error
	AppendTimeline(ctx context.Context, incidentID uuid.UUID, entryType models.TimelineType, message, actor string) error
}

// DispatchStore выполняет fn в транзакции под эксклюзивной блокировкой,
// скоупированной на юнит либо на инцидент. Возврат ошибки из fn откатывает
// транзакцию; невозможность взять блокировку за отведенное время
// транслируется в ErrAssignContended.
type DispatchStore interface {
	WithUnitLock(ctx context.Context, unitID uuid.UUID, fn func(tx AssignmentTx) error) error
	WithIncidentLock(ctx context.Context, incidentID uuid.UUID, fn func(tx AssignmentTx) error) error
}

// AssignParams - параметры операции назначения
type AssignParams struct {
	IncidentID uuid.UUID
	AgencyID   uuid.UUID
	UnitID     uuid.UUID
	Actor      string
}

// AssignmentResult - итог успешного назначения
type AssignmentResult struct {
	Incident *models.Incident       `json:"incident"`
	Unit     *models.ResponderUnit  `json:"unit"`
	Selected *models.CandidateScore `json:"selected,omitempty"`
}

// DispatchStats - сводка для дашборда диспетчера
type DispatchStats struct {
	OpenIncidents  int `json:"open_incidents"`
	AvailableUnits int `json:"available_units"`
}

// DispatchService определяет контракт рекомендаций и атомарных назначений
type DispatchService interface {
	Recommend(ctx context.Context, incidentID uuid.UUID) ([]models.CandidateScore, error)
	Assign(ctx context.Context, params AssignParams) (*AssignmentResult, error)
	AutoAssign(ctx context.Context, incidentID uuid.UUID, actor string) (*AssignmentResult, error)
	Acknowledge(ctx context.Context, incidentID, unitID uuid.UUID) (*models.Incident, error)
	Respond(ctx context.Context, incidentID, unitID uuid.UUID) (*models.Incident, error)
	Resolve(ctx context.Context, incidentID uuid.UUID, actor string) (*models.Incident, error)
	GetStats(ctx context.Context) (*DispatchStats, error)
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident, actor string) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, status string, page, pageSize int) ([]*models.Incident, error)
	CancelIncident(ctx context.Context, id uuid.UUID, actor string) (*models.Incident, error)
	ListTimeline(ctx context.Context, incidentID uuid.UUID) ([]*models.TimelineEntry, error)
}

// ResponderService определяет контракт для управления юнитами
type ResponderService interface {
	CreateUnit(ctx context.Context, unit *models.ResponderUnit) error
	ListUnits(ctx context.Context, agencyID *uuid.UUID) ([]*models.ResponderUnit, error)
	UpdateUnitLocation(ctx context.Context, id uuid.UUID, lat, lon float64) (*models.ResponderUnit, error)
	SetUnitStatus(ctx context.Context, id uuid.UUID, status models.UnitStatus) (*models.ResponderUnit, error)
}
