package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Title         string  `json:"title" validate:"required,min=2,max=255"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category" validate:"required,min=2,max=64"`
	SeverityScore int     `json:"severity_score" validate:"gte=0,lte=5"`
	Latitude      float64 `json:"latitude" validate:"required,latitude"`
	Longitude     float64 `json:"longitude" validate:"required,longitude"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Category         string     `json:"category"`
	SeverityScore    int        `json:"severity_score"`
	Latitude         float64    `json:"latitude"`
	Longitude        float64    `json:"longitude"`
	Status           string     `json:"status"`
	AssignedAgencyID *uuid.UUID `json:"assigned_agency_id,omitempty"`
	AssignedUnitID   *uuid.UUID `json:"assigned_unit_id,omitempty"`
	AcknowledgedAt   *time.Time `json:"acknowledged_at,omitempty"`
	ResolvedAt       *time.Time `json:"resolved_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// CreateUnitRequest DTO для регистрации юнита
// @Description DTO для регистрации юнита
type CreateUnitRequest struct {
	AgencyID uuid.UUID `json:"agency_id" validate:"required"`
	Name     string    `json:"name" validate:"required,min=2,max=255"`
}

// UnitResponse DTO для ответа с информацией о юните
// @Description DTO для ответа с информацией о юните
type UnitResponse struct {
	ID         uuid.UUID  `json:"id"`
	AgencyID   uuid.UUID  `json:"agency_id"`
	Name       string     `json:"name"`
	Status     string     `json:"status"`
	Latitude   *float64   `json:"latitude,omitempty"`
	Longitude  *float64   `json:"longitude,omitempty"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// UpdateUnitLocationRequest DTO для обновления позиции юнита
// @Description DTO для обновления позиции юнита
type UpdateUnitLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// UpdateUnitStatusRequest DTO для ручного переключения статуса юнита
// @Description DTO для ручного переключения статуса юнита
type UpdateUnitStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE OFFLINE"`
}

// AssignRequest DTO для назначения юнита на инцидент
// @Description DTO для назначения юнита на инцидент
type AssignRequest struct {
	IncidentID uuid.UUID `json:"incident_id" validate:"required"`
	AgencyID   uuid.UUID `json:"agency_id" validate:"required"`
	UnitID     uuid.UUID `json:"unit_id" validate:"required"`
}

// AcknowledgeRequest DTO для подтверждения назначения юнитом
// @Description DTO для подтверждения назначения юнитом
type AcknowledgeRequest struct {
	IncidentID uuid.UUID `json:"incident_id" validate:"required"`
	UnitID     uuid.UUID `json:"unit_id" validate:"required"`
}

// ResolveRequest DTO для закрытия инцидента
// @Description DTO для закрытия инцидента
type ResolveRequest struct {
	IncidentID uuid.UUID `json:"incident_id" validate:"required"`
}

// CandidateResponse DTO для кандидата рекомендации
// @Description DTO для кандидата рекомендации
type CandidateResponse struct {
	AgencyID          uuid.UUID  `json:"agency_id"`
	UnitID            *uuid.UUID `json:"unit_id,omitempty"`
	DistanceKm        *float64   `json:"distance_km,omitempty"`
	JurisdictionScore float64    `json:"jurisdiction_score"`
	SeverityScore     float64    `json:"severity_score"`
	ProximityScore    float64    `json:"proximity_score"`
	TotalScore        float64    `json:"total_score"`
}

// AssignmentResponse DTO для результата назначения
// @Description DTO для результата назначения
type AssignmentResponse struct {
	Incident *IncidentResponse  `json:"incident"`
	Unit     *UnitResponse      `json:"unit"`
	Selected *CandidateResponse `json:"selected,omitempty"`
}

// TimelineEntryResponse DTO для записи хронологии инцидента
// @Description DTO для записи хронологии инцидента
type TimelineEntryResponse struct {
	ID         int64     `json:"id"`
	IncidentID uuid.UUID `json:"incident_id"`
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	Actor      string    `json:"actor,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// StatsResponse DTO для ответа со сводкой диспетчеризации
// @Description DTO для ответа со сводкой диспетчеризации
type StatsResponse struct {
	OpenIncidents  int `json:"open_incidents"`
	AvailableUnits int `json:"available_units"`
}
