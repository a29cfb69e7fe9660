package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentStatus - статус жизненного цикла инцидента
type IncidentStatus string

const (
	IncidentStatusReceived    IncidentStatus = "RECEIVED"
	IncidentStatusUnderReview IncidentStatus = "UNDER_REVIEW"
	IncidentStatusAssigned    IncidentStatus = "ASSIGNED"
	IncidentStatusResponding  IncidentStatus = "RESPONDING"
	IncidentStatusResolved    IncidentStatus = "RESOLVED"
	IncidentStatusCancelled   IncidentStatus = "CANCELLED"
)

// IsTerminal сообщает, является ли статус конечным
func (s IncidentStatus) IsTerminal() bool {
	return s == IncidentStatusResolved || s == IncidentStatusCancelled
}

// Assignable сообщает, допустимо ли назначение юнита в текущем статусе
func (s IncidentStatus) Assignable() bool {
	switch s {
	case IncidentStatusReceived, IncidentStatusUnderReview, IncidentStatusAssigned:
		return true
	}
	return false
}

type Incident struct {
	ID               uuid.UUID      `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Category         string         `json:"category"`
	SeverityScore    int            `json:"severity_score"`
	Latitude         float64        `json:"latitude"`
	Longitude        float64        `json:"longitude"`
	Status           IncidentStatus `json:"status"`
	AssignedAgencyID *uuid.UUID     `json:"assigned_agency_id,omitempty"`
	AssignedUnitID   *uuid.UUID     `json:"assigned_unit_id,omitempty"`
	AcknowledgedAt   *time.Time     `json:"acknowledged_at,omitempty"`
	ResolvedAt       *time.Time     `json:"resolved_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
