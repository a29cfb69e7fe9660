package models

import (
	"time"

	"github.com/google/uuid"
)

// UnitStatus - оперативный статус ответного юнита
type UnitStatus string

const (
	UnitStatusAvailable UnitStatus = "AVAILABLE"
	UnitStatusAssigned  UnitStatus = "ASSIGNED"
	UnitStatusOffline   UnitStatus = "OFFLINE"
)

// ResponderUnit представляет выездной юнит агентства.
// Позиция может отсутствовать, если юнит ещё не передавал координаты.
type ResponderUnit struct {
	ID         uuid.UUID  `json:"id"`
	AgencyID   uuid.UUID  `json:"agency_id"`
	Name       string     `json:"name"`
	Status     UnitStatus `json:"status"`
	Latitude   *float64   `json:"latitude,omitempty"`
	Longitude  *float64   `json:"longitude,omitempty"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
