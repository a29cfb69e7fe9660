package models

import (
	"time"

	"github.com/google/uuid"
)

// TimelineType - тип записи в хронологии инцидента
type TimelineType string

const (
	TimelineTypeReport       TimelineType = "REPORT"
	TimelineTypeAssignment   TimelineType = "ASSIGNMENT"
	TimelineTypeAcknowledge  TimelineType = "ACKNOWLEDGE"
	TimelineTypeStatusChange TimelineType = "STATUS_CHANGE"
	TimelineTypeResolution   TimelineType = "RESOLUTION"
)

// TimelineEntry - запись аудита по инциденту, добавляется в той же
// транзакции, что и само изменение
type TimelineEntry struct {
	ID         int64        `json:"id"`
	IncidentID uuid.UUID    `json:"incident_id"`
	Type       TimelineType `json:"type"`
	Message    string       `json:"message"`
	Actor      string       `json:"actor,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}
