package events

import (
	"context"

	"github.com/google/uuid"
)

// Event - закрытое множество событий диспетчеризации. Типизированные
// варианты вместо произвольных имен и нетипизированных нагрузок.
type Event interface {
	// Name возвращает стабильное имя события для подписчиков
	Name() string
	// Channels возвращает каналы реального времени, в которые событие публикуется
	Channels() []string
}

const eventsChannel = "dispatch:events"

func incidentChannel(id uuid.UUID) string { return "incident:" + id.String() }
func unitChannel(id uuid.UUID) string     { return "unit:" + id.String() }

// AssignmentCreated - юнит назначен на инцидент
type AssignmentCreated struct {
	IncidentID uuid.UUID `json:"incident_id"`
	AgencyID   uuid.UUID `json:"agency_id"`
	UnitID     uuid.UUID `json:"unit_id"`
}

func (e AssignmentCreated) Name() string { return "assignment:created" }
func (e AssignmentCreated) Channels() []string {
	return []string{eventsChannel, incidentChannel(e.IncidentID), unitChannel(e.UnitID)}
}

// IncidentAcknowledged - назначенный юнит подтвердил получение
type IncidentAcknowledged struct {
	IncidentID uuid.UUID `json:"incident_id"`
	UnitID     uuid.UUID `json:"unit_id"`
}

func (e IncidentAcknowledged) Name() string { return "incident:acknowledged" }
func (e IncidentAcknowledged) Channels() []string {
	return []string{eventsChannel, incidentChannel(e.IncidentID), unitChannel(e.UnitID)}
}

// IncidentResponding - юнит выехал на инцидент
type IncidentResponding struct {
	IncidentID uuid.UUID `json:"incident_id"`
	UnitID     uuid.UUID `json:"unit_id"`
}

func (e IncidentResponding) Name() string { return "incident:responding" }
func (e IncidentResponding) Channels() []string {
	return []string{eventsChannel, incidentChannel(e.IncidentID), unitChannel(e.UnitID)}
}

// IncidentResolved - инцидент закрыт, юнит освобожден
type IncidentResolved struct {
	IncidentID uuid.UUID  `json:"incident_id"`
	UnitID     *uuid.UUID `json:"unit_id,omitempty"`
}

func (e IncidentResolved) Name() string { return "incident:resolved" }
func (e IncidentResolved) Channels() []string {
	chans := []string{eventsChannel, incidentChannel(e.IncidentID)}
	if e.UnitID != nil {
		chans = append(chans, unitChannel(*e.UnitID))
	}
	return chans
}

// IncidentCancelled - инцидент отменен
type IncidentCancelled struct {
	IncidentID uuid.UUID  `json:"incident_id"`
	UnitID     *uuid.UUID `json:"unit_id,omitempty"`
}

func (e IncidentCancelled) Name() string { return "incident:cancelled" }
func (e IncidentCancelled) Channels() []string {
	chans := []string{eventsChannel, incidentChannel(e.IncidentID)}
	if e.UnitID != nil {
		chans = append(chans, unitChannel(*e.UnitID))
	}
	return chans
}

// UnitLocationUpdated - юнит передал новые координаты
type UnitLocationUpdated struct {
	UnitID    uuid.UUID `json:"unit_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

func (e UnitLocationUpdated) Name() string { return "unit:location" }
func (e UnitLocationUpdated) Channels() []string {
	return []string{eventsChannel, unitChannel(e.UnitID)}
}

// Broadcaster - интерфейс публикации событий. Доставка best-effort и
// происходит строго после коммита транзакции: сбой публикации никогда
// не откатывает назначение.
type Broadcaster interface {
	Publish(ctx context.Context, event Event) error
}
