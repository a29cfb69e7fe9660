package events

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAssignmentCreated_Channels(t *testing.T) {
	e := AssignmentCreated{
		IncidentID: uuid.New(),
		AgencyID:   uuid.New(),
		UnitID:     uuid.New(),
	}

	assert.Equal(t, "assignment:created", e.Name())
	assert.Equal(t, []string{
		"dispatch:events",
		"incident:" + e.IncidentID.String(),
		"unit:" + e.UnitID.String(),
	}, e.Channels())
}

func TestIncidentResolved_ChannelsWithoutUnit(t *testing.T) {
	e := IncidentResolved{IncidentID: uuid.New()}

	chans := e.Channels()
	assert.Len(t, chans, 2)
	assert.NotContains(t, chans[0]+chans[1], "unit:")
}

func TestIncidentResolved_ChannelsWithUnit(t *testing.T) {
	unitID := uuid.New()
	e := IncidentResolved{IncidentID: uuid.New(), UnitID: &unitID}

	assert.Contains(t, e.Channels(), "unit:"+unitID.String())
}

func TestUnitLocationUpdated_Channels(t *testing.T) {
	e := UnitLocationUpdated{UnitID: uuid.New(), Latitude: 9.01, Longitude: 38.02}

	assert.Equal(t, "unit:location", e.Name())
	assert.Equal(t, []string{"dispatch:events", "unit:" + e.UnitID.String()}, e.Channels())
}
