package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georise/incident_dispatch_system/internal/models"
)

func testWeights() Weights {
	return Weights{
		Jurisdiction:   0.40,
		Proximity:      0.35,
		Severity:       0.25,
		ProximityCapKm: 15,
		MutualAidScore: 0.5,
		CategoryCompatibility: map[string][]string{
			"FIRE":    {"FIRE", "GENERAL"},
			"MEDICAL": {"MEDICAL", "GENERAL"},
		},
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestScoreUnit_InJurisdiction(t *testing.T) {
	scorer := NewScorer(testWeights())

	incident := &models.Incident{Category: "ACCIDENT", SeverityScore: 4}
	agency := &models.Agency{ID: uuid.New(), Type: models.AgencyTypeTraffic, InJurisdiction: true}
	unit := &models.ResponderUnit{ID: uuid.New(), AgencyID: agency.ID}

	score := scorer.ScoreUnit(incident, unit, agency, floatPtr(3.0))

	require.NotNil(t, score.UnitID)
	assert.Equal(t, unit.ID, *score.UnitID)
	assert.Equal(t, 1.0, score.JurisdictionScore)
	assert.InDelta(t, 0.8, score.SeverityScore, 1e-9)
	assert.InDelta(t, 0.8, score.ProximityScore, 1e-9) // 1 - 3/15

	// 1.0*0.40 + 0.8*0.35 + 0.8*0.25 + бонус 0.15 профильному TRAFFIC
	assert.InDelta(t, 1.03, score.TotalScore, 1e-9)
}

func TestScoreUnit_MutualAid(t *testing.T) {
	scorer := NewScorer(testWeights())

	incident := &models.Incident{Category: "FIRE", SeverityScore: 5}
	agency := &models.Agency{ID: uuid.New(), Type: models.AgencyTypeFire, InJurisdiction: false}
	unit := &models.ResponderUnit{ID: uuid.New(), AgencyID: agency.ID}

	score := scorer.ScoreUnit(incident, unit, agency, floatPtr(0))

	assert.Equal(t, 0.5, score.JurisdictionScore)
	assert.Equal(t, 1.0, score.ProximityScore)
	// 0.5*0.40 + 1.0*0.35 + 1.0*0.25 + 0.2
	assert.InDelta(t, 1.0, score.TotalScore, 1e-9)
}

func TestScoreUnit_AssignedAgencyKeepsFullJurisdiction(t *testing.T) {
	scorer := NewScorer(testWeights())

	agencyID := uuid.New()
	incident := &models.Incident{
		Category:         "MEDICAL",
		SeverityScore:    3,
		AssignedAgencyID: &agencyID,
	}
	agency := &models.Agency{ID: agencyID, Type: models.AgencyTypeMedical, InJurisdiction: false}
	unit := &models.ResponderUnit{ID: uuid.New(), AgencyID: agencyID}

	score := scorer.ScoreUnit(incident, unit, agency, nil)

	// Назначенное агентство не штрафуется как взаимопомощь
	assert.Equal(t, 1.0, score.JurisdictionScore)
	// Неизвестная позиция дает нейтральную близость, а не ноль
	assert.Equal(t, 0.5, score.ProximityScore)
}

func TestScoreUnit_IncompatibleCategoryZeroesTotal(t *testing.T) {
	scorer := NewScorer(testWeights())

	incident := &models.Incident{Category: "FIRE", SeverityScore: 5}
	agency := &models.Agency{ID: uuid.New(), Type: models.AgencyTypePolice, InJurisdiction: true}
	unit := &models.ResponderUnit{ID: uuid.New(), AgencyID: agency.ID}

	score := scorer.ScoreUnit(incident, unit, agency, floatPtr(1.0))

	assert.Equal(t, 0.0, score.JurisdictionScore)
	assert.Equal(t, 0.0, score.TotalScore)
}

func TestScoreUnit_DistanceBeyondCap(t *testing.T) {
	scorer := NewScorer(testWeights())

	incident := &models.Incident{Category: "ACCIDENT", SeverityScore: 1}
	agency := &models.Agency{ID: uuid.New(), Type: models.AgencyTypeGeneral, InJurisdiction: true}
	unit := &models.ResponderUnit{ID: uuid.New(), AgencyID: agency.ID}

	score := scorer.ScoreUnit(incident, unit, agency, floatPtr(40.0))

	assert.Equal(t, 0.0, score.ProximityScore)
}

func TestScoreUnit_Deterministic(t *testing.T) {
	scorer := NewScorer(testWeights())

	incident := &models.Incident{Category: "ACCIDENT", SeverityScore: 4}
	agency := &models.Agency{ID: uuid.New(), Type: models.AgencyTypeTraffic, InJurisdiction: true}
	unit := &models.ResponderUnit{ID: uuid.New(), AgencyID: agency.ID}

	first := scorer.ScoreUnit(incident, unit, agency, floatPtr(7.5))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, scorer.ScoreUnit(incident, unit, agency, floatPtr(7.5)))
	}
}

func TestScoreAgency_NoUnitNoProximity(t *testing.T) {
	scorer := NewScorer(testWeights())

	incident := &models.Incident{Category: "FIRE", SeverityScore: 5}
	agency := &models.Agency{ID: uuid.New(), Type: models.AgencyTypeFire, InJurisdiction: true}

	score := scorer.ScoreAgency(incident, agency)

	assert.Nil(t, score.UnitID)
	assert.Nil(t, score.DistanceKm)
	assert.Equal(t, 0.0, score.ProximityScore)
	// 1.0*0.40 + 0 + 1.0*0.25 + 0.2
	assert.InDelta(t, 0.85, score.TotalScore, 1e-9)
}

func TestNormalizeSeverity_Clamped(t *testing.T) {
	assert.Equal(t, 1.0, normalizeSeverity(9))
	assert.Equal(t, 0.0, normalizeSeverity(-1))
	assert.InDelta(t, 0.6, normalizeSeverity(3), 1e-9)
}

func TestCategoryCompatible_UnknownCategoryAllowsAll(t *testing.T) {
	scorer := NewScorer(testWeights())

	incident := &models.Incident{Category: "LANDSLIDE", SeverityScore: 2}
	agency := &models.Agency{ID: uuid.New(), Type: models.AgencyTypePolice, InJurisdiction: true}

	score := scorer.ScoreAgency(incident, agency)
	assert.Equal(t, 1.0, score.JurisdictionScore)
}
