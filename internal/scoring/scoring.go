package scoring

import (
	"math"
	"strings"

	"github.com/georise/incident_dispatch_system/internal/models"
)

// neutralProximity используется, когда позиция юнита неизвестна: юнит со
// сбоящим GPS не должен получать ноль и выпадать из выдачи
const neutralProximity = 0.5

// severityScale - шкала серьезности инцидента (0..5)
const severityScale = 5.0

// Weights - набор весов и констант оценивания. Значения приходят из
// конфигурации; структура не обращается ни к окружению, ни к часам.
type Weights struct {
	Jurisdiction   float64
	Proximity      float64
	Severity       float64
	ProximityCapKm float64
	MutualAidScore float64

	// CategoryCompatibility - категория инцидента -> допустимые типы агентств.
	// Отсутствие категории в таблице трактуется как совместимость со всеми.
	CategoryCompatibility map[string][]string
}

// Scorer вычисляет оценку пригодности пары инцидент-кандидат.
// Детерминирован: одинаковые входы всегда дают одинаковую оценку.
type Scorer struct {
	weights Weights
}

// NewScorer создает Scorer с заданными весами
func NewScorer(weights Weights) *Scorer {
	if weights.ProximityCapKm <= 0 {
		weights.ProximityCapKm = 15
	}
	return &Scorer{weights: weights}
}

// ScoreUnit оценивает конкретный юнит агентства для инцидента.
// distanceKm == nil означает неизвестную позицию юнита.
func (s *Scorer) ScoreUnit(incident *models.Incident, unit *models.ResponderUnit, agency *models.Agency, distanceKm *float64) models.CandidateScore {
	jurisdiction := s.jurisdictionScore(incident, agency)
	severity := normalizeSeverity(incident.SeverityScore)

	proximity := neutralProximity
	if distanceKm != nil {
		proximity = 1 - clamp01(*distanceKm/s.weights.ProximityCapKm)
	}

	unitID := unit.ID
	return models.CandidateScore{
		AgencyID:          agency.ID,
		UnitID:            &unitID,
		DistanceKm:        distanceKm,
		JurisdictionScore: jurisdiction,
		SeverityScore:     severity,
		ProximityScore:    proximity,
		TotalScore:        s.total(jurisdiction, proximity, severity, incident.Category, agency.Type),
	}
}

// ScoreAgency оценивает агентство без доступных юнитов. Такие кандидаты
// нужны диспетчеру для ручного вызова агентства; близость не участвует.
func (s *Scorer) ScoreAgency(incident *models.Incident, agency *models.Agency) models.CandidateScore {
	jurisdiction := s.jurisdictionScore(incident, agency)
	severity := normalizeSeverity(incident.SeverityScore)

	return models.CandidateScore{
		AgencyID:          agency.ID,
		JurisdictionScore: jurisdiction,
		SeverityScore:     severity,
		ProximityScore:    0,
		TotalScore:        s.total(jurisdiction, 0, severity, incident.Category, agency.Type),
	}
}

func (s *Scorer) total(jurisdiction, proximity, severity float64, category string, agencyType models.AgencyType) float64 {
	if jurisdiction == 0 {
		// Категорически несовместимое агентство не ранжируем
		return 0
	}
	total := jurisdiction*s.weights.Jurisdiction +
		proximity*s.weights.Proximity +
		severity*s.weights.Severity +
		categoryBonus(category, agencyType)
	return total
}

// jurisdictionScore: 1.0 внутри юрисдикции или для уже назначенного агентства,
// MutualAidScore для взаимопомощи через границу, 0 при несовместимой категории
func (s *Scorer) jurisdictionScore(incident *models.Incident, agency *models.Agency) float64 {
	if !s.categoryCompatible(incident.Category, agency.Type) {
		return 0
	}
	if agency.InJurisdiction {
		return 1.0
	}
	if incident.AssignedAgencyID != nil && *incident.AssignedAgencyID == agency.ID {
		return 1.0
	}
	return s.weights.MutualAidScore
}

func (s *Scorer) categoryCompatible(category string, agencyType models.AgencyType) bool {
	if category == "" {
		return true
	}
	allowed, ok := s.weights.CategoryCompatibility[strings.ToUpper(category)]
	if !ok || len(allowed) == 0 {
		return true
	}
	for _, t := range allowed {
		if strings.EqualFold(t, string(agencyType)) {
			return true
		}
	}
	return false
}

// categoryBonus - бонус профильному агентству по ключевым словам категории
func categoryBonus(category string, agencyType models.AgencyType) float64 {
	if category == "" {
		return 0
	}
	cat := strings.ToLower(category)
	switch agencyType {
	case models.AgencyTypeFire:
		if strings.Contains(cat, "fire") || strings.Contains(cat, "smoke") {
			return 0.2
		}
	case models.AgencyTypeMedical:
		if strings.Contains(cat, "medical") || strings.Contains(cat, "injury") || strings.Contains(cat, "ambulance") {
			return 0.2
		}
	case models.AgencyTypePolice:
		if strings.Contains(cat, "crime") || strings.Contains(cat, "assault") || strings.Contains(cat, "robbery") {
			return 0.15
		}
	case models.AgencyTypeTraffic:
		if strings.Contains(cat, "traffic") || strings.Contains(cat, "accident") || strings.Contains(cat, "crash") {
			return 0.15
		}
	}
	return 0
}

func normalizeSeverity(severity int) float64 {
	return clamp01(float64(severity) / severityScale)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
