package models

import "github.com/google/uuid"

// CandidateScore - рекомендательная оценка кандидата на назначение.
// Никогда не сохраняется, пересчитывается на каждый запрос рекомендаций.
// UnitID == nil означает кандидата уровня агентства без доступных юнитов.
type CandidateScore struct {
	AgencyID          uuid.UUID  `json:"agency_id"`
	UnitID            *uuid.UUID `json:"unit_id,omitempty"`
	DistanceKm        *float64   `json:"distance_km,omitempty"`
	JurisdictionScore float64    `json:"jurisdiction_score"`
	SeverityScore     float64    `json:"severity_score"`
	ProximityScore    float64    `json:"proximity_score"`
	TotalScore        float64    `json:"total_score"`
}
