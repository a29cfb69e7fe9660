package v1

import (
	"github.com/georise/incident_dispatch_system/internal/models"
	"github.com/georise/incident_dispatch_system/internal/service"
)

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Title:         dto.Title,
		Description:   dto.Description,
		Category:      dto.Category,
		SeverityScore: dto.SeverityScore,
		Latitude:      dto.Latitude,
		Longitude:     dto.Longitude,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:               model.ID,
		Title:            model.Title,
		Description:      model.Description,
		Category:         model.Category,
		SeverityScore:    model.SeverityScore,
		Latitude:         model.Latitude,
		Longitude:        model.Longitude,
		Status:           string(model.Status),
		AssignedAgencyID: model.AssignedAgencyID,
		AssignedUnitID:   model.AssignedUnitID,
		AcknowledgedAt:   model.AcknowledgedAt,
		ResolvedAt:       model.ResolvedAt,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToUnitResponse преобразует модель юнита в DTO для ответа
func ModelToUnitResponse(model *models.ResponderUnit) *UnitResponse {
	return &UnitResponse{
		ID:         model.ID,
		AgencyID:   model.AgencyID,
		Name:       model.Name,
		Status:     string(model.Status),
		Latitude:   model.Latitude,
		Longitude:  model.Longitude,
		LastSeenAt: model.LastSeenAt,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

// ModelsToUnitResponses преобразует слайс моделей юнитов в слайс DTO
func ModelsToUnitResponses(models []*models.ResponderUnit) []*UnitResponse {
	responses := make([]*UnitResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToUnitResponse(model)
	}
	return responses
}

// ModelToCandidateResponse преобразует оценку кандидата в DTO
func ModelToCandidateResponse(model models.CandidateScore) CandidateResponse {
	return CandidateResponse{
		AgencyID:          model.AgencyID,
		UnitID:            model.UnitID,
		DistanceKm:        model.DistanceKm,
		JurisdictionScore: model.JurisdictionScore,
		SeverityScore:     model.SeverityScore,
		ProximityScore:    model.ProximityScore,
		TotalScore:        model.TotalScore,
	}
}

// ModelsToCandidateResponses преобразует слайс оценок в слайс DTO
func ModelsToCandidateResponses(candidates []models.CandidateScore) []CandidateResponse {
	responses := make([]CandidateResponse, len(candidates))
	for i, c := range candidates {
		responses[i] = ModelToCandidateResponse(c)
	}
	return responses
}

// ResultToAssignmentResponse преобразует итог назначения в DTO
func ResultToAssignmentResponse(result *service.AssignmentResult) *AssignmentResponse {
	resp := &AssignmentResponse{
		Incident: ModelToIncidentResponse(result.Incident),
		Unit:     ModelToUnitResponse(result.Unit),
	}
	if result.Selected != nil {
		selected := ModelToCandidateResponse(*result.Selected)
		resp.Selected = &selected
	}
	return resp
}

// ModelsToTimelineResponses преобразует записи хронологии в слайс DTO
func ModelsToTimelineResponses(entries []*models.TimelineEntry) []*TimelineEntryResponse {
	responses := make([]*TimelineEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = &TimelineEntryResponse{
			ID:         e.ID,
			IncidentID: e.IncidentID,
			Type:       string(e.Type),
			Message:    e.Message,
			Actor:      e.Actor,
			CreatedAt:  e.CreatedAt,
		}
	}
	return responses
}
