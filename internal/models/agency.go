package models

import (
	"time"

	"github.com/google/uuid"
)

// AgencyType - профиль агентства, влияет на совместимость с категориями инцидентов
type AgencyType string

const (
	AgencyTypeFire    AgencyType = "FIRE"
	AgencyTypeMedical AgencyType = "MEDICAL"
	AgencyTypePolice  AgencyType = "POLICE"
	AgencyTypeTraffic AgencyType = "TRAFFIC"
	AgencyTypeGeneral AgencyType = "GENERAL"
)

type Agency struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Type      AgencyType `json:"type"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`

	// InJurisdiction - вычисляется запросом относительно конкретного инцидента
	// (ST_Contains по полигону юрисдикции), не хранится
	InJurisdiction bool `json:"-"`
}
