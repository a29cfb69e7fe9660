package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/georise/incident_dispatch_system/internal/models"
	"github.com/georise/incident_dispatch_system/internal/service"
)

const unitColumns = `
	id,
	agency_id,
	name,
	status,
	ST_Y(position::geometry) as latitude,
	ST_X(position::geometry) as longitude,
	last_seen_at,
	created_at,
	updated_at`

type ResponderRepository struct {
	db *pgxpool.Pool
}

func NewResponderRepository(db *pgxpool.Pool) service.ResponderRepository {
	return &ResponderRepository{db: db}
}

func scanUnit(row pgx.Row) (*models.ResponderUnit, error) {
	unit := &models.ResponderUnit{}
	err := row.Scan(
		&unit.ID,
		&unit.AgencyID,
		&unit.Name,
		&unit.Status,
		&unit.Latitude,
		&unit.Longitude,
		&unit.LastSeenAt,
		&unit.CreatedAt,
		&unit.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return unit, nil
}

// Create создает новый юнит в бд
func (r *ResponderRepository) Create(ctx context.Context, unit *models.ResponderUnit) error {
	query := `
		INSERT INTO responder_units (agency_id, name, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		unit.AgencyID,
		unit.Name,
		unit.Status,
	).Scan(&unit.ID, &unit.CreatedAt, &unit.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create responder unit: %w", err)
	}
	return nil
}

// GetByID возвращает юнит по его UUID
func (r *ResponderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ResponderUnit, error) {
	query := `SELECT ` + unitColumns + ` FROM responder_units WHERE id = $1;`
	unit, err := scanUnit(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("unit %s: %w", id, service.ErrUnitNotFound)
		}
		return nil, fmt.Errorf("failed to get unit by id: %w", err)
	}
	return unit, nil
}

// ListUnits возвращает юниты, опционально по агентству
func (r *ResponderRepository) ListUnits(ctx context.Context, agencyID *uuid.UUID) ([]*models.ResponderUnit, error) {
	query := `
		SELECT ` + unitColumns + `
		FROM responder_units
		WHERE ($1::uuid IS NULL OR agency_id = $1)
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list responder units: %w", err)
	}
	defer rows.Close()

	units := make([]*models.ResponderUnit, 0)
	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan unit row: %w", err)
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error unit list iteration: %w", err)
	}
	return units, nil
}

// UpdateLocation обновляет позицию юнита и отметку last_seen_at
func (r *ResponderRepository) UpdateLocation(ctx context.Context, id uuid.UUID, lat, lon float64) (*models.ResponderUnit, error) {
	query := `
		UPDATE responder_units SET
			position = ST_SetSRID(ST_MakePoint($1, $2), 4326),
			last_seen_at = NOW(),
			updated_at = NOW()
		WHERE id = $3
		RETURNING ` + unitColumns + `;
	`
	unit, err := scanUnit(r.db.QueryRow(ctx, query, lon, lat, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("unit %s: %w", id, service.ErrUnitNotFound)
		}
		return nil, fmt.Errorf("failed to update unit location: %w", err)
	}
	return unit, nil
}

// SetStatus устанавливает статус юнита без участия координатора.
// Обновление условное: занятый координатором юнит не затрагивается,
// гонка с назначением разрешается на стороне бд, а не проверкой до записи.
func (r *ResponderRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.UnitStatus) (*models.ResponderUnit, error) {
	query := `
		UPDATE responder_units SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2 AND status <> 'ASSIGNED'
		RETURNING ` + unitColumns + `;
	`
	unit, err := scanUnit(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Либо юнита нет, либо его успел занять координатор
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, fmt.Errorf("unit %s is assigned: %w", id, service.ErrInvalidState)
		}
		return nil, fmt.Errorf("failed to set unit status: %w", err)
	}
	return unit, nil
}

// CountAvailable возвращает количество свободных юнитов
func (r *ResponderRepository) CountAvailable(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM responder_units WHERE status = 'AVAILABLE';`
	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count available units: %w", err)
	}
	return count, nil
}

// ListEligibleUnits возвращает юниты-кандидаты для инцидента: свободные,
// плюс юнит, уже назначенный на этот инцидент (для переранжирования).
// Дистанция считается PostGIS-ом, позиция может отсутствовать.
// Консультативный снимок: запрос не берет блокировок.
func (r *ResponderRepository) ListEligibleUnits(ctx context.Context, incident *models.Incident) ([]*service.EligibleUnit, error) {
	query := `
		SELECT ` + unitColumns + `,
			CASE
				WHEN position IS NOT NULL THEN
					ST_DistanceSphere(
						position::geometry,
						ST_SetSRID(ST_MakePoint($1, $2), 4326)
					) / 1000
				ELSE NULL
			END AS distance_km
		FROM responder_units
		WHERE status = 'AVAILABLE'
			OR ($3::uuid IS NOT NULL AND id = $3)
		ORDER BY id ASC;
	`
	rows, err := r.db.Query(ctx, query, incident.Longitude, incident.Latitude, incident.AssignedUnitID)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible units: %w", err)
	}
	defer rows.Close()

	units := make([]*service.EligibleUnit, 0)
	for rows.Next() {
		unit := &models.ResponderUnit{}
		var distanceKm *float64
		err := rows.Scan(
			&unit.ID,
			&unit.AgencyID,
			&unit.Name,
			&unit.Status,
			&unit.Latitude,
			&unit.Longitude,
			&unit.LastSeenAt,
			&unit.CreatedAt,
			&unit.UpdatedAt,
			&distanceKm,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan eligible unit row: %w", err)
		}
		units = append(units, &service.EligibleUnit{Unit: unit, DistanceKm: distanceKm})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error eligible unit iteration: %w", err)
	}
	return units, nil
}

// ListActiveAgencies возвращает активные агентства с признаком попадания
// точки инцидента в полигон юрисдикции
func (r *ResponderRepository) ListActiveAgencies(ctx context.Context, incident *models.Incident) ([]*models.Agency, error) {
	query := `
		SELECT
			id,
			name,
			type,
			is_active,
			created_at,
			CASE
				WHEN jurisdiction IS NOT NULL THEN
					ST_Contains(jurisdiction, ST_SetSRID(ST_MakePoint($1, $2), 4326))
				ELSE FALSE
			END AS in_jurisdiction
		FROM agencies
		WHERE is_active = TRUE
		ORDER BY id ASC;
	`
	rows, err := r.db.Query(ctx, query, incident.Longitude, incident.Latitude)
	if err != nil {
		return nil, fmt.Errorf("failed to list active agencies: %w", err)
	}
	defer rows.Close()

	agencies := make([]*models.Agency, 0)
	for rows.Next() {
		agency := &models.Agency{}
		err := rows.Scan(
			&agency.ID,
			&agency.Name,
			&agency.Type,
			&agency.IsActive,
			&agency.CreatedAt,
			&agency.InJurisdiction,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agency row: %w", err)
		}
		agencies = append(agencies, agency)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error agency iteration: %w", err)
	}
	return agencies, nil
}
