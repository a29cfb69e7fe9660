package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/georise/incident_dispatch_system/internal/models"
	"github.com/georise/incident_dispatch_system/internal/service"
)

const incidentColumns = `
	id,
	title,
	description,
	category,
	severity_score,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	status,
	assigned_agency_id,
	assigned_unit_id,
	acknowledged_at,
	resolved_at,
	created_at,
	updated_at`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.Title,
		&incident.Description,
		&incident.Category,
		&incident.SeverityScore,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Status,
		&incident.AssignedAgencyID,
		&incident.AssignedUnitID,
		&incident.AcknowledgedAt,
		&incident.ResolvedAt,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

// Create создает запись об инциденте вместе со стартовой записью REPORT
// в хронологии. Одна транзакция: инцидент не существует без следа о том,
// кто его подал
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident, actor string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin incident create transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO incidents (title, description, category, severity_score, location, status)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7)
		RETURNING id, created_at, updated_at;
	`
	err = tx.QueryRow(ctx, query,
		incident.Title,
		incident.Description,
		incident.Category,
		incident.SeverityScore,
		incident.Longitude,
		incident.Latitude,
		incident.Status,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}

	timelineQuery := `
		INSERT INTO incident_timeline (incident_id, type, message, actor)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := tx.Exec(ctx, timelineQuery, incident.ID, models.TimelineTypeReport,
		fmt.Sprintf("incident reported: %s", incident.Title), actor); err != nil {
		return fmt.Errorf("failed to append report timeline entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit incident create transaction: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident %s: %w", id, service.ErrIncidentNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// ListIncidents возвращает список инцидентов с пагинацией и необязательным
// фильтром по статусу
func (r *IncidentRepository) ListIncidents(ctx context.Context, status string, page, pageSize int) ([]*models.Incident, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// ListTimeline возвращает хронологию инцидента от старых записей к новым
func (r *IncidentRepository) ListTimeline(ctx context.Context, incidentID uuid.UUID) ([]*models.TimelineEntry, error) {
	query := `
		SELECT id, incident_id, type, message, actor, created_at
		FROM incident_timeline
		WHERE incident_id = $1
		ORDER BY created_at ASC, id ASC;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident timeline: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.TimelineEntry, 0)
	for rows.Next() {
		entry := &models.TimelineEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.IncidentID,
			&entry.Type,
			&entry.Message,
			&entry.Actor,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timeline row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error timeline iteration: %w", err)
	}
	return entries, nil
}

// CountOpen возвращает количество инцидентов в неконечных статусах
func (r *IncidentRepository) CountOpen(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM incidents
		WHERE status NOT IN ('RESOLVED', 'CANCELLED');
	`
	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count open incidents: %w", err)
	}
	return count, nil
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID.String())
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	// Срок жизни кеша небольшой: статус инцидента меняется координатором
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кеша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("incident:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
