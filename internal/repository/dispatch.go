package repository

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/georise/incident_dispatch_system/internal/models"
	"github.com/georise/incident_dispatch_system/internal/service"
)

// Пространства ключей advisory-блокировок, чтобы блокировки юнитов и
// инцидентов не пересекались
const (
	lockSpaceUnit     = int32(1)
	lockSpaceIncident = int32(2)
)

// DispatchStore - транзакционное хранилище координатора назначений.
// Критическая секция реализована advisory xact блокировкой по id плюс
// SELECT ... FOR UPDATE; lock_timeout ограничивает ожидание.
type DispatchStore struct {
	db          *pgxpool.Pool
	lockTimeout time.Duration
}

func NewDispatchStore(db *pgxpool.Pool, lockTimeout time.Duration) service.DispatchStore {
	return &DispatchStore{
		db:          db,
		lockTimeout: lockTimeout,
	}
}

// lockKey сводит UUID к 32-битному ключу advisory-блокировки
func lockKey(id uuid.UUID) int32 {
	h := fnv.New32a()
	h.Write(id[:])
	return int32(h.Sum32())
}

// translateLockError транслирует ошибки блокировок в доменную временную
// ошибку: lock_timeout, deadlock и serialization failure повторяемы
func translateLockError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.LockNotAvailable, pgerrcode.DeadlockDetected, pgerrcode.SerializationFailure:
			return fmt.Errorf("%v: %w", err, service.ErrAssignContended)
		}
	}
	return err
}

func (s *DispatchStore) withLock(ctx context.Context, space int32, id uuid.UUID, fn func(tx service.AssignmentTx) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin dispatch transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// lock_timeout действует до конца транзакции и ограничивает ожидание
	// как advisory-блокировки, так и FOR UPDATE
	timeoutMs := s.lockTimeout.Milliseconds()
	if timeoutMs <= 0 {
		timeoutMs = 3000
	}
	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", timeoutMs)); err != nil {
		return fmt.Errorf("failed to set lock timeout: %w", err)
	}

	// Блокировка освобождается на коммите или откате
	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1, $2)", space, lockKey(id)); err != nil {
		return translateLockError(err)
	}

	if err := fn(&assignmentTx{tx: tx}); err != nil {
		return translateLockError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit dispatch transaction: %w", err)
	}
	return nil
}

// WithUnitLock выполняет fn под эксклюзивной блокировкой юнита
func (s *DispatchStore) WithUnitLock(ctx context.Context, unitID uuid.UUID, fn func(tx service.AssignmentTx) error) error {
	return s.withLock(ctx, lockSpaceUnit, unitID, fn)
}

// WithIncidentLock выполняет fn под эксклюзивной блокировкой инцидента
func (s *DispatchStore) WithIncidentLock(ctx context.Context, incidentID uuid.UUID, fn func(tx service.AssignmentTx) error) error {
	return s.withLock(ctx, lockSpaceIncident, incidentID, fn)
}

// assignmentTx - операции координатора внутри открытой транзакции
type assignmentTx struct {
	tx pgx.Tx
}

// GetUnitForUpdate перечитывает юнит под блокировкой строки
func (t *assignmentTx) GetUnitForUpdate(ctx context.Context, unitID uuid.UUID) (*models.ResponderUnit, error) {
	query := `SELECT ` + unitColumns + ` FROM responder_units WHERE id = $1 FOR UPDATE;`
	unit, err := scanUnit(t.tx.QueryRow(ctx, query, unitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("unit %s: %w", unitID, service.ErrUnitNotFound)
		}
		return nil, fmt.Errorf("failed to get unit for update: %w", err)
	}
	return unit, nil
}

// GetIncidentForUpdate перечитывает инцидент под блокировкой строки
func (t *assignmentTx) GetIncidentForUpdate(ctx context.Context, incidentID uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1 FOR UPDATE;`
	incident, err := scanIncident(t.tx.QueryRow(ctx, query, incidentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident %s: %w", incidentID, service.ErrIncidentNotFound)
		}
		return nil, fmt.Errorf("failed to get incident for update: %w", err)
	}
	return incident, nil
}

// SetUnitStatus меняет статус юнита внутри транзакции
func (t *assignmentTx) SetUnitStatus(ctx context.Context, unitID uuid.UUID, status models.UnitStatus) error {
	query := `
		UPDATE responder_units SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := t.tx.Exec(ctx, query, status, unitID)
	if err != nil {
		return fmt.Errorf("failed to set unit status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("unit %s: %w", unitID, service.ErrUnitNotFound)
	}
	return nil
}

// SetIncidentAssignment записывает ссылки назначения и статус ASSIGNED
func (t *assignmentTx) SetIncidentAssignment(ctx context.Context, incidentID, agencyID, unitID uuid.UUID) error {
	query := `
		UPDATE incidents SET
			assigned_agency_id = $1,
			assigned_unit_id = $2,
			status = 'ASSIGNED',
			updated_at = NOW()
		WHERE id = $3;
	`
	cmdTag, err := t.tx.Exec(ctx, query, agencyID, unitID, incidentID)
	if err != nil {
		return fmt.Errorf("failed to set incident assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident %s: %w", incidentID, service.ErrIncidentNotFound)
	}
	return nil
}

// SetIncidentStatus меняет статус инцидента внутри транзакции
func (t *assignmentTx) SetIncidentStatus(ctx context.Context, incidentID uuid.UUID, status models.IncidentStatus) error {
	query := `
		UPDATE incidents SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := t.tx.Exec(ctx, query, status, incidentID)
	if err != nil {
		return fmt.Errorf("failed to set incident status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident %s: %w", incidentID, service.ErrIncidentNotFound)
	}
	return nil
}

// SetAcknowledged выставляет acknowledged_at только если он еще пуст
func (t *assignmentTx) SetAcknowledged(ctx context.Context, incidentID uuid.UUID, at time.Time) error {
	query := `
		UPDATE incidents SET
			acknowledged_at = $1,
			updated_at = NOW()
		WHERE id = $2 AND acknowledged_at IS NULL;
	`
	if _, err := t.tx.Exec(ctx, query, at, incidentID); err != nil {
		return fmt.Errorf("failed to set acknowledged_at: %w", err)
	}
	return nil
}

// SetResolved выставляет терминальный статус и resolved_at
func (t *assignmentTx) SetResolved(ctx context.Context, incidentID uuid.UUID, at time.Time) error {
	query := `
		UPDATE incidents SET
			status = 'RESOLVED',
			resolved_at = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := t.tx.Exec(ctx, query, at, incidentID)
	if err != nil {
		return fmt.Errorf("failed to set incident resolved: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident %s: %w", incidentID, service.ErrIncidentNotFound)
	}
	return nil
}

// AppendTimeline добавляет запись аудита в той же транзакции, что и
// само изменение: сбой аудита откатывает назначение
func (t *assignmentTx) AppendTimeline(ctx context.Context, incidentID uuid.UUID, entryType models.TimelineType, message, actor string) error {
	query := `
		INSERT INTO incident_timeline (incident_id, type, message, actor)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := t.tx.Exec(ctx, query, incidentID, entryType, message, actor); err != nil {
		return fmt.Errorf("failed to append timeline entry: %w", err)
	}
	return nil
}
