package blockedslot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/psqlbuilder"
)

const tableName = "blocked_slots"

var columns = []string{
	"id",
	"sport_id",
	"blocked_date",
	"start_minute",
	"end_minute",
	"reason",
	"created_by",
	"created_at",
}

// Repository репозиторий заблокированных интервалов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает блокировку
func (r *Repository) Create(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("sport_id", "blocked_date", "start_minute", "end_minute", "reason", "created_by").
		Values(slot.SportID, domain.DateOnly(slot.Date), slot.StartTime, slot.EndTime, slot.Reason, slot.CreatedBy).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	slot.CreatedAt = createdAt.Time

	return slot, nil
}

// GetByID получает блокировку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanBlockedSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockedSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan blocked slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// GetBySportAndDate получает блокировки площадки на дату
func (r *Repository) GetBySportAndDate(ctx context.Context, sportID int64, date time.Time) ([]*domain.BlockedSlot, error) {
	return r.GetBySport(ctx, sportID, &date)
}

// GetBySport получает блокировки площадки, опционально только на дату
func (r *Repository) GetBySport(ctx context.Context, sportID int64, date *time.Time) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"sport_id": sportID}).
		OrderBy("blocked_date ASC", "start_minute ASC", "id ASC")

	if date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"blocked_date": domain.DateOnly(*date)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySport - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySport - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BlockedSlot, 0)
	for rows.Next() {
		slot, err := scanBlockedSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetBySport - scan row: %v", ErrScanRow, err)
		}
		result = append(result, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBySport - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Delete удаляет блокировку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedSlotNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBlockedSlot(row rowScanner) (*domain.BlockedSlot, error) {
	var slot domain.BlockedSlot
	var createdAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.SportID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Reason,
		&slot.CreatedBy,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	slot.Date = domain.DateOnly(slot.Date)
	slot.CreatedAt = createdAt.Time

	return &slot, nil
}
