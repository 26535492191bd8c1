package sport

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/psqlbuilder"
)

const tableName = "sports"

var columns = []string{
	"id",
	"name",
	"base_price",
	"weekend_price",
	"open_minute",
	"close_minute",
	"slot_duration_minutes",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий площадок
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую площадку
func (r *Repository) Create(ctx context.Context, sport *domain.Sport) (*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"name",
			"base_price",
			"weekend_price",
			"open_minute",
			"close_minute",
			"slot_duration_minutes",
			"is_active",
		).
		Values(
			sport.Name,
			sport.BasePrice,
			sport.WeekendPrice,
			sport.OpenTime,
			sport.CloseTime,
			sport.SlotDurationMinutes,
			sport.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sport.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	sport.CreatedAt = createdAt.Time
	sport.UpdatedAt = updatedAt.Time

	return sport, nil
}

// GetByID получает площадку по ID (в том числе неактивную)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	sport, err := scanSport(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan sport: %v", ErrScanRow, err)
	}

	return sport, nil
}

// List получает список площадок, упорядоченный по имени
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("name ASC", "id ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sports := make([]*domain.Sport, 0)
	for rows.Next() {
		sport, err := scanSport(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		sports = append(sports, sport)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return sports, nil
}

// Update обновляет площадку целиком
func (r *Repository) Update(ctx context.Context, sport *domain.Sport) (*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("name", sport.Name).
		Set("base_price", sport.BasePrice).
		Set("weekend_price", sport.WeekendPrice).
		Set("open_minute", sport.OpenTime).
		Set("close_minute", sport.CloseTime).
		Set("slot_duration_minutes", sport.SlotDurationMinutes).
		Set("is_active", sport.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": sport.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	sport.UpdatedAt = updatedAt.Time

	return sport, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSport(row rowScanner) (*domain.Sport, error) {
	var sport domain.Sport
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&sport.ID,
		&sport.Name,
		&sport.BasePrice,
		&sport.WeekendPrice,
		&sport.OpenTime,
		&sport.CloseTime,
		&sport.SlotDurationMinutes,
		&sport.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	sport.CreatedAt = createdAt.Time
	sport.UpdatedAt = updatedAt.Time

	return &sport, nil
}
