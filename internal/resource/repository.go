package resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, res *Resource) error
	GetByID(ctx context.Context, id string) (*Resource, error)
	List(ctx context.Context, filter Filter) ([]*Resource, int, error)
	Update(ctx context.Context, res *Resource) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const resourceColumns = `
	id, name, description, kind, price,
	slot_duration_minutes, buffer_time_minutes,
	opening_time, closing_time, available_days, timezone,
	created_at, updated_at
`

func scanResource(row pgx.Row, res *Resource) error {
	return row.Scan(
		&res.ID, &res.Name, &res.Description, &res.Kind, &res.Price,
		&res.SlotDurationMinutes, &res.BufferTimeMinutes,
		&res.OpeningTime, &res.ClosingTime, &res.AvailableDays, &res.Timezone,
		&res.CreatedAt, &res.UpdatedAt,
	)
}

func (r *pgxRepository) Create(ctx context.Context, res *Resource) error {
	const query = `
		INSERT INTO public.resources (
			name, description, kind, price,
			slot_duration_minutes, buffer_time_minutes,
			opening_time, closing_time, available_days, timezone
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		res.Name, res.Description, res.Kind, res.Price,
		res.SlotDurationMinutes, res.BufferTimeMinutes,
		res.OpeningTime, res.ClosingTime, res.AvailableDays, res.Timezone,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create resource failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM public.resources WHERE id = $1`
	row := r.pool.QueryRow(ctx, query, id)

	var res Resource
	if err := scanResource(row, &res); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get resource failed: %w", err)
	}
	return &res, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Resource, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "name", "description", "kind", "price",
		"slot_duration_minutes", "buffer_time_minutes",
		"opening_time", "closing_time", "available_days", "timezone",
		"created_at", "updated_at",
		"count(*) OVER() as total_count",
	).From("public.resources")

	if filter.Kind != "" {
		query = query.Where(squirrel.Eq{"kind": filter.Kind})
	}
	if filter.Name != "" {
		query = query.Where(squirrel.ILike{"name": "%" + filter.Name + "%"})
	}

	// Sorting
	orderBy := "created_at"
	if filter.SortBy != "" {
		orderBy = filter.SortBy
	}

	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}

	query = query.OrderBy(orderBy + " " + orderDir)

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list resources query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list resources failed: %w", err)
	}
	defer rows.Close()

	var result []*Resource
	var total int

	for rows.Next() {
		var res Resource
		if err := rows.Scan(
			&res.ID, &res.Name, &res.Description, &res.Kind, &res.Price,
			&res.SlotDurationMinutes, &res.BufferTimeMinutes,
			&res.OpeningTime, &res.ClosingTime, &res.AvailableDays, &res.Timezone,
			&res.CreatedAt, &res.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan resource failed: %w", err)
		}
		result = append(result, &res)
	}

	return result, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, res *Resource) error {
	const query = `
		UPDATE public.resources
		SET name = $1, description = $2, kind = $3, price = $4,
			slot_duration_minutes = $5, buffer_time_minutes = $6,
			opening_time = $7, closing_time = $8, available_days = $9, timezone = $10,
			updated_at = now()
		WHERE id = $11
	`
	ct, err := r.pool.Exec(ctx, query,
		res.Name, res.Description, res.Kind, res.Price,
		res.SlotDurationMinutes, res.BufferTimeMinutes,
		res.OpeningTime, res.ClosingTime, res.AvailableDays, res.Timezone,
		res.ID,
	)
	if err != nil {
		return fmt.Errorf("update resource failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.resources WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete resource failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
