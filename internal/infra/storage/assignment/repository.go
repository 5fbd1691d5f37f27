package assignment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// pqUniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const pqUniqueViolation = "23505"

// Repository репозиторий для работы с закреплениями мастеров за местами
//
// Схема таблицы master_assignments:
//   - уникальный ключ (salon_id, place_id, assignment_date) - место держит
//     не больше одного мастера на дату, upsert перезаписывает мастера
//   - уникальный ключ (salon_id, master_id, assignment_date) - мастер
//     закреплен не больше чем за одним местом на дату (инвариант
//     эксклюзивности, защита на уровне схемы)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория закреплений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает закрепление или перезаписывает мастера существующего
// Перезапись - прямой переход Assigned(A) -> Assigned(B), без промежуточного
// снятия закрепления
//
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Upsert(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("master_assignments").
		Columns(
			"salon_id",
			"place_id",
			"master_id",
			"assignment_date",
		).
		Values(
			a.SalonID,
			a.PlaceID,
			a.MasterID,
			a.Date,
		).
		Suffix("ON CONFLICT (salon_id, place_id, assignment_date) DO UPDATE SET master_id = EXCLUDED.master_id, updated_at = NOW()").
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrExclusivityViolation
		}
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByDate получает все закрепления салона на дату
// Внутри транзакции добавляет FOR UPDATE: команда assign читает строки
// даты с блокировкой, чтобы проверка эксклюзивности и запись были атомарны
func (r *Repository) GetByDate(ctx context.Context, salonID int64, date time.Time) ([]*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"salon_id",
		"place_id",
		"master_id",
		"assignment_date",
		"created_at",
		"updated_at",
	).
		From("master_assignments").
		Where(squirrel.Eq{"salon_id": salonID}).
		Where(squirrel.Eq{"assignment_date": date}).
		OrderBy("place_id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAssignments(rows)
}

// GetByPlaceAndDate получает закрепление места на дату
func (r *Repository) GetByPlaceAndDate(ctx context.Context, salonID, placeID int64, date time.Time) (*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"place_id",
		"master_id",
		"assignment_date",
		"created_at",
		"updated_at",
	).
		From("master_assignments").
		Where(squirrel.Eq{"salon_id": salonID}).
		Where(squirrel.Eq{"place_id": placeID}).
		Where(squirrel.Eq{"assignment_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPlaceAndDate - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Assignment
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&a.SalonID,
		&a.PlaceID,
		&a.MasterID,
		&a.Date,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAssignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPlaceAndDate - scan assignment: %v", ErrScanRow, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

// Delete снимает закрепление места на дату
// Отсутствие закрепления не является ошибкой: unassign пустой ячейки - no-op
func (r *Repository) Delete(ctx context.Context, salonID, placeID int64, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("master_assignments").
		Where(squirrel.Eq{"salon_id": salonID}).
		Where(squirrel.Eq{"place_id": placeID}).
		Where(squirrel.Eq{"assignment_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// scanAssignments сканирует результаты запроса в слайс закреплений
func (r *Repository) scanAssignments(rows *sql.Rows) ([]*domain.Assignment, error) {
	assignments := make([]*domain.Assignment, 0)

	for rows.Next() {
		var a domain.Assignment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&a.ID,
			&a.SalonID,
			&a.PlaceID,
			&a.MasterID,
			&a.Date,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAssignments - scan row: %v", ErrScanRow, err)
		}

		a.CreatedAt = createdAt.Time
		a.UpdatedAt = updatedAt.Time

		assignments = append(assignments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAssignments - rows error: %v", ErrScanRow, err)
	}

	return assignments, nil
}
