package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения ленты записей
//
// Записи принадлежат подсистеме бронирования: сервис расписания только
// читает их для диапазона дат, никогда не пишет
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBySalonWithFilter получает записи салона с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - Филиалу (BranchID) - опционально
// - Месту (PlaceID) - опционально
// - Периоду (StartDate, EndDate) - опционально
//
// Примеры использования:
//
//  1. Записи на конкретную дату:
//     date := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
//     filter := domain.SalonBookingsFilter{SalonID: 1, StartDate: &date, EndDate: &date}
//
//  2. Записи недели по филиалу:
//     filter := domain.SalonBookingsFilter{SalonID: 1, BranchID: &branchID, StartDate: &monday, EndDate: &sunday}
func (r *Repository) GetBySalonWithFilter(ctx context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"salon_id",
		"branch_id",
		"place_id",
		"master_id",
		"booking_date",
		"start_time",
		"client_name",
		"service_name",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"salon_id": filter.SalonID})

	// Фильтрация по филиалу (если указан)
	if filter.BranchID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"branch_id": *filter.BranchID})
	}

	// Фильтрация по месту (если указано)
	if filter.PlaceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"place_id": *filter.PlaceID})
	}

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	selectBuilder = selectBuilder.OrderBy("booking_date ASC, start_time ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalonWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySalonWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// scanBookings сканирует результаты запроса в слайс записей
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.SalonID,
			&booking.BranchID,
			&booking.PlaceID,
			&booking.MasterID,
			&booking.Date,
			&booking.StartTime,
			&booking.ClientName,
			&booking.ServiceName,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
