package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	"github.com/m04kA/SMC-StoreAdmin/pkg/dbmetrics"
	"github.com/m04kA/SMC-StoreAdmin/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"store_id",
	"customer_id",
	"employee_id",
	"scheduled_date",
	"scheduled_time",
	"service_ids",
	"total",
	"duration",
	"completed",
	"completed_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись
// Вызывается внутри сериализуемой транзакции (транзакция берётся из контекста)
func (r *Repository) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedules").
		Columns(
			"id",
			"store_id",
			"customer_id",
			"employee_id",
			"scheduled_date",
			"scheduled_time",
			"service_ids",
			"total",
			"duration",
		).
		Values(
			schedule.ID,
			schedule.StoreID,
			schedule.CustomerID,
			schedule.EmployeeID,
			schedule.ScheduledDate.Format(domain.DateFormat),
			schedule.ScheduledTime,
			pq.Array(idStrings(schedule.ServiceIDs)),
			schedule.Total,
			schedule.Duration,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&schedule.CreatedAt, &schedule.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return schedule, nil
}

// Update обновляет запись (клиент, сотрудник, дата, время, услуги и итоги)
func (r *Repository) Update(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedules").
		Set("customer_id", schedule.CustomerID).
		Set("employee_id", schedule.EmployeeID).
		Set("scheduled_date", schedule.ScheduledDate.Format(domain.DateFormat)).
		Set("scheduled_time", schedule.ScheduledTime).
		Set("service_ids", pq.Array(idStrings(schedule.ServiceIDs))).
		Set("total", schedule.Total).
		Set("duration", schedule.Duration).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": schedule.ID, "store_id": schedule.StoreID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&schedule.CreatedAt, &schedule.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return schedule, nil
}

// GetByID получает запись магазина по ID
func (r *Repository) GetByID(ctx context.Context, storeID, id uuid.UUID) (*domain.Schedule, error) {
	return r.getByID(ctx, storeID, id, false)
}

// GetByIDForUpdate получает запись с блокировкой строки (FOR UPDATE)
// Имеет смысл только внутри транзакции
func (r *Repository) GetByIDForUpdate(ctx context.Context, storeID, id uuid.UUID) (*domain.Schedule, error) {
	return r.getByID(ctx, storeID, id, true)
}

func (r *Repository) getByID(ctx context.Context, storeID, id uuid.UUID, forUpdate bool) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From("schedules").
		Where(squirrel.Eq{"id": id, "store_id": storeID})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	schedule, err := scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// ListByStore получает записи магазина
// С фильтром по дате записи сортируются по времени, без него - новые даты первыми
func (r *Repository) ListByStore(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From("schedules").
		Where(squirrel.Eq{"store_id": filter.StoreID})

	if filter.Date != nil {
		builder = builder.
			Where(squirrel.Eq{"scheduled_date": filter.Date.Format(domain.DateFormat)}).
			OrderBy("scheduled_time ASC")
	} else {
		builder = builder.OrderBy("scheduled_date DESC", "scheduled_time ASC")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStore - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStore - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.Schedule, 0)
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByStore - scan schedule: %v", ErrScanRow, err)
		}
		schedules = append(schedules, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByStore - iterate rows: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// MarkCompleted отмечает запись выполненной
func (r *Repository) MarkCompleted(ctx context.Context, storeID, id uuid.UUID, completedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedules").
		Set("completed", true).
		Set("completed_at", completedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "store_id": storeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkCompleted - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkCompleted - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkCompleted - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// Delete удаляет запись
func (r *Repository) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedules").
		Where(squirrel.Eq{"id": id, "store_id": storeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

func scanSchedule(row rowScanner) (*domain.Schedule, error) {
	var (
		schedule    domain.Schedule
		serviceIDs  pq.StringArray
		completedAt sql.NullTime
	)

	err := row.Scan(
		&schedule.ID,
		&schedule.StoreID,
		&schedule.CustomerID,
		&schedule.EmployeeID,
		&schedule.ScheduledDate,
		&schedule.ScheduledTime,
		&serviceIDs,
		&schedule.Total,
		&schedule.Duration,
		&schedule.Completed,
		&completedAt,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	schedule.ServiceIDs = make([]uuid.UUID, 0, len(serviceIDs))
	for _, raw := range serviceIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid service id %q: %w", raw, err)
		}
		schedule.ServiceIDs = append(schedule.ServiceIDs, id)
	}

	if completedAt.Valid {
		schedule.CompletedAt = &completedAt.Time
	}

	return &schedule, nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
