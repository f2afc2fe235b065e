package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	"github.com/m04kA/SMC-StoreAdmin/pkg/dbmetrics"
	"github.com/m04kA/SMC-StoreAdmin/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"store_id",
	"name",
	"email",
	"function",
	"phone",
	"cpf",
	"commission_type",
	"commission_value",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с сотрудниками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает сотрудника
func (r *Repository) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("employees").
		Columns(
			"id",
			"store_id",
			"name",
			"email",
			"function",
			"phone",
			"cpf",
			"commission_type",
			"commission_value",
		).
		Values(
			employee.ID,
			employee.StoreID,
			employee.Name,
			employee.Email,
			employee.Function,
			employee.Phone,
			employee.CPF,
			employee.CommissionType,
			employee.CommissionValue,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return employee, nil
}

// GetByID получает сотрудника магазина по ID
func (r *Repository) GetByID(ctx context.Context, storeID, id uuid.UUID) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("employees").
		Where(squirrel.Eq{"id": id, "store_id": storeID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	employee, err := scanEmployee(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan employee: %v", ErrScanRow, err)
	}

	return employee, nil
}

// ListByStore получает сотрудников магазина по имени
func (r *Repository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("employees").
		Where(squirrel.Eq{"store_id": storeID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStore - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStore - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByStore - scan employee: %v", ErrScanRow, err)
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByStore - iterate rows: %v", ErrScanRow, err)
	}

	return employees, nil
}

// Update обновляет данные сотрудника
func (r *Repository) Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("employees").
		Set("name", employee.Name).
		Set("email", employee.Email).
		Set("function", employee.Function).
		Set("phone", employee.Phone).
		Set("cpf", employee.CPF).
		Set("commission_type", employee.CommissionType).
		Set("commission_value", employee.CommissionValue).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": employee.ID, "store_id": employee.StoreID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&employee.CreatedAt, &employee.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return employee, nil
}

// Delete удаляет сотрудника
func (r *Repository) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("employees").
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
		return ErrEmployeeNotFound
	}

	return nil
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	var employee domain.Employee
	err := row.Scan(
		&employee.ID,
		&employee.StoreID,
		&employee.Name,
		&employee.Email,
		&employee.Function,
		&employee.Phone,
		&employee.CPF,
		&employee.CommissionType,
		&employee.CommissionValue,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}
