package customer

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
	"phone",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с клиентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает клиента
func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("id", "store_id", "name", "email", "phone").
		Values(customer.ID, customer.StoreID, customer.Name, customer.Email, customer.Phone).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return customer, nil
}

// GetByID получает клиента магазина по ID
func (r *Repository) GetByID(ctx context.Context, storeID, id uuid.UUID) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("customers").
		Where(squirrel.Eq{"id": id, "store_id": storeID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	customer, err := scanCustomer(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan customer: %v", ErrScanRow, err)
	}

	return customer, nil
}

// ListByStore получает клиентов магазина, новые первыми
func (r *Repository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("customers").
		Where(squirrel.Eq{"store_id": storeID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStore - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStore - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByStore - scan customer: %v", ErrScanRow, err)
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByStore - iterate rows: %v", ErrScanRow, err)
	}

	return customers, nil
}

// Update обновляет данные клиента
func (r *Repository) Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("name", customer.Name).
		Set("email", customer.Email).
		Set("phone", customer.Phone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customer.ID, "store_id": customer.StoreID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&customer.CreatedAt, &customer.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return customer, nil
}

// Delete удаляет клиента
func (r *Repository) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("customers").
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
		return ErrCustomerNotFound
	}

	return nil
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var customer domain.Customer
	err := row.Scan(
		&customer.ID,
		&customer.StoreID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
