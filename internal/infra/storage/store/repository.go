package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	"github.com/m04kA/SMC-StoreAdmin/pkg/dbmetrics"
	"github.com/m04kA/SMC-StoreAdmin/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var columns = []string{
	"id",
	"owner_id",
	"name",
	"slug",
	"phone",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с магазинами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория магазинов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает магазин
// При занятом slug возвращает ErrSlugTaken
func (r *Repository) Create(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("stores").
		Columns("id", "owner_id", "name", "slug", "phone").
		Values(store.ID, store.OwnerID, store.Name, store.Slug, store.Phone).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&store.CreatedAt, &store.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return store, nil
}

// GetByID получает магазин по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("stores").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	store, err := scanStore(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStoreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan store: %v", ErrScanRow, err)
	}

	return store, nil
}

// ListByOwner получает магазины владельца
func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Store, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("stores").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByOwner - scan store: %v", ErrScanRow, err)
		}
		stores = append(stores, store)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - iterate rows: %v", ErrScanRow, err)
	}

	return stores, nil
}

// Update обновляет название, slug и телефон магазина
// При занятом slug возвращает ErrSlugTaken
func (r *Repository) Update(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("stores").
		Set("name", store.Name).
		Set("slug", store.Slug).
		Set("phone", store.Phone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": store.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&store.CreatedAt, &store.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStoreNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return store, nil
}

// ExistsBySlug проверяет, занят ли slug
func (r *Repository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From("stores").
		Where(squirrel.Eq{"slug": slug}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsBySlug - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsBySlug - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}

func scanStore(row rowScanner) (*domain.Store, error) {
	var store domain.Store
	err := row.Scan(
		&store.ID,
		&store.OwnerID,
		&store.Name,
		&store.Slug,
		&store.Phone,
		&store.CreatedAt,
		&store.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &store, nil
}
