package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed sql/*.sql
var files embed.FS

// ErrApply возвращается, если миграцию не удалось применить
var ErrApply = errors.New("migrations: failed to apply migration")

// Execer *sql.DB или *dbmetrics.DB
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Names возвращает имена миграций в порядке применения
func Names() ([]string, error) {
	entries, err := fs.ReadDir(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("%w: read embedded dir: %v", ErrApply, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Apply выполняет все миграции по порядку
// Миграции идемпотентны (IF NOT EXISTS), повторный запуск безопасен
func Apply(ctx context.Context, db Execer) error {
	names, err := Names()
	if err != nil {
		return err
	}

	for _, name := range names {
		body, err := files.ReadFile("sql/" + name)
		if err != nil {
			return fmt.Errorf("%w: read %s: %v", ErrApply, name, err)
		}
		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrApply, name, err)
		}
	}

	return nil
}
