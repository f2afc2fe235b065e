package customer

import (
	"github.com/m04kA/SMC-StoreAdmin/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

type rowScanner interface {
	Scan(dest ...interface{}) error
}
