package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-TimetableService/pkg/dbmetrics"
)

// maxRetries максимальное число повторов при serialization failure
const maxRetries = 3

// pqSerializationFailure код ошибки PostgreSQL для сбоя сериализации
const pqSerializationFailure = "40001"

// TransactionManager менеджер сериализуемых транзакций без сбора метрик
// Используется, когда метрики отключены в конфигурации
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn внутри транзакции с уровнем изоляции SERIALIZABLE
// Семантика идентична pkg/txmanager, но работает напрямую с *sql.DB
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if err != nil {
			return fmt.Errorf("simpletxmanager: failed to begin transaction: %w", err)
		}

		txCtx := dbmetrics.WithTx(ctx, tx)

		if err := fn(txCtx); err != nil {
			_ = tx.Rollback()
			if isSerializationFailure(err) && attempt < maxRetries {
				lastErr = err
				continue
			}
			return err
		}

		if err := tx.Commit(); err != nil {
			if isSerializationFailure(err) && attempt < maxRetries {
				lastErr = err
				continue
			}
			return fmt.Errorf("simpletxmanager: failed to commit transaction: %w", err)
		}

		return nil
	}

	return fmt.Errorf("simpletxmanager: transaction retries exhausted: %w", lastErr)
}

// isSerializationFailure проверяет, является ли ошибка сбоем сериализации PostgreSQL
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqSerializationFailure
	}
	return false
}
