package txmanager

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

// TxBeginner интерфейс для начала транзакций (реализуется *dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager менеджер сериализуемых транзакций с метриками
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable выполняет fn внутри транзакции с уровнем изоляции SERIALIZABLE.
// Транзакция передается вложенным вызовам через контекст (dbmetrics.WithTx).
// При serialization failure (код 40001) транзакция повторяется до maxRetries раз.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if err != nil {
			return fmt.Errorf("txmanager: failed to begin transaction: %w", err)
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
			return fmt.Errorf("txmanager: failed to commit transaction: %w", err)
		}

		return nil
	}

	return fmt.Errorf("txmanager: transaction retries exhausted: %w", lastErr)
}

// isSerializationFailure проверяет, является ли ошибка сбоем сериализации PostgreSQL
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqSerializationFailure
	}
	return false
}
