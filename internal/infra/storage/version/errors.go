package version

import "errors"

var (
	// ErrVersionNotFound возвращается, когда версия расписания не найдена
	ErrVersionNotFound = errors.New("version.repository: schedule version not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("version.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("version.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("version.repository: failed to scan row")

	// ErrEncodeSnapshot возвращается при ошибке сериализации снапшота
	ErrEncodeSnapshot = errors.New("version.repository: failed to encode snapshot")

	// ErrDecodeSnapshot возвращается при ошибке десериализации снапшота
	ErrDecodeSnapshot = errors.New("version.repository: failed to decode snapshot")
)
