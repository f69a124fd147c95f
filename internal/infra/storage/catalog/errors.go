package catalog

import "errors"

var (
	// ErrSubjectNotFound возвращается, когда дисциплина не найдена
	ErrSubjectNotFound = errors.New("catalog.repository: subject not found")

	// ErrDepartmentNotFound возвращается, когда отделение не найдено
	ErrDepartmentNotFound = errors.New("catalog.repository: department not found")

	// ErrFacultyNotFound возвращается, когда преподаватель не найден
	ErrFacultyNotFound = errors.New("catalog.repository: faculty not found")

	// ErrRoomNotFound возвращается, когда аудитория не найдена
	ErrRoomNotFound = errors.New("catalog.repository: room not found")

	// ErrClassNotFound возвращается, когда учебная группа не найдена
	ErrClassNotFound = errors.New("catalog.repository: class not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
