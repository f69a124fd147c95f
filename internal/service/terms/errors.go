package terms

import "errors"

var (
	// ErrTermNotFound возвращается, когда учебный семестр не найден
	ErrTermNotFound = errors.New("academic term not found")

	// ErrTermInactive возвращается при попытке изменения данных неактивного семестра
	ErrTermInactive = errors.New("academic term is not active")

	// ErrTermLocked возвращается, когда семестр заблокирован для изменений
	ErrTermLocked = errors.New("academic term is locked")

	// ErrTermExists возвращается при попытке создать дубликат семестра
	ErrTermExists = errors.New("academic term already exists")

	// ErrTermNotActive возвращается при попытке заблокировать неактивный семестр
	ErrTermNotActive = errors.New("only the active academic term can be locked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
