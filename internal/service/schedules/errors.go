package schedules

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrAccessDenied возвращается, когда расписание принадлежит чужому отделению
	ErrAccessDenied = errors.New("access denied")

	// ErrNotDraft возвращается при попытке удалить расписание не в статусе черновика
	ErrNotDraft = errors.New("only draft schedules can be deleted")

	// ErrTermNotFound возвращается, когда учебный семестр не найден
	ErrTermNotFound = errors.New("academic term not found")

	// ErrTermInactive возвращается при попытке изменения данных неактивного семестра
	ErrTermInactive = errors.New("academic term is not active")

	// ErrTermLocked возвращается, когда семестр заблокирован для изменений
	ErrTermLocked = errors.New("academic term is locked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
