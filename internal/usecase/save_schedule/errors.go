package save_schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда обновляемое расписание не найдено
	ErrScheduleNotFound = errors.New("save_schedule: schedule not found")

	// ErrAccessDenied возвращается, когда расписание принадлежит чужому отделению
	ErrAccessDenied = errors.New("save_schedule: access denied")

	// ErrTermNotFound возвращается, когда учебный семестр не найден
	ErrTermNotFound = errors.New("save_schedule: academic term not found")

	// ErrTermInactive возвращается при попытке записи в неактивный семестр
	ErrTermInactive = errors.New("save_schedule: academic term is not active")

	// ErrTermLocked возвращается, когда семестр заблокирован для изменений
	ErrTermLocked = errors.New("save_schedule: academic term is locked")

	// ErrIllegalTransition возвращается при недопустимой смене статуса
	ErrIllegalTransition = errors.New("save_schedule: illegal status transition")

	// ErrInvalidRange возвращается при некорректном диапазоне пар
	ErrInvalidRange = errors.New("save_schedule: invalid period range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("save_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("save_schedule: internal error")
)
