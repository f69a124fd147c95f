package archive_schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("archive_schedule: schedule not found")

	// ErrAccessDenied возвращается, когда расписание принадлежит чужому отделению
	ErrAccessDenied = errors.New("archive_schedule: access denied")

	// ErrTermNotFound возвращается, когда учебный семестр не найден
	ErrTermNotFound = errors.New("archive_schedule: academic term not found")

	// ErrTermInactive возвращается при попытке изменения данных неактивного семестра
	ErrTermInactive = errors.New("archive_schedule: academic term is not active")

	// ErrTermLocked возвращается, когда семестр заблокирован для изменений
	ErrTermLocked = errors.New("archive_schedule: academic term is locked")

	// ErrIllegalTransition возвращается при попытке архивировать неопубликованное расписание
	ErrIllegalTransition = errors.New("archive_schedule: illegal status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("archive_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("archive_schedule: internal error")
)
