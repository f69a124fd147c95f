package undo_schedule

import "errors"

var (
	// ErrInvalidUndoTarget возвращается, когда запись аудита не подходит для отката:
	// не найдена, относится не к расписанию или не содержит предыдущей версии
	ErrInvalidUndoTarget = errors.New("undo_schedule: invalid undo target")

	// ErrNotArchived возвращается, когда текущее состояние расписания не ARCHIVED
	ErrNotArchived = errors.New("undo_schedule: only archived schedules can be undone")

	// ErrAccessDenied возвращается, когда расписание принадлежит чужому отделению
	ErrAccessDenied = errors.New("undo_schedule: access denied")

	// ErrTermNotFound возвращается, когда учебный семестр не найден
	ErrTermNotFound = errors.New("undo_schedule: academic term not found")

	// ErrTermInactive возвращается при попытке изменения данных неактивного семестра
	ErrTermInactive = errors.New("undo_schedule: academic term is not active")

	// ErrTermLocked возвращается, когда семестр заблокирован для изменений
	ErrTermLocked = errors.New("undo_schedule: academic term is locked")

	// ErrIllegalTransition возвращается, когда восстановление нарушает жизненный цикл
	ErrIllegalTransition = errors.New("undo_schedule: illegal status transition")

	// ErrUndoConflict возвращается, когда восстановление создает конфликт
	// с опубликованными расписаниями; расписание остается в архиве
	ErrUndoConflict = errors.New("undo_schedule: undo causes schedule conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("undo_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("undo_schedule: internal error")
)
