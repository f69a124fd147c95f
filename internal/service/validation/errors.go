package validation

import "errors"

// Ошибки проверок ресурсов. Проверки выполняются в фиксированном порядке,
// возвращается первая нарушенная.
var (
	// ErrInvalidRange возвращается, когда диапазон пар вырожден
	ErrInvalidRange = errors.New("invalid period range")

	// ErrTermInvalid возвращается, когда семестр не существует, неактивен или заблокирован
	ErrTermInvalid = errors.New("academic term is invalid or locked")

	// ErrSubjectInvalid возвращается, когда дисциплина не существует или заблокирована
	ErrSubjectInvalid = errors.New("invalid or locked subject")

	// ErrSemesterMismatch возвращается, когда семестр дисциплины не совпадает с учебным семестром
	ErrSemesterMismatch = errors.New("subject semester does not match academic term")

	// ErrCrossDepartmentDenied возвращается при попытке записи в чужое отделение
	ErrCrossDepartmentDenied = errors.New("cross-department scheduling denied")

	// ErrTypeMismatch возвращается, когда тип дисциплины не соответствует типу отделения
	ErrTypeMismatch = errors.New("subject type does not match department type")

	// ErrInvalidClass возвращается, когда учебная группа не существует
	ErrInvalidClass = errors.New("invalid class")

	// ErrClassDepartmentMismatch возвращается, когда группа не принадлежит отделению
	ErrClassDepartmentMismatch = errors.New("class does not belong to department")

	// ErrInvalidFaculty возвращается, когда преподаватель не существует, неактивен
	// или не принадлежит отделению
	ErrInvalidFaculty = errors.New("invalid or inactive faculty")

	// ErrInvalidRoom возвращается, когда аудитория не существует или неактивна
	ErrInvalidRoom = errors.New("invalid or inactive room")

	// ErrModeRoomMismatch возвращается, когда тип аудитории не соответствует формату занятия
	ErrModeRoomMismatch = errors.New("room type does not match schedule mode")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
