package periods

import "errors"

var (
	// ErrInvalidRange возвращается при некорректном диапазоне пар
	ErrInvalidRange = errors.New("invalid period range")

	// ErrPeriodsInUse возвращается при попытке перегенерации сетки пар,
	// когда уже существуют расписания
	ErrPeriodsInUse = errors.New("periods are in use by existing schedules")

	// ErrNoPeriodsGenerated возвращается, когда заданное окно не дает ни одной пары
	ErrNoPeriodsGenerated = errors.New("time window yields no periods")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
