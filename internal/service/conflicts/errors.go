package conflicts

import "errors"

var (
	// ErrInvalidRange возвращается при некорректном диапазоне пар кандидата
	ErrInvalidRange = errors.New("invalid period range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
