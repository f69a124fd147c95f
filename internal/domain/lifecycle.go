package domain

import "fmt"

// IllegalTransitionError ошибка недопустимого перехода статуса расписания
type IllegalTransitionError struct {
	From ScheduleStatus
	To   ScheduleStatus
}

func (e *IllegalTransitionError) Error() string {
	from := string(e.From)
	if from == "" {
		from = "NONE"
	}
	return fmt.Sprintf("illegal schedule transition %s -> %s", from, e.To)
}

// ValidateTransition проверяет допустимость перехода статуса расписания.
// Разрешенные переходы:
//   - NONE -> DRAFT (создание черновика)
//   - NONE -> PUBLISHED (создание сразу опубликованным, через неявный DRAFT)
//   - DRAFT -> PUBLISHED (публикация)
//   - PUBLISHED -> ARCHIVED (архивация)
//   - ARCHIVED -> PUBLISHED (восстановление через undo)
//
// Любой другой переход, включая повторное сохранение в том же статусе,
// возвращает *IllegalTransitionError.
func ValidateTransition(from, to ScheduleStatus) error {
	switch {
	case from == StatusNone && to == StatusDraft:
		return nil
	case from == StatusNone && to == StatusPublished:
		return nil
	case from == StatusDraft && to == StatusPublished:
		return nil
	case from == StatusPublished && to == StatusArchived:
		return nil
	case from == StatusArchived && to == StatusPublished:
		return nil
	}
	return &IllegalTransitionError{From: from, To: to}
}
