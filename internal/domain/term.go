package domain

// AcademicTerm represents an academic year + semester pair
// Инвариант: в любой момент активен не более чем один семестр
type AcademicTerm struct {
	ID           string
	AcademicYear string // например "2025-2026"
	Semester     int
	IsActive     bool
	IsLocked     bool // блокировка возможна только для активного семестра
}
