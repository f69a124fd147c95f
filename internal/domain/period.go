package domain

// Period represents a fixed institution-wide time slot
// Периоды генерируются один раз администратором и неизменны,
// пока существует хотя бы одно расписание
type Period struct {
	ID        string
	StartTime string // "HH:MM:SS"
	EndTime   string // "HH:MM:SS"
	SlotIndex int    // порядковый номер, задает полный порядок периодов
}
