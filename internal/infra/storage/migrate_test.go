package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// repositoryColumns перечисляет колонки, которые репозитории читают и пишут.
// Тест сверяет их со встроенной миграцией, чтобы схема не разошлась с кодом.
var repositoryColumns = map[string][]string{
	"schedules": {
		"id", "academic_term_id", "department_id", "class_id", "subject_id",
		"faculty_id", "room_id", "day", "start_period_id", "end_period_id",
		"mode", "status", "created_by", "created_at", "updated_at",
	},
	"schedule_periods":  {"schedule_id", "period_id"},
	"schedule_versions": {"schedule_id", "version", "snapshot"},
	"periods":           {"id", "start_time", "end_time", "slot_index"},
	"academic_terms":    {"id", "academic_year", "semester", "is_active", "is_locked"},
	"audit_logs": {
		"id", "user_id", "action", "entity_type", "entity_id",
		"old_version", "new_version", "details", "created_at",
	},
	"notifications": {"id", "user_id", "type", "title", "message", "entity_type", "entity_id"},
	"subjects":      {"id", "name", "subject_type", "semester", "is_locked"},
	"departments":   {"id", "name", "department_type"},
	"faculty":       {"id", "department_id", "user_id", "is_active"},
	"rooms":         {"id", "name", "room_type", "is_active"},
	"classes":       {"id", "name", "department_id"},
}

func TestMigrationSchemaCoversRepositoryColumns(t *testing.T) {
	raw, err := migrationsFS.ReadFile("migrations/0001_init.up.sql")
	require.NoError(t, err)

	tables := parseCreateTables(string(raw))

	for table, columns := range repositoryColumns {
		body, ok := tables[table]
		require.True(t, ok, "table %s is missing from the migration", table)

		for _, column := range columns {
			assert.True(t, tableHasColumn(body, column),
				"table %s has no column %s", table, column)
		}
	}
}

// parseCreateTables извлекает тела CREATE TABLE из текста миграции
func parseCreateTables(sqlText string) map[string]string {
	const marker = "CREATE TABLE IF NOT EXISTS "

	tables := make(map[string]string)
	rest := sqlText
	for {
		idx := strings.Index(rest, marker)
		if idx < 0 {
			return tables
		}
		rest = rest[idx+len(marker):]

		open := strings.Index(rest, "(")
		end := strings.Index(rest, "\n);")
		if open < 0 || end < 0 {
			return tables
		}

		name := strings.TrimSpace(rest[:open])
		tables[name] = rest[open+1 : end]
		rest = rest[end:]
	}
}

// tableHasColumn проверяет, что тело таблицы объявляет колонку с таким именем
func tableHasColumn(body, column string) bool {
	for _, line := range strings.Split(body, "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == column {
			return true
		}
	}
	return false
}
