package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Calendar dates are stored as YYYY-MM-DD text, timestamps as RFC 3339.
const dateLayout = "2006-01-02"

func dateValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}

// scanDate treats NULL, empty and malformed columns alike as no date.
func scanDate(col sql.NullString) *time.Time {
	if !col.Valid || col.String == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, col.String)
	if err != nil {
		return nil
	}
	return &t
}

func parseTimestamp(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}

// nullableString stores nil and "" as NULL.
func nullableString(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

func stringPtr(col sql.NullString) *string {
	if !col.Valid || col.String == "" {
		return nil
	}
	return &col.String
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool { return i != 0 }

// Program interests live in one comma-separated column.
func joinList(items []string) string { return strings.Join(items, ",") }

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
