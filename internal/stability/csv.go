package stability

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// ErrNoScheduleColumns is returned when a CSV header names no schedule column.
var ErrNoScheduleColumns = errors.New("csv header does not name any schedule column")

// ParseScheduleCSV reads schedule rows from CSV. The first record is a header
// naming schedule columns either by field name ("dueDate") or by label
// ("Due Date"); matching ignores case, spaces and punctuation. Unknown
// columns are ignored and blank lines are skipped.
func ParseScheduleCSV(r io.Reader) ([]ScheduleEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoScheduleColumns
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[int]ScheduleField, len(header))
	for idx, name := range header {
		if idx == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if field, ok := matchScheduleColumn(name); ok {
			columns[idx] = field
		}
	}
	if len(columns) == 0 {
		return nil, ErrNoScheduleColumns
	}

	var rows []ScheduleEntry
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}

		var entry ScheduleEntry
		for idx, value := range record {
			field, ok := columns[idx]
			if !ok {
				continue
			}
			if err := entry.Set(field, strings.TrimSpace(value)); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
		if entry.IsEmpty() {
			continue
		}
		rows = append(rows, entry)
	}
	return rows, nil
}

func matchScheduleColumn(name string) (ScheduleField, bool) {
	key := columnKey(name)
	if key == "" {
		return "", false
	}
	for _, field := range scheduleFields {
		if columnKey(string(field)) == key {
			return field, true
		}
	}
	return "", false
}

func columnKey(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
