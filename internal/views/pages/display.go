package pages

import (
	"fmt"
	"strings"

	"stabilitylog/internal/stability"
)

// DefaultDash returns an em dash when the provided value is empty or whitespace.
func DefaultDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}

// RowCountSummary describes the size of the draft schedule.
func RowCountSummary(rows int) string {
	return fmt.Sprintf("Current schedule has %d row(s).", rows)
}

// HeaderInputName is the form key carrying a header field.
func HeaderInputName(field stability.HeaderField) string {
	return "header." + string(field)
}

// RowInputName is the form key carrying one column of schedule row index.
func RowInputName(index int, field stability.ScheduleField) string {
	return fmt.Sprintf("row.%d.%s", index, field)
}

func headerInputType(field stability.HeaderField) string {
	if field.IsDate() {
		return "date"
	}
	return "text"
}

func rowInputType(field stability.ScheduleField) string {
	if field.IsDate() {
		return "date"
	}
	return "text"
}

func rowInputList(field stability.ScheduleField) string {
	switch field {
	case stability.FieldChamber:
		return ChamberListID
	case stability.FieldInterval:
		return IntervalListID
	default:
		return ""
	}
}
