package stability

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownField is returned when a field name is not part of the model.
	ErrUnknownField = errors.New("unknown field")
	// ErrRowOutOfRange is returned for schedule row indexes outside the draft.
	ErrRowOutOfRange = errors.New("schedule row out of range")
	// ErrRecordOutOfRange is returned for store positions outside the store.
	ErrRecordOutOfRange = errors.New("record out of range")
	// ErrLastRow is returned when removing a row would leave the schedule
	// shorter than the row policy allows.
	ErrLastRow = errors.New("you must have at least one schedule row")
	// ErrIncompleteRecord is returned when a required header field is blank.
	ErrIncompleteRecord = errors.New("plan no, product and batch no are required")
)

// IncompleteError names the required header fields that blocked an operation.
type IncompleteError struct {
	Missing []HeaderField
}

func (e *IncompleteError) Error() string {
	labels := make([]string, 0, len(e.Missing))
	for _, field := range e.Missing {
		labels = append(labels, field.Label())
	}
	return fmt.Sprintf("missing required fields: %s", strings.Join(labels, ", "))
}

// Is lets errors.Is match ErrIncompleteRecord.
func (e *IncompleteError) Is(target error) bool {
	return target == ErrIncompleteRecord
}

// Notice is the message shown to the user when finalize is refused.
func (e *IncompleteError) Notice() string {
	return "Please fill in Plan No, Product and Batch No before saving. " + e.Error() + "."
}

func unknownField(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func rowOutOfRange(index, length int) error {
	return fmt.Errorf("%w: index %d, schedule has %d row(s)", ErrRowOutOfRange, index, length)
}

func recordOutOfRange(index, length int) error {
	return fmt.Errorf("%w: index %d, store has %d record(s)", ErrRecordOutOfRange, index, length)
}
