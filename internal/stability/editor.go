package stability

// RowPolicy controls how small a draft schedule may become.
type RowPolicy struct {
	// MinRows is the fewest rows RemoveRow will leave behind. Zero allows an
	// empty schedule.
	MinRows int
}

// DefaultRowPolicy refuses to remove the last schedule row.
func DefaultRowPolicy() RowPolicy {
	return RowPolicy{MinRows: 1}
}

// Editor holds the single draft batch record being composed or edited.
type Editor struct {
	policy     RowPolicy
	draft      BatchRecord
	dialogOpen bool
}

// NewEditor returns an editor holding the initial empty draft.
func NewEditor(policy RowPolicy) *Editor {
	if policy.MinRows < 0 {
		policy.MinRows = 0
	}
	return &Editor{policy: policy, draft: NewRecord()}
}

// RestoreEditor rebuilds an editor around a previously captured draft.
func RestoreEditor(policy RowPolicy, draft BatchRecord, dialogOpen bool) *Editor {
	e := NewEditor(policy)
	e.draft = draft.Clone()
	e.dialogOpen = dialogOpen
	return e
}

// Policy returns the row policy the editor enforces.
func (e *Editor) Policy() RowPolicy {
	return e.policy
}

// Draft returns a copy of the current draft.
func (e *Editor) Draft() BatchRecord {
	return e.draft.Clone()
}

// ScheduleDialogOpen reports whether the full schedule dialog is showing.
func (e *Editor) ScheduleDialogOpen() bool {
	return e.dialogOpen
}

// SetField overwrites one header field of the draft.
func (e *Editor) SetField(name, value string) error {
	field, err := ParseHeaderField(name)
	if err != nil {
		return err
	}
	return e.draft.Set(field, value)
}

// AddRow appends a blank row to the end of the schedule.
func (e *Editor) AddRow() {
	e.draft.Schedule = append(e.draft.Schedule, ScheduleEntry{})
}

// AppendRows appends copies of rows to the end of the schedule.
func (e *Editor) AppendRows(rows []ScheduleEntry) {
	e.draft.Schedule = append(e.draft.Schedule, rows...)
}

// UpdateRow overwrites one column of the row at index.
func (e *Editor) UpdateRow(index int, name, value string) error {
	field, err := ParseScheduleField(name)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(e.draft.Schedule) {
		return rowOutOfRange(index, len(e.draft.Schedule))
	}
	return e.draft.Schedule[index].Set(field, value)
}

// RemoveRow deletes the row at index, shifting later rows down. Removal that
// would leave fewer rows than the policy minimum returns ErrLastRow.
func (e *Editor) RemoveRow(index int) error {
	rows := len(e.draft.Schedule)
	if index < 0 || index >= rows {
		return rowOutOfRange(index, rows)
	}
	if rows <= e.policy.MinRows {
		return ErrLastRow
	}
	e.draft.Schedule = append(e.draft.Schedule[:index:index], e.draft.Schedule[index+1:]...)
	return nil
}

// LoadForEditing replaces the draft with a deep copy of record.
func (e *Editor) LoadForEditing(record BatchRecord) {
	e.draft = record.Clone()
}

// Clear resets the draft to its initial state.
func (e *Editor) Clear() {
	e.draft = NewRecord()
}

// OpenScheduleDialog shows the full schedule dialog. It is refused while a
// required header field is blank.
func (e *Editor) OpenScheduleDialog() error {
	if missing := e.draft.Missing(); len(missing) > 0 {
		return &IncompleteError{Missing: missing}
	}
	e.dialogOpen = true
	return nil
}

// CloseScheduleDialog hides the schedule dialog.
func (e *Editor) CloseScheduleDialog() {
	e.dialogOpen = false
}

// Finalize commits a copy of the draft to the front of store and clears the
// draft. An incomplete draft returns *IncompleteError and neither the draft
// nor the store changes. The schedule dialog closes in both cases.
func (e *Editor) Finalize(store *Store) (BatchRecord, error) {
	e.dialogOpen = false
	if missing := e.draft.Missing(); len(missing) > 0 {
		return BatchRecord{}, &IncompleteError{Missing: missing}
	}
	committed := e.draft.Clone()
	store.Prepend(committed)
	e.Clear()
	return committed, nil
}
