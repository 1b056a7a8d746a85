package stability

// ScheduleEntry is one withdrawal/analysis row of a batch record's testing
// timeline. Every field is free text; dates are kept in their string form.
type ScheduleEntry struct {
	DueDate           string `json:"dueDate"`
	Interval          string `json:"interval"`
	ChemicalAnalysis  string `json:"chemicalAnalysis"`
	MicroAnalysis     string `json:"microAnalysis"`
	Specification     string `json:"specification"`
	Chamber           string `json:"chamber"`
	Location          string `json:"location"`
	DateWithdrawn     string `json:"dateWithdrawn"`
	QuantityWithdrawn string `json:"quantityWithdrawn"`
	ARNo              string `json:"arNo"`
	DoneBy            string `json:"doneBy"`
	CheckedBy         string `json:"checkedBy"`
}

// ScheduleField names a single column of a ScheduleEntry.
type ScheduleField string

const (
	FieldDueDate           ScheduleField = "dueDate"
	FieldInterval          ScheduleField = "interval"
	FieldChemicalAnalysis  ScheduleField = "chemicalAnalysis"
	FieldMicroAnalysis     ScheduleField = "microAnalysis"
	FieldSpecification     ScheduleField = "specification"
	FieldChamber           ScheduleField = "chamber"
	FieldLocation          ScheduleField = "location"
	FieldDateWithdrawn     ScheduleField = "dateWithdrawn"
	FieldQuantityWithdrawn ScheduleField = "quantityWithdrawn"
	FieldARNo              ScheduleField = "arNo"
	FieldDoneBy            ScheduleField = "doneBy"
	FieldCheckedBy         ScheduleField = "checkedBy"
)

var scheduleFields = []ScheduleField{
	FieldDueDate,
	FieldInterval,
	FieldChemicalAnalysis,
	FieldMicroAnalysis,
	FieldSpecification,
	FieldChamber,
	FieldLocation,
	FieldDateWithdrawn,
	FieldQuantityWithdrawn,
	FieldARNo,
	FieldDoneBy,
	FieldCheckedBy,
}

// Columns shown inline on the main form; the rest are edited in the schedule dialog.
var primaryScheduleFields = []ScheduleField{
	FieldDueDate,
	FieldInterval,
	FieldChemicalAnalysis,
	FieldMicroAnalysis,
	FieldSpecification,
	FieldChamber,
	FieldLocation,
}

var intervalOptions = []string{
	"1 M", "2 M", "3 M", "6 M", "9 M", "12 M", "18 M", "24 M", "36 M", "Extra Samples",
}

// ScheduleFields returns every schedule column in display order.
func ScheduleFields() []ScheduleField {
	out := make([]ScheduleField, len(scheduleFields))
	copy(out, scheduleFields)
	return out
}

// PrimaryScheduleFields returns the subset of columns edited inline.
func PrimaryScheduleFields() []ScheduleField {
	out := make([]ScheduleField, len(primaryScheduleFields))
	copy(out, primaryScheduleFields)
	return out
}

// IntervalOptions lists the suggested interval labels. Interval stays free text.
func IntervalOptions() []string {
	out := make([]string, len(intervalOptions))
	copy(out, intervalOptions)
	return out
}

// ParseScheduleField resolves a column name to a ScheduleField.
func ParseScheduleField(name string) (ScheduleField, error) {
	for _, field := range scheduleFields {
		if string(field) == name {
			return field, nil
		}
	}
	return "", unknownField(name)
}

// IsDate reports whether the column holds a date.
func (f ScheduleField) IsDate() bool {
	return f == FieldDueDate || f == FieldDateWithdrawn
}

// Label renders the column name for humans, e.g. "arNo" becomes "Ar No".
func (f ScheduleField) Label() string {
	return Label(string(f))
}

// Get returns the value stored under field.
func (e ScheduleEntry) Get(field ScheduleField) string {
	if p := e.ref(field); p != nil {
		return *p
	}
	return ""
}

// Set overwrites one column. Unknown fields are rejected.
func (e *ScheduleEntry) Set(field ScheduleField, value string) error {
	p := e.ref(field)
	if p == nil {
		return unknownField(string(field))
	}
	*p = value
	return nil
}

func (e *ScheduleEntry) ref(field ScheduleField) *string {
	switch field {
	case FieldDueDate:
		return &e.DueDate
	case FieldInterval:
		return &e.Interval
	case FieldChemicalAnalysis:
		return &e.ChemicalAnalysis
	case FieldMicroAnalysis:
		return &e.MicroAnalysis
	case FieldSpecification:
		return &e.Specification
	case FieldChamber:
		return &e.Chamber
	case FieldLocation:
		return &e.Location
	case FieldDateWithdrawn:
		return &e.DateWithdrawn
	case FieldQuantityWithdrawn:
		return &e.QuantityWithdrawn
	case FieldARNo:
		return &e.ARNo
	case FieldDoneBy:
		return &e.DoneBy
	case FieldCheckedBy:
		return &e.CheckedBy
	default:
		return nil
	}
}

// IsEmpty reports whether every column is blank.
func (e ScheduleEntry) IsEmpty() bool {
	return e == ScheduleEntry{}
}
