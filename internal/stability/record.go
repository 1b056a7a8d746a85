package stability

import (
	"strings"
	"unicode"
)

// BatchRecord is one stability-study batch: header details plus the ordered
// withdrawal and analysis schedule.
type BatchRecord struct {
	PlanNo              string          `json:"planNo"`
	Product             string          `json:"product"`
	ProtocolNo          string          `json:"protocolNo"`
	BatchNo             string          `json:"batchNo"`
	MfgDate             string          `json:"mfgDate"`
	Market              string          `json:"market"`
	RetestExpDate       string          `json:"retestExpDate"`
	TypeOfBatch         string          `json:"typeOfBatch"`
	PackDetails         string          `json:"packDetails"`
	PurposeOfStudy      string          `json:"purposeOfStudy"`
	Condition           string          `json:"condition"`
	DateOfIncubation    string          `json:"dateOfIncubation"`
	DistributedQuantity string          `json:"distributedQuantity"`
	RemainingQty        string          `json:"remainingQty"`
	Schedule            []ScheduleEntry `json:"schedule"`
}

// HeaderField names a single header field of a BatchRecord.
type HeaderField string

const (
	FieldPlanNo              HeaderField = "planNo"
	FieldProduct             HeaderField = "product"
	FieldProtocolNo          HeaderField = "protocolNo"
	FieldBatchNo             HeaderField = "batchNo"
	FieldMfgDate             HeaderField = "mfgDate"
	FieldMarket              HeaderField = "market"
	FieldRetestExpDate       HeaderField = "retestExpDate"
	FieldTypeOfBatch         HeaderField = "typeOfBatch"
	FieldPackDetails         HeaderField = "packDetails"
	FieldPurposeOfStudy      HeaderField = "purposeOfStudy"
	FieldCondition           HeaderField = "condition"
	FieldDateOfIncubation    HeaderField = "dateOfIncubation"
	FieldDistributedQuantity HeaderField = "distributedQuantity"
	FieldRemainingQty        HeaderField = "remainingQty"
)

var headerFields = []HeaderField{
	FieldPlanNo,
	FieldProduct,
	FieldProtocolNo,
	FieldBatchNo,
	FieldMfgDate,
	FieldMarket,
	FieldRetestExpDate,
	FieldTypeOfBatch,
	FieldPackDetails,
	FieldPurposeOfStudy,
	FieldCondition,
	FieldDateOfIncubation,
	FieldDistributedQuantity,
	FieldRemainingQty,
}

var requiredFields = []HeaderField{FieldPlanNo, FieldProduct, FieldBatchNo}

// HeaderFields returns the header fields in form order.
func HeaderFields() []HeaderField {
	out := make([]HeaderField, len(headerFields))
	copy(out, headerFields)
	return out
}

// RequiredFields returns the header fields that gate commit to the store.
func RequiredFields() []HeaderField {
	out := make([]HeaderField, len(requiredFields))
	copy(out, requiredFields)
	return out
}

// ParseHeaderField resolves a header name to a HeaderField.
func ParseHeaderField(name string) (HeaderField, error) {
	for _, field := range headerFields {
		if string(field) == name {
			return field, nil
		}
	}
	return "", unknownField(name)
}

// IsDate reports whether the header holds a date, judged by its name.
func (f HeaderField) IsDate() bool {
	return strings.Contains(strings.ToLower(string(f)), "date")
}

// IsRequired reports whether the header must be non-empty to finalize.
func (f HeaderField) IsRequired() bool {
	for _, field := range requiredFields {
		if field == f {
			return true
		}
	}
	return false
}

// Label renders the header name for humans.
func (f HeaderField) Label() string {
	return Label(string(f))
}

// NewRecord returns the initial draft: blank header and one blank schedule row.
func NewRecord() BatchRecord {
	return BatchRecord{Schedule: []ScheduleEntry{{}}}
}

// Get returns the value stored under field.
func (r BatchRecord) Get(field HeaderField) string {
	if p := r.ref(field); p != nil {
		return *p
	}
	return ""
}

// Set overwrites one header field.
func (r *BatchRecord) Set(field HeaderField, value string) error {
	p := r.ref(field)
	if p == nil {
		return unknownField(string(field))
	}
	*p = value
	return nil
}

func (r *BatchRecord) ref(field HeaderField) *string {
	switch field {
	case FieldPlanNo:
		return &r.PlanNo
	case FieldProduct:
		return &r.Product
	case FieldProtocolNo:
		return &r.ProtocolNo
	case FieldBatchNo:
		return &r.BatchNo
	case FieldMfgDate:
		return &r.MfgDate
	case FieldMarket:
		return &r.Market
	case FieldRetestExpDate:
		return &r.RetestExpDate
	case FieldTypeOfBatch:
		return &r.TypeOfBatch
	case FieldPackDetails:
		return &r.PackDetails
	case FieldPurposeOfStudy:
		return &r.PurposeOfStudy
	case FieldCondition:
		return &r.Condition
	case FieldDateOfIncubation:
		return &r.DateOfIncubation
	case FieldDistributedQuantity:
		return &r.DistributedQuantity
	case FieldRemainingQty:
		return &r.RemainingQty
	default:
		return nil
	}
}

// Missing lists the required header fields that are empty. Whitespace counts
// as a value.
func (r BatchRecord) Missing() []HeaderField {
	var missing []HeaderField
	for _, field := range requiredFields {
		if r.Get(field) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// Complete reports whether the record may be committed to a Store.
func (r BatchRecord) Complete() bool {
	return len(r.Missing()) == 0
}

// Clone returns a deep copy; the schedule slice is never shared.
func (r BatchRecord) Clone() BatchRecord {
	out := r
	if r.Schedule != nil {
		out.Schedule = make([]ScheduleEntry, len(r.Schedule))
		copy(out.Schedule, r.Schedule)
	}
	return out
}

// Label turns a camelCase field name into words: "retestExpDate" becomes
// "Retest Exp Date".
func Label(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
