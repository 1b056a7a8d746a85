package stability

import (
	"reflect"
	"testing"
)

func TestDistinctChambers(t *testing.T) {
	t.Parallel()

	records := []BatchRecord{
		{Schedule: []ScheduleEntry{{Chamber: "A"}, {Chamber: "B"}}},
		{Schedule: nil},
		{Schedule: []ScheduleEntry{{Chamber: "A"}, {Chamber: ""}, {Chamber: "C"}}},
	}

	if got := DistinctChambers(records); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatalf("DistinctChambers() = %v, want [A B C]", got)
	}
}

func TestDistinctChambersIncludesExtraRows(t *testing.T) {
	t.Parallel()

	records := []BatchRecord{{Schedule: []ScheduleEntry{{Chamber: "QC1"}}}}
	draft := []ScheduleEntry{{Chamber: "QC2"}, {Chamber: "QC1"}, {Chamber: ""}}

	if got := DistinctChambers(records, draft); !reflect.DeepEqual(got, []string{"QC1", "QC2"}) {
		t.Fatalf("DistinctChambers() = %v, want [QC1 QC2]", got)
	}
}

func TestDistinctChambersKeepsRawValues(t *testing.T) {
	t.Parallel()

	records := []BatchRecord{{Schedule: []ScheduleEntry{{Chamber: " A"}, {Chamber: "A"}, {Chamber: "  "}, {Chamber: "A"}}}}

	want := []string{" A", "A", "  "}
	if got := DistinctChambers(records); !reflect.DeepEqual(got, want) {
		t.Fatalf("DistinctChambers() = %q, want %q", got, want)
	}
}

func TestDistinctChambersEmpty(t *testing.T) {
	t.Parallel()

	got := DistinctChambers(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("DistinctChambers(nil) = %#v, want empty slice", got)
	}
}
