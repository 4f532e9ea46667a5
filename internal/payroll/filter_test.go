package payroll

import (
	"reflect"
	"testing"

	"dispatchledger/internal/domain"
)

func dispatchDates(records []domain.DispatchRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.DispatchDate)
	}
	return out
}

func TestFilterByDateRangeInclusiveAndSorted(t *testing.T) {
	records := []domain.DispatchRecord{
		{DispatchDate: "2025-08-01-Fri", SlipNo: "1"},
		{DispatchDate: "2025-08-03-Sun", SlipNo: "2"},
		{DispatchDate: "2025-08-05-Tue", SlipNo: "3"},
		{DispatchDate: "2025-08-10-Sun", SlipNo: "4"},
	}

	got, err := FilterByDateRange(records,
		func(d domain.DispatchRecord) string { return d.DispatchDate },
		"2025-08-03-Sun", "2025-08-05-Tue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"2025-08-05-Tue", "2025-08-03-Sun"}
	if !reflect.DeepEqual(dispatchDates(got), want) {
		t.Fatalf("dates = %v, want %v (inclusive bounds, descending)", dispatchDates(got), want)
	}
}

func TestFilterByDateRangeIdempotent(t *testing.T) {
	records := []domain.DispatchRecord{
		{DispatchDate: "2025-08-01-Fri"},
		{DispatchDate: "2025-08-03-Sun"},
		{DispatchDate: "2025-08-05-Tue"},
	}
	key := func(d domain.DispatchRecord) string { return d.DispatchDate }

	once, err := FilterByDateRange(records, key, "2025-08-01-Fri", "2025-08-05-Tue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := FilterByDateRange(once, key, "2025-08-01-Fri", "2025-08-05-Tue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filtering twice changed the result: %v vs %v", dispatchDates(once), dispatchDates(twice))
	}
}

func TestFilterByDateRangeOpenEnds(t *testing.T) {
	records := []domain.DispatchRecord{
		{DispatchDate: "2025-08-01-Fri"},
		{DispatchDate: "2025-08-05-Tue"},
	}
	key := func(d domain.DispatchRecord) string { return d.DispatchDate }

	got, err := FilterByDateRange(records, key, "", "2025-08-01-Fri")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].DispatchDate != "2025-08-01-Fri" {
		t.Fatalf("open start bound misfiltered: %v", dispatchDates(got))
	}

	got, err = FilterByDateRange(records, key, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("both bounds open should keep everything, got %d", len(got))
	}
}

func TestFilterByDateRangeRejectsInvertedRange(t *testing.T) {
	_, err := FilterByDateRange([]domain.DispatchRecord{},
		func(d domain.DispatchRecord) string { return d.DispatchDate },
		"2025-08-10-Sun", "2025-08-01-Fri")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for start > end, got %v", err)
	}
}
