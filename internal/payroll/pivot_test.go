package payroll

import (
	"reflect"
	"testing"

	"dispatchledger/internal/domain"
)

func TestSummarizeDispatchCountsEmpty(t *testing.T) {
	sum := SummarizeDispatchCounts(nil)
	if !sum.Empty() {
		t.Fatalf("expected empty summary, got rows %v", sum.Rows)
	}
	if len(sum.Drivers) != 0 || len(sum.Couriers) != 0 {
		t.Fatalf("expected no columns, got drivers=%v couriers=%v", sum.Drivers, sum.Couriers)
	}
}

func TestSummarizeDispatchCountsSingleRecord(t *testing.T) {
	sum := SummarizeDispatchCounts([]domain.DispatchRecord{
		{WDCode: "normal", Driver: "Alice", SlipNo: "S1"},
	})

	if !reflect.DeepEqual(sum.Rows, []string{"normal"}) {
		t.Fatalf("rows = %v, want [normal]", sum.Rows)
	}
	if !reflect.DeepEqual(sum.Drivers, []string{"Alice"}) {
		t.Fatalf("drivers = %v, want [Alice]", sum.Drivers)
	}
	if got := sum.DriverCell("normal", "Alice"); got != 1 {
		t.Fatalf("cell(normal, Alice) = %d, want 1", got)
	}
	// missing combinations read as zero, never as an error
	if got := sum.DriverCell("rd", "Alice"); got != 0 {
		t.Fatalf("cell(rd, Alice) = %d, want 0", got)
	}
	if got := sum.CourierCell("normal", "Alice"); got != 0 {
		t.Fatalf("courier cell should be 0 for a driver-only record, got %d", got)
	}
}

func TestSummarizeDispatchCountsDistinctSlips(t *testing.T) {
	// two records, same key, different slips: both count
	sum := SummarizeDispatchCounts([]domain.DispatchRecord{
		{WDCode: "normal", Driver: "Bob", SlipNo: "1"},
		{WDCode: "normal", Driver: "Bob", SlipNo: "2"},
	})
	if got := sum.DriverCell("normal", "Bob"); got != 2 {
		t.Fatalf("cell = %d, want 2 for two distinct slips", got)
	}

	// duplicate slip under the same key counts once
	sum = SummarizeDispatchCounts([]domain.DispatchRecord{
		{WDCode: "normal", Driver: "Bob", SlipNo: "1"},
		{WDCode: "normal", Driver: "Bob", SlipNo: "1"},
	})
	if got := sum.DriverCell("normal", "Bob"); got != 1 {
		t.Fatalf("cell = %d, want 1 for a duplicated slip", got)
	}
}

func TestSummarizeDispatchCountsTwoSided(t *testing.T) {
	sum := SummarizeDispatchCounts([]domain.DispatchRecord{
		{WDCode: "normal", Driver: "Bob", SlipNo: "1"},
		{WDCode: "rd", Driver: "Bob", SlipNo: "2"},
		{WDCode: "normal", Courier: "Carl", SlipNo: "3"},
	})

	if !reflect.DeepEqual(sum.Rows, []string{"normal", "rd"}) {
		t.Fatalf("rows = %v, want [normal rd] in first-seen order", sum.Rows)
	}
	if !reflect.DeepEqual(sum.Drivers, []string{"Bob"}) {
		t.Fatalf("drivers = %v, want [Bob]", sum.Drivers)
	}
	if !reflect.DeepEqual(sum.Couriers, []string{"Carl"}) {
		t.Fatalf("couriers = %v, want [Carl]", sum.Couriers)
	}
	if got := sum.DriverCell("normal", "Bob"); got != 1 {
		t.Fatalf("driver cell(normal, Bob) = %d, want 1", got)
	}
	if got := sum.DriverCell("rd", "Bob"); got != 1 {
		t.Fatalf("driver cell(rd, Bob) = %d, want 1", got)
	}
	if got := sum.CourierCell("normal", "Carl"); got != 1 {
		t.Fatalf("courier cell(normal, Carl) = %d, want 1", got)
	}
	if got := sum.CourierCell("rd", "Carl"); got != 0 {
		t.Fatalf("courier cell(rd, Carl) = %d, want 0", got)
	}
}

func TestSummarizeDispatchCountsUnknownCode(t *testing.T) {
	sum := SummarizeDispatchCounts([]domain.DispatchRecord{
		{WDCode: "", Driver: "Bob", SlipNo: "1"},
		{WDCode: "weird", Driver: "Bob", SlipNo: "2"},
	})
	if !reflect.DeepEqual(sum.Rows, []string{domain.WDUnknown}) {
		t.Fatalf("rows = %v, want only the unknown bucket", sum.Rows)
	}
	if got := sum.DriverCell(domain.WDUnknown, "Bob"); got != 2 {
		t.Fatalf("unknown bucket = %d, want 2", got)
	}
}

func TestSummarizeDispatchCountsFirstSeenOrder(t *testing.T) {
	sum := SummarizeDispatchCounts([]domain.DispatchRecord{
		{WDCode: "rd", Driver: "Zed", Courier: "Amy", SlipNo: "1"},
		{WDCode: "normal", Driver: "Ana", Courier: "Ben", SlipNo: "2"},
		{WDCode: "rd", Driver: "Moe", Courier: "Amy", SlipNo: "3"},
	})
	if !reflect.DeepEqual(sum.Rows, []string{"rd", "normal"}) {
		t.Fatalf("rows = %v, want first-seen order [rd normal]", sum.Rows)
	}
	if !reflect.DeepEqual(sum.Drivers, []string{"Zed", "Ana", "Moe"}) {
		t.Fatalf("drivers = %v, want first-seen order", sum.Drivers)
	}
	if !reflect.DeepEqual(sum.Couriers, []string{"Amy", "Ben"}) {
		t.Fatalf("couriers = %v, want first-seen order", sum.Couriers)
	}
}

func TestPersonCountsCombinesRoles(t *testing.T) {
	sum := SummarizeDispatchCounts([]domain.DispatchRecord{
		{WDCode: "normal", Driver: "Bob", SlipNo: "1"},
		{WDCode: "normal", Courier: "Bob", SlipNo: "2"},
		{WDCode: "rd", Driver: "Bob", SlipNo: "3"},
	})
	got := sum.PersonCounts("Bob")
	want := map[string]int{"normal": 2, "rd": 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PersonCounts = %v, want %v", got, want)
	}
}
