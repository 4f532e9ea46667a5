// Package payroll holds the dispatch aggregation used to build payroll
// summaries: a two-sided group-count pivot over the dispatch collection
// plus the shared date-range filter.
package payroll

import "dispatchledger/internal/domain"

// Summary is the payroll pivot: rows are work-day codes, columns are
// person names (driver-side columns first, courier-side after), cells
// count distinct slip numbers. Row and column order is first-seen order
// over the input, kept explicitly because map iteration would not
// preserve it.
type Summary struct {
	Rows     []string `json:"rows"`
	Drivers  []string `json:"drivers"`
	Couriers []string `json:"couriers"`

	// wd_code -> person -> distinct slip count
	DriverCounts  map[string]map[string]int `json:"driver_counts"`
	CourierCounts map[string]map[string]int `json:"courier_counts"`
}

// DriverCell returns the driver-side cell, 0 when the combination never
// occurred. Missing combinations are a real 0 in the report, never a
// hole.
func (s Summary) DriverCell(wdCode, person string) int {
	return s.DriverCounts[wdCode][person]
}

// CourierCell returns the courier-side cell, 0 when absent.
func (s Summary) CourierCell(wdCode, person string) int {
	return s.CourierCounts[wdCode][person]
}

// Empty reports whether the summary has no rows at all.
func (s Summary) Empty() bool { return len(s.Rows) == 0 }

// SummarizeDispatchCounts pivots the dispatch collection into per-person
// attendance counts per work-day code, in one pass so a worker's driver
// and courier workload land in the same table. Each slip number is one
// dispatch event; duplicates of the same slip under the same key are
// counted once. A record with a missing or unrecognized work-day code is
// bucketed under domain.WDUnknown instead of being dropped. A record
// with an empty driver or courier simply contributes nothing on that
// side.
func SummarizeDispatchCounts(records []domain.DispatchRecord) Summary {
	s := Summary{
		DriverCounts:  map[string]map[string]int{},
		CourierCounts: map[string]map[string]int{},
	}

	seenRow := map[string]bool{}
	seenDriver := map[string]bool{}
	seenCourier := map[string]bool{}

	// (wd_code, person, slip) triples already counted, per side
	type key struct{ wd, person, slip string }
	driverSlips := map[key]bool{}
	courierSlips := map[key]bool{}

	for _, rec := range records {
		wd := rec.WDCode
		if !domain.IsWorkDayCode(wd) {
			wd = domain.WDUnknown
		}
		if !seenRow[wd] {
			seenRow[wd] = true
			s.Rows = append(s.Rows, wd)
		}

		if rec.Driver != "" {
			if !seenDriver[rec.Driver] {
				seenDriver[rec.Driver] = true
				s.Drivers = append(s.Drivers, rec.Driver)
			}
			k := key{wd, rec.Driver, rec.SlipNo}
			if !driverSlips[k] {
				driverSlips[k] = true
				bump(s.DriverCounts, wd, rec.Driver)
			}
		}

		if rec.Courier != "" {
			if !seenCourier[rec.Courier] {
				seenCourier[rec.Courier] = true
				s.Couriers = append(s.Couriers, rec.Courier)
			}
			k := key{wd, rec.Courier, rec.SlipNo}
			if !courierSlips[k] {
				courierSlips[k] = true
				bump(s.CourierCounts, wd, rec.Courier)
			}
		}
	}

	return s
}

func bump(counts map[string]map[string]int, wd, person string) {
	row := counts[wd]
	if row == nil {
		row = map[string]int{}
		counts[wd] = row
	}
	row[person]++
}

// PersonCounts collapses one person's column (searching both sides) into
// per-code counts, which is what a pay strip draft needs. The person may
// appear as driver on some runs and courier on others; both sides add up.
func (s Summary) PersonCounts(person string) map[string]int {
	out := map[string]int{}
	for _, wd := range s.Rows {
		n := s.DriverCell(wd, person) + s.CourierCell(wd, person)
		if n != 0 {
			out[wd] = n
		}
	}
	return out
}
