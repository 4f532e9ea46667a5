package payroll

import (
	"sort"

	"dispatchledger/internal/domain"
)

// FilterByDateRange keeps records whose key field falls inside
// [start, end] (inclusive) and returns them sorted descending by that
// field. Dates are fixed-format strings whose lexicographic order equals
// chronological order, so plain string comparison is correct here. An
// empty bound leaves that end open. Both bounds set with start > end is
// rejected instead of silently returning nothing.
func FilterByDateRange[T any](records []T, key func(T) string, start, end string) ([]T, error) {
	if start != "" && end != "" && start > end {
		return nil, domain.ValidationError{Field: "date range", Msg: "start is after end"}
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		v := key(rec)
		if start != "" && v < start {
			continue
		}
		if end != "" && v > end {
			continue
		}
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) > key(out[j])
	})
	return out, nil
}
