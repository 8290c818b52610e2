package repo

import "strings"

const (
	DefaultLimit = 1000
	MaxLimit     = 3000
)

// ListFilter selects a page of a collection in insertion order. Query, when
// set, keeps only records whose searchable text contains it, ignoring case.
type ListFilter struct {
	Query  string
	Offset int
	Limit  int
}

func (f ListFilter) matches(fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (f ListFilter) limit() int {
	if f.Limit <= 0 {
		return DefaultLimit
	}
	return f.Limit
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// page returns the [start, end) bounds of the filter's page over n records.
func (f ListFilter) page(n int) (int, int) {
	start := clamp(f.Offset, 0, n)
	end := clamp(start+f.limit(), start, n)
	return start, end
}
