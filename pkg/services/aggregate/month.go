package aggregate

import (
	"cmp"
	"strconv"
	"strings"
)

var monthNumbers = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may": 5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9, "sept": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

// MonthNumber returns the calendar position (1-12) of a month label such as
// "January", "jan" or "1".
func MonthNumber(label string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(label))
	if n, ok := monthNumbers[s]; ok {
		return n, true
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 12 {
		return n, true
	}
	return 0, false
}

// compareMonths orders recognised months by calendar position and puts
// anything unrecognised after them. Unrecognised labels compare equal so a
// stable sort keeps their first-seen order.
func compareMonths(a, b string) int {
	na, okA := MonthNumber(a)
	nb, okB := MonthNumber(b)
	switch {
	case okA && okB:
		return cmp.Compare(na, nb)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}
