package journal

import "sort"

// FilterDatesSince filters dates to those at or after the cutoff.
func FilterDatesSince(dates []Date, cutoff Date) []Date {
	var result []Date
	for _, date := range dates {
		if !date.Before(cutoff) {
			result = append(result, date)
		}
	}
	return result
}

// FilterDatesUntil filters dates to those at or before the cutoff.
func FilterDatesUntil(dates []Date, cutoff Date) []Date {
	var result []Date
	for _, date := range dates {
		if !date.After(cutoff) {
			result = append(result, date)
		}
	}
	return result
}

// FilterNonEmpty filters dates to those whose entry has written content.
// Dates with no entry are dropped too.
func FilterNonEmpty(doc *Document, dates []Date) []Date {
	var result []Date
	for _, date := range dates {
		if entry := doc.Get(date); entry != nil && !entry.IsEmpty() {
			result = append(result, date)
		}
	}
	return result
}

// LimitDates returns at most n dates from the front of the slice.
// A non-positive n means no limit.
func LimitDates(dates []Date, n int) []Date {
	if n <= 0 || len(dates) <= n {
		return dates
	}
	return dates[:n]
}

// SortDatesDescending sorts dates most recent first.
func SortDatesDescending(dates []Date) {
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].After(dates[j])
	})
}
