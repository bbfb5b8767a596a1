package store

import "time"

// DateRange bounds a query to an inclusive calendar window. Start is widened
// to 00:00:00 and End to the last nanosecond of its day, matching the way the
// report pages filter. An inverted range matches nothing.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the widened window.
func (r DateRange) Contains(t time.Time) bool {
	start := startOfDay(r.Start)
	end := endOfDay(r.End)
	return !t.Before(start) && !t.After(end)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// filterRange copies items, keeping only those whose date falls inside bounds.
// A nil bounds keeps everything.
func filterRange[T any](items []T, date func(T) time.Time, bounds *DateRange) []T {
	if bounds == nil {
		return append([]T(nil), items...)
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if bounds.Contains(date(item)) {
			out = append(out, item)
		}
	}
	return out
}
