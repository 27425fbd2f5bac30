package notification

import "time"

// Window decides whether an overdue action is still fresh enough to notify about.
// Both instants are truncated to Granularity before comparing. The configured
// default is one second. A one-minute granularity gives minute truncation, under
// which any instant in the due minute matches, e.g. due+20s for a due time on the minute.
type Window struct {
	Length      time.Duration
	Granularity time.Duration
}

// Contains reports whether due <= now <= due+Length.
func (w Window) Contains(due, now time.Time) bool {
	if w.Granularity > 0 {
		due = due.Truncate(w.Granularity)
		now = now.Truncate(w.Granularity)
	}

	return !now.Before(due) && !now.After(due.Add(w.Length))
}
