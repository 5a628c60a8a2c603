// Package timewindow provides the pure time-window math shared by the alert
// and appointment engines: days-until-due, urgency classification, and
// reminder-window membership. Every function takes an explicit reference time.
package timewindow

import (
	"math"
	"time"
)

// Tier is the coarse urgency classification derived from days-until-due.
type Tier string

const (
	TierOverdue  Tier = "overdue"
	TierToday    Tier = "today"
	TierTomorrow Tier = "tomorrow"
	TierThisWeek Tier = "this_week"
	TierNormal   Tier = "normal"
	TierNone     Tier = "none"
)

// DefaultReminderDays is the window applied when a record carries no
// reminder configuration.
var DefaultReminderDays = []int{7}

// DaysUntilDue returns the ceiling of (due - now) in days. The second return
// is false when there is no deadline.
func DaysUntilDue(now time.Time, due *time.Time) (int, bool) {
	if due == nil {
		return 0, false
	}
	days := int(math.Ceil(due.Sub(now).Hours() / 24))
	return days, true
}

// TierFor classifies days-until-due into an urgency tier. hasDue false maps
// to TierNone.
func TierFor(days int, hasDue bool) Tier {
	switch {
	case !hasDue:
		return TierNone
	case days < 0:
		return TierOverdue
	case days == 0:
		return TierToday
	case days == 1:
		return TierTomorrow
	case days <= 7:
		return TierThisWeek
	default:
		return TierNormal
	}
}

// WithinReminderWindow reports whether now falls inside the surfacing window
// for a due date: at most max(reminderDays) days before due, and no later
// than due itself. Records without a due date are never within a window;
// callers decide the no-deadline policy.
func WithinReminderWindow(now time.Time, due *time.Time, reminderDays []int) bool {
	if due == nil {
		return false
	}
	maxDays := maxReminderDays(reminderDays)
	windowStart := due.AddDate(0, 0, -maxDays)
	return !now.Before(windowStart) && !now.After(*due)
}

func maxReminderDays(reminderDays []int) int {
	if len(reminderDays) == 0 {
		reminderDays = DefaultReminderDays
	}
	max := reminderDays[0]
	for _, d := range reminderDays[1:] {
		if d > max {
			max = d
		}
	}
	return max
}
