package venue

import (
	"fmt"
	"time"
)

// OpenAllDay reports whether opening and closing time are the same instant of the day.
func (v *Venue) OpenAllDay() bool {
	return v.OpenHour == v.CloseHour && v.OpenMinute == v.CloseMinute
}

// CrossesMidnight reports whether the closing time falls before the opening time.
func (v *Venue) CrossesMidnight() bool {
	return v.CloseHour < v.OpenHour || (v.CloseHour == v.OpenHour && v.CloseMinute < v.OpenMinute)
}

// IsOpen reports whether the venue is open right now.
func (v *Venue) IsOpen() bool {
	return v.IsOpenAt(time.Now())
}

// IsOpenAt reports whether the venue is open at the given instant. Both ends are
// resolved on the date of now: open is inclusive, close is exclusive. For hours
// that cross midnight the venue is closed only within [close, open).
func (v *Venue) IsOpenAt(now time.Time) bool {
	if v.OpenAllDay() {
		return true
	}

	open := atClock(now, v.OpenHour, v.OpenMinute)
	closing := atClock(now, v.CloseHour, v.CloseMinute)

	if v.CrossesMidnight() {
		return !within(now, closing, open)
	}
	return within(now, open, closing)
}

// OpenIntervalString renders the hours on a 12 hour clock, e.g. "6:00 AM - 10:30 PM".
func (v *Venue) OpenIntervalString() string {
	if v.OpenAllDay() {
		return "Open 24 hours"
	}
	return fmt.Sprintf("%s - %s", clock12(v.OpenHour, v.OpenMinute), clock12(v.CloseHour, v.CloseMinute))
}

func atClock(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

func clock12(hour, minute int) string {
	h := hour % 12
	if h == 0 {
		h = 12
	}
	period := "AM"
	if hour > 11 {
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, period)
}
