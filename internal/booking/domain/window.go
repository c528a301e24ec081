package domain

import (
	"iter"
	"time"
)

// Window describes the bookable hours of a day and the slot granularity.
// Slots are half-open intervals: an appointment ending exactly when another
// begins does not conflict.
type Window struct {
	OpenHour  int // first bookable hour of day, e.g. 9
	CloseHour int // first non-bookable hour, e.g. 17
	Slot      time.Duration
}

// DefaultWindow is 09:00-17:00 in 30-minute slots.
var DefaultWindow = Window{
	OpenHour:  9,
	CloseHour: 17,
	Slot:      30 * time.Minute,
}

// Slots yields every slot start of the given date in ascending order. The
// sequence is lazy and restartable; ranging over it twice walks the day twice.
func (w Window) Slots(date time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		y, m, d := date.Date()
		start := time.Date(y, m, d, w.OpenHour, 0, 0, 0, date.Location())
		end := time.Date(y, m, d, w.CloseHour, 0, 0, 0, date.Location())

		for t := start; t.Before(end); t = t.Add(w.Slot) {
			if !yield(t) {
				return
			}
		}
	}
}

// Contains reports whether t is a valid slot start within the window.
func (w Window) Contains(t time.Time) bool {
	for slot := range w.Slots(t) {
		if slot.Equal(t) {
			return true
		}
	}
	return false
}
