// Package schedule generates the selectable pickup time slots for the
// order form from a configured daily window.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Slot is one selectable pickup time.
type Slot struct {
	// Value is the 24-hour "HH:MM" form used as the submitted field value.
	Value string `json:"value"`
	// Label is the 12-hour display form, e.g. "7:15 AM".
	Label string `json:"label"`
}

// Window describes the daily pickup window the slots are generated from.
type Window struct {
	StartHour   int
	EndHour     int
	StepMinutes int
}

// DefaultWindow is the product's standard pickup window: 7:00 AM through
// 9:00 PM in 15-minute increments.
var DefaultWindow = Window{StartHour: 7, EndHour: 21, StepMinutes: 15}

// Slots returns the ordered slot list for the window, one slot per multiple
// of StepMinutes from StartHour through EndHour. The end boundary is included
// when it lands exactly on a step. The result is freshly allocated on every
// call.
//
// Windows with StartHour > EndHour or StepMinutes <= 0 are a configuration
// error and must be rejected before this is called; see config.Validate.
func (w Window) Slots() []Slot {
	out := make([]Slot, 0, (w.EndHour-w.StartHour)*60/w.StepMinutes+1)
	for minutes := w.StartHour * 60; minutes <= w.EndHour*60; minutes += w.StepMinutes {
		value := fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
		out = append(out, Slot{Value: value, Label: To12Hour(value)})
	}
	return out
}

// To12Hour converts a 24-hour "HH:MM" string to its 12-hour display form
// with an AM/PM suffix. Hours 0 and 12 both render as "12". Returns "" for
// an empty or malformed input.
func To12Hour(hhmm string) string {
	h, m, ok := splitClock(hhmm)
	if !ok {
		return ""
	}
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	hour12 := h % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, m, ampm)
}

func splitClock(hhmm string) (hour, minute int, ok bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}
