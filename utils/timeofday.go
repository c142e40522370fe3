package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date wire format.
const DateLayout = "2006-01-02"

// ParseDate validates a "YYYY-MM-DD" string and returns the parsed day.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

// ParseTimeOfDay converts "HH:MM:SS" (or "HH:MM") to seconds from midnight.
func ParseTimeOfDay(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	var vals [3]int
	for i, p := range parts {
		if len(p) != 2 {
			return 0, fmt.Errorf("invalid time of day %q", s)
		}
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("invalid time of day %q", s)
		}
		vals[i] = v
	}
	h, m, sec := vals[0], vals[1], vals[2]
	if h > 23 || m > 59 || sec > 59 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return h*3600 + m*60 + sec, nil
}

// FormatTimeOfDay renders seconds from midnight as canonical "HH:MM:SS".
func FormatTimeOfDay(sec int) string {
	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, (sec/60)%60, sec%60)
}

// AlignUp returns the first multiple of step that is >= sec.
func AlignUp(sec, step int) int {
	if rem := sec % step; rem != 0 {
		return sec + step - rem
	}
	return sec
}

// IsAligned reports whether sec falls exactly on the step grid.
func IsAligned(sec, step int) bool {
	return sec%step == 0
}
