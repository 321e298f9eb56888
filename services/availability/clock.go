package availability

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ParseClock converts an "HH:MM" wall-clock string to minutes from
// midnight. All slot arithmetic works on these integers; no time.Time
// values and no timezone conversion are involved past this point.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	return hours*60 + minutes, nil
}

// FormatClock renders minutes from midnight back to "HH:MM", wrapping
// past midnight modulo 24 hours.
func FormatClock(m int) string {
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddMinutes advances an "HH:MM" time by the given number of minutes,
// wrapping hours modulo 24.
func AddMinutes(start string, minutes int) (string, error) {
	m, err := ParseClock(start)
	if err != nil {
		return "", err
	}
	return FormatClock(m + minutes), nil
}
