package resource

import (
	"strconv"
	"strings"
)

// ParseClock converts a wall-clock "HH:mm" string (optionally "HH:mm:ss",
// seconds ignored) into minutes since midnight. It is strict about ranges:
// hours 0-23, minutes 0-59.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, ErrInvalidClock
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, ErrInvalidClock
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, ErrInvalidClock
	}

	return hours*60 + minutes, nil
}
