package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidBrewTime indicates a brew time string could not be parsed.
var ErrInvalidBrewTime = errors.New("invalid brew time")

// maxParsedSeconds bounds ParseBrewTime before clamping.
const maxParsedSeconds = math.MaxInt32

// FormatRemaining renders seconds as m:ss, or h:mm:ss from one hour up.
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	seconds = seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// ParseBrewTime accepts "ss", "m:ss", "h:mm:ss" or a Go duration such as "3m30s".
func ParseBrewTime(text string) (int, error) {
	value := strings.TrimSpace(text)
	if value == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidBrewTime)
	}

	if strings.Contains(value, ":") {
		parts := strings.Split(value, ":")
		if len(parts) > 3 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidBrewTime, text)
		}
		total := 0
		for index, part := range parts {
			number, err := strconv.Atoi(part)
			if err != nil || number < 0 {
				return 0, fmt.Errorf("%w: %q", ErrInvalidBrewTime, text)
			}
			if index > 0 && number > 59 {
				return 0, fmt.Errorf("%w: %q", ErrInvalidBrewTime, text)
			}
			if total > (maxParsedSeconds-number)/60 {
				return 0, fmt.Errorf("%w: %q is too long", ErrInvalidBrewTime, text)
			}
			total = total*60 + number
		}
		return total, nil
	}

	if number, err := strconv.Atoi(value); err == nil {
		if number < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidBrewTime, text)
		}
		if number > maxParsedSeconds {
			return 0, fmt.Errorf("%w: %q is too long", ErrInvalidBrewTime, text)
		}
		return number, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil || duration < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBrewTime, text)
	}
	if duration/time.Second > maxParsedSeconds {
		return 0, fmt.Errorf("%w: %q is too long", ErrInvalidBrewTime, text)
	}
	return int(duration / time.Second), nil
}
