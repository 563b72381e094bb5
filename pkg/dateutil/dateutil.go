package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Layout is the appointment date-time format, yyyy-MM-dd HH:mm
const Layout = "2006-01-02 15:04"

var ErrInvalidDateTime = errors.New("invalid date/time format, expected yyyy-MM-dd HH:mm")

func Parse(value string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, value)
	}
	return t, nil
}

func Format(t time.Time) string {
	return t.Format(Layout)
}
