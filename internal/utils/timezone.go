package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseLocation resolves a "tz" query value. It accepts an IANA zone name
// ("Europe/Moscow") or a fixed offset ("+03:00", "-0530"). An empty value
// means UTC.
func ParseLocation(tz string) (*time.Location, error) {
	tz = strings.TrimSpace(tz)
	if tz == "" {
		return time.UTC, nil
	}

	if tz[0] == '+' || tz[0] == '-' {
		layout := "-07:00"
		if !strings.Contains(tz, ":") {
			layout = "-0700"
		}
		t, err := time.Parse(layout, tz)
		if err != nil {
			return nil, fmt.Errorf("invalid utc offset %q: %w", tz, err)
		}
		_, offset := t.Zone()
		return time.FixedZone(tz, offset), nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", tz, err)
	}
	return loc, nil
}

// LocationName returns a value ParseLocation understands for the zone of t.
// The process-local zone has no portable name, so its current offset is used.
func LocationName(t time.Time) string {
	name := t.Location().String()
	if name == "" || name == "Local" {
		return t.Format("-07:00")
	}
	return name
}
