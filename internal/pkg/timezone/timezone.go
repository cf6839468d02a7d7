// Package timezone converts between naive wall-clock times in named IANA
// zones and canonical UTC instants, and formats instants for display.
package timezone

import (
	"errors"
	"time"
)

var (
	ErrInvalidTimezone  = errors.New("invalid timezone")
	ErrInvalidDateValue = errors.New("invalid date value")
)

const (
	// LocalLayout is the wire format clients use for requested times.
	LocalLayout = "2006-01-02 15:04"
	// DisplayLayout renders DD-MM-YYYY hh:mm AM/PM.
	DisplayLayout = "02-01-2006 03:04 PM"
)

// ParseLocal parses a naive YYYY-MM-DD HH:MM value. The result carries no
// timezone meaning until interpreted by ToUTC.
func ParseLocal(s string) (time.Time, error) {
	t, err := time.Parse(LocalLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateValue
	}
	return t, nil
}

// ToUTC interprets local as wall-clock time in the named zone and returns
// the corresponding UTC instant. Ambiguous or nonexistent wall times around
// DST transitions resolve per time.Date semantics.
func ToUTC(local time.Time, name string) (time.Time, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Time{}, ErrInvalidTimezone
	}
	wall := time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), loc)
	return wall.UTC(), nil
}

// ToZoned projects a UTC instant into the named zone for display.
func ToZoned(t time.Time, name string) (time.Time, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Time{}, ErrInvalidTimezone
	}
	return t.In(loc), nil
}

// FormatDisplay renders an already-zoned time as DD-MM-YYYY hh:mm AM/PM.
func FormatDisplay(t time.Time) string {
	return t.Format(DisplayLayout)
}

// Valid reports whether name resolves in the IANA timezone database.
func Valid(name string) bool {
	_, err := time.LoadLocation(name)
	return err == nil
}
