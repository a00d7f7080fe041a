package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutFormDate = "02/01/2006"
)

// LoadLocation resolves an IANA zone name. Empty or "Local" means the host zone.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// ParseDate parses YYYY-MM-DD, falling back to the form's DD/MM/YYYY, in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	t, err := time.ParseInLocation(layoutDate, s, loc)
	if err == nil {
		return t, nil
	}
	if t2, err2 := time.ParseInLocation(layoutFormDate, s, loc); err2 == nil {
		return t2, nil
	}
	return time.Time{}, err
}
