// Package tz resolves the small, fixed set of timezone names accepted on
// the command line.
package tz

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	_ "time/tzdata"
)

var ErrUnsupported = errors.New("unsupported timezone")

// zones maps upper-cased names to IANA locations. Names are looked up
// exactly; arbitrary offsets such as UTC+3 are not accepted.
var zones = map[string]string{
	"WIB":   "Asia/Jakarta",
	"UTC+7": "Asia/Jakarta",
	"UTC":   "UTC",
	"UTC+0": "UTC",
	"PST":   "America/Los_Angeles",
	"UTC-8": "America/Los_Angeles",
	"EST":   "America/New_York",
	"UTC-5": "America/New_York",
	"JST":   "Asia/Tokyo",
	"UTC+9": "Asia/Tokyo",
	"UTC+8": "Asia/Hong_Kong",
	"UTC-7": "America/Denver",
}

// Common lists the names shown in help and error text.
var Common = []string{"WIB", "UTC", "UTC+7", "UTC-7", "PST", "EST", "JST"}

// Resolve returns the location for a case-insensitive zone name.
func Resolve(name string) (*time.Location, error) {
	id, ok := zones[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("load location %s: %w", id, err)
	}
	return loc, nil
}

// Names returns every accepted name, sorted.
func Names() []string {
	out := make([]string, 0, len(zones))
	for name := range zones {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
