// Package gpstime converts GPS time scalars into civil calendar timestamps.
package gpstime

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// GPSEpochOffset is the number of seconds between the Unix epoch
// (1970-01-01 00:00:00) and the GPS epoch (1980-01-06 00:00:00).
const GPSEpochOffset = 315964800.0

const layout = "2006-01-02 15:04:05"

// Normalize converts satTime, in seconds since the GPS epoch, into a calendar
// time in loc plus a millisecond remainder in [0, 999]. utcOffset is added to
// align GPS time with civil time (UTC-GPS, e.g. -18 after 2017-01-01). A nil
// loc means UTC.
func Normalize(satTime, utcOffset float64, loc *time.Location) (time.Time, int) {
	if loc == nil {
		loc = time.UTC
	}
	civil := satTime + GPSEpochOffset + utcOffset
	whole := math.Floor(civil)
	ms := int(math.Floor(0.5 + (civil-whole)*1000.0))
	if ms < 0 {
		ms = 0
	} else if ms > 999 {
		ms = 999
	}
	return time.Unix(int64(whole), 0).In(loc), ms
}

// Format renders a normalized timestamp as "YYYY-MM-DD hh:mm:ss.mmm".
func Format(t time.Time, ms int) string {
	return fmt.Sprintf("%s.%03d", t.Format(layout), ms)
}

// Location resolves a timezone policy name. The empty string and "UTC" select
// UTC, "Local" selects the zone of the running environment, anything else is
// looked up as an IANA zone name.
func Location(name string) (*time.Location, error) {
	switch strings.TrimSpace(name) {
	case "", "UTC", "utc":
		return time.UTC, nil
	case "Local", "local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", name, err)
	}
	return loc, nil
}
