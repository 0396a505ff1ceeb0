package gpstime

import "time"

// leap second table: date the offset took effect (UTC) and UTC-GPS in seconds.
var leaps = []struct {
	year, month, day int
	offset           float64
}{
	{2017, 1, 1, -18},
	{2015, 7, 1, -17},
	{2012, 7, 1, -16},
	{2009, 1, 1, -15},
	{2006, 1, 1, -14},
	{1999, 1, 1, -13},
	{1997, 7, 1, -12},
	{1996, 1, 1, -11},
	{1994, 7, 1, -10},
	{1993, 7, 1, -9},
	{1992, 7, 1, -8},
	{1991, 1, 1, -7},
	{1990, 1, 1, -6},
	{1988, 1, 1, -5},
	{1985, 7, 1, -4},
	{1983, 7, 1, -3},
	{1982, 7, 1, -2},
	{1981, 7, 1, -1},
}

// LeapSeconds returns the UTC-GPS offset in effect at satTime (seconds since
// the GPS epoch). It is zero before the first leap second of 1981-07-01.
func LeapSeconds(satTime float64) float64 {
	for _, l := range leaps {
		effective := time.Date(l.year, time.Month(l.month), l.day, 0, 0, 0, 0, time.UTC).Unix()
		utc := satTime + GPSEpochOffset + l.offset
		if utc >= float64(effective) {
			return l.offset
		}
	}
	return 0
}
