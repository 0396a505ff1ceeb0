package record

import (
	"strconv"
	"strings"
	"time"

	"example.com/navtext/internal/gpstime"
)

// Columns is the number of comma-separated columns in every formatted line.
const Columns = 5

// Formatter renders updates as text lines. Location selects the calendar used
// for the timestamp column; nil means UTC.
type Formatter struct {
	Location *time.Location
}

// Format returns one newline-terminated line:
//
//	gps seconds,calendar time,latitude,longitude,2d distance
//
// Invalid fields are left empty so the column count never changes.
func (f Formatter) Format(u Update) string {
	var b strings.Builder
	b.Grow(96)
	if ts, ok := u.Time.Get(); ok {
		civil, ms := gpstime.Normalize(ts.Seconds, ts.UTCOffset, f.Location)
		b.WriteString(padLeft(strconv.FormatFloat(ts.Seconds, 'f', 3, 64), 10))
		b.WriteByte(',')
		b.WriteString(gpstime.Format(civil, ms))
	} else {
		b.WriteByte(',')
	}
	b.WriteByte(',')
	b.WriteString(u.Lat.Format(fixed(8)))
	b.WriteByte(',')
	b.WriteString(u.Lon.Format(fixed(8)))
	b.WriteByte(',')
	b.WriteString(u.Dist2D.Format(fixed(3)))
	b.WriteByte('\n')
	return b.String()
}

func fixed(prec int) func(float64) string {
	return func(v float64) string {
		return strconv.FormatFloat(v, 'f', prec, 64)
	}
}

// padLeft matches printf's %10.3f width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
