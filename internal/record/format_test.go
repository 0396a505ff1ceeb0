package record

import (
	"strings"
	"testing"
	"time"
)

func TestFieldGet(t *testing.T) {
	v, ok := Valid(2.5).Get()
	if !ok || v != 2.5 {
		t.Fatalf("Valid(2.5).Get() = %v, %v", v, ok)
	}
	v, ok = Invalid[float64]().Get()
	if ok || v != 0 {
		t.Fatalf("Invalid().Get() = %v, %v", v, ok)
	}
	if Invalid[float64]().IsValid() {
		t.Fatalf("Invalid field reports valid")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		update Update
		want   string
	}{
		{
			name: "all valid",
			update: Update{
				Time:   Valid(Time{Seconds: 1000000000.0, UTCOffset: 18.0}),
				Lat:    Valid(51.5),
				Lon:    Valid(-0.125),
				Dist2D: Valid(12.3456),
				Class:  Regular,
			},
			want: "1000000000.000," + time.Unix(1315964818, 0).UTC().Format("2006-01-02 15:04:05") + ".000,51.50000000,-0.12500000,12.346\n",
		},
		{
			name: "latitude only",
			update: Update{
				Lat: Valid(51.500000000),
			},
			want: ",,51.50000000,,\n",
		},
		{
			name:   "nothing valid",
			update: Update{Class: TriggerFallingEdge},
			want:   ",,,,\n",
		},
		{
			name: "short time is padded",
			update: Update{
				Time: Valid(Time{Seconds: 1.5}),
			},
			want: "     1.500,1980-01-06 00:00:01.500,,,\n",
		},
	}
	var f Formatter
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.Format(tc.update); got != tc.want {
				t.Fatalf("Format = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatColumnCount(t *testing.T) {
	times := []Field[Time]{Invalid[Time](), Valid(Time{Seconds: 123.456, UTCOffset: -18})}
	values := []Field[float64]{Invalid[float64](), Valid(1.0)}
	classes := []Classification{Regular, TriggerFallingEdge, Other}
	var f Formatter
	for _, tm := range times {
		for _, lat := range values {
			for _, lon := range values {
				for _, dist := range values {
					for _, class := range classes {
						u := Update{Time: tm, Lat: lat, Lon: lon, Dist2D: dist, Class: class}
						line := f.Format(u)
						if !strings.HasSuffix(line, "\n") {
							t.Fatalf("line %q is not newline terminated", line)
						}
						cols := strings.Split(strings.TrimSuffix(line, "\n"), ",")
						if len(cols) != Columns {
							t.Fatalf("line %q has %d columns, want %d", line, len(cols), Columns)
						}
						if !tm.IsValid() && (cols[0] != "" || cols[1] != "") {
							t.Fatalf("invalid time rendered as %q,%q", cols[0], cols[1])
						}
						if again := f.Format(u); again != line {
							t.Fatalf("Format not idempotent: %q vs %q", line, again)
						}
					}
				}
			}
		}
	}
}

func TestFormatLocation(t *testing.T) {
	f := Formatter{Location: time.FixedZone("PLUS1", 3600)}
	got := f.Format(Update{Time: Valid(Time{Seconds: 0})})
	if want := "     0.000,1980-01-06 01:00:00.000,,,\n"; got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestClassificationString(t *testing.T) {
	if Regular.String() != "regular" || TriggerFallingEdge.String() != "trigger-falling-edge" || Other.String() != "other" {
		t.Fatalf("unexpected classification names")
	}
}
