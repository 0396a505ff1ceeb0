package navframe

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"example.com/navtext/internal/decoder"
	"example.com/navtext/internal/gpstime"
	"example.com/navtext/internal/record"
)

var ErrInvalidOptions = errors.New("navframe: invalid options")

// Offset policies applied to frames without FlagUTCOffset.
const (
	OffsetLeap = "leap" // leap second table
	OffsetZero = "zero" // keep GPS time
)

type Options struct {
	OffsetFallback string
}

// Session decodes a navframe byte stream. It implements decoder.Session.
type Session struct {
	opts     Options
	buf      [FrameSize]byte
	n        int
	counters decoder.Counters
	update   record.Update
	closed   bool
}

var _ decoder.Session = (*Session)(nil)

func NewSession(opts Options) (*Session, error) {
	switch strings.TrimSpace(opts.OffsetFallback) {
	case "":
		opts.OffsetFallback = OffsetLeap
	case OffsetLeap, OffsetZero:
		opts.OffsetFallback = strings.TrimSpace(opts.OffsetFallback)
	default:
		return nil, fmt.Errorf("%w: unknown utc offset fallback %q", ErrInvalidOptions, opts.OffsetFallback)
	}
	return &Session{opts: opts}, nil
}

func (s *Session) Feed(b byte) decoder.Status {
	s.counters.Bytes++
	return s.push(b)
}

func (s *Session) push(b byte) decoder.Status {
	if s.n == 0 {
		if b != Sync {
			s.counters.Skipped++
			return decoder.NoUpdate
		}
		s.buf[0] = b
		s.n = 1
		return decoder.NoUpdate
	}
	s.buf[s.n] = b
	s.n++
	if s.n < FrameSize {
		return decoder.NoUpdate
	}
	s.n = 0
	if checksum(s.buf[:]) == s.buf[FrameSize-1] {
		s.update = s.snapshot(parseFrame(s.buf[:]))
		s.counters.Packets++
		return decoder.UpdateAvailable
	}
	// Bad checksum: drop the sync byte and look for a frame in the rest.
	s.counters.Skipped++
	var rest [FrameSize - 1]byte
	copy(rest[:], s.buf[1:])
	for _, r := range rest {
		s.push(r)
	}
	return decoder.NoUpdate
}

func (s *Session) snapshot(f Frame) record.Update {
	u := record.Update{Class: classify(f.Kind)}
	if f.Flags&FlagTime != 0 && finite(f.Time) {
		offset := f.UTCOffset
		if f.Flags&FlagUTCOffset == 0 {
			offset = 0
			if s.opts.OffsetFallback == OffsetLeap {
				offset = gpstime.LeapSeconds(f.Time)
			}
		}
		u.Time = record.Valid(record.Time{Seconds: f.Time, UTCOffset: offset})
	}
	if f.Flags&FlagLat != 0 && finite(f.Lat) {
		u.Lat = record.Valid(f.Lat)
	}
	if f.Flags&FlagLon != 0 && finite(f.Lon) {
		u.Lon = record.Valid(f.Lon)
	}
	if f.Flags&FlagDist2D != 0 && finite(f.Dist2D) {
		u.Dist2D = record.Valid(f.Dist2D)
	}
	return u
}

func classify(kind uint8) record.Classification {
	switch kind {
	case KindRegular:
		return record.Regular
	case KindTriggerFalling:
		return record.TriggerFallingEdge
	default:
		return record.Other
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Update returns the snapshot decoded by the last Feed that reported
// decoder.UpdateAvailable.
func (s *Session) Update() record.Update {
	return s.update
}

func (s *Session) Counters() decoder.Counters {
	return s.counters
}

// Pending returns the number of buffered bytes of an incomplete frame.
func (s *Session) Pending() int {
	return s.n
}

func (s *Session) Close() error {
	if s.closed {
		return errors.New("navframe: session already closed")
	}
	s.closed = true
	s.n = 0
	return nil
}
