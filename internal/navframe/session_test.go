package navframe

import (
	"errors"
	"testing"

	"example.com/navtext/internal/decoder"
	"example.com/navtext/internal/record"
)

func feedAll(t *testing.T, s *Session, data []byte) []record.Update {
	t.Helper()
	var out []record.Update
	for _, b := range data {
		if s.Feed(b) == decoder.UpdateAvailable {
			out = append(out, s.Update())
		}
	}
	return out
}

func newSession(t *testing.T, opts Options) *Session {
	t.Helper()
	s, err := NewSession(opts)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestNewSessionOptions(t *testing.T) {
	for _, fallback := range []string{"", OffsetLeap, OffsetZero} {
		if _, err := NewSession(Options{OffsetFallback: fallback}); err != nil {
			t.Fatalf("NewSession(%q): %v", fallback, err)
		}
	}
	_, err := NewSession(Options{OffsetFallback: "gmt"})
	if !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions, got %v", err)
	}
}

func TestDecodeFrame(t *testing.T) {
	s := newSession(t, Options{})
	frame := Encode(Frame{
		Kind:      KindRegular,
		Flags:     FlagTime | FlagUTCOffset | FlagLat | FlagDist2D,
		Time:      1300000000.25,
		UTCOffset: -18,
		Lat:       51.5,
		Lon:       -1.25,
		Dist2D:    42.125,
	})
	updates := feedAll(t, s, frame)
	if len(updates) != 1 {
		t.Fatalf("decoded %d updates, want 1", len(updates))
	}
	u := updates[0]
	if u.Class != record.Regular {
		t.Fatalf("class = %v, want regular", u.Class)
	}
	ts, ok := u.Time.Get()
	if !ok || ts.Seconds != 1300000000.25 || ts.UTCOffset != -18 {
		t.Fatalf("time = %+v, %v", ts, ok)
	}
	if lat, ok := u.Lat.Get(); !ok || lat != 51.5 {
		t.Fatalf("lat = %v, %v", lat, ok)
	}
	if u.Lon.IsValid() {
		t.Fatalf("lon should be invalid without FlagLon")
	}
	if d, ok := u.Dist2D.Get(); !ok || d != 42.125 {
		t.Fatalf("dist2d = %v, %v", d, ok)
	}
	c := s.Counters()
	if c.Bytes != FrameSize || c.Packets != 1 || c.Skipped != 0 {
		t.Fatalf("counters = %+v", c)
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		kind uint8
		want record.Classification
	}{
		{KindRegular, record.Regular},
		{KindTriggerFalling, record.TriggerFallingEdge},
		{KindTriggerRising, record.Other},
		{KindStatus, record.Other},
		{0x7F, record.Other},
	}
	for _, tc := range tests {
		s := newSession(t, Options{})
		updates := feedAll(t, s, Encode(Frame{Kind: tc.kind}))
		if len(updates) != 1 || updates[0].Class != tc.want {
			t.Fatalf("kind 0x%02X: updates = %+v, want class %v", tc.kind, updates, tc.want)
		}
	}
}

func TestOffsetFallback(t *testing.T) {
	const sat = 1300000000.0
	frame := Encode(Frame{Kind: KindRegular, Flags: FlagTime, Time: sat})

	leap := feedAll(t, newSession(t, Options{OffsetFallback: OffsetLeap}), frame)
	if ts, _ := leap[0].Time.Get(); ts.UTCOffset != -18 {
		t.Fatalf("leap fallback offset = %v, want -18", ts.UTCOffset)
	}
	zero := feedAll(t, newSession(t, Options{OffsetFallback: OffsetZero}), frame)
	if ts, _ := zero[0].Time.Get(); ts.UTCOffset != 0 {
		t.Fatalf("zero fallback offset = %v, want 0", ts.UTCOffset)
	}
}

func TestResyncAfterCorruptFrame(t *testing.T) {
	good := Encode(Frame{Kind: KindRegular, Flags: FlagLat, Lat: 10})
	bad := Encode(Frame{Kind: KindRegular, Flags: FlagLat, Lat: 20})
	bad[20] ^= 0xFF

	var stream []byte
	stream = append(stream, 0x01, 0x02, 0x03)
	stream = append(stream, bad...)
	stream = append(stream, good...)

	s := newSession(t, Options{})
	updates := feedAll(t, s, stream)
	if len(updates) != 1 {
		t.Fatalf("decoded %d updates, want 1", len(updates))
	}
	if lat, _ := updates[0].Lat.Get(); lat != 10 {
		t.Fatalf("lat = %v, want 10", lat)
	}
	c := s.Counters()
	if c.Bytes != uint64(len(stream)) {
		t.Fatalf("bytes = %d, want %d", c.Bytes, len(stream))
	}
	if c.Packets != 1 {
		t.Fatalf("packets = %d, want 1", c.Packets)
	}
	if c.Skipped != uint64(3+FrameSize) {
		t.Fatalf("skipped = %d, want %d", c.Skipped, 3+FrameSize)
	}
	if s.Pending() != 0 {
		t.Fatalf("pending = %d, want 0", s.Pending())
	}
}

func TestNoSyncSkipsEverything(t *testing.T) {
	s := newSession(t, Options{})
	data := make([]byte, 10000)
	for i := range data {
		data[i] = byte(i % 0xE0)
	}
	if updates := feedAll(t, s, data); len(updates) != 0 {
		t.Fatalf("decoded %d updates from noise", len(updates))
	}
	c := s.Counters()
	if c.Skipped != c.Bytes || c.Bytes != uint64(len(data)) {
		t.Fatalf("counters = %+v", c)
	}
}

func TestClose(t *testing.T) {
	s := newSession(t, Options{})
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); err == nil {
		t.Fatalf("expected error on second Close")
	}
}
