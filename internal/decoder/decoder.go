// Package decoder defines the contract between the conversion pipeline and a
// byte-oriented navigation packet decoder.
package decoder

import "example.com/navtext/internal/record"

// Status is the result of feeding one byte to a Session.
type Status int

const (
	NoUpdate Status = iota
	UpdateAvailable
)

// Counters are the decode statistics of a Session. They never decrease
// during the lifetime of a session.
type Counters struct {
	Bytes   uint64 // bytes fed
	Packets uint64 // complete packets decoded
	Skipped uint64 // bytes that were not part of a decoded packet
}

// Session is a stateful decoder. Feed is called once per input byte; when it
// returns UpdateAvailable, Update returns the decoded snapshot, which stays
// valid until the next call to Feed. Malformed input is absorbed by the
// session and only shows up in Counters().Skipped.
type Session interface {
	Feed(b byte) Status
	Update() record.Update
	Counters() Counters
	Close() error
}
