// Package convert runs the byte-by-byte conversion of a navigation stream into
// text records.
package convert

import (
	"errors"
	"fmt"
	"io"

	"example.com/navtext/internal/decoder"
	"example.com/navtext/internal/record"
)

// DefaultReportEvery is the progress cadence in input bytes.
const DefaultReportEvery = 4096

// ProgressReporter receives decode statistics. Report is called every
// ReportEvery bytes and Finish exactly once after the last byte.
type ProgressReporter interface {
	Report(c decoder.Counters)
	Finish(c decoder.Counters)
}

type Options struct {
	Formatter   record.Formatter
	Progress    ProgressReporter
	ReportEvery uint64
}

// Result summarizes a finished run.
type Result struct {
	Counters decoder.Counters
	Primary  uint64 // lines written to the primary sink
	Trigger  uint64 // lines written to the trigger sink
	Dropped  uint64 // updates not written anywhere
}

// Run feeds r to sess one byte at a time until io.EOF and routes every decoded
// update to sinks. Only read errors other than io.EOF and sink write errors
// stop the run early.
func Run(r io.ByteReader, sess decoder.Session, sinks Sinks, opts Options) (Result, error) {
	var res Result
	if r == nil {
		return res, ErrNoInput
	}
	if sess == nil {
		return res, errors.New("convert: nil decoder session")
	}
	every := opts.ReportEvery
	if every == 0 {
		every = DefaultReportEvery
	}
	finish := func() {
		res.Counters = sess.Counters()
		if opts.Progress != nil {
			opts.Progress.Finish(res.Counters)
		}
	}
	for {
		b, err := r.ReadByte()
		if err != nil {
			finish()
			if errors.Is(err, io.EOF) {
				return res, nil
			}
			return res, fmt.Errorf("read input: %w", err)
		}
		if sess.Feed(b) == decoder.UpdateAvailable {
			u := sess.Update()
			ch, err := Route(u.Class, opts.Formatter.Format(u), sinks)
			if err != nil {
				finish()
				return res, fmt.Errorf("write %s record: %w", u.Class, err)
			}
			switch ch {
			case Primary:
				res.Primary++
			case Trigger:
				res.Trigger++
			default:
				res.Dropped++
			}
		}
		if opts.Progress != nil {
			if c := sess.Counters(); c.Bytes%every == 0 {
				opts.Progress.Report(c)
			}
		}
	}
}
