package common

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"example.com/navtext/internal/decoder"
)

// Progress prints decode statistics on a single line that is refreshed in
// place with a carriage return.
type Progress struct {
	w       io.Writer
	start   time.Time
	lastLen int
}

func NewProgress(w io.Writer) *Progress {
	return &Progress{w: w, start: time.Now()}
}

func (p *Progress) Report(c decoder.Counters) {
	if p == nil || p.w == nil {
		return
	}
	line := FormatProgressLine(c)
	pad := p.lastLen - len(line)
	p.lastLen = len(line)
	if pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	fmt.Fprintf(p.w, "\r%s", line)
}

// Finish prints the final statistics and terminates the progress line.
func (p *Progress) Finish(c decoder.Counters) {
	if p == nil || p.w == nil {
		return
	}
	p.Report(c)
	fmt.Fprintln(p.w)
}

// Elapsed is the time since the progress display was created.
func (p *Progress) Elapsed() time.Duration {
	return time.Since(p.start)
}

func FormatProgressLine(c decoder.Counters) string {
	return fmt.Sprintf("Chars Read %d, Packets Read %d, Chars Skipped %d", c.Bytes, c.Packets, c.Skipped)
}

// FormatThroughput renders bytes over d as a human readable rate.
func FormatThroughput(bytes uint64, d time.Duration) string {
	if d <= 0 {
		return humanize.IBytes(bytes) + " in 0s"
	}
	rate := uint64(float64(bytes) / d.Seconds())
	return fmt.Sprintf("%s in %s (%s/s)", humanize.IBytes(bytes), d.Round(time.Millisecond), humanize.IBytes(rate))
}
