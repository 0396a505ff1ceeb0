// Package report writes conversion run summaries as JSON and PDF.
package report

import (
	"encoding/json"
	"os"
	"time"

	"example.com/navtext/internal/convert"
)

// Summary describes one finished conversion run.
type Summary struct {
	Input       string    `json:"input"`
	InputSha256 string    `json:"inputSha256,omitempty"`
	Output      string    `json:"output"`
	Trigger     string    `json:"trigger,omitempty"`
	Timezone    string    `json:"timezone"`
	StartedAt   time.Time `json:"startedAt"`
	DurationMs  int64     `json:"durationMs"`
	Bytes       uint64    `json:"bytes"`
	Packets     uint64    `json:"packets"`
	Skipped     uint64    `json:"skipped"`
	Regular     uint64    `json:"regularLines"`
	Triggers    uint64    `json:"triggerLines"`
	Dropped     uint64    `json:"dropped"`
}

// FromResult copies the counters of res into s.
func (s *Summary) FromResult(res convert.Result, elapsed time.Duration) {
	s.DurationMs = elapsed.Milliseconds()
	s.Bytes = res.Counters.Bytes
	s.Packets = res.Counters.Packets
	s.Skipped = res.Counters.Skipped
	s.Regular = res.Primary
	s.Triggers = res.Trigger
	s.Dropped = res.Dropped
}

func SaveSummaryJSON(s Summary, out string) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(out, b, 0644)
}

func LoadSummaryJSON(path string) (Summary, error) {
	var s Summary
	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	err = json.Unmarshal(b, &s)
	return s, err
}
