package convert

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"example.com/navtext/internal/common"
	"example.com/navtext/internal/decoder"
)

var ErrNoInput = errors.New("convert: no input")

// SessionFactory creates the decoder session for one run.
type SessionFactory func() (decoder.Session, error)

type FileOptions struct {
	InputPath   string
	OutputPath  string
	TriggerPath string // optional
	NewSession  SessionFactory
	Options
}

// ConvertFiles converts InputPath into OutputPath and, when set, TriggerPath.
// Resources are acquired in the order input, output, trigger, session, and
// every acquired resource is released before returning, including when a
// later acquisition fails.
func ConvertFiles(fo FileOptions) (res Result, err error) {
	if strings.TrimSpace(fo.InputPath) == "" {
		return res, ErrNoInput
	}
	if strings.TrimSpace(fo.OutputPath) == "" {
		return res, errors.New("convert: no output path")
	}
	if fo.NewSession == nil {
		return res, errors.New("convert: no decoder session factory")
	}

	in, err := os.Open(fo.InputPath)
	if err != nil {
		return res, fmt.Errorf("open input file: %w", err)
	}
	defer in.Close()

	out, err := createSink(fo.OutputPath)
	if err != nil {
		return res, fmt.Errorf("open output file: %w", err)
	}
	defer closeSink(out, &err)

	var trig *sink
	if fo.TriggerPath != "" {
		trig, err = createSink(fo.TriggerPath)
		if err != nil {
			return res, fmt.Errorf("open output trigger file: %w", err)
		}
		defer closeSink(trig, &err)
	}

	sess, err := fo.NewSession()
	if err != nil {
		return res, fmt.Errorf("create decoder: %w", err)
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close decoder: %w", cerr)
		}
	}()

	sinks := Sinks{Primary: out.w}
	if trig != nil {
		sinks.Trigger = trig.w
	}
	common.Logf("converting %s -> %s", fo.InputPath, fo.OutputPath)
	return Run(bufio.NewReaderSize(in, 64*1024), sess, sinks, fo.Options)
}

type sink struct {
	f *os.File
	w *bufio.Writer
}

func createSink(path string) (*sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &sink{f: f, w: bufio.NewWriter(f)}, nil
}

// closeSink flushes and closes s, recording the first failure in errp.
func closeSink(s *sink, errp *error) {
	ferr := s.w.Flush()
	cerr := s.f.Close()
	if *errp != nil {
		return
	}
	if ferr != nil {
		*errp = fmt.Errorf("flush %s: %w", s.f.Name(), ferr)
	} else if cerr != nil {
		*errp = fmt.Errorf("close %s: %w", s.f.Name(), cerr)
	}
}
