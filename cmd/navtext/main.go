package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"example.com/navtext/internal/common"
	"example.com/navtext/internal/config"
	"example.com/navtext/internal/convert"
	"example.com/navtext/internal/decoder"
	"example.com/navtext/internal/gpstime"
	"example.com/navtext/internal/manifest"
	"example.com/navtext/internal/navframe"
	"example.com/navtext/internal/record"
	"example.com/navtext/internal/report"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `Usage: navtext [options] <input file> <output file> [<trigger file>]

Options:
`)
	fs.PrintDefaults()
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("navtext", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	tz := fs.String("tz", "", "timezone for the calendar column: UTC, Local or an IANA name")
	offsetFallback := fs.String("utc-offset-fallback", "", "UTC offset for frames without one: leap or zero")
	progressEvery := fs.Uint64("progress-every", 0, "progress report interval in input bytes")
	quiet := fs.Bool("quiet", false, "suppress progress and log output on the terminal")
	manifestOut := fs.String("manifest", "", "write a sha256 manifest of input and outputs")
	summaryJSON := fs.String("summary-json", "", "write a JSON run summary")
	summaryPDF := fs.String("summary-pdf", "", "write a PDF run summary")
	showVersion := fs.Bool("version", false, "print version and exit")
	fs.Usage = func() { usage(stderr, fs) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *showVersion {
		fmt.Fprintf(stdout, "navtext %s (built %s)\n", version, buildDate)
		return 0
	}

	fmt.Fprintf(stdout, "navtext: Converts navigation frame data to text. (ID: %s)\n", version)
	if fs.NArg() != 2 && fs.NArg() != 3 {
		usage(stderr, fs)
		return 2
	}
	inPath, outPath := fs.Arg(0), fs.Arg(1)
	trigPath := ""
	if fs.NArg() == 3 {
		trigPath = fs.Arg(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: load config: %v\n", err)
			return 1
		}
	}
	if *tz != "" {
		cfg.Timezone = *tz
	}
	if *offsetFallback != "" {
		cfg.OffsetFallback = *offsetFallback
	}
	if *progressEvery != 0 {
		cfg.ProgressEvery = *progressEvery
	}
	if *quiet {
		cfg.Logs.Quiet = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	loc, err := gpstime.Location(cfg.Timezone)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	closeLog, err := common.SetupLogging(cfg.Logs)
	if err != nil {
		fmt.Fprintf(stderr, "Error: setup logging: %v\n", err)
		return 1
	}
	defer closeLog()

	opts := convert.Options{
		Formatter:   record.Formatter{Location: loc},
		ReportEvery: cfg.ProgressEvery,
	}
	progress := common.NewProgress(stdout)
	if !*quiet {
		opts.Progress = progress
	}

	started := time.Now()
	res, err := convert.ConvertFiles(convert.FileOptions{
		InputPath:   inPath,
		OutputPath:  outPath,
		TriggerPath: trigPath,
		NewSession: func() (decoder.Session, error) {
			return navframe.NewSession(navframe.Options{OffsetFallback: cfg.OffsetFallback})
		},
		Options: opts,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	elapsed := progress.Elapsed()
	common.Logf("converted %s: %d packets, %d regular, %d trigger, %d skipped bytes",
		common.FormatThroughput(res.Counters.Bytes, elapsed),
		res.Counters.Packets, res.Primary, res.Trigger, res.Counters.Skipped)

	if *summaryJSON != "" || *summaryPDF != "" {
		sum := report.Summary{
			Input:     inPath,
			Output:    outPath,
			Trigger:   trigPath,
			Timezone:  cfg.Timezone,
			StartedAt: started.UTC(),
		}
		sum.FromResult(res, elapsed)
		if hash, _, err := common.Sha256OfFile(inPath); err == nil {
			sum.InputSha256 = hash
		} else {
			common.Logf("hash input: %v", err)
		}
		if *summaryJSON != "" {
			if err := report.SaveSummaryJSON(sum, *summaryJSON); err != nil {
				fmt.Fprintf(stderr, "Error: write summary: %v\n", err)
				return 1
			}
		}
		if *summaryPDF != "" {
			if err := report.SaveSummaryPDF(sum, *summaryPDF); err != nil {
				fmt.Fprintf(stderr, "Error: write summary pdf: %v\n", err)
				return 1
			}
		}
	}

	if *manifestOut != "" {
		m, err := manifest.Build([]manifest.Entry{
			{Path: inPath, Role: "input"},
			{Path: outPath, Role: "output"},
			{Path: trigPath, Role: "trigger"},
			{Path: *summaryJSON, Role: "summary"},
			{Path: *summaryPDF, Role: "summary"},
		})
		if err != nil {
			fmt.Fprintf(stderr, "Error: build manifest: %v\n", err)
			return 1
		}
		if err := manifest.Save(m, *manifestOut); err != nil {
			fmt.Fprintf(stderr, "Error: write manifest: %v\n", err)
			return 1
		}
	}
	return 0
}
