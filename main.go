package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/pkg/profile"

	"github.com/weirdgiraffe/stationagg/internal/brc"
	"github.com/weirdgiraffe/stationagg/internal/report"
)

const defaultInput = "measurements.txt"

type config struct {
	input   string
	workers int
	sort    bool
	profile string
	verbose bool
}

var profileModes = map[string]func(*profile.Profile){
	"cpu":   profile.CPUProfile,
	"mem":   profile.MemProfile,
	"trace": profile.TraceProfile,
}

func parseConfig(args []string) (config, error) {
	cfg := config{input: defaultInput}

	fs := flag.NewFlagSet("stationagg", flag.ContinueOnError)
	fs.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "number of parallel workers")
	fs.BoolVar(&cfg.sort, "sort", true, "sort stations by name")
	fs.StringVar(&cfg.profile, "profile", "", "write a cpu, mem or trace profile to the working directory")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.input = fs.Arg(0)
	default:
		return cfg, fmt.Errorf("expected one input file, got %d", fs.NArg())
	}
	if cfg.workers < 1 {
		return cfg, fmt.Errorf("workers must be at least 1, got %d", cfg.workers)
	}
	if _, ok := profileModes[cfg.profile]; cfg.profile != "" && !ok {
		return cfg, fmt.Errorf("unknown profile mode %q", cfg.profile)
	}
	return cfg, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Solve aggregates cfg.input and writes the report to w.
func Solve(ctx context.Context, w io.Writer, cfg config, log *slog.Logger) error {
	started := time.Now()
	res, err := brc.Run(ctx, cfg.input, brc.Options{Workers: cfg.workers})
	if err != nil {
		return fmt.Errorf("failed to solve: %w", err)
	}
	aggregated := time.Since(started)

	rows := report.Rows(res.Table)
	if cfg.sort {
		report.Sort(rows)
	}
	if err := report.Write(w, rows); err != nil {
		return fmt.Errorf("failed to solve: %w", err)
	}

	log.Info("processed",
		"file", cfg.input,
		"bytes", res.Size,
		"workers", res.Workers,
		"stations", res.Table.Len(),
		"lines", res.Lines,
		"skipped", res.Skipped,
		"elapsed", time.Since(started))
	log.Debug("phases", "aggregate", aggregated, "report", time.Since(started)-aggregated)
	return nil
}

func run(args []string) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}
	log := newLogger(cfg.verbose)

	if cfg.profile != "" {
		defer profile.Start(profileModes[cfg.profile], profile.ProfilePath("."), profile.Quiet).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return Solve(ctx, os.Stdout, cfg, log)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
