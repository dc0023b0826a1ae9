package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"

	"github.com/LixenWraith/rotlog"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, logs one line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rotlog", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configFile := fs.String("config", "", "TOML or JSON5 configuration file")
	file := fs.String("file", "", "destination log file, empty writes to stdout")
	level := fs.String("level", "", "minimum severity threshold")
	severity := fs.String("severity", "notice", "severity of the line")
	filter := fs.Bool("filter", false, "drop lines less severe than -level")
	color := fs.Bool("color", false, "colorize the level on stdout (default: stdout is a terminal)")
	metricsFile := fs.String("metrics-file", "", "write this run's Prometheus counters in textfile format")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "Usage: rotlog [flags] message...")
		fs.PrintDefaults()
		return 2
	}

	cfg, err := loadConfig(*configFile, isTerminal(stdout))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// Flags override only when given explicitly.
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			cfg.File = *file
		case "level":
			lvl, err := rotlog.ParseSeverity(*level)
			if err != nil {
				flagErr = err
				return
			}
			cfg.Level = lvl
		case "filter":
			cfg.Filter = *filter
		case "color":
			cfg.Color = *color
		}
	})
	if flagErr != nil {
		fmt.Fprintf(stderr, "Error: %v\n", flagErr)
		return 1
	}
	sev, err := rotlog.ParseSeverity(*severity)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	reg := prometheus.NewRegistry()
	logger, err := rotlog.New(cfg, rotlog.Options{
		Stdout:  stdout,
		Metrics: rotlog.NewMetrics(reg),
	})
	if err != nil {
		if errors.Is(err, rotlog.ErrPermission) {
			fmt.Fprintln(stdout, "Invalid permissions to create directory. Halted")
		} else {
			fmt.Fprintf(stdout, "Failed to set up logger: %v\n", err)
		}
		return 1
	}

	code := 0
	if err := logger.Log(sev, strings.Join(fs.Args(), " ")); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		code = 1
	}

	if *metricsFile != "" {
		if err := prometheus.WriteToTextfile(*metricsFile, reg); err != nil {
			fmt.Fprintf(stderr, "Warning: failed to write metrics: %v\n", err)
		}
	}
	return code
}

// loadConfig layers the environment and an optional config file over the
// defaults. Color defaults to whether stdout is a terminal.
func loadConfig(path string, color bool) (*rotlog.Config, error) {
	cfg := rotlog.DefaultConfig()
	cfg.Color = color
	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}

	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
