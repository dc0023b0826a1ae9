// Command rotlog writes a single leveled line through the rotlog logger, so
// shell-driven pollers get the same format and rotation as Go callers.
//
// Usage:
//
//	rotlog [flags] message...
//
// Flags:
//
//	-config file        TOML or JSON5 configuration file
//	-file path          destination log file (empty writes to stdout)
//	-level name|rank    minimum severity threshold
//	-severity name      severity of the line (default notice)
//	-filter             drop lines less severe than -level
//	-color              colorize the level on stdout (default: stdout is a terminal)
//	-metrics-file path  write Prometheus counters for this run in textfile format
//
// Environment:
//
//	LOG_LEVEL, LOG_FILE, LOG_MAX_SIZE, LOG_ARCHIVE_COUNT, LOG_FILTER, LOG_COLOR
//
// The metrics textfile holds the counters of a single invocation and is
// replaced on every run; the totals are not cumulative across runs.
//
// Precedence, lowest first: built-in defaults, environment, config file, flags.
// A destination whose directory cannot be created is fatal: the command prints
// the reason and exits with status 1 without writing anything.
package main
