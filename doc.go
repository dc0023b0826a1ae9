// Package rotlog provides a leveled, size-rotating line logger for short-lived
// single-process programs such as sensor pollers.
//
// Features:
//   - Nine RFC 5424 style severities, EMERGENCY through DEBUG plus OFF
//   - Fixed line format: "2006-01-02 15:04:05 UTC <pid> [LEVEL] message"
//   - Output to stdout, or appended to a file whose parent directories are created on setup
//   - Size based rotation into gzip generations <file>.1.gz ... <file>.N.gz
//   - Optional severity threshold filtering
//   - Configuration from code, TOML or JSON5 files, or LOG_* environment variables
//   - Optional Prometheus counters for lines, bytes and rotations
//
// Lixen Wraith, 2024
package rotlog
