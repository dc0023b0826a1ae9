package rotlog

import (
	"fmt"
	"strconv"
	"strings"
)

// Severity follows the RFC 5424 ordering: lower values are more severe.
// LevelOff is not a message severity; it only serves as a threshold that
// suppresses all output.
type Severity int

const (
	LevelEmergency Severity = iota
	LevelAlert
	LevelCritical
	LevelError
	LevelWarning
	LevelNotice
	LevelInfo
	LevelDebug
	LevelOff
)

var severityNames = [...]string{
	LevelEmergency: "EMERGENCY",
	LevelAlert:     "ALERT",
	LevelCritical:  "CRITICAL",
	LevelError:     "ERROR",
	LevelWarning:   "WARNING",
	LevelNotice:    "NOTICE",
	LevelInfo:      "INFO",
	LevelDebug:     "DEBUG",
	LevelOff:       "OFF",
}

// Short syslog-style spellings accepted by ParseSeverity.
var severityAliases = map[string]Severity{
	"EMERG": LevelEmergency,
	"CRIT":  LevelCritical,
	"ERR":   LevelError,
	"WARN":  LevelWarning,
}

// Valid reports whether s is one of the nine defined values, LevelOff included.
func (s Severity) Valid() bool {
	return s >= LevelEmergency && s <= LevelOff
}

func (s Severity) String() string {
	if !s.Valid() {
		return fmt.Sprintf("UNKNOWN(%d)", int(s))
	}
	return severityNames[s]
}

// ParseSeverity accepts a severity name in any case, a short alias such as
// "warn" or "crit", or a decimal rank between 0 and 8.
func ParseSeverity(str string) (Severity, error) {
	str = strings.ToUpper(strings.TrimSpace(str))

	for i, n := range severityNames {
		if n == str {
			return Severity(i), nil
		}
	}
	if s, ok := severityAliases[str]; ok {
		return s, nil
	}

	if rank, err := strconv.Atoi(str); err == nil {
		if s := Severity(rank); s.Valid() {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSeverity, str)
}

func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSeverity, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// UnmarshalJSON takes either a quoted name or a bare rank.
func (s *Severity) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = unquoted
	} else if len(text) >= 2 && text[0] == '\'' && text[len(text)-1] == '\'' {
		text = text[1 : len(text)-1]
	}
	return s.UnmarshalText([]byte(text))
}
