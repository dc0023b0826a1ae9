package rotlog

import (
	"strconv"
	"time"

	"github.com/fatih/color"
)

// TimestampFormat is the layout of the first field of every line. Times are converted to UTC.
const TimestampFormat = "2006-01-02 15:04:05 UTC"

// levelColors is used only for stdout output with Config.Color set.
var levelColors = map[Severity]*color.Color{
	LevelEmergency: colored(color.FgHiWhite, color.BgRed, color.Bold),
	LevelAlert:     colored(color.FgHiRed, color.Bold),
	LevelCritical:  colored(color.FgRed, color.Bold),
	LevelError:     colored(color.FgRed),
	LevelWarning:   colored(color.FgYellow),
	LevelNotice:    colored(color.FgCyan),
	LevelInfo:      colored(color.FgGreen),
	LevelDebug:     colored(color.FgHiBlack),
}

// colored forces escape codes: Config.Color is an explicit request, whatever the terminal.
func colored(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// serializer assembles log lines into a reusable buffer
type serializer struct {
	buf   []byte
	color bool
}

func newSerializer() *serializer {
	return &serializer{
		buf: make([]byte, 0, 256),
	}
}

// reset clears the serializer buffer for reuse
func (s *serializer) reset() {
	s.buf = s.buf[:0]
}

// serialize builds "<timestamp> <pid> [<LEVEL>] <message>\n". The message is copied verbatim.
func (s *serializer) serialize(ts time.Time, pid int, level Severity, msg string) []byte {
	s.reset()

	s.buf = ts.UTC().AppendFormat(s.buf, TimestampFormat)
	s.buf = append(s.buf, ' ')

	s.buf = strconv.AppendInt(s.buf, int64(pid), 10)
	s.buf = append(s.buf, ' ')

	s.writeLevel(level)
	s.buf = append(s.buf, ' ')

	s.buf = append(s.buf, msg...)
	s.buf = append(s.buf, '\n')
	return s.buf
}

func (s *serializer) writeLevel(level Severity) {
	field := "[" + level.String() + "]"
	if c, ok := levelColors[level]; ok && s.color {
		field = c.Sprint(field)
	}
	s.buf = append(s.buf, field...)
}

// FormatLine returns a single log line without the trailing newline.
func FormatLine(ts time.Time, pid int, level Severity, msg string) string {
	line := newSerializer().serialize(ts, pid, level, msg)
	return string(line[:len(line)-1])
}
