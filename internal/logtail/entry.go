package logtail

import (
	"regexp"
	"strings"
	"time"
)

// Level is a log severity. The zero value is LevelUnknown.
type Level int

const (
	LevelUnknown Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelUnknown: "-",
	LevelDebug:   "DEBUG",
	LevelInfo:    "INFO",
	LevelWarn:    "WARN",
	LevelError:   "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "-"
}

// ParseLevel maps common level spellings onto a Level.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE", "DEBUG", "DBG":
		return LevelDebug
	case "INFO", "INF", "NOTICE":
		return LevelInfo
	case "WARN", "WARNING", "WRN":
		return LevelWarn
	case "ERROR", "ERR", "FATAL", "CRITICAL", "PANIC":
		return LevelError
	default:
		return LevelUnknown
	}
}

// Entry is one parsed log record. Indented continuation lines are collected
// in Details.
type Entry struct {
	Line      int // 1-based line number of the record's first line
	Timestamp time.Time
	RawTime   string
	Level     Level
	Component string
	Message   string
	Details   []string
	Raw       string
}

// MatchLevel reports whether e passes a minimum-severity filter. A min of
// LevelUnknown matches everything; entries with no level only pass that.
func (e Entry) MatchLevel(min Level) bool {
	if min == LevelUnknown {
		return true
	}
	return e.Level >= min
}

var (
	timestampRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(?:[.,]\d+)?(?:Z|[+-]\d{2}:?\d{2})?)\s*`)
	levelRe     = regexp.MustCompile(`^\[?(TRACE|DEBUG|DBG|INFO|INF|NOTICE|WARN|WARNING|WRN|ERROR|ERR|FATAL|CRITICAL|PANIC)\]?(?:\s+|:\s*|$)`)
	componentRe = regexp.MustCompile(`^\[([^\]]+)\]\s*`)
	separatorRe = regexp.MustCompile(`^(?:–|-|:)\s*`)
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05,000",
	"2006-01-02 15:04:05",
}

// Parse splits a single line into an Entry. Parts that are absent stay zero;
// the unparsed remainder becomes the message.
func Parse(line string) Entry {
	entry := Entry{Raw: line}
	rest := strings.TrimSpace(line)

	if m := timestampRe.FindStringSubmatch(rest); m != nil {
		entry.RawTime = m[1]
		entry.Timestamp = parseTime(m[1])
		rest = rest[len(m[0]):]
	}
	if m := levelRe.FindStringSubmatch(rest); m != nil {
		entry.Level = ParseLevel(m[1])
		rest = rest[len(m[0]):]
	}
	if m := componentRe.FindStringSubmatch(rest); m != nil {
		entry.Component = strings.TrimSpace(m[1])
		rest = rest[len(m[0]):]
	}
	rest = separatorRe.ReplaceAllString(rest, "")
	entry.Message = strings.TrimSpace(rest)
	return entry
}

// ParseLines parses lines into entries, folding indented lines into the
// preceding entry's Details. Blank lines are dropped.
func ParseLines(lines []string) []Entry {
	entries := make([]Entry, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if isContinuation(line) && len(entries) > 0 {
			last := &entries[len(entries)-1]
			detail := strings.TrimPrefix(strings.TrimSpace(line), "- ")
			last.Details = append(last.Details, detail)
			continue
		}
		entry := Parse(line)
		entry.Line = i + 1
		entries = append(entries, entry)
	}
	return entries
}

func isContinuation(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

func parseTime(raw string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
