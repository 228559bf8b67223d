package logline

import (
	"strconv"
	"strings"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05.000 -07:00"

// headerFields is the number of tab-delimited fields that precede the
// message tail: timestamp, tz, level, module, thread-id, source, function,
// file, file-path, source-line.
const headerFields = 10

// ExtractHeader splits line on the ten header fields described in §4.1 and
// populates rec. It returns the unprocessed tail (everything after the
// tenth tab) for use by the protocol-specific parsers, and ok=false if the
// line lacks the expected tab structure or its timestamp does not parse —
// in which case rec carries only whatever defaults it already had.
func ExtractHeader(line string) (rec LogRecord, tail string, ok bool) {
	fields := strings.SplitN(line, "\t", headerFields+1)
	if len(fields) < headerFields+1 {
		return LogRecord{}, "", false
	}

	ts, err := time.Parse(timestampLayout, fields[0]+" "+fields[1])
	if err != nil {
		return LogRecord{}, "", false
	}

	rec.Timestamp = ts
	rec.TimeZone = fields[1]
	rec.Level = stripBrackets(fields[2])
	rec.Module = stripBrackets(fields[3])
	rec.ThreadID = stripBrackets(fields[4])
	rec.Source = stripBrackets(fields[5])
	rec.Function = stripBrackets(fields[6])
	rec.File = stripBrackets(fields[7])
	rec.FilePath = stripBrackets(fields[8])
	if n, err := strconv.Atoi(stripBrackets(fields[9])); err == nil {
		rec.Line = n
	}

	tail = fields[headerFields]
	if idx := strings.IndexByte(tail, ':'); idx >= 0 {
		rec.Message = strings.TrimSpace(tail[idx+1:])
	} else {
		rec.Message = strings.TrimSpace(tail)
	}
	return rec, tail, true
}

// stripBrackets removes one layer of literal '['/']' and surrounding
// whitespace from a bracketed header field.
func stripBrackets(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	return strings.TrimSpace(s)
}
