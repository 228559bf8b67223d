package logline

import (
	"regexp"
	"strconv"
	"strings"
)

// IsPowerLine reports the PLP selector fingerprint.
func IsPowerLine(line string) bool {
	return strings.Contains(line, "[iec870ip")
}

var bytesAfterVerbRe = regexp.MustCompile(`\b(\d+)\s+bytes`)

// ParsePowerLine runs HE followed by the IEC-transport-specific field
// extractions. All extractions after HE are independent and best-effort.
func ParsePowerLine(line string) (rec PowerRecord, ok bool) {
	header, tail, headerOK := ExtractHeader(line)
	if !headerOK {
		return PowerRecord{}, false
	}
	rec.LogRecord = header
	rec.Channel = extractChannel(tail)
	rec.SequenceNumber = extractSequenceNumber(tail)
	rec.DelayACK = extractDelayACK(tail)
	rec.Action = extractPowerAction(tail)
	rec.Payload = scanHexGreedy(tail)
	if n, found := extractPowerExpectedLength(tail); found {
		rec.ExpectedLength = n
		rec.HasLength = true
	}
	return rec, true
}

func extractChannel(tail string) int {
	const lit = "Channel ("
	idx := strings.Index(tail, lit)
	if idx < 0 {
		return 0
	}
	rest := tail[idx+len(lit):]
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest[:end]))
	if err != nil {
		return 0
	}
	return n
}

func extractSequenceNumber(tail string) int {
	const lit = "SequenceNumber:"
	idx := strings.Index(tail, lit)
	if idx < 0 {
		return 0
	}
	rest := tail[idx+len(lit):]
	end := strings.IndexByte(rest, ',')
	if end < 0 {
		end = len(rest)
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest[:end]))
	if err != nil {
		return 0
	}
	return n
}

func extractDelayACK(tail string) bool {
	const lit = "DelayACK:"
	idx := strings.Index(tail, lit)
	if idx < 0 {
		return false
	}
	rest := tail[idx+len(lit):]
	if len(rest) == 0 {
		return false
	}
	return rest[0] == '1'
}

// extractPowerAction prefers whichever of the literals "Sending"/"Received"
// appears first in tail — these are the only values the Frame Assembler
// recognises as a frame start, so they take priority over punctuation.
// Only when neither is present does it fall back to the substring before
// the first colon, trimmed; with no colon either, it returns "".
func extractPowerAction(tail string) string {
	si, ri := strings.Index(tail, "Sending"), strings.Index(tail, "Received")
	switch {
	case si >= 0 && (ri < 0 || si < ri):
		return "Sending"
	case ri >= 0:
		return "Received"
	}
	if idx := strings.IndexByte(tail, ':'); idx >= 0 {
		return strings.TrimSpace(tail[:idx])
	}
	return ""
}

// extractPowerExpectedLength applies two heuristics, last one to match
// wins: a `\b(\d+)\s+bytes` match following Sending/Received, then a
// preference for the decimal token preceding "bytes of data" if present.
func extractPowerExpectedLength(tail string) (int, bool) {
	n, found := 0, false

	if strings.Contains(tail, "Sending") || strings.Contains(tail, "Received") {
		if m := bytesAfterVerbRe.FindStringSubmatch(tail); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				n, found = v, true
			}
		}
	}

	const lit = "bytes of data"
	if idx := strings.Index(tail, lit); idx >= 0 {
		if v, ok := decimalTokenBefore(tail[:idx]); ok {
			n, found = v, true
		}
	}

	return n, found
}

// decimalTokenBefore returns the trailing run of decimal digits in s,
// skipping back over any trailing whitespace first.
func decimalTokenBefore(s string) (int, bool) {
	s = strings.TrimRight(s, " \t")
	end := len(s)
	start := end
	for start > 0 && s[start-1] >= '0' && s[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, false
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
