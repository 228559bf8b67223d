package logline

import (
	"strconv"
	"strings"
)

// IsModbusLine reports the MLP selector fingerprint: the raw line mentions
// IOServer or carries a DCB= tag.
func IsModbusLine(line string) bool {
	return strings.Contains(line, "IOServer") || strings.Contains(line, "DCB=")
}

const replyLiteral = "Reply()"

// ParseModbusLine runs HE followed by the Modbus-specific field
// extractions. ok is false only when HE itself fails (header-invalid);
// every protocol-specific field is independently best-effort and simply
// stays at its zero value when its literal is absent.
func ParseModbusLine(line string) (rec ModbusRecord, ok bool) {
	header, tail, headerOK := ExtractHeader(line)
	if !headerOK {
		return ModbusRecord{}, false
	}
	rec.LogRecord = header
	rec.Action = extractModbusAction(tail)
	rec.DCB = extractTagged(tail, "DCB=")
	rec.ID = extractTagged(tail, "ID=")
	if n, found := extractExpectedLength(tail); found {
		rec.ExpectedLength = n
		rec.HasLength = true
	}
	rec.Payload = scanHexLengthGated(tail)
	return rec, true
}

// extractModbusAction takes the prefix of tail up to the earliest comma or
// tab, trims it, and returns it verbatim if it begins with Reply(),
// otherwise just its first whitespace-delimited token.
func extractModbusAction(tail string) string {
	end := len(tail)
	if i := strings.IndexByte(tail, ','); i >= 0 && i < end {
		end = i
	}
	if i := strings.IndexByte(tail, '\t'); i >= 0 && i < end {
		end = i
	}
	prefix := strings.TrimSpace(tail[:end])
	if prefix == "" {
		return ""
	}
	if strings.HasPrefix(prefix, replyLiteral) {
		return replyLiteral
	}
	if i := strings.IndexAny(prefix, " \t"); i >= 0 {
		return prefix[:i]
	}
	return prefix
}

// extractTagged finds literal tag in tail and returns the characters up to
// the next space or comma, with the tag prefix and surrounding whitespace
// stripped. Returns "" if tag is not present.
func extractTagged(tail, tag string) string {
	idx := strings.Index(tail, tag)
	if idx < 0 {
		return ""
	}
	rest := tail[idx+len(tag):]
	end := strings.IndexAny(rest, " ,")
	if end < 0 {
		end = len(rest)
	}
	return strings.TrimSpace(rest[:end])
}

// extractExpectedLength finds the literal "Length", skips it and following
// whitespace, and decimal-parses the run of characters up to the next
// space or tab.
func extractExpectedLength(tail string) (int, bool) {
	idx := strings.Index(tail, "Length")
	if idx < 0 {
		return 0, false
	}
	rest := strings.TrimLeft(tail[idx+len("Length"):], " \t")
	end := strings.IndexAny(rest, " \t")
	if end < 0 {
		end = len(rest)
	}
	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
