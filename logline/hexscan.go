package logline

import (
	"strconv"
	"strings"
)

// hexNibble converts one ASCII hex digit to its value by subtraction,
// avoiding a lookup table.
func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// scanHexPairs walks s, skipping non-hex bytes one at a time and converting
// every adjacent pair of hex digits it finds into a byte. A hex digit with
// no hex digit immediately after it is skipped rather than paired. Scanning
// stops once cap pairs have been collected, or at the end of s when cap<0.
func scanHexPairs(s string, cap int) []byte {
	out := make([]byte, 0, len(s)/3)
	for i := 0; i < len(s); {
		if cap >= 0 && len(out) >= cap {
			break
		}
		hi, ok := hexNibble(s[i])
		if !ok {
			i++
			continue
		}
		if i+1 >= len(s) {
			break
		}
		lo, ok2 := hexNibble(s[i+1])
		if !ok2 {
			i++
			continue
		}
		out = append(out, hi<<4|lo)
		i += 2
	}
	return out
}

// scanHexGreedy is the IEC variant: collect every two-char hex pair in s.
func scanHexGreedy(s string) []byte {
	return scanHexPairs(s, -1)
}

const lengthLiteral = " Length"

// scanHexLengthGated is the Modbus variant: find the literal " Length",
// take the decimal run after it up to the next tab as the declared byte
// count, then scan greedy hex pairs from the byte stream after that tab,
// capped at the declared count. It returns an empty (never nil) slice if
// the literal is absent, the tab is missing, or the declared length fails
// to parse.
func scanHexLengthGated(tail string) []byte {
	idx := strings.Index(tail, lengthLiteral)
	if idx < 0 {
		return []byte{}
	}
	rest := tail[idx+len(lengthLiteral):]

	tabIdx := strings.IndexByte(rest, '\t')
	if tabIdx < 0 {
		return []byte{}
	}

	declared, err := strconv.Atoi(strings.TrimSpace(rest[:tabIdx]))
	if err != nil {
		return []byte{}
	}

	return scanHexPairs(rest[tabIdx+1:], declared)
}
