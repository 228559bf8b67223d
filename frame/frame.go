// Package frame reassembles IEC 104 transport frames from a sequence of
// power-trace log records, stitching continuation lines into complete
// APDUs as the declared expected length is reached.
package frame

import (
	"time"

	"github.com/scada-tools/iec104-logreplay/logline"
)

// PowerFrame is the aggregated unit the assembler produces: a start record
// plus the continuation bytes concatenated onto it.
type PowerFrame struct {
	Direction         string
	Timestamp         time.Time
	HasExpectedLength bool
	ExpectedLength    int
	Data              []byte
	Start             logline.PowerRecord
}

// IsComplete reports data.len() >= expected_length; a frame with no
// declared expected length is always complete (no authoritative length to
// compare against).
func (f PowerFrame) IsComplete() bool {
	if !f.HasExpectedLength {
		return true
	}
	return len(f.Data) >= f.ExpectedLength
}
