package frame

import (
	"testing"
	"time"

	"github.com/scada-tools/iec104-logreplay/logline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(action string, line int, minute, second int, payload []byte, expectedLength int, hasLength bool) logline.PowerRecord {
	return logline.PowerRecord{
		LogRecord: logline.LogRecord{
			Timestamp: time.Date(2024, time.January, 1, 10, minute, second, 0, time.UTC),
			Line:      line,
			Payload:   payload,
		},
		Action:         action,
		ExpectedLength: expectedLength,
		HasLength:      hasLength,
	}
}

// Scenario 6: power frame assembly across continuations.
func TestAssemble_scenario6(t *testing.T) {
	records := []logline.PowerRecord{
		rec("Sending", 100, 30, 0, nil, 6, true),
		rec("", 200, 30, 5, []byte{0x68, 0x04, 0x01, 0x00, 0x58, 0x6A}, 0, false),
	}

	frames := Assemble(records)
	require.Len(t, frames, 1)
	f := frames[0]
	assert.Equal(t, "Sending", f.Direction)
	assert.True(t, f.HasExpectedLength)
	assert.Equal(t, 6, f.ExpectedLength)
	assert.Equal(t, 6, len(f.Data))
	assert.True(t, f.IsComplete())
	assert.Equal(t, []byte{0x68, 0x04, 0x01, 0x00, 0x58, 0x6A}, f.Data)
}

func TestAssemble_orphanDataSkipped(t *testing.T) {
	records := []logline.PowerRecord{
		rec("", 1, 0, 0, []byte{0xAA}, 0, false),
	}
	frames := Assemble(records)
	assert.Empty(t, frames)
}

func TestAssemble_newStartFlushesIncompleteFrame(t *testing.T) {
	records := []logline.PowerRecord{
		rec("Sending", 1, 0, 0, nil, 10, true),
		rec("", 2, 0, 1, []byte{0x01, 0x02}, 0, false),
		rec("Received", 3, 0, 2, nil, 4, true),
		rec("", 4, 0, 3, []byte{0x03, 0x04, 0x05, 0x06}, 0, false),
	}

	frames := Assemble(records)
	require.Len(t, frames, 2)
	assert.False(t, frames[0].IsComplete())
	assert.Equal(t, 2, len(frames[0].Data))
	assert.True(t, frames[1].IsComplete())
	assert.Equal(t, 4, len(frames[1].Data))
}

func TestAssemble_continuationLineMismatchRejected(t *testing.T) {
	records := []logline.PowerRecord{
		rec("Sending", 1, 0, 0, nil, 4, true),
		rec("", 2, 0, 1, []byte{0x01, 0x02}, 0, false),
		rec("", 3, 0, 1, []byte{0x03, 0x04}, 0, false), // different source line, rejected
	}

	frames := Assemble(records)
	require.Len(t, frames, 1)
	assert.Equal(t, []byte{0x01, 0x02}, frames[0].Data)
	assert.False(t, frames[0].IsComplete())
}

func TestStream_matchesAssemble(t *testing.T) {
	records := []logline.PowerRecord{
		rec("Sending", 100, 30, 0, nil, 6, true),
		rec("", 200, 30, 5, []byte{0x68, 0x04, 0x01, 0x00, 0x58, 0x6A}, 0, false),
	}

	in := make(chan logline.PowerRecord)
	go func() {
		defer close(in)
		for _, r := range records {
			in <- r
		}
	}()

	var got []PowerFrame
	for f := range Stream(in) {
		got = append(got, f)
	}

	want := Assemble(records)
	require.Equal(t, len(want), len(got))
	for i := range want {
		assert.Equal(t, want[i].Data, got[i].Data)
		assert.Equal(t, want[i].IsComplete(), got[i].IsComplete())
	}
}
