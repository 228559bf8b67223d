package iec104

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 4: U-frame StartDT confirm.
func TestDecode_UFrameStartDTConfirm(t *testing.T) {
	apdu := []byte{0x68, 0x04, 0x0B, 0x00, 0x00, 0x00}
	results := Decode(apdu, time.Time{})
	require.Len(t, results, 1)
	u, ok := results[0].(UFrameResult)
	require.True(t, ok)
	assert.Equal(t, StartDT, u.Which)
	assert.Equal(t, Confirm, u.Action)
}

// Scenario 5: S-frame ACK.
func TestDecode_SFrameAck(t *testing.T) {
	apdu := []byte{0x68, 0x04, 0x01, 0x00, 0x58, 0x6A}
	results := Decode(apdu, time.Time{})
	require.Len(t, results, 1)
	s, ok := results[0].(SFrameResult)
	require.True(t, ok)
	want := (uint16(0x58) | uint16(0x6A)<<8) >> 1 & 0x7FFF
	assert.Equal(t, want, s.ReceiveSeq)
}

func TestDecode_invalidPrefix(t *testing.T) {
	apdu := []byte{0x00, 0x04, 0x01, 0x00, 0x58, 0x6A}
	assert.Empty(t, Decode(apdu, time.Time{}))
}

func TestDecode_lengthMismatch(t *testing.T) {
	apdu := []byte{0x68, 0xFF, 0x01, 0x00, 0x58, 0x6A}
	assert.Empty(t, Decode(apdu, time.Time{}))
}

func TestDecode_tooShort(t *testing.T) {
	assert.Empty(t, Decode([]byte{0x68, 0x04, 0x01}, time.Time{}))
}

// Scenario 2: IEC single-point status, individual mode.
func Test_decodeSinglePoint_individual(t *testing.T) {
	payload := []byte{0x01, 0x00, 0x00, 0x01} // IOA=1, SIQ=0x01
	results, err := decodeSinglePoint(asduHeader{typeID: MSpNa1, ca: 1, cot: CotInrogen, sq: false, noo: 1}, payload)
	require.NoError(t, err)
	require.Len(t, results, 1)
	sr, ok := results[0].(StatusResult)
	require.True(t, ok)
	assert.Equal(t, IOA(1), sr.IOA)
	assert.Equal(t, uint8(1), sr.State)
	assert.True(t, sr.IsValid)
}

// Scenario 3: IEC packed single-point, sequence mode.
func Test_decodePackedSinglePoint_sequence(t *testing.T) {
	payload := []byte{0x10, 0x00, 0x00, 0xAA, 0x55}
	results, err := decodePackedSinglePoint(asduHeader{typeID: MPsNa1, sq: true, noo: 16}, payload)
	require.NoError(t, err)
	require.Len(t, results, 16)

	wantStates := []uint8{0, 1, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 1, 0}
	for i, r := range results {
		sr := r.(StatusResult)
		assert.Equal(t, IOA(0x10+i), sr.IOA, "element %d ioa", i)
		assert.Equal(t, wantStates[i], sr.State, "element %d state", i)
		assert.True(t, sr.IsValid)
	}
}

func Test_decodePackedSinglePoint_underflow(t *testing.T) {
	_, err := decodePackedSinglePoint(asduHeader{typeID: MPsNa1, sq: true, noo: 100}, []byte{0x00, 0x00, 0x00, 0xFF})
	require.Error(t, err)
	assert.True(t, IsErrPayloadTooShort(err))
}

// Scenario 7: IEC C_RTC_SYNC decode.
func Test_decodeTimeSync(t *testing.T) {
	payload := []byte{0x01, 0x00, 0x00, 0x6C, 0xE8, 0x3B, 0x17, 0x1F, 0x0C, 0x19}
	results, err := decodeTimeSync(asduHeader{typeID: CCsNa1, sq: false, noo: 1}, payload)
	require.NoError(t, err)
	require.Len(t, results, 1)
	tr, ok := results[0].(TimeSyncCommandResult)
	require.True(t, ok)
	assert.Equal(t, IOA(1), tr.IOA)
	want := time.Date(2025, time.December, 31, 23, 59, 59, 500*int(time.Millisecond), time.UTC)
	assert.True(t, tr.SyncTime.Equal(want))
}

func Test_dispatch_typeID20IsPackedCanonical(t *testing.T) {
	decoder, ok := dispatch[TypeID(20)]
	require.True(t, ok)
	payload := []byte{0x10, 0x00, 0x00, 0xAA, 0x55}
	results, err := decoder(asduHeader{typeID: 20, sq: true, noo: 16}, payload)
	require.NoError(t, err)
	require.Len(t, results, 16)
	_, isStatus := results[0].(StatusResult)
	assert.True(t, isStatus)
}

func Test_decodeControlCommand_select(t *testing.T) {
	payload := []byte{0x05, 0x00, 0x00, 0x81} // IOA=5, SCO: select + value 1
	results, err := decodeControlCommand(asduHeader{typeID: CScNa1, sq: false, noo: 1}, payload)
	require.NoError(t, err)
	require.Len(t, results, 1)
	cr := results[0].(ControlCommandResult)
	assert.True(t, cr.IsSelect)
	assert.Equal(t, uint8(1), cr.CommandValue)
}
