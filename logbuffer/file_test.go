package logbuffer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scada-tools/iec104-logreplay/logline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBuffer_AddFindDispose(t *testing.T) {
	b, err := NewFile(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, b.Add(logline.ModbusRecord{Action: "Request", DCB: "0x1"}))
	require.NoError(t, b.Add(logline.PowerRecord{Action: "Sending"}))
	assert.Equal(t, 2, b.Count())

	assert.True(t, strings.HasPrefix(filepath.Base(b.path), "logbuffer_"))

	found, err := b.Find(nil)
	require.NoError(t, err)
	require.Len(t, found, 2)

	modbusOnly, err := b.Find(func(r Record) bool { return r.TypeTag() == "ModbusLogEntry" })
	require.NoError(t, err)
	require.Len(t, modbusOnly, 1)
	assert.Equal(t, "0x1", modbusOnly[0].(logline.ModbusRecord).DCB)

	path := b.path
	require.NoError(t, b.Dispose())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// idempotent
	assert.NoError(t, b.Dispose())
}

func TestFileBuffer_RemoveIsNoop(t *testing.T) {
	b, err := NewFile(t.TempDir())
	require.NoError(t, err)
	defer b.Dispose()

	require.NoError(t, b.Add(logline.ModbusRecord{Action: "Request"}))
	require.NoError(t, b.Remove(logline.ModbusRecord{Action: "Request"}))
	assert.Equal(t, 1, b.Count())
}

func TestFileBuffer_TornLastLineTolerated(t *testing.T) {
	b, err := NewFile(t.TempDir())
	require.NoError(t, err)
	defer b.Dispose()

	require.NoError(t, b.Add(logline.ModbusRecord{Action: "Request"}))
	_, err = b.file.WriteString(`{"$type":"ModbusLogEntry","action":`)
	require.NoError(t, err)

	found, err := b.Find(nil)
	require.NoError(t, err)
	require.Len(t, found, 1)
}
