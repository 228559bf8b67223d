// Package logbuffer implements the Log Buffer external collaborator: an
// in-memory or disk-backed store of parsed log records, selected by an
// estimated-size factory.
package logbuffer

import "github.com/scada-tools/iec104-logreplay/logline"

// Record is any record the buffer can hold. The persisted-JSON `$type`
// discriminator comes from TypeTag.
type Record interface {
	TypeTag() string
}

var (
	_ Record = logline.LogRecord{}
	_ Record = logline.ModbusRecord{}
	_ Record = logline.PowerRecord{}
)

// LB is the Log Buffer contract: insert / find / remove / count / dispose.
type LB interface {
	Add(rec Record) error
	Find(predicate func(Record) bool) ([]Record, error)
	Remove(rec Record) error
	Count() int
	Dispose() error
}
