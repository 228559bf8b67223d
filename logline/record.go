// Package logline extracts structured records from the tab-delimited debug
// log lines emitted by SCADA gateways, and scans the raw hex byte trailers
// those lines carry.
package logline

import "time"

// LogRecord holds the ten tab-delimited header fields common to every line,
// plus whatever message text follows them. All textual fields default to
// the empty string, never a nil-like sentinel.
type LogRecord struct {
	Timestamp time.Time `json:"timestamp"`
	TimeZone  string    `json:"timeZone"`
	Level     string    `json:"level"`
	Module    string    `json:"module"`
	ThreadID  string    `json:"threadId"`
	Source    string    `json:"source"`
	Function  string    `json:"function"`
	File      string    `json:"file"`
	FilePath  string    `json:"filePath"`
	Line      int       `json:"line"`
	Message   string    `json:"message"`
	Payload   []byte    `json:"payload,omitempty"`
}

func (r LogRecord) Header() LogRecord { return r }

// TypeTag returns the persisted-JSON `$type` discriminator for this record.
func (LogRecord) TypeTag() string { return "LogEntry" }

// ModbusRecord extends LogRecord with the fields the Modbus Line Parser
// extracts from a request/reply trace line.
type ModbusRecord struct {
	LogRecord
	Action         string `json:"action"`
	DCB            string `json:"dcb,omitempty"`
	ID             string `json:"id,omitempty"`
	ExpectedLength int    `json:"expectedLength,omitempty"`
	HasLength      bool   `json:"-"`
}

func (ModbusRecord) TypeTag() string { return "ModbusLogEntry" }

// PowerRecord extends LogRecord with the fields the Power Line Parser
// extracts from an IEC 104 transport trace line.
type PowerRecord struct {
	LogRecord
	Channel        int    `json:"channel,omitempty"`
	SequenceNumber int    `json:"sequenceNumber,omitempty"`
	DelayACK       bool   `json:"delayAck"`
	Action         string `json:"action"`
	ExpectedLength int    `json:"expectedLength,omitempty"`
	HasLength      bool   `json:"-"`
}

func (PowerRecord) TypeTag() string { return "PowerLogEntry" }
