package logbuffer

import (
	"encoding/json"

	"github.com/scada-tools/iec104-logreplay/logline"
)

// marshalWithType encodes rec and adds its $type discriminator field.
func marshalWithType(rec Record) ([]byte, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	tag, err := json.Marshal(rec.TypeTag())
	if err != nil {
		return nil, err
	}
	fields["$type"] = tag
	return json.Marshal(fields)
}

type typeProbe struct {
	Type string `json:"$type"`
}

// decodeEnvelope reads one persisted JSON line. An unrecognised $type
// degrades to the base LogEntry shape rather than failing.
func decodeEnvelope(line []byte) (Record, error) {
	var probe typeProbe
	if err := json.Unmarshal(line, &probe); err != nil {
		return nil, err
	}
	switch probe.Type {
	case "ModbusLogEntry":
		var rec logline.ModbusRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, err
		}
		return rec, nil
	case "PowerLogEntry":
		var rec logline.PowerRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, err
		}
		return rec, nil
	default:
		var rec logline.LogRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, err
		}
		return rec, nil
	}
}
