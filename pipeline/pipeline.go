// Package pipeline wires the Parser Selector, the Modbus/Power line
// parsers, the Log Buffer, the Frame Assembler, and the IEC 104 APDU
// decoder into the single end-to-end driver the data-flow diagram
// describes: raw line -> PS -> MLP|PLP -> LB -> FA (power only) -> AD ->
// PD -> IED -> typed result list.
package pipeline

import (
	"time"

	"github.com/scada-tools/iec104-logreplay/frame"
	"github.com/scada-tools/iec104-logreplay/iec104"
	"github.com/scada-tools/iec104-logreplay/logbuffer"
	"github.com/scada-tools/iec104-logreplay/logline"
	"github.com/sirupsen/logrus"
)

var _lg = logrus.New()

func SetLogger(lg *logrus.Logger) { _lg = lg }

// Pipeline is a single-threaded, cooperative driver: it must be fed lines
// in log-arrival order by one caller, and owns its buffer and assembler
// exclusively (see the core's concurrency model — shard across pipelines
// for parallelism, never share one).
type Pipeline struct {
	lb      logbuffer.LB
	asm     *frame.Assembler
	frames  []frame.PowerFrame
	results []iec104.Result
}

// New builds a pipeline backed by lb. lb may be nil to skip buffering
// entirely (useful for tests that only care about decoded results).
func New(lb logbuffer.LB) *Pipeline {
	return &Pipeline{lb: lb, asm: frame.NewAssembler()}
}

// Ingest feeds one raw log line through the pipeline. Modbus lines are
// parsed and buffered but never IEC-decoded (Modbus and IEC 104 are
// distinct wire protocols; only the power trace describes IEC traffic).
// Power lines are parsed, buffered, and handed to the frame assembler;
// every frame the assembler completes is immediately APDU-decoded.
// Unrecognised lines are dropped with a Warn log, never an error.
func (p *Pipeline) Ingest(line string) error {
	switch logline.Select(line) {
	case logline.ParserModbus:
		rec, ok := logline.ParseModbusLine(line)
		if !ok {
			_lg.Warn("pipeline: header-invalid modbus line dropped")
			return nil
		}
		return p.buffer(rec)

	case logline.ParserPower:
		rec, ok := logline.ParsePowerLine(line)
		if !ok {
			_lg.Warn("pipeline: header-invalid power line dropped")
			return nil
		}
		if err := p.buffer(rec); err != nil {
			return err
		}
		for _, f := range p.asm.Ingest(rec) {
			p.consumeFrame(f)
		}
		return nil

	default:
		_lg.WithField("line", line).Warn("pipeline: unrecognised line dropped")
		return nil
	}
}

func (p *Pipeline) buffer(rec logbuffer.Record) error {
	if p.lb == nil {
		return nil
	}
	return p.lb.Add(rec)
}

func (p *Pipeline) consumeFrame(f frame.PowerFrame) {
	p.frames = append(p.frames, f)
	p.results = append(p.results, iec104.Decode(f.Data, receiveTime(f))...)
}

func receiveTime(f frame.PowerFrame) time.Time {
	if !f.Timestamp.IsZero() {
		return f.Timestamp
	}
	return time.Now()
}

// Drain flushes any still-open power frame through the decoder and
// returns every decoded result accumulated so far, resetting the
// accumulator.
func (p *Pipeline) Drain() []iec104.Result {
	for _, f := range p.asm.Finalize() {
		p.consumeFrame(f)
	}
	out := p.results
	p.results = nil
	return out
}

// DrainFrames returns every reassembled PowerFrame accumulated so far
// (complete or not), resetting the accumulator. Call Drain first if an
// in-flight frame should be flushed.
func (p *Pipeline) DrainFrames() []frame.PowerFrame {
	out := p.frames
	p.frames = nil
	return out
}
