package frame

import "github.com/scada-tools/iec104-logreplay/logline"

// assemblerState is the sequential state machine both Assemble and Stream
// drive. It must see records in log-arrival order and must not be shared
// across concurrent pipelines.
type assemblerState struct {
	start       *logline.PowerRecord
	buffer      []byte
	dataLine    int
	hasDataLine bool
}

func (s *assemblerState) emit() (PowerFrame, bool) {
	if s.start == nil {
		return PowerFrame{}, false
	}
	f := PowerFrame{
		Direction:         s.start.Action,
		Timestamp:         s.start.Timestamp,
		HasExpectedLength: s.start.HasLength,
		ExpectedLength:    s.start.ExpectedLength,
		Data:              append([]byte(nil), s.buffer...),
		Start:             *s.start,
	}
	*s = assemblerState{}
	return f, true
}

func isFrameStart(rec logline.PowerRecord) bool {
	return (rec.Action == "Sending" || rec.Action == "Received") && rec.HasLength && rec.ExpectedLength > 0
}

// process advances the state machine by one record and returns the frames
// (zero or one) that become ready as a result.
func (s *assemblerState) process(rec logline.PowerRecord) []PowerFrame {
	var out []PowerFrame

	if isFrameStart(rec) {
		if f, ok := s.emit(); ok {
			out = append(out, f)
		}
		start := rec
		s.start = &start
		return out
	}

	if s.start == nil {
		return out // orphan data, no open frame
	}

	if rec.Action != "" || rec.Timestamp.Minute() != s.start.Timestamp.Minute() || len(rec.Payload) == 0 {
		return out // not an eligible continuation
	}

	if !s.hasDataLine {
		s.dataLine = rec.Line
		s.hasDataLine = true
	} else if rec.Line != s.dataLine {
		return out
	}

	s.buffer = append(s.buffer, rec.Payload...)
	if s.start.HasLength && len(s.buffer) >= s.start.ExpectedLength {
		if f, ok := s.emit(); ok {
			out = append(out, f)
		}
	}
	return out
}

func (s *assemblerState) finalize() []PowerFrame {
	if f, ok := s.emit(); ok {
		return []PowerFrame{f}
	}
	return nil
}

// Assemble eagerly drains an ordered, finite sequence of PowerRecords into
// the complete list of PowerFrames it produces.
func Assemble(records []logline.PowerRecord) []PowerFrame {
	var st assemblerState
	var out []PowerFrame
	for _, r := range records {
		out = append(out, st.process(r)...)
	}
	return append(out, st.finalize()...)
}

// Assembler is the incremental counterpart to Assemble/Stream: it drives
// the same state machine one record at a time, for callers (the pipeline
// driver) that interleave ingestion with other work instead of handing
// over a finite slice or channel up front.
type Assembler struct {
	st assemblerState
}

func NewAssembler() *Assembler { return &Assembler{} }

// Ingest advances the assembler by one record and returns any frames
// (zero or one) that became ready as a result.
func (a *Assembler) Ingest(rec logline.PowerRecord) []PowerFrame {
	return a.st.process(rec)
}

// Finalize flushes a still-open frame, if any. Safe to call more than
// once; subsequent calls return nil once the state machine is empty.
func (a *Assembler) Finalize() []PowerFrame {
	return a.st.finalize()
}

// Stream is the pull-based equivalent of Assemble: it runs the same state
// machine in its own goroutine, emitting each PowerFrame as soon as its
// boundary is reached, and closes the returned channel once in closes.
func Stream(in <-chan logline.PowerRecord) <-chan PowerFrame {
	out := make(chan PowerFrame)
	go func() {
		defer close(out)
		var st assemblerState
		for r := range in {
			for _, f := range st.process(r) {
				out <- f
			}
		}
		for _, f := range st.finalize() {
			out <- f
		}
	}()
	return out
}
