package logline

import (
	"testing"
	"time"
)

func Test_stripBrackets(t *testing.T) {
	tests := []struct {
		name string
		args string
		want string
	}{
		{"bracketed with trailing space", "[533 ]", "533"},
		{"bracketed plain", "[CORE]", "CORE"},
		{"bracketed with interior padding", "[IOServer        ]", "IOServer"},
		{"not bracketed", "0x11fc", "0x11fc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripBrackets(tt.args); got != tt.want {
				t.Errorf("stripBrackets() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Scenario 1 (header portion): Modbus request round-trip.
func Test_ExtractHeader_scenario1(t *testing.T) {
	line := "2023-03-17 07:18:24.250\t+08:00\t[TRACE]\t[CORE       ]\t[0x11fc]\t[IOServer        ]\t[(GLOBAL)        ]\t[DrvDebug()…]\t[dsp_fmt.cpp]\t[533 ]\tRequest, DCB=0x1093b93c, ID=0x00de Length 12\t00 DE 00 00 00 06 FF 03 00 00 00 2D\t"

	rec, tail, ok := ExtractHeader(line)
	if !ok {
		t.Fatal("ExtractHeader() ok = false, want true")
	}
	if rec.Level != "TRACE" {
		t.Errorf("Level = %q, want TRACE", rec.Level)
	}
	if rec.Module != "CORE" {
		t.Errorf("Module = %q, want CORE", rec.Module)
	}
	if rec.ThreadID != "0x11fc" {
		t.Errorf("ThreadID = %q, want 0x11fc", rec.ThreadID)
	}
	if rec.Source != "IOServer" {
		t.Errorf("Source = %q, want IOServer", rec.Source)
	}
	if rec.FilePath != "dsp_fmt.cpp" {
		t.Errorf("FilePath = %q, want dsp_fmt.cpp", rec.FilePath)
	}
	if rec.Line != 533 {
		t.Errorf("Line = %d, want 533", rec.Line)
	}
	want := time.Date(2023, time.March, 17, 7, 18, 24, 250*int(time.Millisecond), time.FixedZone("", 8*3600))
	if !rec.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", rec.Timestamp, want)
	}
	if tail == "" {
		t.Error("tail is empty, want the message tail")
	}
}

func Test_ExtractHeader_tooFewFields(t *testing.T) {
	_, _, ok := ExtractHeader("2023-03-17 07:18:24.250\t+08:00\tnot enough tabs")
	if ok {
		t.Error("ExtractHeader() ok = true, want false for malformed header")
	}
}

func Test_ExtractHeader_badTimestamp(t *testing.T) {
	line := "not-a-timestamp\t+08:00\t[TRACE]\t[CORE]\t[0x1]\t[S]\t[F]\t[FI]\t[FP]\t[1]\tmsg\t"
	_, _, ok := ExtractHeader(line)
	if ok {
		t.Error("ExtractHeader() ok = true, want false for unparseable timestamp")
	}
}
