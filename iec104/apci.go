package iec104

/*
APCI (Application Protocol Control Information).

Each APCI starts with a start byte with value 0x68 followed by the 8-bit
length of the remaining APDU and four control-field (CF) bytes. The frame
format is determined by the two low bits of the first control field.

  | <-   8 bits    -> |  -----
  | Start Byte (0x68) |    |
  | Length of APDU    |    |
  | Control Field 1   |   APCI
  | Control Field 2   |    |
  | Control Field 3   |    |
  | Control Field 4   |    |
  | <-   8 bits    -> |  -----
*/
const startByte = 0x68

// FrameFormat is the transmission frame format classified from CF1.
type FrameFormat int

const (
	FrameI FrameFormat = iota
	FrameS
	FrameU
	FrameInvalid
)

func (f FrameFormat) String() string {
	switch f {
	case FrameI:
		return "I"
	case FrameS:
		return "S"
	case FrameU:
		return "U"
	default:
		return "Invalid"
	}
}

// classifyFrame reads the two low bits of ctrl0: 00 or 10 is I, 01 is S,
// 11 is U.
func classifyFrame(ctrl0 byte) FrameFormat {
	switch ctrl0 & 0x03 {
	case 0x00, 0x02:
		return FrameI
	case 0x01:
		return FrameS
	case 0x03:
		return FrameU
	default:
		return FrameInvalid
	}
}

/*
parseSFrame extracts the 15-bit receive sequence number from an S-frame's
control field.

  N(R) = (ctrl2 | ctrl3 << 8) >> 1, masked to 15 bits.
*/
func parseSFrame(ctrl2, ctrl3 byte) SFrameResult {
	recv := (uint16(ctrl2) | uint16(ctrl3)<<8) >> 1
	return SFrameResult{ReceiveSeq: recv & 0x7FFF}
}

// uFrameMap maps the exact CF1 byte of a U-frame to its function and
// activate/confirm direction. Any value absent from this table is not a
// valid U-frame.
var uFrameMap = map[byte]UFrameResult{
	0x07: {Which: StartDT, Action: Activate},
	0x0B: {Which: StartDT, Action: Confirm},
	0x13: {Which: StopDT, Action: Activate},
	0x23: {Which: StopDT, Action: Confirm},
	0x43: {Which: TestDT, Action: Activate},
	0x83: {Which: TestDT, Action: Confirm},
}

// parseUFrame looks up the exact ctrl0 byte. ok is false for any value not
// in uFrameMap.
func parseUFrame(ctrl0 byte) (UFrameResult, bool) {
	r, ok := uFrameMap[ctrl0]
	return r, ok
}
