package logline

// ParserKind identifies which protocol-specific parser a raw line routed to.
type ParserKind int

const (
	ParserUnknown ParserKind = iota
	ParserModbus
	ParserPower
)

func (k ParserKind) String() string {
	switch k {
	case ParserModbus:
		return "Modbus"
	case ParserPower:
		return "Power"
	default:
		return "Unknown"
	}
}

// Select fingerprints a raw line and reports which parser it belongs to.
// Modbus is checked first: a line can in principle carry both fingerprints,
// and IOServer/DCB= traces never also carry [iec870ip.
func Select(line string) ParserKind {
	switch {
	case IsModbusLine(line):
		return ParserModbus
	case IsPowerLine(line):
		return ParserPower
	default:
		return ParserUnknown
	}
}
