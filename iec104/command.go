package iec104

/*
decodeControlCommand handles single (45, 58), double (46, 59), and
regulating-step (47) commands. Element body is a 1-byte SCO/DCO/RCO,
optionally followed by a CP56Time2a for the timed variants (58, 59) which
this decoder reads past but does not expose — spec.md's
ControlCommandResult carries no timestamp field.

  isSelect     = bit 7
  commandValue = bits 0..0 for single commands, bits 0..1 for double/step
*/
func decodeControlCommand(h asduHeader, payload []byte) ([]Result, error) {
	var bodyLen int
	var valueMask uint8
	switch h.typeID {
	case CScNa1:
		bodyLen, valueMask = 1, 0x01
	case CScNb1:
		bodyLen, valueMask = 1+7, 0x01
	case CDcNa1, CRcNa1:
		bodyLen, valueMask = 1, 0x03
	case CDcNb1:
		bodyLen, valueMask = 1+7, 0x03
	default:
		return nil, ErrUnsupportedType{TypeID: h.typeID}
	}

	elems, err := walkElements("ControlCommand", payload, h.sq, int(h.noo), bodyLen)
	if err != nil {
		return nil, err
	}
	out := make([]Result, 0, len(elems))
	for _, e := range elems {
		b := e.body[0]
		out = append(out, ControlCommandResult{
			ResultHeader: h.resultHeader(e.ioa),
			CommandValue: b & valueMask,
			IsSelect:     b&0x80 != 0,
		})
	}
	return out, nil
}
