package iec104

/*
SinglePointDecoder handles TypeIDs 1, 2, 30 (and 20 when invoked directly
— see dispatch.go). Element body: 1 byte (SIQ).

  | IV | NT | SB | BL | 0 | 0 | 0 | SPI |

state = SPI (bit 0); valid = IV (bit 7) clear.
*/
func decodeSinglePoint(h asduHeader, payload []byte) ([]Result, error) {
	elems, err := walkElements("SinglePoint", payload, h.sq, int(h.noo), 1)
	if err != nil {
		return nil, err
	}
	out := make([]Result, 0, len(elems))
	for _, e := range elems {
		b := e.body[0]
		out = append(out, StatusResult{
			ResultHeader: h.resultHeader(e.ioa),
			State:        b & 0x01,
			IsValid:      b&0x80 == 0,
		})
	}
	return out, nil
}

/*
DoublePointDecoder handles TypeIDs 3, 4, 31. Element body: 1 byte (DIQ).

  | IV | NT | SB | BL | 0 | 0 |   DPI   |

state = DPI (bits 0-1); valid = IV (bit 7) clear.
*/
func decodeDoublePoint(h asduHeader, payload []byte) ([]Result, error) {
	elems, err := walkElements("DoublePoint", payload, h.sq, int(h.noo), 1)
	if err != nil {
		return nil, err
	}
	out := make([]Result, 0, len(elems))
	for _, e := range elems {
		b := e.body[0]
		out = append(out, StatusResult{
			ResultHeader: h.resultHeader(e.ioa),
			State:        b & 0x03,
			IsValid:      b&0x80 == 0,
		})
	}
	return out, nil
}
