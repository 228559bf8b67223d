package iec104

/*
PackedSinglePointDecoder handles the canonical TypeID 20 dispatch (packed
single-point information with status change detection). Unlike every other
family, `numberOfObjects` here counts points, not bytes or IOA groups:

  - Sequence mode (SQ=1): one IOA base precedes a run of state bytes; each
    byte packs up to 8 points LSB-first, and points are numbered
    base, base+1, … continuously across byte boundaries.
  - Individual mode (SQ=0): each 3-byte IOA is immediately followed by one
    state byte packing up to 8 points LSB-first, numbered ioa, ioa+1, …
    relative to that group's own IOA.

isValid is always true — packed status has no quality bits. A payload
that ends before the declared point count is exhausted is a
PayloadTooShort.
*/
func decodePackedSinglePoint(h asduHeader, payload []byte) ([]Result, error) {
	noo := int(h.noo)
	if noo <= 0 {
		return nil, nil
	}

	if h.sq {
		nBytes := (noo + 7) / 8
		need := IOALength + nBytes
		if len(payload) < need {
			return nil, ErrPayloadTooShort{Family: "PackedSinglePoint", Have: len(payload), Need: need}
		}
		base := ioaFromLE24(payload[:IOALength])
		out := make([]Result, 0, noo)
		remaining := noo
		for g := 0; g < nBytes; g++ {
			b := payload[IOALength+g]
			bits := remaining
			if bits > 8 {
				bits = 8
			}
			for j := 0; j < bits; j++ {
				ioa := base + IOA(g*8+j)
				out = append(out, StatusResult{
					ResultHeader: h.resultHeader(ioa),
					State:        (b >> uint(j)) & 0x01,
					IsValid:      true,
				})
			}
			remaining -= bits
		}
		return out, nil
	}

	out := make([]Result, 0, noo)
	remaining := noo
	off := 0
	for remaining > 0 {
		if len(payload) < off+IOALength+1 {
			return nil, ErrPayloadTooShort{Family: "PackedSinglePoint", Have: len(payload), Need: off + IOALength + 1}
		}
		ioa := ioaFromLE24(payload[off : off+IOALength])
		b := payload[off+IOALength]
		bits := remaining
		if bits > 8 {
			bits = 8
		}
		for j := 0; j < bits; j++ {
			out = append(out, StatusResult{
				ResultHeader: h.resultHeader(ioa + IOA(j)),
				State:        (b >> uint(j)) & 0x01,
				IsValid:      true,
			})
		}
		remaining -= bits
		off += IOALength + 1
	}
	return out, nil
}
