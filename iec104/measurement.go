package iec104

/*
decodeMeasurement16 handles the normalized (TypeIDs 9, 10) and scaled
(TypeIDs 11, 12) measurement families, which share the same element body:
a 2-byte signed little-endian value followed by a 1-byte QDS.

  valid = (qds & 0x80) == 0
*/
func decodeMeasurement16(family string) decodeFunc {
	return func(h asduHeader, payload []byte) ([]Result, error) {
		elems, err := walkElements(family, payload, h.sq, int(h.noo), 3)
		if err != nil {
			return nil, err
		}
		out := make([]Result, 0, len(elems))
		for _, e := range elems {
			qds := e.body[2]
			out = append(out, MeasurementResult{
				ResultHeader: h.resultHeader(e.ioa),
				Value:        float64(parseLittleEndianInt16(e.body[:2])),
				IsValid:      qds&0x80 == 0,
			})
		}
		return out, nil
	}
}

/*
decodeShortFloat handles TypeIDs 13, 14: a 4-byte IEEE-754 little-endian
value followed by a 1-byte QDS.
*/
func decodeShortFloat(h asduHeader, payload []byte) ([]Result, error) {
	elems, err := walkElements("ShortFloatMeasurement", payload, h.sq, int(h.noo), 5)
	if err != nil {
		return nil, err
	}
	out := make([]Result, 0, len(elems))
	for _, e := range elems {
		qds := e.body[4]
		out = append(out, MeasurementResult{
			ResultHeader: h.resultHeader(e.ioa),
			Value:        float64(parseLittleEndianFloat32(e.body[:4])),
			IsValid:      qds&0x80 == 0,
		})
	}
	return out, nil
}

/*
decodeNoQuality handles TypeID 21: a bare 2-byte signed little-endian
value with no quality descriptor. Always valid.
*/
func decodeNoQuality(h asduHeader, payload []byte) ([]Result, error) {
	elems, err := walkElements("NoQualityMeasurement", payload, h.sq, int(h.noo), 2)
	if err != nil {
		return nil, err
	}
	out := make([]Result, 0, len(elems))
	for _, e := range elems {
		out = append(out, MeasurementResult{
			ResultHeader: h.resultHeader(e.ioa),
			Value:        float64(parseLittleEndianInt16(e.body)),
			IsValid:      true,
		})
	}
	return out, nil
}
