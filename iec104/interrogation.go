package iec104

/*
decodeInterrogation handles general (100) and counter (101) interrogation
commands: a single 1-byte qualifier (QOI or QCC) per element.
*/
func decodeInterrogation(h asduHeader, payload []byte) ([]Result, error) {
	elems, err := walkElements("Interrogation", payload, h.sq, int(h.noo), 1)
	if err != nil {
		return nil, err
	}
	out := make([]Result, 0, len(elems))
	for _, e := range elems {
		out = append(out, InterrogationCommandResult{
			ResultHeader: h.resultHeader(e.ioa),
			QOI:          e.body[0],
		})
	}
	return out, nil
}

// decodeTimeSync handles TypeID 103: a single CP56Time2a element.
func decodeTimeSync(h asduHeader, payload []byte) ([]Result, error) {
	elems, err := walkElements("TimeSync", payload, h.sq, int(h.noo), 7)
	if err != nil {
		return nil, err
	}
	out := make([]Result, 0, len(elems))
	for _, e := range elems {
		t, err := decodeCP56Time2a(e.body)
		if err != nil {
			return nil, err
		}
		out = append(out, TimeSyncCommandResult{
			ResultHeader: h.resultHeader(e.ioa),
			SyncTime:     t,
		})
	}
	return out, nil
}
