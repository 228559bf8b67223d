package iec104

import "time"

/*
APDU (Application Protocol Data Unit).

An APDU is either an APCI alone (S/U-frames) or an APCI followed by an
ASDU (I-frames).

  | <-   8 bits    -> |  -----    -----
  | Start Byte (0x68) |    |        |
  | Length of APDU    |    |        |
  | Control Field 1   |   APCI     APDU
  | Control Field 2   |    |        |
  | Control Field 3   |    |        |
  | Control Field 4   |    |        |
  | ASDU (I only)     |   ASDU      |
  | <-   8 bits    -> |  -----    -----

Decode never fails: a malformed frame yields an empty result list, per the
never-fail / degrade-gracefully philosophy of the pipeline.
*/

const apciLength = 6

// Decode classifies a reconstructed frame and, for I-frames, dispatches its
// ASDU to the information-element decoders. recvTime (zero value allowed)
// is copied into the Time field of every information-object result's
// header, whatever its family; S-frame and U-frame results carry no time.
func Decode(data []byte, recvTime time.Time) []Result {
	if len(data) < apciLength {
		return nil
	}
	if data[0] != startByte {
		return nil
	}
	if int(data[1]) != len(data)-2 {
		return nil
	}

	ctrl0, ctrl1, ctrl2, ctrl3 := data[2], data[3], data[4], data[5]
	_ = ctrl1

	switch classifyFrame(ctrl0) {
	case FrameS:
		return []Result{parseSFrame(ctrl2, ctrl3)}
	case FrameU:
		r, ok := parseUFrame(ctrl0)
		if !ok {
			return nil
		}
		return []Result{r}
	case FrameI:
		return decodeIFrame(data[apciLength:], recvTime)
	default:
		return nil
	}
}

// decodeIFrame reads the ASDU header (TypeID, VSQ, COT, CA) and dispatches
// the remaining payload to the Payload Dispatcher.
func decodeIFrame(asdu []byte, recvTime time.Time) []Result {
	if len(asdu) < asduHeaderLen {
		return nil
	}

	typeID := TypeID(asdu[0])
	sq, noo := parseVSQ(asdu[1])
	cot := COT(parseLittleEndianUint16(asdu[2:4]))
	ca := COA(parseLittleEndianUint16(asdu[4:6]))
	payload := asdu[asduHeaderLen:]

	decoder, ok := dispatch[typeID]
	if !ok {
		_lg.Debugf("iec104: unsupported type id %d, dropping asdu", typeID)
		return nil
	}

	results, err := decoder(asduHeader{typeID: typeID, ca: ca, cot: cot, sq: sq, noo: noo, recvTime: recvTime}, payload)
	if err != nil {
		_lg.Warnf("iec104: decode type id %d: %s", typeID, err)
		return nil
	}
	return results
}
