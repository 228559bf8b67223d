package iec104

/*
Payload Dispatcher (PD) — a constant TypeID -> decoder routing table.

TypeID 20 is listed in both the Single-point and Packed-single-point
families in the IEC catalogue; this repository's dispatch table treats
PackedSinglePointDecoder as canonical for TypeID 20, matching spec.md's
resolution of that ambiguity. decodeSinglePoint remains reachable for
TypeID 20 only when called directly (legacy path), never through this
table.
*/
type decodeFunc func(h asduHeader, payload []byte) ([]Result, error)

var dispatch = map[TypeID]decodeFunc{
	MSpNa1: decodeSinglePoint,
	MSpTa1: decodeSinglePoint,
	MSpTb1: decodeSinglePoint,

	MDpNa1: decodeDoublePoint,
	MDpTa1: decodeDoublePoint,
	MDpTb1: decodeDoublePoint,

	MPsNa1: decodePackedSinglePoint,

	MMeNa1: decodeMeasurement16("NormalizedMeasurement"),
	MMeTa1: decodeMeasurement16("NormalizedMeasurement"),
	MMeNb1: decodeMeasurement16("ScaledMeasurement"),
	MMeTb1: decodeMeasurement16("ScaledMeasurement"),

	MMeNc1: decodeShortFloat,
	MMeTc1: decodeShortFloat,

	MMeNd1: decodeNoQuality,

	CScNa1: decodeControlCommand,
	CDcNa1: decodeControlCommand,
	CRcNa1: decodeControlCommand,
	CScNb1: decodeControlCommand,
	CDcNb1: decodeControlCommand,

	CIcNa1: decodeInterrogation,
	CCiNa1: decodeInterrogation,

	CCsNa1: decodeTimeSync,
}
