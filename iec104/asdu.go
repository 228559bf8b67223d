package iec104

import "time"

/*
ASDU (Application Service Data Unit) header — the six-byte Data Unit
Identifier that precedes every I-frame's information objects.

 | <-              8 bits              -> |
 | Type Identification                    |  --------------------
 | SQ | Number of objects                 |           |
 | Cause of transmission (COT), low byte  |           |
 | Cause of transmission (COT), high byte |  Data Unit Identifier
 | Common address (CA), low byte          |           |
 | Common address (CA), high byte         |  --------------------
 | Information object address (IOA)       |  --------------------
 | ...                                    |  Information Object(s)
*/
const asduHeaderLen = 6

// asduHeader carries the parsed Data Unit Identifier plus the reception
// timestamp down to a family decoder.
type asduHeader struct {
	typeID   TypeID
	ca       COA
	cot      COT
	sq       bool
	noo      uint8
	recvTime time.Time
}

/*
TypeID (Type Identification, 1 byte) selects which information-element
family decodes the ASDU's payload. Only the TypeIDs this repository's
Payload Dispatcher routes are named; the remainder of the IEC 101/104
catalogue is unsupported and degrades to an empty result list.
*/
type TypeID uint8

const (
	// Single-point status, 1 byte (SIQ).
	MSpNa1 TypeID = 1
	MSpTa1 TypeID = 2
	// Double-point status, 1 byte (DIQ).
	MDpNa1 TypeID = 3
	MDpTa1 TypeID = 4
	// Packed single-point status with change detection (canonical home of
	// TypeID 20 — see PackedSinglePointDecoder).
	MPsNa1 TypeID = 20
	// Normalized measured value, 2-byte signed + 1-byte QDS.
	MMeNa1 TypeID = 9
	MMeTa1 TypeID = 10
	// Scaled measured value, same shape as normalized.
	MMeNb1 TypeID = 11
	MMeTb1 TypeID = 12
	// Short-float measured value, 4-byte IEEE-754 + 1-byte QDS.
	MMeNc1 TypeID = 13
	MMeTc1 TypeID = 14
	// No-quality normalized measured value, 2-byte signed only.
	MMeNd1 TypeID = 21
	// Single-point status with long time tag — dispatched to the
	// single-point family like its untimed counterparts.
	MSpTb1 TypeID = 30
	MDpTb1 TypeID = 31
	// Control commands.
	CScNa1 TypeID = 45 // single command (SCO)
	CDcNa1 TypeID = 46 // double command (DCO)
	CRcNa1 TypeID = 47 // regulating step command (RCO)
	CScNb1 TypeID = 58 // single command with time tag
	CDcNb1 TypeID = 59 // double command with time tag
	// Interrogation.
	CIcNa1 TypeID = 100 // general interrogation command (QOI)
	CCiNa1 TypeID = 101 // counter interrogation command (QCC)
	// Clock synchronization.
	CCsNa1 TypeID = 103 // CP56Time2a
)

/*
parseVSQ splits the Variable Structure Qualifier byte into the sequence
flag (top bit) and the 7-bit object/element count.
*/
func parseVSQ(b byte) (sq bool, noo uint8) {
	return b&0x80 != 0, b & 0x7F
}

/*
COT (Cause of Transmission). The standard packs the 6-bit cause, the
test/P-N bits and the originator address into two bytes; this repository
reads both bytes as one little-endian uint16 and applies no mask, since
decode never needs to distinguish test/positive-negative frames.
*/
type COT uint16

const (
	CotPer, CotCyc COT = 1, 1 // periodic, cyclic
	CotBack        COT = 2    // background scan
	CotSpt         COT = 3    // spontaneous
	CotInit        COT = 4    // initialized
	CotReq         COT = 5    // request or requested
	CotAct         COT = 6    // activation
	CotActCon      COT = 7    // activation confirmation
	CotDeact       COT = 8    // deactivation
	CotDeactCon    COT = 9    // deactivation confirmation
	CotActTerm     COT = 10   // activation termination
	CotRetRem      COT = 11   // return information caused by a remote command
	CotRetLoc      COT = 12   // return information caused by a local command
	CotFile        COT = 13   // file transfer
	CotInrogen     COT = 20   // interrogated by general interrogation
	CotReqcogen    COT = 37   // interrogated by counter general interrogation
	CotUnType      COT = 44   // unknown type
	CotUnCause     COT = 45   // unknown cause
	CotUnAsduAddr  COT = 46   // unknown asdu address
	CotUnObjAddr   COT = 47   // unknown object address
)

// COA (Common Address of ASDU, 2 bytes little-endian) identifies the
// station an ASDU addresses.
type COA = uint16

// IOA (Information Object Address, 3 bytes little-endian) identifies a
// point within a station.
type IOA = uint32
