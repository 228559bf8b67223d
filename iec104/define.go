// Package iec104 classifies reconstructed APDUs and decodes IEC 60870-5-104
// information objects into typed results.
package iec104

import (
	"encoding/binary"
	"math"

	"github.com/sirupsen/logrus"
)

var _lg = logrus.New()

// SetLogger overrides the package-level logger used for Debug/Warn traces
// emitted while decoding.
func SetLogger(lg *logrus.Logger) {
	_lg = lg
}

func parseLittleEndianUint16(x []byte) uint16 {
	return binary.LittleEndian.Uint16(x)
}

func parseLittleEndianInt16(x []byte) int16 {
	return int16(parseLittleEndianUint16(x))
}

func parseLittleEndianFloat32(x []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(x))
}

// ioaFromLE24 reads a 3-byte little-endian Information Object Address.
func ioaFromLE24(data []byte) IOA {
	return IOA(uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16)
}
