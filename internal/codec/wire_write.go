package codec

import "encoding/binary"

func appendU16le(dst []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(dst, v)
}

func appendU32le(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

func appendU64le(dst []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, v)
}
