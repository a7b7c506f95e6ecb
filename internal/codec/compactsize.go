package codec

import (
	"encoding/binary"
	"strconv"
)

const (
	compactSizeU16 = 0xfd
	compactSizeU32 = 0xfe
	compactSizeU64 = 0xff

	// MaxCompactSizeLen is the longest CompactSize encoding.
	MaxCompactSizeLen = 9
)

// CompactSize is Bitcoin's self-describing variable-length unsigned integer.
type CompactSize uint64

// Encode returns the canonical (shortest) encoding of c.
func (c CompactSize) Encode() []byte {
	return AppendCompactSize(make([]byte, 0, c.SerializeSize()), uint64(c))
}

// SerializeSize returns the length of the canonical encoding of c.
func (c CompactSize) SerializeSize() int {
	switch {
	case c < compactSizeU16:
		return 1
	case c <= 0xffff:
		return 3
	case c <= 0xffff_ffff:
		return 5
	default:
		return 9
	}
}

func (c CompactSize) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// AppendCompactSize encodes n in canonical form and appends it to dst.
func AppendCompactSize(dst []byte, n uint64) []byte {
	switch {
	case n < compactSizeU16:
		return append(dst, byte(n))
	case n <= 0xffff:
		dst = append(dst, compactSizeU16)
		return appendU16le(dst, uint16(n))
	case n <= 0xffff_ffff:
		dst = append(dst, compactSizeU32)
		return appendU32le(dst, uint32(n))
	default:
		dst = append(dst, compactSizeU64)
		return appendU64le(dst, n)
	}
}

// DecodeCompactSize decodes one CompactSize from the front of b and returns
// the value with the number of bytes consumed (1, 3, 5 or 9). Bytes after the
// encoding are ignored. Non-minimal encodings are accepted.
func DecodeCompactSize(b []byte) (CompactSize, int, error) {
	if len(b) == 0 {
		return 0, 0, short("compactsize: empty")
	}
	switch tag := b[0]; tag {
	case compactSizeU16:
		if len(b) < 3 {
			return 0, 0, short("compactsize: truncated u16")
		}
		return CompactSize(binary.LittleEndian.Uint16(b[1:3])), 3, nil
	case compactSizeU32:
		if len(b) < 5 {
			return 0, 0, short("compactsize: truncated u32")
		}
		return CompactSize(binary.LittleEndian.Uint32(b[1:5])), 5, nil
	case compactSizeU64:
		if len(b) < 9 {
			return 0, 0, short("compactsize: truncated u64")
		}
		return CompactSize(binary.LittleEndian.Uint64(b[1:9])), 9, nil
	default:
		return CompactSize(tag), 1, nil
	}
}

// ParseCompactSize decodes a buffer that must hold exactly one CompactSize.
// Trailing bytes fail with InvalidFormat.
func ParseCompactSize(b []byte) (CompactSize, error) {
	c, n, err := DecodeCompactSize(b)
	if err != nil {
		return 0, err
	}
	if n != len(b) {
		return 0, invalid("compactsize: " + strconv.Itoa(len(b)-n) + " trailing bytes")
	}
	return c, nil
}

func readCompactSize(b []byte, off *int) (uint64, error) {
	c, n, err := DecodeCompactSize(b[*off:])
	if err != nil {
		return 0, err
	}
	*off += n
	return uint64(c), nil
}
