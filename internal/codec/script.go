package codec

import (
	"encoding/hex"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/pkg/safe"
)

// Script is an opaque length-prefixed byte payload. A decoded Script is a view
// into the buffer it was decoded from.
type Script []byte

// Bytes returns the script contents without copying.
func (s Script) Bytes() []byte {
	return s
}

// Len returns the number of script bytes, excluding the length prefix.
func (s Script) Len() int {
	return len(s)
}

// Clone returns a copy that does not alias the decode buffer.
func (s Script) Clone() Script {
	if s == nil {
		return nil
	}
	return append(Script(make([]byte, 0, len(s))), s...)
}

// SerializeSize returns the encoded length including the CompactSize prefix.
func (s Script) SerializeSize() int {
	return CompactSize(len(s)).SerializeSize() + len(s)
}

// Encode returns CompactSize(len) || bytes.
func (s Script) Encode() []byte {
	return s.AppendTo(make([]byte, 0, s.SerializeSize()))
}

// AppendTo appends the encoding of s to dst.
func (s Script) AppendTo(dst []byte) []byte {
	dst = AppendCompactSize(dst, uint64(len(s)))
	return append(dst, s...)
}

func (s Script) String() string {
	return hex.EncodeToString(s)
}

func (s Script) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Script) UnmarshalText(text []byte) error {
	raw, err := hex.DecodeString(string(text))
	if err != nil {
		return invalid("script: " + err.Error())
	}
	*s = raw
	return nil
}

// DecodeScript decodes a length-prefixed script from the front of b and
// returns it with the number of bytes consumed (prefix plus payload).
func DecodeScript(b []byte) (Script, int, error) {
	off := 0
	n, err := readCompactSize(b, &off)
	if err != nil {
		return nil, 0, err
	}
	length, err := safe.Int(n)
	if err != nil {
		return nil, 0, short("script: declared length " + strconv.FormatUint(n, 10) + " exceeds buffer")
	}
	raw, err := readBytes(b, &off, length, "script bytes")
	if err != nil {
		return nil, 0, err
	}
	return Script(raw), off, nil
}

func readScript(b []byte, off *int) (Script, error) {
	s, n, err := DecodeScript(b[*off:])
	if err != nil {
		return nil, err
	}
	*off += n
	return s, nil
}
