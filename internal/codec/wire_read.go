package codec

import "encoding/binary"

func readU32le(b []byte, off *int, field string) (uint32, error) {
	if len(b)-*off < 4 {
		return 0, short("unexpected EOF (" + field + ")")
	}
	v := binary.LittleEndian.Uint32(b[*off : *off+4])
	*off += 4
	return v, nil
}

func readBytes(b []byte, off *int, n int, field string) ([]byte, error) {
	if n < 0 || len(b)-*off < n {
		return nil, short("unexpected EOF (" + field + ")")
	}
	v := b[*off : *off+n : *off+n]
	*off += n
	return v, nil
}
