package codec

// OutPointSize is the fixed encoded length of an OutPoint.
const OutPointSize = TxidSize + 4

// OutPoint references output Vout of the transaction identified by Txid.
type OutPoint struct {
	Txid Txid   `json:"txid"`
	Vout uint32 `json:"vout"`
}

// NewOutPoint builds an OutPoint from raw id bytes and an output index.
func NewOutPoint(txid [TxidSize]byte, vout uint32) OutPoint {
	return OutPoint{Txid: txid, Vout: vout}
}

// Encode returns txid || vout (little-endian).
func (o OutPoint) Encode() []byte {
	return o.AppendTo(make([]byte, 0, OutPointSize))
}

// AppendTo appends the encoding of o to dst.
func (o OutPoint) AppendTo(dst []byte) []byte {
	dst = append(dst, o.Txid[:]...)
	return appendU32le(dst, o.Vout)
}

// DecodeOutPoint decodes an OutPoint from the front of b. It always consumes
// OutPointSize bytes.
func DecodeOutPoint(b []byte) (OutPoint, int, error) {
	if len(b) < OutPointSize {
		return OutPoint{}, 0, short("outpoint: need 36 bytes")
	}
	off := 0
	raw, err := readBytes(b, &off, TxidSize, "outpoint txid")
	if err != nil {
		return OutPoint{}, 0, err
	}
	vout, err := readU32le(b, &off, "outpoint vout")
	if err != nil {
		return OutPoint{}, 0, err
	}
	var o OutPoint
	copy(o.Txid[:], raw)
	o.Vout = vout
	return o, off, nil
}

func readOutPoint(b []byte, off *int) (OutPoint, error) {
	o, n, err := DecodeOutPoint(b[*off:])
	if err != nil {
		return OutPoint{}, err
	}
	*off += n
	return o, nil
}
