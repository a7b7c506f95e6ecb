package codec

import (
	"encoding/hex"
	"fmt"
)

// TxidSize is the length of a transaction id in bytes.
const TxidSize = 32

// Txid identifies a transaction. It is stored and hex-encoded in the byte
// order it appears on the wire, without the reversal block explorers apply.
type Txid [TxidSize]byte

// TxidFromBytes copies the first 32 bytes of b into a Txid.
func TxidFromBytes(b []byte) (Txid, error) {
	var id Txid
	if len(b) < TxidSize {
		return id, short("txid: need 32 bytes")
	}
	copy(id[:], b)
	return id, nil
}

// TxidFromHex parses the 64-character hex form of a Txid.
func TxidFromHex(s string) (Txid, error) {
	var id Txid
	raw, err := hex.DecodeString(s)
	if err != nil {
		return id, invalid("txid: " + err.Error())
	}
	if len(raw) != TxidSize {
		return id, invalid(fmt.Sprintf("txid: decoded %d bytes, want %d", len(raw), TxidSize))
	}
	copy(id[:], raw)
	return id, nil
}

// String returns the lowercase hex form of the id.
func (id Txid) String() string {
	return hex.EncodeToString(id[:])
}

// IsZero reports whether every byte of the id is zero.
func (id Txid) IsZero() bool {
	return id == Txid{}
}

func (id Txid) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *Txid) UnmarshalText(text []byte) error {
	parsed, err := TxidFromHex(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
