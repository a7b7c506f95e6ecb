package codec

import (
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Transaction is the version, input list and lock time of a transaction.
// Outputs and witness data are not represented.
type Transaction struct {
	Version  uint32 `json:"version"`
	Inputs   []TxIn `json:"inputs"`
	LockTime uint32 `json:"lock_time"`
}

// NewTransaction builds a transaction from its parts.
func NewTransaction(version uint32, inputs []TxIn, lockTime uint32) Transaction {
	return Transaction{Version: version, Inputs: inputs, LockTime: lockTime}
}

// SerializeSize returns the encoded length of the transaction.
func (tx Transaction) SerializeSize() int {
	n := 4 + CompactSize(len(tx.Inputs)).SerializeSize() + 4
	for _, in := range tx.Inputs {
		n += in.SerializeSize()
	}
	return n
}

// Encode returns
// version(4) || CompactSize(len(inputs)) || inputs || lock_time(4).
func (tx Transaction) Encode() []byte {
	return tx.AppendTo(make([]byte, 0, tx.SerializeSize()))
}

// AppendTo appends the encoding of tx to dst.
func (tx Transaction) AppendTo(dst []byte) []byte {
	dst = appendU32le(dst, tx.Version)
	dst = AppendCompactSize(dst, uint64(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		dst = in.AppendTo(dst)
	}
	return appendU32le(dst, tx.LockTime)
}

// TxHash returns the double SHA-256 of the encoding.
func (tx Transaction) TxHash() chainhash.Hash {
	return chainhash.DoubleHashH(tx.Encode())
}

// DecodeTransaction decodes a transaction from the front of b and returns it
// with the number of bytes consumed. Bytes after the lock time are ignored.
// On failure no part of the transaction is returned.
func DecodeTransaction(b []byte) (Transaction, int, error) {
	off := 0
	version, err := readU32le(b, &off, "version")
	if err != nil {
		return Transaction{}, 0, err
	}
	count, err := readCompactSize(b, &off)
	if err != nil {
		return Transaction{}, 0, err
	}

	// Each input takes at least 41 bytes, which bounds the preallocation by
	// what the buffer could actually hold.
	const minTxInSize = OutPointSize + 1 + 4
	capacity := uint64(len(b)-off) / minTxInSize
	if count < capacity {
		capacity = count
	}
	inputs := make([]TxIn, 0, capacity)
	for i := uint64(0); i < count; i++ {
		if off >= len(b) {
			return Transaction{}, 0, short("transaction: input " + strconv.FormatUint(i, 10) + " of " +
				strconv.FormatUint(count, 10) + " missing")
		}
		in, n, err := DecodeTxIn(b[off:])
		if err != nil {
			return Transaction{}, 0, err
		}
		inputs = append(inputs, in)
		off += n
	}

	lockTime, err := readU32le(b, &off, "lock_time")
	if err != nil {
		return Transaction{}, 0, err
	}
	return Transaction{Version: version, Inputs: inputs, LockTime: lockTime}, off, nil
}
