// Package model holds the JSON-facing views of decoded transactions.
package model

// Transaction is the explorer-style view of a decoded transaction.
type Transaction struct {
	Hash       string             `json:"hash"`
	Size       uint32             `json:"size"`
	Version    uint32             `json:"version"`
	LockTime   uint32             `json:"lock_time"`
	InputCount uint32             `json:"input_count"`
	IsCoinbase bool               `json:"is_coinbase"`
	Inputs     []TransactionInput `json:"inputs"`
}

// TransactionInput describes a reference to a previous transaction output.
type TransactionInput struct {
	Index         uint32 `json:"index"`
	PrevTxID      string `json:"prev_txid"`
	PrevVout      uint32 `json:"prev_vout"`
	Sequence      uint32 `json:"sequence"`
	ScriptSigSize uint32 `json:"script_sig_size"`
	ScriptSigHex  string `json:"script_sig_hex"`
	ScriptSigAsm  string `json:"script_sig_asm,omitempty"`
}

// CompactSize is the view of a single decoded CompactSize integer.
type CompactSize struct {
	Value uint64 `json:"value"`
	Size  int    `json:"size"`
	Hex   string `json:"hex"`
}
