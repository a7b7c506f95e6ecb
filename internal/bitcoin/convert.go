// Package bitcoin maps codec values to and from their explorer-style views.
package bitcoin

import (
	"encoding/hex"
	"fmt"
	"math"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/codec"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/pkg/safe"
)

// Converter turns decoded transactions into model views and back.
type Converter struct {
	decoder ScriptDecoder
}

// NewConverter constructs a Converter using decoder for script disassembly.
func NewConverter(decoder ScriptDecoder) *Converter {
	return &Converter{decoder: decoder}
}

// IsCoinbase reports whether tx has the shape of a coinbase: a single input
// spending the null outpoint.
func IsCoinbase(tx codec.Transaction) bool {
	if len(tx.Inputs) != 1 {
		return false
	}
	prev := tx.Inputs[0].PreviousOutput
	return prev.Txid.IsZero() && prev.Vout == math.MaxUint32
}

// ToModel builds the model view of tx.
func (c *Converter) ToModel(tx codec.Transaction) (model.Transaction, error) {
	size, err := safe.Uint32(tx.SerializeSize())
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx size overflow: %w", err)
	}
	inputCount, err := safe.Uint32(len(tx.Inputs))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx input count overflow: %w", err)
	}

	inputs := make([]model.TransactionInput, 0, len(tx.Inputs))
	for idx, in := range tx.Inputs {
		index, err := safe.Uint32(idx)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("input index overflow: %w", err)
		}
		scriptSize, err := safe.Uint32(in.ScriptSig.Len())
		if err != nil {
			return model.Transaction{}, fmt.Errorf("input %d script size overflow: %w", idx, err)
		}
		inputs = append(inputs, model.TransactionInput{
			Index:         index,
			PrevTxID:      in.PreviousOutput.Txid.String(),
			PrevVout:      in.PreviousOutput.Vout,
			Sequence:      in.Sequence,
			ScriptSigSize: scriptSize,
			ScriptSigHex:  in.ScriptSig.String(),
			ScriptSigAsm:  c.decoder.Disasm(in.ScriptSig.Bytes()),
		})
	}

	return model.Transaction{
		Hash:       tx.TxHash().String(),
		Size:       size,
		Version:    tx.Version,
		LockTime:   tx.LockTime,
		InputCount: inputCount,
		IsCoinbase: IsCoinbase(tx),
		Inputs:     inputs,
	}, nil
}

// FromModel rebuilds a codec transaction from its view. Only the fields that
// are part of the encoding are read; hash, size and asm are ignored.
func (c *Converter) FromModel(src model.Transaction) (codec.Transaction, error) {
	inputs := make([]codec.TxIn, 0, len(src.Inputs))
	for idx, in := range src.Inputs {
		txid, err := codec.TxidFromHex(in.PrevTxID)
		if err != nil {
			return codec.Transaction{}, fmt.Errorf("input %d prev_txid: %w", idx, err)
		}
		script, err := hex.DecodeString(in.ScriptSigHex)
		if err != nil {
			return codec.Transaction{}, fmt.Errorf("input %d script_sig_hex: %w", idx,
				codec.NewError(codec.InvalidFormat, err.Error()))
		}
		inputs = append(inputs, codec.NewTxIn(codec.NewOutPoint(txid, in.PrevVout), codec.Script(script), in.Sequence))
	}
	return codec.NewTransaction(src.Version, inputs, src.LockTime), nil
}
