package codec

// TxIn spends a previous output. Its encoding is
// OutPoint(36) || Script(var) || sequence(4).
type TxIn struct {
	PreviousOutput OutPoint `json:"previous_output"`
	ScriptSig      Script   `json:"script_sig"`
	Sequence       uint32   `json:"sequence"`
}

// MaxTxInSequenceNum is the sequence value that opts out of lock time and RBF.
const MaxTxInSequenceNum uint32 = 0xffffffff

// NewTxIn builds an input spending prev with the given unlocking script.
func NewTxIn(prev OutPoint, scriptSig Script, sequence uint32) TxIn {
	return TxIn{PreviousOutput: prev, ScriptSig: scriptSig, Sequence: sequence}
}

// SerializeSize returns the encoded length of the input.
func (in TxIn) SerializeSize() int {
	return OutPointSize + in.ScriptSig.SerializeSize() + 4
}

// Encode returns the wire encoding of the input.
func (in TxIn) Encode() []byte {
	return in.AppendTo(make([]byte, 0, in.SerializeSize()))
}

// AppendTo appends the encoding of in to dst.
func (in TxIn) AppendTo(dst []byte) []byte {
	dst = in.PreviousOutput.AppendTo(dst)
	dst = in.ScriptSig.AppendTo(dst)
	return appendU32le(dst, in.Sequence)
}

// DecodeTxIn decodes one input from the front of b and returns it with the
// number of bytes consumed.
func DecodeTxIn(b []byte) (TxIn, int, error) {
	off := 0
	var in TxIn
	var err error
	if in.PreviousOutput, err = readOutPoint(b, &off); err != nil {
		return TxIn{}, 0, err
	}
	if in.ScriptSig, err = readScript(b, &off); err != nil {
		return TxIn{}, 0, err
	}
	if in.Sequence, err = readU32le(b, &off, "sequence"); err != nil {
		return TxIn{}, 0, err
	}
	return in, off, nil
}
