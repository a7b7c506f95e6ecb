package codec

import (
	"fmt"
	"io"
	"strings"
)

// Render writes a multi-line description of tx to w. The output ends with the
// lock time line and carries no trailing newline.
func (tx Transaction) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Version: %d\nInput Count: %d\n", tx.Version, len(tx.Inputs)); err != nil {
		return err
	}
	for i, in := range tx.Inputs {
		_, err := fmt.Fprintf(w,
			"Input %d:\n"+
				"  Previous Output Txid: %s\n"+
				"  Previous Output Vout: %d\n"+
				"  ScriptSig Length: %d\n"+
				"  ScriptSig Bytes: %s\n"+
				"  Sequence: %d\n",
			i,
			in.PreviousOutput.Txid,
			in.PreviousOutput.Vout,
			in.ScriptSig.Len(),
			in.ScriptSig,
			in.Sequence,
		)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Lock Time: %d", tx.LockTime)
	return err
}

// String returns the Render output.
func (tx Transaction) String() string {
	var sb strings.Builder
	_ = tx.Render(&sb)
	return sb.String()
}
