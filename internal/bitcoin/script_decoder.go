package bitcoin

import (
	"github.com/btcsuite/btcd/txscript"
)

// scriptDecoder renders unlocking scripts in the opcode notation bitcoind uses.
type scriptDecoder struct{}

// NewScriptDecoder returns the txscript backed decoder.
func NewScriptDecoder() ScriptDecoder {
	return scriptDecoder{}
}

// Disasm returns the disassembly of script. Scripts that end in a malformed
// push still yield the opcodes parsed so far, terminated by "[error]".
func (scriptDecoder) Disasm(script []byte) string {
	if len(script) == 0 {
		return ""
	}
	asm, _ := txscript.DisasmString(script)
	return asm
}
