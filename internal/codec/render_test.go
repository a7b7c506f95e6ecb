package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransaction_String(t *testing.T) {
	tests := []struct {
		name string
		tx   Transaction
		want string
	}{
		{
			name: "no inputs",
			tx:   NewTransaction(1, nil, 0),
			want: "Version: 1\nInput Count: 0\nLock Time: 0",
		},
		{
			name: "two inputs",
			tx:   twoInputTx(),
			want: "Version: 2\n" +
				"Input Count: 2\n" +
				"Input 0:\n" +
				"  Previous Output Txid: " + testTxid(0x10).String() + "\n" +
				"  Previous Output Vout: 0\n" +
				"  ScriptSig Length: 3\n" +
				"  ScriptSig Bytes: 473044\n" +
				"  Sequence: 4294967295\n" +
				"Input 1:\n" +
				"  Previous Output Txid: " + testTxid(0x20).String() + "\n" +
				"  Previous Output Vout: 7\n" +
				"  ScriptSig Length: 0\n" +
				"  ScriptSig Bytes: \n" +
				"  Sequence: 4294967293\n" +
				"Lock Time: 500000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tx.String())
			assert.Equal(t, tt.tx.String(), tt.tx.String(), "rendering is deterministic")
		})
	}
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("closed")
	}
	w.after--
	return len(p), nil
}

func TestTransaction_RenderPropagatesWriteError(t *testing.T) {
	for after := 0; after < 3; after++ {
		err := twoInputTx().Render(&failingWriter{after: after})
		assert.Error(t, err, "writer failing after %d writes", after)
	}

	var sb strings.Builder
	assert.NoError(t, twoInputTx().Render(&sb))
}
