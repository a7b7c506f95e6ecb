package safe

import (
	"math"
	"testing"
)

type convertTestCase[T Integer, R comparable] struct {
	name    string
	v       T
	want    R
	wantErr bool
}

func runCase[T Integer, R comparable](t *testing.T, fn string, convert func(T) (R, error), tc convertTestCase[T, R]) {
	t.Helper()

	t.Run(tc.name, func(t *testing.T) {
		got, err := convert(tc.v)
		if (err != nil) != tc.wantErr {
			t.Errorf("%s() error = %v, wantErr %v", fn, err, tc.wantErr)
			return
		}
		if got != tc.want {
			t.Errorf("%s() got = %v, want %v", fn, got, tc.want)
		}
	})
}

func TestUint32(t *testing.T) {
	runCase(t, "Uint32", Uint32[int], convertTestCase[int, uint32]{name: "int within range", v: 42, want: 42})
	runCase(t, "Uint32", Uint32[int], convertTestCase[int, uint32]{name: "int negative", v: -1, wantErr: true})
	runCase(t, "Uint32", Uint32[int64], convertTestCase[int64, uint32]{name: "int64 overflow", v: int64(math.MaxUint32) + 1, wantErr: true})
	runCase(t, "Uint32", Uint32[int64], convertTestCase[int64, uint32]{name: "int64 boundary ok", v: int64(math.MaxUint32), want: math.MaxUint32})
	runCase(t, "Uint32", Uint32[uint64], convertTestCase[uint64, uint32]{name: "uint64 overflow", v: math.MaxUint32 + 1, wantErr: true})
	runCase(t, "Uint32", Uint32[uint32], convertTestCase[uint32, uint32]{name: "uint32 max", v: math.MaxUint32, want: math.MaxUint32})
	runCase(t, "Uint32", Uint32[int32], convertTestCase[int32, uint32]{name: "int32 negative", v: -5, wantErr: true})
	runCase(t, "Uint32", Uint32[int64], convertTestCase[int64, uint32]{name: "zero", v: 0, want: 0})
}

func TestInt(t *testing.T) {
	runCase(t, "Int", Int[uint64], convertTestCase[uint64, int]{name: "uint64 small", v: 253, want: 253})
	runCase(t, "Int", Int[uint64], convertTestCase[uint64, int]{name: "uint64 max int", v: math.MaxInt, want: math.MaxInt})
	runCase(t, "Int", Int[uint64], convertTestCase[uint64, int]{name: "uint64 overflow", v: math.MaxUint64, wantErr: true})
	runCase(t, "Int", Int[uint64], convertTestCase[uint64, int]{name: "uint64 just above max int", v: uint64(math.MaxInt) + 1, wantErr: true})
	runCase(t, "Int", Int[int32], convertTestCase[int32, int]{name: "int32 negative", v: -7, want: -7})
}
