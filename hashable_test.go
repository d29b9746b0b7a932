package bloom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntEncoding(t *testing.T) {
	require.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, Int(1).AppendKey(nil))
	require.Equal(t, bytes.Repeat([]byte{0xff}, 8), Int(-1).AppendKey(nil))
	require.Equal(t, Int(42).AppendKey(nil), Uint(42).AppendKey(nil))
}

func TestAppendKeyKeepsPrefix(t *testing.T) {
	prefix := []byte("p:")
	for _, x := range []Hashable{Bytes("b"), String("s"), Int(7), Uint(7), Ints(1, 2)} {
		got := x.AppendKey(append([]byte(nil), prefix...))
		require.True(t, bytes.HasPrefix(got, prefix))
		require.Equal(t, x.AppendKey(nil), got[len(prefix):])
	}
}

func TestSeqIsPrefixFree(t *testing.T) {
	tests := []struct {
		name string
		a, b Seq
	}{
		{"split point", Seq{String("ab"), String("c")}, Seq{String("a"), String("bc")}},
		{"empty element", Seq{}, Seq{String("")}},
		{"nesting", Seq{Seq{Int(1)}, Int(2)}, Seq{Int(1), Seq{Int(2)}}},
		{"order", Ints(1, 2, 3), Ints(3, 2, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotEqual(t, tt.a.AppendKey(nil), tt.b.AppendKey(nil))
		})
	}
}

func TestInts(t *testing.T) {
	require.Equal(t, Seq{Int(1), Int(2), Int(3)}.AppendKey(nil), Ints(1, 2, 3).AppendKey(nil))
	require.Equal(t, []byte{0}, Ints().AppendKey(nil))
}

func TestKeyOfLongValue(t *testing.T) {
	long := bytes.Repeat([]byte("x"), 1000)
	require.Equal(t, long, keyOf(Bytes(long)))
	require.Empty(t, keyOf(String("")))
}
