package bloom

import "encoding/binary"

// Hashable is implemented by values that can be inserted into a Filter.
//
// AppendKey appends a canonical encoding of the value to b and returns the
// extended slice. Equal values must produce equal encodings.
type Hashable interface {
	AppendKey(b []byte) []byte
}

// Bytes is a Hashable byte slice. Its encoding is the slice itself.
type Bytes []byte

func (p Bytes) AppendKey(b []byte) []byte { return append(b, p...) }

// String is a Hashable string. Its encoding is the string's bytes.
type String string

func (s String) AppendKey(b []byte) []byte { return append(b, s...) }

// Int is a Hashable signed integer, encoded as 8 little-endian bytes.
type Int int64

func (i Int) AppendKey(b []byte) []byte { return binary.LittleEndian.AppendUint64(b, uint64(i)) }

// Uint is a Hashable unsigned integer, encoded as 8 little-endian bytes.
type Uint uint64

func (u Uint) AppendKey(b []byte) []byte { return binary.LittleEndian.AppendUint64(b, uint64(u)) }

// Seq is a Hashable sequence of values.
//
// The encoding is the element count followed by each element's encoding,
// every one prefixed by its length as a uvarint, so Seq{String("ab"),
// String("c")} and Seq{String("a"), String("bc")} hash differently.
type Seq []Hashable

func (s Seq) AppendKey(b []byte) []byte {
	b = binary.AppendUvarint(b, uint64(len(s)))
	var elem []byte
	for _, x := range s {
		elem = x.AppendKey(elem[:0])
		b = binary.AppendUvarint(b, uint64(len(elem)))
		b = append(b, elem...)
	}
	return b
}

// Ints returns the Seq of xs as Int values.
func Ints(xs ...int) Seq {
	s := make(Seq, len(xs))
	for i, x := range xs {
		s[i] = Int(x)
	}
	return s
}

// keyOf encodes x into a small stack buffer when it fits.
func keyOf(x Hashable) []byte {
	var buf [64]byte
	return x.AppendKey(buf[:0])
}
