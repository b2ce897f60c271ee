package cpu

import (
	"encoding/binary"
)

// ByteOrder returns the byte order instruction words are stored in for m.
func (m Mode) ByteOrder() binary.ByteOrder {
	if m.Has(ModeBigEndian) {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// WordsToBytes converts a slice of 32-bit instruction words to bytes in the
// byte order of m.
func WordsToBytes(words []uint32, m Mode) []byte {
	ord := m.ByteOrder()
	out := make([]byte, len(words)*4)
	for i, w := range words {
		ord.PutUint32(out[i*4:], w)
	}
	return out
}

// BytesToWords interprets b as 32-bit instruction words in the byte order of
// m. Trailing bytes that do not make up a whole word are ignored.
func BytesToWords(b []byte, m Mode) []uint32 {
	ord := m.ByteOrder()
	out := make([]uint32, len(b)/4)
	for i := range out {
		out[i] = ord.Uint32(b[i*4:])
	}
	return out
}
