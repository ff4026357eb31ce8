package ngramdex

import "math/bits"

// BitFieldVec is a fixed-width bit-packed integer array. It replaces
// pointer-per-entry posting structures with a flat word slice: n values of
// width w occupy ceil(n*w/64) words regardless of the machine word size.
// Writable only during a bulk build; read-only afterwards.
type BitFieldVec struct {
	width int
	mask  uint64
	n     int
	words []uint64
}

// bitWidthFor returns how many bits are needed to store max.
func bitWidthFor(max uint64) int {
	if max == 0 {
		return 1
	}
	return bits.Len64(max)
}

func NewBitFieldVec(width, n int) *BitFieldVec {
	if width < 1 {
		width = 1
	}
	if width > 64 {
		width = 64
	}
	mask := ^uint64(0)
	if width < 64 {
		mask = (uint64(1) << width) - 1
	}
	return &BitFieldVec{
		width: width,
		mask:  mask,
		n:     n,
		words: make([]uint64, (n*width+63)/64+1),
	}
}

// rawBitFieldVec reassembles a vector from its persisted parts without
// copying the word slice.
func rawBitFieldVec(width, n int, words []uint64) *BitFieldVec {
	mask := ^uint64(0)
	if width < 64 {
		mask = (uint64(1) << width) - 1
	}
	return &BitFieldVec{
		width: width,
		mask:  mask,
		n:     n,
		words: words,
	}
}

func (v *BitFieldVec) Len() int {
	return v.n
}

func (v *BitFieldVec) Width() int {
	return v.width
}

func (v *BitFieldVec) Get(i int) uint64 {
	pos := i * v.width
	w, b := pos/64, pos%64
	x := v.words[w] >> b
	if b+v.width > 64 {
		x |= v.words[w+1] << (64 - b)
	}
	return x & v.mask
}

func (v *BitFieldVec) Set(i int, x uint64) {
	x &= v.mask
	pos := i * v.width
	w, b := pos/64, pos%64
	v.words[w] &^= v.mask << b
	v.words[w] |= x << b
	if b+v.width > 64 {
		rem := 64 - b
		v.words[w+1] &^= v.mask >> rem
		v.words[w+1] |= x >> rem
	}
}
