package ngramdex

import "math/bits"

// selectQuantum is how often (in set bits) the Elias-Fano upper bit vector
// records a position sample for select queries.
const selectQuantum = 256

// EliasFano is a monotone non-decreasing integer sequence compressed to
// roughly 2 + log2(u/n) bits per element: the low l = log2(u/n) bits of each
// value are bit-packed, the high bits become a unary-coded bit vector with
// sampled select support. Built in one shot from a sorted slice; read-only
// afterwards. Access(i) is O(1) amortized via the select samples.
type EliasFano struct {
	n        int
	lowWidth int
	low      *BitFieldVec
	high     []uint64
	samples  []int
}

// NewEliasFano compresses values, which must be sorted in non-decreasing
// order.
func NewEliasFano(values []uint64) *EliasFano {
	n := len(values)
	ef := &EliasFano{n: n}
	if n == 0 {
		ef.high = []uint64{0}
		return ef
	}

	upper := values[n-1]
	if q := upper / uint64(n); q > 0 {
		ef.lowWidth = bits.Len64(q) - 1
	}
	if ef.lowWidth > 0 {
		ef.low = NewBitFieldVec(ef.lowWidth, n)
	}

	highBits := n + int(upper>>ef.lowWidth) + 1
	ef.high = make([]uint64, (highBits+63)/64+1)
	for i, v := range values {
		if ef.lowWidth > 0 {
			ef.low.Set(i, v&((uint64(1)<<ef.lowWidth)-1))
		}
		pos := int(v>>ef.lowWidth) + i
		ef.high[pos/64] |= 1 << (pos % 64)
	}

	ef.samples = make([]int, 0, n/selectQuantum+1)
	seen := 0
	for w, word := range ef.high {
		for word != 0 {
			if seen%selectQuantum == 0 {
				ef.samples = append(ef.samples, w*64+bits.TrailingZeros64(word))
			}
			word &= word - 1
			seen++
		}
	}
	return ef
}

// rawEliasFano reassembles a sequence from its persisted parts.
func rawEliasFano(n, lowWidth int, low *BitFieldVec, high []uint64, samples []int) *EliasFano {
	return &EliasFano{
		n:        n,
		lowWidth: lowWidth,
		low:      low,
		high:     high,
		samples:  samples,
	}
}

func (ef *EliasFano) Len() int {
	return ef.n
}

// Access returns the i-th value of the sequence.
func (ef *EliasFano) Access(i int) uint64 {
	highPart := uint64(ef.selectHigh(i) - i)
	if ef.lowWidth == 0 {
		return highPart
	}
	return highPart<<ef.lowWidth | ef.low.Get(i)
}

// selectHigh returns the bit position of the i-th set bit of the upper bit
// vector, starting the scan from the nearest sample.
func (ef *EliasFano) selectHigh(i int) int {
	sample := i / selectQuantum
	pos := ef.samples[sample]
	seen := sample * selectQuantum

	w := pos / 64
	word := ef.high[w] & (^uint64(0) << (pos % 64))
	for {
		c := bits.OnesCount64(word)
		if seen+c > i {
			for r := i - seen; r > 0; r-- {
				word &= word - 1
			}
			return w*64 + bits.TrailingZeros64(word)
		}
		seen += c
		w++
		word = ef.high[w]
	}
}
