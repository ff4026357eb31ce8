package ngramdex

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/pierrec/lz4/v4"
)

// Persisted corpus container: a fixed little-endian header carrying the
// format version, the shingler configuration and the table sizes, followed
// by an lz4-compressed body holding the keys, the vocabulary, the bit-packed
// index arrays and the weight tables. The header records an xxhash64 digest
// of the uncompressed body so corruption is told apart from version skew.
const (
	formatMagic   uint32 = 0x4E474458 // "NGDX"
	formatVersion uint32 = 1
	headerSize           = 56
)

// Save serializes the corpus. The byte stream is deterministic: the same
// corpus always saves to the same bytes.
func (c *Corpus) Save(w io.Writer) error {
	var raw bytes.Buffer
	bw := &bodyWriter{w: &raw}

	for _, doc := range c.documents {
		bw.writeString(doc.Key)
		bw.writeUint64(math.Float64bits(doc.Weight))
	}
	for id := 0; id < c.vocabulary.Size(); id++ {
		bw.writeString(string(c.vocabulary.Resolve(GramID(id))))
	}
	bw.writeEliasFano(c.index.gramOffsets)
	bw.writeBitFieldVec(c.index.gramDocs)
	bw.writeBitFieldVec(c.index.gramCounts)
	bw.writeEliasFano(c.index.docOffsets)
	bw.writeBitFieldVec(c.index.docGrams)
	bw.writeFloats(c.weights.idf)
	bw.writeFloats(c.weights.norms)
	bw.writeBitFieldVec(c.weights.maxCounts)
	if bw.err != nil {
		return bw.err
	}

	var compressed bytes.Buffer
	zw := lz4.NewWriter(&compressed)
	if _, err := zw.Write(raw.Bytes()); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}

	header := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(header[0:4], formatMagic)
	binary.LittleEndian.PutUint32(header[4:8], formatVersion)
	binary.LittleEndian.PutUint32(header[8:12], uint32(c.shingler.arity))
	binary.LittleEndian.PutUint32(header[12:16], uint32(c.shingler.padLeft))
	binary.LittleEndian.PutUint32(header[16:20], uint32(c.shingler.padRight))
	if c.shingler.caseFold {
		header[20] = 1
	}
	header[21] = byte(c.weights.scheme.TF)
	header[22] = byte(c.weights.scheme.IDF)
	binary.LittleEndian.PutUint32(header[24:28], uint32(len(c.documents)))
	binary.LittleEndian.PutUint32(header[28:32], uint32(c.vocabulary.Size()))
	binary.LittleEndian.PutUint64(header[32:40], uint64(raw.Len()))
	binary.LittleEndian.PutUint64(header[40:48], uint64(compressed.Len()))
	binary.LittleEndian.PutUint64(header[48:56], xxhash.Sum64(raw.Bytes()))

	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err := w.Write(compressed.Bytes())
	return err
}

// Load reconstructs a corpus saved by Save. Char filters do not survive
// serialization; corpora built with a filter chain must pass the same chain
// here, in the same order.
func Load(r io.Reader, filters ...CharFilter) (*Corpus, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w: short header: %v", ErrCorruptData, err)
	}
	if binary.LittleEndian.Uint32(header[0:4]) != formatMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrCorruptData)
	}
	if v := binary.LittleEndian.Uint32(header[4:8]); v != formatVersion {
		return nil, fmt.Errorf("%w: got format version %d, want %d", ErrVersionMismatch, v, formatVersion)
	}

	arity := int(binary.LittleEndian.Uint32(header[8:12]))
	padLeft := int(binary.LittleEndian.Uint32(header[12:16]))
	padRight := int(binary.LittleEndian.Uint32(header[16:20]))
	caseFold := header[20] == 1
	scheme := WeightingScheme{TF: TFScheme(header[21]), IDF: IDFScheme(header[22])}
	numDocs := int(binary.LittleEndian.Uint32(header[24:28]))
	vocabSize := int(binary.LittleEndian.Uint32(header[28:32]))
	rawLen := binary.LittleEndian.Uint64(header[32:40])
	digest := binary.LittleEndian.Uint64(header[48:56])

	raw := make([]byte, rawLen)
	if _, err := io.ReadFull(lz4.NewReader(r), raw); err != nil {
		return nil, fmt.Errorf("%w: short body: %v", ErrCorruptData, err)
	}
	if xxhash.Sum64(raw) != digest {
		return nil, fmt.Errorf("%w: body digest mismatch", ErrCorruptData)
	}

	options := []ShinglerOption{WithPadding(padLeft, padRight)}
	if caseFold {
		options = append(options, WithCaseFold())
	}
	if len(filters) > 0 {
		options = append(options, WithCharFilters(filters...))
	}
	shingler, err := NewShingler(arity, options...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	br := &bodyReader{buf: raw}
	documents := make([]Document, numDocs)
	for i := range documents {
		documents[i] = Document{
			ID:  DocumentID(i),
			Key: br.readString(),
		}
		documents[i].Weight = math.Float64frombits(br.readUint64())
	}
	grams := make([]Gram, vocabSize)
	for i := range grams {
		grams[i] = Gram(br.readString())
	}

	index := &InvertedIndex{
		numDocs:     numDocs,
		numGrams:    vocabSize,
		gramOffsets: br.readEliasFano(),
		gramDocs:    br.readBitFieldVec(),
		gramCounts:  br.readBitFieldVec(),
		docOffsets:  br.readEliasFano(),
		docGrams:    br.readBitFieldVec(),
	}
	weights := &WeightTables{
		scheme:    scheme,
		idf:       br.readFloats(),
		norms:     br.readFloats(),
		maxCounts: br.readBitFieldVec(),
	}
	if br.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, br.err)
	}
	if len(br.buf) != 0 {
		return nil, fmt.Errorf("%w: %d trailing body bytes", ErrCorruptData, len(br.buf))
	}

	prefix := newPrefixIndex()
	for i := range documents {
		prefix.insert(shingler.normalize(documents[i].Key), DocumentID(i))
	}

	return &Corpus{
		shingler:   shingler,
		vocabulary: newVocabularyFromGrams(grams),
		documents:  documents,
		index:      index,
		weights:    weights,
		prefix:     prefix,
	}, nil
}

type bodyWriter struct {
	w   io.Writer
	err error
}

func (bw *bodyWriter) writeUint64(x uint64) {
	if bw.err != nil {
		return
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], x)
	_, bw.err = bw.w.Write(b[:])
}

func (bw *bodyWriter) writeString(s string) {
	bw.writeUint64(uint64(len(s)))
	if bw.err != nil {
		return
	}
	_, bw.err = io.WriteString(bw.w, s)
}

func (bw *bodyWriter) writeWords(words []uint64) {
	bw.writeUint64(uint64(len(words)))
	for _, w := range words {
		bw.writeUint64(w)
	}
}

func (bw *bodyWriter) writeFloats(values []float64) {
	bw.writeUint64(uint64(len(values)))
	for _, v := range values {
		bw.writeUint64(math.Float64bits(v))
	}
}

func (bw *bodyWriter) writeBitFieldVec(v *BitFieldVec) {
	bw.writeUint64(uint64(v.width))
	bw.writeUint64(uint64(v.n))
	bw.writeWords(v.words)
}

func (bw *bodyWriter) writeEliasFano(ef *EliasFano) {
	bw.writeUint64(uint64(ef.n))
	bw.writeUint64(uint64(ef.lowWidth))
	if ef.low != nil {
		bw.writeUint64(1)
		bw.writeBitFieldVec(ef.low)
	} else {
		bw.writeUint64(0)
	}
	bw.writeWords(ef.high)
	bw.writeUint64(uint64(len(ef.samples)))
	for _, s := range ef.samples {
		bw.writeUint64(uint64(s))
	}
}

type bodyReader struct {
	buf []byte
	err error
}

func (br *bodyReader) fail(format string, args ...interface{}) {
	if br.err == nil {
		br.err = fmt.Errorf(format, args...)
	}
}

func (br *bodyReader) readUint64() uint64 {
	if br.err != nil {
		return 0
	}
	if len(br.buf) < 8 {
		br.fail("truncated uint64")
		return 0
	}
	x := binary.LittleEndian.Uint64(br.buf[:8])
	br.buf = br.buf[8:]
	return x
}

// readLen reads a length-prefix and bounds it by the remaining bytes so a
// corrupt prefix cannot trigger a huge allocation.
func (br *bodyReader) readLen(itemSize int) int {
	n := br.readUint64()
	if br.err != nil {
		return 0
	}
	if itemSize > 0 && n > uint64(len(br.buf)/itemSize) {
		br.fail("length %d exceeds remaining body", n)
		return 0
	}
	return int(n)
}

func (br *bodyReader) readString() string {
	n := br.readLen(1)
	if br.err != nil {
		return ""
	}
	s := string(br.buf[:n])
	br.buf = br.buf[n:]
	return s
}

func (br *bodyReader) readWords() []uint64 {
	n := br.readLen(8)
	words := make([]uint64, n)
	for i := range words {
		words[i] = br.readUint64()
	}
	return words
}

func (br *bodyReader) readFloats() []float64 {
	n := br.readLen(8)
	values := make([]float64, n)
	for i := range values {
		values[i] = math.Float64frombits(br.readUint64())
	}
	return values
}

func (br *bodyReader) readBitFieldVec() *BitFieldVec {
	width := int(br.readUint64())
	n := int(br.readUint64())
	words := br.readWords()
	if br.err != nil {
		return nil
	}
	if width < 1 || width > 64 || len(words) < (n*width+63)/64 {
		br.fail("inconsistent bit field vector header")
		return nil
	}
	return rawBitFieldVec(width, n, words)
}

func (br *bodyReader) readEliasFano() *EliasFano {
	n := int(br.readUint64())
	lowWidth := int(br.readUint64())
	var low *BitFieldVec
	if br.readUint64() == 1 {
		low = br.readBitFieldVec()
	}
	high := br.readWords()
	sampleCount := br.readLen(8)
	samples := make([]int, sampleCount)
	for i := range samples {
		samples[i] = int(br.readUint64())
	}
	if br.err != nil {
		return nil
	}
	if len(high) == 0 || (n > 0 && len(samples) == 0) {
		br.fail("inconsistent elias-fano header")
		return nil
	}
	return rawEliasFano(n, lowWidth, low, high, samples)
}
