package ngramdex

import "sort"

// Posting pairs a document with the number of times a gram occurs in it.
// Postings for one gram are ordered by ascending DocumentID.
type Posting struct {
	DocumentID DocumentID
	Count      int
}

// GramCount pairs a gram with its occurrence count inside one document.
type GramCount struct {
	GramID GramID
	Count  int
}

// InvertedIndex stores the document-gram incidence as two read-only CSR
// halves over bit-packed arrays: gram-major postings for query-time lookup
// and document-major edges for per-document introspection. Offsets are
// Elias-Fano compressed so locating a block is O(1); the structure is built
// once in bulk and never mutated afterwards.
type InvertedIndex struct {
	numDocs  int
	numGrams int

	gramOffsets *EliasFano   // numGrams+1 cumulative posting counts
	gramDocs    *BitFieldVec // posting document ids, ascending within a block
	gramCounts  *BitFieldVec // per-posting term count, parallel to gramDocs

	docOffsets *EliasFano   // numDocs+1 cumulative edge counts
	docGrams   *BitFieldVec // gram ids per document, ascending within a block
}

// newInvertedIndex bulk-builds the index. docEdges[d] must list the distinct
// grams of document d with their in-document counts, sorted by ascending
// GramID. Iterating documents in id order places posting document ids in
// ascending order without any further sorting.
func newInvertedIndex(numDocs, numGrams int, docEdges [][]GramCount) *InvertedIndex {
	totalEdges := 0
	maxCount := 0
	degrees := make([]int, numGrams)
	docCum := make([]uint64, numDocs+1)
	for d, edges := range docEdges {
		totalEdges += len(edges)
		docCum[d+1] = uint64(totalEdges)
		for _, e := range edges {
			degrees[e.GramID]++
			if e.Count > maxCount {
				maxCount = e.Count
			}
		}
	}

	gramCum := make([]uint64, numGrams+1)
	cursors := make([]int, numGrams)
	sum := 0
	for g, deg := range degrees {
		cursors[g] = sum
		sum += deg
		gramCum[g+1] = uint64(sum)
	}

	docWidth := 1
	if numDocs > 1 {
		docWidth = bitWidthFor(uint64(numDocs - 1))
	}
	gramWidth := 1
	if numGrams > 1 {
		gramWidth = bitWidthFor(uint64(numGrams - 1))
	}

	idx := &InvertedIndex{
		numDocs:     numDocs,
		numGrams:    numGrams,
		gramOffsets: NewEliasFano(gramCum),
		gramDocs:    NewBitFieldVec(docWidth, totalEdges),
		gramCounts:  NewBitFieldVec(bitWidthFor(uint64(maxCount)), totalEdges),
		docOffsets:  NewEliasFano(docCum),
		docGrams:    NewBitFieldVec(gramWidth, totalEdges),
	}

	pos := 0
	for d, edges := range docEdges {
		for _, e := range edges {
			p := cursors[e.GramID]
			cursors[e.GramID] = p + 1
			idx.gramDocs.Set(p, uint64(d))
			idx.gramCounts.Set(p, uint64(e.Count))
			idx.docGrams.Set(pos, uint64(e.GramID))
			pos++
		}
	}
	return idx
}

func (idx *InvertedIndex) NumDocuments() int {
	return idx.numDocs
}

func (idx *InvertedIndex) NumGrams() int {
	return idx.numGrams
}

func (idx *InvertedIndex) NumPostings() int {
	return idx.gramDocs.Len()
}

func (idx *InvertedIndex) gramBlock(id GramID) (int, int) {
	g := int(id)
	if g >= idx.numGrams {
		return 0, 0
	}
	return int(idx.gramOffsets.Access(g)), int(idx.gramOffsets.Access(g + 1))
}

// DocumentFrequency returns the number of distinct documents containing the
// gram, which by construction equals the posting block length.
func (idx *InvertedIndex) DocumentFrequency(id GramID) int {
	start, end := idx.gramBlock(id)
	return end - start
}

// Postings returns the posting sequence of a gram, ordered by ascending
// DocumentID.
func (idx *InvertedIndex) Postings(id GramID) []Posting {
	start, end := idx.gramBlock(id)
	postings := make([]Posting, 0, end-start)
	for p := start; p < end; p++ {
		postings = append(postings, Posting{
			DocumentID: DocumentID(idx.gramDocs.Get(p)),
			Count:      int(idx.gramCounts.Get(p)),
		})
	}
	return postings
}

// walkPostings streams a posting block without materializing it.
func (idx *InvertedIndex) walkPostings(id GramID, fn func(DocumentID, int)) {
	start, end := idx.gramBlock(id)
	for p := start; p < end; p++ {
		fn(DocumentID(idx.gramDocs.Get(p)), int(idx.gramCounts.Get(p)))
	}
}

// GramDegree returns how many distinct grams a document contains.
func (idx *InvertedIndex) GramDegree(d DocumentID) int {
	if int(d) >= idx.numDocs {
		return 0
	}
	return int(idx.docOffsets.Access(int(d)+1) - idx.docOffsets.Access(int(d)))
}

// GramCounts returns the distinct grams of a document with their counts,
// ordered by ascending GramID.
func (idx *InvertedIndex) GramCounts(d DocumentID) []GramCount {
	if int(d) >= idx.numDocs {
		return nil
	}
	start := int(idx.docOffsets.Access(int(d)))
	end := int(idx.docOffsets.Access(int(d) + 1))
	edges := make([]GramCount, 0, end-start)
	for p := start; p < end; p++ {
		id := GramID(idx.docGrams.Get(p))
		edges = append(edges, GramCount{
			GramID: id,
			Count:  idx.countFor(id, d),
		})
	}
	return edges
}

// countFor binary-searches a posting block for one document.
func (idx *InvertedIndex) countFor(id GramID, d DocumentID) int {
	start, end := idx.gramBlock(id)
	i := sort.Search(end-start, func(i int) bool {
		return DocumentID(idx.gramDocs.Get(start+i)) >= d
	})
	if i < end-start && DocumentID(idx.gramDocs.Get(start+i)) == d {
		return int(idx.gramCounts.Get(start + i))
	}
	return 0
}
