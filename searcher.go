package ngramdex

import (
	"container/heap"
	"math"
	"sort"
)

// SearchResult is one ranked fuzzy match: the matched key and its cosine
// similarity to the query over the tf-idf gram space.
type SearchResult struct {
	DocumentID DocumentID
	Key        string
	Score      float64
}

// Search shingles the query with the corpus shingler, accumulates a weighted
// score per candidate document term-at-a-time, normalizes by the query and
// document vector norms, and returns up to topK results with similarity of
// at least minSimilarity, ordered by descending score with ties broken by
// ascending DocumentID. Unknown query grams contribute nothing; an empty
// result is a normal outcome, not an error.
func (c *Corpus) Search(query string, topK int, minSimilarity float64) []SearchResult {
	return c.search(c.shingler.Shingle(query), topK, minSimilarity)
}

// SearchWithShingler is Search with a caller-supplied shingler, for callers
// that pre-build query pipelines. The shingler must cut grams the same way
// the corpus was built; otherwise ErrConfigurationMismatch is returned.
func (c *Corpus) SearchWithShingler(shingler *Shingler, query string, topK int, minSimilarity float64) ([]SearchResult, error) {
	if !shingler.equalConfig(c.shingler) {
		return nil, ErrConfigurationMismatch
	}
	return c.search(shingler.Shingle(query), topK, minSimilarity), nil
}

// queryTerm is one resolved query gram with its precomputed query-side
// weight.
type queryTerm struct {
	id     GramID
	weight float64 // query tf * idf
	idf    float64
}

func (c *Corpus) search(stream GramStream, topK int, minSimilarity float64) []SearchResult {
	results := []SearchResult{}
	if topK <= 0 || stream.Size() == 0 {
		return results
	}

	counts := stream.Counts()
	queryMax := 0
	for _, count := range counts {
		if count > queryMax {
			queryMax = count
		}
	}

	// Resolve the query grams and sort by GramID so that score accumulation
	// order, and with it floating point rounding, is reproducible.
	scheme := c.weights.scheme
	terms := make([]queryTerm, 0, len(counts))
	for gram, count := range counts {
		id, ok := c.vocabulary.Lookup(gram)
		if !ok {
			continue
		}
		idf := c.weights.IDF(id)
		terms = append(terms, queryTerm{id: id, weight: tfValue(scheme.TF, count, queryMax) * idf, idf: idf})
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].id < terms[j].id })

	var queryNorm float64
	for _, t := range terms {
		queryNorm += t.weight * t.weight
	}
	queryNorm = math.Sqrt(queryNorm)
	if queryNorm == 0 {
		return results
	}

	// Term-at-a-time accumulation of the dot product in tf-idf space.
	scores := make(map[DocumentID]float64)
	for _, t := range terms {
		t := t
		c.index.walkPostings(t.id, func(d DocumentID, count int) {
			dtf := tfValue(scheme.TF, count, c.weights.MaxCount(d))
			scores[d] += t.weight * dtf * t.idf
		})
	}

	top := newResultHeap(topK)
	for d, dot := range scores {
		norm := c.weights.Norm(d)
		if norm == 0 {
			continue
		}
		similarity := dot / (queryNorm * norm) * c.documents[d].Weight
		if similarity < minSimilarity {
			continue
		}
		top.push(SearchResult{
			DocumentID: d,
			Key:        c.documents[d].Key,
			Score:      similarity,
		})
	}
	return top.sorted()
}

// resultHeap keeps the topK best results seen so far as a bounded min-heap:
// the worst kept result sits on top and is evicted by anything better, so a
// scan over D candidates costs O(D log k) instead of a full sort.
type resultHeap struct {
	results []SearchResult
	limit   int
}

func newResultHeap(limit int) *resultHeap {
	return &resultHeap{
		results: make([]SearchResult, 0, limit),
		limit:   limit,
	}
}

// beats reports whether a outranks b: higher score first, smaller
// DocumentID on ties.
func beats(a, b SearchResult) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.DocumentID < b.DocumentID
}

func (h *resultHeap) Len() int            { return len(h.results) }
func (h *resultHeap) Less(i, j int) bool  { return beats(h.results[j], h.results[i]) }
func (h *resultHeap) Swap(i, j int)       { h.results[i], h.results[j] = h.results[j], h.results[i] }
func (h *resultHeap) Push(x interface{})  { h.results = append(h.results, x.(SearchResult)) }
func (h *resultHeap) Pop() interface{} {
	last := h.results[len(h.results)-1]
	h.results = h.results[:len(h.results)-1]
	return last
}

func (h *resultHeap) push(r SearchResult) {
	if len(h.results) < h.limit {
		heap.Push(h, r)
		return
	}
	if beats(r, h.results[0]) {
		h.results[0] = r
		heap.Fix(h, 0)
	}
}

// sorted drains the heap into descending rank order.
func (h *resultHeap) sorted() []SearchResult {
	out := make([]SearchResult, len(h.results))
	for i := len(h.results) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(SearchResult)
	}
	return out
}
