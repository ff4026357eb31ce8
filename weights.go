package ngramdex

import "math"

// TFScheme selects how an in-document gram count becomes a term-frequency
// value.
type TFScheme int

const (
	TFRaw TFScheme = iota
	TFLog
	TFAugmented
)

// IDFScheme selects how document frequency becomes an inverse-document-
// frequency value.
type IDFScheme int

const (
	IDFPlain IDFScheme = iota
	IDFSmoothed
)

// WeightingScheme is the tf/idf combination fixed at build time. A corpus
// and its queries always weight with the same scheme.
type WeightingScheme struct {
	TF  TFScheme
	IDF IDFScheme
}

// idfValue computes the idf of one gram. A zero document frequency yields
// zero, so the gram can never contribute to a score.
func idfValue(scheme IDFScheme, totalDocs, docFreq int) float64 {
	if docFreq == 0 || totalDocs == 0 {
		return 0
	}
	switch scheme {
	case IDFSmoothed:
		return math.Log(1 + float64(totalDocs)/float64(docFreq))
	default:
		return math.Log(float64(totalDocs) / float64(docFreq))
	}
}

// tfValue computes the term-frequency value of one (document, gram) pair.
// maxCount is the largest gram count in the same document and is only
// consulted by the augmented scheme.
func tfValue(scheme TFScheme, count, maxCount int) float64 {
	if count == 0 {
		return 0
	}
	switch scheme {
	case TFLog:
		return 1 + math.Log(float64(count))
	case TFAugmented:
		return 0.5 + 0.5*float64(count)/float64(maxCount)
	default:
		return float64(count)
	}
}

// WeightTables holds the values derived once at finalize time: idf per gram,
// the tf-idf vector norm per document, and the per-document maximal gram
// count the augmented tf scheme divides by. All read-only after the corpus
// is finalized.
type WeightTables struct {
	scheme    WeightingScheme
	idf       []float64
	norms     []float64
	maxCounts *BitFieldVec
}

// newWeightTables derives the tables from the per-document edge lists the
// builder accumulated.
func newWeightTables(scheme WeightingScheme, numGrams int, docEdges [][]GramCount, docFreqs []int) *WeightTables {
	numDocs := len(docEdges)
	wt := &WeightTables{
		scheme: scheme,
		idf:    make([]float64, numGrams),
		norms:  make([]float64, numDocs),
	}
	for g := 0; g < numGrams; g++ {
		wt.idf[g] = idfValue(scheme.IDF, numDocs, docFreqs[g])
	}

	maxCounts := make([]int, numDocs)
	for d, edges := range docEdges {
		for _, e := range edges {
			if e.Count > maxCounts[d] {
				maxCounts[d] = e.Count
			}
		}
	}
	globalMax := 0
	for _, m := range maxCounts {
		if m > globalMax {
			globalMax = m
		}
	}
	wt.maxCounts = NewBitFieldVec(bitWidthFor(uint64(globalMax)), numDocs)
	for d, m := range maxCounts {
		wt.maxCounts.Set(d, uint64(m))
	}

	for d, edges := range docEdges {
		var sum float64
		for _, e := range edges {
			w := tfValue(scheme.TF, e.Count, maxCounts[d]) * wt.idf[e.GramID]
			sum += w * w
		}
		wt.norms[d] = math.Sqrt(sum)
	}
	return wt
}

// IDF returns the inverse document frequency of a gram.
func (wt *WeightTables) IDF(id GramID) float64 {
	if int(id) >= len(wt.idf) {
		return 0
	}
	return wt.idf[id]
}

// Norm returns the tf-idf vector norm of a document.
func (wt *WeightTables) Norm(d DocumentID) float64 {
	return wt.norms[d]
}

// MaxCount returns the largest gram count within a document.
func (wt *WeightTables) MaxCount(d DocumentID) int {
	return int(wt.maxCounts.Get(int(d)))
}
