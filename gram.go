package ngramdex

// GramID is a dense, zero-based handle into a Vocabulary. It is stable for
// the lifetime of a built corpus and invalid once the vocabulary is rebuilt.
type GramID uint32

// Gram is a fixed-arity run of runes cut from a padded key. Two grams with
// the same runes are the same gram.
type Gram string

// GramStream is the ordered sequence of grams produced by shingling one string.
type GramStream struct {
	Grams []Gram
}

func NewGramStream(grams []Gram) GramStream {
	return GramStream{
		Grams: grams,
	}
}

func (gs GramStream) Size() int {
	return len(gs.Grams)
}

// Counts collapses the stream into a gram multiset.
func (gs GramStream) Counts() map[Gram]int {
	counts := make(map[Gram]int, len(gs.Grams))
	for _, g := range gs.Grams {
		counts[g]++
	}
	return counts
}
