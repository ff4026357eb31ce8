package ngramdex

// Corpus is a finalized, immutable n-gram index over a set of keys. It owns
// the vocabulary, the documents, the inverted index and the weight tables as
// one unit; once built it may be shared by any number of concurrent readers
// without synchronization.
type Corpus struct {
	shingler   *Shingler
	vocabulary *Vocabulary
	documents  []Document
	index      *InvertedIndex
	weights    *WeightTables
	prefix     *prefixIndex
}

func (c *Corpus) NumDocuments() int {
	return len(c.documents)
}

func (c *Corpus) NumGrams() int {
	return c.vocabulary.Size()
}

func (c *Corpus) Scheme() WeightingScheme {
	return c.weights.scheme
}

// Document returns the document for an id assigned during the build.
func (c *Corpus) Document(d DocumentID) (Document, bool) {
	if int(d) >= len(c.documents) {
		return Document{}, false
	}
	return c.documents[d], true
}

// Key returns the original key string of a document.
func (c *Corpus) Key(d DocumentID) string {
	return c.documents[d].Key
}

// GramID resolves a gram to its id, reporting whether the corpus contains it.
func (c *Corpus) GramID(gram Gram) (GramID, bool) {
	return c.vocabulary.Lookup(gram)
}

// GramByID is the inverse of GramID for ids the corpus assigned.
func (c *Corpus) GramByID(id GramID) Gram {
	return c.vocabulary.Resolve(id)
}

func (c *Corpus) DocumentFrequency(id GramID) int {
	return c.index.DocumentFrequency(id)
}

func (c *Corpus) IDF(id GramID) float64 {
	return c.weights.IDF(id)
}

// Postings returns the posting sequence of a gram in ascending DocumentID
// order.
func (c *Corpus) Postings(id GramID) []Posting {
	return c.index.Postings(id)
}

// GramCounts returns the distinct grams of a document with their counts.
func (c *Corpus) GramCounts(d DocumentID) []GramCount {
	return c.index.GramCounts(d)
}

// PrefixSearch returns the keys starting with prefix in ascending
// DocumentID order. The prefix is normalized the same way corpus keys were.
// An unknown prefix yields an empty slice.
func (c *Corpus) PrefixSearch(prefix string) []string {
	ids := c.prefix.lookup(c.shingler.normalize(prefix))
	keys := make([]string, len(ids))
	for i, d := range ids {
		keys[i] = c.documents[d].Key
	}
	return keys
}
