package ngramdex

import "sync"

// Vocabulary interns each distinct gram into a dense GramID. Interning is
// safe for concurrent use; every distinct gram receives exactly one id, and
// ids are assigned sequentially in first-intern order.
type Vocabulary struct {
	mu    sync.RWMutex
	ids   map[Gram]GramID
	grams []Gram
}

func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		ids: make(map[Gram]GramID),
	}
}

// newVocabularyFromGrams rebuilds a vocabulary whose ids are the slice
// positions, as persisted.
func newVocabularyFromGrams(grams []Gram) *Vocabulary {
	v := &Vocabulary{
		ids:   make(map[Gram]GramID, len(grams)),
		grams: grams,
	}
	for i, g := range grams {
		v.ids[g] = GramID(i)
	}
	return v
}

// Intern returns the id already assigned to gram, or assigns the next
// sequential id to it.
func (v *Vocabulary) Intern(gram Gram) GramID {
	v.mu.RLock()
	id, ok := v.ids[gram]
	v.mu.RUnlock()
	if ok {
		return id
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if id, ok := v.ids[gram]; ok {
		return id
	}
	id = GramID(len(v.grams))
	v.ids[gram] = id
	v.grams = append(v.grams, gram)
	return id
}

// Lookup returns the id of gram without interning it.
func (v *Vocabulary) Lookup(gram Gram) (GramID, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	id, ok := v.ids[gram]
	return id, ok
}

// Resolve is the exact inverse of Intern. It never fails for ids returned
// by a prior Intern on the same vocabulary.
func (v *Vocabulary) Resolve(id GramID) Gram {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.grams[id]
}

func (v *Vocabulary) Size() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.grams)
}
