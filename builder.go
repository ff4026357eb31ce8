package ngramdex

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// CorpusBuilder accretes (key, weight) pairs and turns them into an
// immutable Corpus in one Finalize pass. A builder is single-use: Add and
// Finalize fail with ErrAlreadyFinalized once Finalize has run.
type CorpusBuilder struct {
	shingler    *Shingler
	scheme      WeightingScheme
	parallelism int
	pending     []Document
	finalized   bool
}

type BuilderOption func(*CorpusBuilder)

func WithWeighting(tf TFScheme, idf IDFScheme) BuilderOption {
	return func(b *CorpusBuilder) {
		b.scheme = WeightingScheme{TF: tf, IDF: idf}
	}
}

// WithParallelism bounds the finalize worker pool. Zero or negative picks
// one worker per CPU.
func WithParallelism(workers int) BuilderOption {
	return func(b *CorpusBuilder) {
		b.parallelism = workers
	}
}

func NewCorpusBuilder(shingler *Shingler, options ...BuilderOption) *CorpusBuilder {
	b := &CorpusBuilder{
		shingler: shingler,
	}
	for _, option := range options {
		option(b)
	}
	return b
}

func (b *CorpusBuilder) Add(key string) error {
	return b.AddWeighted(key, 1)
}

func (b *CorpusBuilder) AddWeighted(key string, weight float64) error {
	if b.finalized {
		return ErrAlreadyFinalized
	}
	doc := NewDocument(key, weight)
	doc.ID = DocumentID(len(b.pending))
	b.pending = append(b.pending, doc)
	return nil
}

// AddSource drains a key source into the builder, preserving its order.
func (b *CorpusBuilder) AddSource(source KeySource) error {
	records, err := source.GetAllKeys()
	if err != nil {
		return err
	}
	for _, r := range records {
		if err := b.AddWeighted(r.Key, r.Weight); err != nil {
			return err
		}
	}
	return nil
}

// localGrams is one document's gram multiset, sorted by gram so the merge
// step interns grams in a reproducible order.
type localGrams struct {
	gram  Gram
	count int
}

// Finalize shingles every pending document over a bounded worker pool,
// merges the per-document multisets in DocumentID order (so the result is
// bit-identical for any worker count), and freezes the corpus.
func (b *CorpusBuilder) Finalize() (*Corpus, error) {
	if b.finalized {
		return nil, ErrAlreadyFinalized
	}
	b.finalized = true

	docs := b.pending
	locals := make([][]localGrams, len(docs))

	workers := b.parallelism
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	chunk := (len(docs) + workers - 1) / workers
	if chunk < 1 {
		chunk = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < len(docs); start += chunk {
		start := start
		end := start + chunk
		if end > len(docs) {
			end = len(docs)
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				counts := b.shingler.Shingle(docs[i].Key).Counts()
				list := make([]localGrams, 0, len(counts))
				for gram, count := range counts {
					list = append(list, localGrams{gram: gram, count: count})
				}
				sort.Slice(list, func(a, b int) bool { return list[a].gram < list[b].gram })
				locals[i] = list
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The merge barrier: interning and document-frequency accumulation run
	// single-threaded in DocumentID order, independent of worker scheduling.
	vocabulary := NewVocabulary()
	docEdges := make([][]GramCount, len(docs))
	for i, list := range locals {
		edges := make([]GramCount, len(list))
		for j, lg := range list {
			edges[j] = GramCount{GramID: vocabulary.Intern(lg.gram), Count: lg.count}
		}
		sort.Slice(edges, func(a, b int) bool { return edges[a].GramID < edges[b].GramID })
		docEdges[i] = edges
	}

	docFreqs := make([]int, vocabulary.Size())
	for _, edges := range docEdges {
		for _, e := range edges {
			docFreqs[e.GramID]++
		}
	}

	prefix := newPrefixIndex()
	for i := range docs {
		prefix.insert(b.shingler.normalize(docs[i].Key), DocumentID(i))
	}

	return &Corpus{
		shingler:   b.shingler,
		vocabulary: vocabulary,
		documents:  docs,
		index:      newInvertedIndex(len(docs), vocabulary.Size(), docEdges),
		weights:    newWeightTables(b.scheme, vocabulary.Size(), docEdges, docFreqs),
		prefix:     prefix,
	}, nil
}
