package ngramdex

import (
	"strings"

	"github.com/kljensen/snowball/english"
	"github.com/kotaroooo0/gojaconv/jaconv"

	"github.com/kotaroooo0/ngramdex/morph"
)

// CharFilter rewrites a key before it is shingled. Filters run in order and
// must be deterministic: the same chain is applied to corpus keys at build
// time and to queries at search time.
type CharFilter interface {
	Filter(string) string
}

type MappingCharFilter struct {
	mapper map[string]string // key->valueにマッピングする
}

func NewMappingCharFilter(mapper map[string]string) *MappingCharFilter {
	return &MappingCharFilter{mapper: mapper}
}

func (c *MappingCharFilter) Filter(s string) string {
	for k, v := range c.mapper {
		s = strings.Replace(s, k, v, -1)
	}
	return s
}

// StemmerCharFilter stems each whitespace-separated field so that inflected
// keys shingle onto the same grams.
type StemmerCharFilter struct{}

func NewStemmerCharFilter() StemmerCharFilter {
	return StemmerCharFilter{}
}

func (f StemmerCharFilter) Filter(s string) string {
	fields := strings.Fields(s)
	for i, field := range fields {
		fields[i] = english.Stem(field, false)
	}
	return strings.Join(fields, " ")
}

// ReadingCharFilter replaces Japanese text with its hiragana reading so that
// keys fuzzy-match by pronunciation rather than by surface form.
type ReadingCharFilter struct {
	analyzer morph.Analyzer
}

func NewReadingCharFilter(analyzer morph.Analyzer) ReadingCharFilter {
	return ReadingCharFilter{
		analyzer: analyzer,
	}
}

func (f ReadingCharFilter) Filter(s string) string {
	var b strings.Builder
	for _, m := range f.analyzer.Analyze(s) {
		b.WriteString(jaconv.KatakanaToHiragana(m.Reading))
	}
	return b.String()
}

// RomajiReadingCharFilter is the romaji variant of ReadingCharFilter.
type RomajiReadingCharFilter struct {
	analyzer morph.Analyzer
}

func NewRomajiReadingCharFilter(analyzer morph.Analyzer) RomajiReadingCharFilter {
	return RomajiReadingCharFilter{
		analyzer: analyzer,
	}
}

func (f RomajiReadingCharFilter) Filter(s string) string {
	var b strings.Builder
	for _, m := range f.analyzer.Analyze(s) {
		b.WriteString(jaconv.ToHebon(jaconv.KatakanaToHiragana(m.Reading)))
	}
	return b.String()
}
