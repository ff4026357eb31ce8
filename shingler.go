package ngramdex

import "strings"

// PadRune is the boundary sentinel appended around keys before the gram
// window slides over them. It cannot appear in real text, so boundary grams
// never collide with interior grams.
const PadRune rune = '\x00'

// Shingler turns a string into its ordered gram sequence. The same input
// and configuration always yield the same sequence.
type Shingler struct {
	arity       int
	padLeft     int
	padRight    int
	caseFold    bool
	charFilters []CharFilter
}

type ShinglerOption func(*Shingler)

// WithPadding sets how many sentinel runes are prepended and appended to the
// key so that the edge runes participate in enough grams.
func WithPadding(left, right int) ShinglerOption {
	return func(s *Shingler) {
		s.padLeft = left
		s.padRight = right
	}
}

func WithCaseFold() ShinglerOption {
	return func(s *Shingler) {
		s.caseFold = true
	}
}

func WithCharFilters(filters ...CharFilter) ShinglerOption {
	return func(s *Shingler) {
		s.charFilters = filters
	}
}

func NewShingler(arity int, options ...ShinglerOption) (*Shingler, error) {
	if arity < 1 {
		return nil, ErrInvalidArity
	}
	s := &Shingler{
		arity:    arity,
		padLeft:  arity - 1,
		padRight: arity - 1,
	}
	for _, option := range options {
		option(s)
	}
	if s.padLeft < 0 {
		s.padLeft = 0
	}
	if s.padRight < 0 {
		s.padRight = 0
	}
	return s, nil
}

func (s *Shingler) Arity() int {
	return s.arity
}

// normalize runs the char filter chain and case folding. Queries go through
// the same path as corpus keys.
func (s *Shingler) normalize(text string) string {
	for _, f := range s.charFilters {
		text = f.Filter(text)
	}
	if s.caseFold {
		text = strings.ToLower(text)
	}
	return text
}

// Shingle emits the sliding arity-rune window over the padded, normalized
// key. A padded form shorter than the arity yields exactly one gram filled
// out with sentinels; an empty input with zero padding yields no grams.
func (s *Shingler) Shingle(text string) GramStream {
	text = s.normalize(text)

	runes := make([]rune, 0, s.padLeft+len(text)+s.padRight)
	for i := 0; i < s.padLeft; i++ {
		runes = append(runes, PadRune)
	}
	runes = append(runes, []rune(text)...)
	for i := 0; i < s.padRight; i++ {
		runes = append(runes, PadRune)
	}

	if len(runes) == 0 {
		return NewGramStream([]Gram{})
	}
	if len(runes) < s.arity {
		padded := make([]rune, s.arity)
		for i := range padded {
			padded[i] = PadRune
		}
		copy(padded, runes)
		return NewGramStream([]Gram{Gram(padded)})
	}

	grams := make([]Gram, 0, len(runes)-s.arity+1)
	for i := 0; i+s.arity <= len(runes); i++ {
		grams = append(grams, Gram(runes[i:i+s.arity]))
	}
	return NewGramStream(grams)
}

// equalConfig reports whether two shinglers cut compatible grams. Char
// filters are compared by chain length only, since functions have no
// identity; callers are expected to pass the same chain to both sides.
func (s *Shingler) equalConfig(other *Shingler) bool {
	return s.arity == other.arity &&
		s.padLeft == other.padLeft &&
		s.padRight == other.padRight &&
		s.caseFold == other.caseFold &&
		len(s.charFilters) == len(other.charFilters)
}
