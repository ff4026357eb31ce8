package morph

// Analyzer splits text into morphemes with their readings.
type Analyzer interface {
	Analyze(string) []Morpheme
}

type Morpheme struct {
	Surface string
	Reading string
}

func NewMorpheme(surface, reading string) Morpheme {
	return Morpheme{
		Surface: surface,
		Reading: reading,
	}
}
