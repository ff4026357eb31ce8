package ngramdex

// DocumentID identifies one corpus key. Ids are dense and assigned in
// insertion order during a single build pass; they are valid until the
// corpus is rebuilt.
type DocumentID uint32

// Document is one corpus entry: the original key string and its external
// weight. The weight scales the final similarity score; 1 leaves it alone.
type Document struct {
	ID     DocumentID
	Key    string
	Weight float64
}

func NewDocument(key string, weight float64) Document {
	return Document{
		Key:    key,
		Weight: weight,
	}
}

// KeyRecord is one (key, weight) pair produced by a key source.
type KeyRecord struct {
	Key    string  `db:"term"`
	Weight float64 `db:"weight"`
}

// KeySource is the corpus ingestion contract: anything that can hand over
// its (key, weight) pairs can feed a corpus builder.
type KeySource interface {
	GetAllKeys() ([]KeyRecord, error)
}

// SliceKeySource feeds a builder from an in-memory slice of keys, all with
// weight 1.
type SliceKeySource struct {
	keys []string
}

func NewSliceKeySource(keys []string) SliceKeySource {
	return SliceKeySource{
		keys: keys,
	}
}

func (s SliceKeySource) GetAllKeys() ([]KeyRecord, error) {
	records := make([]KeyRecord, len(s.keys))
	for i, k := range s.keys {
		records[i] = KeyRecord{Key: k, Weight: 1}
	}
	return records, nil
}
