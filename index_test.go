package ngramdex

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Three documents over three grams:
//
//	doc0: gram0 x2, gram1 x1
//	doc1: gram1 x3
//	doc2: gram0 x1, gram2 x1
func testIndex() *InvertedIndex {
	return newInvertedIndex(3, 3, [][]GramCount{
		{{GramID: 0, Count: 2}, {GramID: 1, Count: 1}},
		{{GramID: 1, Count: 3}},
		{{GramID: 0, Count: 1}, {GramID: 2, Count: 1}},
	})
}

func TestInvertedIndexPostings(t *testing.T) {
	cases := []struct {
		id       GramID
		expected []Posting
	}{
		{
			id:       0,
			expected: []Posting{{DocumentID: 0, Count: 2}, {DocumentID: 2, Count: 1}},
		},
		{
			id:       1,
			expected: []Posting{{DocumentID: 0, Count: 1}, {DocumentID: 1, Count: 3}},
		},
		{
			id:       2,
			expected: []Posting{{DocumentID: 2, Count: 1}},
		},
		{
			id:       99,
			expected: []Posting{},
		},
	}

	idx := testIndex()
	for _, tt := range cases {
		t.Run(fmt.Sprintf("id = %v", tt.id), func(t *testing.T) {
			if diff := cmp.Diff(idx.Postings(tt.id), tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestInvertedIndexDocumentFrequency(t *testing.T) {
	cases := []struct {
		id       GramID
		expected int
	}{
		{id: 0, expected: 2},
		{id: 1, expected: 2},
		{id: 2, expected: 1},
		{id: 99, expected: 0},
	}

	idx := testIndex()
	for _, tt := range cases {
		t.Run(fmt.Sprintf("id = %v", tt.id), func(t *testing.T) {
			if got := idx.DocumentFrequency(tt.id); got != tt.expected {
				t.Errorf("DocumentFrequency(%d) = %d, want %d", tt.id, got, tt.expected)
			}
		})
	}
}

func TestInvertedIndexGramCounts(t *testing.T) {
	cases := []struct {
		d        DocumentID
		expected []GramCount
	}{
		{
			d:        0,
			expected: []GramCount{{GramID: 0, Count: 2}, {GramID: 1, Count: 1}},
		},
		{
			d:        1,
			expected: []GramCount{{GramID: 1, Count: 3}},
		},
		{
			d:        2,
			expected: []GramCount{{GramID: 0, Count: 1}, {GramID: 2, Count: 1}},
		},
		{
			d:        99,
			expected: nil,
		},
	}

	idx := testIndex()
	for _, tt := range cases {
		t.Run(fmt.Sprintf("d = %v", tt.d), func(t *testing.T) {
			if diff := cmp.Diff(idx.GramCounts(tt.d), tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestInvertedIndexDegrees(t *testing.T) {
	idx := testIndex()
	if got := idx.NumPostings(); got != 5 {
		t.Errorf("NumPostings() = %d, want 5", got)
	}
	for d, want := range map[DocumentID]int{0: 2, 1: 1, 2: 2, 99: 0} {
		if got := idx.GramDegree(d); got != want {
			t.Errorf("GramDegree(%d) = %d, want %d", d, got, want)
		}
	}
}

func TestInvertedIndexWalkPostings(t *testing.T) {
	idx := testIndex()
	var walked []Posting
	idx.walkPostings(0, func(d DocumentID, count int) {
		walked = append(walked, Posting{DocumentID: d, Count: count})
	})
	expected := []Posting{{DocumentID: 0, Count: 2}, {DocumentID: 2, Count: 1}}
	if diff := cmp.Diff(walked, expected); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestInvertedIndexEmpty(t *testing.T) {
	idx := newInvertedIndex(0, 0, nil)
	if got := idx.NumPostings(); got != 0 {
		t.Errorf("NumPostings() = %d, want 0", got)
	}
	if got := idx.Postings(0); len(got) != 0 {
		t.Errorf("Postings(0) = %v, want empty", got)
	}
}
