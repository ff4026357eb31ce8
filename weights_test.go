package ngramdex

import (
	"fmt"
	"math"
	"testing"
)

func TestIdfValue(t *testing.T) {
	cases := []struct {
		scheme    IDFScheme
		totalDocs int
		docFreq   int
		expected  float64
	}{
		{scheme: IDFPlain, totalDocs: 10, docFreq: 10, expected: 0},
		{scheme: IDFPlain, totalDocs: 10, docFreq: 1, expected: math.Log(10)},
		{scheme: IDFSmoothed, totalDocs: 10, docFreq: 10, expected: math.Log(2)},
		{scheme: IDFSmoothed, totalDocs: 10, docFreq: 1, expected: math.Log(11)},
		{scheme: IDFPlain, totalDocs: 10, docFreq: 0, expected: 0},
		{scheme: IDFSmoothed, totalDocs: 0, docFreq: 0, expected: 0},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("scheme = %v, totalDocs = %v, docFreq = %v", tt.scheme, tt.totalDocs, tt.docFreq), func(t *testing.T) {
			if got := idfValue(tt.scheme, tt.totalDocs, tt.docFreq); got != tt.expected {
				t.Errorf("idfValue() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTfValue(t *testing.T) {
	cases := []struct {
		scheme   TFScheme
		count    int
		maxCount int
		expected float64
	}{
		{scheme: TFRaw, count: 3, maxCount: 3, expected: 3},
		{scheme: TFRaw, count: 0, maxCount: 3, expected: 0},
		{scheme: TFLog, count: 1, maxCount: 1, expected: 1},
		{scheme: TFLog, count: 4, maxCount: 4, expected: 1 + math.Log(4)},
		{scheme: TFLog, count: 0, maxCount: 4, expected: 0},
		{scheme: TFAugmented, count: 2, maxCount: 4, expected: 0.75},
		{scheme: TFAugmented, count: 4, maxCount: 4, expected: 1},
		{scheme: TFAugmented, count: 0, maxCount: 4, expected: 0},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("scheme = %v, count = %v, maxCount = %v", tt.scheme, tt.count, tt.maxCount), func(t *testing.T) {
			if got := tfValue(tt.scheme, tt.count, tt.maxCount); got != tt.expected {
				t.Errorf("tfValue() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewWeightTables(t *testing.T) {
	// doc0: gram0 x2, gram1 x1 / doc1: gram1 x3
	docEdges := [][]GramCount{
		{{GramID: 0, Count: 2}, {GramID: 1, Count: 1}},
		{{GramID: 1, Count: 3}},
	}
	docFreqs := []int{1, 2}
	scheme := WeightingScheme{TF: TFRaw, IDF: IDFSmoothed}
	wt := newWeightTables(scheme, 2, docEdges, docFreqs)

	idf0 := math.Log(1 + 2.0/1.0)
	idf1 := math.Log(1 + 2.0/2.0)
	if got := wt.IDF(0); got != idf0 {
		t.Errorf("IDF(0) = %v, want %v", got, idf0)
	}
	if got := wt.IDF(1); got != idf1 {
		t.Errorf("IDF(1) = %v, want %v", got, idf1)
	}
	if got := wt.IDF(99); got != 0 {
		t.Errorf("IDF(99) = %v, want 0", got)
	}

	norm0 := math.Sqrt((2*idf0)*(2*idf0) + (1*idf1)*(1*idf1))
	norm1 := math.Sqrt((3 * idf1) * (3 * idf1))
	if got := wt.Norm(0); math.Abs(got-norm0) > 1e-12 {
		t.Errorf("Norm(0) = %v, want %v", got, norm0)
	}
	if got := wt.Norm(1); math.Abs(got-norm1) > 1e-12 {
		t.Errorf("Norm(1) = %v, want %v", got, norm1)
	}

	if got := wt.MaxCount(0); got != 2 {
		t.Errorf("MaxCount(0) = %v, want 2", got)
	}
	if got := wt.MaxCount(1); got != 3 {
		t.Errorf("MaxCount(1) = %v, want 3", got)
	}
}
