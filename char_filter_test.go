package ngramdex

import (
	"fmt"
	"testing"

	gomock "github.com/golang/mock/gomock"

	"github.com/kotaroooo0/ngramdex/morph"
)

func TestMappingCharFilter_Filter(t *testing.T) {
	tests := []struct {
		mapper map[string]string
		s      string
		want   string
	}{
		{
			mapper: map[string]string{"か": "ka", "き": "ki"},
			s:      "かきくけこ",
			want:   "kakiくけこ",
		},
		{
			mapper: map[string]string{"é": "e", "à": "a"},
			s:      "café à paris",
			want:   "cafe a paris",
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("mapper = %v, s = %v, want = %v", tt.mapper, tt.s, tt.want), func(t *testing.T) {
			c := NewMappingCharFilter(tt.mapper)
			if got := c.Filter(tt.s); got != tt.want {
				t.Errorf("MappingCharFilter.Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStemmerCharFilter_Filter(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{
			s:    "running cats",
			want: "run cat",
		},
		{
			s:    "jumped",
			want: "jump",
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("s = %v, want = %v", tt.s, tt.want), func(t *testing.T) {
			f := NewStemmerCharFilter()
			if got := f.Filter(tt.s); got != tt.want {
				t.Errorf("StemmerCharFilter.Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadingCharFilter_Filter(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockAnalyzer := NewMockAnalyzer(mockCtrl)

	mockAnalyzer.EXPECT().Analyze("東京都").Return([]morph.Morpheme{
		morph.NewMorpheme("東京", "トウキョウ"),
		morph.NewMorpheme("都", "ト"),
	})

	f := NewReadingCharFilter(mockAnalyzer)
	if got, want := f.Filter("東京都"), "とうきょうと"; got != want {
		t.Errorf("ReadingCharFilter.Filter() = %v, want %v", got, want)
	}
}

func TestRomajiReadingCharFilter_Filter(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockAnalyzer := NewMockAnalyzer(mockCtrl)

	mockAnalyzer.EXPECT().Analyze("おはよう").Return([]morph.Morpheme{
		morph.NewMorpheme("おはよう", "オハヨウ"),
	})

	f := NewRomajiReadingCharFilter(mockAnalyzer)
	if got, want := f.Filter("おはよう"), "ohayo"; got != want {
		t.Errorf("RomajiReadingCharFilter.Filter() = %v, want %v", got, want)
	}
}
