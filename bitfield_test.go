package ngramdex

import (
	"fmt"
	"testing"
)

func TestBitWidthFor(t *testing.T) {
	cases := []struct {
		max      uint64
		expected int
	}{
		{max: 0, expected: 1},
		{max: 1, expected: 1},
		{max: 2, expected: 2},
		{max: 255, expected: 8},
		{max: 256, expected: 9},
		{max: 1<<32 - 1, expected: 32},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("max = %v", tt.max), func(t *testing.T) {
			if got := bitWidthFor(tt.max); got != tt.expected {
				t.Errorf("bitWidthFor(%d) = %d, want %d", tt.max, got, tt.expected)
			}
		})
	}
}

func TestBitFieldVecRoundTrip(t *testing.T) {
	// Widths that do and do not divide 64, so values straddle word
	// boundaries.
	for _, width := range []int{1, 7, 13, 32, 33, 64} {
		t.Run(fmt.Sprintf("width = %v", width), func(t *testing.T) {
			const n = 200
			v := NewBitFieldVec(width, n)
			mask := ^uint64(0)
			if width < 64 {
				mask = (uint64(1) << width) - 1
			}
			for i := 0; i < n; i++ {
				v.Set(i, uint64(i)*0x9E3779B97F4A7C15&mask)
			}
			for i := 0; i < n; i++ {
				want := uint64(i) * 0x9E3779B97F4A7C15 & mask
				if got := v.Get(i); got != want {
					t.Fatalf("Get(%d) = %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestBitFieldVecSetMasksValue(t *testing.T) {
	v := NewBitFieldVec(8, 4)
	v.Set(1, 0x1FF)
	if got := v.Get(1); got != 0xFF {
		t.Errorf("Get(1) = %d, want %d", got, 0xFF)
	}
	if got := v.Get(0); got != 0 {
		t.Errorf("Get(0) = %d, want 0", got)
	}
	if got := v.Get(2); got != 0 {
		t.Errorf("Get(2) = %d, want 0", got)
	}
}

func TestBitFieldVecOverwrite(t *testing.T) {
	v := NewBitFieldVec(13, 20)
	for i := 0; i < 20; i++ {
		v.Set(i, 0x1FFF)
	}
	v.Set(7, 42)
	if got := v.Get(7); got != 42 {
		t.Errorf("Get(7) = %d, want 42", got)
	}
	if got := v.Get(6); got != 0x1FFF {
		t.Errorf("Get(6) = %d, want %d", got, 0x1FFF)
	}
	if got := v.Get(8); got != 0x1FFF {
		t.Errorf("Get(8) = %d, want %d", got, 0x1FFF)
	}
}
