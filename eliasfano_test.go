package ngramdex

import (
	"testing"
)

func TestEliasFanoAccess(t *testing.T) {
	cases := []struct {
		name   string
		values []uint64
	}{
		{
			name:   "small offsets",
			values: []uint64{0, 2, 2, 5, 9},
		},
		{
			name:   "all zero",
			values: []uint64{0, 0, 0, 0},
		},
		{
			name:   "single",
			values: []uint64{7},
		},
		{
			name: "dense cumulative",
			values: func() []uint64 {
				values := make([]uint64, 1000)
				for i := range values {
					values[i] = uint64(i) * 3
				}
				return values
			}(),
		},
		{
			// 上位ビットの選択サンプルを跨ぐ長い列
			name: "sparse cumulative",
			values: func() []uint64 {
				values := make([]uint64, 600)
				sum := uint64(0)
				for i := range values {
					sum += uint64(i*i%97) + 1
					values[i] = sum
				}
				return values
			}(),
		},
		{
			name: "plateau",
			values: func() []uint64 {
				values := make([]uint64, 300)
				for i := range values {
					values[i] = 1 << 20
				}
				return values
			}(),
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			ef := NewEliasFano(tt.values)
			if ef.Len() != len(tt.values) {
				t.Fatalf("Len() = %d, want %d", ef.Len(), len(tt.values))
			}
			for i, want := range tt.values {
				if got := ef.Access(i); got != want {
					t.Fatalf("Access(%d) = %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestEliasFanoEmpty(t *testing.T) {
	ef := NewEliasFano(nil)
	if got := ef.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestEliasFanoAccessOrderIndependent(t *testing.T) {
	values := make([]uint64, 512)
	for i := range values {
		values[i] = uint64(i) * 41
	}
	ef := NewEliasFano(values)
	// Random-order access must see the same values as a sequential scan.
	for _, i := range []int{511, 0, 256, 255, 1, 300, 510} {
		if got := ef.Access(i); got != values[i] {
			t.Errorf("Access(%d) = %d, want %d", i, got, values[i])
		}
	}
}
