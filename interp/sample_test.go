package interp

import (
	"testing"

	"github.com/gogpu/ggmap"
	"github.com/gogpu/ggmap/feature"
)

func TestValueRangeNormalize(t *testing.T) {
	tests := []struct {
		name string
		r    ValueRange
		v    float64
		want float64
	}{
		{"min", ValueRange{Min: 2, Max: 6}, 2, 0},
		{"max", ValueRange{Min: 2, Max: 6}, 6, 1},
		{"quarter", ValueRange{Min: 2, Max: 6}, 3, 0.25},
		{"below", ValueRange{Min: 2, Max: 6}, 0, -0.5},
		{"degenerate", ValueRange{Min: 3, Max: 3}, 3, 0.5},
		{"degenerate other", ValueRange{Min: 3, Max: 3}, 100, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Normalize(tt.v); got != tt.want {
				t.Errorf("Normalize(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}

	if r := (ValueRange{Min: 1, Max: 1}).Extend(-4).Extend(9); r != (ValueRange{Min: -4, Max: 9}) {
		t.Errorf("Extend = %+v", r)
	}
}

func TestScanRange(t *testing.T) {
	fc := pointClass(t, [][3]float64{{0, 0, 3}, {0, 0, -1}})
	fc.Features = append(fc.Features,
		feature.NewFeature(feature.Point{}, map[string]any{"v": true}),
		feature.NewFeature(feature.Point{}, map[string]any{"other": 1}),
	)

	st := scanRange(fc, valueField)
	want := rangeStats{Range: ValueRange{Min: -1, Max: 3}, Valid: 2, Missing: 1, Invalid: 1}
	if st != want {
		t.Errorf("scanRange = %+v, want %+v", st, want)
	}
}

func TestProjectSamples(t *testing.T) {
	fc := pointClass(t, [][3]float64{{10, 20, 0}, {30, 40, 10}})
	m := ggmap.Matrix{A: 2, C: 1, E: -1, F: 100}

	samples := ProjectSamples(fc, valueField, lngLat, m, ValueRange{Min: 0, Max: 10})
	want := []Sample{
		{X: 21, Y: 80, Value: 0},
		{X: 61, Y: 60, Value: 1},
	}
	if len(samples) != len(want) {
		t.Fatalf("got %d samples, want %d", len(samples), len(want))
	}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("sample %d = %+v, want %+v", i, samples[i], want[i])
		}
	}

	if got := ProjectSamples(nil, valueField, lngLat, m, ValueRange{}); got != nil {
		t.Errorf("nil class = %v", got)
	}
}
