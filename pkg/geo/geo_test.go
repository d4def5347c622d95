package geo

import (
	"math"
	"testing"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name             string
		lat1, lon1       float64
		lat2, lon2       float64
		wantMeters       float64
		tolerancePercent float64
	}{
		{
			name: "Fortaleza campus to Beira Mar",
			lat1: -3.7695, lon1: -38.4785,
			lat2: -3.7227, lon2: -38.4897,
			wantMeters:       5_350, // ~5.3 km great-circle
			tolerancePercent: 2,
		},
		{
			name: "Same point",
			lat1: -3.7695, lon1: -38.4785,
			lat2: -3.7695, lon2: -38.4785,
			wantMeters:       0,
			tolerancePercent: 0,
		},
		{
			name: "London to Paris",
			lat1: 51.5074, lon1: -0.1278,
			lat2: 48.8566, lon2: 2.3522,
			wantMeters:       343_500, // ~343.5 km
			tolerancePercent: 1,
		},
		{
			name: "Short distance (~100m)",
			lat1: -3.7695, lon1: -38.4785,
			lat2: -3.7686, lon2: -38.4785,
			wantMeters:       100,
			tolerancePercent: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if tt.wantMeters == 0 {
				if got != 0 {
					t.Errorf("expected 0, got %f", got)
				}
				return
			}
			diff := math.Abs(got-tt.wantMeters) / tt.wantMeters * 100
			if diff > tt.tolerancePercent {
				t.Errorf("Haversine = %f m, want ~%f m (diff %.1f%%)", got, tt.wantMeters, diff)
			}
		})
	}
}

func TestEquirectangularDist(t *testing.T) {
	// Near the equator, equirectangular should be very close to Haversine.
	lat1, lon1 := -3.7695, -38.4785
	lat2, lon2 := -3.7660, -38.4700

	h := Haversine(lat1, lon1, lat2, lon2)
	e := EquirectangularDist(lat1, lon1, lat2, lon2)

	diffPercent := math.Abs(h-e) / h * 100
	if diffPercent > 0.5 {
		t.Errorf("EquirectangularDist differs from Haversine by %.2f%% (haversine=%f, equirect=%f)", diffPercent, h, e)
	}
}

func TestHaversineSymmetry(t *testing.T) {
	a := Haversine(-3.7695, -38.4785, -3.7660, -38.4700)
	b := Haversine(-3.7660, -38.4700, -3.7695, -38.4785)
	if a != b {
		t.Errorf("Haversine not symmetric: %f vs %f", a, b)
	}
}

func BenchmarkHaversine(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Haversine(-3.7695, -38.4785, -3.7227, -38.4897)
	}
}

func BenchmarkEquirectangularDist(b *testing.B) {
	for i := 0; i < b.N; i++ {
		EquirectangularDist(-3.7695, -38.4785, -3.7227, -38.4897)
	}
}
