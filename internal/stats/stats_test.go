package stats

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 100); got != 0 {
		t.Errorf("Clamp(-5) = %v, want 0", got)
	}
	if got := Clamp(150, 0, 100); got != 100 {
		t.Errorf("Clamp(150) = %v, want 100", got)
	}
	if got := Clamp(math.NaN(), 0, 100); got != 0 {
		t.Errorf("Clamp(NaN) = %v, want 0", got)
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]float64{2.5: 3, 2.49: 2, -2.5: -2, -2.51: -3, 0: 0}
	for in, want := range cases {
		if got := Round(in); got != want {
			t.Errorf("Round(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestPopulationStdDev(t *testing.T) {
	if got := PopulationStdDev([]float64{100, 100, 100}); got != 0 {
		t.Errorf("stddev of constant series = %v, want 0", got)
	}
	// population (not sample) variance of {2,4,4,4,5,5,7,9} is 4
	if got := PopulationStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}); math.Abs(got-2) > 1e-12 {
		t.Errorf("stddev = %v, want 2", got)
	}
	if got := PopulationStdDev(nil); got != 0 {
		t.Errorf("stddev of empty = %v, want 0", got)
	}
}

func TestPercentGuardsDenominator(t *testing.T) {
	if got := Percent(5, 0); got != 0 {
		t.Errorf("Percent(5, 0) = %v, want 0", got)
	}
	if got := Percent(25, 50); got != 50 {
		t.Errorf("Percent(25, 50) = %v, want 50", got)
	}
}
