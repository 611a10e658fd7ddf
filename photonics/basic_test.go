package photonics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestConstants(t *testing.T) {
	if PlanckConst != 6.62607015e-34 || SpeedOfLight != 299792458 || VacuumPermittivity != 8.854e-12 {
		t.Fatal("constant table changed")
	}
	if Pi != math.Pi {
		t.Fatalf("Pi mismatch: %.17g", Pi)
	}
	fourPi := 4 * math.Pi
	if want := fourPi * 1e-7; VacuumPermeability != want {
		t.Fatalf("VacuumPermeability: got %.17g want %.17g", VacuumPermeability, want)
	}
}

func TestWavelengthToAngularFrequency(t *testing.T) {
	twoPi := 2 * math.Pi
	for _, tc := range []struct {
		lambda, n Real
	}{
		{1.55e-6, 1.0},
		{633e-9, 1.0},
		{1.31e-6, 1.45},
		{10.6e-6, 3.4},
	} {
		got := WavelengthToAngularFrequency(tc.lambda, tc.n)
		want := twoPi * SpeedOfLight / (tc.n * tc.lambda)
		if got != want {
			t.Fatalf("lambda=%g n=%g: got %.17g want %.17g", tc.lambda, tc.n, got, want)
		}
		if tc.n == VacuumIndex {
			viaFreq := FrequencyToAngularFrequency(SpeedOfLight / tc.lambda)
			if !scalar.EqualWithinAbsOrRel(got, viaFreq, 0, 1e-14) {
				t.Fatalf("lambda=%g: wavelength form %.17g vs frequency form %.17g", tc.lambda, got, viaFreq)
			}
		}
	}
}

// Values as produced by the float64 sequence 2π, ·c, /(n·λ).
func TestWavelengthToAngularFrequencyGolden(t *testing.T) {
	if got := WavelengthToAngularFrequency(1.55e-6, VacuumIndex); got != 1215259075683131 {
		t.Fatalf("1550 nm: got %.17g want 1215259075683131", got)
	}
	if got := WavelengthToAngularFrequency(1, 1); got != 1883651567.3088531 {
		t.Fatalf("2π·c: got %.17g want 1883651567.3088531", got)
	}
}

func TestFrequencyToAngularFrequency(t *testing.T) {
	if got := FrequencyToAngularFrequency(1); got != 2*math.Pi {
		t.Fatalf("1 Hz: got %.17g", got)
	}
	if got := FrequencyToAngularFrequency(0); got != 0 {
		t.Fatalf("0 Hz: got %g", got)
	}
	if got := FrequencyToAngularFrequency(193.4e12); !scalar.EqualWithinAbsOrRel(got, 1.2151680384e15, 0, 1e-9) {
		t.Fatalf("193.4 THz: got %.17g", got)
	}
}

func TestImpedance(t *testing.T) {
	z := VacuumImpedance()
	if !scalar.EqualWithinRel(z, 376.730, 1e-2) {
		t.Fatalf("vacuum impedance %.6f not ~376.73", z)
	}
	if z != Impedance(VacuumPermittivity, VacuumPermeability) {
		t.Fatal("VacuumImpedance must equal Impedance with vacuum values")
	}
	// n=2 dielectric (eps_r=4): impedance halves
	if got := Impedance(4*VacuumPermittivity, VacuumPermeability); !scalar.EqualWithinAbsOrRel(got, z/2, 0, 1e-14) {
		t.Fatalf("eps_r=4: got %.12g want %.12g", got, z/2)
	}
}

func TestImpedanceIEEEPropagation(t *testing.T) {
	if !math.IsNaN(Impedance(-VacuumPermittivity, VacuumPermeability)) {
		t.Fatal("negative epsilon should give NaN")
	}
	if !math.IsInf(Impedance(0, VacuumPermeability), 1) {
		t.Fatal("zero epsilon should give +Inf")
	}
	if got := Impedance(VacuumPermittivity, 0); got != 0 {
		t.Fatalf("zero mu: got %g", got)
	}
}

func TestWavelengthToWavevector(t *testing.T) {
	k := WavelengthToWavevector(2*math.Pi, VacuumIndex)
	if !scalar.EqualWithinAbsOrRel(k, 1, 1e-15, 1e-15) {
		t.Fatalf("k for lambda=2π: %.17g", k)
	}
	k1 := WavelengthToWavevector(1.55e-6, 1)
	k2 := WavelengthToWavevector(1.55e-6, 1.5)
	if !scalar.EqualWithinAbsOrRel(k2, 1.5*k1, 0, 1e-15) {
		t.Fatalf("k should scale with n: %.17g vs %.17g", k2, 1.5*k1)
	}
	// ω = c·k0 in vacuum
	omega := WavelengthToAngularFrequency(1.55e-6, 1)
	if !scalar.EqualWithinAbsOrRel(omega, SpeedOfLight*k1, 0, 1e-14) {
		t.Fatalf("omega %.17g vs c*k0 %.17g", omega, SpeedOfLight*k1)
	}
}

func TestZeroWavelengthIsUnguarded(t *testing.T) {
	if !math.IsInf(WavelengthToAngularFrequency(0, 1), 1) {
		t.Fatal("zero wavelength should give +Inf")
	}
	if WavelengthToWavevector(-1, 1) >= 0 {
		t.Fatal("negative wavelength should flip the sign")
	}
}
