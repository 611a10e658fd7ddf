package photonics

import "math"

// WavelengthToAngularFrequency converts a vacuum wavelength into the angular
// frequency 2π·c/(n·λ), with 2π rounded to float64 before scaling by c.
// Pass VacuumIndex for n in vacuum.
func WavelengthToAngularFrequency(lambda, refractiveIndex Real) Real {
	return (Real(2*Pi) * SpeedOfLight) / (refractiveIndex * lambda)
}

// FrequencyToAngularFrequency returns ω = 2π·f.
func FrequencyToAngularFrequency(freq Real) Real {
	return 2 * Pi * freq
}

// Impedance returns sqrt(mu/epsilon), the optical impedance of a dielectric.
// Non-positive inputs are not rejected: the result is NaN or +Inf.
func Impedance(epsilon, mu Real) Real {
	return math.Sqrt(mu / epsilon)
}

// VacuumImpedance is Impedance with vacuum permittivity and permeability (~376.73 Ω).
func VacuumImpedance() Real {
	return Impedance(VacuumPermittivity, VacuumPermeability)
}

// WavelengthToWavevector returns k = (2π/λ0)·n for a vacuum wavelength λ0.
func WavelengthToWavevector(lambdaVac, refractiveIndex Real) Real {
	return ((2 * Pi) / lambdaVac) * refractiveIndex
}
