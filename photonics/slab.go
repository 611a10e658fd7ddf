package photonics

import (
	"math"
	"math/cmplx"
)

// Slab waveguide: (k0·n)² = β² + κ². The sign of (k0·n)² − β² picks the regime,
// oscillatory (κ, transverse wavevector) or evanescent (γ, attenuation coefficient).
// For a real beta the two regimes are exclusive and the real entry points enforce it.
// Complex beta (lossy or leaky modes) goes through the *Complex variants, which do not.

const (
	quantityKappa = "transverse wavevector"
	quantityGamma = "attenuation coefficient"
)

// TransverseWavevector returns κ = sqrt((k0·n)² − β²).
// It fails with *DomainError when k0·n < beta.
func TransverseWavevector(k0, refractiveIndex, beta Real) (Real, error) {
	k0n := k0 * refractiveIndex
	if k0n < beta {
		return 0, &DomainError{Quantity: quantityKappa, K0N: k0n, Beta: beta, Use: quantityGamma}
	}
	return math.Sqrt(k0n*k0n - beta*beta), nil
}

// TransverseWavevectorComplex evaluates sqrt((k0·n)² − β²) over complex
// arithmetic (principal branch) with no regime check.
func TransverseWavevectorComplex(k0, refractiveIndex Real, beta complex128) complex128 {
	k0n := complex(k0*refractiveIndex, 0)
	return cmplx.Sqrt(k0n*k0n - beta*beta)
}

// AttenuationCoefficient returns γ = sqrt(β² − (k0·n)²).
// It fails with *DomainError when k0·n > beta.
func AttenuationCoefficient(k0, refractiveIndex, beta Real) (Real, error) {
	k0n := k0 * refractiveIndex
	if k0n > beta {
		return 0, &DomainError{Quantity: quantityGamma, K0N: k0n, Beta: beta, Use: quantityKappa}
	}
	return math.Sqrt(beta*beta - k0n*k0n), nil
}

// AttenuationCoefficientComplex evaluates sqrt(β² − (k0·n)²) with no regime check.
func AttenuationCoefficientComplex(k0, refractiveIndex Real, beta complex128) complex128 {
	k0n := complex(k0*refractiveIndex, 0)
	return cmplx.Sqrt(beta*beta - k0n*k0n)
}
