package batch

import (
	"math"

	"github.com/lukaszgryglicki/photonics/photonics"
)

type Real = photonics.Real

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func isFiniteC(z complex128) bool { return isFinite(real(z)) && isFinite(imag(z)) }
