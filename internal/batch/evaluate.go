package batch

import (
	"fmt"

	"github.com/lukaszgryglicki/photonics/photonics"
)

type Result struct {
	Name     string
	Op       Op
	Value    complex128 // imaginary part is zero except on the complex slab path
	Category Category
	Err      error
}

// Evaluate runs one evaluation through the library.
func Evaluate(e Evaluation) Result {
	r := Result{Name: e.Name, Op: e.Op}
	switch e.Op {
	case OpWavelengthToAngularFrequency:
		r.Value = complex(photonics.WavelengthToAngularFrequency(Real(e.Lambda), e.N), 0)
	case OpFrequencyToAngularFrequency:
		r.Value = complex(photonics.FrequencyToAngularFrequency(Real(e.Freq)), 0)
	case OpImpedance:
		r.Value = complex(photonics.Impedance(e.Epsilon, e.Mu), 0)
	case OpWavelengthToWavevector:
		r.Value = complex(photonics.WavelengthToWavevector(Real(e.Lambda), e.N), 0)
	case OpTransverseWavevector:
		if e.Complex {
			r.Value = photonics.TransverseWavevectorComplex(e.K0, e.N, e.Beta)
			break
		}
		v, err := photonics.TransverseWavevector(e.K0, e.N, real(e.Beta))
		r.Value, r.Err = complex(v, 0), err
	case OpAttenuationCoefficient:
		if e.Complex {
			r.Value = photonics.AttenuationCoefficientComplex(e.K0, e.N, e.Beta)
			break
		}
		v, err := photonics.AttenuationCoefficient(e.K0, e.N, real(e.Beta))
		r.Value, r.Err = complex(v, 0), err
	default:
		r.Err = fmt.Errorf("unknown op %q", e.Op)
	}
	r.Category = categorize(r)
	return r
}
