package photonics

import (
	"errors"
	"fmt"
)

// ErrDomain is matched (errors.Is) by every *DomainError.
var ErrDomain = errors.New("photonics: input outside the physical domain")

// DomainError reports a real beta on the wrong side of k0·n for the requested quantity.
type DomainError struct {
	Quantity string // formula that refused the input
	K0N      Real
	Beta     Real
	Use      string // companion formula valid in this regime
}

func (e *DomainError) Error() string {
	rel := "smaller"
	if e.K0N > e.Beta {
		rel = "larger"
	}
	return fmt.Sprintf("%s: k0·n must not be %s than beta (k0·n=%g, beta=%g); use the %s regime instead",
		e.Quantity, rel, e.K0N, e.Beta, e.Use)
}

func (e *DomainError) Unwrap() error { return ErrDomain }
