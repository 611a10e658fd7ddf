package photonics

import "math"

type Real = float64

const (
	PlanckConst        = 6.62607015e-34 // J·s
	SpeedOfLight       = 299792458      // m/s, exact
	Pi                 = math.Pi
	VacuumPermittivity = 8.854e-12     // F/m
	VacuumPermeability = 4 * Pi * 1e-7 // H/m
	VacuumIndex        = 1.0           // refractive index of vacuum, the usual default
)
