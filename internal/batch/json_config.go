package batch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/unit"

	"github.com/lukaszgryglicki/photonics/photonics"
)

// Op names one library formula.
type Op string

const (
	OpWavelengthToAngularFrequency Op = "wavelengthToAngularFrequency"
	OpFrequencyToAngularFrequency  Op = "frequencyToAngularFrequency"
	OpImpedance                    Op = "impedance"
	OpWavelengthToWavevector       Op = "wavelengthToWavevector"
	OpTransverseWavevector         Op = "transverseWavevector"
	OpAttenuationCoefficient       Op = "attenuationCoefficient"
)

func (o Op) valid() bool {
	switch o {
	case OpWavelengthToAngularFrequency, OpFrequencyToAngularFrequency, OpImpedance,
		OpWavelengthToWavevector, OpTransverseWavevector, OpAttenuationCoefficient:
		return true
	}
	return false
}

func (o Op) slab() bool { return o == OpTransverseWavevector || o == OpAttenuationCoefficient }

// SweepCfg replaces one input of a job by Steps evenly spaced values in [From, To].
type SweepCfg struct {
	Param string `json:"param"`
	From  Real   `json:"from"`
	To    Real   `json:"to"`
	Steps int    `json:"steps"`
}

type JobCfg struct {
	Name            string         `json:"name"`
	Op              Op             `json:"op"`
	Lambda          unit.Length    `json:"lambda,omitempty"` // vacuum wavelength
	Freq            unit.Frequency `json:"freq,omitempty"`
	RefractiveIndex Real           `json:"refractiveIndex,omitempty"`
	Epsilon         Real           `json:"epsilon,omitempty"`
	Mu              Real           `json:"mu,omitempty"`
	K0              Real           `json:"k0,omitempty"`
	Beta            Real           `json:"beta,omitempty"`
	// When present, beta is complex (Beta + i·BetaImag) and the slab
	// formulas run without the regime check.
	BetaImag *Real     `json:"betaImag,omitempty"`
	Sweep    *SweepCfg `json:"sweep,omitempty"`
}

type Config struct {
	Workers int      `json:"workers,omitempty"`
	Digits  int      `json:"digits,omitempty"`
	DB      string   `json:"db,omitempty"`
	RawOut  string   `json:"rawOut,omitempty"`
	Jobs    []JobCfg `json:"jobs"`

	raw []byte
}

// Evaluation is one fully defaulted call into the library.
type Evaluation struct {
	Name    string
	Op      Op
	Lambda  unit.Length
	Freq    unit.Frequency
	N       Real
	Epsilon Real
	Mu      Real
	K0      Real
	Beta    complex128
	Complex bool
}

// Build validates the job, fills defaults and expands the sweep, if any.
func (jc JobCfg) Build() ([]Evaluation, error) {
	if !jc.Op.valid() {
		return nil, fmt.Errorf("job %q: unknown op %q", jc.Name, jc.Op)
	}
	base := Evaluation{
		Name:    jc.Name,
		Op:      jc.Op,
		Lambda:  jc.Lambda,
		Freq:    jc.Freq,
		N:       jc.RefractiveIndex,
		Epsilon: jc.Epsilon,
		Mu:      jc.Mu,
		K0:      jc.K0,
		Beta:    complex(jc.Beta, 0),
	}
	if jc.BetaImag != nil {
		base.Beta = complex(jc.Beta, *jc.BetaImag)
		base.Complex = true
	}
	if base.N == 0 {
		base.N = photonics.VacuumIndex
	}
	if base.Epsilon == 0 {
		base.Epsilon = photonics.VacuumPermittivity
	}
	if base.Mu == 0 {
		base.Mu = photonics.VacuumPermeability
	}

	if jc.Sweep == nil {
		if err := base.check(); err != nil {
			return nil, fmt.Errorf("job %q: %w", jc.Name, err)
		}
		return []Evaluation{base}, nil
	}

	values, err := jc.Sweep.values()
	if err != nil {
		return nil, fmt.Errorf("job %q: %w", jc.Name, err)
	}
	evals := make([]Evaluation, 0, len(values))
	for i, v := range values {
		e := base
		e.Name = fmt.Sprintf("%s[%d]", jc.Name, i)
		if err := e.set(jc.Sweep.Param, v); err != nil {
			return nil, fmt.Errorf("job %q: %w", jc.Name, err)
		}
		if err := e.check(); err != nil {
			return nil, fmt.Errorf("job %q: %w", e.Name, err)
		}
		evals = append(evals, e)
	}
	DebugLog("Job %s: %d sweep points over %s", jc.Name, len(evals), jc.Sweep.Param)
	return evals, nil
}

func (s *SweepCfg) values() ([]Real, error) {
	if s.Steps < 2 {
		return nil, fmt.Errorf("sweep over %q needs at least 2 steps, got %d", s.Param, s.Steps)
	}
	if !isFinite(s.From) || !isFinite(s.To) {
		return nil, fmt.Errorf("sweep over %q has non-finite bounds [%g, %g]", s.Param, s.From, s.To)
	}
	return floats.Span(make([]Real, s.Steps), s.From, s.To), nil
}

func (e *Evaluation) set(param string, v Real) error {
	switch param {
	case "lambda":
		e.Lambda = unit.Length(v)
	case "freq":
		e.Freq = unit.Frequency(v)
	case "refractiveIndex":
		e.N = v
	case "epsilon":
		e.Epsilon = v
	case "mu":
		e.Mu = v
	case "k0":
		e.K0 = v
	case "beta":
		e.Beta = complex(v, imag(e.Beta))
	default:
		return fmt.Errorf("cannot sweep over %q", param)
	}
	return nil
}

// check rejects inputs that leave a formula without an argument; physically
// odd but well-defined inputs are left to the library.
func (e *Evaluation) check() error {
	switch {
	case (e.Op == OpWavelengthToAngularFrequency || e.Op == OpWavelengthToWavevector) && e.Lambda == 0:
		return fmt.Errorf("%s needs lambda", e.Op)
	case e.Op.slab() && e.K0 <= 0:
		return fmt.Errorf("%s needs k0 > 0, got %g", e.Op, e.K0)
	case e.Op.slab() && e.N <= 0:
		return fmt.Errorf("%s needs refractiveIndex > 0, got %g", e.Op, e.N)
	}
	return nil
}

// Build expands every job in order.
func (cfg *Config) Build() ([]Evaluation, error) {
	var evals []Evaluation
	for _, jc := range cfg.Jobs {
		e, err := jc.Build()
		if err != nil {
			return nil, err
		}
		evals = append(evals, e...)
	}
	return evals, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.raw = data
	// Overrides / defaults / validation
	if Workers > 0 {
		cfg.Workers = Workers
	}
	if DBPath != "" {
		cfg.DB = DBPath
	}
	if RawOut != "" {
		cfg.RawOut = RawOut
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Digits <= 0 {
		cfg.Digits = Digits
	}
	if len(cfg.Jobs) == 0 {
		return nil, fmt.Errorf("config has no jobs")
	}
	DebugLog("Loaded config from %s: jobs=%d, workers=%d, db=%q, raw=%q", path, len(cfg.Jobs), cfg.Workers, cfg.DB, cfg.RawOut)
	return &cfg, nil
}
