// Package photonics holds closed-form formulas used in photonics calculations:
// wavelength/frequency/angular frequency conversions, the impedance of a
// dielectric, and the wavevector components of a 1D slab waveguide.
//
// Every function is pure and safe for concurrent use. Only the slab waveguide
// functions validate their inputs; the rest follow IEEE-754 semantics and
// leave physically meaningless inputs (zero or negative wavelengths, etc.)
// to the caller.
package photonics
