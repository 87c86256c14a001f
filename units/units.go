// Package units provides shared physical constants and conversions for
// the MD unit system the data maps are expressed in: nm, ps, u, eV and
// kJ/mol.
package units

// Physical constants
const (
	// BoltzmannEV is the Boltzmann constant in eV/K.
	BoltzmannEV = 8.6173e-5

	// ViscosityPaSToMD converts a dynamic viscosity from Pa·s to
	// kJ·mol⁻¹·ps·nm⁻³ (J·s·m⁻³ scaled by the Avogadro constant
	// into MD units).
	ViscosityPaSToMD = 6.02214076e5
)

// KineticEnergy returns the kinetic energy in eV of n atoms at the
// given temperature in K, by the equipartition theorem for point
// particles with two translational degrees of freedom sampled per
// plane.
func KineticEnergy(n int, tempK float64) float64 {
	return 2 * BoltzmannEV * float64(n) * tempK
}

// ViscosityToMD converts a dynamic viscosity from Pa·s to MD units,
// kJ·mol⁻¹·ps·nm⁻³.
func ViscosityToMD(paS float64) float64 {
	return paS * ViscosityPaSToMD
}
