package datamap

// Cell is a single bin of a data map: one spatial sample of the
// simulation output, averaged over the bin area.
type Cell struct {
	X float64 // bin centre position along x (nm)
	Y float64 // bin centre position along y (nm)

	N int     // atom count inside the bin
	T float64 // temperature (K)
	M float64 // total mass inside the bin
	U float64 // mass-flow velocity along x (nm/ps)
	V float64 // mass-flow velocity along y (nm/ps)

	// Droplet marks the cell as part of the coherent liquid body, as
	// opposed to noise or the precursor film. Set by Grid.Classify;
	// false until a classification pass has run.
	Droplet bool

	// Derived fields. Zero until filled in by ComputeShear or
	// ComputeViscousDissipation; cells where the difference stencil is
	// undefined stay zero rather than NaN.
	Shear           float64 // strain-rate magnitude (1/ps)
	ViscDissipation float64 // energy dissipated in the cell per time step (kJ/mol)

	// Energy is the kinetic energy estimate from equipartition (eV).
	// Filled in by ComputeEnergy.
	Energy float64
}
