// Package datamap owns the in-memory representation of one simulation
// frame: a rectangular grid of spatially binned cells carrying density,
// temperature and mass-flow velocity data.
//
// Responsibilities: grid construction from raw reader samples, droplet
// classification, interface extraction, cut/combine aggregation, and
// derived shear/dissipation fields.
//
// All operations are synchronous and work on a single grid; grids share
// no state, so callers may process independent frames concurrently.
// No file or network code is allowed in this package.
package datamap
