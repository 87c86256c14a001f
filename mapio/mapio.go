// Package mapio reads and writes data-map files: one frame's grid of
// cell samples, exchanged with the sampling pipeline either as plain
// text with a header line of field symbols or as packed little-endian
// float32 records. The package moves flat sample sequences only;
// arranging them into a grid is the caller's concern.
package mapio

import "errors"

// Field symbols as they appear in text headers.
const (
	FieldX = "X"
	FieldY = "Y"
	FieldN = "N"
	FieldT = "T"
	FieldM = "M"
	FieldU = "U"
	FieldV = "V"
)

// MapKind selects which cell fields a map carries.
type MapKind int

const (
	// KindFull maps carry position, density and flow fields.
	KindFull MapKind = iota
	// KindDensity maps carry position and density fields only.
	KindDensity
	// KindFlow maps carry position and flow fields only.
	KindFlow
)

// Fields returns the field symbols of the kind in canonical write
// order.
func (k MapKind) Fields() []string {
	switch k {
	case KindDensity:
		return []string{FieldX, FieldY, FieldN, FieldT, FieldM}
	case KindFlow:
		return []string{FieldX, FieldY, FieldU, FieldV}
	default:
		return []string{FieldX, FieldY, FieldN, FieldT, FieldM, FieldU, FieldV}
	}
}

func (k MapKind) String() string {
	switch k {
	case KindDensity:
		return "density"
	case KindFlow:
		return "flow"
	default:
		return "full"
	}
}

// Errors reported by the codecs.
var (
	// ErrBadHeader marks a text map whose header line is missing or
	// holds an unknown field symbol.
	ErrBadHeader = errors.New("malformed data map header")

	// ErrBadRecord marks a data row that does not match the header, or
	// a binary stream whose length is not a whole number of records.
	ErrBadRecord = errors.New("malformed data map record")
)
