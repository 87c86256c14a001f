package datamap

import "errors"

// Structural errors abort processing of the current frame. Per-cell
// numerical edge cases never error; they degrade to zero instead.
var (
	// ErrMalformedGrid reports a sample sequence that cannot be arranged
	// into a rectangle: a total count not divisible by the detected run
	// length, or a raster order that matches neither axis.
	ErrMalformedGrid = errors.New("datamap: samples do not form a rectangular grid")

	// ErrDegenerateGrid reports a grid with fewer than two distinct
	// coordinates along an axis, leaving the cell size undefined.
	ErrDegenerateGrid = errors.New("datamap: cell size undefined along an axis")

	// ErrInsufficientHeight reports a contact-angle request that would
	// read past one side of the interface into the other.
	ErrInsufficientHeight = errors.New("datamap: interface too short for requested contact angle")
)
