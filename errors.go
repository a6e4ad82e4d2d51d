package gocube

import "errors"

// Sentinel errors for the gocube package.
var (
	// Construction errors
	ErrOppositeColors = errors.New("gocube: opposite sides of a cubelet can't both be colored")

	// Parsing errors
	ErrInvalidFace     = errors.New("gocube: invalid face")
	ErrInvalidNotation = errors.New("gocube: invalid move notation")

	// Engine errors
	ErrInvalidAxis  = errors.New("gocube: invalid rotation axis")
	ErrInvalidLayer = errors.New("gocube: layer out of range")
)
