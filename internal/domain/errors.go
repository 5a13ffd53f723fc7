package domain

import "errors"

// Precondition errors reported by the engine. Validating raw user text
// against the alphabet is the caller's job.
var (
	// ErrBadBlockSize is returned when the block size is outside [2,5].
	ErrBadBlockSize = errors.New("block size must be between 2 and 5")

	// ErrBadAlphabet is returned when the alphabet length is not k² or the
	// symbols are not distinct.
	ErrBadAlphabet = errors.New("alphabet must hold k*k distinct symbols")

	// ErrSymbolNotInAlphabet is returned when a symbol has no index in the
	// alphabet.
	ErrSymbolNotInAlphabet = errors.New("symbol not in alphabet")

	// ErrDimension is returned when two grids of different sizes are compared,
	// or a symbol grid does not measure k²×k².
	ErrDimension = errors.New("grid dimension mismatch")
)
