package cell

import "errors"

var (
	// ErrInvalidParameter reports a cell parameter outside its physical
	// domain, such as a non-positive pressure or temperature.
	ErrInvalidParameter = errors.New("cell: parameter outside physical domain")

	// ErrDomain reports a calculator input with no finite result even after
	// the internal guards, such as a negative current density.
	ErrDomain = errors.New("cell: input outside model domain")
)
