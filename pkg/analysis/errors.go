package analysis

import "errors"

var (
	// ErrNoCell reports an analysis run before Setup bound it to a cell.
	ErrNoCell = errors.New("analysis: cell not set")

	// ErrBadInput reports an analysis input outside its usable range.
	ErrBadInput = errors.New("analysis: invalid analysis input")

	// ErrSweepWindow reports a sweep whose window is empty because the
	// limiting current leaves no room above the start sample.
	ErrSweepWindow = errors.New("analysis: sweep window is empty")

	// ErrNoConvergence reports an iterative solve that exhausted its
	// iteration budget without settling.
	ErrNoConvergence = errors.New("analysis: iteration did not converge")
)
