package basisfactor

import (
	"errors"
	"fmt"
)

// Sentinel error set for basisfactor. Every message is prefixed with
// "basisfactor: " for consistent grepping. Algorithms return these
// directly or wrap them with fmt.Errorf("...: %w", ErrX) at an outer
// boundary; callers should match with errors.Is rather than string
// comparison.
//
// Of the four error kinds in the error-handling design, only the
// time-budget kind has a sentinel here (ErrBuildTimedOut): rank deficiency
// and reinversion hints are communicated through return values, not
// these sentinels (they are expected, recoverable outcomes of
// Build/Update, not failures of the call itself), and contract violations
// panic with ContractViolationError. The sentinels below are for calls
// that cannot proceed at all.
var (
	// ErrNotConfigured is returned by Build when invoked before Setup or
	// SetupGeneral has attached a problem. Ftran/Btran/Update return
	// ErrNotFactored in that state.
	ErrNotConfigured = errors.New("basisfactor: engine not configured, call Setup first")

	// ErrNotFactored is returned by Ftran/Btran/Update when invoked
	// before a successful Build.
	ErrNotFactored = errors.New("basisfactor: basis matrix not factored, call Build first")

	// ErrBuildTimedOut is the distinguished sentinel returned by Build
	// when the cooperative time budget (Config.BuildTimeLimit) is
	// exceeded. Engine state reverts to "solve not valid" until the next
	// Build.
	ErrBuildTimedOut = errors.New("basisfactor: build exceeded time budget")

	// ErrRectangularBasisUnsupported is returned by Build when
	// SetupGeneral was called with num_basic != num_row: the solve
	// semantics of that path are an open question the spec defers
	// rather than guesses at (see SPEC_FULL.md).
	ErrRectangularBasisUnsupported = errors.New("basisfactor: rectangular basis (num_basic != num_row) solve semantics unsupported")

	// ErrAMatrixInvalidated is returned by Build after a structural edit
	// (AddRows) invalidated the borrowed A pointers, until SetupMatrix or
	// Setup attaches fresh ones. Ftran/Btran/Update return ErrNotFactored
	// in that state.
	ErrAMatrixInvalidated = errors.New("basisfactor: A-matrix view invalidated, call SetupMatrix before Build")

	// ErrInvalidThreshold describes a threshold outside (0, 0.5].
	// SetPivotThreshold/SetMinAbsPivot report such a value through their
	// bool result and do not return this error.
	ErrInvalidThreshold = errors.New("basisfactor: threshold out of range (0, 0.5]")
)

// ContractViolationError signals a programmer error such as an
// out-of-range index or a tiny value inserted into the kernel bypassing
// kHighsTiny. (Building on an invalidated A-matrix view is reported by
// Build as ErrAMatrixInvalidated instead.) These are not runtime
// conditions the caller can recover from, so the engine panics with this
// type rather than returning an error, per the spec's "fatal assertion"
// error kind.
type ContractViolationError struct {
	Op      string
	Detail  string
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("basisfactor: contract violation in %s: %s", e.Op, e.Detail)
}

func violate(op, detail string, args ...any) {
	panic(&ContractViolationError{Op: op, Detail: fmt.Sprintf(detail, args...)})
}
