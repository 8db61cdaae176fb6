package dispatch

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/sidefx/pkg/errors"
)

// HandlerFailure records one handler's failure during a dispatch: the
// handler's fully-qualified name and the error it returned.
type HandlerFailure struct {
	Handler string
	Err     error
}

// DispatchError aggregates every handler failure from a single
// dispatch. It unwraps to the individual handler errors, so errors.Is
// and errors.As see through the aggregate.
type DispatchError struct {
	Label    string
	Failures []HandlerFailure
}

// Error implements the error interface
func (e *DispatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d side effect(s) failed for label '%s':", len(e.Failures), e.Label)
	for _, f := range e.Failures {
		fmt.Fprintf(&b, " %s: %v;", f.Handler, f.Err)
	}
	return strings.TrimSuffix(b.String(), ";")
}

// Unwrap returns the individual handler errors
func (e *DispatchError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return errs
}

func errTypeMismatch(label, which string, got interface{}) error {
	return errors.Newf(errors.ErrEventType,
		"handler for label '%s' received unexpected %s type %T", label, which, got)
}
