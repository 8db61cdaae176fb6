// Package dispatch wires origins to their side-effect handlers: the
// registration decorators and the synchronous, in-order invocation that
// runs when an origin completes successfully.
package dispatch

import (
	"github.com/arthur-debert/sidefx/pkg/logging"
	"github.com/arthur-debert/sidefx/pkg/registry"
)

// Option configures a registration made through HasSideEffects or
// IsSideEffectOf.
type Option func(*options)

type options struct {
	registry *registry.Registry
	name     string
	doc      string
}

// WithRegistry targets a specific registry instead of the process-wide
// default.
func WithRegistry(r *registry.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithName sets the handler's display name, used by Fname in place of
// the runtime function name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithDoc attaches documentation to the handler, surfaced through
// Docstring and the reporting tool.
func WithDoc(doc string) Option {
	return func(o *options) { o.doc = doc }
}

func applyOptions(opts []Option) options {
	o := options{registry: registry.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// HasSideEffects marks fn as the origin for label. The returned
// function has the same signature as fn: it invokes fn, and on success
// dispatches label's handlers with fn's argument and result before
// returning fn's result unchanged. If fn itself fails, its error is
// returned immediately and no handler runs. Handler failures do not
// alter the result; they come back as the wrapper's error, aggregated
// across the whole dispatch.
func HasSideEffects[A any, R any](label string, fn func(A) (R, error), opts ...Option) func(A) (R, error) {
	o := applyOptions(opts)
	return func(arg A) (R, error) {
		result, err := fn(arg)
		if err != nil {
			return result, err
		}
		return result, Run(o.registry, registry.Event{
			Label:  label,
			Arg:    arg,
			Result: result,
		})
	}
}

// IsSideEffectOf registers fn as a side-effect handler for label and
// returns it unmodified, so the function stays independently callable
// and testable without going through dispatch. Registration problems
// (empty label, nil handler) are programming errors and panic, matching
// init-time registration semantics.
func IsSideEffectOf(label string, fn registry.HandlerFunc, opts ...Option) registry.HandlerFunc {
	o := applyOptions(opts)
	err := o.registry.Register(label, registry.Handler{
		Fn:   fn,
		Name: o.name,
		Doc:  o.doc,
	})
	if err != nil {
		panic("sidefx: " + err.Error())
	}
	return fn
}

// Handle adapts a typed handler to the uniform HandlerFunc shape,
// asserting the event's argument and result to the expected types. A
// type mismatch is reported as a handler failure, not a panic.
func Handle[A any, R any](fn func(arg A, result R) error) registry.HandlerFunc {
	return func(ev registry.Event) error {
		arg, ok := ev.Arg.(A)
		if !ok {
			return errTypeMismatch(ev.Label, "argument", ev.Arg)
		}
		result, ok := ev.Result.(R)
		if !ok {
			return errTypeMismatch(ev.Label, "result", ev.Result)
		}
		return fn(arg, result)
	}
}

// Run dispatches label's handlers for the given event: each handler in
// registration order, synchronously, on the calling goroutine. A label
// with no handlers is a no-op. A failing handler never prevents later
// handlers from running; all failures are collected and returned as a
// single *DispatchError once the full list has been attempted.
func Run(r *registry.Registry, ev registry.Event) error {
	logger := logging.GetLogger("dispatch")

	events := r.ByLabel(ev.Label)
	if len(events) == 0 {
		logger.Debug().Str("label", ev.Label).Msg("No handlers registered")
		return nil
	}

	handlers := events[0].Handlers
	logger.Debug().Str("label", ev.Label).Int("handlers", len(handlers)).Msg("Dispatching")

	var failures []HandlerFailure
	for _, h := range handlers {
		if err := h.Fn(ev); err != nil {
			name := registry.Fname(h)
			logger.Warn().Str("label", ev.Label).Str("handler", name).Err(err).Msg("Handler failed")
			failures = append(failures, HandlerFailure{Handler: name, Err: err})
		}
	}

	if len(failures) > 0 {
		return &DispatchError{Label: ev.Label, Failures: failures}
	}
	return nil
}
