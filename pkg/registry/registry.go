package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/sidefx/pkg/errors"
)

// Event is the uniform argument bundle passed to every handler during
// dispatch: the label that fired, the origin's argument, and the
// origin's return value.
type Event struct {
	Label  string
	Arg    interface{}
	Result interface{}
}

// HandlerFunc is the callable shape all side-effect handlers share.
type HandlerFunc func(Event) error

// Handler is a registered side-effect: the function itself plus the
// display metadata (name, documentation) supplied at registration.
// Name and Doc are optional; Fname falls back to the runtime function
// name when Name is empty, and Docstring treats an empty Doc as the
// absence marker.
type Handler struct {
	Fn   HandlerFunc
	Name string
	Doc  string
}

// Entry is one (label, handlers) pair in an ordered registry view.
type Entry struct {
	Label    string
	Handlers []Handler
}

// Events is an ordered view of (label, handlers) pairs. Order is the
// label insertion order unless the view came from SortEvents.
type Events []Entry

// Registry is a thread-safe store mapping event labels to ordered
// handler lists. Insertion order is preserved and observable, both for
// labels and for handlers within a label.
type Registry struct {
	mu    sync.RWMutex
	order []string
	items map[string][]Handler
}

// New creates a new empty Registry
func New() *Registry {
	return &Registry{
		items: make(map[string][]Handler),
	}
}

// Register appends a handler to the list for label, creating the list
// if absent. Registering the same handler twice appends rather than
// replaces; both copies are invoked on dispatch.
func (r *Registry) Register(label string, h Handler) error {
	if label == "" {
		return errors.New(errors.ErrLabelEmpty, "event label cannot be empty")
	}
	if h.Fn == nil {
		return errors.Newf(errors.ErrHandlerNil, "handler for label '%s' has no function", label)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[label]; !exists {
		r.order = append(r.order, label)
	}
	r.items[label] = append(r.items[label], h)
	return nil
}

// ByLabel returns a view containing at most one entry: the given label
// and its handlers, if registered. An unknown label yields an empty
// view, never an error.
func (r *Registry) ByLabel(label string) Events {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handlers, exists := r.items[label]
	if !exists {
		return Events{}
	}
	return Events{{Label: label, Handlers: copyHandlers(handlers)}}
}

// ByLabelContains returns every entry whose label contains substring as
// a contiguous case-sensitive sequence, in original registry order.
func (r *Registry) ByLabelContains(substring string) Events {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := Events{}
	for _, label := range r.order {
		if strings.Contains(label, substring) {
			events = append(events, Entry{Label: label, Handlers: copyHandlers(r.items[label])})
		}
	}
	return events
}

// Items returns the full registry as an ordered view, in label
// insertion order.
func (r *Registry) Items() Events {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make(Events, 0, len(r.order))
	for _, label := range r.order {
		events = append(events, Entry{Label: label, Handlers: copyHandlers(r.items[label])})
	}
	return events
}

// Has checks if any handler is registered for label
func (r *Registry) Has(label string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[label]
	return exists
}

// Labels returns all registered labels in insertion order
func (r *Registry) Labels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	labels := make([]string, len(r.order))
	copy(labels, r.order)
	return labels
}

// Count returns the number of registered labels
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// Clear removes all labels and handlers from the registry
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = nil
	r.items = make(map[string][]Handler)
}

// SortEvents returns a copy of events with labels sorted
// lexicographically and handlers within each label sorted by the given
// key. The input view is never mutated; sorting is presentation-only.
func SortEvents(events Events, handlerSortKey func(Handler) string) Events {
	sorted := make(Events, len(events))
	for i, entry := range events {
		handlers := copyHandlers(entry.Handlers)
		sort.SliceStable(handlers, func(a, b int) bool {
			return handlerSortKey(handlers[a]) < handlerSortKey(handlers[b])
		})
		sorted[i] = Entry{Label: entry.Label, Handlers: handlers}
	}
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Label < sorted[b].Label
	})
	return sorted
}

func copyHandlers(handlers []Handler) []Handler {
	out := make([]Handler, len(handlers))
	copy(out, handlers)
	return out
}
