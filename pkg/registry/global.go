package registry

// The default registry backs the package-level convenience functions
// and the dispatch decorators when no explicit registry is given. It is
// created empty at process start, populated by explicit registration
// calls during host startup, and lives for the process lifetime.
var defaultRegistry = New()

// Default returns the process-wide default registry.
func Default() *Registry {
	return defaultRegistry
}

// Register appends a handler for label in the default registry.
func Register(label string, h Handler) error {
	return defaultRegistry.Register(label, h)
}

// ByLabel queries the default registry for an exact label.
func ByLabel(label string) Events {
	return defaultRegistry.ByLabel(label)
}

// ByLabelContains queries the default registry for labels containing
// the given substring.
func ByLabelContains(substring string) Events {
	return defaultRegistry.ByLabelContains(substring)
}

// Items returns the full ordered view of the default registry.
func Items() Events {
	return defaultRegistry.Items()
}
