// Package list implements the side-effect reporting command: it renders
// the registry in raw, verbose or default form, tracks handlers with
// missing documentation, and backs the CLI's strict build-gating mode.
package list

import (
	"fmt"
	"io"

	"github.com/arthur-debert/sidefx/pkg/logging"
	"github.com/arthur-debert/sidefx/pkg/registry"
	"github.com/arthur-debert/sidefx/pkg/ui/json"
)

// Options defines the options for the List command.
type Options struct {
	// Registry is the registry to report on. Defaults to the
	// process-wide default registry when nil.
	Registry *registry.Registry

	// Raw renders a JSON mapping of labels to fully-qualified names.
	Raw bool
	// Verbose renders the full documentation for every handler.
	Verbose bool
	// Sorted sorts labels and, within a label, handlers.
	Sorted bool

	// Label filters on a single exact event label.
	Label string
	// LabelContains filters on labels containing the given value.
	LabelContains string

	// Out receives the report; ErrOut receives warnings about
	// handlers with no documentation.
	Out    io.Writer
	ErrOut io.Writer
}

// Result holds the outcome of the List command.
type Result struct {
	// Labels is the number of labels rendered.
	Labels int
	// MissingDocs names every rendered handler that has no
	// documentation, in render order.
	MissingDocs []string
}

// Run renders the registry report according to opts.
func Run(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().
		Bool("raw", opts.Raw).
		Bool("verbose", opts.Verbose).
		Bool("sorted", opts.Sorted).
		Str("label", opts.Label).
		Str("labelContains", opts.LabelContains).
		Msg("Executing command")

	reg := opts.Registry
	if reg == nil {
		reg = registry.Default()
	}

	var events registry.Events
	switch {
	case opts.Label != "":
		fmt.Fprintf(opts.Out, "\nSide-effects for event matching '%s':\n", opts.Label)
		events = reg.ByLabel(opts.Label)
	case opts.LabelContains != "":
		fmt.Fprintf(opts.Out, "\nSide-effects for events matching '*%s*':\n", opts.LabelContains)
		events = reg.ByLabelContains(opts.LabelContains)
	default:
		fmt.Fprintf(opts.Out, "\nRegistered side-effects:\n")
		events = reg.Items()
	}

	if opts.Sorted {
		events = registry.SortEvents(events, handlerSortKey(opts))
	}

	result := &Result{Labels: len(events)}

	var err error
	switch {
	case opts.Raw:
		err = printRaw(opts, events)
	case opts.Verbose:
		printVerbose(opts, events, result)
	default:
		printDefault(opts, events, result)
	}
	if err != nil {
		return nil, err
	}

	printMissing(opts, result)

	log.Info().Int("labels", result.Labels).Int("missingDocs", len(result.MissingDocs)).Msg("Command finished")
	return result, nil
}

// handlerSortKey picks the within-label sort key: fully-qualified name
// for the name-centric modes, documentation summary line otherwise.
func handlerSortKey(opts Options) func(registry.Handler) string {
	if opts.Raw || opts.Verbose {
		return registry.Fname
	}
	return func(h registry.Handler) string {
		docs := registry.Docstring(h)
		if docs == nil {
			return ""
		}
		return docs[0]
	}
}

// printRaw writes the fully-qualified name for each mapped handler as JSON.
func printRaw(opts Options, events registry.Events) error {
	return json.New(opts.Out).RenderEvents(events)
}

// printVerbose writes the entire documentation for each mapped handler.
func printVerbose(opts Options, events registry.Events, result *Result) {
	for _, entry := range events {
		fmt.Fprintf(opts.Out, "\n%s\n\n", formatLabel(entry.Label))
		for _, h := range entry.Handlers {
			docs := registry.Docstring(h)
			if docs == nil {
				result.MissingDocs = append(result.MissingDocs, registry.Fname(h))
				fmt.Fprintf(opts.ErrOut, "  x %s (no docstring)\n", registry.Fname(h))
				fmt.Fprintln(opts.Out)
				continue
			}
			fmt.Fprintf(opts.Out, "  - %s:\n", registry.Fname(h))
			for _, line := range docs {
				fmt.Fprintf(opts.Out, "    %s\n", line)
			}
			fmt.Fprintln(opts.Out)
		}
	}
}

// printDefault writes the documentation summary line for each mapped handler.
func printDefault(opts Options, events registry.Events, result *Result) {
	for _, entry := range events {
		fmt.Fprintf(opts.Out, "\n%s\n", formatLabel(entry.Label))
		for _, h := range entry.Handlers {
			docs := registry.Docstring(h)
			if docs == nil {
				result.MissingDocs = append(result.MissingDocs, registry.Fname(h))
				fmt.Fprintf(opts.ErrOut, "  x %s (no docstring)\n", registry.Fname(h))
				continue
			}
			fmt.Fprintf(opts.Out, "  - %s\n", docs[0])
		}
	}
}

// printMissing reports the handlers found to have no documentation.
func printMissing(opts Options, result *Result) {
	if len(result.MissingDocs) > 0 {
		fmt.Fprintf(opts.ErrOut, "\nThe following functions have no docstrings:\n")
		for _, name := range result.MissingDocs {
			fmt.Fprintf(opts.ErrOut, "  %s\n", name)
		}
		return
	}
	fmt.Fprintf(opts.Out, "\nAll registered functions have docstrings\n")
}
