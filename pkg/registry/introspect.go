package registry

import (
	"reflect"
	"runtime"
	"strings"
)

// Fname returns a stable, human-readable fully-qualified name for a
// handler: the display name supplied at registration when present,
// otherwise the runtime name of the handler function (package path
// included, so handlers with the same local name in different packages
// stay distinguishable).
func Fname(h Handler) string {
	if h.Name != "" {
		return h.Name
	}
	if h.Fn == nil {
		return "<nil>"
	}
	return runtime.FuncForPC(reflect.ValueOf(h.Fn).Pointer()).Name()
}

// Docstring returns the handler's documentation split into lines, or
// nil if the handler has none. Callers must treat nil as a normal,
// expected case.
//
// The first line holds the summary, later lines any body text. Leading
// and trailing blank lines are stripped, internal blank lines are kept,
// and the minimal shared leading indentation is removed from body lines
// so multi-line documentation renders flush regardless of how it was
// indented in source.
func Docstring(h Handler) []string {
	if strings.TrimSpace(h.Doc) == "" {
		return nil
	}

	lines := strings.Split(h.Doc, "\n")

	// The summary line keeps no indentation at all.
	lines[0] = strings.TrimSpace(lines[0])

	// Find the smallest indentation shared by the non-blank body lines.
	margin := -1
	for _, line := range lines[1:] {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(trimmed)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}

	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			lines[i+1] = ""
			continue
		}
		if margin > 0 && len(line) >= margin {
			line = line[margin:]
		}
		lines[i+1] = strings.TrimRight(line, " \t")
	}

	// Strip leading and trailing blank lines; internal blanks stay.
	start, end := 0, len(lines)
	for start < end && lines[start] == "" {
		start++
	}
	for end > start && lines[end-1] == "" {
		end--
	}
	if start == end {
		return nil
	}
	return lines[start:end]
}
