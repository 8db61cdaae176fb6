package registry

import (
	"reflect"
	"strings"
	"testing"
)

func handlerAlpha(Event) error { return nil }
func handlerBeta(Event) error  { return nil }

func TestFname(t *testing.T) {
	t.Run("explicit name wins", func(t *testing.T) {
		h := Handler{Fn: handlerAlpha, Name: "billing.sendReceipt"}

		if got := Fname(h); got != "billing.sendReceipt" {
			t.Errorf("Fname() = %s, want billing.sendReceipt", got)
		}
	})

	t.Run("falls back to runtime name", func(t *testing.T) {
		h := Handler{Fn: handlerAlpha}

		got := Fname(h)
		if !strings.HasSuffix(got, "registry.handlerAlpha") {
			t.Errorf("Fname() = %s, want suffix registry.handlerAlpha", got)
		}
		if !strings.Contains(got, "/") {
			t.Errorf("Fname() = %s, want fully-qualified package path", got)
		}
	})

	t.Run("stable across calls", func(t *testing.T) {
		h := Handler{Fn: handlerAlpha}

		if Fname(h) != Fname(h) {
			t.Error("Fname() is not stable across repeated calls")
		}
	})

	t.Run("distinguishes handlers in different scopes", func(t *testing.T) {
		a := Handler{Fn: handlerAlpha}
		b := Handler{Fn: handlerBeta}
		closure := Handler{Fn: func(Event) error { return nil }}

		if Fname(a) == Fname(b) {
			t.Error("Fname() should distinguish different functions")
		}
		if Fname(a) == Fname(closure) {
			t.Error("Fname() should distinguish package functions from closures")
		}
	})

	t.Run("nil function", func(t *testing.T) {
		if got := Fname(Handler{}); got != "<nil>" {
			t.Errorf("Fname() = %s, want <nil>", got)
		}
	})
}

func TestDocstring(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "no documentation",
			doc:  "",
			want: nil,
		},
		{
			name: "whitespace only",
			doc:  "  \n\t\n",
			want: nil,
		},
		{
			name: "one-line docstring",
			doc:  "This is a one-line docstring.",
			want: []string{"This is a one-line docstring."},
		},
		{
			name: "multi-line docstring with indented body",
			doc:  "\n    This is a multi-line docstring.\n\n    It has more information here.\n\n    ",
			want: []string{"This is a multi-line docstring.", "", "It has more information here."},
		},
		{
			name: "summary followed by body",
			doc:  "Summary line.\n\n    Body line one.\n    Body line two.",
			want: []string{"Summary line.", "", "Body line one.", "Body line two."},
		},
		{
			name: "internal blank lines preserved",
			doc:  "Summary.\n\n  First paragraph.\n\n  Second paragraph.",
			want: []string{"Summary.", "", "First paragraph.", "", "Second paragraph."},
		},
		{
			name: "uneven indentation keeps relative offsets",
			doc:  "Summary.\n  outer\n    inner",
			want: []string{"Summary.", "outer", "  inner"},
		},
		{
			name: "leading blank lines stripped",
			doc:  "\n\nSummary.",
			want: []string{"Summary."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Handler{Fn: handlerAlpha, Doc: tt.doc}

			got := Docstring(h)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Docstring() = %#v, want %#v", got, tt.want)
			}
		})
	}

	t.Run("nil is the absence marker", func(t *testing.T) {
		if Docstring(Handler{Fn: handlerAlpha}) != nil {
			t.Error("Docstring() for undocumented handler should be nil")
		}
	})
}
