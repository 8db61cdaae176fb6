package json

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/sidefx/pkg/registry"
)

func handler(name string) registry.Handler {
	return registry.Handler{
		Fn:   func(registry.Event) error { return nil },
		Name: name,
	}
}

func TestRenderEvents(t *testing.T) {
	t.Run("empty view", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf).RenderEvents(registry.Events{}))

		assert.Equal(t, "{}\n", buf.String())
	})

	t.Run("labels keep view order", func(t *testing.T) {
		events := registry.Events{
			{Label: "zulu", Handlers: []registry.Handler{handler("pkg.z")}},
			{Label: "alpha", Handlers: []registry.Handler{handler("pkg.a"), handler("pkg.b")}},
		}

		var buf bytes.Buffer
		require.NoError(t, New(&buf).RenderEvents(events))

		expected := `{
    "zulu": [
        "pkg.z"
    ],
    "alpha": [
        "pkg.a",
        "pkg.b"
    ]
}
`
		assert.Equal(t, expected, buf.String())
	})
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).RenderError(errors.New("boom")))

	assert.JSONEq(t, `{"error": "boom"}`, buf.String())
}
