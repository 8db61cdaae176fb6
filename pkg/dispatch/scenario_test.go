package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/sidefx/pkg/registry"
)

// Full producer/consumer scenario: one origin, three handlers with
// varying documentation, exercised through the public API only.
func TestOriginWithThreeHandlers(t *testing.T) {
	reg := registry.New()

	counts := map[string]int{}

	IsSideEffectOf("foo", func(ev registry.Event) error {
		counts["noDocstring"]++
		return nil
	}, WithRegistry(reg), WithName("tests.noDocstring"))

	IsSideEffectOf("foo", func(ev registry.Event) error {
		counts["oneLineDocstring"]++
		return nil
	}, WithRegistry(reg), WithName("tests.oneLineDocstring"),
		WithDoc("This is a one-line docstring."))

	IsSideEffectOf("foo", Handle(func(msg, returnValue string) error {
		counts["multiLineDocstring"]++
		return nil
	}), WithRegistry(reg), WithName("tests.multiLineDocstring"),
		WithDoc(`
    This is a multi-line docstring.

    It has more information here.

    `))

	origin := HasSideEffects("foo", func(msg string) (string, error) {
		return "Message received: " + msg, nil
	}, WithRegistry(reg))

	events := reg.ByLabel("foo")
	require.Len(t, events, 1)
	handlers := events[0].Handlers
	require.Len(t, handlers, 3)

	// Declaration order is preserved.
	assert.Equal(t, "tests.noDocstring", registry.Fname(handlers[0]))
	assert.Equal(t, "tests.oneLineDocstring", registry.Fname(handlers[1]))
	assert.Equal(t, "tests.multiLineDocstring", registry.Fname(handlers[2]))

	// Documentation contract.
	assert.Nil(t, registry.Docstring(handlers[0]))
	assert.Equal(t, []string{"This is a one-line docstring."}, registry.Docstring(handlers[1]))
	assert.Equal(t,
		[]string{"This is a multi-line docstring.", "", "It has more information here."},
		registry.Docstring(handlers[2]))

	// Invoking the origin runs every handler exactly once and returns
	// the origin's own result.
	result, err := origin("hello")
	require.NoError(t, err)
	assert.Equal(t, "Message received: hello", result)
	assert.Equal(t, map[string]int{
		"noDocstring":        1,
		"oneLineDocstring":   1,
		"multiLineDocstring": 1,
	}, counts)
}
