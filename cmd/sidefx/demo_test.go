package sidefx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoCommand(t *testing.T) {
	out, errOut, err := executeCommand(t, "demo", "--message", "hi there")
	require.NoError(t, err)

	// The origin runs first, then its handlers in declaration order.
	originIdx := strings.Index(out, "origin: hi there")
	firstIdx := strings.Index(out, "side-effect.1: message=hi there")
	secondIdx := strings.Index(out, "side-effect.2: message=hi there")
	thirdIdx := strings.Index(out, "side-effect.3: message=hi there, return_value=Message received: hi there")

	require.GreaterOrEqual(t, originIdx, 0)
	require.GreaterOrEqual(t, firstIdx, 0)
	require.GreaterOrEqual(t, secondIdx, 0)
	require.GreaterOrEqual(t, thirdIdx, 0)
	assert.Less(t, originIdx, firstIdx)
	assert.Less(t, firstIdx, secondIdx)
	assert.Less(t, secondIdx, thirdIdx)

	assert.Contains(t, out, "origin returned: Message received: hi there")

	// The report that follows shows the demo registry.
	assert.Contains(t, out, "Registered side-effects:")
	assert.Contains(t, out, "  - This is a one-line docstring.")
	assert.Contains(t, out, "  - This is a multi-line docstring.")
	assert.Contains(t, errOut, "  x demo.noDocstring (no docstring)")
}

func TestRootCommandWithoutArgs(t *testing.T) {
	_, _, err := executeCommand(t)
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sidefx version")
}
