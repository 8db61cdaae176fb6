package sidefx

// Message constants
const (
	MsgRootShort = "Inspect registered side-effects"

	MsgRootLong = `sidefx decouples primary operations from the secondary side-effects
they trigger. Functions are wrapped as origins for an event label;
other functions register as handlers of that label and run, in
registration order, whenever the origin completes successfully.

This tool reports on the registry: which labels exist, which handlers
they map to, and whether every handler carries documentation. Host
programs embed the list command against their own registry; the
standalone binary ships a demo registry to explore the output formats.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"

	MsgListShort = "Display registered side-effects"

	MsgListLong = `Displays the label-to-handler mapping of the side-effects registry.

The default format prints each label with the documentation summary
line of every handler. Use --verbose for the full documentation, or
--raw for a JSON mapping of labels to fully-qualified handler names.

Handlers with no documentation are reported on stderr. With --strict
the process exits with a status equal to the number of undocumented
handlers, so CI builds can gate on complete documentation.`

	MsgListExample = `  # All registered side-effects, summary per handler
  sidefx list

  # Full documentation, sorted by label and handler name
  sidefx list --verbose --sorted

  # JSON mapping for tooling
  sidefx list --raw

  # Only events whose label contains "user."
  sidefx list --label-contains user.

  # Fail the build when documentation is missing
  sidefx list --strict`

	MsgDemoShort = "Run a demo origin with three side-effect handlers"

	MsgDemoLong = `Registers a 'foo' origin with three handlers (one undocumented, one
with a one-line docstring, one with a multi-line docstring), invokes
the origin once, and prints the resulting registry report.`
)
