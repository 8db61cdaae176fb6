package sidefx

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/sidefx/pkg/commands/list"
	"github.com/arthur-debert/sidefx/pkg/config"
	"github.com/arthur-debert/sidefx/pkg/logging"
	"github.com/arthur-debert/sidefx/pkg/registry"
)

// ExitError signals that the process should exit with a specific
// status. The strict list mode uses it to report the number of
// handlers missing documentation, which CI builds gate on.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func newListCmd() *cobra.Command {
	var (
		raw           bool
		verbose       bool
		strict        bool
		sorted        bool
		label         string
		labelContains string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.list")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags win over config file and environment.
			if !cmd.Flags().Changed("raw") && !cmd.Flags().Changed("verbose") {
				raw = cfg.List.Format == "raw"
				verbose = cfg.List.Format == "verbose"
			}
			if !cmd.Flags().Changed("strict") {
				strict = cfg.List.Strict
			}
			if !cmd.Flags().Changed("sorted") {
				sorted = cfg.List.Sorted
			}

			result, err := list.Run(list.Options{
				Registry:      registry.Default(),
				Raw:           raw,
				Verbose:       verbose,
				Sorted:        sorted,
				Label:         label,
				LabelContains: labelContains,
				Out:           cmd.OutOrStdout(),
				ErrOut:        cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			if strict && len(result.MissingDocs) > 0 {
				logger.Warn().Int("missing", len(result.MissingDocs)).Msg("Strict mode failure")
				return &ExitError{
					Code:    len(result.MissingDocs),
					Message: fmt.Sprintf("%d registered function(s) have no docstrings", len(result.MissingDocs)),
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Display raw mapping of labels to functions.")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Display full docstring for all side-effect functions.")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with a non-zero exit code if any registered functions have no docstrings.")
	cmd.Flags().BoolVar(&sorted, "sorted", false, "Sort the output by label and handler.")
	cmd.Flags().StringVar(&label, "label", "", "Filter side-effects on a single event label.")
	cmd.Flags().StringVar(&labelContains, "label-contains", "", "Filter side-effects on event labels containing the supplied value.")
	cmd.MarkFlagsMutuallyExclusive("raw", "verbose")
	cmd.MarkFlagsMutuallyExclusive("label", "label-contains")

	return cmd
}
