package sidefx

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/sidefx/pkg/commands/list"
	"github.com/arthur-debert/sidefx/pkg/dispatch"
	"github.com/arthur-debert/sidefx/pkg/registry"
)

func newDemoCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: MsgDemoShort,
		Long:  MsgDemoLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// A throwaway registry so repeated runs and tests never
			// touch the process default.
			reg := registry.New()

			origin := dispatch.HasSideEffects("foo", func(msg string) (string, error) {
				fmt.Fprintf(out, "origin: %s\n", msg)
				return "Message received: " + msg, nil
			}, dispatch.WithRegistry(reg))

			dispatch.IsSideEffectOf("foo", func(ev registry.Event) error {
				fmt.Fprintf(out, "side-effect.1: message=%v\n", ev.Arg)
				return nil
			}, dispatch.WithRegistry(reg), dispatch.WithName("demo.noDocstring"))

			dispatch.IsSideEffectOf("foo", func(ev registry.Event) error {
				fmt.Fprintf(out, "side-effect.2: message=%v\n", ev.Arg)
				return nil
			}, dispatch.WithRegistry(reg), dispatch.WithName("demo.oneLineDocstring"),
				dispatch.WithDoc("This is a one-line docstring."))

			dispatch.IsSideEffectOf("foo", dispatch.Handle(func(msg, returnValue string) error {
				fmt.Fprintf(out, "side-effect.3: message=%s, return_value=%s\n", msg, returnValue)
				return nil
			}), dispatch.WithRegistry(reg), dispatch.WithName("demo.multiLineDocstring"),
				dispatch.WithDoc(`This is a multi-line docstring.

It has more information here.`))

			result, err := origin(message)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "origin returned: %s\n", result)

			_, err = list.Run(list.Options{
				Registry: reg,
				Out:      out,
				ErrOut:   cmd.ErrOrStderr(),
			})
			return err
		},
	}

	cmd.Flags().StringVar(&message, "message", "hello", "Message passed to the demo origin.")

	return cmd
}
