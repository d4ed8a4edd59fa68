package main

import (
	"fmt"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/mailto"
)

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <uri>...",
		Short: "Check mailto URIs against the strict RFC 6068 syntax",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uris, err := inputs(args, cmd.InOrStdin())
			if err != nil {
				return errtrace.Wrap(err)
			}

			var failed int
			out := cmd.OutOrStdout()
			for _, s := range uris {
				if err := mailto.Check(s); err != nil {
					failed++
					a.logger.Info("malformed input", "input", s, "error", err)
					fmt.Fprintf(out, "%s: %v\n", s, err)
					continue
				}
				fmt.Fprintf(out, "%s: ok\n", s)
			}
			if failed > 0 {
				return errtrace.Wrap(fmt.Errorf("%w: %d of %d", errFailedInputs, failed, len(uris)))
			}
			return nil
		},
	}
}
