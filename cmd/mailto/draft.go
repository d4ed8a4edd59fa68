package main

import (
	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/mailto"
	"github.com/ghettovoice/mailto/internal/log"
)

func (a *app) newDraftCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "draft <uri>",
		Short:   "Write an RFC 5322 message draft built from a mailto URI",
		Example: `  mailto draft 'mailto:infobot@example.com?subject=current-issue&body=send%20index' > draft.eml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := mailto.Parse(args[0])
			if err != nil {
				return errtrace.Wrap(err)
			}
			a.logger.Debug("write draft", "uri", log.StringValue(u))
			return errtrace.Wrap(u.WriteDraft(cmd.OutOrStdout()))
		},
	}
}
