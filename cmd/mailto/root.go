package main

import (
	"bufio"
	"io"
	"log/slog"
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ghettovoice/mailto/internal/errorutil"
	"github.com/ghettovoice/mailto/internal/log"
	"github.com/ghettovoice/mailto/internal/util"
)

const envPrefix = "MAILTO"

// errFailedInputs is returned after all inputs were processed and some of them failed.
const errFailedInputs errorutil.Error = "some inputs failed"

type app struct {
	cfg    *viper.Viper
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: viper.New(), logger: log.Noop}

	root := &cobra.Command{
		Use:   "mailto",
		Short: "Parse and render mailto URIs",
		Long: `mailto parses mailto URIs the way mail clients do (RFC 6068),
prints their header fields, checks strict syntax and writes message drafts.

Use "-" as an argument to read URIs from standard input, one per line.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("log-format", log.FormatConsole, "log format: console or dev")

	a.cfg.SetEnvPrefix(envPrefix)
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.cfg.AutomaticEnv()
	for _, name := range []string{"log-level", "log-format"} {
		if err := a.cfg.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		a.newParseCmd(),
		a.newCheckCmd(),
		a.newDraftCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	lvl, err := log.ParseLevel(a.cfg.GetString("log-level"))
	if err != nil {
		return errtrace.Wrap(err)
	}
	logger, err := log.New(cmd.ErrOrStderr(), a.cfg.GetString("log-format"), lvl)
	if err != nil {
		return errtrace.Wrap(err)
	}
	a.logger = logger.With("cmd", cmd.Name())
	return nil
}

// inputs expands "-" arguments into lines read from r.
func inputs(args []string, r io.Reader) ([]string, error) {
	var res []string
	for _, arg := range args {
		if arg != "-" {
			res = append(res, arg)
			continue
		}
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if line := util.TrimSP(sc.Text()); line != "" {
				res = append(res, line)
			}
		}
		if err := sc.Err(); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return res, nil
}
