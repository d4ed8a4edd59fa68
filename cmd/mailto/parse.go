package main

import (
	"encoding/json"
	"fmt"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/mailto"
)

type headerJSON struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type parseResultJSON struct {
	URI       string       `json:"uri"`
	Canonical string       `json:"canonical,omitempty"`
	Headers   []headerJSON `json:"headers,omitempty"`
	Error     string       `json:"error,omitempty"`
}

func (a *app) newParseCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <uri>...",
		Short: "Print header fields of mailto URIs",
		Example: `  mailto parse 'mailto:joe@example.com?cc=bob@example.com&body=hello'
  mailto parse --json - < links.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uris, err := inputs(args, cmd.InOrStdin())
			if err != nil {
				return errtrace.Wrap(err)
			}

			var (
				failed  int
				results []parseResultJSON
			)
			out := cmd.OutOrStdout()
			for i, s := range uris {
				u, err := mailto.Parse(s)
				if err != nil {
					failed++
					a.logger.Warn("skip input", "input", s, "error", err)
					if asJSON {
						results = append(results, parseResultJSON{URI: s, Error: err.Error()})
					} else {
						fmt.Fprintf(out, "%s: %v\n", s, err)
					}
					continue
				}
				a.logger.Debug("parsed input", "input", s, "uri", u, "headers", u.Headers())

				if asJSON {
					res := parseResultJSON{URI: s, Canonical: u.String()}
					for k, v := range u.Headers().All() {
						res.Headers = append(res.Headers, headerJSON{k, v})
					}
					results = append(results, res)
					continue
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				for k, v := range u.Headers().All() {
					fmt.Fprintf(out, "%s: %q\n", k, v)
				}
			}

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(results); err != nil {
					return errtrace.Wrap(err)
				}
			}
			if failed > 0 {
				return errtrace.Wrap(fmt.Errorf("%w: %d of %d", errFailedInputs, failed, len(uris)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}
