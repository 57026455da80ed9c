/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package batch

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hypermodeinc/parsec/probe"
	"github.com/hypermodeinc/parsec/x"
)

// Batch is the sub-command invoked when running "parsec batch".
var Batch x.SubCommand

func init() {
	Batch.Cmd = &cobra.Command{
		Use:   "batch",
		Short: "Run the primitive parser cases of a YAML file",
		Long: `
Batch loads a YAML file with a top level "cases" list. Each case names a
primitive, its argument and input, and optionally the expected outcome:

  cases:
    - name: literal
      primitive: string
      arg: ab
      input: abc
      expect: {ok: true, result: ab, rest: c}

The command fails if any case does not match its expectation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := Batch.GetStringP("cases", "f", "")
			if path == "" {
				return errors.New("--cases is required")
			}
			cases, err := probe.Load(path)
			if err != nil {
				return err
			}
			return run(cases, cmd.OutOrStdout(), Batch.GetBoolP("verbose", "", false))
		},
	}
	Batch.EnvPrefix = "PARSEC_BATCH"
	Batch.Cmd.SetHelpTemplate(x.NonRootTemplate)

	flag := Batch.Cmd.Flags()
	flag.StringP("cases", "f", "", "YAML file with the cases to run.")
	flag.Bool("verbose", false, "Print every case, not only the failing ones.")
}

func run(cases []probe.Case, out io.Writer, verbose bool) error {
	var failed int
	for i, c := range cases {
		name := c.Name
		if name == "" {
			name = humanize.Ordinal(i+1) + " case"
		}
		o, err := probe.Run(c)
		if err == nil {
			err = c.Check(o)
		}
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", name, err)
			continue
		}
		glog.V(2).Infof("Case %q passed: %+v", name, o)
		if verbose {
			fmt.Fprintf(out, "ok   %s\n", name)
		}
	}
	fmt.Fprintf(out, "%s cases, %s passed, %s failed\n",
		humanize.Comma(int64(len(cases))),
		humanize.Comma(int64(len(cases)-failed)),
		humanize.Comma(int64(failed)))
	if failed > 0 {
		return errors.Errorf("%d of %d cases failed", failed, len(cases))
	}
	return nil
}
