/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package match

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hypermodeinc/parsec/probe"
	"github.com/hypermodeinc/parsec/x"
)

// Match is the sub-command invoked when running "parsec match".
var Match x.SubCommand

func init() {
	Match.Cmd = &cobra.Command{
		Use:   "match",
		Short: "Run one primitive parser over some input",
		Long: `
Match runs a single primitive parser over the given input and prints its
result, the remaining input and the final position. Primitives: ` +
			strings.Join(probe.Primitives, ", ") + ".",
		Example: `  parsec match -p string -a ab -i abc
  parsec match -p satisfy -a digit -i 5x
  echo "let x = 1" | parsec match -p string -a "let x" --tokens -i -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	Match.EnvPrefix = "PARSEC_MATCH"
	Match.Cmd.SetHelpTemplate(x.NonRootTemplate)

	flag := Match.Cmd.Flags()
	flag.StringP("primitive", "p", "", "Primitive to run.")
	flag.StringP("arg", "a", "",
		"Argument of the primitive: the literal, the character, the character set, "+
			"or the predicate name ("+predicateNames()+"; token type names with --tokens).")
	flag.StringP("input", "i", "", `Input to parse. "-" reads standard input.`)
	flag.Bool("tokens", false, "Lex the input and run the primitive over the tokens.")
}

func predicateNames() string {
	names := make([]string, 0, len(probe.RunePredicates))
	for name := range probe.RunePredicates {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func run(stdin io.Reader, out io.Writer) error {
	c := probe.Case{
		Primitive: Match.GetStringP("primitive", "p", ""),
		Input:     Match.GetStringP("input", "i", ""),
		Tokens:    Match.GetBoolP("tokens", "", false),
	}
	if c.Primitive == "" {
		return errors.New("--primitive is required")
	}
	if arg := Match.GetStringP("arg", "a", ""); arg != "" {
		c.Arg = arg
	}
	if c.Input == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return errors.Wrap(err, "while reading standard input")
		}
		c.Input = strings.TrimSuffix(string(b), "\n")
	}

	o, err := probe.Run(c)
	if err != nil {
		return err
	}
	glog.V(2).Infof("Ran %s over %d bytes of input", c.Primitive, len(c.Input))
	Print(out, o)
	if o.Err != nil {
		return errors.Errorf("%s failed", c.Primitive)
	}
	return nil
}

// Print writes o in the "key: value" form used by match and batch.
func Print(out io.Writer, o probe.Outcome) {
	fmt.Fprintf(out, "ok: %v\n", o.OK)
	if o.OK {
		fmt.Fprintf(out, "result: %q\n", o.Result)
	} else {
		fmt.Fprintf(out, "error: %s\n", o.Err)
	}
	fmt.Fprintf(out, "rest: %q\n", o.Rest)
	fmt.Fprintf(out, "position: %v\n", o.Pos)
	fmt.Fprintf(out, "consumed: %v\n", o.Consumed)
}
