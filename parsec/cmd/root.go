/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hypermodeinc/parsec/parsec/cmd/batch"
	"github.com/hypermodeinc/parsec/parsec/cmd/match"
	"github.com/hypermodeinc/parsec/parsec/cmd/version"
	"github.com/hypermodeinc/parsec/x"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "parsec",
	Short: "Parsec: primitive parsers over text and token streams",
	Long: `
Parsec runs the primitive parsers (string, char, satisfy, oneOf, noneOf,
whiteSpace, eof, ...) over text or lexed token input, one at a time with
"match" or from a YAML case file with "batch".
` + x.BuildDetails(),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	goflag.Parse()
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var rootConf = viper.New()

var subcommands = []*x.SubCommand{
	&match.Match, &batch.Batch, &version.Version,
}

func init() {
	RootCmd.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden to values set with environment variables and flags.")
	x.Checkf(rootConf.BindPFlags(RootCmd.PersistentFlags()), "binding root flags")

	// glog flags (-v, -logtostderr, ...) come from the standard flag set.
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)

	for _, sc := range subcommands {
		RootCmd.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		x.Checkf(sc.Conf.BindPFlags(sc.Cmd.Flags()), "binding %s flags", sc.Cmd.Name())
		x.Checkf(sc.Conf.BindPFlags(RootCmd.PersistentFlags()),
			"binding root flags to %s", sc.Cmd.Name())
		sc.Conf.AutomaticEnv()
		sc.Conf.SetEnvPrefix(sc.EnvPrefix)
	}
	cobra.OnInitialize(func() {
		cfg := rootConf.GetString("config")
		if cfg == "" {
			return
		}
		for _, sc := range subcommands {
			sc.Conf.SetConfigFile(cfg)
			x.Check(x.Wrapf(sc.Conf.ReadInConfig(), "reading config"))
		}
	})
}
