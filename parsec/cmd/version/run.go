/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hypermodeinc/parsec/x"
)

// Version is the sub-command invoked when running "parsec version".
var Version x.SubCommand

func init() {
	Version.Cmd = &cobra.Command{
		Use:   "version",
		Short: "Prints the parsec version details",
		Long:  "Version prints the parsec version as reported by the build details.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), x.BuildDetails())
		},
	}
	Version.EnvPrefix = "PARSEC_VERSION"
	Version.Cmd.SetHelpTemplate(x.NonRootTemplate)
}
