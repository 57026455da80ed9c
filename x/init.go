/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import "fmt"

var (
	// These variables are set using -ldflags
	parsecVersion  string
	gitBranch      string
	lastCommitSHA  string
	lastCommitTime string
)

// NonRootTemplate is the help template of subcommands.
const NonRootTemplate = `{{if .Runnable}}Usage:{{if .HasAvailableFlags}}
  {{.UseLine}}{{end}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`

func BuildDetails() string {
	version := parsecVersion
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf(`
Parsec version   : %v
Commit SHA-1     : %v
Commit timestamp : %v
Branch           : %v

Licensed under the Apache License, Version 2.0.

`,
		version, lastCommitSHA, lastCommitTime, gitBranch)
}
