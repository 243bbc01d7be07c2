/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/untillpro/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string, out io.Writer) error {
	params := CLIParams{}

	rootCmd := cobrau.PrepareRootCmd(
		"qname",
		"Constructs and inspects script VM qualified names",
		args,
		ver,
		newConstructCmd(&params),
		newCallCmd(&params),
		newVersionsCmd(),
	)
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&params.RootVersion, "root-version", "", "API version of the root content, e.g. FP_10_0")
	rootCmd.PersistentFlags().Uint8Var(&params.SWFVersion, "swf-version", 0, "SWF version of the root content, selects root API version")
	rootCmd.PersistentFlags().StringVar(&params.ConfigFile, "config", "", "Path to YAML VM configuration")

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
