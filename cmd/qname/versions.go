/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/scriptvm/pkg/apiver"
)

func newVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "Lists known API versions in release order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, v := range apiver.Versions() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), v); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
