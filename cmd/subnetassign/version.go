package main

import (
	"github.com/spf13/cobra"

	"github.com/christophbittig/network-subnet-assignment/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			version.FprintVersion(cmd.OutOrStdout())
		},
	}
}
