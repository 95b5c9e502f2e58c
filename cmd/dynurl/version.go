package main

import (
	"fmt"

	"github.com/aretw0/dynurl"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dynurl",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dynurl version %s\n", dynurl.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
