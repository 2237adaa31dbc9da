package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/cardforge"
)

func newVersionCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of cardforge",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(o.out, "cardforge version %s\n", cardforge.Version)
		},
	}
}
