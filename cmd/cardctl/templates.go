package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"finitefield.org/mindcard/internal/card"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the available card skins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := color.New(color.FgCyan, color.Bold)
			out := cmd.OutOrStdout()
			for _, s := range card.Skins() {
				id.Fprintf(out, "%-8s", s.ID)
				fmt.Fprintf(out, " %s  %s\n", s.Name, color.HiBlackString(s.Description))
			}
			return nil
		},
	}
}
