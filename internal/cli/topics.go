package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTopicsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List the available topics and their modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, t := range a.registry.Topics() {
				modes := "-"
				if len(t.Modes) > 0 {
					modes = strings.Join(t.Modes, ",")
				}
				fmt.Fprintf(out, "%-10s %-26s %2d  %s\n", t.ID, t.Title, t.DefaultCount, modes)
			}
			return nil
		},
	}
}
