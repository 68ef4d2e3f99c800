package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func deportesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deportes",
		Short: "List known sports and their accepted spellings",
		RunE: func(cmd *cobra.Command, args []string) error {
			sports := vocab.All()

			if outputJSON {
				type sportRow struct {
					ID      int      `json:"id"`
					Key     string   `json:"key"`
					Backend string   `json:"backend"`
					Display string   `json:"display"`
					Aliases []string `json:"aliases"`
				}
				rows := make([]sportRow, 0, len(sports))
				for _, s := range sports {
					rows = append(rows, sportRow{s.ID, s.Key, s.Backend, s.Display, s.Aliases})
				}
				return writeJSON(rows)
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "ID\tKEY\tBACKEND\tDISPLAY\tALIASES")
			}
			for _, s := range sports {
				fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\n",
					s.ID, s.Key, s.Backend, s.Display, strings.Join(s.Aliases, ", "))
			}
			return writer.Flush()
		},
	}
	return cmd
}
