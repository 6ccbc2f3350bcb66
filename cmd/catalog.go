package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the question catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Catalog %s  (1 = %s, 5 = %s)\n", cat.Version, cat.Scale.LowLabel, cat.Scale.HighLabel)

		for _, st := range cat.Steps() {
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Step %d: %s\n", st.Number, st.Title)
			fmt.Fprintln(out, strings.Repeat("─", 72))
			if st.Subtitle != "" {
				fmt.Fprintf(out, "  %s\n\n", st.Subtitle)
			}
			for _, q := range st.Questions {
				fmt.Fprintf(out, "  %-8s  %s\n", q.ID(), q.Prompt)
			}
		}
		return nil
	},
}
