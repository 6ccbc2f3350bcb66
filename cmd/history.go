package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/koops/pathfinder/internal/assessment"
	"github.com/koops/pathfinder/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded assessment results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		bandVal, _ := cmd.Flags().GetString("band")

		var band assessment.Band
		if bandVal != "" {
			b, err := assessment.ParseBand(bandVal)
			if err != nil {
				return err
			}
			band = b
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		opts := store.QueryOpts{Limit: limit}
		if band != "" {
			opts.Limit = 0
		}
		results, err := s.EventRepo().QueryResults(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}
		results = filterByBand(results, band, limit)

		if len(results) == 0 {
			fmt.Println("No assessments recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-24s  %4s  %4s  %-18s  %s\n",
			"ID", "Timestamp", "Facility", "Sum", "%", "Status", "Steps")
		fmt.Println(strings.Repeat("─", 100))

		for _, r := range results {
			facility := r.Facility
			if facility == "" {
				facility = "-"
			}
			fmt.Printf("%-5d  %-19s  %-24s  %4d  %3d%%  %-18s  %s\n",
				r.ID,
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(facility, 24),
				r.Sum,
				r.Percent,
				r.Band,
				joinRatings(r.StepSums),
			)
		}
		return nil
	},
}

// filterByBand keeps results in band, newest first, up to limit. An empty
// band keeps everything and a zero limit means no limit.
func filterByBand(results []store.ResultEvent, band assessment.Band, limit int) []store.ResultEvent {
	out := make([]store.ResultEvent, 0, len(results))
	for _, r := range results {
		if band != "" && r.Band != string(band) {
			continue
		}
		out = append(out, r)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of results to show")
	historyCmd.Flags().StringP("band", "b", "", "Only show one status (not_ready, needs_preparation, pilot_ready)")
}
