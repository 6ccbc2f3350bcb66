package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/koops/pathfinder/internal/assessment"
	"github.com/koops/pathfinder/internal/catalog"
	"github.com/koops/pathfinder/internal/report"
	"github.com/koops/pathfinder/internal/screens/preview"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a set of answers without the TUI",
	Long: `Score twelve ratings given in step order, e.g.

  pathfinder score --answers 3,4,2,5,3,3,1,2,3,4,4,5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		answers, err := answersFromFlags(cmd, cat)
		if err != nil {
			return err
		}

		sum := summarize(cat, answers)
		out := cmd.OutOrStdout()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(sum)
		}

		writeScoreTable(out, sum)

		if withReport, _ := cmd.Flags().GetBool("report"); withReport {
			facility, _ := cmd.Flags().GetString("facility")
			rep, err := report.NewBuilder(report.ModeLive, nil).Build(cmd.Context(), report.Input{
				Catalog:  cat,
				Answers:  answers,
				Facility: facility,
				Date:     time.Now(),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, preview.Render(rep, 100))
		}
		return nil
	},
}

func init() {
	scoreCmd.Flags().String("answers", "", "Twelve comma-separated ratings (1-5) in step order")
	scoreCmd.Flags().Int("all", 0, "Give every question the same rating (1-5)")
	scoreCmd.Flags().Bool("json", false, "Print the result as JSON")
	scoreCmd.Flags().Bool("report", false, "Also print the readiness report")
	scoreCmd.Flags().String("facility", "", "Facility name shown on the report")
	scoreCmd.MarkFlagsMutuallyExclusive("answers", "all")
	scoreCmd.MarkFlagsMutuallyExclusive("json", "report")
}

// answersFromFlags reads --answers or --all. With neither set every
// question keeps its default rating.
func answersFromFlags(cmd *cobra.Command, cat *catalog.Catalog) (assessment.Answers, error) {
	if s, _ := cmd.Flags().GetString("answers"); s != "" {
		return assessment.ParseAnswers(s)
	}
	if cmd.Flags().Changed("all") {
		all, _ := cmd.Flags().GetInt("all")
		return uniformAnswers(cat, all)
	}
	return assessment.DefaultAnswers(), nil
}

func uniformAnswers(cat *catalog.Catalog, rating int) (assessment.Answers, error) {
	e := assessment.NewEngine(cat)
	for step := 1; step <= catalog.StepCount; step++ {
		for i := 0; i < catalog.QuestionsPerStep; i++ {
			if err := e.SubmitAnswer(step, i, rating); err != nil {
				return assessment.Answers{}, err
			}
		}
	}
	return e.Answers(), nil
}

// stepSummary is the score of one step.
type stepSummary struct {
	Step    int    `json:"step"`
	Title   string `json:"title"`
	Ratings []int  `json:"ratings"`
	assessment.ScoreResult
}

// scoreSummary is the printable result of the score command.
type scoreSummary struct {
	CatalogVersion string        `json:"catalog_version"`
	Answers        string        `json:"answers"`
	Steps          []stepSummary `json:"steps"`
	Band           string        `json:"band"`
	Headline       string        `json:"headline"`
	assessment.ScoreResult
}

func summarize(cat *catalog.Catalog, a assessment.Answers) scoreSummary {
	overall := assessment.ScoreAnswers(a)
	band := assessment.StatusFor(overall.Percent)

	sum := scoreSummary{
		CatalogVersion: cat.Version,
		Answers:        a.String(),
		Band:           string(band),
		Headline:       band.Headline(),
		ScoreResult:    overall,
	}
	for _, st := range cat.Steps() {
		ratings := a[st.Number-1]
		sum.Steps = append(sum.Steps, stepSummary{
			Step:        st.Number,
			Title:       st.Title,
			Ratings:     ratings[:],
			ScoreResult: assessment.ScoreStep(a, st.Number),
		})
	}
	return sum
}

func writeScoreTable(w io.Writer, s scoreSummary) {
	sep := strings.Repeat("─", 64)

	fmt.Fprintf(w, "%-4s  %-30s  %-14s  %5s  %5s\n", "Step", "Dimension", "Ratings", "Sum", "%")
	fmt.Fprintln(w, sep)
	for _, st := range s.Steps {
		fmt.Fprintf(w, "%-4d  %-30s  %-14s  %5d  %4d%%\n",
			st.Step, truncate(st.Title, 30), joinRatings(st.Ratings), st.Sum, st.Percent)
	}
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "%-4s  %-30s  %-14s  %5d  %4d%%\n", "", "TOTAL", "", s.Sum, s.Percent)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Status:  %s\n", s.Band)
	fmt.Fprintf(w, "         %s\n", s.Headline)
}

func joinRatings(rs []int) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = fmt.Sprint(r)
	}
	return strings.Join(parts, " ")
}
