package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/koops/pathfinder/internal/app"
	"github.com/koops/pathfinder/internal/assessment"
	"github.com/koops/pathfinder/internal/llm"
	"github.com/koops/pathfinder/internal/report"
)

// runApp builds the session and its optional dependencies, then launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cat, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	modeVal, _ := cmd.Flags().GetString("report")
	mode, err := report.ParseMode(modeVal)
	if err != nil {
		return err
	}
	aiNotes, _ := cmd.Flags().GetBool("ai-notes")
	if aiNotes {
		mode = report.ModeLive
	}

	sess := assessment.NewSession(cat)
	if facility, _ := cmd.Flags().GetString("facility"); facility != "" {
		sess.SetFacility(facility)
	}
	opts := app.Options{Session: sess}

	var rec llm.Recorder
	if recordingEnabled(cmd) {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		repo := st.EventRepo()
		opts.Results = repo
		rec = repo
	}

	var notes report.NoteWriter
	if aiNotes {
		notes = analystNotes(cmd, rec)
	}
	opts.Reports = report.NewBuilder(mode, notes)

	return app.Run(ctx, opts)
}

// analystNotes returns an LLM-backed note writer, or nil when no provider
// is configured.
func analystNotes(cmd *cobra.Command, rec llm.Recorder) report.NoteWriter {
	cfg, err := llm.ResolveConfig()
	if err == nil {
		var p llm.Provider
		p, err = llm.NewProvider(cmd.Context(), cfg, rec)
		if err == nil {
			return report.NewAnalystNotes(p)
		}
	}
	fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
	fmt.Fprintln(os.Stderr, "The report will use standard analyst notes.")
	return nil
}
