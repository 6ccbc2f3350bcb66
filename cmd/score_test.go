package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koops/pathfinder/internal/assessment"
	"github.com/koops/pathfinder/internal/catalog"
)

func TestSummarize(t *testing.T) {
	a, err := assessment.ParseAnswers("5,5,5,1,1,1,3,3,3,4,4,4")
	require.NoError(t, err)

	sum := summarize(catalog.Default(), a)
	assert.Equal(t, 39, sum.Sum)
	assert.Equal(t, 65, sum.Percent)
	assert.Equal(t, string(assessment.BandNeedsPreparation), sum.Band)
	require.Len(t, sum.Steps, 4)
	assert.Equal(t, 15, sum.Steps[0].Sum)
	assert.Equal(t, 100, sum.Steps[0].Percent)
	assert.Equal(t, []int{1, 1, 1}, sum.Steps[1].Ratings)
	assert.Equal(t, 20, sum.Steps[1].Percent)
}

func TestScoreSummaryJSON(t *testing.T) {
	sum := summarize(catalog.Default(), assessment.DefaultAnswers())

	data, err := json.Marshal(sum)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, float64(36), got["sum"])
	assert.Equal(t, float64(60), got["percent"])
	assert.Equal(t, "needs_preparation", got["band"])
	assert.Equal(t, "3,3,3,3,3,3,3,3,3,3,3,3", got["answers"])
}

func TestWriteScoreTable(t *testing.T) {
	a, err := uniformAnswers(catalog.Default(), 5)
	require.NoError(t, err)

	var buf bytes.Buffer
	writeScoreTable(&buf, summarize(catalog.Default(), a))

	out := buf.String()
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "60   100%")
	assert.Contains(t, out, "pilot_ready")
}

func TestUniformAnswersRejectsOutOfRange(t *testing.T) {
	_, err := uniformAnswers(catalog.Default(), 6)
	assert.True(t, errors.Is(err, assessment.ErrInvalidInput))

	a, err := uniformAnswers(catalog.Default(), 1)
	require.NoError(t, err)
	assert.Equal(t, 12, a.Sum())
}

// execute runs the root command with args and restores every flag to its
// default afterwards, since cobra keeps parsed values between runs.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		for _, c := range append(rootCmd.Commands(), rootCmd) {
			resetFlags(c.Flags())
			resetFlags(c.PersistentFlags())
		}
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func TestScoreCommandRejectsBadAnswers(t *testing.T) {
	_, err := execute(t, "score", "--answers", "1,2,3")
	assert.True(t, errors.Is(err, assessment.ErrInvalidInput))
}

func TestScoreCommandRejectsJSONWithReport(t *testing.T) {
	out, err := execute(t, "score", "--all", "4", "--json", "--report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json")
	assert.NotContains(t, out, `"percent"`)
}

func TestScoreAllUsesLoadedCatalog(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "internal", "catalog", "catalog.yaml"))
	require.NoError(t, err)
	custom := strings.Replace(string(data), "version: v1.0.0", "version: v2.1.0", 1)
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(custom), 0o644))

	out, err := execute(t, "score", "--catalog", path, "--all", "4", "--json")
	require.NoError(t, err)

	var got scoreSummary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "v2.1.0", got.CatalogVersion)
	assert.Equal(t, 48, got.Sum)
	assert.Equal(t, 80, got.Percent)
}
