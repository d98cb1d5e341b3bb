package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/promptaudit"
	"github.com/fwojciec/promptaudit/cli"
	"github.com/fwojciec/promptaudit/mock"
)

func allFailedResult() *promptaudit.AnalysisResult {
	verdicts := make([]promptaudit.RuleVerdict, 0, promptaudit.RuleCount)
	for id := 1; id <= promptaudit.RuleCount; id++ {
		verdicts = append(verdicts, promptaudit.RuleVerdict{
			RuleID:  id,
			Passed:  false,
			Comment: "low detail",
		})
	}
	return &promptaudit.AnalysisResult{
		Verdicts:     verdicts,
		OverallScore: 2,
		Summary:      "Vague first draft",
	}
}

func TestAnalyzeApp_Run_LiteralText(t *testing.T) {
	t.Parallel()

	var gotPrompt string
	var stdout bytes.Buffer
	app := &cli.AnalyzeApp{
		Analyzer: &mock.Analyzer{
			AnalyzeFn: func(_ context.Context, req promptaudit.AnalysisRequest) (*promptaudit.AnalysisResult, error) {
				gotPrompt = req.PromptText
				return allFailedResult(), nil
			},
		},
		Arg:    "Write a poem",
		Stdout: &stdout,
	}

	err := app.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Write a poem", gotPrompt)
	assert.Equal(t, 0, cli.ExitCode(err), "a completed analysis exits 0 even when every rule fails")
}

func TestAnalyzeApp_Run_FilePath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("This is a test prompt from a file"), 0o644))

	var gotPrompt string
	app := &cli.AnalyzeApp{
		Analyzer: &mock.Analyzer{
			AnalyzeFn: func(_ context.Context, req promptaudit.AnalysisRequest) (*promptaudit.AnalysisResult, error) {
				gotPrompt = req.PromptText
				return allFailedResult(), nil
			},
		},
		Arg:    path,
		Stdout: &bytes.Buffer{},
	}

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "This is a test prompt from a file", gotPrompt)
}

func TestAnalyzeApp_Run_ReportListsEveryFailure(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	app := &cli.AnalyzeApp{
		Analyzer: &mock.Analyzer{
			AnalyzeFn: func(_ context.Context, _ promptaudit.AnalysisRequest) (*promptaudit.AnalysisResult, error) {
				return allFailedResult(), nil
			},
		},
		Arg:    "Write a poem",
		Stdout: &stdout,
	}

	require.NoError(t, app.Run(context.Background()))

	out := stdout.String()
	assert.Equal(t, promptaudit.RuleCount, strings.Count(out, "FAIL"))
	assert.Contains(t, out, "2.0/10")
	assert.Contains(t, out, "Vague first draft")
	for _, rule := range promptaudit.Rules() {
		assert.Contains(t, out, rule.Name)
	}
}

func TestAnalyzeApp_Run_JSONOutput(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	app := &cli.AnalyzeApp{
		Analyzer: &mock.Analyzer{
			AnalyzeFn: func(_ context.Context, _ promptaudit.AnalysisRequest) (*promptaudit.AnalysisResult, error) {
				return allFailedResult(), nil
			},
		},
		Arg:    "Write a poem",
		JSON:   true,
		Stdout: &stdout,
	}

	require.NoError(t, app.Run(context.Background()))

	var result promptaudit.AnalysisResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	require.Len(t, result.Verdicts, promptaudit.RuleCount)
	assert.Equal(t, 2.0, result.OverallScore)
}

func TestAnalyzeApp_Run_ModelOverride(t *testing.T) {
	t.Parallel()

	var gotModel string
	app := &cli.AnalyzeApp{
		Analyzer: &mock.Analyzer{
			AnalyzeFn: func(_ context.Context, req promptaudit.AnalysisRequest) (*promptaudit.AnalysisResult, error) {
				gotModel = req.Model
				return allFailedResult(), nil
			},
		},
		Arg:    "Write a poem",
		Model:  "gemini-2.5-pro",
		Stdout: &bytes.Buffer{},
	}

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "gemini-2.5-pro", gotModel)
}

func TestAnalyzeApp_Run_PropagatesAnalysisError(t *testing.T) {
	t.Parallel()

	want := promptaudit.Errorf(promptaudit.KindTimeout, "audit call timed out")
	app := &cli.AnalyzeApp{
		Analyzer: &mock.Analyzer{
			AnalyzeFn: func(_ context.Context, _ promptaudit.AnalysisRequest) (*promptaudit.AnalysisResult, error) {
				return nil, want
			},
		},
		Arg:    "Write a poem",
		Stdout: &bytes.Buffer{},
	}

	err := app.Run(context.Background())

	require.ErrorIs(t, err, want)
	assert.Equal(t, 1, cli.ExitCode(err))
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, cli.ExitCode(nil))
	assert.Equal(t, 2, cli.ExitCode(promptaudit.Errorf(promptaudit.KindInvalidRequest, "empty prompt")))
	assert.Equal(t, 1, cli.ExitCode(promptaudit.Errorf(promptaudit.KindProviderError, "down")))
	assert.Equal(t, 1, cli.ExitCode(promptaudit.Errorf(promptaudit.KindMalformedResponse, "bad JSON")))
}
