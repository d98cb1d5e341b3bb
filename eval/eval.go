// Package eval provides test helpers for live judge-model evaluation.
package eval

import (
	"os"
	"testing"

	"github.com/fwojciec/promptaudit"
)

// Eval provides assertion helpers for tests that run against a real
// judge model.
type Eval struct {
	analyzer promptaudit.Analyzer
}

// New creates a new Eval backed by the given analyzer.
func New(analyzer promptaudit.Analyzer) *Eval {
	return &Eval{analyzer: analyzer}
}

// AssertScoreAtLeast audits promptText and fails the test when the
// overall score comes back below min.
func (e *Eval) AssertScoreAtLeast(tb testing.TB, promptText string, min float64) {
	tb.Helper()

	result, err := e.analyzer.Analyze(tb.Context(), promptaudit.AnalysisRequest{PromptText: promptText})
	if err != nil {
		tb.Errorf("analysis failed: %v", err)
		return
	}
	if result.OverallScore < min {
		tb.Errorf("overall score %.1f below %.1f\nSummary: %s", result.OverallScore, min, result.Summary)
	}
}

// AssertRulePassed audits promptText and fails the test when the
// verdict for ruleID is a fail.
func (e *Eval) AssertRulePassed(tb testing.TB, promptText string, ruleID int) {
	tb.Helper()

	result, err := e.analyzer.Analyze(tb.Context(), promptaudit.AnalysisRequest{PromptText: promptText})
	if err != nil {
		tb.Errorf("analysis failed: %v", err)
		return
	}
	for _, v := range result.Verdicts {
		if v.RuleID == ruleID {
			if !v.Passed {
				tb.Errorf("rule %d not satisfied\nComment: %s", ruleID, v.Comment)
			}
			return
		}
	}
	tb.Errorf("no verdict for rule %d", ruleID)
}

// SkipUnlessEvals skips the test unless GOEVALS environment variable is set.
// Use at the start of eval tests to make them opt-in.
func SkipUnlessEvals(tb testing.TB) {
	tb.Helper()
	if os.Getenv("GOEVALS") == "" {
		tb.Skip("GOEVALS not set")
	}
}
