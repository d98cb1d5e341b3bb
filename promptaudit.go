// Package promptaudit provides domain types for auditing LLM prompts
// against the ten Golden Rules of prompting.
package promptaudit

import (
	"context"
	"strings"
)

// AnalysisRequest describes a single audit request.
type AnalysisRequest struct {
	// PromptText is the prompt to audit. Must be non-blank.
	PromptText string `json:"prompt_text"`
	// Model optionally overrides the analyzer's default judge model.
	Model string `json:"model,omitempty"`
}

// Validate checks the request for basic shape errors before any
// provider call is made.
func (r AnalysisRequest) Validate() error {
	if strings.TrimSpace(r.PromptText) == "" {
		return &AnalysisError{Kind: KindInvalidRequest, Message: "prompt_text must not be empty"}
	}
	return nil
}

// RuleVerdict is the judge model's pass/fail judgment for a single rule.
type RuleVerdict struct {
	RuleID  int    `json:"rule_id"`
	Passed  bool   `json:"passed"`
	Comment string `json:"comment"`
}

// AnalysisResult is the validated outcome of a successful audit.
// Verdicts always holds exactly one entry per catalog rule, ordered by
// rule ID 1..10. Results are never partial: any deviation from that
// shape is reported as a MalformedResponse error instead.
type AnalysisResult struct {
	Verdicts     []RuleVerdict `json:"verdicts"`
	OverallScore float64       `json:"overall_score"`
	Summary      string        `json:"summary"`
}

// Analyzer audits a prompt by delegating semantic judgment to an
// external judge model.
type Analyzer interface {
	// Analyze performs one audit round trip. It blocks until the judge
	// responds, the context is done, or the configured timeout elapses.
	// Errors are always *AnalysisError values.
	Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error)
}

// Outcome carries the result of an asynchronous analysis.
// Exactly one of Result and Err is set.
type Outcome struct {
	Result *AnalysisResult
	Err    error
}

// AnalyzeAsync runs Analyze in a goroutine and returns a channel that
// delivers the outcome exactly once. The channel is buffered so the
// goroutine never leaks if the caller abandons it. Semantics are
// otherwise identical to the blocking call.
func AnalyzeAsync(ctx context.Context, a Analyzer, req AnalysisRequest) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		result, err := a.Analyze(ctx, req)
		ch <- Outcome{Result: result, Err: err}
	}()
	return ch
}
