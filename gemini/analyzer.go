package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/fwojciec/promptaudit"
)

// Compile-time interface verification.
var _ promptaudit.Analyzer = (*Analyzer)(nil)

// DefaultAnalyzeTimeout is the default timeout for a single audit call.
const DefaultAnalyzeTimeout = 60 * time.Second

// Analyzer implements promptaudit.Analyzer using Google Gemini.
// Every call is one independent network round trip: no retry, no
// caching, no batching.
type Analyzer struct {
	client  GenerativeClient
	model   string
	timeout time.Duration
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithTimeout sets the timeout applied to each audit call.
func WithTimeout(d time.Duration) AnalyzerOption {
	return func(a *Analyzer) {
		a.timeout = d
	}
}

// NewAnalyzer creates a new Analyzer. An empty model selects
// DefaultModel.
func NewAnalyzer(client GenerativeClient, model string, opts ...AnalyzerOption) *Analyzer {
	if model == "" {
		model = DefaultModel
	}
	a := &Analyzer{
		client:  client,
		model:   model,
		timeout: DefaultAnalyzeTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze audits req.PromptText against the rule catalog. Errors are
// always *promptaudit.AnalysisError values.
func (a *Analyzer) Analyze(ctx context.Context, req promptaudit.AnalysisRequest) (*promptaudit.AnalysisResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	model := a.model
	if req.Model != "" {
		model = req.Model
	}

	contents := []*Content{{
		Parts: []*Part{{Text: promptaudit.BuildAuditPrompt(req.PromptText)}},
	}}

	resp, err := a.client.GenerateContent(ctx, model, contents, BuildAuditConfig())
	if err != nil {
		return nil, classifyCallError(err)
	}
	if resp == nil {
		return nil, promptaudit.Errorf(promptaudit.KindProviderError, "gemini: returned nil response")
	}

	return parseResult(resp.Text)
}

// BuildAuditConfig returns the generation config for audit calls: low
// temperature, JSON-only output pinned by a response schema, and the
// auditor system instruction.
func BuildAuditConfig() *GenerateContentConfig {
	temp := float32(0.2)
	return &GenerateContentConfig{
		SystemInstruction: &Content{
			Parts: []*Part{{Text: promptaudit.SystemInstruction}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema:   auditResponseSchema(),
	}
}

// auditResponseSchema pins the judge's output shape server-side. The
// parser still validates everything; schema drift in the provider must
// never produce a partial result.
func auditResponseSchema() *Schema {
	return &Schema{
		Type:     "object",
		Required: []string{"overall_score", "summary", "verdicts"},
		Properties: map[string]*Schema{
			"overall_score": {Type: "number"},
			"summary":       {Type: "string"},
			"verdicts": {
				Type: "array",
				Items: &Schema{
					Type:     "object",
					Required: []string{"rule_id", "passed", "comment"},
					Properties: map[string]*Schema{
						"rule_id": {Type: "integer"},
						"passed":  {Type: "boolean"},
						"comment": {Type: "string"},
					},
				},
			},
		},
	}
}

// classifyCallError maps transport failures onto the closed
// AnalysisError taxonomy.
func classifyCallError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return promptaudit.Errorf(promptaudit.KindTimeout, "gemini: audit call timed out: %v", err)
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &promptaudit.AnalysisError{
			Kind:     promptaudit.KindProviderError,
			Message:  apiErr.Message,
			Upstream: apiErr.StatusCode,
		}
	}
	return promptaudit.Errorf(promptaudit.KindProviderError, "gemini: %v", err)
}

// verdictWire mirrors RuleVerdict with pointer fields so omitted keys
// are distinguishable from zero values.
type verdictWire struct {
	RuleID  *int   `json:"rule_id"`
	Passed  *bool  `json:"passed"`
	Comment string `json:"comment"`
}

type resultWire struct {
	OverallScore *float64      `json:"overall_score"`
	Summary      string        `json:"summary"`
	Verdicts     []verdictWire `json:"verdicts"`
}

// parseResult validates the judge's raw text against the response
// contract. Anything short of ten well-formed verdicts covering rule
// IDs 1..10 is a MalformedResponse, never a partial result.
func parseResult(text string) (*promptaudit.AnalysisResult, error) {
	raw := extractJSON(text)
	if raw == "" {
		return nil, promptaudit.Errorf(promptaudit.KindMalformedResponse, "no JSON object in judge response")
	}

	var wire resultWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil, promptaudit.Errorf(promptaudit.KindMalformedResponse, "failed to parse judge response: %v", err)
	}

	if wire.OverallScore == nil {
		return nil, promptaudit.Errorf(promptaudit.KindMalformedResponse, "judge response missing overall_score")
	}
	if *wire.OverallScore < 0 || *wire.OverallScore > 10 {
		return nil, promptaudit.Errorf(promptaudit.KindMalformedResponse, "overall_score %v outside 0-10", *wire.OverallScore)
	}
	if wire.Summary == "" {
		return nil, promptaudit.Errorf(promptaudit.KindMalformedResponse, "judge response missing summary")
	}
	if len(wire.Verdicts) != promptaudit.RuleCount {
		return nil, promptaudit.Errorf(promptaudit.KindMalformedResponse,
			"expected %d verdicts, got %d", promptaudit.RuleCount, len(wire.Verdicts))
	}

	seen := make(map[int]bool, promptaudit.RuleCount)
	verdicts := make([]promptaudit.RuleVerdict, 0, promptaudit.RuleCount)
	for i, v := range wire.Verdicts {
		if v.RuleID == nil {
			return nil, promptaudit.Errorf(promptaudit.KindMalformedResponse, "verdict %d missing rule_id", i)
		}
		if v.Passed == nil {
			return nil, promptaudit.Errorf(promptaudit.KindMalformedResponse, "verdict %d missing passed", i)
		}
		if _, ok := promptaudit.RuleByID(*v.RuleID); !ok {
			return nil, promptaudit.Errorf(promptaudit.KindMalformedResponse, "verdict %d has unknown rule_id %d", i, *v.RuleID)
		}
		if seen[*v.RuleID] {
			return nil, promptaudit.Errorf(promptaudit.KindMalformedResponse, "duplicate verdict for rule %d", *v.RuleID)
		}
		seen[*v.RuleID] = true
		verdicts = append(verdicts, promptaudit.RuleVerdict{
			RuleID:  *v.RuleID,
			Passed:  *v.Passed,
			Comment: v.Comment,
		})
	}

	sort.Slice(verdicts, func(i, j int) bool { return verdicts[i].RuleID < verdicts[j].RuleID })

	return &promptaudit.AnalysisResult{
		Verdicts:     verdicts,
		OverallScore: *wire.OverallScore,
		Summary:      wire.Summary,
	}, nil
}
