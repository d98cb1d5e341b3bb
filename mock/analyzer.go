// Package mock provides mock implementations of promptaudit interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/promptaudit"
)

// Compile-time interface verification.
var _ promptaudit.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of promptaudit.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, req promptaudit.AnalysisRequest) (*promptaudit.AnalysisResult, error)
}

func (a *Analyzer) Analyze(ctx context.Context, req promptaudit.AnalysisRequest) (*promptaudit.AnalysisResult, error) {
	return a.AnalyzeFn(ctx, req)
}
