package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fwojciec/promptaudit"
	"github.com/fwojciec/promptaudit/config"
	"github.com/fwojciec/promptaudit/gemini"
	"github.com/fwojciec/promptaudit/lipgloss"
)

// AnalyzeApp encapsulates the analyze command logic for testing.
type AnalyzeApp struct {
	Analyzer promptaudit.Analyzer
	Arg      string    // Literal prompt text, or a path to a file holding it
	Model    string    // Optional judge model override
	JSON     bool      // Emit raw JSON instead of the styled report
	Stdout   io.Writer
}

// Run resolves the prompt text, audits it, and writes the report.
func (a *AnalyzeApp) Run(ctx context.Context) error {
	promptText := a.Arg
	if data, err := os.ReadFile(a.Arg); err == nil {
		promptText = string(data)
	}

	result, err := a.Analyzer.Analyze(ctx, promptaudit.AnalysisRequest{
		PromptText: promptText,
		Model:      a.Model,
	})
	if err != nil {
		return err
	}

	if a.JSON {
		enc := json.NewEncoder(a.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprint(a.Stdout, lipgloss.NewReport().Render(result))
	return nil
}

func newAnalyzeCmd() *cobra.Command {
	var (
		model      string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <text|file>",
		Short: "Audit a prompt given as literal text or a file path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cfg.APIKey == "" {
				return fmt.Errorf("GEMINI_API_KEY environment variable required")
			}

			client, err := gemini.NewClient(cmd.Context(), cfg.APIKey)
			if err != nil {
				return fmt.Errorf("failed to create Gemini client: %w", err)
			}

			if model == "" {
				model = cfg.Model
			}

			app := &AnalyzeApp{
				Analyzer: gemini.NewAnalyzer(client, model, gemini.WithTimeout(cfg.Timeout)),
				Arg:      args[0],
				JSON:     jsonOutput,
				Stdout:   cmd.OutOrStdout(),
			}
			return app.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "judge model to use (default "+gemini.DefaultModel+")")
	cmd.Flags().BoolVar(&jsonOutput, "json-output", false, "print the raw analysis result as JSON")

	return cmd
}
