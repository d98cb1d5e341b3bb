// Package cli implements the promptaudit command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fwojciec/promptaudit"
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "promptaudit",
		Short: "Audit LLM prompts against the 10 Golden Rules of prompting",
		Long: `Promptaudit grades a prompt intended for a large language model
against ten fixed prompting heuristics (clarity, persona, format,
priority, context, action verbs, anchoring, length control, iteration,
fact-checking). The semantic judgment is delegated to a Gemini judge
model; promptaudit builds the audit instruction, validates the judge's
JSON verdicts, and renders the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newVersionCmd(version))

	return root
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the promptaudit version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "promptaudit "+version)
		},
	}
}

// ExitCode maps an error returned by a command to a process exit code:
// 0 on success, 2 on invalid input, 1 on everything else. A completed
// analysis exits 0 even when every rule fails.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if kind, ok := promptaudit.KindOf(err); ok && kind == promptaudit.KindInvalidRequest {
		return 2
	}
	return 1
}
