// Package lipgloss renders audit results for the terminal using the
// Lipgloss styling library.
package lipgloss

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fwojciec/promptaudit"
)

// Score thresholds for the report color scheme.
const (
	goodScore = 8
	okScore   = 5
)

var (
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af")).Bold(true)
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
)

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 2)

// Report renders an AnalysisResult into a human-readable audit report.
type Report struct{}

// NewReport creates a Report renderer.
func NewReport() *Report {
	return &Report{}
}

// Render produces the full report: a score panel, one line per rule
// verdict, and the judge's summary.
func (r *Report) Render(result *promptaudit.AnalysisResult) string {
	var sb strings.Builder

	score := fmt.Sprintf("Score: %.1f/10", result.OverallScore)
	sb.WriteString(panelStyle.Render(scoreStyle(result.OverallScore).Render(score)))
	sb.WriteString("\n\n")

	sb.WriteString(boldStyle.Render("Summary:"))
	sb.WriteString(" ")
	sb.WriteString(result.Summary)
	sb.WriteString("\n\n")

	for _, v := range result.Verdicts {
		rule, ok := promptaudit.RuleByID(v.RuleID)
		name := rule.Name
		if !ok {
			name = fmt.Sprintf("Rule %d", v.RuleID)
		}
		sb.WriteString(verdictMark(v.Passed))
		fmt.Fprintf(&sb, " %2d. %s", v.RuleID, boldStyle.Render(name))
		if v.Comment != "" {
			sb.WriteString("\n     ")
			sb.WriteString(dimStyle.Render(v.Comment))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("Audited against the 10 Golden Rules of prompting"))
	sb.WriteString("\n")

	return sb.String()
}

func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= goodScore:
		return greenStyle
	case score >= okScore:
		return yellowStyle
	default:
		return redStyle
	}
}

func verdictMark(passed bool) string {
	if passed {
		return greenStyle.Render("PASS")
	}
	return redStyle.Render("FAIL")
}
