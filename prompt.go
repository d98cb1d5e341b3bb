package promptaudit

import (
	"fmt"
	"strings"
)

// SystemInstruction is the persona given to the judge model for every
// audit call.
const SystemInstruction = `You are an expert Prompt Engineering Auditor. Your task is to analyze a given prompt intended for a Large Language Model (LLM) and grade it against ten specific "Golden Rules" of prompting.

For every rule you must decide whether the prompt satisfies it and explain your judgment in one or two sentences. Analyze strictly. Be helpful but critical.

You must respond with JSON only, matching the schema provided in the user message.`

// responseContract documents the JSON shape the judge must return. The
// field names here are the contract; gemini.Analyzer rejects anything
// that deviates from it.
const responseContract = `{
  "overall_score": <number between 0 and 10>,
  "summary": "<one or two sentence overall assessment>",
  "verdicts": [
    {"rule_id": <integer 1-10>, "passed": <true|false>, "comment": "<one sentence rationale>"}
  ]
}`

// BuildAuditPrompt renders the user's prompt and the rule catalog into
// a single instruction for the judge model. Pure and deterministic:
// the same prompt text always produces the same output, and each
// catalog rule appears exactly once.
func BuildAuditPrompt(promptText string) string {
	var sb strings.Builder

	sb.WriteString("Audit the following prompt against the 10 Golden Rules of prompting.\n\n")
	sb.WriteString("## Prompt Under Audit\n\n")
	sb.WriteString(promptText)
	sb.WriteString("\n\n## The 10 Golden Rules\n\n")

	for _, rule := range Rules() {
		fmt.Fprintf(&sb, "%d. **%s**: %s\n", rule.ID, rule.Name, rule.Description)
	}

	sb.WriteString("\n## Task\n\n")
	sb.WriteString("For each rule, judge whether the prompt under audit satisfies it. ")
	sb.WriteString("Return exactly one verdict per rule, in rule order, with a short comment explaining your judgment. ")
	sb.WriteString("Then give an overall score from 0 to 10 and a short summary.\n\n")
	sb.WriteString("Respond with JSON matching this schema:\n")
	sb.WriteString(responseContract)
	sb.WriteString("\n\nRules:\n")
	sb.WriteString("- The verdicts array must contain exactly 10 entries, one per rule\n")
	sb.WriteString("- rule_id values must be the integers 1 through 10, each used once\n")
	sb.WriteString("- Respond with the JSON object only, no surrounding prose\n")

	return sb.String()
}
