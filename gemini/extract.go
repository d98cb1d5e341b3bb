package gemini

import (
	"encoding/json"
	"regexp"
)

// JSON mode keeps the judge honest most of the time, but models still
// occasionally wrap output in markdown fences or leave a trailing
// comma. Tolerate both before handing off to encoding/json.
var (
	jsonBlockPattern     = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\{.*\\})\\s*```")
	jsonObjectPattern    = regexp.MustCompile(`(?s)\{[\s\S]*\}`)
	trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)
)

// extractJSON pulls a JSON object out of a judge response, handling
// markdown code blocks and trailing commas. Returns "" when no object
// is present.
func extractJSON(content string) string {
	raw := ""
	if matches := jsonBlockPattern.FindStringSubmatch(content); len(matches) > 1 {
		raw = matches[1]
	} else {
		raw = jsonObjectPattern.FindString(content)
	}
	if raw == "" {
		return ""
	}
	// The comma repair cannot tell a real trailing comma from ",]"
	// inside a string value, so an extract that already parses is
	// returned untouched.
	if json.Valid([]byte(raw)) {
		return raw
	}
	return trailingCommaPattern.ReplaceAllString(raw, "$1")
}
