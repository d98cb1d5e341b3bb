package promptaudit

// Rule is one of the ten Golden Rules of prompting used as audit
// criteria. The catalog is fixed at build time.
type Rule struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RuleCount is the size of the rule catalog. Every successful analysis
// carries exactly this many verdicts.
const RuleCount = 10

var catalog = [RuleCount]Rule{
	{
		ID:          1,
		Name:        "Clear and Direct",
		Description: "The prompt gets straight to the point without ambiguity.",
	},
	{
		ID:          2,
		Name:        "Persona/Role",
		Description: "The prompt assigns a specific role to the AI (e.g. \"You are a lawyer\", \"Act as a Python expert\").",
	},
	{
		ID:          3,
		Name:        "Format & Tone",
		Description: "The prompt explicitly states the desired output format (table, list, code) and tone (professional, humorous).",
	},
	{
		ID:          4,
		Name:        "Context Priority",
		Description: "Constraints and persona are placed before the main task; the model pays more attention to the start.",
	},
	{
		ID:          5,
		Name:        "Contextual Data",
		Description: "The prompt provides necessary context or text to analyze before asking the question.",
	},
	{
		ID:          6,
		Name:        "Action Verbs",
		Description: "The prompt uses strong action verbs (e.g. \"Summarize\", \"Analyze\", \"Code\").",
	},
	{
		ID:          7,
		Name:        "Context Anchors",
		Description: "The prompt uses transition phrases to link data to instructions (e.g. \"Based on the text above...\").",
	},
	{
		ID:          8,
		Name:        "Length Control",
		Description: "The prompt specifies the desired length or verbosity (e.g. \"concise\", \"500 words\").",
	},
	{
		ID:          9,
		Name:        "Iterative Approach",
		Description: "The prompt reads like a refined iteration rather than a vague first draft.",
	},
	{
		ID:          10,
		Name:        "Fact Checking",
		Description: "If the prompt involves hallucination-prone topics (finance, code, law), it asks for citations or careful verification.",
	},
}

// Rules returns the ten-rule catalog ordered by ID. Callers receive a
// fresh slice and may not mutate the catalog itself.
func Rules() []Rule {
	rules := make([]Rule, RuleCount)
	copy(rules, catalog[:])
	return rules
}

// RuleByID returns the catalog rule with the given ID. The second
// return value is false when no such rule exists.
func RuleByID(id int) (Rule, bool) {
	if id < 1 || id > RuleCount {
		return Rule{}, false
	}
	return catalog[id-1], true
}
