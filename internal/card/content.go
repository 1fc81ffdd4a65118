// Package card renders emotional-support cards as standalone HTML documents.
package card

import "strings"

// Content carries the card fields produced by a chat reply. Every field is
// optional; blank fields are never rendered.
type Content struct {
	Theme        string `json:"theme,omitempty" yaml:"theme,omitempty"`
	UserQuestion string `json:"user_question,omitempty" yaml:"user_question,omitempty"`
	// LayoutOverride picks the layout explicitly: true for three sections,
	// false for five steps. Nil falls back to field inference.
	LayoutOverride *bool `json:"useThreePart,omitempty" yaml:"useThreePart,omitempty"`

	EmotionEcho   string `json:"emotion_echo,omitempty" yaml:"emotion_echo,omitempty"`
	Clarification string `json:"clarification,omitempty" yaml:"clarification,omitempty"`
	Suggestion    Text   `json:"suggestion,omitzero" yaml:"suggestion,omitempty"`

	Step1EmotionMirror  string `json:"step1_emotion_mirror,omitempty" yaml:"step1_emotion_mirror,omitempty"`
	Step1ProblemRestate string `json:"step1_problem_restate,omitempty" yaml:"step1_problem_restate,omitempty"`
	Step2Breakdown      string `json:"step2_breakdown,omitempty" yaml:"step2_breakdown,omitempty"`
	Step3Explanation    string `json:"step3_explanation,omitempty" yaml:"step3_explanation,omitempty"`
	Step4Suggestions    Text   `json:"step4_suggestions,omitzero" yaml:"step4_suggestions,omitempty"`
	Step5Summary        string `json:"step5_summary,omitempty" yaml:"step5_summary,omitempty"`
}

// ThreePart returns a pointer suitable for LayoutOverride.
func ThreePart(v bool) *bool { return &v }

func (c Content) hasStepContent() bool {
	return !blank(c.Step1EmotionMirror) ||
		!blank(c.Step1ProblemRestate) ||
		!blank(c.Step2Breakdown) ||
		!blank(c.Step3Explanation) ||
		!c.Step4Suggestions.Blank() ||
		!blank(c.Step5Summary)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
