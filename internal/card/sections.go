package card

import (
	"html/template"
	"strings"

	"finitefield.org/mindcard/internal/seo"
)

type section struct {
	Key     string
	Icon    string
	Title   string
	Accent  template.CSS
	Body    template.HTML
	Columns []column
}

type column struct {
	Key   string
	Label string
	Body  template.HTML
}

type sectionDef struct {
	key      string
	icon     string
	titleKey string
	accent   template.CSS
}

var (
	defEcho          = sectionDef{key: "echo", icon: "💭", titleKey: "card.section.echo", accent: "#FFB6C1"}
	defClarification = sectionDef{key: "clarification", icon: "🔍", titleKey: "card.section.clarification", accent: "#B0C4DE"}
	defSuggestion    = sectionDef{key: "suggestion", icon: "✨", titleKey: "card.section.suggestion", accent: "#FFDAB9"}

	defMirror      = sectionDef{key: "mirror", icon: "💭", titleKey: "card.section.mirror", accent: "#FFB6C1"}
	defBreakdown   = sectionDef{key: "breakdown", icon: "🔍", titleKey: "card.section.breakdown", accent: "#B0C4DE"}
	defExplanation = sectionDef{key: "explanation", icon: "💡", titleKey: "card.section.explanation", accent: "#FFDAB9"}
	defSteps       = sectionDef{key: "steps", icon: "🌱", titleKey: "card.section.steps", accent: "#90EE90"}
	defSummary     = sectionDef{key: "summary", icon: "🌺", titleKey: "card.section.summary", accent: "#DDA0DD"}
)

// sections returns the non-empty sections of the chosen layout in order.
func (r *Renderer) sections(c Content, layout Layout) []section {
	var out []section
	add := func(def sectionDef, body template.HTML, cols []column) {
		if len(cols) == 0 && !hasText(body) {
			return
		}
		out = append(out, section{
			Key:     def.key,
			Icon:    def.icon,
			Title:   r.t(def.titleKey),
			Accent:  def.accent,
			Body:    body,
			Columns: cols,
		})
	}

	switch layout {
	case FiveStep:
		add(defMirror, "", r.columns(c.Step1EmotionMirror, c.Step1ProblemRestate))
		add(defBreakdown, r.block(c.Step2Breakdown), nil)
		add(defExplanation, r.block(c.Step3Explanation), nil)
		add(defSteps, r.text(c.Step4Suggestions), nil)
		add(defSummary, r.block(c.Step5Summary), nil)
	default:
		add(defEcho, r.block(c.EmotionEcho), nil)
		add(defClarification, r.block(c.Clarification), nil)
		add(defSuggestion, r.text(c.Suggestion), nil)
	}
	return out
}

func (r *Renderer) block(s string) template.HTML {
	return template.HTML(r.md.ToHTML(s))
}

// text renders a list value as a card list, dropping blank items, and a
// single value as a Markdown block.
func (r *Renderer) text(t Text) template.HTML {
	if !t.IsList() {
		return r.block(t.String())
	}
	var b strings.Builder
	for _, item := range t.Items() {
		html := r.md.ToHTML(item)
		if !hasText(template.HTML(html)) {
			continue
		}
		b.WriteString("<li>")
		b.WriteString(html)
		b.WriteString("</li>")
	}
	if b.Len() == 0 {
		return ""
	}
	return template.HTML(`<ul class="card-list">` + b.String() + `</ul>`)
}

func (r *Renderer) columns(mirror, restate string) []column {
	var cols []column
	if body := r.block(mirror); hasText(body) {
		cols = append(cols, column{Key: "mirror", Label: r.t("card.label.mirror"), Body: body})
	}
	if body := r.block(restate); hasText(body) {
		cols = append(cols, column{Key: "restate", Label: r.t("card.label.restate"), Body: body})
	}
	return cols
}

// hasText reports whether a fragment shows any text once markup is removed.
// Markdown such as "---" or a bare image yields tags only.
func hasText(body template.HTML) bool {
	return seo.PlainText(string(body)) != ""
}
