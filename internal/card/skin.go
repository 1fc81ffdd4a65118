package card

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrInvalidTemplate is returned for a skin identifier outside the fixed set.
var ErrInvalidTemplate = errors.New("card: invalid template")

// Template identifies a visual skin.
type Template string

const (
	TemplateBasic   Template = "basic"
	TemplateStarry  Template = "starry"
	TemplateOcean   Template = "ocean"
	TemplateAncient Template = "ancient"
	TemplateSciFi   Template = "sci-fi"
	TemplateCandy   Template = "candy"
)

// Palette is the set of CSS custom properties a skin defines. The shared
// card stylesheet only refers to these variables.
type Palette struct {
	PageBackground     string
	CardBackground     string
	CardBorder         string
	CardShadow         string
	GlowPrimary        string
	GlowSecondary      string
	Accent             string
	AccentSoft         string
	Text               string
	TextMuted          string
	SectionBackground  string
	QuestionBackground string
	CodeBackground     string
	FontFamily         string
	Bullet             string
}

// Skin is one static style record.
type Skin struct {
	ID          Template
	Name        string
	Description string
	Palette     Palette
	// Motif holds decorative rules layered over the shared stylesheet.
	Motif string
}

var skins = []Skin{
	{
		ID:          TemplateBasic,
		Name:        "Basic",
		Description: "Warm blush gradient with soft glow.",
		Palette: Palette{
			PageBackground:     "linear-gradient(120deg, #fffaf5, #ffeef0)",
			CardBackground:     "rgba(255, 255, 255, 0.95)",
			CardBorder:         "rgba(232, 180, 184, 0.3)",
			CardShadow:         "rgba(232, 180, 184, 0.2)",
			GlowPrimary:        "rgba(255, 200, 200, 0.25)",
			GlowSecondary:      "rgba(200, 220, 255, 0.25)",
			Accent:             "#c2556b",
			AccentSoft:         "rgba(194, 85, 107, 0.6)",
			Text:               "rgba(0, 0, 0, 0.75)",
			TextMuted:          "rgba(0, 0, 0, 0.45)",
			SectionBackground:  "rgba(255, 255, 255, 0.9)",
			QuestionBackground: "rgba(255, 255, 255, 0.6)",
			CodeBackground:     "rgba(0, 0, 0, 0.04)",
			FontFamily:         "'Source Han Serif SC', 'Noto Serif SC', 'Segoe UI', 'Helvetica Neue', 'PingFang SC', 'Microsoft YaHei', sans-serif",
			Bullet:             "'✦'",
		},
	},
	{
		ID:          TemplateStarry,
		Name:        "Starry Night",
		Description: "Deep indigo sky scattered with small stars.",
		Palette: Palette{
			PageBackground:     "radial-gradient(ellipse at top, #1b2447, #0b1023 70%)",
			CardBackground:     "rgba(18, 24, 54, 0.92)",
			CardBorder:         "rgba(246, 215, 130, 0.35)",
			CardShadow:         "rgba(6, 10, 30, 0.6)",
			GlowPrimary:        "rgba(246, 215, 130, 0.18)",
			GlowSecondary:      "rgba(120, 140, 255, 0.2)",
			Accent:             "#f6d782",
			AccentSoft:         "rgba(246, 215, 130, 0.65)",
			Text:               "rgba(235, 238, 255, 0.88)",
			TextMuted:          "rgba(235, 238, 255, 0.55)",
			SectionBackground:  "rgba(30, 38, 80, 0.85)",
			QuestionBackground: "rgba(40, 50, 100, 0.6)",
			CodeBackground:     "rgba(255, 255, 255, 0.08)",
			FontFamily:         "'Noto Serif SC', 'Songti SC', Georgia, serif",
			Bullet:             "'★'",
		},
		Motif: `body {
  background-image:
    radial-gradient(1px 1px at 20% 30%, #ffffff, transparent),
    radial-gradient(1px 1px at 70% 80%, #ffffff, transparent),
    radial-gradient(1.5px 1.5px at 40% 60%, #f6d782, transparent),
    radial-gradient(1px 1px at 85% 15%, #ffffff, transparent),
    radial-gradient(ellipse at top, #1b2447, #0b1023 70%);
}
.section-title { color: #f6d782; }
`,
	},
	{
		ID:          TemplateOcean,
		Name:        "Ocean",
		Description: "Cool teal waters with a wave border.",
		Palette: Palette{
			PageBackground:     "linear-gradient(180deg, #e0f7fa, #b2ebf2 60%, #80deea)",
			CardBackground:     "rgba(255, 255, 255, 0.93)",
			CardBorder:         "rgba(0, 131, 143, 0.25)",
			CardShadow:         "rgba(0, 96, 100, 0.18)",
			GlowPrimary:        "rgba(128, 222, 234, 0.35)",
			GlowSecondary:      "rgba(179, 229, 252, 0.35)",
			Accent:             "#00838f",
			AccentSoft:         "rgba(0, 131, 143, 0.6)",
			Text:               "rgba(1, 50, 67, 0.82)",
			TextMuted:          "rgba(1, 50, 67, 0.5)",
			SectionBackground:  "rgba(240, 252, 255, 0.92)",
			QuestionBackground: "rgba(224, 247, 250, 0.7)",
			CodeBackground:     "rgba(0, 131, 143, 0.08)",
			FontFamily:         "'Noto Sans SC', 'Segoe UI', 'Helvetica Neue', sans-serif",
			Bullet:             "'≈'",
		},
		Motif: `.card-wrapper {
  border-bottom: 6px solid transparent;
  border-image: repeating-linear-gradient(90deg, #4dd0e1 0 12px, #00acc1 12px 24px) 6;
}
`,
	},
	{
		ID:          TemplateAncient,
		Name:        "Ancient Scroll",
		Description: "Parchment tones and ink-brush serif type.",
		Palette: Palette{
			PageBackground:     "linear-gradient(135deg, #efe3c8, #d9c7a0)",
			CardBackground:     "rgba(250, 243, 224, 0.96)",
			CardBorder:         "rgba(120, 84, 40, 0.4)",
			CardShadow:         "rgba(90, 60, 20, 0.22)",
			GlowPrimary:        "rgba(200, 160, 100, 0.2)",
			GlowSecondary:      "rgba(160, 120, 70, 0.15)",
			Accent:             "#8b3a1e",
			AccentSoft:         "rgba(139, 58, 30, 0.6)",
			Text:               "rgba(60, 40, 20, 0.88)",
			TextMuted:          "rgba(60, 40, 20, 0.55)",
			SectionBackground:  "rgba(255, 250, 235, 0.9)",
			QuestionBackground: "rgba(239, 227, 200, 0.7)",
			CodeBackground:     "rgba(120, 84, 40, 0.08)",
			FontFamily:         "'STKaiti', 'KaiTi', 'Noto Serif SC', 'Songti SC', serif",
			Bullet:             "'❖'",
		},
		Motif: `.card-wrapper {
  border: 2px double rgba(120, 84, 40, 0.5);
  border-radius: 6px;
}
.card-section { border-radius: 4px; }
.card-theme { letter-spacing: 6px; }
`,
	},
	{
		ID:          TemplateSciFi,
		Name:        "Sci-Fi",
		Description: "Dark console with neon cyan accents.",
		Palette: Palette{
			PageBackground:     "linear-gradient(160deg, #05070d, #0d1b2a)",
			CardBackground:     "rgba(8, 14, 26, 0.94)",
			CardBorder:         "rgba(0, 229, 255, 0.45)",
			CardShadow:         "rgba(0, 229, 255, 0.15)",
			GlowPrimary:        "rgba(0, 229, 255, 0.18)",
			GlowSecondary:      "rgba(213, 0, 249, 0.15)",
			Accent:             "#00e5ff",
			AccentSoft:         "rgba(0, 229, 255, 0.6)",
			Text:               "rgba(210, 240, 255, 0.88)",
			TextMuted:          "rgba(210, 240, 255, 0.5)",
			SectionBackground:  "rgba(14, 26, 44, 0.9)",
			QuestionBackground: "rgba(0, 229, 255, 0.06)",
			CodeBackground:     "rgba(0, 229, 255, 0.1)",
			FontFamily:         "'JetBrains Mono', 'Fira Code', 'Noto Sans SC', monospace",
			Bullet:             "'▸'",
		},
		Motif: `.card-wrapper {
  border-radius: 4px;
  background-image: repeating-linear-gradient(0deg, rgba(0, 229, 255, 0.03) 0 1px, transparent 1px 3px);
}
.card-section { border-radius: 2px; }
.card-theme { text-shadow: 0 0 12px rgba(0, 229, 255, 0.7); text-transform: uppercase; }
`,
	},
	{
		ID:          TemplateCandy,
		Name:        "Candy",
		Description: "Bubbly pastel pink and mint.",
		Palette: Palette{
			PageBackground:     "linear-gradient(120deg, #ffe4f1, #e0fff4)",
			CardBackground:     "rgba(255, 255, 255, 0.96)",
			CardBorder:         "rgba(255, 128, 191, 0.35)",
			CardShadow:         "rgba(255, 128, 191, 0.22)",
			GlowPrimary:        "rgba(255, 182, 217, 0.35)",
			GlowSecondary:      "rgba(160, 255, 220, 0.35)",
			Accent:             "#ff5fa2",
			AccentSoft:         "rgba(255, 95, 162, 0.6)",
			Text:               "rgba(80, 40, 70, 0.82)",
			TextMuted:          "rgba(80, 40, 70, 0.5)",
			SectionBackground:  "rgba(255, 248, 252, 0.95)",
			QuestionBackground: "rgba(224, 255, 244, 0.7)",
			CodeBackground:     "rgba(255, 95, 162, 0.08)",
			FontFamily:         "'Baloo 2', 'ZCOOL KuaiLe', 'Noto Sans SC', sans-serif",
			Bullet:             "'♥'",
		},
		Motif: `.card-wrapper { border-radius: 40px; }
.card-section { border-radius: 28px; border-left-width: 6px; }
.card-footer span { background: linear-gradient(90deg, #ffd1e8, #c9fff0); }
`,
	},
}

// Skins returns the skin table in display order.
func Skins() []Skin {
	out := make([]Skin, len(skins))
	copy(out, skins)
	return out
}

// ParseTemplate normalises a user-supplied identifier. The empty string is
// the basic skin.
func ParseTemplate(raw string) (Template, error) {
	id := Template(strings.ToLower(strings.TrimSpace(raw)))
	if id == "" {
		return TemplateBasic, nil
	}
	if _, ok := lookupSkin(id); !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTemplate, raw)
	}
	return id, nil
}

// StylesFor returns the stylesheet fragment for a skin.
func StylesFor(id Template) (template.CSS, error) {
	skin, ok := lookupSkin(id)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTemplate, string(id))
	}
	return skin.css(), nil
}

func lookupSkin(id Template) (Skin, bool) {
	for _, s := range skins {
		if s.ID == id {
			return s, true
		}
	}
	return Skin{}, false
}

func (s Skin) css() template.CSS {
	p := s.Palette
	var b strings.Builder
	b.WriteString(":root {\n")
	vars := [][2]string{
		{"--page-bg", p.PageBackground},
		{"--card-bg", p.CardBackground},
		{"--card-border", p.CardBorder},
		{"--card-shadow", p.CardShadow},
		{"--glow-primary", p.GlowPrimary},
		{"--glow-secondary", p.GlowSecondary},
		{"--accent", p.Accent},
		{"--accent-soft", p.AccentSoft},
		{"--text", p.Text},
		{"--text-muted", p.TextMuted},
		{"--section-bg", p.SectionBackground},
		{"--question-bg", p.QuestionBackground},
		{"--code-bg", p.CodeBackground},
		{"--font", p.FontFamily},
		{"--bullet", p.Bullet},
	}
	for _, v := range vars {
		b.WriteString("  ")
		b.WriteString(v[0])
		b.WriteString(": ")
		b.WriteString(v[1])
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	b.WriteString(s.Motif)
	return template.CSS(b.String())
}
