package card

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"sync"
	"time"

	"finitefield.org/mindcard/internal/format"
	"finitefield.org/mindcard/internal/i18n"
	"finitefield.org/mindcard/internal/seo"
)

// Renderer assembles card documents. A Renderer is immutable once built and
// safe for concurrent use.
type Renderer struct {
	md     *Markdown
	bundle *i18n.Bundle
	lang   string
	loc    *time.Location
	now    func() time.Time
}

// Option customises a Renderer.
type Option func(*Renderer)

// WithClock replaces the wall clock used for the card timestamp.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLocale selects the language for fixed card strings and the timestamp.
func WithLocale(lang string) Option {
	return func(r *Renderer) {
		r.lang = lang
	}
}

// WithLocation sets the time zone the timestamp is shown in.
func WithLocation(loc *time.Location) Option {
	return func(r *Renderer) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// WithBundle swaps the translation bundle.
func WithBundle(b *i18n.Bundle) Option {
	return func(r *Renderer) {
		if b != nil {
			r.bundle = b
		}
	}
}

// WithMarkdown shares a converter between renderers.
func WithMarkdown(md *Markdown) Option {
	return func(r *Renderer) {
		if md != nil {
			r.md = md
		}
	}
}

// New builds a Renderer. Without options it renders Chinese strings in the
// local time zone.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		bundle: i18n.Default(),
		loc:    time.Local,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.md == nil {
		r.md = sharedMarkdown()
	}
	r.lang = r.bundle.Normalize(r.lang)
	return r
}

var sharedMarkdown = sync.OnceValue(NewMarkdown)

var defaultRenderer = sync.OnceValue(func() *Renderer { return New() })

// RenderCard renders c with the default renderer.
func RenderCard(c Content, tmpl Template) (string, error) {
	return defaultRenderer().Render(c, tmpl)
}

// Locale returns the language the renderer writes fixed strings in.
func (r *Renderer) Locale() string { return r.lang }

// ForLocale returns a copy of r that renders in lang. Unsupported languages
// resolve to the bundle fallback.
func (r *Renderer) ForLocale(lang string) *Renderer {
	cp := *r
	cp.lang = r.bundle.Normalize(lang)
	return &cp
}

// DefaultTitle is the title used when the content has no theme.
func (r *Renderer) DefaultTitle() string {
	return r.t("card.default_title")
}

type document struct {
	Lang      string
	Title     string
	TitleHTML template.HTML
	Tagline   string
	Date      string
	Question  template.HTML
	Layout    string
	Template  string
	Sections  []section
	Footer    string
	BaseCSS   template.CSS
	SkinCSS   template.CSS
	Meta      seo.Meta
}

// Render produces a complete HTML document for c in the tmpl skin. An empty
// tmpl means basic. Unknown skins fail with ErrInvalidTemplate before any
// output is built.
func (r *Renderer) Render(c Content, tmpl Template) (string, error) {
	if tmpl == "" {
		tmpl = TemplateBasic
	}
	skinCSS, err := StylesFor(tmpl)
	if err != nil {
		return "", err
	}

	title := strings.TrimSpace(c.Theme)
	if title == "" {
		title = r.DefaultTitle()
	}
	layout := SelectLayout(c)
	sections := r.sections(c, layout)
	question := r.md.ToHTML(c.UserQuestion)

	doc := document{
		Lang:      r.t("card.html_lang"),
		Title:     title,
		TitleHTML: template.HTML(r.md.Inline(title)),
		Tagline:   r.t("card.tagline"),
		Date:      format.FmtDateTime(r.now().In(r.loc), r.lang),
		Question:  template.HTML(question),
		Layout:    layout.String(),
		Template:  string(tmpl),
		Sections:  sections,
		Footer:    r.t("card.footer"),
		BaseCSS:   template.CSS(baseCSS),
		SkinCSS:   skinCSS,
		Meta:      seo.Article(title, summary(sections, question)),
	}

	var buf bytes.Buffer
	if err := documentTemplate.ExecuteTemplate(&buf, "card", doc); err != nil {
		return "", fmt.Errorf("card: execute document: %w", err)
	}
	return buf.String(), nil
}

// summary is the plain text of the first non-empty section, or the question.
func summary(sections []section, question string) string {
	for _, s := range sections {
		if s.Body != "" {
			return seo.PlainText(string(s.Body))
		}
		for _, col := range s.Columns {
			if col.Body != "" {
				return seo.PlainText(string(col.Body))
			}
		}
	}
	return seo.PlainText(question)
}

func (r *Renderer) t(key string) string {
	return r.bundle.T(r.lang, key)
}
