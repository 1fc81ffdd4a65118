package card

import (
	"bytes"
	"reflect"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Markdown converts untrusted card text to HTML. Raw HTML in the input is
// shown as text, bare URLs are linked, single newlines become <br>, and
// quotes and dashes are typeset. The result is passed through a UGC policy
// before it is returned.
type Markdown struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewMarkdown builds the converter. It is safe for concurrent use.
func NewMarkdown() *Markdown {
	md := goldmark.New(
		goldmark.WithParser(newCardParser()),
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			renderer.WithNodeRenderers(util.Prioritized(escapedHTMLRenderer{}, 100)),
		),
	)
	return &Markdown{md: md, policy: newCardHTMLPolicy()}
}

// newCardParser is goldmark's default parser without HTML blocks, so a tag
// at the start of a line is escaped inline and the lines after it are still
// read as Markdown.
func newCardParser() parser.Parser {
	htmlBlock := reflect.TypeOf(parser.NewHTMLBlockParser())
	var blocks []util.PrioritizedValue
	for _, v := range parser.DefaultBlockParsers() {
		if reflect.TypeOf(v.Value) != htmlBlock {
			blocks = append(blocks, v)
		}
	}
	return parser.NewParser(
		parser.WithBlockParsers(blocks...),
		parser.WithInlineParsers(parser.DefaultInlineParsers()...),
		parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
	)
}

func newCardHTMLPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return policy
}

// ToHTML renders text as block-level HTML. Blank input yields "".
func (m *Markdown) ToHTML(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(text), &buf); err != nil {
		// goldmark only fails on writer errors; fall back to escaped text.
		return "<p>" + string(util.EscapeHTML([]byte(text))) + "</p>"
	}
	return strings.TrimSpace(m.policy.Sanitize(buf.String()))
}

// Inline renders text like ToHTML and drops a lone wrapping paragraph, for
// short strings such as the card title.
func (m *Markdown) Inline(text string) string {
	out := m.ToHTML(text)
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		return strings.TrimSpace(out[len("<p>") : len(out)-len("</p>")])
	}
	return out
}

// escapedHTMLRenderer prints inline HTML tags as escaped text instead of
// dropping them.
type escapedHTMLRenderer struct{}

func (r escapedHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindRawHTML, r.renderRawHTML)
}

func (r escapedHTMLRenderer) renderRawHTML(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkSkipChildren, nil
	}
	n := node.(*ast.RawHTML)
	for i := 0; i < n.Segments.Len(); i++ {
		segment := n.Segments.At(i)
		_, _ = w.Write(util.EscapeHTML(segment.Value(source)))
	}
	return ast.WalkSkipChildren, nil
}
