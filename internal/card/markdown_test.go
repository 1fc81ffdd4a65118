package card

import (
	"strings"
	"testing"
)

func TestMarkdownToHTML(t *testing.T) {
	t.Parallel()

	md := NewMarkdown()
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "hard line breaks",
			input:    "first line\nsecond line",
			contains: []string{"<br", "second line"},
		},
		{
			name:     "bare urls are linked",
			input:    "see https://example.com/help for more",
			contains: []string{`href="https://example.com/help"`, "nofollow"},
		},
		{
			name:     "typographer quotes and dashes",
			input:    `"hello" -- friend`,
			contains: []string{"“hello”", "–"},
		},
		{
			name:     "inline raw html is escaped",
			input:    "a <b>bold</b> move",
			contains: []string{"&lt;b&gt;bold&lt;/b&gt;"},
			excludes: []string{"<b>"},
		},
		{
			name:     "html block is escaped",
			input:    "<div onclick=\"x()\">\nhi\n</div>",
			contains: []string{"&lt;div"},
			excludes: []string{"<div", "onclick=\""},
		},
		{
			name:     "markdown after a leading tag is still parsed",
			input:    "<div>\n**bold** and *em*",
			contains: []string{"&lt;div&gt;", "<strong>bold</strong>", "<em>em</em>"},
			excludes: []string{"**bold**", "<div>"},
		},
		{
			name:     "script line is shown as text",
			input:    "<script>alert(1)</script>\nafter",
			contains: []string{"&lt;script&gt;", "alert(1)", "after"},
			excludes: []string{"<script"},
		},
		{
			name:     "emphasis and lists",
			input:    "- *one*\n- two",
			contains: []string{"<ul>", "<em>one</em>"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := md.ToHTML(tc.input)
			for _, want := range tc.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected %q in %q", want, got)
				}
			}
			for _, unwanted := range tc.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("did not expect %q in %q", unwanted, got)
				}
			}
		})
	}
}

func TestMarkdownBlankInput(t *testing.T) {
	t.Parallel()

	md := NewMarkdown()
	for _, in := range []string{"", "  ", "\n\t\n"} {
		if got := md.ToHTML(in); got != "" {
			t.Errorf("ToHTML(%q) = %q, want empty", in, got)
		}
	}
}

func TestMarkdownMalformedInputDegrades(t *testing.T) {
	t.Parallel()

	got := NewMarkdown().ToHTML("**unclosed [link](http://x.com *stray")
	if got == "" || !strings.Contains(got, "unclosed") {
		t.Fatalf("expected literal rendering, got %q", got)
	}
}

func TestMarkdownInline(t *testing.T) {
	t.Parallel()

	md := NewMarkdown()
	if got := md.Inline("Hello *you*"); got != "Hello <em>you</em>" {
		t.Fatalf("unexpected inline output %q", got)
	}
	if got := md.Inline("one\n\ntwo"); !strings.HasPrefix(got, "<p>") {
		t.Fatalf("multi-paragraph input keeps paragraphs, got %q", got)
	}
}
