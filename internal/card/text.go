package card

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Text is a free-text card field holding either one Markdown block or an
// ordered list of short items. The zero value is an empty single block.
type Text struct {
	single string
	items  []string
	list   bool
}

// Single returns a Text holding one Markdown block.
func Single(s string) Text {
	return Text{single: s}
}

// List returns a Text holding an ordered list of items.
func List(items ...string) Text {
	cp := make([]string, len(items))
	copy(cp, items)
	return Text{items: cp, list: true}
}

// IsList reports whether the value was supplied as a list.
func (t Text) IsList() bool { return t.list }

// String returns the single block, or the items joined by newlines for lists.
func (t Text) String() string {
	if t.list {
		return strings.Join(t.items, "\n")
	}
	return t.single
}

// Items returns the trimmed, non-blank list items. Single values yield nil.
func (t Text) Items() []string {
	if !t.list {
		return nil
	}
	out := make([]string, 0, len(t.items))
	for _, item := range t.items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// IsZero reports whether nothing was supplied. Used by omitzero/omitempty.
func (t Text) IsZero() bool {
	return !t.list && t.single == ""
}

// Blank reports whether the value would render nothing.
func (t Text) Blank() bool {
	if t.list {
		return len(t.Items()) == 0
	}
	return strings.TrimSpace(t.single) == ""
}

// UnmarshalJSON accepts a string, an array of strings, or null.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = Text{}
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("card: text: %w", err)
		}
		*t = Single(s)
		return nil
	case '[':
		var raw []*string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("card: text list: %w", err)
		}
		items := make([]string, 0, len(raw))
		for _, item := range raw {
			if item != nil {
				items = append(items, *item)
			}
		}
		*t = List(items...)
		return nil
	}
	return fmt.Errorf("card: text must be a string or list of strings, got %s", truncate(string(data), 32))
}

// MarshalJSON writes lists as arrays and single values as strings.
func (t Text) MarshalJSON() ([]byte, error) {
	if t.list {
		return json.Marshal(t.items)
	}
	return json.Marshal(t.single)
}

// UnmarshalYAML accepts a scalar, a sequence of scalars, or null.
func (t *Text) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			*t = Text{}
			return nil
		}
		*t = Single(node.Value)
		return nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(node.Content))
		for _, child := range node.Content {
			if child.Kind != yaml.ScalarNode {
				return fmt.Errorf("card: line %d: list items must be strings", child.Line)
			}
			if child.ShortTag() == "!!null" {
				continue
			}
			items = append(items, child.Value)
		}
		*t = List(items...)
		return nil
	}
	return fmt.Errorf("card: line %d: text must be a string or list of strings", node.Line)
}

// MarshalYAML mirrors MarshalJSON.
func (t Text) MarshalYAML() (any, error) {
	if t.list {
		return t.items, nil
	}
	return t.single, nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
