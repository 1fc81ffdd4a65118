package card

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyPayload is returned when there is nothing to decode.
var ErrEmptyPayload = errors.New("card: empty payload")

// Format selects the payload encoding.
type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromContentType maps a request Content-Type onto a Format.
func FormatFromContentType(contentType string) Format {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return FormatAuto
	}
	switch mediaType {
	case "application/json":
		return FormatJSON
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return FormatYAML
	}
	return FormatAuto
}

// FormatFromPath maps a file extension onto a Format.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatAuto
}

// Payload is a decoded render request. Card content may be sent bare or
// wrapped as {"template": ..., "card": {...}}.
type Payload struct {
	Template string
	Content  Content
}

type envelope struct {
	Template string   `json:"template" yaml:"template"`
	Card     *Content `json:"card" yaml:"card"`
}

// DecodePayload decodes a JSON or YAML payload. FormatAuto treats input
// starting with '{' as JSON and anything else as YAML.
func DecodePayload(data []byte, f Format) (Payload, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Payload{}, ErrEmptyPayload
	}
	if f == FormatAuto {
		f = FormatYAML
		if data[0] == '{' {
			f = FormatJSON
		}
	}

	var env envelope
	if err := unmarshal(data, f, &env); err != nil {
		return Payload{}, err
	}
	if env.Card != nil {
		return Payload{Template: env.Template, Content: *env.Card}, nil
	}
	var c Content
	if err := unmarshal(data, f, &c); err != nil {
		return Payload{}, err
	}
	return Payload{Template: env.Template, Content: c}, nil
}

// DecodeContent decodes bare card content.
func DecodeContent(data []byte, f Format) (Content, error) {
	p, err := DecodePayload(data, f)
	if err != nil {
		return Content{}, err
	}
	return p.Content, nil
}

func unmarshal(data []byte, f Format, v any) error {
	switch f {
	case FormatJSON:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("card: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("card: decode yaml: %w", err)
		}
	default:
		return fmt.Errorf("card: unsupported format %q", string(f))
	}
	return nil
}
