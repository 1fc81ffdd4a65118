package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var embedded embed.FS

// DefaultFallback is the language used when nothing better matches.
const DefaultFallback = "zh"

type Bundle struct {
	dict      map[string]map[string]string
	fallback  string
	supported map[string]struct{}
	tags      []language.Tag
	codes     []string
	matcher   language.Matcher
}

// Load reads <lang>.json files from dir on disk.
func Load(dir string, fallback string, supported []string) (*Bundle, error) {
	return LoadFS(os.DirFS(dir), ".", fallback, supported)
}

// LoadFS reads <lang>.json files from dir inside fsys. Missing files are
// tolerated except for the fallback locale.
func LoadFS(fsys fs.FS, dir string, fallback string, supported []string) (*Bundle, error) {
	if len(supported) == 0 {
		supported = []string{"zh", "en"}
	}
	fallback = strings.ToLower(strings.TrimSpace(fallback))
	b := &Bundle{
		dict:      map[string]map[string]string{},
		fallback:  fallback,
		supported: map[string]struct{}{},
	}
	// The fallback goes first so the matcher treats it as its default.
	ordered := append([]string{fallback}, supported...)
	for _, l := range ordered {
		l = strings.ToLower(strings.TrimSpace(l))
		if _, seen := b.supported[l]; seen || l == "" {
			continue
		}
		tag, err := language.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", l, err)
		}
		b.supported[l] = struct{}{}
		b.tags = append(b.tags, tag)
		b.codes = append(b.codes, l)

		raw, err := fs.ReadFile(fsys, path.Join(dir, l+".json"))
		if err != nil {
			// allow missing file for non-default locales
			if l == fallback {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("load locale %s: %w", l, err)
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
	}
	if _, ok := b.dict[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

var defaultBundle = sync.OnceValues(func() (*Bundle, error) {
	return LoadFS(embedded, "locales", DefaultFallback, []string{"zh", "en"})
})

// Default returns the bundle built from the locales compiled into the binary.
func Default() *Bundle {
	b, err := defaultBundle()
	if err != nil {
		// embedded files are part of the build; failing here is a packaging bug
		panic(err)
	}
	return b
}

func (b *Bundle) Supported() []string {
	out := make([]string, 0, len(b.supported))
	for k := range b.supported {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// IsSupported reports whether lang (after normalisation) has a dictionary slot.
func (b *Bundle) IsSupported(lang string) bool {
	_, ok := b.supported[baseLanguage(lang)]
	return ok
}

// Normalize maps tags such as "zh-CN" or "EN" onto a supported code, or the
// fallback when unsupported.
func (b *Bundle) Normalize(lang string) string {
	base := baseLanguage(lang)
	if _, ok := b.supported[base]; ok {
		return base
	}
	return b.fallback
}

// T returns translation for key in lang, falling back to default and finally key.
func (b *Bundle) T(lang, key string) string {
	if lang != "" {
		if m, ok := b.dict[baseLanguage(lang)]; ok {
			if v, ok := m[key]; ok {
				return v
			}
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// Resolve chooses best language from Accept-Language header, or the
// fallback when nothing matches.
func (b *Bundle) Resolve(acceptLang string) string {
	if lang, ok := b.Match(acceptLang); ok {
		return lang
	}
	return b.fallback
}

// Match returns the supported language that best fits an Accept-Language
// header. ok is false when the header is empty, malformed, or names nothing
// supported; wildcards count as no preference.
func (b *Bundle) Match(acceptLang string) (string, bool) {
	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil {
		return "", false
	}
	requested := make([]language.Tag, 0, len(tags))
	for _, tag := range tags {
		if base, _ := tag.Base(); base.String() != "und" {
			requested = append(requested, tag)
		}
	}
	if len(requested) == 0 {
		return "", false
	}

	// The matcher may answer with its default at low confidence; only accept
	// it when the caller asked for that language.
	if _, idx, conf := b.matcher.Match(requested...); conf != language.No && idx >= 0 && idx < len(b.codes) {
		code := b.codes[idx]
		for _, tag := range requested {
			if base, _ := tag.Base(); base.String() == code {
				return code, true
			}
		}
	}
	for _, tag := range requested {
		base, _ := tag.Base()
		if _, ok := b.supported[base.String()]; ok {
			return base.String(), true
		}
	}
	return "", false
}

func baseLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return ""
	}
	if tag, err := language.Parse(lang); err == nil {
		base, _ := tag.Base()
		return base.String()
	}
	if i := strings.IndexAny(lang, "-_"); i != -1 {
		return lang[:i]
	}
	return lang
}
