// Package i18n resolves localized message templates.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/msgview/internal/core/body"
	"github.com/colonyops/msgview/internal/core/logging"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// Translator renders localized messages. Parts is the composable form:
// each placeholder is filled with pre-rendered segments.
type Translator interface {
	Lookup(key string, vars map[string]string) string
	Parts(key string, components map[string][]body.Segment) []body.Segment
}

// Catalog is a flat key to template table for one locale, backed by the
// English catalog for any key the locale does not define.
type Catalog struct {
	tag      language.Tag
	messages map[string]string
}

var _ Translator = (*Catalog)(nil)

// Default returns the embedded English catalog.
func Default() *Catalog {
	c, err := Load("en", nil)
	if err != nil {
		// The embedded catalog is part of the binary; failing to read it is
		// a build defect.
		panic(err)
	}
	return c
}

// Load builds a catalog for the preferred locale (a BCP 47 tag or an
// Accept-Language style list). Extra catalogs are YAML files matched by the
// doublestar patterns and named after their locale, e.g. de.yaml; they
// override embedded messages.
func Load(preferred string, patterns []string) (*Catalog, error) {
	embedded, err := readEmbedded()
	if err != nil {
		return nil, err
	}

	extra := map[language.Tag][]string{}
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("catalog pattern %q: %w", pattern, err)
		}
		for _, file := range matches {
			tag, err := tagFromFile(file)
			if err != nil {
				log := logging.Component("i18n")
				log.Warn().Err(err).Str("file", file).Msg("skipping catalog")
				continue
			}
			extra[tag] = append(extra[tag], file)
		}
	}

	var others []language.Tag
	for tag := range embedded {
		if tag != language.English {
			others = append(others, tag)
		}
	}
	for tag := range extra {
		if _, ok := embedded[tag]; !ok && tag != language.English {
			others = append(others, tag)
		}
	}
	slices.SortFunc(others, func(a, b language.Tag) int {
		return strings.Compare(a.String(), b.String())
	})
	supported := append([]language.Tag{language.English}, others...)

	_, index := language.MatchStrings(language.NewMatcher(supported), preferred)
	tag := supported[index]

	c := &Catalog{tag: tag, messages: map[string]string{}}
	c.merge(embedded[language.English])
	for _, file := range extra[language.English] {
		if err := c.mergeFile(file); err != nil {
			return nil, err
		}
	}
	if tag != language.English {
		c.merge(embedded[tag])
		for _, file := range extra[tag] {
			if err := c.mergeFile(file); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// Tag returns the negotiated locale.
func (c *Catalog) Tag() language.Tag {
	return c.tag
}

// Has reports whether key has a template.
func (c *Catalog) Has(key string) bool {
	_, ok := c.messages[key]
	return ok
}

// Lookup renders key with vars substituted. Unknown placeholders are left
// as written and a missing key renders as the key itself.
func (c *Catalog) Lookup(key string, vars map[string]string) string {
	var sb strings.Builder
	for _, t := range parse(c.template(key)) {
		if !t.placeholder {
			sb.WriteString(t.text)
			continue
		}
		if v, ok := vars[t.text]; ok {
			sb.WriteString(v)
		} else {
			sb.WriteString("{" + t.text + "}")
		}
	}
	return sb.String()
}

// Parts renders key as segments, splicing each component's segments in
// place of its placeholder.
func (c *Catalog) Parts(key string, components map[string][]body.Segment) []body.Segment {
	var segs []body.Segment
	for _, t := range parse(c.template(key)) {
		if !t.placeholder {
			segs = append(segs, body.Text(t.text))
			continue
		}
		if parts, ok := components[t.text]; ok {
			segs = append(segs, parts...)
		} else {
			segs = append(segs, body.Text("{"+t.text+"}"))
		}
	}
	return segs
}

func (c *Catalog) template(key string) string {
	if msg, ok := c.messages[key]; ok {
		return msg
	}
	log := logging.Component("i18n")
	log.Warn().Str("key", key).Str("locale", c.tag.String()).Msg("missing message")
	return key
}

func (c *Catalog) merge(messages map[string]string) {
	for k, v := range messages {
		c.messages[k] = v
	}
}

func (c *Catalog) mergeFile(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	messages, err := decode(data)
	if err != nil {
		return fmt.Errorf("catalog %s: %w", file, err)
	}
	c.merge(messages)
	return nil
}

func readEmbedded() (map[language.Tag]map[string]string, error) {
	entries, err := fs.ReadDir(localesFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("read embedded locales: %w", err)
	}

	out := make(map[language.Tag]map[string]string, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		data, err := localesFS.ReadFile(path.Join("locales", name))
		if err != nil {
			return nil, fmt.Errorf("read embedded %s: %w", name, err)
		}
		tag, err := tagFromFile(name)
		if err != nil {
			return nil, err
		}
		messages, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("embedded %s: %w", name, err)
		}
		out[tag] = messages
	}
	return out, nil
}

func decode(data []byte) (map[string]string, error) {
	messages := map[string]string{}
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return messages, nil
}

func tagFromFile(file string) (language.Tag, error) {
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	tag, err := language.Parse(base)
	if err != nil {
		return language.Und, fmt.Errorf("catalog name %q is not a locale: %w", base, err)
	}
	return tag, nil
}
