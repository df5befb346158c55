package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

type categoryFile struct {
	Category   string                         `yaml:"category"`
	Example    string                         `yaml:"example"`
	Situations []string                       `yaml:"situations"`
	Templates  map[string]map[string]Template `yaml:"templates"`
}

type categoryEntry struct {
	info      CategoryInfo
	templates map[string]ToneSet
}

// Store is the immutable template table. It is safe for concurrent reads.
type Store struct {
	categories map[Category]*categoryEntry
}

// LoadBuiltin loads the templates bundled with the binary.
func LoadBuiltin() (*Store, error) {
	return Load("")
}

// Load loads the builtin templates. When dir is set, a file there with the same
// name as a builtin file replaces it.
func Load(dir string) (*Store, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin templates: %w", err)
	}

	s := &Store{categories: make(map[Category]*categoryEntry, len(Categories))}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, source, err := readTemplateFile(dir, entry.Name())
		if err != nil {
			return nil, err
		}

		ce, err := parseCategory(data)
		if err != nil {
			return nil, fmt.Errorf("parse templates %s: %w", source, err)
		}
		ce.info.Source = source

		if _, dup := s.categories[ce.info.Category]; dup {
			return nil, fmt.Errorf("templates %s: category %s defined twice", source, ce.info.Category)
		}
		s.categories[ce.info.Category] = ce
	}

	for _, c := range Categories {
		if _, ok := s.categories[c]; !ok {
			return nil, fmt.Errorf("no templates for category %s", c)
		}
	}

	return s, nil
}

func readTemplateFile(dir, name string) ([]byte, string, error) {
	if dir != "" {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("read templates %s: %w", path, err)
		}
	}

	data, err := builtinFS.ReadFile("builtin/" + name)
	if err != nil {
		return nil, "", fmt.Errorf("read builtin templates %s: %w", name, err)
	}
	return data, "builtin", nil
}

func parseCategory(data []byte) (*categoryEntry, error) {
	var f categoryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	category := Category(f.Category)
	if !knownCategory(category) {
		return nil, fmt.Errorf("unknown category %q", f.Category)
	}
	if _, ok := f.Templates[DefaultKey]; !ok {
		return nil, fmt.Errorf("category %s has no %s templates", category, DefaultKey)
	}

	ce := &categoryEntry{
		info: CategoryInfo{
			Category:   category,
			Example:    f.Example,
			Situations: append([]string{}, f.Situations...),
		},
		templates: make(map[string]ToneSet, len(f.Templates)),
	}

	for key, tones := range f.Templates {
		if key != NormalizeSituation(key) {
			return nil, fmt.Errorf("category %s: situation key %q contains whitespace", category, key)
		}

		set := make(ToneSet, len(Tones))
		for name, tmpl := range tones {
			tone := Tone(name)
			if !knownTone(tone) {
				return nil, fmt.Errorf("category %s, situation %s: unknown tone %q", category, key, name)
			}
			if tmpl.Title == "" || tmpl.Body == "" {
				return nil, fmt.Errorf("category %s, situation %s, tone %s: title and body are required", category, key, tone)
			}
			set[tone] = tmpl
		}
		for _, tone := range Tones {
			if _, ok := set[tone]; !ok {
				return nil, fmt.Errorf("category %s, situation %s: missing tone %s", category, key, tone)
			}
		}
		ce.templates[key] = set
	}

	return ce, nil
}

// Resolve returns the tone set for category and an already normalized situation key.
// An unknown category resolves to CategoryOther and an unknown key to the category default.
func (s *Store) Resolve(category Category, key string) Resolution {
	res := Resolution{Category: category, Key: key}

	ce, ok := s.categories[category]
	if !ok {
		ce = s.categories[CategoryOther]
		res.Category = CategoryOther
		res.CategoryFallback = true
	}

	set, ok := ce.templates[key]
	if !ok {
		set = ce.templates[DefaultKey]
		res.Key = DefaultKey
		res.SituationFallback = key != DefaultKey
	}

	res.Templates = make(ToneSet, len(set))
	for tone, tmpl := range set {
		res.Templates[tone] = tmpl
	}
	return res
}

// Categories returns category metadata in display order.
func (s *Store) Categories() []CategoryInfo {
	entries := make([]*categoryEntry, 0, len(s.categories))
	for _, ce := range s.categories {
		entries = append(entries, ce)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return categoryIndex(entries[i].info.Category) < categoryIndex(entries[j].info.Category)
	})

	out := make([]CategoryInfo, len(entries))
	for i, ce := range entries {
		info := ce.info
		info.Situations = append([]string{}, ce.info.Situations...)
		out[i] = info
	}
	return out
}

// SituationKeys returns the explicit situation keys of a category, sorted.
func (s *Store) SituationKeys(category Category) []string {
	ce, ok := s.categories[category]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(ce.templates))
	for k := range ce.templates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func categoryIndex(c Category) int {
	for i, k := range Categories {
		if k == c {
			return i
		}
	}
	return len(Categories)
}
