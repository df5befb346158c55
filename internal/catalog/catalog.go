// Package catalog loads the static reference data: screen descriptions, the
// planning checklist, the symbol palette, planning tips and the tool dashboard.
package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// OtherScreen is the screen type unknown names resolve to.
const OtherScreen = "기타"

type Screen struct {
	Name        string   `yaml:"name" json:"name"`
	Definition  string   `yaml:"definition" json:"definition"`
	Constraints []string `yaml:"constraints" json:"constraints"`
	Data        []string `yaml:"data" json:"data"`
	States      []string `yaml:"states" json:"states"`
	Exceptions  []string `yaml:"exceptions" json:"exceptions"`
}

type ChecklistItem struct {
	ID               string `yaml:"id" json:"id"`
	Category         string `yaml:"category" json:"category"`
	Label            string `yaml:"label" json:"label"`
	Description      string `yaml:"description" json:"description"`
	Tip              string `yaml:"tip,omitempty" json:"tip,omitempty"`
	RequiresQuestion bool   `yaml:"requiresQuestion,omitempty" json:"requiresQuestion,omitempty"`
	Question         string `yaml:"question,omitempty" json:"question,omitempty"`
}

type Symbol struct {
	Symbol      string `yaml:"symbol" json:"symbol"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Category    string `yaml:"category" json:"category"`
}

type Tip struct {
	Process  string `yaml:"process" json:"process"`
	Category string `yaml:"category" json:"category"`
	Content  string `yaml:"content" json:"content"`
	Link     string `yaml:"link,omitempty" json:"link,omitempty"`
}

type Tool struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	URL         string `yaml:"url" json:"url"`
	Category    string `yaml:"category" json:"category"`
	Favorite    bool   `yaml:"favorite,omitempty" json:"favorite"`
}

// Catalog is immutable after load.
type Catalog struct {
	screens          []Screen
	screenIndex      map[string]int
	checklist        []ChecklistItem
	symbolCategories []string
	symbols          []Symbol
	processes        []string
	tips             []Tip
	toolCategories   []string
	tools            []Tool
}

// LoadBuiltin parses and validates every embedded catalog file.
func LoadBuiltin() (*Catalog, error) {
	c := &Catalog{}

	var screens struct {
		Screens []Screen `yaml:"screens"`
	}
	if err := decode("screens.yaml", &screens); err != nil {
		return nil, err
	}
	c.screens = screens.Screens
	c.screenIndex = make(map[string]int, len(c.screens))
	for i, s := range c.screens {
		if s.Name == "" {
			return nil, fmt.Errorf("screens.yaml: entry %d has no name", i)
		}
		if _, dup := c.screenIndex[s.Name]; dup {
			return nil, fmt.Errorf("screens.yaml: duplicate screen %s", s.Name)
		}
		c.screenIndex[s.Name] = i
	}
	if _, ok := c.screenIndex[OtherScreen]; !ok {
		return nil, fmt.Errorf("screens.yaml: missing %s screen", OtherScreen)
	}

	var checklist struct {
		Items []ChecklistItem `yaml:"items"`
	}
	if err := decode("checklist.yaml", &checklist); err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(checklist.Items))
	for _, item := range checklist.Items {
		if item.ID == "" || ids[item.ID] {
			return nil, fmt.Errorf("checklist.yaml: missing or duplicate id %q", item.ID)
		}
		if item.RequiresQuestion && item.Question == "" {
			return nil, fmt.Errorf("checklist.yaml: item %s requires a question", item.ID)
		}
		ids[item.ID] = true
	}
	c.checklist = checklist.Items

	var symbols struct {
		Categories []string `yaml:"categories"`
		Symbols    []Symbol `yaml:"symbols"`
	}
	if err := decode("symbols.yaml", &symbols); err != nil {
		return nil, err
	}
	if err := checkCategories("symbols.yaml", symbols.Categories, len(symbols.Symbols), func(i int) string {
		return symbols.Symbols[i].Category
	}); err != nil {
		return nil, err
	}
	c.symbolCategories, c.symbols = symbols.Categories, symbols.Symbols

	var tips struct {
		Processes []string `yaml:"processes"`
		Tips      []Tip    `yaml:"tips"`
	}
	if err := decode("tips.yaml", &tips); err != nil {
		return nil, err
	}
	if err := checkCategories("tips.yaml", tips.Processes, len(tips.Tips), func(i int) string {
		return tips.Tips[i].Process
	}); err != nil {
		return nil, err
	}
	c.processes, c.tips = tips.Processes, tips.Tips

	var tools struct {
		Categories []string `yaml:"categories"`
		Tools      []Tool   `yaml:"tools"`
	}
	if err := decode("tools.yaml", &tools); err != nil {
		return nil, err
	}
	if err := checkCategories("tools.yaml", tools.Categories, len(tools.Tools), func(i int) string {
		return tools.Tools[i].Category
	}); err != nil {
		return nil, err
	}
	c.toolCategories, c.tools = tools.Categories, tools.Tools

	return c, nil
}

func decode(name string, dst interface{}) error {
	data, err := builtinFS.ReadFile("builtin/" + name)
	if err != nil {
		return fmt.Errorf("read builtin catalog %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse builtin catalog %s: %w", name, err)
	}
	return nil
}

// checkCategories ensures every entry points at a declared category.
func checkCategories(file string, declared []string, n int, categoryOf func(int) string) error {
	known := make(map[string]bool, len(declared))
	for _, c := range declared {
		known[c] = true
	}
	for i := 0; i < n; i++ {
		if !known[categoryOf(i)] {
			return fmt.Errorf("%s: entry %d has undeclared category %q", file, i, categoryOf(i))
		}
	}
	return nil
}
