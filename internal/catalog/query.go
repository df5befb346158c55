package catalog

import "sort"

// Screens returns every screen in catalog order.
func (c *Catalog) Screens() []Screen {
	return append([]Screen{}, c.screens...)
}

// ScreenNames returns the screen type names in catalog order.
func (c *Catalog) ScreenNames() []string {
	names := make([]string, len(c.screens))
	for i, s := range c.screens {
		names[i] = s.Name
	}
	return names
}

// Screen returns the named screen. Unknown names resolve to OtherScreen and report false.
func (c *Catalog) Screen(name string) (Screen, bool) {
	if i, ok := c.screenIndex[name]; ok {
		return c.screens[i], true
	}
	return c.screens[c.screenIndex[OtherScreen]], false
}

// Checklist returns the checklist items in order.
func (c *Catalog) Checklist() []ChecklistItem {
	return append([]ChecklistItem{}, c.checklist...)
}

func (c *Catalog) SymbolCategories() []string {
	return append([]string{}, c.symbolCategories...)
}

// Symbols returns the symbols of category, or all of them when category is empty.
func (c *Catalog) Symbols(category string) []Symbol {
	out := make([]Symbol, 0, len(c.symbols))
	for _, s := range c.symbols {
		if category == "" || s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

func (c *Catalog) Processes() []string {
	return append([]string{}, c.processes...)
}

// Tips returns the tips of process, or all of them when process is empty.
func (c *Catalog) Tips(process string) []Tip {
	out := make([]Tip, 0, len(c.tips))
	for _, t := range c.tips {
		if process == "" || t.Process == process {
			out = append(out, t)
		}
	}
	return out
}

func (c *Catalog) ToolCategories() []string {
	return append([]string{}, c.toolCategories...)
}

// Tools returns the tools of category, favourites first, otherwise in catalog order.
func (c *Catalog) Tools(category string) []Tool {
	out := make([]Tool, 0, len(c.tools))
	for _, t := range c.tools {
		if category == "" || t.Category == category {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Favorite && !out[j].Favorite
	})
	return out
}
