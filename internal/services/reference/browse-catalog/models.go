// internal/services/reference/browse-catalog/models.go
package browsecatalog

import "modalcopy/internal/catalog"

// Input narrows a listing to one category or process. Empty means everything.
type Input struct {
	Filter string `json:"filter,omitempty"`
}

type SymbolGroup struct {
	Category string           `json:"category"`
	Symbols  []catalog.Symbol `json:"symbols"`
}

type SymbolsOutput struct {
	Categories []string      `json:"categories"`
	Groups     []SymbolGroup `json:"groups"`
	Count      int           `json:"count"`
}

type TipsOutput struct {
	Processes []string      `json:"processes"`
	Process   string        `json:"process,omitempty"`
	Tips      []catalog.Tip `json:"tips"`
	Count     int           `json:"count"`
}

type ToolGroup struct {
	Category string         `json:"category"`
	Tools    []catalog.Tool `json:"tools"`
}

type ToolsOutput struct {
	Categories []string    `json:"categories"`
	Groups     []ToolGroup `json:"groups"`
	Count      int         `json:"count"`
}
