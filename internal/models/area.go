package models

// CodeInfo is a single municipality as served by the API, joined with the JMA forecast areas that cover it.
type CodeInfo struct {
	Code         int    `json:"code"`
	Pref         string `json:"pref"`
	City         string `json:"city"`
	OfficeCode   int    `json:"office_code"`
	Class10sCode int    `json:"class10s_code"`
}

// AreaNode is one entry of the JMA area hierarchy.
type AreaNode struct {
	Name       string   `json:"name"`
	EnName     string   `json:"enName"`
	Kana       string   `json:"kana,omitempty"`
	OfficeName string   `json:"officeName,omitempty"`
	Parent     string   `json:"parent"`
	Children   []string `json:"children,omitempty"`
}

// AreaHierarchy mirrors the JMA area.json document. Every map is keyed by area code.
type AreaHierarchy struct {
	Centers  map[string]AreaNode `json:"centers"`
	Offices  map[string]AreaNode `json:"offices"`
	Class10s map[string]AreaNode `json:"class10s"`
	Class15s map[string]AreaNode `json:"class15s"`
	Class20s map[string]AreaNode `json:"class20s"`
}
