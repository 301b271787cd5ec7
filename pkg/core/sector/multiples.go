// Package sector holds the industry-average valuation multiples used by
// the relative valuation model. The built-in table can be replaced from
// config/sectors.yaml at startup.
package sector

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

// Multiples are the industry-average ratios for one sector.
type Multiples struct {
	PE          float64 `yaml:"pe" json:"pe"`
	PB          float64 `yaml:"pb" json:"pb"`
	PS          float64 `yaml:"ps" json:"ps"`
	EVEBITDA    float64 `yaml:"evebitda" json:"evebitda"`
	DisplayName string  `yaml:"display_name" json:"display_name"`
}

// Table maps normalized sector keys to their multiples.
type Table struct {
	sectors map[string]Multiples
	def     Multiples
}

// Default returns the built-in table. Values approximate broad-market
// sector averages.
func Default() *Table {
	return &Table{
		sectors: map[string]Multiples{
			"technology":             {PE: 25, PB: 5.5, PS: 3.0, EVEBITDA: 15, DisplayName: "Technology"},
			"healthcare":             {PE: 22, PB: 4.2, PS: 2.5, EVEBITDA: 14, DisplayName: "Healthcare"},
			"consumer cyclical":      {PE: 18, PB: 3.5, PS: 1.5, EVEBITDA: 11, DisplayName: "Consumer Cyclical"},
			"consumer defensive":     {PE: 20, PB: 4.0, PS: 1.8, EVEBITDA: 13, DisplayName: "Consumer Defensive"},
			"financial":              {PE: 14, PB: 1.8, PS: 3.2, EVEBITDA: 10, DisplayName: "Financial Services"},
			"financial services":     {PE: 14, PB: 1.8, PS: 3.2, EVEBITDA: 10, DisplayName: "Financial Services"},
			"industrials":            {PE: 19, PB: 3.2, PS: 1.5, EVEBITDA: 12, DisplayName: "Industrials"},
			"basic materials":        {PE: 15, PB: 2.2, PS: 1.2, EVEBITDA: 9, DisplayName: "Basic Materials"},
			"materials":              {PE: 15, PB: 2.2, PS: 1.2, EVEBITDA: 9, DisplayName: "Basic Materials"},
			"energy":                 {PE: 12, PB: 1.6, PS: 1.0, EVEBITDA: 7, DisplayName: "Energy"},
			"utilities":              {PE: 17, PB: 2.0, PS: 2.2, EVEBITDA: 10, DisplayName: "Utilities"},
			"communication":          {PE: 20, PB: 3.8, PS: 2.5, EVEBITDA: 12, DisplayName: "Communication Services"},
			"communication services": {PE: 20, PB: 3.8, PS: 2.5, EVEBITDA: 12, DisplayName: "Communication Services"},
			"real estate":            {PE: 16, PB: 2.2, PS: 5.5, EVEBITDA: 16, DisplayName: "Real Estate"},
		},
		def: Multiples{PE: 18, PB: 2.5, PS: 2.0, EVEBITDA: 12, DisplayName: "Industry Average"},
	}
}

type tableFile struct {
	Sectors map[string]Multiples `yaml:"sectors"`
	Default *Multiples           `yaml:"default"`
}

// Load reads a YAML sector table. Sectors in the file replace the
// built-in set wholesale; a missing default keeps the built-in one.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sector table: %w", err)
	}
	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse sector table: %w", err)
	}

	t := Default()
	if len(tf.Sectors) > 0 {
		t.sectors = map[string]Multiples{}
		for k, v := range tf.Sectors {
			t.sectors[strings.ToLower(strings.TrimSpace(k))] = v
		}
	}
	if tf.Default != nil {
		t.def = *tf.Default
	}
	return t, nil
}

// Match resolves a company sector name to its multiples: exact key
// match first, then the first substring hit in sorted key order so the
// result never depends on map iteration. Unknown sectors get the
// default bucket.
func (t *Table) Match(sectorName string) Multiples {
	normalized := strings.ToLower(strings.TrimSpace(sectorName))
	if normalized == "" {
		return t.def
	}
	if m, ok := t.sectors[normalized]; ok {
		return m
	}

	keys := make([]string, 0, len(t.sectors))
	for k := range t.sectors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.Contains(normalized, k) || strings.Contains(k, normalized) {
			return t.sectors[k]
		}
	}
	return t.def
}

// DefaultBucket exposes the fallback multiples.
func (t *Table) DefaultBucket() Multiples { return t.def }

// Sectors returns a copy of the table for display endpoints.
func (t *Table) Sectors() map[string]Multiples {
	out := make(map[string]Multiples, len(t.sectors))
	for k, v := range t.sectors {
		out[k] = v
	}
	return out
}
