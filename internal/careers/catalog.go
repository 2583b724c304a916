package careers

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Wildcard is the catalog entry that lifts a constraint instead of naming one.
const Wildcard = "Any"

//go:embed catalog.yaml
var catalogYAML []byte

// Track is one degree specialization. Its persona block steers the
// completion service toward strategy-flavored or engineering-flavored roles.
type Track struct {
	Name       string `yaml:"name" json:"name"`
	CenterNode string `yaml:"center_node" json:"center_node"`
	Persona    string `yaml:"persona" json:"-"`
}

// Catalog holds the closed option sets the sidebar selectors draw from.
// Filters are valid by construction on the frontend; the backend re-checks
// membership because it cannot trust the wire.
type Catalog struct {
	Tracks        []Track  `yaml:"tracks" json:"tracks"`
	Industries    []string `yaml:"industries" json:"industries"`
	RoleFunctions []string `yaml:"role_functions" json:"role_functions"`
}

func LoadCatalog() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}
	if len(c.Tracks) == 0 || len(c.Industries) == 0 || len(c.RoleFunctions) == 0 {
		return nil, fmt.Errorf("embedded catalog is incomplete")
	}
	return &c, nil
}

func (c *Catalog) TrackByName(name string) (Track, bool) {
	for _, t := range c.Tracks {
		if t.Name == name {
			return t, true
		}
	}
	return Track{}, false
}

func (c *Catalog) ValidateFilters(f FilterRecord) error {
	if _, ok := c.TrackByName(f.Track); !ok {
		return fmt.Errorf("unknown track %q", f.Track)
	}
	if !contains(c.Industries, f.Industry) {
		return fmt.Errorf("unknown industry %q", f.Industry)
	}
	if !contains(c.RoleFunctions, f.RoleFunction) {
		return fmt.Errorf("unknown role function %q", f.RoleFunction)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
