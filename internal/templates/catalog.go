package templates

import (
	"fmt"
	"path/filepath"
)

// DefaultID is the template used when a request names no template or an
// unknown one.
const DefaultID = "classic"

// Catalog is an immutable, validated set of templates. It is safe for
// concurrent use without locking.
type Catalog struct {
	order []string
	byID  map[string]Template
}

// Default builds the catalog from the built-in templates, resolving bundled
// background assets against assetDir.
func Default(assetDir string) (*Catalog, error) {
	return NewCatalog(assetDir, Builtin()...)
}

// NewCatalog validates the given templates and resolves relative image paths
// against assetDir once. Any invalid template fails construction.
func NewCatalog(assetDir string, list ...Template) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Template, len(list))}
	for _, t := range list {
		if err := Validate(t); err != nil {
			return nil, fmt.Errorf("template %q: %w", t.ID, err)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("template %q: duplicate id", t.ID)
		}
		resolveAssetPaths(&t, assetDir)
		c.byID[t.ID] = t
		c.order = append(c.order, t.ID)
	}
	if _, ok := c.byID[DefaultID]; !ok {
		return nil, fmt.Errorf("catalog has no %q template", DefaultID)
	}
	return c, nil
}

// Resolve returns the template for id, or the DefaultID template when id is
// empty or unknown. It never fails.
func (c *Catalog) Resolve(id string) Template {
	if t, ok := c.byID[id]; ok {
		return t
	}
	return c.byID[DefaultID]
}

// Lookup reports whether id names a catalog template.
func (c *Catalog) Lookup(id string) (Template, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// List returns template summaries in catalog order.
func (c *Catalog) List() []Summary {
	out := make([]Summary, 0, len(c.order))
	for _, id := range c.order {
		t := c.byID[id]
		out = append(out, Summary{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Preview:     t.Preview,
		})
	}
	return out
}

func resolveAssetPaths(t *Template, baseDir string) {
	if t.Background.Kind != BackgroundImage {
		return
	}
	p := t.Background.Path
	if p == "" || filepath.IsAbs(p) || baseDir == "" {
		return
	}
	t.Background.Path = filepath.Join(baseDir, p)
}
