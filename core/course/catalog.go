package course

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"

	pkgerrors "github.com/pkg/errors"

	"github.com/iiskills/shiksha/core"
)

var ErrNotFound = errors.New("module not found")

// minModules is the smallest module count considered a complete course.
const minModules = 6

// Catalog holds the course's reference modules for the process lifetime.
// It is read-only after construction.
type Catalog struct {
	modules []Module
	byID    map[int]Module
}

func NewCatalog(modules []Module) *Catalog {
	byID := make(map[int]Module, len(modules))
	for _, m := range modules {
		byID[m.ID] = m
	}
	return &Catalog{modules: modules, byID: byID}
}

// LoadCatalog reads the module set from path. A missing, malformed or invalid
// file is rewritten with DefaultModules and the defaults are used
// (fallback-on-invalid).
func LoadCatalog(path string, logger core.Logger) *Catalog {
	modules, err := loadModules(path)
	if err != nil {
		logger.Warn(fmt.Sprintf("course: %s invalid, falling back to default module set: %v", path, err))
		modules = DefaultModules
		if data, merr := json.MarshalIndent(modules, "", "  "); merr == nil {
			if werr := ioutil.WriteFile(path, data, 0644); werr != nil {
				logger.Warn(fmt.Sprintf("course: writing default module set: %v", werr))
			}
		}
	}
	return NewCatalog(modules)
}

func loadModules(path string) ([]Module, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("file does not exist")
		}
		return nil, pkgerrors.Wrap(err, "reading file")
	}
	var modules []Module
	if err := json.Unmarshal(data, &modules); err != nil {
		return nil, pkgerrors.Wrap(err, "parsing file")
	}
	if err := validateModules(modules); err != nil {
		return nil, err
	}
	return modules, nil
}

func validateModules(modules []Module) error {
	if len(modules) < minModules {
		return pkgerrors.Errorf("needs at least %d modules (got %d)", minModules, len(modules))
	}
	for _, m := range modules {
		if m.ID <= 0 || m.Title == "" || m.Description == "" || m.Content == "" || m.Duration == "" {
			return pkgerrors.Errorf("module %d: missing required fields", m.ID)
		}
	}
	return nil
}

// List returns module summaries without full content, in catalog order.
func (c *Catalog) List() []Summary {
	summaries := make([]Summary, 0, len(c.modules))
	for _, m := range c.modules {
		summaries = append(summaries, m.Summary())
	}
	return summaries
}

// All returns the full modules, content included. Admin use only.
func (c *Catalog) All() []Module {
	modules := make([]Module, len(c.modules))
	copy(modules, c.modules)
	return modules
}

func (c *Catalog) Get(id int) (Module, error) {
	m, ok := c.byID[id]
	if !ok {
		return Module{}, ErrNotFound
	}
	return m, nil
}

func (c *Catalog) Size() int { return len(c.modules) }
