// Package registry provides a global registry for page exporters.
// Exporters register themselves in init() functions, allowing the CLI
// to discover output formats without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/vovakirdan/turtleshell/internal/render"
)

// Options carries the output size for exporters that lay out cells.
type Options struct {
	Width  int
	Height int
}

// Exporter writes one page in a specific format.
type Exporter interface {
	// ID returns a unique identifier used on the command line (e.g. "svg").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Extension is the preferred file suffix, including the dot.
	Extension() string

	// Export writes the page to w.
	Export(w io.Writer, page render.Page, opts Options) error
}

// ExporterInfo contains metadata about a registered exporter.
type ExporterInfo struct {
	ID        string
	Title     string
	Extension string
}

// Factory is a function that creates a new exporter.
type Factory func() Exporter

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]ExporterInfo)
	mu        sync.RWMutex
)

// Register adds an exporter factory to the registry.
// Panics if an exporter with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: exporter %q already registered", id))
	}

	factories[id] = f

	e := f()
	infos[id] = ExporterInfo{ID: id, Title: e.Title(), Extension: e.Extension()}
}

// List returns information about all registered exporters, sorted by ID.
func List() []ExporterInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ExporterInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// IDs returns the registered exporter IDs, sorted.
func IDs() []string {
	list := List()
	ids := make([]string, len(list))
	for i, info := range list {
		ids[i] = info.ID
	}
	return ids
}

// Create instantiates an exporter by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Exporter, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown exporter %q", id)
	}

	return f(), nil
}

// Exists checks if an exporter with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
