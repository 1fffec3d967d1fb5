package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/turtleshell/internal/registry"
	"github.com/vovakirdan/turtleshell/internal/render"
	"github.com/vovakirdan/turtleshell/internal/scene"
)

// YAML dumps the generated descriptors.
type YAML struct{}

func (YAML) ID() string        { return "yaml" }
func (YAML) Title() string     { return "Scene descriptors (YAML)" }
func (YAML) Extension() string { return ".yaml" }

func (YAML) Export(w io.Writer, page render.Page, _ registry.Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewSceneDoc(page)); err != nil {
		return err
	}
	return enc.Close()
}

// SceneDoc is the serialized form of a page's visuals.
type SceneDoc struct {
	Heuristic   int          `yaml:"heuristic"`
	Dark        string       `yaml:"dark"`
	Light       string       `yaml:"light"`
	BaseColor   string       `yaml:"base_color"`
	Perspective int          `yaml:"perspective"`
	Mountain    MountainDoc  `yaml:"mountain"`
	Elements    []ElementDoc `yaml:"elements"`
}

// MountainDoc is the serialized mountain.
type MountainDoc struct {
	Bottom float64 `yaml:"bottom"`
	Dark   string  `yaml:"dark"`
	Light  string  `yaml:"light"`
}

// ElementDoc is one serialized sky element.
type ElementDoc struct {
	Index    int     `yaml:"index"`
	Left     float64 `yaml:"left"`
	Top      float64 `yaml:"top"`
	Depth    int     `yaml:"depth"`
	Rotation float64 `yaml:"rotation"`
	Scale    float64 `yaml:"scale"`
	Opacity  float64 `yaml:"opacity"`
	Color    string  `yaml:"color"`
}

// NewSceneDoc converts a page's generated visuals.
func NewSceneDoc(page render.Page) SceneDoc {
	sc := page.Scene
	doc := SceneDoc{
		Heuristic:   sc.Heuristic,
		Dark:        page.Dark(),
		Light:       page.Light(),
		BaseColor:   sc.BaseColor,
		Perspective: sc.Perspective,
		Mountain: MountainDoc{
			Bottom: page.Mountain.Bottom,
			Dark:   page.Mountain.Dark,
			Light:  page.Mountain.Light,
		},
		Elements: make([]ElementDoc, 0, len(sc.Elements)),
	}
	for _, el := range sc.Elements {
		doc.Elements = append(doc.Elements, elementDoc(el))
	}
	return doc
}

func elementDoc(el scene.ElementDescriptor) ElementDoc {
	return ElementDoc{
		Index:    el.Index,
		Left:     el.Left,
		Top:      el.Top,
		Depth:    el.Depth,
		Rotation: el.Rotation,
		Scale:    el.Scale,
		Opacity:  el.Opacity,
		Color:    el.Color,
	}
}
