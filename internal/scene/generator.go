package scene

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is returned by Params.Validate.
var ErrInvalidParams = errors.New("scene: invalid parameters")

// Params controls scene generation. The zero value is not valid; start from DefaultParams.
type Params struct {
	ElementCount     int     // Shapes in the sky
	ScaleMultiplier  float64 // Upper bound of a shape's scale before viewport scaling
	DepthRange       float64 // Max z offset in pixels
	PerspectiveRange float64 // Spread of the perspective value
	PerspectiveBase  float64 // Minimum perspective in pixels
	SeedOffset       float64 // Hash input offset
}

// DefaultParams returns the parameters the site was published with.
func DefaultParams() Params {
	return Params{
		ElementCount:     10,
		ScaleMultiplier:  6,
		DepthRange:       10,
		PerspectiveRange: 5,
		PerspectiveBase:  20,
		SeedOffset:       DefaultSeedOffset,
	}
}

// Validate reports parameters that cannot produce a sensible scene.
func (p Params) Validate() error {
	switch {
	case p.ElementCount < 1:
		return fmt.Errorf("%w: element count %d < 1", ErrInvalidParams, p.ElementCount)
	case p.ScaleMultiplier <= 0:
		return fmt.Errorf("%w: scale multiplier %g <= 0", ErrInvalidParams, p.ScaleMultiplier)
	case p.DepthRange < 0:
		return fmt.Errorf("%w: depth range %g < 0", ErrInvalidParams, p.DepthRange)
	case p.PerspectiveRange < 0:
		return fmt.Errorf("%w: perspective range %g < 0", ErrInvalidParams, p.PerspectiveRange)
	case p.PerspectiveBase < 0:
		return fmt.Errorf("%w: perspective base %g < 0", ErrInvalidParams, p.PerspectiveBase)
	}
	return nil
}

// ElementDescriptor holds the visual parameters of one sky shape.
type ElementDescriptor struct {
	Index    int     // 1-based position in the scene
	Left     float64 // Horizontal position, percent
	Top      float64 // Vertical position, percent
	Depth    int     // Z translation, pixels
	Rotation float64 // Degrees
	Scale    float64
	Opacity  float64
	Color    string // Hex color from the active palette
}

// SceneResult is everything needed to draw one sky.
type SceneResult struct {
	Heuristic   int
	Elements    []ElementDescriptor
	BaseColor   string // Sky background
	Perspective int    // Pixels
}

// Mountain describes the silhouette drawn under the sky.
type Mountain struct {
	Bottom float64 // Lift from the bottom edge, percent in [0, 60)
	Dark   string
	Light  string
}

// Generator produces scenes for a fixed set of parameters.
type Generator struct {
	params Params
	hash   Hasher
}

// NewGenerator creates a generator. Parameters are used as given; call
// Params.Validate first when they come from user input.
func NewGenerator(p Params) *Generator {
	return &Generator{params: p, hash: NewHasher(p.SeedOffset)}
}

// Params returns the generator's parameters.
func (g *Generator) Params() Params {
	return g.params
}

// Generate builds the scene for a heuristic at the given viewport multiplier.
func (g *Generator) Generate(currentHeuristic int, viewportMultiplier float64) SceneResult {
	return g.generate(currentHeuristic, g.params.ElementCount, g.params.ScaleMultiplier, viewportMultiplier)
}

func (g *Generator) generate(h, count int, scaleMultiplier, viewportMultiplier float64) SceneResult {
	base := g.hash.Hash(float64(h))

	result := SceneResult{
		Heuristic:   h,
		BaseColor:   g.hash.PaletteColor(float64(h), h),
		Perspective: int(math.Round(base*g.params.PerspectiveRange + g.params.PerspectiveBase)),
	}
	if count <= 0 {
		return result
	}

	result.Elements = make([]ElementDescriptor, 0, count)
	for i := 1; i <= count; i++ {
		fi := float64(i)
		s1 := g.hash.Hash(base * fi)
		s2 := g.hash.Hash(base*fi + 1)
		s3 := g.hash.Hash(base*fi + 2)
		s4 := g.hash.Hash(base*fi + 3)

		result.Elements = append(result.Elements, ElementDescriptor{
			Index:    i,
			Left:     (100 / float64(count)) * fi,
			Top:      100 * s1,
			Depth:    int(math.Round(s4 * g.params.DepthRange)),
			Rotation: s2 * 360,
			Scale:    s3 * scaleMultiplier * viewportMultiplier,
			// Opacity follows vertical position.
			Opacity: s1,
			// Kept as i + 1*h so palettes match the web version.
			Color: g.hash.PaletteColor(float64(i+1*h), h),
		})
	}
	return result
}

// Mountain returns the mountain for a heuristic.
func (g *Generator) Mountain(currentHeuristic int) Mountain {
	return Mountain{
		Bottom: 60 * g.hash.Hash(float64(currentHeuristic)),
		Dark:   DarkColor(currentHeuristic),
		Light:  LightColor(currentHeuristic),
	}
}

// GenerateScene builds a scene with the default depth and perspective constants.
// An elementCount below 1 yields a scene without elements.
func GenerateScene(currentHeuristic, elementCount int, scaleMultiplier, viewportMultiplier float64) SceneResult {
	g := NewGenerator(DefaultParams())
	return g.generate(currentHeuristic, elementCount, scaleMultiplier, viewportMultiplier)
}

// ViewportMultiplier scales shapes with the display width.
// It is 1 when either width is unknown.
func ViewportMultiplier(width, referenceWidth int) float64 {
	if width <= 0 || referenceWidth <= 0 {
		return 1
	}
	return float64(width) / float64(referenceWidth)
}
