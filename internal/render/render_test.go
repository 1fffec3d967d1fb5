package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/turtleshell/internal/content"
	"github.com/vovakirdan/turtleshell/internal/core"
	"github.com/vovakirdan/turtleshell/internal/scene"
)

func countColored(s *core.Screen, base core.Color) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y).BG != base {
				n++
			}
		}
	}
	return n
}

func TestPaintSkyFillsBase(t *testing.T) {
	sc := scene.SceneResult{BaseColor: "#aa3f00", Perspective: 20}
	s := core.NewScreen(40, 10)
	PaintSky(s, s.Bounds(), sc)

	for y := 0; y < 10; y++ {
		for x := 0; x < 40; x++ {
			if s.Get(x, y).BG != "#aa3f00" {
				t.Fatalf("expected base color at (%d, %d), got %q", x, y, s.Get(x, y).BG)
			}
		}
	}
}

func TestPaintSkyDrawsElements(t *testing.T) {
	sc := scene.SceneResult{
		BaseColor:   "#000000",
		Perspective: 20,
		Elements: []scene.ElementDescriptor{
			{Index: 1, Left: 50, Top: 50, Scale: 4, Opacity: 0.99, Color: "#ffffff"},
		},
	}
	s := core.NewScreen(80, 24)
	PaintSky(s, s.Bounds(), sc)

	center := s.Get(40, 12)
	if center.BG == "#000000" {
		t.Fatal("element center should be painted")
	}
	if center.FG != center.BG {
		t.Errorf("shape runes should be invisible in color output: fg=%s bg=%s", center.FG, center.BG)
	}
	if center.Rune != '█' {
		t.Errorf("high opacity should use a full block, got %q", center.Rune)
	}
	if s.Get(0, 0).BG != "#000000" {
		t.Error("corner should stay base color")
	}
}

func TestPaintSkyTinyElementLeavesMark(t *testing.T) {
	sc := scene.SceneResult{
		BaseColor:   "#000000",
		Perspective: 20,
		Elements: []scene.ElementDescriptor{
			{Index: 1, Left: 25, Top: 25, Scale: 0.0001, Opacity: 0.5, Color: "#ffffff"},
		},
	}
	s := core.NewScreen(40, 8)
	PaintSky(s, s.Bounds(), sc)

	if countColored(s, "#000000") != 1 {
		t.Errorf("expected exactly one painted cell, got %d", countColored(s, "#000000"))
	}
}

func TestPaintSkyClipsToArea(t *testing.T) {
	sc := scene.GenerateScene(3, 10, 6, 1)
	s := core.NewScreen(60, 20)
	area := core.NewRect(10, 5, 30, 10)
	PaintSky(s, area, sc)

	for y := 0; y < 20; y++ {
		for x := 0; x < 60; x++ {
			if !area.Contains(x, y) && s.Get(x, y).BG != core.NoColor {
				t.Fatalf("painted outside area at (%d, %d)", x, y)
			}
		}
	}
}

func TestPaintSkyLargerScaleCoversMore(t *testing.T) {
	paint := func(scale float64) int {
		sc := scene.SceneResult{
			BaseColor:   "#000000",
			Perspective: 20,
			Elements: []scene.ElementDescriptor{
				{Index: 1, Left: 50, Top: 50, Rotation: 30, Scale: scale, Opacity: 0.8, Color: "#ff0000"},
			},
		}
		s := core.NewScreen(80, 24)
		PaintSky(s, s.Bounds(), sc)
		return countColored(s, "#000000")
	}

	small, big := paint(2), paint(4)
	if big <= small {
		t.Errorf("doubling the scale should cover more cells: %d <= %d", big, small)
	}
}

func TestDepthScale(t *testing.T) {
	if DepthScale(20, 0) != 1 {
		t.Error("zero depth should not magnify")
	}
	if DepthScale(20, 10) != 2 {
		t.Errorf("DepthScale(20, 10) = %v, expected 2", DepthScale(20, 10))
	}
	if DepthScale(0, 5) != 1 || DepthScale(10, 10) != 1 {
		t.Error("degenerate perspective should not magnify")
	}
}

func TestShade(t *testing.T) {
	tests := []struct {
		opacity  float64
		expected rune
	}{
		{0, '░'},
		{0.3, '▒'},
		{0.6, '▓'},
		{0.99, '█'},
		{1, '█'},
	}
	for _, tc := range tests {
		if got := shade(tc.opacity); got != tc.expected {
			t.Errorf("shade(%v) = %q, expected %q", tc.opacity, got, tc.expected)
		}
	}
}

func TestPaintMountain(t *testing.T) {
	m := scene.Mountain{Bottom: 0, Dark: "#2d7a00", Light: "#efffc2"}
	s := core.NewScreen(40, 20)
	PaintMountain(s, s.Bounds(), m)

	w, h := MountainSize()
	left := (40 - w) / 2
	bottomRow := 19

	// The base row is solid rock.
	for x := left; x < left+w; x++ {
		if s.Get(x, bottomRow).BG != "#2d7a00" {
			t.Fatalf("expected rock at (%d, %d), got %+v", x, bottomRow, s.Get(x, bottomRow))
		}
	}
	// The peak is h rows above the bottom.
	if s.Get(left+10, bottomRow-h+1).BG != "#2d7a00" {
		t.Error("expected peak rock")
	}
	if s.Get(0, 0).BG != core.NoColor {
		t.Error("mountain should not touch the corner")
	}
}

func TestPaintMountainLift(t *testing.T) {
	m := scene.Mountain{Bottom: 50, Dark: "#2d7a00", Light: "#efffc2"}
	s := core.NewScreen(40, 40)
	PaintMountain(s, s.Bounds(), m)

	w, _ := MountainSize()
	left := (40 - w) / 2
	if s.Get(left, 39).BG != core.NoColor {
		t.Error("lifted mountain should leave the bottom row empty")
	}
	if s.Get(left, 39-20).BG != "#2d7a00" {
		t.Errorf("lifted base row expected at y=19, got %+v", s.Get(left, 19))
	}
}

func TestScreenStringPlain(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "abc", "#ffffff")
	s.DrawText(0, 1, "def", core.NoColor)

	out := ansi.Strip(ScreenString(s, lipgloss.DefaultRenderer()))
	if out != "abc\ndef" {
		t.Errorf("ScreenString stripped = %q", out)
	}
}

func TestNewPage(t *testing.T) {
	g := scene.NewGenerator(scene.DefaultParams())

	p := NewPage(g, 7, 1)
	if p.Index != 7 || len(p.Paragraphs) != 1 {
		t.Errorf("NewPage(7) = index %d, %d paragraphs", p.Index, len(p.Paragraphs))
	}
	if len(p.Scene.Elements) != 10 {
		t.Errorf("expected 10 elements, got %d", len(p.Scene.Elements))
	}

	missing := NewPage(g, 999, 1)
	if missing.Index != 0 {
		t.Errorf("out of range index should resolve to home, got %d", missing.Index)
	}
	if missing.Nav != content.Neighbours(0) {
		t.Error("home page should use home navigation")
	}
}

func TestPagePlain(t *testing.T) {
	g := scene.NewGenerator(scene.DefaultParams())
	p := NewPage(g, 16, 1)

	out := p.Plain(Options{Width: 80, Height: 40, Footer: "q: quit"})
	for _, want := range []string{content.Title, "When you say yes, say yes deeply.", "Previous", "Next", "q: quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("plain page missing %q", want)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain page should contain no escape sequences")
	}
	if lipgloss.Height(out) < 40 {
		t.Errorf("page should fill the requested height, got %d lines", lipgloss.Height(out))
	}
}

func TestPageEdges(t *testing.T) {
	g := scene.NewGenerator(scene.DefaultParams())

	first := NewPage(g, 1, 1).Plain(Options{Width: 80})
	if !strings.Contains(first, "Previous (/)") {
		t.Error("first page should link back home")
	}

	last := NewPage(g, content.Count(), 1).Plain(Options{Width: 80})
	if !strings.Contains(last, "Next (/)") {
		t.Error("last page should link on to home")
	}
}

func TestPageSkyCaption(t *testing.T) {
	g := scene.NewGenerator(scene.DefaultParams())

	sky := NewPage(g, 7, 1).Sky(40, 12)
	if !strings.Contains(sky.Row(0), "/7") {
		t.Errorf("sky should show the page path, top row %q", sky.Row(0))
	}
	cell := sky.Get(20, 0)
	if cell.FG != core.Color(scene.DarkColor(7)) && cell.FG != core.Color(scene.LightColor(7)) {
		t.Errorf("caption should use a scheme color, got %q", cell.FG)
	}

	home := NewPage(g, 0, 1).Sky(40, 12)
	if strings.TrimSpace(home.Row(0)) == "" {
		t.Error("home sky should show its path")
	}
}
