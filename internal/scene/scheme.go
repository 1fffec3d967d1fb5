package scene

import "math"

// ColorScheme groups the colors used by one page.
// Dark and Light style the quote panel and mountain; Palette feeds the sky.
type ColorScheme struct {
	Dark    string
	Light   string
	Palette []string
}

// schemeTable is cycled by heuristic index. Bright and dark colors give the
// best contrast; a short palette makes repeated colors more likely.
var schemeTable = []ColorScheme{
	{Dark: "#aa3f00", Light: "#faffc4", Palette: []string{"#aa3f00", "#eb9b00", "#83006f", "#b30074", "#ffd32a"}},
	{Dark: "#2d7a00", Light: "#efffc2", Palette: []string{"#389c00", "#a8ab00", "#da4800", "#ffbc07", "#e3ff94"}},
	{Dark: "#ff9f60", Light: "#00113c", Palette: []string{"#ff9f60", "#fff923", "#ff9a03", "#4a3800", "#9afdff"}},
	{Dark: "#1115ff", Light: "#fffab9", Palette: []string{"#1115ff", "#1294ff", "#11ffd0", "#fffab9", "#008ec4"}},
	{Dark: "#6a26ff", Light: "#bcfffe", Palette: []string{"#ff6be5", "#b777ff", "#ff15f5", "#6a26ff", "#53a4ff"}},
	{Dark: "#470064", Light: "#ecffc7", Palette: []string{"#470064", "#001559", "#1e003f", "#1900e1", "#ecffc7"}},
}

// SchemeCount returns the number of color schemes.
func SchemeCount() int {
	return len(schemeTable)
}

// Schemes returns a copy of the scheme table.
func Schemes() []ColorScheme {
	out := make([]ColorScheme, len(schemeTable))
	for i, s := range schemeTable {
		out[i] = s.clone()
	}
	return out
}

func (c ColorScheme) clone() ColorScheme {
	palette := make([]string, len(c.Palette))
	copy(palette, c.Palette)
	return ColorScheme{Dark: c.Dark, Light: c.Light, Palette: palette}
}

// schemeSlot wraps any index into [0, len(schemeTable)).
func schemeSlot(schemeIndex int) int {
	return wrap(schemeIndex, len(schemeTable))
}

// wrap is a floored modulo: the result is in [0, n) for any sign of i.
func wrap(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

// ActiveScheme returns the scheme selected by schemeIndex.
// Negative and out-of-range indices wrap around the table.
func ActiveScheme(schemeIndex int) ColorScheme {
	return schemeTable[schemeSlot(schemeIndex)].clone()
}

// DarkColor returns the dark color of the active scheme.
func DarkColor(schemeIndex int) string {
	return schemeTable[schemeSlot(schemeIndex)].Dark
}

// LightColor returns the light color of the active scheme.
func LightColor(schemeIndex int) string {
	return schemeTable[schemeSlot(schemeIndex)].Light
}

// PaletteIndex maps a value in [0, 1) to an index in [0, length).
// Rounding can never push it to length.
func PaletteIndex(v float64, length int) int {
	if length <= 0 {
		return 0
	}
	idx := int(math.Floor(v * float64(length)))
	if idx >= length {
		idx = length - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// PaletteColor picks a palette color of the active scheme using the hash of seedInput.
func (h Hasher) PaletteColor(seedInput float64, schemeIndex int) string {
	palette := schemeTable[schemeSlot(schemeIndex)].Palette
	return palette[PaletteIndex(h.Hash(seedInput), len(palette))]
}

// PaletteColor is Hasher.PaletteColor with the default offset.
func PaletteColor(seedInput float64, schemeIndex int) string {
	return DefaultHasher().PaletteColor(seedInput, schemeIndex)
}
