package scene

import (
	"reflect"
	"testing"
)

func TestActiveSchemeWrap(t *testing.T) {
	m := SchemeCount()
	for k := -20; k <= 20; k++ {
		a := ActiveScheme(k)
		if !reflect.DeepEqual(a, ActiveScheme(k+m)) {
			t.Errorf("ActiveScheme(%d) != ActiveScheme(%d)", k, k+m)
		}
		if !reflect.DeepEqual(a, ActiveScheme(k-m)) {
			t.Errorf("ActiveScheme(%d) != ActiveScheme(%d)", k, k-m)
		}
	}
}

func TestActiveSchemeNegative(t *testing.T) {
	if SchemeCount() != 6 {
		t.Fatalf("expected 6 schemes, got %d", SchemeCount())
	}
	if !reflect.DeepEqual(ActiveScheme(-1), ActiveScheme(5)) {
		t.Error("ActiveScheme(-1) should equal ActiveScheme(5)")
	}
	if !reflect.DeepEqual(ActiveScheme(-6), ActiveScheme(0)) {
		t.Error("ActiveScheme(-6) should equal ActiveScheme(0)")
	}
}

func TestDarkLightColor(t *testing.T) {
	tests := []struct {
		scheme int
		dark   string
		light  string
	}{
		{0, "#aa3f00", "#faffc4"},
		{1, "#2d7a00", "#efffc2"},
		{2, "#ff9f60", "#00113c"},
		{5, "#470064", "#ecffc7"},
		{6, "#aa3f00", "#faffc4"},
		{-1, "#470064", "#ecffc7"},
		{29, "#6a26ff", "#bcfffe"},
	}

	for _, tc := range tests {
		if got := DarkColor(tc.scheme); got != tc.dark {
			t.Errorf("DarkColor(%d) = %s, expected %s", tc.scheme, got, tc.dark)
		}
		if got := LightColor(tc.scheme); got != tc.light {
			t.Errorf("LightColor(%d) = %s, expected %s", tc.scheme, got, tc.light)
		}
	}
}

func TestPaletteIndexBound(t *testing.T) {
	tests := []struct {
		v        float64
		length   int
		expected int
	}{
		{0, 5, 0},
		{0.19999, 5, 0},
		{0.2, 5, 1},
		{0.99999999, 5, 4},
		{1, 5, 4}, // clamped
		{-0.1, 5, 0},
		{0.5, 0, 0},
	}

	for _, tc := range tests {
		if got := PaletteIndex(tc.v, tc.length); got != tc.expected {
			t.Errorf("PaletteIndex(%v, %d) = %d, expected %d", tc.v, tc.length, got, tc.expected)
		}
	}
}

func TestPaletteColorInPalette(t *testing.T) {
	for scheme := -12; scheme <= 12; scheme++ {
		palette := ActiveScheme(scheme).Palette
		for seed := -50; seed <= 50; seed++ {
			c := PaletteColor(float64(seed)*1.5, scheme)
			found := false
			for _, p := range palette {
				if p == c {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("PaletteColor(%v, %d) = %s not in palette %v", float64(seed)*1.5, scheme, c, palette)
			}

			idx := PaletteIndex(SeededHash(float64(seed)*1.5), len(palette))
			if idx < 0 || idx >= len(palette) {
				t.Fatalf("palette index %d out of range", idx)
			}
		}
	}
}

func TestSchemesReturnsCopy(t *testing.T) {
	s := Schemes()
	s[0].Dark = "#000000"
	s[0].Palette[0] = "#000000"

	if DarkColor(0) != "#aa3f00" {
		t.Error("mutating Schemes() result changed the table")
	}
	if ActiveScheme(0).Palette[0] != "#aa3f00" {
		t.Error("mutating Schemes() palette changed the table")
	}

	a := ActiveScheme(1)
	a.Palette[0] = "#ffffff"
	if ActiveScheme(1).Palette[0] != "#389c00" {
		t.Error("mutating ActiveScheme() result changed the table")
	}
}
