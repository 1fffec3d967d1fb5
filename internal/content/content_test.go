package content

import (
	"strings"
	"testing"
)

func TestCount(t *testing.T) {
	if Count() != 29 {
		t.Errorf("Count() = %d, expected 29", Count())
	}
}

func TestGet(t *testing.T) {
	h, ok := Get(1)
	if !ok || h.Attribution != "Selma, age 6" {
		t.Errorf("Get(1) = %+v, %v", h, ok)
	}
	h, ok = Get(29)
	if !ok || h.Text != "Leadership does not require a title." {
		t.Errorf("Get(29) = %+v, %v", h, ok)
	}
	for _, i := range []int{0, -1, 30} {
		if _, ok := Get(i); ok {
			t.Errorf("Get(%d) should be missing", i)
		}
	}
}

func TestParagraphs(t *testing.T) {
	home, ok := Paragraphs(0)
	if !ok || len(home) != len(Intro) {
		t.Fatalf("Paragraphs(0) = %v, %v", home, ok)
	}
	home[0] = "changed"
	if Intro[0] == "changed" {
		t.Error("Paragraphs(0) should return a copy")
	}

	first, _ := Paragraphs(1)
	if len(first) != 2 || !strings.HasPrefix(first[1], "— ") {
		t.Errorf("Paragraphs(1) = %v, expected text plus attribution", first)
	}

	second, _ := Paragraphs(2)
	if len(second) != 1 {
		t.Errorf("Paragraphs(2) = %v, expected one paragraph", second)
	}

	if _, ok := Paragraphs(100); ok {
		t.Error("Paragraphs(100) should be missing")
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		in       string
		expected int
	}{
		{"", 0},
		{"/", 0},
		{"/7", 7},
		{"7", 7},
		{"/abc", 0},
		{"/12/", 12},
		{" /3 ", 3},
		{"/-2", -2},
		{"/+4", 4},
		{"/1.5", 1},
		{"3.5", 3},
		{"7abc", 7},
		{"/7abc", 7},
		{"abc7", 0},
		{"/-", 0},
		{"99999999999999999999999", 0},
	}
	for _, tc := range tests {
		if got := ParseIndex(tc.in); got != tc.expected {
			t.Errorf("ParseIndex(%q) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}

func TestNeighbours(t *testing.T) {
	k := Count()
	tests := []struct {
		name    string
		current int
		want    Nav
	}{
		{"home", 0, Nav{Prev: k, Next: 1, HasPrev: true, HasNext: true}},
		{"first", 1, Nav{Prev: 0, Next: 2, HasPrev: true, HasNext: true}},
		{"middle", 10, Nav{Prev: 9, Next: 11, HasPrev: true, HasNext: true}},
		{"last", k, Nav{Prev: k - 1, Next: 0, HasPrev: true, HasNext: true}},
		{"out of range", k + 5, Nav{Prev: k, Next: 1, HasPrev: true, HasNext: true}},
		{"negative", -1, Nav{Prev: k, Next: 1, HasPrev: true, HasNext: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Neighbours(tc.current); got != tc.want {
				t.Errorf("Neighbours(%d) = %+v, expected %+v", tc.current, got, tc.want)
			}
		})
	}
}

func TestAdvance(t *testing.T) {
	if Advance(0) != 1 {
		t.Errorf("Advance(0) = %d, expected 1", Advance(0))
	}
	if Advance(5) != 6 {
		t.Errorf("Advance(5) = %d, expected 6", Advance(5))
	}
	if Advance(Count()) != 0 {
		t.Errorf("Advance(last) = %d, expected 0", Advance(Count()))
	}
	if Advance(-4) != 1 {
		t.Errorf("Advance(-4) = %d, expected 1", Advance(-4))
	}
}

func TestPath(t *testing.T) {
	if Path(0) != "/" || Path(12) != "/12" {
		t.Errorf("Path() = %q, %q", Path(0), Path(12))
	}
	for i := 0; i <= Count(); i++ {
		if ParseIndex(Path(i)) != i {
			t.Errorf("ParseIndex(Path(%d)) != %d", i, i)
		}
	}
}
