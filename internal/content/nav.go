package content

import (
	"strconv"
	"strings"
)

// ParseIndex turns a path segment like "/7" into a heuristic index.
// Like the site's router it reads the leading integer, so "/7abc" and "/3.5"
// give 7 and 3. Missing or non-numeric segments resolve to 0 (home).
func ParseIndex(segment string) int {
	s := strings.TrimSpace(segment)
	s = strings.TrimSpace(strings.TrimLeft(s, "/"))

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// Resolve maps any index to one that has content, falling back to home.
func Resolve(index int) int {
	if index < 0 || index > Count() {
		return 0
	}
	return index
}

// Nav holds the neighbours of a page.
type Nav struct {
	Prev    int
	Next    int
	HasPrev bool
	HasNext bool
}

// Neighbours returns the previous and next links for a page. From home,
// previous jumps to the last heuristic and next to the first. The first
// heuristic's previous link and the last one's next link lead home.
func Neighbours(current int) Nav {
	k := Count()
	current = Resolve(current)

	if current == 0 {
		return Nav{Prev: k, Next: 1, HasPrev: k > 0, HasNext: k > 0}
	}

	nav := Nav{Prev: current - 1, Next: current + 1, HasPrev: true, HasNext: true}
	if current == k {
		nav.Next = 0
	}
	return nav
}

// Advance is the click-through step: home goes to 1, the last heuristic back home.
func Advance(current int) int {
	current = Resolve(current)
	if current >= Count() {
		return 0
	}
	return current + 1
}

// Path renders an index as a path segment; home is "/".
func Path(index int) string {
	if index == 0 {
		return "/"
	}
	return "/" + strconv.Itoa(index)
}
