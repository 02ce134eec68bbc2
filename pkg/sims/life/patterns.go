package life

import "sort"

// PatternRandom fills the grid from the seeded RNG instead of a fixed shape.
const PatternRandom = "random"

// Offsets are relative to the configured pattern origin.
var patterns = map[string][][2]int{
	"empty":      {},
	"glider":     {{2, 0}, {2, 1}, {2, 2}, {0, 1}, {1, 2}},
	"blinker":    {{0, 1}, {1, 1}, {2, 1}},
	"block":      {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	"rpentomino": {{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}},
}

func lookupPattern(name string) ([][2]int, bool) {
	if name == PatternRandom {
		return nil, true
	}
	cells, ok := patterns[name]
	return cells, ok
}

// Patterns lists every accepted pattern name in sorted order.
func Patterns() []string {
	names := make([]string, 0, len(patterns)+1)
	for name := range patterns {
		names = append(names, name)
	}
	names = append(names, PatternRandom)
	sort.Strings(names)
	return names
}
