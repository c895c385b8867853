// Package font renders a fixed-height bitmap font onto the panel.
// Glyphs are 7 rows tall and variable width; the rendered text the
// board shows (line names, arrival times, the update footer) all goes
// through this package.
package font

import (
	"strconv"

	"github.com/randytsao24/muniboard/internal/canvas"
)

// GlyphHeight is the row count of every glyph.
const GlyphHeight = 7

// spacing is the blank column between consecutive glyphs.
const spacing = 1

// Glyph is a bitmap, GlyphHeight rows of equal width. A cell is set
// where the row string holds '#'.
type Glyph []string

// Width returns the column count of the glyph.
func (g Glyph) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Lookup returns the glyph for a character. Lookup is case-insensitive
// and maps unknown characters to the blank space glyph.
func Lookup(ch rune) Glyph {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	if g, ok := glyphs[ch]; ok {
		return g
	}
	return glyphs[' ']
}

// TextWidth returns the pixel width of a string: each glyph's width
// plus one column between consecutive glyphs, with no trailing column.
func TextWidth(text string) int {
	width := 0
	for i, ch := range text {
		if i > 0 {
			width += spacing
		}
		width += Lookup(ch).Width()
	}
	return width
}

// TruncateToFit returns the longest prefix of text whose TextWidth is
// at most maxWidth. It returns "" when even the first character
// overflows.
func TruncateToFit(text string, maxWidth int) string {
	runes := []rune(text)
	for n := len(runes); n > 0; n-- {
		prefix := string(runes[:n])
		if TextWidth(prefix) <= maxWidth {
			return prefix
		}
	}
	return ""
}

// Draw renders text onto the canvas with its top-left corner at (x, y).
// Pixels falling outside the panel are dropped by the canvas itself.
func Draw(c canvas.Canvas, text string, x, y int, col canvas.RGB) {
	penX := x
	for _, ch := range text {
		g := Lookup(ch)
		for row, line := range g {
			for colIdx := 0; colIdx < len(line); colIdx++ {
				if line[colIdx] == '#' {
					c.SetPixel(penX+colIdx, y+row, col)
				}
			}
		}
		penX += g.Width() + spacing
	}
}

// DrawRightAligned renders text so its rightmost column lands on x.
func DrawRightAligned(c canvas.Canvas, text string, x, y int, col canvas.RGB) {
	Draw(c, text, x-TextWidth(text)+1, y, col)
}

var glyphs = map[rune]Glyph{
	'A': {
		".###.",
		"#...#",
		"#...#",
		"#####",
		"#...#",
		"#...#",
		"#...#",
	},
	'B': {
		"####.",
		"#...#",
		"#...#",
		"####.",
		"#...#",
		"#...#",
		"####.",
	},
	'C': {
		".####",
		"#....",
		"#....",
		"#....",
		"#....",
		"#....",
		".####",
	},
	'D': {
		"####.",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"####.",
	},
	'E': {
		"#####",
		"#....",
		"#....",
		"####.",
		"#....",
		"#....",
		"#####",
	},
	'F': {
		"#####",
		"#....",
		"#....",
		"####.",
		"#....",
		"#....",
		"#....",
	},
	'G': {
		".####",
		"#....",
		"#....",
		"#..##",
		"#...#",
		"#...#",
		".###.",
	},
	'H': {
		"#...#",
		"#...#",
		"#...#",
		"#####",
		"#...#",
		"#...#",
		"#...#",
	},
	'I': {
		"#####",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"#####",
	},
	'J': {
		"....#",
		"....#",
		"....#",
		"....#",
		"....#",
		"#...#",
		".###.",
	},
	'K': {
		"#...#",
		"#..#.",
		"#.#..",
		"##...",
		"#.#..",
		"#..#.",
		"#...#",
	},
	'L': {
		"#....",
		"#....",
		"#....",
		"#....",
		"#....",
		"#....",
		"#####",
	},
	'M': {
		"#...#",
		"##.##",
		"#.#.#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
	},
	'N': {
		"#...#",
		"##..#",
		"#.#.#",
		"#..##",
		"#...#",
		"#...#",
		"#...#",
	},
	'O': {
		".###.",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		".###.",
	},
	'P': {
		"####.",
		"#...#",
		"#...#",
		"####.",
		"#....",
		"#....",
		"#....",
	},
	'Q': {
		".###.",
		"#...#",
		"#...#",
		"#...#",
		"#.#.#",
		"#..#.",
		".##.#",
	},
	'R': {
		"####.",
		"#...#",
		"#...#",
		"####.",
		"#.#..",
		"#..#.",
		"#...#",
	},
	'S': {
		".####",
		"#....",
		"#....",
		".###.",
		"....#",
		"....#",
		"####.",
	},
	'T': {
		"#####",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	},
	'U': {
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		".###.",
	},
	'V': {
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		".#.#.",
		".#.#.",
		"..#..",
	},
	'W': {
		"#...#",
		"#...#",
		"#...#",
		"#.#.#",
		"#.#.#",
		"##.##",
		"#...#",
	},
	'X': {
		"#...#",
		"#...#",
		".#.#.",
		"..#..",
		".#.#.",
		"#...#",
		"#...#",
	},
	'Y': {
		"#...#",
		"#...#",
		".#.#.",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	},
	'Z': {
		"#####",
		"....#",
		"...#.",
		"..#..",
		".#...",
		"#....",
		"#####",
	},
	'0': {
		".###.",
		"#...#",
		"#..##",
		"#.#.#",
		"##..#",
		"#...#",
		".###.",
	},
	'1': {
		"..#..",
		".##..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		".###.",
	},
	'2': {
		".###.",
		"#...#",
		"....#",
		"...#.",
		"..#..",
		".#...",
		"#####",
	},
	'3': {
		".###.",
		"#...#",
		"....#",
		"..##.",
		"....#",
		"#...#",
		".###.",
	},
	'4': {
		"...#.",
		"..##.",
		".#.#.",
		"#..#.",
		"#####",
		"...#.",
		"...#.",
	},
	'5': {
		"#####",
		"#....",
		"####.",
		"....#",
		"....#",
		"#...#",
		".###.",
	},
	'6': {
		".###.",
		"#....",
		"#....",
		"####.",
		"#...#",
		"#...#",
		".###.",
	},
	'7': {
		"#####",
		"....#",
		"...#.",
		"..#..",
		".#...",
		".#...",
		".#...",
	},
	'8': {
		".###.",
		"#...#",
		"#...#",
		".###.",
		"#...#",
		"#...#",
		".###.",
	},
	'9': {
		".###.",
		"#...#",
		"#...#",
		".####",
		"....#",
		"....#",
		".###.",
	},
	':': {
		"..",
		"#.",
		"..",
		"..",
		"#.",
		"..",
		"..",
	},
	'.': {
		"..",
		"..",
		"..",
		"..",
		"..",
		"..",
		"#.",
	},
	'-': {
		"....",
		"....",
		"....",
		"####",
		"....",
		"....",
		"....",
	},
	'/': {
		"....#",
		"....#",
		"...#.",
		"..#..",
		".#...",
		"#....",
		"#....",
	},
	'!': {
		"#",
		"#",
		"#",
		"#",
		"#",
		".",
		"#",
	},
	' ': {
		"...",
		"...",
		"...",
		"...",
		"...",
		"...",
		"...",
	},
}

func init() {
	// Every glyph must be rectangular and GlyphHeight tall; a ragged
	// bitmap here would silently shift pixels at draw time.
	for ch, g := range glyphs {
		if len(g) != GlyphHeight {
			panic("font: glyph " + string(ch) + " is not " + strconv.Itoa(GlyphHeight) + " rows")
		}
		for _, row := range g {
			if len(row) != g.Width() {
				panic("font: glyph " + string(ch) + " has ragged rows")
			}
		}
	}
}
