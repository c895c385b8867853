package board

import (
	"github.com/randytsao24/muniboard/internal/canvas"
	"github.com/randytsao24/muniboard/internal/transit"
)

// trainSprite is the 16x8 streetcar glyph towed across the panel.
var trainSprite = []string{
	".##############.",
	"#..##..##..##..#",
	"#..##..##..##..#",
	"#..............#",
	".##############.",
	"...##......##...",
	"...##......##...",
	"................",
}

// trainHeight is the row count of the train sprite.
const trainHeight = 8

// direction glyphs, 5x7 arrows drawn in the header.
var arrowInbound = []string{
	".....",
	"..#..",
	"...#.",
	"#####",
	"...#.",
	"..#..",
	".....",
}

var arrowOutbound = []string{
	".....",
	"..#..",
	".#...",
	"#####",
	".#...",
	"..#..",
	".....",
}

// arrowWidth is the column count of the direction arrows.
const arrowWidth = 5

func drawBitmap(c canvas.Canvas, bitmap []string, x, y int, col canvas.RGB) {
	for row, line := range bitmap {
		for colIdx := 0; colIdx < len(line); colIdx++ {
			if line[colIdx] == '#' {
				c.SetPixel(x+colIdx, y+row, col)
			}
		}
	}
}

func drawTrain(c canvas.Canvas, x, y int, col canvas.RGB) {
	drawBitmap(c, trainSprite, x, y, col)
}

func drawDirection(c canvas.Canvas, direction string, x, y int, col canvas.RGB) {
	arrow := arrowInbound
	if direction == transit.DirectionOutbound {
		arrow = arrowOutbound
	}
	drawBitmap(c, arrow, x, y, col)
}
