package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tesseract/constants"
	"github.com/lixenwraith/tesseract/maze"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(86, 95, 137)
	RgbOuterWall  = tcell.NewRGBColor(59, 66, 97)
	RgbOpen       = tcell.NewRGBColor(36, 40, 59)

	RgbStart  = tcell.NewRGBColor(0, 200, 0)   // Green
	RgbEnd    = tcell.NewRGBColor(255, 215, 0) // Gold
	RgbPlayer = tcell.NewRGBColor(255, 165, 0) // Orange

	RgbHUDLabel  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbHUDValue  = tcell.NewRGBColor(255, 255, 255) // White
	RgbHUDStatus = tcell.NewRGBColor(255, 80, 80)   // Red
)

var defaultStyle = tcell.StyleDefault.Background(RgbBackground)

// cellGlyph returns the glyph and style of a maze cell
func cellGlyph(c maze.Cell) (rune, tcell.Style) {
	switch c {
	case maze.OuterWall:
		return constants.GlyphOuterWall, defaultStyle.Foreground(RgbOuterWall)
	case maze.Wall, maze.Unvisited:
		return constants.GlyphWall, defaultStyle.Foreground(RgbWall)
	case maze.Start:
		return constants.GlyphStart, defaultStyle.Foreground(RgbStart).Background(RgbOpen).Bold(true)
	case maze.End:
		return constants.GlyphEnd, defaultStyle.Foreground(RgbEnd).Background(RgbOpen).Bold(true)
	default:
		return constants.GlyphOpen, defaultStyle.Background(RgbOpen)
	}
}
