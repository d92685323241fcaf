package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/tesseract/constants"
	"github.com/lixenwraith/tesseract/maze"
)

// State is the read side of a game session
type State interface {
	CurrentSlice() maze.Slice
	Cursor() maze.Point
	Axis() maze.Axis
	Start() maze.Point
	End() maze.Point
	Score() uint64
	Moves() int
	Level() uuid.UUID
}

// SliceRenderer draws the visible cross-section and the HUD
type SliceRenderer struct {
	screen    tcell.Screen
	cellWidth int
	hud       bool
	status    string
}

// NewSliceRenderer creates a renderer drawing cellWidth columns per maze cell
func NewSliceRenderer(screen tcell.Screen, cellWidth int, hud bool) *SliceRenderer {
	if cellWidth < 1 {
		cellWidth = constants.CellWidth
	}
	return &SliceRenderer{
		screen:    screen,
		cellWidth: cellWidth,
		hud:       hud,
	}
}

// SetStatus shows a short message at the end of the HUD, empty clears it
func (r *SliceRenderer) SetStatus(status string) {
	r.status = status
}

// RenderFrame draws one complete frame and shows it
func (r *SliceRenderer) RenderFrame(st State) {
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	width, height := r.screen.Size()
	top := 0
	if r.hud {
		r.drawHUD(st, width)
		top = constants.HUDHeight
	}

	r.drawSlice(st, constants.MazeOffsetX, top, width-constants.MazeOffsetX, height-top)
	r.screen.Show()
}

// drawHUD renders position, axis and score lines
func (r *SliceRenderer) drawHUD(st State, width int) {
	cursor := st.Cursor()
	axis := st.Axis()

	lines := [][2]string{
		{"Current position: ", cursor.String()},
		{"  Start position: ", st.Start().String()},
		{"  End position: ", st.End().String()},
	}
	r.drawPairs(0, lines, width)

	r.drawPairs(1, [][2]string{
		{"Current Axis: ", axis.String()},
		{"  Depth: ", fmt.Sprint(axis.Depth(cursor))},
		{"  Score: ", fmt.Sprint(st.Score())},
	}, width)

	level := st.Level().String()
	r.drawPairs(2, [][2]string{
		{"Level: ", level[:8]},
		{"  Moves: ", fmt.Sprint(st.Moves())},
	}, width)

	if r.status != "" {
		r.drawText(width-len(r.status)-1, 2, r.status, width, defaultStyle.Foreground(RgbHUDStatus))
	}
}

func (r *SliceRenderer) drawPairs(y int, pairs [][2]string, width int) {
	labelStyle := defaultStyle.Foreground(RgbHUDLabel)
	valueStyle := defaultStyle.Foreground(RgbHUDValue).Bold(true)

	x := 0
	for _, p := range pairs {
		x = r.drawText(x, y, p[0], width, labelStyle)
		x = r.drawText(x, y, p[1], width, valueStyle)
	}
}

// drawText writes text clipped to width and returns the column after it
func (r *SliceRenderer) drawText(x, y int, text string, width int, style tcell.Style) int {
	if x < 0 {
		x = 0
	}
	for _, ch := range text {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// drawSlice renders the slice inside the given box, cropping to a window around the player when it does not fit
func (r *SliceRenderer) drawSlice(st State, x0, y0, boxWidth, boxHeight int) {
	cols := boxWidth / r.cellWidth
	rows := boxHeight
	if cols < 1 || rows < 1 {
		return
	}

	full := st.CurrentSlice()
	cu, cv := st.Axis().Project(st.Cursor())

	su, lu := Viewport(full.Width(), cu, cols)
	sv, lv := Viewport(full.Height(), cv, rows)
	view := full.SubSlice([2]int{su, sv}, [2]int{lu, lv})

	playerStyle := defaultStyle.Foreground(RgbPlayer).Background(RgbOpen).Bold(true)

	view.Each(func(u, v int, c maze.Cell) {
		glyph, style := cellGlyph(c)
		if su+u == cu && sv+v == cv {
			glyph, style = constants.GlyphPlayer, playerStyle
		}

		x := x0 + u*r.cellWidth
		y := y0 + v
		for i := 0; i < r.cellWidth; i++ {
			ch := glyph
			// Letters occupy the first column only
			if i > 0 && !isBlock(glyph) {
				ch = ' '
			}
			r.screen.SetContent(x+i, y, ch, nil, style)
		}
	})
}

func isBlock(ch rune) bool {
	return ch == constants.GlyphWall || ch == constants.GlyphOuterWall || ch == constants.GlyphOpen
}

// Viewport picks the window [start, start+length] of a full extent that keeps center visible
// Length is inclusive, matching maze.Slice.SubSlice
func Viewport(full, center, avail int) (start, length int) {
	if full <= avail {
		return 0, full - 1
	}

	start = center - avail/2
	if start < 0 {
		start = 0
	}
	if start > full-avail {
		start = full - avail
	}
	return start, avail - 1
}
