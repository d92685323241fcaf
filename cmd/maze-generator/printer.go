package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/tesseract/constants"
	"github.com/lixenwraith/tesseract/maze"
)

// Palette shared with the game renderer
var (
	colorWall      = lipgloss.Color("#565F89")
	colorOuterWall = lipgloss.Color("#3B4261")
	colorStart     = lipgloss.Color("#00C800")
	colorEnd       = lipgloss.Color("#FFD700")
	colorPath      = lipgloss.Color("#6496FF")
	colorHeader    = lipgloss.Color("#B4B4B4")
)

// printer writes slices of a maze as text
type printer struct {
	out    io.Writer
	digits bool // Cell.Digit codes instead of glyphs
	color  bool
	path   map[maze.Point]bool

	styles map[maze.Cell]lipgloss.Style
	header lipgloss.Style
	onPath lipgloss.Style
}

func newPrinter(out io.Writer, digits, color bool, path []maze.Point) *printer {
	p := &printer{
		out:    out,
		digits: digits,
		color:  color,
		path:   make(map[maze.Point]bool, len(path)),
		styles: map[maze.Cell]lipgloss.Style{
			maze.Wall:      lipgloss.NewStyle().Foreground(colorWall),
			maze.OuterWall: lipgloss.NewStyle().Foreground(colorOuterWall),
			maze.Start:     lipgloss.NewStyle().Foreground(colorStart).Bold(true),
			maze.End:       lipgloss.NewStyle().Foreground(colorEnd).Bold(true),
		},
		header: lipgloss.NewStyle().Foreground(colorHeader).Bold(true),
		onPath: lipgloss.NewStyle().Foreground(colorPath),
	}
	for _, pt := range path {
		p.path[pt] = true
	}
	return p
}

// printAxis writes every slice of the grid along axis, one block per depth
func (p *printer) printAxis(g *maze.Grid, axis maze.Axis) error {
	for depth := 0; depth < g.Size(); depth++ {
		if err := p.printSlice(g.Slice(axis, depth)); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) printSlice(s maze.Slice) error {
	var sb strings.Builder

	header := fmt.Sprintf("%s depth %d", s.Axis(), s.Depth())
	sb.WriteString(p.paint(p.header, header))
	sb.WriteByte('\n')

	for v := 0; v < s.Height(); v++ {
		for u := 0; u < s.Width(); u++ {
			sb.WriteString(p.cell(s.Position(u, v), s.At(u, v)))
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(p.out, sb.String())
	return err
}

// cell renders one cell, solution marks only replace plain open cells
func (p *printer) cell(pos maze.Point, c maze.Cell) string {
	onPath := c == maze.Open && p.path[pos]

	if p.digits {
		text := string(c.Digit())
		if onPath {
			text = "*"
		}
		return text
	}

	if onPath {
		return p.paint(p.onPath, string(constants.GlyphPath)+" ")
	}

	var text string
	switch c {
	case maze.Wall, maze.Unvisited:
		text = strings.Repeat(string(constants.GlyphWall), 2)
	case maze.OuterWall:
		text = strings.Repeat(string(constants.GlyphOuterWall), 2)
	case maze.Start:
		text = string(constants.GlyphStart) + " "
	case maze.End:
		text = string(constants.GlyphEnd) + " "
	default:
		text = "  "
	}
	if style, ok := p.styles[c]; ok {
		return p.paint(style, text)
	}
	return text
}

func (p *printer) paint(style lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return style.Render(text)
}
