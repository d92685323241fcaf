package constants

// UI Layout Constants
const (
	// CellWidth is the default number of terminal columns per maze cell
	CellWidth = 2

	// HUDHeight is the number of rows reserved for the HUD above the maze
	HUDHeight = 4

	// MazeOffsetX is the left margin of the maze view
	MazeOffsetX = 2
)

// Cell glyphs
const (
	GlyphWall      = '█'
	GlyphOuterWall = '▓'
	GlyphOpen      = ' '
	GlyphStart     = 'S'
	GlyphEnd       = 'E'
	GlyphPlayer    = '@'
	GlyphPath      = '•'
)
