package game

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lixenwraith/tesseract/maze"
)

// Builder produces a freshly generated maze
type Builder interface {
	Generate() *maze.Grid
}

// Direction is a movement request relative to the visible slice
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// level is the long-lived state that survives regeneration
type level struct {
	id    uuid.UUID
	grid  *maze.Grid
	end   maze.Point
	score uint64
}

// Session tracks the player inside the current maze
// Not safe for concurrent use: callers run one full input cycle at a time
type Session struct {
	builder Builder
	logger  *slog.Logger

	level level

	// Reset on every new maze
	cursor maze.Point
	axis   maze.Axis
	moves  int
}

// NewSession generates the first maze and places the cursor at the start
func NewSession(b Builder, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Session{
		builder: b,
		logger:  logger,
	}
	s.reset()
	return s
}

// reset replaces the grid wholesale and returns cursor and axis to their initial values
// Score is untouched
func (s *Session) reset() {
	grid := s.builder.Generate()
	end, ok := grid.Find(maze.End)
	if !ok {
		panic("game: generated maze has no End cell")
	}

	s.level.id = uuid.New()
	s.level.grid = grid
	s.level.end = end
	s.cursor = maze.Origin
	s.axis = maze.XY
	s.moves = 0

	s.logger.Info("level generated",
		"level", s.level.id.String(),
		"size", grid.Size(),
		"end", end,
		"score", s.level.score,
	)
}

// CurrentSlice cuts the grid along the current axis at the cursor's depth
// The result is only valid until the next CheckWin that regenerates the maze
func (s *Session) CurrentSlice() maze.Slice {
	return s.level.grid.Slice(s.axis, s.axis.Depth(s.cursor))
}

// HandleMove moves the cursor one unit within the visible slice when the target is traversable
// Left/Right act on the horizontal in-slice coordinate, Up/Down on the vertical one
// Returns false when the move was blocked
func (s *Session) HandleMove(d Direction) bool {
	u, v := s.axis.Project(s.cursor)

	switch d {
	case Left:
		if u == 0 {
			return false
		}
		u--
	case Right:
		u++
	case Up:
		if v == 0 {
			return false
		}
		v--
	case Down:
		v++
	default:
		return false
	}

	slice := s.CurrentSlice()
	if u >= slice.Width() || v >= slice.Height() || !slice.At(u, v).Traversable() {
		s.logger.Debug("move blocked", "direction", d.String(), "cursor", s.cursor, "axis", s.axis.String())
		return false
	}

	s.cursor = s.axis.Lift(u, v, slice.Depth())
	s.moves++
	return true
}

// HandleRotate advances the visible axis pair. The cursor never moves
func (s *Session) HandleRotate() {
	s.axis = s.axis.Next()
	s.logger.Debug("axis rotated", "axis", s.axis.String(), "depth", s.axis.Depth(s.cursor))
}

// CheckWin scores and regenerates when the cursor sits on the End cell
func (s *Session) CheckWin() bool {
	if s.cursor != s.level.end {
		return false
	}

	s.level.score++
	s.logger.Info("level complete",
		"level", s.level.id.String(),
		"moves", s.moves,
		"score", s.level.score,
	)
	s.reset()
	return true
}

func (s *Session) Cursor() maze.Point { return s.cursor }

func (s *Session) Axis() maze.Axis { return s.axis }

// End returns the recorded goal position of the current maze
func (s *Session) End() maze.Point { return s.level.end }

func (s *Session) Start() maze.Point { return maze.Origin }

func (s *Session) Score() uint64 { return s.level.score }

// Moves counts successful moves in the current maze
func (s *Session) Moves() int { return s.moves }

// Level identifies the current maze in logs and the HUD
func (s *Session) Level() uuid.UUID { return s.level.id }

// Grid returns the current maze, replaced wholesale on every win
func (s *Session) Grid() *maze.Grid { return s.level.grid }

// Size returns the edge length of the current maze
func (s *Session) Size() int { return s.level.grid.Size() }
