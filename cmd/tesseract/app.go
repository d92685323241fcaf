package main

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tesseract/audio"
	"github.com/lixenwraith/tesseract/constants"
	"github.com/lixenwraith/tesseract/core"
	"github.com/lixenwraith/tesseract/game"
	"github.com/lixenwraith/tesseract/input"
	"github.com/lixenwraith/tesseract/render"
)

// App glues terminal events to the session and redraws after each change
type App struct {
	screen   tcell.Screen
	session  *game.Session
	renderer *render.SliceRenderer
	keys     *input.KeyTable
	cues     *audio.Cues
	logger   *slog.Logger

	dirty bool
}

func newApp(screen tcell.Screen, session *game.Session, renderer *render.SliceRenderer,
	keys *input.KeyTable, cues *audio.Cues, logger *slog.Logger) *App {
	return &App{
		screen:   screen,
		session:  session,
		renderer: renderer,
		keys:     keys,
		cues:     cues,
		logger:   logger,
		dirty:    true,
	}
}

// run polls terminal events until a quit action or the screen closes
func (a *App) run() {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	a.draw()
	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.draw()
		}
	}
}

func (a *App) draw() {
	if !a.dirty {
		return
	}
	a.renderer.RenderFrame(a.session)
	a.dirty = false
}

// handleEvent processes one terminal event, returns false to quit
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.dirty = true
	case *tcell.EventKey:
		return a.apply(a.keys.Resolve(ev))
	}
	return true
}

// apply runs one action through the session, then checks for a win
func (a *App) apply(action input.Action) bool {
	switch {
	case action == input.ActionNone:
		return true
	case action == input.ActionQuit:
		a.logger.Info("quit", "score", a.session.Score())
		return false
	case action.IsMove():
		if a.session.HandleMove(moveDirection(action)) {
			a.cues.Play(audio.CueStep)
		} else {
			a.cues.Play(audio.CueBump)
		}
	case action == input.ActionRotate:
		a.session.HandleRotate()
		a.cues.Play(audio.CueRotate)
	case action == input.ActionToggleMute:
		if a.cues.ToggleMute() {
			a.renderer.SetStatus("muted")
		} else {
			a.renderer.SetStatus("")
		}
	}

	if a.session.CheckWin() {
		a.cues.Play(audio.CueWin)
	}
	a.dirty = true
	return true
}

func moveDirection(action input.Action) game.Direction {
	switch action {
	case input.ActionMoveLeft:
		return game.Left
	case input.ActionMoveRight:
		return game.Right
	case input.ActionMoveUp:
		return game.Up
	default:
		return game.Down
	}
}
