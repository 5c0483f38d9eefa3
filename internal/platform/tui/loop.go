package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-grid/internal/core"
)

// Terminal is the part of a session the main loop drives.
type Terminal interface {
	// PollEvent waits at most timeout for an event. A nil event with a nil
	// error means nothing arrived.
	PollEvent(timeout time.Duration) (tcell.Event, error)
	HideCursor()
	Flush(frame *core.Screen) error
	Size() (int, int)
}

// Game is the state the main loop advances and renders.
type Game interface {
	Running() bool
	Paused() bool
	ProcessKeyInput(a core.Action)
	ProcessMouseInput(ev core.MouseEvent)
	ResizeViewport(width, height int)
	Update()
	RenderStatus(dst *core.Screen)
	RenderMap(dst *core.Screen)
}

// deltaObserver is implemented by games that display the measured loop rate.
type deltaObserver interface {
	ObserveDelta(d time.Duration)
}

// Stats summarizes a finished run.
type Stats struct {
	Iterations uint64
	Updates    uint64
	Events     uint64
	Overruns   uint64        // Iterations whose work took a full tick or longer
	TotalDelta time.Duration // Sum of start-to-start intervals
}

// AverageDelta returns the mean interval between iteration starts.
func (s Stats) AverageDelta() time.Duration {
	if s.Iterations < 2 {
		return 0
	}
	return s.TotalDelta / time.Duration(s.Iterations-1)
}

// Loop is the fixed-tick main loop.
type Loop struct {
	term   Terminal
	game   Game
	clock  Clock
	keys   *KeyMapper
	frame  *core.Screen
	tick   time.Duration
	poll   time.Duration
	logger *log.Logger
	stats  Stats
}

// NewLoop creates a loop driving game through term. A nil clock means the
// system clock; a nil logger discards output.
func NewLoop(term Terminal, game Game, clock Clock, logger *log.Logger) *Loop {
	if clock == nil {
		clock = NewSystemClock()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := term.Size()
	return &Loop{
		term:   term,
		game:   game,
		clock:  clock,
		keys:   NewKeyMapper(),
		frame:  core.NewScreen(w, h),
		tick:   core.TickDuration,
		poll:   core.PollTimeout,
		logger: logger,
	}
}

// Stats returns the counters collected so far.
func (l *Loop) Stats() Stats {
	return l.stats
}

// Run iterates until the game stops running or ctx is cancelled. Both are
// checked only between iterations, so an iteration always completes.
// Cancellation is reported as ctx.Err().
func (l *Loop) Run(ctx context.Context) (Stats, error) {
	lastTick := l.clock.Now()

	for l.game.Running() {
		if err := ctx.Err(); err != nil {
			l.logger.Info("loop cancelled", "iterations", l.stats.Iterations)
			return l.stats, err
		}

		current := l.clock.Now()
		delta := current.Sub(lastTick)
		lastTick = current
		if l.stats.Iterations > 0 {
			l.stats.TotalDelta += delta
			if o, ok := l.game.(deltaObserver); ok {
				o.ObserveDelta(delta)
			}
		}
		l.stats.Iterations++

		if err := l.drainInput(); err != nil {
			return l.stats, err
		}

		if !l.game.Paused() {
			l.game.Update()
			l.stats.Updates++
		}

		if err := l.render(); err != nil {
			return l.stats, err
		}

		elapsed := l.clock.Now().Sub(current)
		if elapsed < l.tick {
			l.clock.Sleep(l.tick - elapsed)
		} else {
			l.stats.Overruns++
		}
	}

	l.logger.Info("loop stopped",
		"iterations", l.stats.Iterations,
		"updates", l.stats.Updates,
		"overruns", l.stats.Overruns,
	)
	return l.stats, nil
}

// drainInput dispatches every pending event in arrival order and returns at
// the first poll that reports nothing.
func (l *Loop) drainInput() error {
	for {
		ev, err := l.term.PollEvent(l.poll)
		if err != nil {
			return fmt.Errorf("tui: drain input: %w", err)
		}
		if ev == nil {
			return nil
		}
		l.stats.Events++
		l.dispatch(ev)
	}
}

func (l *Loop) dispatch(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if a := l.keys.MapKey(ev); a != core.ActionNone {
			l.game.ProcessKeyInput(a)
		}
	case *tcell.EventMouse:
		l.game.ProcessMouseInput(l.keys.MapMouse(ev))
	case *tcell.EventResize:
		w, h := ev.Size()
		l.frame.Resize(w, h)
		l.game.ResizeViewport(w, h)
		l.logger.Debug("terminal resized", "width", w, "height", h)
	}
}

func (l *Loop) render() error {
	l.term.HideCursor()
	l.frame.Clear()
	l.game.RenderStatus(l.frame)
	l.game.RenderMap(l.frame)
	if err := l.term.Flush(l.frame); err != nil {
		return fmt.Errorf("tui: render: %w", err)
	}
	return nil
}
