package tui

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-grid/internal/core"
)

var (
	// ErrSessionClosed is returned by operations on a session after Close.
	ErrSessionClosed = errors.New("tui: session closed")
	// ErrInputClosed is returned when the terminal stops delivering events.
	ErrInputClosed = errors.New("tui: input closed")
)

// pendingCheckInterval is how often PollEvent rechecks the event queue while
// waiting for its deadline.
const pendingCheckInterval = time.Millisecond

// Session owns the terminal for the lifetime of one run: alternate screen,
// raw mode, hidden cursor and mouse capture. Close restores all of it.
type Session struct {
	screen tcell.Screen
	logger *log.Logger

	mu        sync.Mutex
	closed    bool
	closeOnce sync.Once
}

// Open takes over the controlling terminal.
func Open(logger *log.Logger) (*Session, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tui: create screen: %w", err)
	}
	return OpenScreen(screen, logger)
}

// OpenScreen initializes an existing tcell screen and wraps it in a session.
// The screen must not have been initialized yet.
func OpenScreen(screen tcell.Screen, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tui: init terminal: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()
	screen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents)
	screen.Show()

	w, h := screen.Size()
	logger.Debug("terminal session opened", "width", w, "height", h)

	return &Session{screen: screen, logger: logger}, nil
}

// Close restores the terminal. It is safe to call more than once; only the
// first call has any effect.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()

		s.screen.DisableMouse()
		s.screen.Clear()
		s.screen.Show()
		s.screen.Fini()
		s.logger.Debug("terminal session closed")
	})
	return nil
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Size returns the terminal dimensions in cells.
func (s *Session) Size() (int, int) {
	return s.screen.Size()
}

// HideCursor hides the terminal cursor. Hiding an already hidden cursor is a
// no-op.
func (s *Session) HideCursor() {
	if s.isClosed() {
		return
	}
	s.screen.HideCursor()
}

// PollEvent waits at most timeout for the next terminal event. It returns a
// nil event and nil error when nothing arrived in time.
func (s *Session) PollEvent(timeout time.Duration) (tcell.Event, error) {
	if s.isClosed() {
		return nil, ErrSessionClosed
	}

	deadline := time.Now().Add(timeout)
	for !s.screen.HasPendingEvent() {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, nil
		}
		time.Sleep(min(remaining, pendingCheckInterval))
	}

	switch ev := s.screen.PollEvent().(type) {
	case nil:
		return nil, ErrInputClosed
	case *tcell.EventError:
		return nil, fmt.Errorf("tui: read input: %w", ev)
	default:
		return ev, nil
	}
}

// Flush queues every cell of frame and writes the result to the terminal in
// one batch.
func (s *Session) Flush(frame *core.Screen) error {
	if s.isClosed() {
		return ErrSessionClosed
	}
	blit(s.screen, frame)
	s.screen.Show()
	return nil
}
