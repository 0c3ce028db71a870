package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilemerge/internal/canvas"
	"github.com/vovakirdan/tilemerge/internal/config"
	"github.com/vovakirdan/tilemerge/internal/controller"
	"github.com/vovakirdan/tilemerge/internal/engine"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

// HighScorer looks up the best stored score for a board variant.
type HighScorer interface {
	HighScore(variant string) (int, error)
}

// session holds the presentation state shared by every copy of Model and
// receives the controller's notifications.
type session struct {
	ctrl   *controller.Controller
	scores HighScorer
	logger *log.Logger

	shown engine.Board // Board as currently presented
	score int
	best  int
	over  bool
	anim  animation
}

// Ensure session implements controller.Observer
var _ controller.Observer = (*session)(nil)

// BoardChanged starts presenting a move, or swaps in a fresh board on restart.
func (s *session) BoardChanged(result engine.MoveResult) {
	if result.Restarted {
		s.anim.stop()
		s.shown = result.Board
		s.over = false
		s.refreshBest()
		return
	}
	if !result.Moved {
		return
	}

	from := s.shown
	s.shown = result.Board
	if !s.anim.start(from, result) {
		s.ctrl.SettlementComplete()
	}
}

// ScoreChanged implements controller.Observer.
func (s *session) ScoreChanged(score int) {
	s.score = score
	s.best = max(s.best, score)
}

// GameOver implements controller.Observer.
func (s *session) GameOver() {
	s.over = true
}

// tick advances the animation and releases the controller once it settles.
func (s *session) tick() {
	if s.anim.step() {
		s.ctrl.SettlementComplete()
	}
}

// refreshBest reloads the stored best for the current board size.
// Without a store the best of this session is kept.
func (s *session) refreshBest() {
	if s.scores == nil {
		s.best = max(s.best, s.score)
		return
	}
	stored, err := s.scores.HighScore(storage.Variant(s.shown.Size()))
	if err != nil {
		s.logger.Warn("could not load best score", "error", err)
	}
	s.best = max(s.score, stored)
}

// Model is the Bubble Tea model for one game.
type Model struct {
	sess     *session
	keys     keyMap
	help     help.Model
	palette  palette
	screen   *canvas.Screen
	fps      int
	width    int
	height   int
	quitting bool
}

// Option configures a Model.
type Option func(*modelOptions)

type modelOptions struct {
	scores   HighScorer
	renderer *lipgloss.Renderer
	logger   *log.Logger
	width    int
	height   int
}

// WithHighScores shows the stored best score next to the current one.
func WithHighScores(h HighScorer) Option {
	return func(o *modelOptions) { o.scores = h }
}

// WithRenderer sets the lipgloss renderer, e.g. one bound to an SSH session.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(o *modelOptions) { o.renderer = r }
}

// WithLogger sets the logger for non-fatal UI errors.
func WithLogger(l *log.Logger) Option {
	return func(o *modelOptions) { o.logger = l }
}

// WithWindowSize sets the initial terminal size before the first resize event.
func WithWindowSize(width, height int) Option {
	return func(o *modelOptions) { o.width, o.height = width, height }
}

// NewModel creates a model presenting ctrl's game and subscribes it to ctrl.
func NewModel(ctrl *controller.Controller, anim config.AnimationConfig, opts ...Option) Model {
	o := modelOptions{
		renderer: lipgloss.DefaultRenderer(),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&o)
	}

	sess := &session{
		ctrl:   ctrl,
		scores: o.scores,
		logger: o.logger,
		shown:  ctrl.Board(),
		score:  ctrl.Score(),
		over:   ctrl.Status() == engine.StatusGameOver,
		anim:   newAnimation(anim.SlideTicks, anim.PopTicks),
	}
	sess.refreshBest()
	ctrl.Subscribe(sess)

	h := help.New()
	h.Width = o.width

	return Model{
		sess:    sess,
		keys:    defaultKeyMap(),
		help:    h,
		palette: newPalette(o.renderer),
		screen:  canvas.NewScreen(0, 0),
		fps:     anim.FPS,
		width:   o.width,
		height:  o.height,
	}
}

// Init starts the animation clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.sess.tick()
		return m, tickCmd(m.fps)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		m.sess.ctrl.RequestRestart()
		return m, nil
	case key.Matches(msg, m.keys.Bigger):
		m.resizeBoard(1)
		return m, nil
	case key.Matches(msg, m.keys.Smaller):
		m.resizeBoard(-1)
		return m, nil
	}

	if dir, ok := m.keys.direction(msg); ok {
		outcome, err := m.sess.ctrl.RequestMove(dir)
		if err != nil {
			m.sess.logger.Warn("move rejected", "dir", dir, "error", err)
		} else {
			m.sess.logger.Debug("move requested", "dir", dir, "outcome", outcome)
		}
	}
	return m, nil
}

// resizeBoard restarts on a board delta cells larger or smaller. The size
// range only limits growth in the direction of travel, so a board started
// outside it can still be brought back.
func (m Model) resizeBoard(delta int) {
	size := m.sess.shown.Size() + delta
	if (delta > 0 && size > maxBoardSize) || (delta < 0 && size < minBoardSize) {
		return
	}
	if err := m.sess.ctrl.RequestRestartWithSize(size); err != nil {
		m.sess.logger.Warn("resize rejected", "size", size, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	size := m.sess.shown.Size()
	boardW, boardH := boardDims(size)
	if m.width > 0 && m.height > 0 && (m.width < boardW || m.height < boardH+hudHeight) {
		return renderTooSmall(m.width, m.height)
	}

	f := frame{
		board:    m.sess.shown,
		anim:     &m.sess.anim,
		gameOver: m.sess.over,
		score:    m.sess.score,
	}
	drawBoard(m.screen, f)

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.palette.renderHUD(m.sess.score, m.sess.best, m.sess.shown.MaxTile(), size),
		"",
		m.palette.RenderScreen(m.screen),
		"",
		m.help.View(m.keys),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Run starts the Bubble Tea program for a local game.
func Run(ctrl *controller.Controller, anim config.AnimationConfig, opts ...Option) error {
	model := NewModel(ctrl, anim, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
