package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vovakirdan/tilemerge/internal/canvas"
	"github.com/vovakirdan/tilemerge/internal/config"
	"github.com/vovakirdan/tilemerge/internal/controller"
	"github.com/vovakirdan/tilemerge/internal/engine"
	"github.com/vovakirdan/tilemerge/internal/random"
)

var testAnimation = config.AnimationConfig{FPS: 60, SlideTicks: 2, PopTicks: 1}

type fakeScores struct {
	best map[string]int
	err  error
}

func (f fakeScores) HighScore(variant string) (int, error) {
	return f.best[variant], f.err
}

type ModelSuite struct {
	suite.Suite
	src   *random.Scripted
	ctrl  *controller.Controller
	model Model
}

func TestModelSuite(t *testing.T) {
	suite.Run(t, new(ModelSuite))
}

func (s *ModelSuite) SetupTest() {
	s.src = random.NewScripted()
	s.src.QueueSpawn(0, false) // (0,0)=2
	s.src.QueueSpawn(0, false) // (0,1)=2

	e, err := engine.New(4, engine.WithSource(s.src))
	s.Require().NoError(err)

	s.ctrl = controller.New(e)
	s.model = NewModel(s.ctrl, testAnimation)
}

func (s *ModelSuite) update(msg tea.Msg) tea.Cmd {
	next, cmd := s.model.Update(msg)
	m, ok := next.(Model)
	s.Require().True(ok)
	s.model = m
	return cmd
}

func (s *ModelSuite) press(keys ...string) {
	for _, k := range keys {
		switch k {
		case "left":
			s.update(tea.KeyMsg{Type: tea.KeyLeft})
		case "right":
			s.update(tea.KeyMsg{Type: tea.KeyRight})
		case "up":
			s.update(tea.KeyMsg{Type: tea.KeyUp})
		default:
			s.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		}
	}
}

func (s *ModelSuite) ticks(n int) {
	for range n {
		s.update(TickMsg{})
	}
}

func (s *ModelSuite) TestMoveAnimatesThenSettles() {
	s.src.QueueSpawn(0, false) // lands on (0,1)

	s.press("left")
	s.True(s.ctrl.Busy())
	s.Equal(phaseSlide, s.model.sess.anim.phase)
	s.Equal(4, s.model.sess.score)

	s.ticks(2)
	s.Equal(phasePop, s.model.sess.anim.phase)
	s.True(s.ctrl.Busy())

	s.ticks(1)
	s.False(s.model.sess.anim.active())
	s.False(s.ctrl.Busy())
}

func (s *ModelSuite) TestKeysIgnoredWhileSettling() {
	s.press("left")
	s.press("right", "h")

	s.Equal(1, s.ctrl.Snapshot().Moves)

	s.ticks(3)
	s.press("right")
	s.Equal(2, s.ctrl.Snapshot().Moves)
}

func (s *ModelSuite) TestVimAndWASDKeys() {
	s.press("a")
	s.Equal(1, s.ctrl.Snapshot().Moves)
	s.ticks(3)

	s.press("l")
	s.Equal(2, s.ctrl.Snapshot().Moves)
}

func (s *ModelSuite) TestNoEffectMoveDoesNotAnimate() {
	s.press("up")

	s.False(s.model.sess.anim.active())
	s.False(s.ctrl.Busy())
	s.Equal(0, s.ctrl.Snapshot().Moves)
}

func (s *ModelSuite) TestRestartDiscardsAnimation() {
	s.press("left")
	s.Require().True(s.model.sess.anim.active())

	s.press("r")

	s.False(s.model.sess.anim.active())
	s.False(s.ctrl.Busy())
	s.Equal(0, s.model.sess.score)
	s.True(s.model.sess.shown.Equal(s.ctrl.Board()))
}

func (s *ModelSuite) TestBestTracksScore() {
	s.press("left")
	s.Equal(4, s.model.sess.best)

	s.press("r")
	s.Equal(0, s.model.sess.score)
	s.Equal(4, s.model.sess.best, "best survives restart without a store")
}

func (s *ModelSuite) TestResizeKeys() {
	s.press("+")
	s.Equal(5, s.ctrl.Board().Size())
	s.Equal(5, s.model.sess.shown.Size())

	s.press("-", "-")
	s.Equal(3, s.ctrl.Board().Size())

	s.press("-") // below the smallest offered size
	s.Equal(3, s.ctrl.Board().Size())
}

func TestResizeFromOutsideRange(t *testing.T) {
	tests := []struct {
		name  string
		start int
		key   string
		want  int
	}{
		{"shrink oversized board", 10, "-", 9},
		{"grow oversized board refused", 10, "+", 10},
		{"grow undersized board", 2, "+", 3},
		{"shrink undersized board refused", 2, "-", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := engine.New(tt.start, engine.WithSource(random.NewScripted()))
			require.NoError(t, err)
			ctrl := controller.New(e)
			m := NewModel(ctrl, testAnimation)

			m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)})

			assert.Equal(t, tt.want, ctrl.Board().Size())
		})
	}
}

func (s *ModelSuite) TestHelpToggle() {
	s.False(s.model.help.ShowAll)
	s.press("?")
	s.True(s.model.help.ShowAll)
	s.Contains(s.model.View(), "restart")
}

func (s *ModelSuite) TestQuit() {
	cmd := s.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	s.Require().NotNil(cmd)

	_, ok := cmd().(tea.QuitMsg)
	s.True(ok)
	s.Empty(s.model.View())
}

func (s *ModelSuite) TestTickKeepsClockRunning() {
	s.NotNil(s.model.Init())
	s.NotNil(s.update(TickMsg{}))
}

func (s *ModelSuite) TestViewShowsHUD() {
	s.press("left")
	s.ticks(3)

	view := s.model.View()
	s.Contains(view, "SCORE")
	s.Contains(view, "BEST")
	s.Contains(view, "4x4")
}

func (s *ModelSuite) TestViewTooSmall() {
	s.update(tea.WindowSizeMsg{Width: 10, Height: 5})
	s.Contains(s.model.View(), "Window too small")

	s.update(tea.WindowSizeMsg{Width: 120, Height: 40})
	s.NotContains(s.model.View(), "Window too small")
}

func TestZeroTickAnimationSettlesImmediately(t *testing.T) {
	src := random.NewScripted()
	src.QueueSpawn(0, false)
	src.QueueSpawn(0, false)
	e, err := engine.New(4, engine.WithSource(src))
	require.NoError(t, err)
	ctrl := controller.New(e)

	m := NewModel(ctrl, config.AnimationConfig{FPS: 60})
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})

	assert.False(t, ctrl.Busy())
	assert.Equal(t, 1, ctrl.Snapshot().Moves)
}

func TestGameOverOverlay(t *testing.T) {
	src := random.NewScripted()
	e, err := engine.NewFromRows([][]int{
		{2, 2},
		{8, 4},
	}, engine.WithSource(src))
	require.NoError(t, err)
	src.QueueSpawn(0, false)

	ctrl := controller.New(e)
	m := NewModel(ctrl, testAnimation)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	require.Equal(t, engine.StatusGameOver, ctrl.Status())
	assert.NotContains(t, m.View(), "GAME OVER", "overlay waits for the animation")

	for range 3 {
		next, _ = m.Update(TickMsg{})
		m = next.(Model)
	}
	assert.Contains(t, m.View(), "GAME OVER")
}

func TestStoredBestScore(t *testing.T) {
	src := random.NewScripted()
	e, err := engine.New(4, engine.WithSource(src))
	require.NoError(t, err)
	ctrl := controller.New(e)

	m := NewModel(ctrl, testAnimation, WithHighScores(fakeScores{best: map[string]int{"4x4": 100}}))
	assert.Equal(t, 100, m.sess.best)

	broken := NewModel(ctrl, testAnimation, WithHighScores(fakeScores{err: errors.New("db gone")}))
	assert.Equal(t, 0, broken.sess.best)
}

func TestDrawBoardPlacesTiles(t *testing.T) {
	board, err := engine.BoardFromRows([][]int{
		{2, 0},
		{0, 1024},
	})
	require.NoError(t, err)

	screen := canvas.NewScreen(0, 0)
	drawBoard(screen, frame{board: board})

	w, h := boardDims(2)
	assert.Equal(t, w, screen.Width())
	assert.Equal(t, h, screen.Height())

	first := slotRect(0, 0)
	assert.Equal(t, canvas.Paint(2), screen.GetCell(first.X, first.Y).Paint)

	empty := slotRect(0, 1)
	assert.Equal(t, paintEmpty, screen.GetCell(empty.X, empty.Y).Paint)

	last := slotRect(1, 1)
	_, cy := last.Center()
	assert.Contains(t, screen.Row(cy), "1024")
}

func TestDrawSlideInterpolates(t *testing.T) {
	from, err := engine.BoardFromRows([][]int{
		{0, 0},
		{0, 2},
	})
	require.NoError(t, err)
	to, _, _ := engine.Slide(from, engine.DirLeft)

	a := newAnimation(4, 0)
	require.True(t, a.start(from, engine.MoveResult{
		Board:       to,
		Moved:       true,
		Transitions: []engine.Transition{{From: engine.Pos{Row: 1, Col: 1}, To: engine.Pos{Row: 1, Col: 0}, Value: 2}},
	}))
	a.step()
	a.step() // halfway in ticks, eased past the midpoint

	screen := canvas.NewScreen(0, 0)
	drawBoard(screen, frame{board: to, anim: &a})

	start := slotRect(1, 1)
	end := slotRect(1, 0)
	mid := slotRect(1, lerp(1, 0, a.progress()))
	assert.Less(t, mid.X, start.X)
	assert.Greater(t, mid.X, end.X)
	assert.Equal(t, canvas.Paint(2), screen.GetCell(mid.X, mid.Y).Paint)
}

func TestAnimationPhases(t *testing.T) {
	result := engine.MoveResult{
		Moved:       true,
		Transitions: []engine.Transition{{}},
		Spawned:     []engine.Tile{{Value: 2}},
	}

	tests := []struct {
		name       string
		slide, pop int
		first      animationPhase
		steps      int
	}{
		{"slide and pop", 2, 1, phaseSlide, 3},
		{"slide only", 2, 0, phaseSlide, 2},
		{"pop only", 0, 3, phasePop, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAnimation(tt.slide, tt.pop)
			require.True(t, a.start(engine.Board{}, result))
			assert.Equal(t, tt.first, a.phase)

			for i := 1; i < tt.steps; i++ {
				assert.False(t, a.step(), "step %d finished early", i)
			}
			assert.True(t, a.step())
			assert.False(t, a.active())
		})
	}
}

func TestEaseOutQuad(t *testing.T) {
	assert.InDelta(t, 0.0, easeOutQuad(0), 1e-9)
	assert.InDelta(t, 0.75, easeOutQuad(0.5), 1e-9)
	assert.InDelta(t, 1.0, easeOutQuad(1), 1e-9)
}
