package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Board sizes offered by the size picker and the in-game resize keys.
const (
	minBoardSize = 3
	maxBoardSize = 8
)

// boardSizes lists every size the UI offers, smallest first.
func boardSizes() []int {
	sizes := make([]int, 0, maxBoardSize-minBoardSize+1)
	for n := minBoardSize; n <= maxBoardSize; n++ {
		sizes = append(sizes, n)
	}
	return sizes
}

// sizeLabels names the well-known board sizes.
var sizeLabels = map[int]string{
	3: "Tiny",
	4: "Classic",
	5: "Big",
	6: "Bigger",
	8: "Huge",
}

// menuKeyMap holds list navigation bindings.
type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SizeMenuModel lets users choose the board size before a game.
type SizeMenuModel struct {
	sizes    []int
	cursor   int
	width    int
	height   int
	keys     menuKeyMap
	selected int // 0 while still choosing
	quitting bool
}

// NewSizeMenuModel creates a size picker with the cursor on current.
func NewSizeMenuModel(current, width, height int) SizeMenuModel {
	sizes := boardSizes()
	cursor := slices.Index(sizes, current)
	if cursor < 0 {
		cursor = slices.Index(sizes, 4)
	}

	return SizeMenuModel{
		sizes:  sizes,
		cursor: cursor,
		width:  width,
		height: height,
		keys:   defaultMenuKeyMap(),
	}
}

// Init initializes the model.
func (m SizeMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SizeMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m SizeMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.sizes)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.selected = m.sizes[m.cursor]
		return m, tea.Quit
	}
	return m, nil
}

// View renders the size list.
func (m SizeMenuModel) View() string {
	if m.quitting || m.selected != 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("T I L E M E R G E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select board size:", m.width))
	b.WriteString("\n\n")

	for i, n := range m.sizes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%dx%d", cursor, n, n)
		if label, ok := sizeLabels[n]; ok {
			line = fmt.Sprintf("%-8s %s", line, label)
		}
		b.WriteString(centerText(fmt.Sprintf("%-16s", line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen size, or 0 if none was chosen.
func (m SizeMenuModel) Selected() int {
	return m.selected
}

// RunSizeSelector runs the size picker and returns the chosen size.
// ok is false when the user left without choosing.
func RunSizeSelector(current, width, height int) (size int, ok bool, err error) {
	p := tea.NewProgram(
		NewSizeMenuModel(current, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, isMenu := finalModel.(SizeMenuModel)
	if !isMenu || m.Selected() == 0 {
		return 0, false, nil
	}
	return m.Selected(), true, nil
}

// centerText pads text so it is centered within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
