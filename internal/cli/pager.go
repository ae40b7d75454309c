package cli

import (
	"fmt"
	"io"

	"github.com/alexanderramin/concierge/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// pagerChrome is the number of lines taken by the title and status bar.
const pagerChrome = 2

// pagerModel scrolls a rendered program that is taller than the terminal.
type pagerModel struct {
	title   string
	content string
	vp      viewport.Model
	ready   bool
}

func newPagerModel(title, content string) pagerModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = pagerKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return pagerModel{title: title, content: content, vp: vp}
}

func pagerKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " ", "f")),
		PageUp:       key.NewBinding(key.WithKeys("pgup", "b")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u", "u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d", "d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}

func (m pagerModel) Init() tea.Cmd { return nil }

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-pagerChrome, 1)
		if !m.ready {
			m.vp.SetContent(m.content)
			m.ready = true
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "g", "home":
			m.vp.GotoTop()
			return m, nil
		case "G", "end":
			m.vp.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return ""
	}
	return formatter.Header(m.title) + "\n" + m.vp.View() + "\n" + m.status()
}

func (m pagerModel) status() string {
	pos := fmt.Sprintf("%d%%", int(m.vp.ScrollPercent()*100))
	switch {
	case m.vp.AtTop():
		pos = "TOP"
	case m.vp.AtBottom():
		pos = "END"
	}
	return formatter.Dim(fmt.Sprintf("[%s]  ↑/↓ scroll · space page · q quit", pos))
}

// runPager shows content full screen until the user quits.
func runPager(in io.Reader, out io.Writer, title, content string) error {
	p := tea.NewProgram(newPagerModel(title, content),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
