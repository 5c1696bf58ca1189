// Package helpscreen renders scrollable key-binding help.
package helpscreen

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/peerview/peerview/internal/constant"
	"github.com/peerview/peerview/internal/message"
	"github.com/peerview/peerview/internal/navigation"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5555")).MarginBottom(1)
	keyStyle   = lipgloss.NewStyle().Bold(true).Width(12)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#767676")).MarginTop(1)
)

type binding struct {
	key  string
	desc string
}

var projectBindings = []binding{
	{"p", "open the peer selector"},
	{"o", "open the selected peer's profile"},
	{"?", "show this help"},
	{"esc", "go back"},
	{"q", "quit"},
}

var peerBindings = []binding{
	{"up/down", "move between peers"},
	{"enter", "select the highlighted peer"},
	{"o", "open the highlighted peer's profile"},
	{"esc", "go back"},
}

// Model is the help screen. The topic prop picks which binding table leads.
type Model struct {
	viewport viewport.Model
	topic    string
	ready    bool
}

func New() *Model {
	return &Model{}
}

// Apply reads the help topic from the view's props.
func (m *Model) Apply(props navigation.Props) {
	m.topic = props.Get(constant.PropHelpTopic)
	m.viewport.SetContent(m.content())
	m.viewport.GotoTop()
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return message.BackMsg{} }
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.viewport.SetContent(m.content())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	if !m.ready {
		return m.content()
	}
	return m.viewport.View() + "\n" + hintStyle.Render("esc to go back")
}

func (m *Model) content() string {
	var b strings.Builder

	sections := []struct {
		title    string
		bindings []binding
	}{
		{"Project", projectBindings},
		{"Peers", peerBindings},
	}
	if m.topic == constant.TopicPeers {
		sections[0], sections[1] = sections[1], sections[0]
	}

	for _, s := range sections {
		b.WriteString(titleStyle.Render(s.title + " keys"))
		b.WriteString("\n")
		for _, bd := range s.bindings {
			b.WriteString(keyStyle.Render(bd.key))
			b.WriteString(bd.desc)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
