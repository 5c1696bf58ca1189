// Package projectscreen renders the project's metadata together with the
// peer whose view of the project is currently selected.
package projectscreen

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/peerview/peerview/internal/constant"
	"github.com/peerview/peerview/internal/message"
	"github.com/peerview/peerview/internal/navigation"
	"github.com/peerview/peerview/internal/project"
)

var (
	nameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5555"))
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Bold(true).Width(16)
	peerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	youStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD700"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#767676"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#767676")).MarginTop(1)
	screenStyle = lipgloss.NewStyle().Margin(1, 2)
)

// Model is the project screen.
type Model struct {
	proj     project.Project
	session  project.Session
	selected project.Revision
	loaded   bool
}

func New() *Model {
	return &Model{}
}

// SetProject installs the loaded project and session.
func (m *Model) SetProject(p project.Project, s project.Session) {
	m.proj = p
	m.session = s
	m.loaded = true
}

// SetSelected installs the revision of the currently selected peer.
func (m *Model) SetSelected(rev project.Revision) {
	m.selected = rev
}

// Apply implements the screen contract; the project screen takes no props.
func (m *Model) Apply(navigation.Props) {}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "p":
			return m, func() tea.Msg {
				return message.NavigateMsg{Screen: navigation.ScreenPeerSelector}
			}
		case "o":
			if m.loaded {
				peer := m.selected.Identity.PeerID
				return m, func() tea.Msg {
					return message.OpenProfileMsg{PeerID: peer}
				}
			}
		case "?":
			return m, func() tea.Msg {
				return message.NavigateMsg{
					Screen: navigation.ScreenHelp,
					Props:  navigation.Props{constant.PropHelpTopic: navigation.String(constant.TopicProject)},
				}
			}
		case "esc":
			return m, func() tea.Msg { return message.BackMsg{} }
		}
	}
	return m, nil
}

func (m *Model) View() string {
	if !m.loaded {
		return screenStyle.Render("no project loaded")
	}

	var b strings.Builder
	b.WriteString(nameStyle.Render(m.proj.Name))
	b.WriteString("\n")
	b.WriteString(descStyle.Render(m.proj.Description))
	b.WriteString("\n")

	rows := []struct{ label, value string }{
		{"URN", m.proj.URN},
		{"Default branch", m.proj.DefaultBranch},
		{"Maintainers", fmt.Sprintf("%d", len(m.proj.Maintainers))},
		{"Viewing as", m.peerLine()},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(row.value)
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("p: peers  o: profile  ?: help  q: quit"))
	return screenStyle.Render(b.String())
}

func (m *Model) peerLine() string {
	id := m.selected.Identity
	line := peerStyle.Render(fmt.Sprintf("%s (%s)", id.Handle, id.PeerID))
	if project.IsLocal(m.session, id.PeerID) {
		line += " " + youStyle.Render("you")
	}
	role := project.RoleOf(m.proj, id)
	return line + " " + dimStyle.Render(role.String())
}
