// Package profilescreen renders a peer identity: the session's own profile
// or a third party's, depending on which screen it is registered as.
package profilescreen

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
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5555")).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Bold(true).Width(10)
	youStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD700"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#767676"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#767676")).MarginTop(1)
	screenStyle = lipgloss.NewStyle().Margin(1, 2)
)

// Kind distinguishes the session's own profile screen from the third-party
// one.
type Kind int

const (
	Own Kind = iota
	ThirdParty
)

// Model is a profile screen of either kind.
type Model struct {
	kind      Kind
	peerID    project.PeerID
	directory map[project.PeerID]project.Identity
}

func New(kind Kind) *Model {
	return &Model{
		kind:      kind,
		directory: make(map[project.PeerID]project.Identity),
	}
}

// SetDirectory installs the identities known from the session and the
// revision list, so the screen can render handles for peer ids.
func (m *Model) SetDirectory(s project.Session, revs []project.Revision) {
	m.directory[s.Identity.PeerID] = s.Identity
	for _, rev := range revs {
		m.directory[rev.Identity.PeerID] = rev.Identity
	}
}

// Apply reads the peer id from the view's props.
func (m *Model) Apply(props navigation.Props) {
	m.peerID = project.PeerID(props.Get(constant.PropPeerID))
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return message.BackMsg{} }
		}
	}
	return m, nil
}

func (m *Model) View() string {
	title := "Peer profile"
	if m.kind == Own {
		title = "Your profile " + youStyle.Render("you")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	id, known := m.directory[m.peerID]
	if !known {
		id = project.Identity{PeerID: m.peerID}
	}

	rows := []struct{ label, value string }{
		{"Handle", m.handleOr(id, known)},
		{"Peer ID", string(id.PeerID)},
		{"URN", id.URN},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(row.value)
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("esc to go back"))
	return screenStyle.Render(b.String())
}

func (m *Model) handleOr(id project.Identity, known bool) string {
	if !known {
		return dimStyle.Render(fmt.Sprintf("unknown peer %s", m.peerID))
	}
	return id.Handle
}
