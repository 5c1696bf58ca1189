// Package peerselector lists the peers publishing revisions of the project
// and lets the user pick whose view to browse.
package peerselector

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/peerview/peerview/internal/message"
	"github.com/peerview/peerview/internal/navigation"
	"github.com/peerview/peerview/internal/project"
)

var (
	titleStyle    = lipgloss.NewStyle().MarginLeft(2).Bold(true).Foreground(lipgloss.Color("#FF5555"))
	itemStyle     = lipgloss.NewStyle().PaddingLeft(4)
	selectedStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	youStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD700"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#767676"))
)

// peerItem is one revision in the list.
type peerItem struct {
	rev   project.Revision
	local bool
	role  project.Role
}

// FilterValue allows peerItem to be filtered by handle.
func (i peerItem) FilterValue() string { return i.rev.Identity.Handle }

// itemDelegate renders peer items.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(peerItem)
	if !ok {
		return
	}

	id := item.rev.Identity
	str := fmt.Sprintf("%s %s", id.Handle, dimStyle.Render(string(id.PeerID)))
	if item.local {
		str += " " + youStyle.Render("you")
	}
	str += " " + dimStyle.Render(item.role.String())

	if index == m.Index() {
		fmt.Fprint(w, selectedStyle.Render("> "+str))
	} else {
		fmt.Fprint(w, itemStyle.Render(str))
	}
}

// Model is the peer selector screen.
type Model struct {
	list  list.Model
	ready bool
}

func New() *Model {
	l := list.New(nil, itemDelegate{}, 40, 14)
	l.Title = "Peers"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle

	return &Model{list: l}
}

// SetRevisions fills the list from the project's revisions and moves the
// cursor to the currently selected peer (the first entry by default).
func (m *Model) SetRevisions(p project.Project, s project.Session, revs []project.Revision, current project.PeerID) error {
	selected, _, err := project.SelectRevision(revs, current)
	if err != nil {
		return err
	}

	items := make([]list.Item, 0, len(revs))
	cursor := 0
	for i, rev := range revs {
		if rev.ID == selected.ID {
			cursor = i
		}
		items = append(items, peerItem{
			rev:   rev,
			local: project.IsLocal(s, rev.Identity.PeerID),
			role:  project.RoleOf(p, rev.Identity),
		})
	}
	m.list.SetItems(items)
	m.list.Select(cursor)
	m.ready = true
	return nil
}

// Apply implements the screen contract; the selector takes no props.
func (m *Model) Apply(navigation.Props) {}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(peerItem); ok {
				peer := item.rev.Identity.PeerID
				return m, func() tea.Msg {
					return message.PeerSelectedMsg{PeerID: peer}
				}
			}
		case "o":
			if item, ok := m.list.SelectedItem().(peerItem); ok {
				peer := item.rev.Identity.PeerID
				return m, func() tea.Msg {
					return message.OpenProfileMsg{PeerID: peer}
				}
			}
		case "esc":
			return m, func() tea.Msg { return message.BackMsg{} }
		}

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	if !m.ready {
		return itemStyle.Render("no peers yet")
	}
	return m.list.View()
}
