// Package blankscreen is the screen shown while nothing else is: during the
// initial proxy fetch and after a failed load.
package blankscreen

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/peerview/peerview/internal/constant"
	"github.com/peerview/peerview/internal/navigation"
)

var (
	logoStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5555"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#767676"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
)

// Model renders the app logo with a status line.
type Model struct {
	err error
}

func New() *Model {
	return &Model{}
}

// SetError switches the status line to the load failure.
func (m *Model) SetError(err error) {
	m.err = err
}

// Apply implements the screen contract; the blank screen takes no props.
func (m *Model) Apply(navigation.Props) {}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

func (m *Model) View() string {
	status := statusStyle.Render("connecting to the proxy...")
	if m.err != nil {
		status = errorStyle.Render(m.err.Error())
	}
	return "\n" + logoStyle.Render(constant.AppLogo) + "\n" + status + "\n"
}
