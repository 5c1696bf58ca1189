// Package tui is the top-level bubbletea model. It owns the navigation
// controller and renders whatever view the controller currently publishes.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/peerview/peerview/internal/client"
	"github.com/peerview/peerview/internal/config"
	"github.com/peerview/peerview/internal/constant"
	"github.com/peerview/peerview/internal/form/blankscreen"
	"github.com/peerview/peerview/internal/form/helpscreen"
	"github.com/peerview/peerview/internal/form/peerselector"
	"github.com/peerview/peerview/internal/form/profilescreen"
	"github.com/peerview/peerview/internal/form/projectscreen"
	"github.com/peerview/peerview/internal/logWriter"
	"github.com/peerview/peerview/internal/message"
	"github.com/peerview/peerview/internal/navigation"
	"github.com/peerview/peerview/internal/project"
)

var quitTextStyle = lipgloss.NewStyle().Margin(1, 0, 2, 4)

// Screen is implemented by every navigable screen model. Apply is called
// with the view's props whenever the screen becomes current.
type Screen interface {
	tea.Model
	Apply(navigation.Props)
}

// Model defines the state of the entire application.
type Model struct {
	nav    *navigation.Navigation[Screen]
	client *client.Client
	cfg    *config.Config

	session     project.Session
	proj        project.Project
	revisions   []project.Revision
	currentPeer project.PeerID

	blank       *blankscreen.Model
	help        *helpscreen.Model
	projectScr  *projectscreen.Model
	selector    *peerselector.Model
	profile     *profilescreen.Model
	peerProfile *profilescreen.Model

	quitting  bool
	LogWriter *logWriter.Logger
	width     int
	height    int
}

// InitialModel sets up the screens, validates the registry and seeds the
// navigation at the blank screen.
func InitialModel(cfg *config.Config, log *logWriter.Logger) (*Model, error) {
	m := &Model{
		cfg:         cfg,
		blank:       blankscreen.New(),
		help:        helpscreen.New(),
		projectScr:  projectscreen.New(),
		selector:    peerselector.New(),
		profile:     profilescreen.New(profilescreen.Own),
		peerProfile: profilescreen.New(profilescreen.ThirdParty),
		LogWriter:   log,
	}

	registry, err := navigation.NewRegistry(map[navigation.Screen]Screen{
		navigation.ScreenBlank:        m.blank,
		navigation.ScreenHelp:         m.help,
		navigation.ScreenProject:      m.projectScr,
		navigation.ScreenPeerSelector: m.selector,
		navigation.ScreenProfile:      m.profile,
		navigation.ScreenPeerProfile:  m.peerProfile,
	})
	if err != nil {
		return nil, err
	}

	m.nav = navigation.New(registry, navigation.ScreenBlank)
	// The renderer contract: whenever a view becomes current it is mounted
	// with its props.
	m.nav.Subscribe(func(v navigation.View[Screen]) {
		v.Component.Apply(v.Props)
	})

	m.client, err = client.New(cfg, log)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Init kicks off the proxy fetch.
func (m *Model) Init() tea.Cmd {
	return m.loadProject
}

// loadProject fetches the session, project and revision list from the proxy.
func (m *Model) loadProject() tea.Msg {
	if m.cfg.ProjectURN == "" {
		return message.LoadFailedMsg{Err: errors.New("PROJECT_URN is not set")}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*m.cfg.RequestTimeout)
	defer cancel()

	session, err := m.client.Session(ctx)
	if err != nil {
		return message.LoadFailedMsg{Err: err}
	}
	proj, err := m.client.Project(ctx, m.cfg.ProjectURN)
	if err != nil {
		return message.LoadFailedMsg{Err: err}
	}
	revs, err := m.client.Revisions(ctx, m.cfg.ProjectURN)
	if err != nil {
		return message.LoadFailedMsg{Err: err}
	}

	return message.ProjectLoadedMsg{Session: session, Project: proj, Revisions: revs}
}

// Update handles incoming messages and updates the application state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		m.LogWriter.Infof("quitting the application")
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case message.BackMsg:
		m.nav.Back()
		m.LogWriter.Infof("navigated back, depth %d", m.nav.Depth())
		return m, nil

	case message.NavigateMsg:
		m.nav.Set(msg.Screen, msg.Props)
		m.LogWriter.Infof("navigated to %s", msg.Screen)
		return m, nil

	case message.OpenProfileMsg:
		screen := m.profileScreenFor(msg.PeerID)
		m.nav.Set(screen, navigation.Props{
			constant.PropPeerID: navigation.String(string(msg.PeerID)),
		})
		m.LogWriter.Infof("opened %s for peer %s", screen, msg.PeerID)
		return m, nil

	case message.PeerSelectedMsg:
		return m.selectPeer(msg.PeerID)

	case message.ProjectLoadedMsg:
		return m.installProject(msg)

	case message.LoadFailedMsg:
		m.LogWriter.Errorf("loading project failed: %v", msg.Err)
		m.blank.SetError(msg.Err)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.broadcastSize(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m.updateCurrent(msg)
}

// selectPeer records the peer chosen in the selector, refreshes the screens
// that show it and closes the selector.
func (m *Model) selectPeer(peer project.PeerID) (tea.Model, tea.Cmd) {
	m.currentPeer = peer

	selected, ok, err := project.SelectRevision(m.revisions, m.currentPeer)
	if err != nil {
		m.LogWriter.Errorf("selecting peer %s: %v", peer, err)
		return m, nil
	}
	if !ok {
		m.LogWriter.Warnf("peer %s has no revision, defaulting to %s", peer, selected.Identity.PeerID)
	}

	m.projectScr.SetSelected(selected)
	m.LogWriter.Successf("selected peer %s", selected.Identity.PeerID)
	m.nav.Back()
	return m, nil
}

// installProject stores the fetched data, feeds the screens and navigates to
// the project screen.
func (m *Model) installProject(msg message.ProjectLoadedMsg) (tea.Model, tea.Cmd) {
	m.session = msg.Session
	m.proj = msg.Project
	m.revisions = msg.Revisions

	selected, _, err := project.SelectRevision(m.revisions, m.currentPeer)
	if err != nil {
		m.LogWriter.Errorf("project %s has no revisions", m.proj.URN)
		m.blank.SetError(err)
		return m, nil
	}

	if err := m.selector.SetRevisions(m.proj, m.session, m.revisions, m.currentPeer); err != nil {
		m.blank.SetError(err)
		return m, nil
	}
	m.projectScr.SetProject(m.proj, m.session)
	m.projectScr.SetSelected(selected)
	m.profile.SetDirectory(m.session, m.revisions)
	m.peerProfile.SetDirectory(m.session, m.revisions)

	m.LogWriter.Successf("loaded project %s with %d peers", m.proj.Name, len(m.revisions))
	m.nav.Set(navigation.ScreenProject, nil)
	return m, nil
}

// profileScreenFor routes a profile request: the session's own identity goes
// to the profile screen, anyone else to the third-party one.
func (m *Model) profileScreenFor(peer project.PeerID) navigation.Screen {
	if project.IsLocal(m.session, peer) {
		return navigation.ScreenProfile
	}
	return navigation.ScreenPeerProfile
}

// broadcastSize fans the new window size out to every screen, so screens
// that are not current are sized correctly when navigated to.
func (m *Model) broadcastSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, s := range m.screens() {
		_, cmd := s.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) screens() []Screen {
	return []Screen{m.blank, m.help, m.projectScr, m.selector, m.profile, m.peerProfile}
}

// updateCurrent delegates a message to the screen of the current view.
// Screens are pointer models and update in place.
func (m *Model) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.nav.Current().Component.Update(msg)
	return m, cmd
}

// View renders the current view published by the navigation controller.
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("Thanks for using peerview!")
	}
	return m.nav.Current().Component.View()
}
