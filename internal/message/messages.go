// Package message defines the tea messages screens use to talk to the root
// model.
package message

import (
	"github.com/peerview/peerview/internal/navigation"
	"github.com/peerview/peerview/internal/project"
)

// BackMsg is sent when the user presses 'Esc' to navigate back to the
// previous screen.
type BackMsg struct{}

// NavigateMsg asks the root model to push a new screen with the given props.
type NavigateMsg struct {
	Screen navigation.Screen
	Props  navigation.Props
}

// PeerSelectedMsg carries the peer chosen in the peer selector.
type PeerSelectedMsg struct {
	PeerID project.PeerID
}

// OpenProfileMsg asks the root model to open a peer's profile. The root
// model routes it to the own-profile or third-party screen.
type OpenProfileMsg struct {
	PeerID project.PeerID
}

// ProjectLoadedMsg delivers the data fetched from the proxy at startup.
type ProjectLoadedMsg struct {
	Session   project.Session
	Project   project.Project
	Revisions []project.Revision
}

// LoadFailedMsg reports a failed proxy fetch.
type LoadFailedMsg struct {
	Err error
}
