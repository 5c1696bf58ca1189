// Package project holds the peer, revision and project model served by the
// proxy daemon, and the selection policy deriving the current peer from a
// revision list.
package project

import "github.com/google/uuid"

// PeerID identifies a device participating in a project.
type PeerID string

// Identity is a peer identity as reported by the proxy.
type Identity struct {
	PeerID         PeerID `json:"peerId"`
	URN            string `json:"urn"`
	Handle         string `json:"handle"`
	AvatarFallback string `json:"avatarFallback"`
}

// Revision is one peer's published view of a project: the identity it
// belongs to plus the branches and tags that peer carries.
type Revision struct {
	ID       uuid.UUID `json:"id"`
	Identity Identity  `json:"identity"`
	Branches []string  `json:"branches"`
	Tags     []string  `json:"tags"`
}

// Project is the metadata of a replicated project.
type Project struct {
	URN           string   `json:"urn"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	DefaultBranch string   `json:"defaultBranch"`
	Maintainers   []string `json:"maintainers"`
}

// Session is the active local session.
type Session struct {
	Identity Identity `json:"identity"`
}

// Role describes how a peer relates to a project.
type Role int

const (
	RoleContributor Role = iota
	RoleMaintainer
)

func (r Role) String() string {
	switch r {
	case RoleMaintainer:
		return "maintainer"
	default:
		return "contributor"
	}
}

// RoleOf derives the role of an identity from the project's maintainer set.
func RoleOf(p Project, id Identity) Role {
	for _, urn := range p.Maintainers {
		if urn == id.URN {
			return RoleMaintainer
		}
	}
	return RoleContributor
}

// IsLocal reports whether peer is the active session's own peer.
func IsLocal(s Session, peer PeerID) bool {
	return s.Identity.PeerID == peer
}
