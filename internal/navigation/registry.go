package navigation

import "fmt"

// Screen identifies a navigable destination. The set is closed: every value
// below screenCount must have an entry in the registry.
type Screen int

const (
	ScreenBlank Screen = iota
	ScreenHelp
	ScreenProject
	ScreenPeerSelector
	ScreenProfile
	ScreenPeerProfile

	screenCount
)

// String returns the screen name for logs and errors.
func (s Screen) String() string {
	switch s {
	case ScreenBlank:
		return "Blank"
	case ScreenHelp:
		return "Help"
	case ScreenProject:
		return "Project"
	case ScreenPeerSelector:
		return "PeerSelector"
	case ScreenProfile:
		return "Profile"
	case ScreenPeerProfile:
		return "PeerProfile"
	default:
		return fmt.Sprintf("Screen(%d)", int(s))
	}
}

// Screens returns all members of the screen enumeration.
func Screens() []Screen {
	all := make([]Screen, 0, screenCount)
	for s := Screen(0); s < screenCount; s++ {
		all = append(all, s)
	}
	return all
}

// Registry is a total, read-only mapping from every Screen to the component
// rendered for it. Totality is checked once at construction; lookups after
// that cannot fail.
type Registry[C any] struct {
	entries map[Screen]C
}

// NewRegistry validates that entries covers the whole Screen enumeration and
// returns the registry. A missing screen is a configuration error.
func NewRegistry[C any](entries map[Screen]C) (*Registry[C], error) {
	for s := Screen(0); s < screenCount; s++ {
		if _, ok := entries[s]; !ok {
			return nil, fmt.Errorf("navigation: screen %s has no registered component", s)
		}
	}
	reg := &Registry[C]{entries: make(map[Screen]C, len(entries))}
	for s, c := range entries {
		reg.entries[s] = c
	}
	return reg, nil
}

// Resolve returns the component registered for s.
func (r *Registry[C]) Resolve(s Screen) C {
	return r.entries[s]
}
