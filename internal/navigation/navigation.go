// Package navigation provides the view-history core of the application: a
// floor-protected history stack, a total registry from screen keys to
// components, and a controller translating navigation intents into stack
// operations.
package navigation

// View pairs a registered component with the props it should be mounted
// with. Views are immutable; navigating constructs new View values.
type View[C any] struct {
	Component C
	Props     Props
}

// Navigation is the controller the rest of the application navigates
// through. Its only state is the history stack and a constant registry
// reference.
type Navigation[C any] struct {
	registry *Registry[C]
	history  *History[View[C]]
}

// New resolves initial through the registry, seeds a history with the
// resulting view (no props), and returns the controller.
func New[C any](registry *Registry[C], initial Screen) *Navigation[C] {
	return &Navigation[C]{
		registry: registry,
		history:  NewHistory(View[C]{Component: registry.Resolve(initial)}),
	}
}

// Set resolves key through the registry and pushes the resulting view.
func (n *Navigation[C]) Set(key Screen, props Props) {
	n.history.Push(View[C]{Component: n.registry.Resolve(key), Props: props})
}

// Back pops one level of history. Going back past the initial screen is
// absorbed by the history's floor.
func (n *Navigation[C]) Back() {
	n.history.Pop()
}

// Current returns the view that should be shown right now.
func (n *Navigation[C]) Current() View[C] {
	return n.history.Current()
}

// Subscribe registers fn to observe the current view; see History.Subscribe.
func (n *Navigation[C]) Subscribe(fn func(View[C])) {
	n.history.Subscribe(fn)
}

// Depth returns the current history depth, the initial view included.
func (n *Navigation[C]) Depth() int {
	return n.history.Len()
}
