package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNavigation(t *testing.T) *Navigation[string] {
	t.Helper()
	reg, err := NewRegistry(fullEntries())
	require.NoError(t, err)
	return New(reg, ScreenBlank)
}

func TestNewSeedsInitialViewWithoutProps(t *testing.T) {
	nav := testNavigation(t)

	view := nav.Current()
	assert.Equal(t, "Blank-component", view.Component)
	assert.Nil(t, view.Props)
	assert.Equal(t, 1, nav.Depth())
}

func TestSetPushesResolvedView(t *testing.T) {
	nav := testNavigation(t)

	nav.Set(ScreenHelp, Props{"topic": String("faq")})

	view := nav.Current()
	assert.Equal(t, "Help-component", view.Component)
	assert.Equal(t, Props{"topic": String("faq")}, view.Props)
}

func TestBackRestoresPreviousView(t *testing.T) {
	nav := testNavigation(t)
	nav.Set(ScreenProject, nil)
	before := nav.Current()

	nav.Set(ScreenHelp, Props{"topic": String("faq")})
	nav.Back()

	assert.Equal(t, before, nav.Current())
}

func TestBackAtInitialScreenIsAbsorbed(t *testing.T) {
	nav := testNavigation(t)
	initial := nav.Current()

	nav.Back()
	assert.Equal(t, initial, nav.Current())
	assert.Equal(t, 1, nav.Depth())
}

// The end-to-end scenario: create at Blank, visit Help with props, then back
// twice with the second back absorbed at the floor.
func TestNavigationScenario(t *testing.T) {
	reg, err := NewRegistry(fullEntries())
	require.NoError(t, err)
	nav := New(reg, ScreenBlank)

	var seen []View[string]
	nav.Subscribe(func(v View[string]) { seen = append(seen, v) })

	nav.Set(ScreenHelp, Props{"topic": String("faq")})
	nav.Back()
	nav.Back()

	require.Len(t, seen, 3)
	assert.Equal(t, "Blank-component", seen[0].Component)
	assert.Equal(t, "Help-component", seen[1].Component)
	assert.Equal(t, Props{"topic": String("faq")}, seen[1].Props)
	assert.Equal(t, "Blank-component", seen[2].Component)
}

func TestPropsGet(t *testing.T) {
	p := Props{"peerId": String("hyy1k6"), "placeholder": Zero}

	assert.Equal(t, "hyy1k6", p.Get("peerId"))
	assert.Equal(t, "", p.Get("placeholder"))
	assert.Equal(t, "", p.Get("missing"))
}
