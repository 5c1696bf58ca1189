package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullEntries() map[Screen]string {
	entries := make(map[Screen]string, screenCount)
	for _, s := range Screens() {
		entries[s] = s.String() + "-component"
	}
	return entries
}

func TestNewRegistryIsTotal(t *testing.T) {
	reg, err := NewRegistry(fullEntries())
	require.NoError(t, err)

	for _, s := range Screens() {
		assert.Equal(t, s.String()+"-component", reg.Resolve(s))
	}
}

func TestNewRegistryRejectsMissingScreen(t *testing.T) {
	entries := fullEntries()
	delete(entries, ScreenHelp)

	_, err := NewRegistry(entries)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Help")
}

func TestNewRegistryCopiesEntries(t *testing.T) {
	entries := fullEntries()
	reg, err := NewRegistry(entries)
	require.NoError(t, err)

	entries[ScreenBlank] = "mutated"
	assert.Equal(t, "Blank-component", reg.Resolve(ScreenBlank))
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "Blank", ScreenBlank.String())
	assert.Equal(t, "PeerSelector", ScreenPeerSelector.String())
	assert.Equal(t, "Screen(99)", Screen(99).String())
}
