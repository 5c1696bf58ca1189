package project

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRevisions(t *testing.T, peers ...PeerID) []Revision {
	t.Helper()
	revs := make([]Revision, 0, len(peers))
	for _, p := range peers {
		revs = append(revs, Revision{
			ID:       uuid.New(),
			Identity: Identity{PeerID: p, URN: "rad:git:" + string(p), Handle: string(p)},
			Branches: []string{"main"},
		})
	}
	return revs
}

func TestSelectRevision(t *testing.T) {
	revs := testRevisions(t, "alice", "bob", "carol")

	tests := []struct {
		name    string
		current PeerID
		want    PeerID
		wantOK  bool
	}{
		{name: "no current id defaults to first", current: "", want: "alice", wantOK: true},
		{name: "matching id selects it", current: "bob", want: "bob", wantOK: true},
		{name: "matching id selects last entry", current: "carol", want: "carol", wantOK: true},
		{name: "unknown id falls back to default", current: "mallory", want: "alice", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rev, ok, err := SelectRevision(revs, tc.current)
			require.NoError(t, err)
			assert.Equal(t, tc.want, rev.Identity.PeerID)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestSelectRevisionEmptyList(t *testing.T) {
	_, _, err := SelectRevision(nil, "")
	require.ErrorIs(t, err, ErrNoRevisions)

	_, _, err = SelectRevision([]Revision{}, "alice")
	require.ErrorIs(t, err, ErrNoRevisions)
}

func TestRoleOf(t *testing.T) {
	p := Project{
		Name:        "sourcetree",
		Maintainers: []string{"rad:git:alice"},
	}

	maintainer := Identity{PeerID: "alice", URN: "rad:git:alice"}
	contributor := Identity{PeerID: "bob", URN: "rad:git:bob"}

	assert.Equal(t, RoleMaintainer, RoleOf(p, maintainer))
	assert.Equal(t, RoleContributor, RoleOf(p, contributor))
	assert.Equal(t, "maintainer", RoleOf(p, maintainer).String())
	assert.Equal(t, "contributor", RoleOf(p, contributor).String())
}

func TestIsLocal(t *testing.T) {
	s := Session{Identity: Identity{PeerID: "alice"}}

	assert.True(t, IsLocal(s, "alice"))
	assert.False(t, IsLocal(s, "bob"))
}
