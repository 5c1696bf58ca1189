package project

import "errors"

// ErrNoRevisions is returned when a selection is requested over an empty
// revision list. The API contract makes the first list entry the default
// peer, which presupposes the list is non-empty.
var ErrNoRevisions = errors.New("project: revision list is empty")

// SelectRevision derives the currently selected revision from revs and an
// optional current peer id.
//
// With no current id the first revision is the default. A current id that
// matches a revision selects it. An id that matches nothing falls back to
// the default; ok is false in that case so callers can surface the
// inconsistency instead of silently accepting it.
func SelectRevision(revs []Revision, current PeerID) (rev Revision, ok bool, err error) {
	if len(revs) == 0 {
		return Revision{}, false, ErrNoRevisions
	}
	if current == "" {
		return revs[0], true, nil
	}
	for _, r := range revs {
		if r.Identity.PeerID == current {
			return r, true, nil
		}
	}
	return revs[0], false, nil
}
