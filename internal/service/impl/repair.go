package core

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// repair re-establishes the relationship invariants over the loaded
// profiles and reports whether anything had to change. It runs once, when
// the store is opened, and covers two classes of damage: documents written
// by older versions that filtered but never deduplicated their lists, and
// the window where a crash landed between the in-memory mutation and the
// document write.
//
// Rules, in order:
//   - list entries are kept only if non-blank, deduplicated, and resolvable
//     to a registered account (favorites skip the resolution check);
//   - friendship wins: a pair that is friends on either side becomes friends
//     on both, and any request entries between the pair are dropped;
//   - a sent request without its mirrored received entry (or the reverse) is
//     a dangling request and is dropped.
func (s *AppService) repair() bool {
	changed := false

	for id, p := range s.profiles {
		if _, ok := s.byID[id]; !ok {
			// Profile left behind by a record that predates stable ids, or
			// whose account never existed. Unreachable either way.
			delete(s.profiles, id)
			changed = true
			continue
		}

		p.Friends, changed = cleanList(p.Friends, s.byID, changed)
		p.SentRequests, changed = cleanList(p.SentRequests, s.byID, changed)
		p.ReceivedRequests, changed = cleanList(p.ReceivedRequests, s.byID, changed)
		p.Favorites, changed = cleanList(p.Favorites, nil, changed)
	}

	// Friendship symmetry: union of both sides.
	for id, p := range s.profiles {
		for _, friendID := range p.Friends {
			other := s.getOrCreate(friendID)
			if !contains(other.Friends, id) {
				other.Friends = append(other.Friends, id)
				changed = true
			}
		}
	}

	// Exclusivity and request mirroring.
	for id, p := range s.profiles {
		for _, friendID := range p.Friends {
			other := s.getOrCreate(friendID)
			if contains(p.SentRequests, friendID) || contains(p.ReceivedRequests, friendID) ||
				contains(other.SentRequests, id) || contains(other.ReceivedRequests, id) {
				p.SentRequests = remove(p.SentRequests, friendID)
				p.ReceivedRequests = remove(p.ReceivedRequests, friendID)
				other.SentRequests = remove(other.SentRequests, id)
				other.ReceivedRequests = remove(other.ReceivedRequests, id)
				changed = true
			}
		}

		for _, receiverID := range append([]string{}, p.SentRequests...) {
			other := s.getOrCreate(receiverID)
			if !contains(other.ReceivedRequests, id) {
				p.SentRequests = remove(p.SentRequests, receiverID)
				changed = true
			}
		}
		for _, senderID := range append([]string{}, p.ReceivedRequests...) {
			other := s.getOrCreate(senderID)
			if !contains(other.SentRequests, id) {
				p.ReceivedRequests = remove(p.ReceivedRequests, senderID)
				changed = true
			}
		}
	}

	if changed {
		log.Info().Msg("profile documents repaired on load")
	}
	return changed
}

// cleanList drops blank and duplicate entries, and, when known is non-nil,
// entries that do not resolve to a registered account. Insertion order is
// preserved.
func cleanList(list []string, known map[string]int, changed bool) ([]string, bool) {
	seen := map[string]bool{}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if strings.TrimSpace(item) == "" || seen[item] {
			continue
		}
		if known != nil {
			if _, ok := known[item]; !ok {
				continue
			}
		}
		seen[item] = true
		out = append(out, item)
	}
	if len(out) != len(list) {
		return out, true
	}
	return list, changed
}
