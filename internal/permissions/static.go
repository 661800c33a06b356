package permissions

import (
	"strings"
)

// Static is a Handler backed by fixed group memberships, typically loaded
// from the permissions block of the configuration file. It ignores worlds.
//
// A node granted to a group matches exactly, or as a prefix when it ends in
// ".*"; a lone "*" matches everything.
type Static struct {
	groups  map[string][]string // group -> nodes
	players map[string]string   // lower-cased player -> group
}

var _ Handler = (*Static)(nil)

// NewStatic builds a Static handler. Player names match case-insensitively.
func NewStatic(groups map[string][]string, players map[string]string) *Static {
	s := &Static{
		groups:  make(map[string][]string, len(groups)),
		players: make(map[string]string, len(players)),
	}
	for g, nodes := range groups {
		s.groups[g] = append([]string(nil), nodes...)
	}
	for p, g := range players {
		s.players[strings.ToLower(p)] = g
	}
	return s
}

// Has implements Handler.
func (s *Static) Has(_, player, node string) bool {
	group, ok := s.players[strings.ToLower(player)]
	if !ok {
		return false
	}
	node = strings.ToLower(node)
	for _, granted := range s.groups[group] {
		if matchNode(strings.ToLower(granted), node) {
			return true
		}
	}
	return false
}

// Group implements Handler.
func (s *Static) Group(_, player string) string {
	return s.players[strings.ToLower(player)]
}

func matchNode(granted, node string) bool {
	if granted == "*" || granted == node {
		return true
	}
	if base, ok := strings.CutSuffix(granted, ".*"); ok {
		return strings.HasPrefix(node, base+".")
	}
	return false
}
