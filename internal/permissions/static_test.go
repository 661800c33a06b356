package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatic(t *testing.T) {
	s := NewStatic(
		map[string][]string{
			"admins": {"*"},
			"mods":   {"lwc.admin.*", "lwc.protect"},
			"users":  {"lwc.protect"},
		},
		map[string]string{
			"Hidendra": "admins",
			"Steve":    "mods",
			"Alex":     "users",
			"Ghost":    "missing",
		},
	)

	tests := []struct {
		player string
		node   string
		want   bool
	}{
		{player: "hidendra", node: "anything.at.all", want: true},
		{player: "Steve", node: "lwc.admin.purge", want: true},
		{player: "steve", node: "LWC.ADMIN.FIND", want: true},
		{player: "Steve", node: "lwc.admin", want: false},
		{player: "Steve", node: "lwc.adminx.purge", want: false},
		{player: "Steve", node: "lwc.protect", want: true},
		{player: "Alex", node: "lwc.admin.purge", want: false},
		{player: "Alex", node: "lwc.protect", want: true},
		{player: "Ghost", node: "lwc.protect", want: false},
		{player: "Nobody", node: "lwc.protect", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.player+"/"+tt.node, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Has("world", tt.player, tt.node))
		})
	}

	assert.Equal(t, "mods", s.Group("world", "STEVE"))
	assert.Equal(t, "", s.Group("world", "Nobody"))
}
