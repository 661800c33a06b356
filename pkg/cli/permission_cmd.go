package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CinisterOne/LWC/internal/permissions"
)

// subject is a player identified on the command line.
type subject struct {
	name, world string
}

func (s subject) Name() string  { return s.name }
func (s subject) World() string { return s.world }

func newCheckPermissionCmd(a *app) *cobra.Command {
	var world string

	cmd := &cobra.Command{
		Use:   "check-permission <player> <node>",
		Short: "Evaluate a permission node against the configured static provider",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pc := a.store.Current().Permissions

			var handler permissions.Handler
			if pc.Enabled {
				handler = permissions.NewStatic(pc.Groups, pc.Players)
			}
			p := permissions.NewAdapter(handler, a.logger)

			s := subject{name: args[0], world: world}
			allowed := p.Permission(s, args[1])
			group, _ := p.Group(s)

			out := cmd.OutOrStdout()
			if a.output == "json" {
				return printJSON(out, map[string]any{
					"player":  s.name,
					"node":    args[1],
					"active":  p.IsActive(),
					"allowed": allowed,
					"group":   group,
				})
			}
			_, err := fmt.Fprintf(out, "active=%t allowed=%t group=%q\n", p.IsActive(), allowed, group)
			return err
		},
	}
	cmd.Flags().StringVar(&world, "world", "world", "World the player is in")
	return cmd
}
