// Package permissions adapts third-party permission providers to the
// domain.Permissions capability. Every answer is safe when no provider is
// configured: checks are false and groups are absent.
package permissions

import (
	"log/slog"
	"strings"

	"github.com/CinisterOne/LWC/internal/domain"
)

// Handler is the contract a permission provider implements.
type Handler interface {
	Has(world, player, node string) bool
	Group(world, player string) string // "" when the player has no group
}

// Adapter implements domain.Permissions on top of an optional Handler.
type Adapter struct {
	handler Handler
	logger  *slog.Logger
}

var _ domain.Permissions = (*Adapter)(nil)

// NewAdapter wraps handler, which may be nil when no provider is installed.
func NewAdapter(handler Handler, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{handler: handler, logger: logger}
}

// IsActive reports whether a provider is installed.
func (a *Adapter) IsActive() bool {
	return a != nil && a.handler != nil
}

// Permission reports whether subject holds node.
func (a *Adapter) Permission(subject domain.Subject, node string) (ok bool) {
	if !a.IsActive() || subject == nil {
		return false
	}
	defer a.catchPanic("permission", &ok)
	return a.handler.Has(subject.World(), subject.Name(), node)
}

// Group returns the subject's group in its current world.
func (a *Adapter) Group(subject domain.Subject) (group string, ok bool) {
	if !a.IsActive() || subject == nil {
		return "", false
	}
	defer func() {
		if r := recover(); r != nil {
			a.logger.Warn("permission provider panicked", "op", "group", "panic", r)
			group, ok = "", false
		}
	}()
	group = a.handler.Group(subject.World(), subject.Name())
	return group, group != ""
}

// catchPanic turns a provider panic into a negative answer.
func (a *Adapter) catchPanic(op string, ok *bool) {
	if r := recover(); r != nil {
		a.logger.Warn("permission provider panicked", "op", op, "panic", r)
		*ok = false
	}
}

// AdminNode returns the permission node guarding an admin sub-command.
func AdminNode(subcommand string) string {
	return "lwc.admin." + strings.ToLower(subcommand)
}

// HasAdmin reports whether subject may run the admin sub-command. A nil
// capability denies.
func HasAdmin(p domain.Permissions, subject domain.Subject, subcommand string) bool {
	if p == nil {
		return false
	}
	return p.Permission(subject, AdminNode(subcommand))
}
