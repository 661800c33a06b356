package domain

// QueryRecorder counts schema operations by storage locality.
// Implemented by metrics.SchemaCounters.
type QueryRecorder interface {
	AddMemoryQuery()
	AddPhysicalQuery()
}

// PrefixSource supplies the table identifier prefix. It is consulted on every
// use so that configuration reloads take effect immediately.
// Implemented by config.Store.
type PrefixSource interface {
	Prefix() string
}

// Subject is an actor whose permissions can be checked.
type Subject interface {
	Name() string
	World() string
}

// Permissions is the capability consumed by admin command gating. Every method
// must answer safely (false / absent) when no provider is configured.
// Implemented by permissions.Adapter.
type Permissions interface {
	IsActive() bool
	Permission(subject Subject, node string) bool
	Group(subject Subject) (string, bool)
}
