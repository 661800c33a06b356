// Package metrics keeps coarse counters for schema operations, split by
// whether the target table lives in a memory or a disk storage engine.
package metrics

import (
	"sync/atomic"
	"time"
)

// SchemaCounters counts successful table synchronizations. Counters only
// grow; they reset when a new SchemaCounters is created. Safe for
// concurrent use.
type SchemaCounters struct {
	memory   atomic.Int64
	physical atomic.Int64
	started  time.Time
}

// NewSchemaCounters returns zeroed counters.
func NewSchemaCounters() *SchemaCounters {
	return &SchemaCounters{started: time.Now()}
}

// AddMemoryQuery records an operation against a memory table.
func (c *SchemaCounters) AddMemoryQuery() { c.memory.Add(1) }

// AddPhysicalQuery records an operation against a disk table.
func (c *SchemaCounters) AddPhysicalQuery() { c.physical.Add(1) }

// MemoryQueries returns the memory-table count.
func (c *SchemaCounters) MemoryQueries() int64 { return c.memory.Load() }

// PhysicalQueries returns the disk-table count.
func (c *SchemaCounters) PhysicalQueries() int64 { return c.physical.Load() }

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	MemoryQueries   int64     `json:"memory_queries"`
	PhysicalQueries int64     `json:"physical_queries"`
	TotalQueries    int64     `json:"total_queries"`
	StartedAt       time.Time `json:"started_at"`
	UptimeSeconds   int64     `json:"uptime_seconds"`
}

// Snapshot reads both counters. The two loads are not atomic with respect to
// each other.
func (c *SchemaCounters) Snapshot() Snapshot {
	mem := c.memory.Load()
	phys := c.physical.Load()
	return Snapshot{
		MemoryQueries:   mem,
		PhysicalQueries: phys,
		TotalQueries:    mem + phys,
		StartedAt:       c.started,
		UptimeSeconds:   int64(time.Since(c.started) / time.Second),
	}
}
