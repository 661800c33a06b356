package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CinisterOne/LWC/internal/domain"
)

var _ domain.QueryRecorder = (*SchemaCounters)(nil)

func TestSchemaCounters_Separate(t *testing.T) {
	c := NewSchemaCounters()
	assert.Zero(t, c.MemoryQueries())
	assert.Zero(t, c.PhysicalQueries())

	c.AddMemoryQuery()
	c.AddPhysicalQuery()
	c.AddPhysicalQuery()

	assert.Equal(t, int64(1), c.MemoryQueries())
	assert.Equal(t, int64(2), c.PhysicalQueries())

	snap := c.Snapshot()
	assert.Equal(t, int64(1), snap.MemoryQueries)
	assert.Equal(t, int64(2), snap.PhysicalQueries)
	assert.Equal(t, int64(3), snap.TotalQueries)
	assert.False(t, snap.StartedAt.IsZero())
	assert.GreaterOrEqual(t, snap.UptimeSeconds, int64(0))
}

func TestSchemaCounters_Concurrent(t *testing.T) {
	c := NewSchemaCounters()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.AddMemoryQuery()
				c.AddPhysicalQuery()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(5000), c.MemoryQueries())
	assert.Equal(t, int64(5000), c.PhysicalQueries())
}
