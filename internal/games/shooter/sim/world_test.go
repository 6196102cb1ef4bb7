package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldSpawnAssignsIDs(t *testing.T) {
	w := NewWorld()
	a := w.Spawn(&Entity{Kind: KindNPC})
	b := w.Spawn(&Entity{Kind: KindBullet})

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, w.Len())
	assert.Nil(t, w.Player())

	p := w.Spawn(&Entity{Kind: KindPlayer})
	assert.Same(t, p, w.Player())
}

func TestWorldDestroyIsDeferred(t *testing.T) {
	w := NewWorld()
	e := w.Spawn(&Entity{Kind: KindNPC})

	w.RequestDestroy(e)
	assert.True(t, w.Contains(e), "entity must stay live until flush")
	assert.True(t, w.Pending(e))

	w.Flush()
	assert.False(t, w.Contains(e))
	assert.False(t, w.Pending(e))
	assert.Equal(t, 0, w.Len())
}

func TestWorldRequestDestroyIdempotent(t *testing.T) {
	w := NewWorld()
	keep := w.Spawn(&Entity{Kind: KindNPC})
	e := w.Spawn(&Entity{Kind: KindBullet})

	w.RequestDestroy(e)
	w.RequestDestroy(e)
	require.NotPanics(t, w.Flush)

	assert.Equal(t, 1, w.Len())
	assert.True(t, w.Contains(keep))

	// Asking again for an entity that is already gone is harmless.
	w.RequestDestroy(e)
	require.NotPanics(t, w.Flush)
	assert.Equal(t, 1, w.Len())
}

func TestWorldFlushPreservesOrder(t *testing.T) {
	w := NewWorld()
	var all []*Entity
	for i := 0; i < 6; i++ {
		all = append(all, w.Spawn(&Entity{Kind: KindNPC}))
	}

	w.RequestDestroy(all[4])
	w.RequestDestroy(all[1])
	w.Flush()

	live := w.Live()
	require.Len(t, live, 4)
	assert.Equal(t, []EntityID{all[0].ID, all[2].ID, all[3].ID, all[5].ID},
		[]EntityID{live[0].ID, live[1].ID, live[2].ID, live[3].ID})
}

func TestWorldForEachLiveToleratesDestroy(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 5; i++ {
		w.Spawn(&Entity{Kind: KindNPC})
	}

	visited := 0
	w.ForEachLive(func(e *Entity) {
		visited++
		w.RequestDestroy(e)
	})
	assert.Equal(t, 5, visited, "destroy requests must not skip entities")
	assert.Equal(t, 5, w.Len())

	w.Flush()
	assert.Equal(t, 0, w.Len())
}

func TestWorldForEachLiveVisitsSpawnsOnce(t *testing.T) {
	w := NewWorld()
	w.Spawn(&Entity{Kind: KindPlayer})
	w.Spawn(&Entity{Kind: KindNPC})

	visits := make(map[EntityID]int)
	w.ForEachLive(func(e *Entity) {
		visits[e.ID]++
		if e.Kind == KindPlayer {
			w.Spawn(&Entity{Kind: KindBullet})
		}
	})

	assert.Len(t, visits, 3)
	for id, n := range visits {
		assert.Equal(t, 1, n, "entity %d visited %d times", id, n)
	}
}

func TestWorldFlushDropsPlayer(t *testing.T) {
	w := NewWorld()
	p := w.Spawn(&Entity{Kind: KindPlayer})
	w.RequestDestroy(p)
	w.Flush()
	assert.Nil(t, w.Player())
}

func TestWorldCount(t *testing.T) {
	w := NewWorld()
	w.Spawn(&Entity{Kind: KindPlayer})
	w.Spawn(&Entity{Kind: KindNPC})
	w.Spawn(&Entity{Kind: KindNPC})
	w.Spawn(&Entity{Kind: KindBullet})

	assert.Equal(t, 1, w.Count(KindPlayer))
	assert.Equal(t, 2, w.Count(KindNPC))
	assert.Equal(t, 1, w.Count(KindBullet))
}
