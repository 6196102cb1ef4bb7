package sim

// World owns every live entity. Destruction is requested during a tick and
// applied by Flush, so iteration never observes a shrinking live set.
type World struct {
	live    []*Entity
	alive   map[EntityID]struct{}
	pending []*Entity
	queued  map[EntityID]struct{}
	nextID  EntityID
	player  *Entity
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		live:   make([]*Entity, 0, 64),
		alive:  make(map[EntityID]struct{}),
		queued: make(map[EntityID]struct{}),
	}
}

// Spawn assigns the entity an ID and appends it to the live set.
// The returned pointer is the handle used for RequestDestroy.
func (w *World) Spawn(e *Entity) *Entity {
	w.nextID++
	e.ID = w.nextID
	w.live = append(w.live, e)
	w.alive[e.ID] = struct{}{}
	if e.Kind == KindPlayer {
		w.player = e
	}
	return e
}

// RequestDestroy queues the entity for removal at the next Flush.
// Repeated requests for the same entity are ignored.
func (w *World) RequestDestroy(e *Entity) {
	if _, ok := w.queued[e.ID]; ok {
		return
	}
	w.queued[e.ID] = struct{}{}
	w.pending = append(w.pending, e)
}

// Pending reports whether the entity is queued for removal.
func (w *World) Pending(e *Entity) bool {
	_, ok := w.queued[e.ID]
	return ok
}

// Flush removes every queued entity that is still live, preserving the
// order of the survivors, and empties the queue.
func (w *World) Flush() {
	if len(w.pending) == 0 {
		return
	}

	removed := 0
	for _, e := range w.pending {
		if _, ok := w.alive[e.ID]; !ok {
			continue
		}
		delete(w.alive, e.ID)
		if e == w.player {
			w.player = nil
		}
		removed++
	}

	if removed > 0 {
		kept := w.live[:0]
		for _, e := range w.live {
			if _, ok := w.alive[e.ID]; ok {
				kept = append(kept, e)
			}
		}
		// Drop references held past the new length.
		for i := len(kept); i < len(w.live); i++ {
			w.live[i] = nil
		}
		w.live = kept
	}

	w.pending = w.pending[:0]
	clear(w.queued)
}

// ForEachLive calls fn for every live entity in insertion order. Entities
// spawned by fn are appended and visited later in the same pass.
func (w *World) ForEachLive(fn func(e *Entity)) {
	for i := 0; i < len(w.live); i++ {
		fn(w.live[i])
	}
}

// Contains reports whether the entity is in the live set.
func (w *World) Contains(e *Entity) bool {
	_, ok := w.alive[e.ID]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.live)
}

// Live returns a copy of the live set in insertion order.
func (w *World) Live() []*Entity {
	out := make([]*Entity, len(w.live))
	copy(out, w.live)
	return out
}

// Player returns the live player, or nil.
func (w *World) Player() *Entity {
	return w.player
}

// Count returns the number of live entities of the given kind.
func (w *World) Count(k Kind) int {
	n := 0
	for _, e := range w.live {
		if e.Kind == k {
			n++
		}
	}
	return n
}
