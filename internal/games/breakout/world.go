package breakout

import "iter"

type slot struct {
	gen      uint32
	alive    bool
	collider Collider
}

// World owns all simulation state for one arena: the ball, the collider
// arena (paddle, walls, bricks), the scoreboard and the despawn queue.
// It is mutated only by the tick that owns it.
type World struct {
	Ball   Ball
	Score  Scoreboard
	Paddle PaddleLimits

	slots   []slot
	free    []uint32
	pending []EntityID
	paddle  EntityID
	bricks  int
}

// Spawn adds a collider and returns its handle.
func (w *World) Spawn(c Collider) EntityID {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.slots)) //#nosec G115 -- arena size is bounded by the brick grid
		w.slots = append(w.slots, slot{})
	}

	s := &w.slots[idx]
	s.gen++
	s.alive = true
	s.collider = c

	if c.Kind == KindBrick {
		w.bricks++
	}
	return EntityID{Index: idx, Gen: s.gen}
}

// Get resolves a handle. It returns false for stale or foreign handles.
func (w *World) Get(id EntityID) (*Collider, bool) {
	if int(id.Index) >= len(w.slots) {
		return nil, false
	}
	s := &w.slots[id.Index]
	if !s.alive || s.gen != id.Gen {
		return nil, false
	}
	return &s.collider, true
}

// Alive reports whether the handle refers to a live entity.
func (w *World) Alive(id EntityID) bool {
	_, ok := w.Get(id)
	return ok
}

// QueueDespawn schedules an entity for removal at the end of the tick.
// The entity stays queryable until Flush.
func (w *World) QueueDespawn(id EntityID) {
	w.pending = append(w.pending, id)
}

// Flush applies queued despawns and returns the handles actually removed.
// Handles queued twice, or already stale, are removed at most once.
func (w *World) Flush() []EntityID {
	if len(w.pending) == 0 {
		return nil
	}

	removed := make([]EntityID, 0, len(w.pending))
	for _, id := range w.pending {
		if !w.Alive(id) {
			continue
		}
		s := &w.slots[id.Index]
		if s.collider.Kind == KindBrick {
			w.bricks--
		}
		s.alive = false
		s.collider = Collider{}
		w.free = append(w.free, id.Index)
		removed = append(removed, id)
	}
	w.pending = w.pending[:0]
	return removed
}

// Colliders iterates live colliders in arena index order: the paddle, the
// four walls, then bricks row by row.
func (w *World) Colliders() iter.Seq2[EntityID, *Collider] {
	return func(yield func(EntityID, *Collider) bool) {
		for i := range w.slots {
			s := &w.slots[i]
			if !s.alive {
				continue
			}
			id := EntityID{Index: uint32(i), Gen: s.gen} //#nosec G115 -- bounded by len(slots)
			if !yield(id, &s.collider) {
				return
			}
		}
	}
}

// PaddleCollider returns the paddle. NewWorld guarantees it exists.
func (w *World) PaddleCollider() *Collider {
	c, _ := w.Get(w.paddle)
	return c
}

// BricksRemaining returns the number of live bricks.
func (w *World) BricksRemaining() int {
	return w.bricks
}
