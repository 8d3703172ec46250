package main

const oobMargin = 40.0 // how far past the edge a non-wrapping entity may fly

// Store owns the canonical live-entity collection. All other components hold
// EntityIDs and re-validate them through Get/Contains. The Store is the only
// place entities are created or destroyed; during the expiry sweep both
// operations are deferred and drained once the sweep completes.
type Store struct {
	W, H float64

	entities map[EntityID]*Entity
	list     []*Entity // insertion order, drives deterministic iteration
	grid     *SpatialGrid
	nextID   EntityID

	sweeping      bool
	pendingSpawn  []*Entity
	pendingRemove []EntityID
}

// NewStore creates an empty store for a w x h playfield
func NewStore(w, h float64) *Store {
	return &Store{
		W:        w,
		H:        h,
		entities: make(map[EntityID]*Entity),
		grid:     NewSpatialGrid(w, h),
	}
}

// Add inserts an entity, assigns its ID and returns it. Adds requested
// mid-sweep are queued and applied after the sweep.
func (s *Store) Add(e *Entity) EntityID {
	s.nextID++
	e.ID = s.nextID
	if s.sweeping {
		s.pendingSpawn = append(s.pendingSpawn, e)
		return e.ID
	}
	s.entities[e.ID] = e
	s.list = append(s.list, e)
	return e.ID
}

// Remove deletes an entity by ID. A miss is a no-op: the holder had a stale
// reference. Removes requested mid-sweep are queued.
func (s *Store) Remove(id EntityID) {
	if s.sweeping {
		s.pendingRemove = append(s.pendingRemove, id)
		return
	}
	if _, ok := s.entities[id]; !ok {
		return
	}
	delete(s.entities, id)
	for i, e := range s.list {
		if e.ID == id {
			s.list = append(s.list[:i], s.list[i+1:]...)
			break
		}
	}
}

// Get returns the entity for id, or nil if it is no longer live
func (s *Store) Get(id EntityID) *Entity {
	return s.entities[id]
}

// Contains reports whether id refers to a live entity
func (s *Store) Contains(id EntityID) bool {
	_, ok := s.entities[id]
	return ok
}

// Len returns the number of live entities
func (s *Store) Len() int {
	return len(s.list)
}

// ByKind returns a snapshot slice of all live entities of the given kinds,
// in insertion order. The snapshot stays valid while the live collection
// mutates; callers must re-check Contains before acting on an element.
func (s *Store) ByKind(kinds ...EntityKind) []*Entity {
	var out []*Entity
	for _, e := range s.list {
		for _, k := range kinds {
			if e.Kind == k {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// CountKind returns the number of live entities of a kind
func (s *Store) CountKind(kind EntityKind) int {
	n := 0
	for _, e := range s.list {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// InRadius returns a snapshot of entities of the given kinds whose centers
// lie within radius of (x, y). Broad phase via the spatial grid, exact
// distance filter after.
func (s *Store) InRadius(x, y, radius float64, kinds ...EntityKind) []*Entity {
	var out []*Entity
	ids := s.grid.Query(x, y, radius, nil)
	for _, id := range ids {
		e := s.entities[id]
		if e == nil {
			continue
		}
		match := false
		for _, k := range kinds {
			if e.Kind == k {
				match = true
				break
			}
		}
		if !match {
			continue
		}
		if DistanceSq(e.X, e.Y, x, y) <= radius*radius {
			out = append(out, e)
		}
	}
	return out
}

// Integrate advances every entity one physics step: position by velocity,
// wrap fold for wrap-eligible kinds, and the per-kind timers (age, portal
// animation, ship invulnerability and trail).
func (s *Store) Integrate(dt float64) {
	s.grid.Clear()
	for _, e := range s.list {
		e.X += e.VX * dt
		e.Y += e.VY * dt
		e.Age += dt

		if e.Kind.Wraps() {
			if e.X < 0 {
				e.X += s.W
			} else if e.X >= s.W {
				e.X -= s.W
			}
			if e.Y < 0 {
				e.Y += s.H
			} else if e.Y >= s.H {
				e.Y -= s.H
			}
		}

		switch e.Kind {
		case KindShip:
			if e.InvulnFor > 0 {
				e.InvulnFor -= dt
				if e.InvulnFor < 0 {
					e.InvulnFor = 0
				}
			}
			e.Trail = append(e.Trail, TrailPoint{X: e.X, Y: e.Y})
			if len(e.Trail) > ShipTrailLen {
				e.Trail = e.Trail[1:]
			}
		case KindHazard:
			e.Rotation += 0.6 * dt // slow tumble
		case KindPortalIn:
			e.Progress += dt / PortalAnimTime
		case KindPortalOut:
			if e.Disappearing {
				e.Progress += dt / PortalAnimTime
			}
		case KindBallistic, KindGuided, KindPickup:
			// aging only
		}

		s.grid.Insert(e.X, e.Y, e.ID)
	}
}

// expired is the per-kind lifetime predicate used by the sweep
func (s *Store) expired(e *Entity) bool {
	switch e.Kind {
	case KindBallistic, KindGuided:
		if e.Age >= e.MaxLife {
			return true
		}
		return e.X < -oobMargin || e.X > s.W+oobMargin ||
			e.Y < -oobMargin || e.Y > s.H+oobMargin
	case KindPortalIn:
		return e.Progress >= 1
	case KindPortalOut:
		return e.Disappearing && e.Progress >= 1
	case KindPickup:
		return e.Age >= e.Deadline
	case KindShip, KindHazard:
		return false
	}
	return false
}

// Expire sweeps out entities whose lifetime predicate holds. A completed
// entry portal leaves a pickup behind; the spawn is queued, never applied
// mid-sweep, and drained with the other deferred actions afterwards.
func (s *Store) Expire() {
	s.sweeping = true
	for _, e := range s.ByKind(KindShip, KindHazard, KindBallistic, KindGuided, KindPickup, KindPortalIn, KindPortalOut) {
		// Unclaimed exit portals start closing on their own
		if e.Kind == KindPortalOut && !e.Disappearing && e.Age >= PortalOutLinger {
			e.Disappearing = true
			e.DisappearAt = e.Age
		}
		if !s.expired(e) {
			continue
		}
		if e.Kind == KindPortalIn {
			s.Add(NewPickup(e.X, e.Y))
		}
		s.Remove(e.ID)
	}
	s.sweeping = false
	s.drainPending()
}

func (s *Store) drainPending() {
	for _, id := range s.pendingRemove {
		s.Remove(id)
	}
	s.pendingRemove = s.pendingRemove[:0]
	for _, e := range s.pendingSpawn {
		s.entities[e.ID] = e
		s.list = append(s.list, e)
	}
	s.pendingSpawn = s.pendingSpawn[:0]
}
