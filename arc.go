package main

const (
	ArcRadius      = 240.0
	ArcRadiusUpMul = 1.5
	ArcChainRadius = 200.0
	ArcChainHops   = 2 // extra hops with the chain upgrade
)

// fireArc implements the chained area discharge. A press with no target in
// radius aborts before any fuel is touched; insufficient fuel is also free,
// but is only checked once a target is confirmed. Both declines surface as
// a dry-fire event for the audio collaborator, nothing else.
func (s *Sim) fireArc(ship *Entity, w *WeaponState, ps *PlayerState, in Input) {
	if !in.Fire || w.wasFiring {
		return
	}
	if s.Now-w.LastFire < ArcCooldown {
		return
	}

	radius := ArcRadius
	if w.Has(UpgradeArcRange) {
		radius *= ArcRadiusUpMul
	}
	target := s.nearestHazard(ship.X, ship.Y, radius, nil)
	if target == nil {
		s.Emit(Event{Type: EvDryFire, ShipID: ship.ID, X: ship.X, Y: ship.Y})
		return
	}
	if !ps.SpendFuel(ArcFuelCost) {
		s.Emit(Event{Type: EvDryFire, ShipID: ship.ID, X: ship.X, Y: ship.Y})
		return
	}
	w.LastFire = s.Now
	s.Emit(Event{Type: EvWeaponFired, ShipID: ship.ID, X: ship.X, Y: ship.Y})

	// First strike from the ship, then chain hops from each kill point
	ship.Arcs = append(ship.Arcs, ArcSegment{X1: ship.X, Y1: ship.Y, X2: target.X, Y2: target.Y})
	lastX, lastY := target.X, target.Y
	struck := map[EntityID]bool{target.ID: true}
	s.DestroyHazard(target, ship)

	if !w.Has(UpgradeArcChain) {
		return
	}
	for hop := 0; hop < ArcChainHops; hop++ {
		next := s.nearestHazard(lastX, lastY, ArcChainRadius, struck)
		if next == nil {
			return
		}
		ship.Arcs = append(ship.Arcs, ArcSegment{X1: lastX, Y1: lastY, X2: next.X, Y2: next.Y})
		lastX, lastY = next.X, next.Y
		struck[next.ID] = true
		s.DestroyHazard(next, ship)
	}
}

// nearestHazard returns the closest live hazard to (x, y) within radius,
// skipping IDs in exclude
func (s *Sim) nearestHazard(x, y, radius float64, exclude map[EntityID]bool) *Entity {
	var best *Entity
	bestD2 := radius * radius
	for _, h := range s.Store.InRadius(x, y, radius, KindHazard) {
		if exclude[h.ID] || !s.Store.Contains(h.ID) {
			continue
		}
		d2 := DistanceSq(h.X, h.Y, x, y)
		if d2 <= bestD2 {
			best = h
			bestD2 = d2
		}
	}
	return best
}
