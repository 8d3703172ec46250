package main

const (
	PickupShotPenalty = 15   // score lost for shooting a pickup
	PortalCaptureDist = 10.0 // center distance for a portal to claim a pickup
)

// Resolve runs all pairwise collision classes for one tick, in fixed order,
// over per-kind snapshots taken before anything mutates. The first matching
// pair per entity wins the tick (first in snapshot order, deliberately not
// nearest); everything later re-checks Store membership.
func (s *Sim) Resolve() {
	projectiles := s.Store.ByKind(KindBallistic, KindGuided)
	hazards := s.Store.ByKind(KindHazard)
	ships := s.Store.ByKind(KindShip)
	pickups := s.Store.ByKind(KindPickup)
	portals := s.Store.ByKind(KindPortalOut)

	resolved := make(map[EntityID]bool)
	live := func(e *Entity) bool {
		return !resolved[e.ID] && s.Store.Contains(e.ID)
	}

	// projectile x hazard
	for _, p := range projectiles {
		if !live(p) {
			continue
		}
		for _, h := range hazards {
			if !live(h) {
				continue
			}
			if !EntitiesOverlap(p, h) {
				continue
			}
			resolved[p.ID] = true
			resolved[h.ID] = true
			s.Store.Remove(p.ID)
			s.DestroyHazard(h, s.Store.Get(p.OwnerID))
			break
		}
	}

	// projectile x pickup: friendly-fire deterrent
	for _, p := range projectiles {
		if !live(p) {
			continue
		}
		for _, pk := range pickups {
			if !live(pk) {
				continue
			}
			if !EntitiesOverlap(p, pk) {
				continue
			}
			resolved[p.ID] = true
			resolved[pk.ID] = true
			s.Store.Remove(p.ID)
			s.Store.Remove(pk.ID)
			if ps := s.Players[p.OwnerID]; ps != nil {
				ps.AddScore(-PickupShotPenalty)
				s.Emit(Event{Type: EvScore, ShipID: p.OwnerID, X: pk.X, Y: pk.Y, Amount: -PickupShotPenalty})
			}
			s.Emit(Event{Type: EvPickupDestroyed, ShipID: p.OwnerID, X: pk.X, Y: pk.Y})
			break
		}
	}

	// ship x hazard
	for _, ship := range ships {
		if !live(ship) || ship.InvulnFor > 0 {
			continue
		}
		for _, h := range hazards {
			if !live(h) {
				continue
			}
			if !EntitiesOverlap(ship, h) {
				continue
			}
			resolved[ship.ID] = true
			resolved[h.ID] = true
			s.crashShip(ship)
			break
		}
	}

	// ship x pickup
	for _, ship := range ships {
		if !live(ship) {
			continue
		}
		for _, pk := range pickups {
			if !live(pk) {
				continue
			}
			if !EntitiesOverlap(ship, pk) {
				continue
			}
			resolved[ship.ID] = true
			resolved[pk.ID] = true
			s.Store.Remove(pk.ID)
			if ps := s.Players[ship.ID]; ps != nil {
				s.ApplyBenefit(ship, ps, pk.Benefit)
			}
			s.Emit(Event{Type: EvPickupCollected, ShipID: ship.ID, X: pk.X, Y: pk.Y, Amount: int(pk.Benefit)})
			break
		}
	}

	// pickup x portal-out: the portal claims the pickup and starts closing,
	// exactly once
	for _, pk := range pickups {
		if !live(pk) {
			continue
		}
		for _, po := range portals {
			if po.Disappearing || !s.Store.Contains(po.ID) {
				continue
			}
			if Distance(pk.X, pk.Y, po.X, po.Y) > PortalCaptureDist {
				continue
			}
			resolved[pk.ID] = true
			s.Store.Remove(pk.ID)
			po.Disappearing = true
			po.DisappearAt = po.Age
			po.Progress = 0
			s.Emit(Event{Type: EvPortalClosed, X: po.X, Y: po.Y})
			break
		}
	}
}

// crashShip applies a hazard contact: one life lost, respawn at the
// playfield center with spawn invulnerability. A ship out of lives leaves
// the simulation.
func (s *Sim) crashShip(ship *Entity) {
	ps := s.Players[ship.ID]
	if ps != nil {
		ps.Lives--
	}
	s.Emit(Event{Type: EvLifeLost, ShipID: ship.ID, X: ship.X, Y: ship.Y})

	if ps != nil && ps.Lives <= 0 {
		s.Emit(Event{Type: EvShipDestroyed, ShipID: ship.ID, X: ship.X, Y: ship.Y})
		// The progression entry stays behind so the collaborator can read
		// the final score; it retires the player when the event drains
		s.Store.Remove(ship.ID)
		delete(s.Weapons, ship.ID)
		delete(s.Pilots, ship.ID)
		return
	}

	ship.X = s.Store.W / 2
	ship.Y = s.Store.H / 2
	ship.VX = 0
	ship.VY = 0
	ship.InvulnFor = ShipSpawnInvuln
	ship.Trail = ship.Trail[:0]
}
