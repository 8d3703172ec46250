package main

import "math"

const (
	MissileStartSpeed  = 90.0
	MissileAccel       = 640.0 // per second, toward the speed cap
	MissileMaxSpeed    = 460.0
	MissileMaxSpeedUp  = 620.0 // with the thrust upgrade
	MissileLife        = 3.2
	MissileSize        = 10.0
	MissileTurnRate    = 3.4 // radians/s while homing
	MissileHomingRange = 420.0
	MissileConeCos     = 0.5 // cos(60°) forward half-angle
	MissileProxRadius  = 26.0
	MissileBlastRadius = 95.0
)

// fireMissile spawns a guided projectile at low speed; acceleration and
// homing happen in AdvanceMissiles each tick
func (s *Sim) fireMissile(ship *Entity, w *WeaponState, ps *PlayerState, in Input) {
	if !in.Fire || w.wasFiring {
		return
	}
	if s.Now-w.LastFire < MissileCooldown {
		return
	}
	if !ps.SpendFuel(MissileFuelCost) {
		return
	}

	cosR := math.Cos(ship.Rotation)
	sinR := math.Sin(ship.Rotation)
	s.Store.Add(&Entity{
		Kind:         KindGuided,
		X:            ship.X + cosR*ship.W/2,
		Y:            ship.Y + sinR*ship.W/2,
		VX:           ship.VX + cosR*MissileStartSpeed,
		VY:           ship.VY + sinR*MissileStartSpeed,
		W:            MissileSize,
		H:            MissileSize,
		Rotation:     ship.Rotation,
		Color:        "#ff7ab8",
		OwnerID:      ship.ID,
		MaxLife:      MissileLife,
		Accelerating: true,
		Homing:       w.Has(UpgradeMissileHoming),
	})

	w.LastFire = s.Now
	s.Emit(Event{Type: EvWeaponFired, ShipID: ship.ID, X: ship.X, Y: ship.Y})
}

// AdvanceMissiles runs the continuous guided-projectile effects: constant
// acceleration toward the speed cap, bounded-rate homing, and
// self-detonation on max age or target proximity.
func (s *Sim) AdvanceMissiles(dt float64) {
	for _, m := range s.Store.ByKind(KindGuided) {
		if !s.Store.Contains(m.ID) {
			continue
		}

		speed := math.Hypot(m.VX, m.VY)
		if m.Accelerating {
			cap := MissileMaxSpeed
			// The owner's upgrade follows its weapon state; a dead owner
			// leaves the base cap
			if w := s.Weapons[m.OwnerID]; w != nil && w.Has(UpgradeMissileThrust) {
				cap = MissileMaxSpeedUp
			}
			speed += MissileAccel * dt
			if speed > cap {
				speed = cap
			}
		}

		if m.Homing {
			if t := s.homingTarget(m); t != nil {
				desired := math.Atan2(wrapDelta(t.Y-m.Y, s.Store.H), wrapDelta(t.X-m.X, s.Store.W))
				m.Rotation = TurnToward(m.Rotation, desired, MissileTurnRate*dt)
			}
		}

		m.VX = math.Cos(m.Rotation) * speed
		m.VY = math.Sin(m.Rotation) * speed

		if m.Age >= m.MaxLife || s.nearHazard(m, MissileProxRadius) {
			s.detonateMissile(m)
		}
	}
}

// homingTarget picks the nearest hazard inside the forward cone and homing
// range, or nil
func (s *Sim) homingTarget(m *Entity) *Entity {
	var best *Entity
	bestD2 := MissileHomingRange * MissileHomingRange
	for _, h := range s.Store.InRadius(m.X, m.Y, MissileHomingRange, KindHazard) {
		dx := wrapDelta(h.X-m.X, s.Store.W)
		dy := wrapDelta(h.Y-m.Y, s.Store.H)
		d2 := dx*dx + dy*dy
		if d2 >= bestD2 || d2 == 0 {
			continue
		}
		d := math.Sqrt(d2)
		dot := (dx*math.Cos(m.Rotation) + dy*math.Sin(m.Rotation)) / d
		if dot < MissileConeCos {
			continue
		}
		best = h
		bestD2 = d2
	}
	return best
}

func (s *Sim) nearHazard(m *Entity, radius float64) bool {
	return len(s.Store.InRadius(m.X, m.Y, radius, KindHazard)) > 0
}

// detonateMissile applies the area-of-effect destruction and removes the
// missile. Fragments spawned by the blast are outside the pre-blast
// snapshot, so they survive it.
func (s *Sim) detonateMissile(m *Entity) {
	owner := s.Store.Get(m.OwnerID)
	for _, h := range s.Store.InRadius(m.X, m.Y, MissileBlastRadius, KindHazard) {
		if !s.Store.Contains(h.ID) {
			continue
		}
		s.DestroyHazard(h, owner)
	}
	s.Store.Remove(m.ID)
	s.Emit(Event{Type: EvExplosion, ShipID: m.OwnerID, X: m.X, Y: m.Y})
}
