package main

import "math"

const (
	TickRate = 60
	TickDT   = 1.0 / float64(TickRate)
)

// Input is one tick's control snapshot for a ship, sourced from either a
// connected client or the autonomous pilot.
type Input struct {
	Left, Right  bool
	Thrust       bool
	Reverse      bool
	StrafeL      bool
	StrafeR      bool
	Fire         bool       // level-triggered; edges derived per weapon
	SelectWeapon WeaponKind // WeaponNone when no switch requested
}

// Sim is the simulation context: the entity store plus the per-owner state
// registries (weapons, pilots, progression). Exactly one writer mutates it:
// the Tick function. Collaborators consume snapshots and drained events.
type Sim struct {
	Store   *Store
	Weapons map[EntityID]*WeaponState
	Pilots  map[EntityID]*PilotState
	Players map[EntityID]*PlayerState
	Now     float64

	events []Event
}

// NewSim creates a simulation over a w x h playfield
func NewSim(w, h float64) *Sim {
	return &Sim{
		Store:   NewStore(w, h),
		Weapons: make(map[EntityID]*WeaponState),
		Pilots:  make(map[EntityID]*PilotState),
		Players: make(map[EntityID]*PlayerState),
	}
}

// AddShip creates a ship entity with its weapon state, progression and (for
// autonomous ships) a pilot
func (s *Sim) AddShip(ps *PlayerState, autonomous bool) *Entity {
	x := s.Store.W/4 + randFloat()*s.Store.W/2
	y := s.Store.H/4 + randFloat()*s.Store.H/2
	ship := NewShip(x, y, autonomous)
	id := s.Store.Add(ship)
	s.Weapons[id] = NewWeaponState()
	s.Players[id] = ps
	if autonomous {
		s.Pilots[id] = NewPilotState()
	}
	return ship
}

// RemoveShip removes a ship and all its per-owner state
func (s *Sim) RemoveShip(id EntityID) {
	s.Store.Remove(id)
	delete(s.Weapons, id)
	delete(s.Pilots, id)
	delete(s.Players, id)
}

// RetirePlayer drops a progression entry left behind by a destroyed ship
func (s *Sim) RetirePlayer(id EntityID) {
	delete(s.Players, id)
}

// Tick advances the simulation one frame. The phase order is load-bearing:
// physics before continuous weapon effects, pilots decide on fresh
// positions, firing before collision resolution, expiry strictly last so
// entities destroyed this tick are not separately aged out.
func (s *Sim) Tick(dt float64, inputs map[EntityID]Input) {
	s.Now += dt

	s.Store.Integrate(dt)
	s.AdvanceMissiles(dt)

	ships := s.Store.ByKind(KindShip)
	for _, ship := range ships {
		if p := s.Pilots[ship.ID]; p != nil {
			inputs[ship.ID] = s.DecidePilot(ship, p)
		}
	}

	for _, ship := range ships {
		if !s.Store.Contains(ship.ID) {
			continue
		}
		ship.Arcs = ship.Arcs[:0] // arcs render for exactly one tick
		in := inputs[ship.ID]
		s.steerShip(ship, in, dt)
		if w, ps := s.Weapons[ship.ID], s.Players[ship.ID]; w != nil && ps != nil {
			s.ProcessFire(ship, w, ps, in, dt)
		}
	}

	s.Resolve()
	s.Store.Expire()
}

// steerShip applies one tick of movement input to a ship
func (s *Sim) steerShip(ship *Entity, in Input, dt float64) {
	if in.Left {
		ship.Rotation -= ShipTurnSpeed * dt
	}
	if in.Right {
		ship.Rotation += ShipTurnSpeed * dt
	}
	ship.Rotation = NormalizeAngle(ship.Rotation)

	cosR := math.Cos(ship.Rotation)
	sinR := math.Sin(ship.Rotation)

	ship.Thrusting = in.Thrust
	if in.Thrust {
		ship.VX += cosR * ShipAccel * dt
		ship.VY += sinR * ShipAccel * dt
	} else if in.Reverse {
		ship.VX -= cosR * ShipAccel * 0.5 * dt
		ship.VY -= sinR * ShipAccel * 0.5 * dt
	}

	ship.Strafing = in.StrafeL || in.StrafeR
	if in.StrafeL {
		ship.VX += sinR * ShipStrafeAccel * dt
		ship.VY -= cosR * ShipStrafeAccel * dt
	}
	if in.StrafeR {
		ship.VX -= sinR * ShipStrafeAccel * dt
		ship.VY += cosR * ShipStrafeAccel * dt
	}

	ship.VX *= ShipFriction
	ship.VY *= ShipFriction

	speed := math.Hypot(ship.VX, ship.VY)
	if speed > ShipMaxSpeed {
		scale := ShipMaxSpeed / speed
		ship.VX *= scale
		ship.VY *= scale
	}
}
