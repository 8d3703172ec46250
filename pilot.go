package main

import "math"

// Behavior is the autonomous pilot's current mode
type Behavior int

const (
	BehaviorHunting Behavior = iota
	BehaviorAvoiding
	BehaviorCollecting
	BehaviorAssisting
)

const (
	PilotDecideEvery   = 0.25 // seconds between decisions, emulates reaction latency
	PilotSafeDistance  = 150.0
	PilotAssistDist    = 800.0
	PilotLowFuel       = 25.0
	PilotAimTolerance  = 0.12 // radians
	PilotFireRange     = 520.0
	PilotRotateOnly    = 0.9 // |aim error| above this: turn, don't thrust
	PilotStrafeBand    = 0.25
	PilotCloseRange    = 180.0
	PilotMediumHazLo   = 34.0 // preferred hazard size band for scoring
	PilotMediumHazHi   = 56.0
	PilotHumanPenaltyR = 300.0
)

// PilotState is the per-ship decision state. TargetID is a weak reference,
// re-validated through the store every cycle.
type PilotState struct {
	Behavior     Behavior
	TargetID     EntityID
	NextDecision float64
}

// NewPilotState starts a pilot hunting with no target
func NewPilotState() *PilotState {
	return &PilotState{Behavior: BehaviorHunting}
}

// DecidePilot produces this tick's synthetic input for an autonomous ship.
// State transitions happen on the decision interval; steering and firing
// run every tick against the current target.
func (s *Sim) DecidePilot(ship *Entity, p *PilotState) Input {
	if s.Now >= p.NextDecision {
		s.transitionPilot(ship, p)
		p.NextDecision = s.Now + PilotDecideEvery
	}
	return s.pilotInput(ship, p)
}

// transitionPilot re-evaluates the behavior state in priority order
func (s *Sim) transitionPilot(ship *Entity, p *PilotState) {
	ps := s.Players[ship.ID]
	w := s.Weapons[ship.ID]

	// 1. Imminent hazard always wins
	if h := s.nearestHazard(ship.X, ship.Y, PilotSafeDistance, nil); h != nil {
		p.Behavior = BehaviorAvoiding
		p.TargetID = h.ID
		return
	}

	// 2. Restock when running dry or under-armed
	pickups := s.Store.ByKind(KindPickup)
	needy := (ps != nil && ps.Fuel < PilotLowFuel) || (w != nil && w.UnlockedCount() < 2)
	if len(pickups) > 0 && needy {
		p.Behavior = BehaviorCollecting
		p.TargetID = nearestTo(ship, pickups, s.Store.W, s.Store.H)
		return
	}

	// 3. Hunt: keep a still-live target, otherwise pick the best-scoring one
	hazards := s.Store.ByKind(KindHazard)
	if len(hazards) > 0 {
		if p.Behavior == BehaviorHunting {
			if t := s.Store.Get(p.TargetID); t != nil && t.Kind == KindHazard {
				return
			}
		}
		p.Behavior = BehaviorHunting
		p.TargetID = s.bestHazardTarget(ship, hazards)
		return
	}

	// 4. Nothing to fight: regroup with the human ship if far away
	if human := s.humanShip(); human != nil &&
		Distance(ship.X, ship.Y, human.X, human.Y) > PilotAssistDist {
		p.Behavior = BehaviorAssisting
		p.TargetID = human.ID
		return
	}

	p.Behavior = BehaviorHunting
	p.TargetID = 0
}

// bestHazardTarget scores hazards by inverse distance, boosted for the
// medium size band and penalized near the human ship
func (s *Sim) bestHazardTarget(ship *Entity, hazards []*Entity) EntityID {
	human := s.humanShip()
	var bestID EntityID
	best := -1.0
	for _, h := range hazards {
		d := Distance(ship.X, ship.Y, h.X, h.Y)
		if d < 1 {
			d = 1
		}
		score := 1 / d
		size := math.Max(h.W, h.H)
		if size >= PilotMediumHazLo && size <= PilotMediumHazHi {
			score *= 1.5
		}
		if human != nil && Distance(h.X, h.Y, human.X, human.Y) < PilotHumanPenaltyR {
			score *= 0.4
		}
		if score > best {
			best = score
			bestID = h.ID
		}
	}
	return bestID
}

// humanShip returns the first non-autonomous ship, or nil
func (s *Sim) humanShip() *Entity {
	for _, e := range s.Store.ByKind(KindShip) {
		if !e.Autonomous {
			return e
		}
	}
	return nil
}

// nearestTo returns the ID of the wrap-aware nearest entity, or 0
func nearestTo(from *Entity, list []*Entity, worldW, worldH float64) EntityID {
	var bestID EntityID
	best := math.MaxFloat64
	for _, e := range list {
		dx := wrapDelta(e.X-from.X, worldW)
		dy := wrapDelta(e.Y-from.Y, worldH)
		d2 := dx*dx + dy*dy
		if d2 < best {
			best = d2
			bestID = e.ID
		}
	}
	return bestID
}

// pilotInput turns the current behavior and target into control flags
func (s *Sim) pilotInput(ship *Entity, p *PilotState) Input {
	var in Input
	in.SelectWeapon = WeaponNone

	target := s.Store.Get(p.TargetID) // may be stale; nil means coast
	if target == nil && p.Behavior != BehaviorHunting {
		return in
	}

	// Auto-switch to the best unlocked weapon unless mid-beam
	w := s.Weapons[ship.ID]
	ps := s.Players[ship.ID]
	if w != nil && !w.BeamOn {
		for _, k := range weaponPreference {
			if w.Unlocked[k] {
				if w.Selected != k {
					in.SelectWeapon = k
				}
				break
			}
		}
	}

	if target == nil {
		return in
	}

	dx := wrapDelta(target.X-ship.X, s.Store.W)
	dy := wrapDelta(target.Y-ship.Y, s.Store.H)
	dist := math.Hypot(dx, dy)
	toTarget := math.Atan2(dy, dx)

	desired := toTarget
	if p.Behavior == BehaviorAvoiding {
		desired = NormalizeAngle(toTarget + math.Pi)
	}

	err := NormalizeAngle(desired - ship.Rotation)
	if err > PilotAimTolerance/2 {
		in.Right = true
	} else if err < -PilotAimTolerance/2 {
		in.Left = true
	}

	absErr := math.Abs(err)
	switch p.Behavior {
	case BehaviorAvoiding:
		in.Thrust = absErr < PilotRotateOnly
	case BehaviorCollecting, BehaviorAssisting:
		in.Thrust = absErr < PilotRotateOnly && dist > PilotCloseRange/2
	case BehaviorHunting:
		if absErr < PilotRotateOnly && dist > PilotCloseRange {
			in.Thrust = true
		} else if absErr < PilotStrafeBand && dist <= PilotCloseRange {
			// Fine lateral correction instead of closing further
			if err > 0 {
				in.StrafeR = true
			} else {
				in.StrafeL = true
			}
		}
	}

	// Fire only at hazards, only when lined up and fueled
	if target.Kind == KindHazard && w != nil && ps != nil {
		aimErr := math.Abs(NormalizeAngle(toTarget - ship.Rotation))
		if aimErr < PilotAimTolerance && dist < PilotFireRange && ps.Fuel >= fuelNeed(w.Selected) {
			in.Fire = true
		}
	}
	return in
}
