package main

import "math"

const (
	BeamLength   = 340.0
	BeamLengthUp = 480.0
	BeamFocusMul = 0.6 // drain multiplier with the focus upgrade
	HazardGrace  = 0.25
)

// fireBeam runs one tick of the held hit-scan beam: drain fuel for the
// tick, sweep the segment against every hazard in range, then destroy all
// intersected hazards after the scan completes. Fresh fragments carry an
// age below HazardGrace and are excluded, so a scan never consumes its own
// splits.
func (s *Sim) fireBeam(ship *Entity, w *WeaponState, ps *PlayerState, in Input, dt float64) {
	if !in.Fire {
		s.beamOff(ship, w)
		return
	}

	drain := BeamDrainRate * dt
	if w.Has(UpgradeBeamFocus) {
		drain *= BeamFocusMul
	}
	if !ps.SpendFuel(drain) {
		// Fuel exhaustion cancels the beam the same way a release does
		s.beamOff(ship, w)
		return
	}

	if !w.BeamOn {
		w.BeamOn = true
		w.BeamStart = s.Now
		s.Emit(Event{Type: EvWeaponFired, ShipID: ship.ID, X: ship.X, Y: ship.Y})
	}
	ship.BeamOn = true

	length := BeamLength
	if w.Has(UpgradeBeamLength) {
		length = BeamLengthUp
	}
	cosR := math.Cos(ship.Rotation)
	sinR := math.Sin(ship.Rotation)
	x1 := ship.X + cosR*ship.W/2
	y1 := ship.Y + sinR*ship.W/2
	x2 := x1 + cosR*length
	y2 := y1 + sinR*length

	var hit []*Entity
	for _, h := range s.Store.InRadius(ship.X, ship.Y, length+ship.W, KindHazard) {
		if h.Age < HazardGrace {
			continue
		}
		if SegmentCircleIntersect(x1, y1, x2, y2, h.X, h.Y, CollisionRadius(h)) {
			hit = append(hit, h)
		}
	}
	// Destruction strictly after the full scan
	for _, h := range hit {
		if s.Store.Contains(h.ID) {
			s.DestroyHazard(h, ship)
		}
	}
}

func (s *Sim) beamOff(ship *Entity, w *WeaponState) {
	w.BeamOn = false
	ship.BeamOn = false
}
