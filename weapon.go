package main

import "math"

// WeaponKind identifies one of the four firing algorithms
type WeaponKind int

const (
	WeaponCannon WeaponKind = iota
	WeaponMissile
	WeaponBeam
	WeaponArc
	weaponCount

	WeaponNone WeaponKind = -1
)

// weaponPreference orders weapons from most to least desirable; used for
// pickup unlocks and the autonomous pilot's auto-switch
var weaponPreference = [weaponCount]WeaponKind{WeaponMissile, WeaponArc, WeaponBeam, WeaponCannon}

// UpgradeKind tags an acquired weapon modifier. Unknown tags fall through
// every switch to base values.
type UpgradeKind int

const (
	UpgradeRapidFire   UpgradeKind = iota // cannon cooldown -25%
	UpgradeHeavyShells                    // cannon size/color/lifetime
	UpgradeMissileThrust
	UpgradeMissileHoming
	UpgradeBeamFocus // reduced fuel drain
	UpgradeBeamLength
	UpgradeArcRange
	UpgradeArcChain
)

const (
	CannonCooldown  = 0.22
	CannonBurstCap  = 6 // shots per continuous press
	CannonFuelCost  = 1.0
	CannonMuzzleVel = 520.0
	CannonLife      = 1.4
	CannonSize      = 6.0

	MissileCooldown = 0.9
	MissileFuelCost = 4.0

	BeamDrainRate = 9.0 // fuel per second held

	ArcCooldown = 1.6
	ArcFuelCost = 6.0
)

// WeaponState is the per-owner firing state machine. One lives in the Sim
// registry per ship; subsystems receive it by reference, never through a
// global.
type WeaponState struct {
	Selected  WeaponKind
	Unlocked  [weaponCount]bool
	Upgrades  map[UpgradeKind]bool
	LastFire  float64 // timestamp of the last successful shot
	BurstUsed int     // shots spent in the current cannon press
	BeamOn    bool
	BeamStart float64
	wasFiring bool // previous tick's fire flag, for edge detection
}

// NewWeaponState starts with the cannon unlocked and selected
func NewWeaponState() *WeaponState {
	w := &WeaponState{
		Selected: WeaponCannon,
		Upgrades: make(map[UpgradeKind]bool),
	}
	w.Unlocked[WeaponCannon] = true
	return w
}

// Has reports whether an upgrade was acquired
func (w *WeaponState) Has(u UpgradeKind) bool {
	return w.Upgrades[u]
}

// Select switches the current weapon if it is unlocked
func (w *WeaponState) Select(k WeaponKind) {
	if k >= 0 && k < weaponCount && w.Unlocked[k] {
		w.Selected = k
	}
}

// UnlockNext unlocks the highest-priority still-locked weapon, if any
func (w *WeaponState) UnlockNext() {
	for _, k := range weaponPreference {
		if !w.Unlocked[k] {
			w.Unlocked[k] = true
			return
		}
	}
}

// UnlockedCount returns how many weapons are available
func (w *WeaponState) UnlockedCount() int {
	n := 0
	for _, u := range w.Unlocked {
		if u {
			n++
		}
	}
	return n
}

// fuelNeed returns the fuel required to start firing a weapon once
func fuelNeed(k WeaponKind) float64 {
	switch k {
	case WeaponCannon:
		return CannonFuelCost
	case WeaponMissile:
		return MissileFuelCost
	case WeaponBeam:
		return BeamDrainRate * TickDT
	case WeaponArc:
		return ArcFuelCost
	}
	return 0
}

// ProcessFire routes one tick of firing input for a ship. Every decline
// (cooldown, fuel, no target) is silent: no projectile, no fuel change, no
// cooldown reset.
func (s *Sim) ProcessFire(ship *Entity, w *WeaponState, ps *PlayerState, in Input, dt float64) {
	if in.SelectWeapon != WeaponNone {
		// A held beam keeps draining under its own weapon until released
		if !w.BeamOn {
			w.Select(in.SelectWeapon)
		}
	}

	switch w.Selected {
	case WeaponCannon:
		s.fireCannon(ship, w, ps, in)
	case WeaponMissile:
		s.fireMissile(ship, w, ps, in)
	case WeaponBeam:
		s.fireBeam(ship, w, ps, in, dt)
	case WeaponArc:
		s.fireArc(ship, w, ps, in)
	}
	w.wasFiring = in.Fire
}

// fireCannon implements the ballistic weapon: rate-limited, burst-capped
// per press, fixed fuel per shot
func (s *Sim) fireCannon(ship *Entity, w *WeaponState, ps *PlayerState, in Input) {
	if !in.Fire {
		w.BurstUsed = 0
		return
	}
	cooldown := CannonCooldown
	if w.Has(UpgradeRapidFire) {
		cooldown *= 0.75
	}
	if s.Now-w.LastFire < cooldown {
		return
	}
	if w.BurstUsed >= CannonBurstCap {
		return
	}
	if !ps.SpendFuel(CannonFuelCost) {
		return
	}

	size := CannonSize
	life := CannonLife
	color := "#fff6a8"
	if w.Has(UpgradeHeavyShells) {
		size *= 1.5
		life *= 1.5 // lifetime is effective range
		color = "#ffb347"
	}

	offset := ship.W / 2
	cosR := math.Cos(ship.Rotation)
	sinR := math.Sin(ship.Rotation)
	s.Store.Add(&Entity{
		Kind:     KindBallistic,
		X:        ship.X + cosR*offset,
		Y:        ship.Y + sinR*offset,
		VX:       ship.VX + cosR*CannonMuzzleVel,
		VY:       ship.VY + sinR*CannonMuzzleVel,
		W:        size,
		H:        size,
		Rotation: ship.Rotation,
		Color:    color,
		OwnerID:  ship.ID,
		MaxLife:  life,
	})

	w.LastFire = s.Now
	w.BurstUsed++
	s.Emit(Event{Type: EvWeaponFired, ShipID: ship.ID, X: ship.X, Y: ship.Y})
}
