package main

import (
	"testing"
)

func TestCannonFiresProjectile(t *testing.T) {
	s := newTestSim()
	s.Now = 10
	ship := addTestShip(s, 100, 100)
	w := s.Weapons[ship.ID]
	ps := s.Players[ship.ID]

	s.ProcessFire(ship, w, ps, Input{Fire: true, SelectWeapon: WeaponNone}, TickDT)

	shots := s.Store.ByKind(KindBallistic)
	if len(shots) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(shots))
	}
	p := shots[0]
	if abs(p.VX-CannonMuzzleVel) > 1e-9 || abs(p.VY) > 1e-9 {
		t.Errorf("stationary ship at rotation 0: expected velocity (%f,0), got (%f,%f)",
			CannonMuzzleVel, p.VX, p.VY)
	}
	if abs(p.X-(100+ShipSize/2)) > 1e-9 {
		t.Errorf("projectile should spawn at the ship nose, got X=%f", p.X)
	}
	if p.OwnerID != ship.ID {
		t.Error("projectile should carry its owner's ID")
	}
	if abs(ps.Fuel-(StartFuel-CannonFuelCost)) > 1e-9 {
		t.Errorf("expected fuel %f, got %f", StartFuel-CannonFuelCost, ps.Fuel)
	}
}

func TestCannonCooldownBlocksSecondShot(t *testing.T) {
	s := newTestSim()
	s.Now = 10
	ship := addTestShip(s, 100, 100)
	w := s.Weapons[ship.ID]
	ps := s.Players[ship.ID]

	in := Input{Fire: true, SelectWeapon: WeaponNone}
	s.ProcessFire(ship, w, ps, in, TickDT)
	s.ProcessFire(ship, w, ps, in, TickDT) // same instant, inside cooldown

	if got := s.Store.CountKind(KindBallistic); got != 1 {
		t.Errorf("second shot inside cooldown should be silent, got %d projectiles", got)
	}
	if abs(ps.Fuel-(StartFuel-CannonFuelCost)) > 1e-9 {
		t.Error("declined shot must not consume fuel")
	}

	s.Now += CannonCooldown
	s.ProcessFire(ship, w, ps, in, TickDT)
	if got := s.Store.CountKind(KindBallistic); got != 2 {
		t.Errorf("shot after cooldown should fire, got %d projectiles", got)
	}
}

func TestCannonBurstCap(t *testing.T) {
	s := newTestSim()
	s.Now = 10
	ship := addTestShip(s, 100, 100)
	w := s.Weapons[ship.ID]
	ps := s.Players[ship.ID]

	in := Input{Fire: true, SelectWeapon: WeaponNone}
	for i := 0; i < 12; i++ {
		s.ProcessFire(ship, w, ps, in, TickDT)
		s.Now += CannonCooldown
	}
	if got := s.Store.CountKind(KindBallistic); got != CannonBurstCap {
		t.Errorf("continuous press should cap at %d shots, got %d", CannonBurstCap, got)
	}

	// Release resets the burst
	s.ProcessFire(ship, w, ps, Input{SelectWeapon: WeaponNone}, TickDT)
	s.ProcessFire(ship, w, ps, in, TickDT)
	if got := s.Store.CountKind(KindBallistic); got != CannonBurstCap+1 {
		t.Errorf("press after release should fire again, got %d", got)
	}
}

func TestCannonDryOnFuel(t *testing.T) {
	s := newTestSim()
	s.Now = 10
	ship := addTestShip(s, 100, 100)
	w := s.Weapons[ship.ID]
	ps := s.Players[ship.ID]
	ps.Fuel = 0.5

	s.ProcessFire(ship, w, ps, Input{Fire: true, SelectWeapon: WeaponNone}, TickDT)

	if got := s.Store.CountKind(KindBallistic); got != 0 {
		t.Errorf("no fuel should mean no projectile, got %d", got)
	}
	if ps.Fuel != 0.5 {
		t.Errorf("declined shot must not touch fuel, got %f", ps.Fuel)
	}
	if w.LastFire != 0 {
		t.Error("declined shot must not reset the cooldown")
	}
}

func TestSelectLockedWeaponIgnored(t *testing.T) {
	w := NewWeaponState()
	w.Select(WeaponBeam)
	if w.Selected != WeaponCannon {
		t.Error("selecting a locked weapon should be ignored")
	}
}

func TestUnlockOrder(t *testing.T) {
	w := NewWeaponState()
	want := []WeaponKind{WeaponMissile, WeaponArc, WeaponBeam}
	for _, k := range want {
		w.UnlockNext()
		if !w.Unlocked[k] {
			t.Errorf("expected weapon %d unlocked next", k)
		}
	}
	// All unlocked: another unlock is a no-op
	w.UnlockNext()
	if w.UnlockedCount() != int(weaponCount) {
		t.Errorf("expected %d weapons unlocked, got %d", weaponCount, w.UnlockedCount())
	}
}

func TestSwitchBlockedMidBeam(t *testing.T) {
	s := newTestSim()
	s.Now = 10
	ship := addTestShip(s, 100, 100)
	w := s.Weapons[ship.ID]
	ps := s.Players[ship.ID]
	w.Unlocked[WeaponBeam] = true
	w.Unlocked[WeaponMissile] = true
	w.Selected = WeaponBeam
	w.BeamOn = true

	s.ProcessFire(ship, w, ps, Input{Fire: true, SelectWeapon: WeaponMissile}, TickDT)

	if w.Selected != WeaponBeam {
		t.Error("a held beam should block weapon switching until released")
	}
}
