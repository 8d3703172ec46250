package main

import (
	"testing"
)

func arcTestShip(s *Sim) (*Entity, *WeaponState, *PlayerState) {
	ship := addTestShip(s, 500, 500)
	w := s.Weapons[ship.ID]
	w.Unlocked[WeaponArc] = true
	w.Selected = WeaponArc
	return ship, w, s.Players[ship.ID]
}

func TestArcNoTargetIsFree(t *testing.T) {
	s := newTestSim()
	s.Now = 10
	ship, w, ps := arcTestShip(s)
	s.Store.Integrate(0)

	s.ProcessFire(ship, w, ps, Input{Fire: true, SelectWeapon: WeaponNone}, TickDT)

	if ps.Fuel != StartFuel {
		t.Errorf("a discharge with no target must not touch fuel, got %f", ps.Fuel)
	}
	if len(ship.Arcs) != 0 {
		t.Error("no target means no arc segments")
	}
	if w.LastFire != 0 {
		t.Error("a free decline must not start the cooldown")
	}
	dry := false
	for _, ev := range s.DrainEvents() {
		if ev.Type == EvDryFire {
			dry = true
		}
	}
	if !dry {
		t.Error("expected a dry-fire event")
	}
}

func TestArcStrikesNearestHazard(t *testing.T) {
	s := newTestSim()
	s.Now = 10
	ship, w, ps := arcTestShip(s)
	near := addTestHazard(s, 600, 500, 30)
	far := addTestHazard(s, 710, 500, 30)
	s.Store.Integrate(0)

	s.ProcessFire(ship, w, ps, Input{Fire: true, SelectWeapon: WeaponNone}, TickDT)

	if s.Store.Contains(near.ID) {
		t.Error("nearest hazard should be destroyed")
	}
	if !s.Store.Contains(far.ID) {
		t.Error("only the nearest hazard is struck without the chain upgrade")
	}
	if abs(ps.Fuel-(StartFuel-ArcFuelCost)) > 1e-9 {
		t.Errorf("expected fuel %f, got %f", StartFuel-ArcFuelCost, ps.Fuel)
	}
	if len(ship.Arcs) != 1 {
		t.Fatalf("expected one arc segment, got %d", len(ship.Arcs))
	}
	a := ship.Arcs[0]
	if a.X1 != 500 || a.Y1 != 500 || a.X2 != 600 || a.Y2 != 500 {
		t.Errorf("arc should run ship to target, got (%f,%f)-(%f,%f)", a.X1, a.Y1, a.X2, a.Y2)
	}
}

func TestArcChainHops(t *testing.T) {
	s := newTestSim()
	s.Now = 10
	ship, w, ps := arcTestShip(s)
	w.Upgrades[UpgradeArcChain] = true
	h1 := addTestHazard(s, 600, 500, 30)
	h2 := addTestHazard(s, 700, 500, 30)
	h3 := addTestHazard(s, 850, 500, 30)
	h4 := addTestHazard(s, 1000, 500, 30) // one hop too far down the chain
	s.Store.Integrate(0)

	s.ProcessFire(ship, w, ps, Input{Fire: true, SelectWeapon: WeaponNone}, TickDT)

	for _, h := range []*Entity{h1, h2, h3} {
		if s.Store.Contains(h.ID) {
			t.Errorf("hazard at X=%f should be consumed by the chain", h.X)
		}
	}
	if !s.Store.Contains(h4.ID) {
		t.Error("chain should stop after its maximum hops")
	}
	if len(ship.Arcs) != 3 {
		t.Errorf("expected 3 arc segments, got %d", len(ship.Arcs))
	}
}

func TestArcInsufficientFuelIsFree(t *testing.T) {
	s := newTestSim()
	s.Now = 10
	ship, w, ps := arcTestShip(s)
	ps.Fuel = ArcFuelCost / 2
	h := addTestHazard(s, 600, 500, 30)
	s.Store.Integrate(0)

	s.ProcessFire(ship, w, ps, Input{Fire: true, SelectWeapon: WeaponNone}, TickDT)

	if !s.Store.Contains(h.ID) {
		t.Error("an unfueled discharge must not destroy the target")
	}
	if ps.Fuel != ArcFuelCost/2 {
		t.Errorf("fuel must be untouched, got %f", ps.Fuel)
	}
	if w.LastFire != 0 {
		t.Error("the decline must not start the cooldown")
	}
	dry := false
	for _, ev := range s.DrainEvents() {
		if ev.Type == EvDryFire {
			dry = true
		}
	}
	if !dry {
		t.Error("expected a dry-fire event")
	}
}

func TestArcEdgeTriggered(t *testing.T) {
	s := newTestSim()
	s.Now = 10
	ship, w, ps := arcTestShip(s)
	addTestHazard(s, 600, 500, 30)
	addTestHazard(s, 650, 500, 30)
	s.Store.Integrate(0)

	held := Input{Fire: true, SelectWeapon: WeaponNone}
	s.ProcessFire(ship, w, ps, held, TickDT)
	s.Now += ArcCooldown * 2
	s.ProcessFire(ship, w, ps, held, TickDT)

	if got := s.Store.CountKind(KindHazard); got != 1 {
		t.Errorf("held trigger should discharge once, %d hazards left", got)
	}
}
