package main

import (
	"testing"
)

func TestInvulnerableShipIgnoresHazard(t *testing.T) {
	s := newTestSim()
	ship := addTestShip(s, 500, 500)
	ship.InvulnFor = 2
	h := addTestHazard(s, 505, 500, 40)

	s.Resolve()

	if s.Players[ship.ID].Lives != StartLives {
		t.Error("invulnerable ship must not lose a life")
	}
	if !s.Store.Contains(h.ID) {
		t.Error("hazard should survive the grazed contact")
	}
}

func TestShipCrashRespawnsAtCenter(t *testing.T) {
	s := newTestSim()
	ship := addTestShip(s, 500, 500)
	ship.VX = 100
	addTestHazard(s, 505, 500, 40)

	s.Resolve()

	ps := s.Players[ship.ID]
	if ps.Lives != StartLives-1 {
		t.Errorf("expected %d lives after crash, got %d", StartLives-1, ps.Lives)
	}
	if ship.X != s.Store.W/2 || ship.Y != s.Store.H/2 {
		t.Errorf("ship should respawn at center, got (%f,%f)", ship.X, ship.Y)
	}
	if ship.VX != 0 || ship.VY != 0 {
		t.Error("respawned ship should be stationary")
	}
	if ship.InvulnFor != ShipSpawnInvuln {
		t.Errorf("respawn should grant %f invulnerability, got %f", ShipSpawnInvuln, ship.InvulnFor)
	}
}

func TestShipOutOfLivesLeaves(t *testing.T) {
	s := newTestSim()
	ship := addTestShip(s, 500, 500)
	s.Players[ship.ID].Lives = 1
	s.Players[ship.ID].Score = 120
	addTestHazard(s, 505, 500, 40)

	s.Resolve()

	if s.Store.Contains(ship.ID) {
		t.Error("ship with no lives left should be removed")
	}
	if s.Weapons[ship.ID] != nil {
		t.Error("weapon state should go with the ship")
	}
	// Final score stays readable until explicitly retired
	if ps := s.Players[ship.ID]; ps == nil || ps.Score != 120 {
		t.Error("progression must survive until the destroyed event is consumed")
	}

	destroyed := false
	for _, ev := range s.DrainEvents() {
		if ev.Type == EvShipDestroyed && ev.ShipID == ship.ID {
			destroyed = true
		}
	}
	if !destroyed {
		t.Error("expected a ship-destroyed event")
	}

	s.RetirePlayer(ship.ID)
	if s.Players[ship.ID] != nil {
		t.Error("retire should drop the progression entry")
	}
}

func TestProjectileDestroysHazard(t *testing.T) {
	s := newTestSim()
	ship := addTestShip(s, 100, 100)
	p := &Entity{Kind: KindBallistic, X: 500, Y: 500, W: 6, H: 6, OwnerID: ship.ID, MaxLife: 1.4}
	s.Store.Add(p)
	h := addTestHazard(s, 505, 500, 30)

	s.Resolve()

	if s.Store.Contains(p.ID) || s.Store.Contains(h.ID) {
		t.Error("projectile and hazard should both be consumed")
	}
	if s.Players[ship.ID].Score != HazardScoreSmall {
		t.Errorf("owner should be credited %d, got %d", HazardScoreSmall, s.Players[ship.ID].Score)
	}
}

func TestShootingPickupCostsScore(t *testing.T) {
	s := newTestSim()
	ship := addTestShip(s, 100, 100)
	s.Players[ship.ID].Score = 20
	p := &Entity{Kind: KindBallistic, X: 600, Y: 600, W: 6, H: 6, OwnerID: ship.ID, MaxLife: 1.4}
	s.Store.Add(p)
	pk := NewPickup(603, 600)
	s.Store.Add(pk)

	s.Resolve()

	if s.Store.Contains(pk.ID) {
		t.Error("shot pickup should be destroyed")
	}
	if got := s.Players[ship.ID].Score; got != 20-PickupShotPenalty {
		t.Errorf("expected score %d after penalty, got %d", 20-PickupShotPenalty, got)
	}
}

func TestScoreFloorsAtZero(t *testing.T) {
	ps := NewPlayerState("x")
	ps.Score = 5
	ps.AddScore(-PickupShotPenalty)
	if ps.Score != 0 {
		t.Errorf("score must floor at zero, got %d", ps.Score)
	}
}

func TestShipCollectsFuelPickup(t *testing.T) {
	s := newTestSim()
	ship := addTestShip(s, 500, 500)
	ps := s.Players[ship.ID]
	ps.Fuel = 50
	pk := NewPickup(505, 500)
	pk.Benefit = BenefitFuel
	s.Store.Add(pk)

	s.Resolve()

	if s.Store.Contains(pk.ID) {
		t.Error("collected pickup should be gone")
	}
	if abs(ps.Fuel-(50+FuelPickup)) > 1e-9 {
		t.Errorf("expected fuel %f, got %f", 50+FuelPickup, ps.Fuel)
	}
}

func TestFuelPickupClampsAtMax(t *testing.T) {
	s := newTestSim()
	ship := addTestShip(s, 500, 500)
	ps := s.Players[ship.ID]
	ps.Fuel = MaxFuel - 5
	pk := NewPickup(505, 500)
	pk.Benefit = BenefitFuel
	s.Store.Add(pk)

	s.Resolve()

	if ps.Fuel != MaxFuel {
		t.Errorf("fuel should clamp at %f, got %f", MaxFuel, ps.Fuel)
	}
}

func TestWeaponPickupUnlocks(t *testing.T) {
	s := newTestSim()
	ship := addTestShip(s, 500, 500)
	pk := NewPickup(505, 500)
	pk.Benefit = BenefitWeapon
	s.Store.Add(pk)

	s.Resolve()

	if !s.Weapons[ship.ID].Unlocked[WeaponMissile] {
		t.Error("weapon pickup should unlock the next weapon in preference order")
	}
}

func TestExitPortalClaimsPickupOnce(t *testing.T) {
	s := newTestSim()
	pk := NewPickup(500, 500)
	s.Store.Add(pk)
	po := NewPortal(KindPortalOut, 505, 500)
	s.Store.Add(po)

	s.Resolve()

	if s.Store.Contains(pk.ID) {
		t.Error("pickup within capture distance should be claimed")
	}
	if !po.Disappearing || po.Progress != 0 {
		t.Error("claiming portal should start closing from progress 0")
	}
	closed := 0
	for _, ev := range s.DrainEvents() {
		if ev.Type == EvPortalClosed {
			closed++
		}
	}
	if closed != 1 {
		t.Fatalf("expected one portal-closed event, got %d", closed)
	}

	// A second pass over the same tick state must not re-trigger
	s.Resolve()
	for _, ev := range s.DrainEvents() {
		if ev.Type == EvPortalClosed {
			t.Error("a closing portal must not claim again")
		}
	}
}

func TestClosingPortalIgnoresPickup(t *testing.T) {
	s := newTestSim()
	pk := NewPickup(500, 500)
	s.Store.Add(pk)
	po := NewPortal(KindPortalOut, 505, 500)
	po.Disappearing = true
	s.Store.Add(po)

	s.Resolve()

	if !s.Store.Contains(pk.ID) {
		t.Error("a closing portal must not claim pickups")
	}
}
