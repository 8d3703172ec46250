package main

import "math"

const (
	MaxHazards       = 14
	MaxPickups       = 4
	HazardSpawnMin   = 2.0 // seconds between hazard waves
	HazardSpawnMax   = 5.0
	PickupSpawnMin   = 8.0
	PickupSpawnMax   = 16.0
	ExitPortalLead   = 6.0   // seconds before the deadline the exit portal opens
	ExitPortalOffset = 160.0 // how far from the pickup the exit portal appears
)

// Spawner is the external arrival collaborator: it feeds hazards and pickup
// portals into the store on randomized timers and opens exit portals as
// pickups approach their collection deadline. Pickups themselves are never
// spawned here; they appear when an entry portal's animation completes.
type Spawner struct {
	hazardIn float64
	pickupIn float64
}

// NewSpawner creates a spawner with staggered initial timers
func NewSpawner() *Spawner {
	return &Spawner{
		hazardIn: randRange(0.5, HazardSpawnMin),
		pickupIn: randRange(2.0, PickupSpawnMin),
	}
}

// Update runs one tick of spawning against the simulation
func (sp *Spawner) Update(s *Sim, dt float64) {
	w, h := s.Store.W, s.Store.H

	sp.hazardIn -= dt
	if sp.hazardIn <= 0 {
		sp.hazardIn = randRange(HazardSpawnMin, HazardSpawnMax)
		if s.Store.CountKind(KindHazard) < MaxHazards {
			s.Store.Add(NewHazardAtEdge(w, h))
		}
	}

	sp.pickupIn -= dt
	if sp.pickupIn <= 0 {
		sp.pickupIn = randRange(PickupSpawnMin, PickupSpawnMax)
		inFlight := s.Store.CountKind(KindPickup) + s.Store.CountKind(KindPortalIn)
		if inFlight < MaxPickups {
			x := randRange(0.1, 0.9) * w
			y := randRange(0.1, 0.9) * h
			s.Store.Add(NewPortal(KindPortalIn, x, y))
		}
	}

	// Open an exit portal once per pickup as its deadline nears, and send
	// the pickup drifting toward it
	for _, pk := range s.Store.ByKind(KindPickup) {
		if pk.ExitPortal || pk.Age < pk.Deadline-ExitPortalLead {
			continue
		}
		pk.ExitPortal = true
		angle := randFloat() * 2 * math.Pi
		px := Clamp(pk.X+math.Cos(angle)*ExitPortalOffset, 30, w-30)
		py := Clamp(pk.Y+math.Sin(angle)*ExitPortalOffset, 30, h-30)
		s.Store.Add(NewPortal(KindPortalOut, px, py))

		dir := math.Atan2(py-pk.Y, px-pk.X)
		pk.VX = math.Cos(dir) * PickupDriftSpeed
		pk.VY = math.Sin(dir) * PickupDriftSpeed
	}
}
