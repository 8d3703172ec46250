package main

// EventType labels a discrete gameplay event produced during a tick
type EventType int

const (
	EvScore EventType = iota
	EvLifeLost
	EvShipDestroyed
	EvPickupCollected
	EvPickupDestroyed
	EvWeaponFired
	EvDryFire // firing attempt that found no target or no fuel
	EvExplosion
	EvPortalClosed
)

// Event is one discrete outcome of a tick, consumed by collaborator
// subscribers (renderer particles, audio cues, score display). The core
// never reacts to its own events.
type Event struct {
	Type   EventType
	ShipID EntityID // ship the event concerns, 0 when none
	X, Y   float64
	Amount int // score delta, credits, etc.
}

// Emit queues an event for this tick
func (s *Sim) Emit(ev Event) {
	s.events = append(s.events, ev)
}

// DrainEvents returns all events queued since the last drain
func (s *Sim) DrainEvents() []Event {
	out := s.events
	s.events = nil
	return out
}
