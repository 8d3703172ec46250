package main

const (
	StartFuel    = 100.0
	MaxFuel      = 100.0
	StartLives   = 3
	FuelPickup   = 40.0
	CreditPickup = 25
)

// PlayerState is the live progression for one ship: fuel, lives, score and
// credits. The simulation reads and writes it; persistence belongs to the
// database collaborator keyed by AccountID.
type PlayerState struct {
	Name      string
	AccountID int64 // 0 = guest, nothing persisted
	Fuel      float64
	Lives     int
	Score     int
	Credits   int
}

// NewPlayerState creates a fresh progression
func NewPlayerState(name string) *PlayerState {
	return &PlayerState{
		Name:  name,
		Fuel:  StartFuel,
		Lives: StartLives,
	}
}

// SpendFuel deducts amount if available and reports success. Callers treat
// failure as a silent decline.
func (ps *PlayerState) SpendFuel(amount float64) bool {
	if ps.Fuel < amount {
		return false
	}
	ps.Fuel -= amount
	return true
}

// AddScore applies a (possibly negative) score delta, floored at zero
func (ps *PlayerState) AddScore(delta int) {
	ps.Score += delta
	if ps.Score < 0 {
		ps.Score = 0
	}
}

// ApplyBenefit grants a collected pickup's benefit to the ship's owner
func (s *Sim) ApplyBenefit(ship *Entity, ps *PlayerState, benefit BenefitKind) {
	switch benefit {
	case BenefitFuel:
		ps.Fuel = Clamp(ps.Fuel+FuelPickup, 0, MaxFuel)
	case BenefitLife:
		ps.Lives++
	case BenefitCredits:
		ps.Credits += CreditPickup
	case BenefitWeapon:
		if w := s.Weapons[ship.ID]; w != nil {
			w.UnlockNext()
		}
	}
}
