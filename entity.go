package main

import "math"

// EntityKind discriminates the entity union. Every switch over it lists all
// kinds so a new kind forces each call site to be revisited.
type EntityKind int

const (
	KindShip EntityKind = iota
	KindHazard
	KindBallistic
	KindGuided
	KindPickup
	KindPortalIn
	KindPortalOut
)

// EntityID is a never-reused handle. Holding an ID is a weak reference;
// validity is a Store membership check, never a saved pointer.
type EntityID uint64

// BenefitKind tags what a pickup grants on contact
type BenefitKind int

const (
	BenefitFuel BenefitKind = iota
	BenefitLife
	BenefitCredits
	BenefitWeapon
)

const (
	ShipSize         = 28.0
	ShipTurnSpeed    = 4.5 // radians/s
	ShipAccel        = 420.0
	ShipStrafeAccel  = 260.0
	ShipMaxSpeed     = 320.0
	ShipFriction     = 0.98 // velocity multiplier per tick
	ShipSpawnInvuln  = 3.0  // seconds of invulnerability after respawn
	ShipTrailLen     = 16
	PortalAnimTime   = 1.2  // seconds for a portal open/close animation
	PortalOutLinger  = 12.0 // unclaimed exit portal starts closing after this
	PickupLifespan   = 24.0 // collection deadline, seconds from spawn
	PickupSize       = 14.0
	PickupDriftSpeed = 35.0
)

// TrailPoint is one historical ship position kept for renderers
type TrailPoint struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// ArcSegment is one arc-discharge hop, kept for exactly one tick
type ArcSegment struct {
	X1 float64 `json:"x1" msgpack:"x1"`
	Y1 float64 `json:"y1" msgpack:"y1"`
	X2 float64 `json:"x2" msgpack:"x2"`
	Y2 float64 `json:"y2" msgpack:"y2"`
}

// Entity is the tagged union over every simulated object. Common fields are
// always valid; the remaining groups are only meaningful for the kinds noted.
type Entity struct {
	ID       EntityID
	Kind     EntityKind
	X, Y     float64
	VX, VY   float64
	W, H     float64 // extents
	Rotation float64
	Color    string
	Age      float64

	// ship
	InvulnFor  float64 // remaining invulnerability, seconds
	Thrusting  bool
	Strafing   bool
	BeamOn     bool
	Autonomous bool
	Arcs       []ArcSegment
	Trail      []TrailPoint

	// ballistic + guided
	OwnerID EntityID
	MaxLife float64

	// guided
	Accelerating bool
	Homing       bool

	// pickup
	Benefit    BenefitKind
	Deadline   float64 // max age before the pickup departs
	ExitPortal bool    // exit portal already created for this pickup

	// portal
	Progress     float64 // animation progress in [0, 1]
	Disappearing bool
	DisappearAt  float64 // age at which the close animation started
}

// Wraps reports whether the kind folds back onto the toroidal playfield.
// Projectiles and portals fly or sit outside the wrap rule.
func (k EntityKind) Wraps() bool {
	switch k {
	case KindShip, KindHazard, KindPickup:
		return true
	case KindBallistic, KindGuided, KindPortalIn, KindPortalOut:
		return false
	}
	return false
}

// NewShip creates a ship entity at the given position
func NewShip(x, y float64, autonomous bool) *Entity {
	color := "#58c4ff"
	if autonomous {
		color = "#ff9d42"
	}
	return &Entity{
		Kind:       KindShip,
		X:          x,
		Y:          y,
		W:          ShipSize,
		H:          ShipSize,
		Rotation:   randFloat() * 2 * math.Pi,
		Color:      color,
		InvulnFor:  ShipSpawnInvuln,
		Autonomous: autonomous,
	}
}

// NewPickup creates a pickup with a random benefit at the given position
// (normally where a portal-in just finished opening)
func NewPickup(x, y float64) *Entity {
	benefit := BenefitFuel
	colors := map[BenefitKind]string{
		BenefitFuel:    "#ffd23e",
		BenefitLife:    "#ff5d7e",
		BenefitCredits: "#7dffa8",
		BenefitWeapon:  "#c77dff",
	}
	switch r := randFloat(); {
	case r < 0.4:
		benefit = BenefitFuel
	case r < 0.6:
		benefit = BenefitCredits
	case r < 0.85:
		benefit = BenefitWeapon
	default:
		benefit = BenefitLife
	}
	return &Entity{
		Kind:     KindPickup,
		X:        x,
		Y:        y,
		W:        PickupSize,
		H:        PickupSize,
		Color:    colors[benefit],
		Benefit:  benefit,
		Deadline: PickupLifespan,
	}
}

// NewPortal creates a portal entity. kind must be KindPortalIn or
// KindPortalOut.
func NewPortal(kind EntityKind, x, y float64) *Entity {
	return &Entity{
		Kind:  kind,
		X:     x,
		Y:     y,
		W:     PickupSize * 2.5,
		H:     PickupSize * 2.5,
		Color: "#8be9fd",
	}
}
