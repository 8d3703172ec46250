package main

import (
	"encoding/json"
	"math"
)

// Client -> Server message types
const (
	MsgJoin     = "join"
	MsgLeave    = "leave"
	MsgInput    = "input"
	MsgCreate   = "create"
	MsgList     = "list"
	MsgRegister = "register"
	MsgLogin    = "login"
	MsgAuth     = "auth"
)

// Server -> Client message types
const (
	MsgState    = "state" // binary msgpack, everything else is JSON
	MsgWelcome  = "welcome"
	MsgEvent    = "event"
	MsgGameOver = "gameover"
	MsgSessions = "sessions"
	MsgCreated  = "created"
	MsgAuthOK   = "authok"
	MsgError    = "error"
)

// Envelope wraps all outgoing JSON messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope wraps incoming messages; the payload stays raw until the
// handler for its type decodes it
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// ClientInput is the control snapshot sent by a client
type ClientInput struct {
	Left    bool `json:"l"`
	Right   bool `json:"r"`
	Thrust  bool `json:"t"`
	Reverse bool `json:"rv"`
	StrafeL bool `json:"sl"`
	StrafeR bool `json:"sr"`
	Fire    bool `json:"f"`
	Weapon  int  `json:"w"` // -1 = no switch request
}

// ToInput converts wire input to a simulation input
func (ci ClientInput) ToInput() Input {
	sel := WeaponNone
	if ci.Weapon >= 0 && ci.Weapon < int(weaponCount) {
		sel = WeaponKind(ci.Weapon)
	}
	return Input{
		Left:         ci.Left,
		Right:        ci.Right,
		Thrust:       ci.Thrust,
		Reverse:      ci.Reverse,
		StrafeL:      ci.StrafeL,
		StrafeR:      ci.StrafeR,
		Fire:         ci.Fire,
		SelectWeapon: sel,
	}
}

// JoinMsg is sent when a player wants to join a session
type JoinMsg struct {
	Name      string `json:"name"`
	SessionID string `json:"sid"`
}

// CreateMsg is sent when a player wants to create a session
type CreateMsg struct {
	Name        string `json:"name"`
	SessionName string `json:"sname"`
}

// RegisterMsg creates an account
type RegisterMsg struct {
	Username string `json:"u"`
	Password string `json:"p"`
}

// LoginMsg authenticates with a password
type LoginMsg struct {
	Username string `json:"u"`
	Password string `json:"p"`
}

// AuthMsg authenticates with a stored token
type AuthMsg struct {
	Token string `json:"tok"`
}

// AuthOKMsg confirms authentication
type AuthOKMsg struct {
	PlayerID  int64  `json:"pid"`
	Username  string `json:"u"`
	Token     string `json:"tok"`
	Credits   int    `json:"cr"`
	BestScore int    `json:"bs"`
}

// EntityState is one entity in the broadcast snapshot. Kind-specific fields
// are omitted when zero.
type EntityState struct {
	ID      uint64       `json:"id" msgpack:"id"`
	Kind    int          `json:"k" msgpack:"k"`
	X       float64      `json:"x" msgpack:"x"`
	Y       float64      `json:"y" msgpack:"y"`
	VX      float64      `json:"vx" msgpack:"vx"`
	VY      float64      `json:"vy" msgpack:"vy"`
	R       float64      `json:"r" msgpack:"r"`
	W       float64      `json:"w" msgpack:"w"`
	H       float64      `json:"h" msgpack:"h"`
	Color   string       `json:"c" msgpack:"c"`
	Invuln  bool         `json:"iv,omitempty" msgpack:"iv,omitempty"`
	Thrust  bool         `json:"th,omitempty" msgpack:"th,omitempty"`
	Beam    bool         `json:"bm,omitempty" msgpack:"bm,omitempty"`
	Bot     bool         `json:"bot,omitempty" msgpack:"bot,omitempty"`
	Arcs    []ArcSegment `json:"arc,omitempty" msgpack:"arc,omitempty"`
	Trail   []TrailPoint `json:"tr,omitempty" msgpack:"tr,omitempty"`
	Benefit int          `json:"bf,omitempty" msgpack:"bf,omitempty"`
	Prog    float64      `json:"pg,omitempty" msgpack:"pg,omitempty"`
	Closing bool         `json:"cl,omitempty" msgpack:"cl,omitempty"`
}

// PilotHUD is the per-player progression slice of the snapshot
type PilotHUD struct {
	ShipID  uint64  `json:"id" msgpack:"id"`
	Name    string  `json:"n" msgpack:"n"`
	Fuel    float64 `json:"fu" msgpack:"fu"`
	Lives   int     `json:"lv" msgpack:"lv"`
	Score   int     `json:"sc" msgpack:"sc"`
	Credits int     `json:"cr" msgpack:"cr"`
	Weapon  int     `json:"w" msgpack:"w"`
}

// GameState is the full snapshot broadcast as binary msgpack
type GameState struct {
	Entities []EntityState `json:"e" msgpack:"e"`
	Pilots   []PilotHUD    `json:"p" msgpack:"p"`
	Tick     uint64        `json:"tick" msgpack:"tick"`
}

// EventMsg carries one drained simulation event to clients
type EventMsg struct {
	Type   int     `json:"ty"`
	ShipID uint64  `json:"id,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Amount int     `json:"a,omitempty"`
}

// WelcomeMsg is sent to a player when they join
type WelcomeMsg struct {
	ShipID uint64 `json:"id"`
	SID    string `json:"sid"`
}

// GameOverMsg notifies a player their last ship was lost
type GameOverMsg struct {
	Score   int `json:"sc"`
	Credits int `json:"cr"`
}

// SessionInfo is used in the session list
type SessionInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Players int    `json:"players"`
}

// ErrorMsg sends an error to the client
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// snapshotEntity flattens an entity for the wire
func snapshotEntity(e *Entity) EntityState {
	es := EntityState{
		ID:    uint64(e.ID),
		Kind:  int(e.Kind),
		X:     round1(e.X),
		Y:     round1(e.Y),
		VX:    round1(e.VX),
		VY:    round1(e.VY),
		R:     math.Round(e.Rotation*100) / 100,
		W:     e.W,
		H:     e.H,
		Color: e.Color,
	}
	switch e.Kind {
	case KindShip:
		es.Invuln = e.InvulnFor > 0
		es.Thrust = e.Thrusting
		es.Beam = e.BeamOn
		es.Bot = e.Autonomous
		es.Arcs = e.Arcs
		es.Trail = e.Trail
	case KindPickup:
		es.Benefit = int(e.Benefit)
	case KindPortalIn, KindPortalOut:
		es.Prog = e.Progress
		es.Closing = e.Disappearing
	case KindBallistic, KindGuided, KindHazard:
		// common fields only
	}
	return es
}
