package main

import (
	"log"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	BroadcastRate  = 30 // state broadcasts per second
	TickDuration   = time.Second / TickRate
	BroadcastEvery = TickRate / BroadcastRate

	WorldWidth  = 2400.0
	WorldHeight = 1800.0

	maxPlayersPerSession = 8
	botShips             = 3 // autonomous ships kept in every session
)

// Broadcaster interface for sending messages to clients
type Broadcaster interface {
	SendJSON(msg interface{})
	SendBinary(data []byte)
}

// Game runs one session: the simulation plus its spawner, connected clients
// and their pending inputs. The tick goroutine is the only writer of the
// simulation; everything crossing in from the websocket side goes through
// the mutex-protected input map.
type Game struct {
	mu      sync.RWMutex
	sim     *Sim
	spawner *Spawner
	clients map[EntityID]Broadcaster
	inputs  map[EntityID]Input
	db      *DB
	tick    uint64
	running bool
	stop    chan struct{}
}

// NewGame creates a new Game
func NewGame(db *DB) *Game {
	return &Game{
		sim:     NewSim(WorldWidth, WorldHeight),
		spawner: NewSpawner(),
		clients: make(map[EntityID]Broadcaster),
		inputs:  make(map[EntityID]Input),
		db:      db,
		stop:    make(chan struct{}),
	}
}

// Run starts the game loop
func (g *Game) Run() {
	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.update()
		case <-g.stop:
			return
		}
	}
}

// Stop terminates the game loop
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		g.running = false
		close(g.stop)
	}
}

// AddPlayer adds a human-controlled ship. Returns 0 when the session is full.
func (g *Game) AddPlayer(name string, accountID int64, client Broadcaster) EntityID {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.humanCount() >= maxPlayersPerSession {
		return 0
	}
	ps := NewPlayerState(name)
	ps.AccountID = accountID
	if g.db != nil && accountID != 0 {
		if prog, err := g.db.LoadProgress(accountID); err == nil && prog != nil {
			ps.Credits = prog.Credits
		}
	}
	ship := g.sim.AddShip(ps, false)
	g.clients[ship.ID] = client
	return ship.ID
}

// RemovePlayer removes a player's ship and persists their progression
func (g *Game) RemovePlayer(id EntityID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.persistProgress(id)
	g.sim.RemoveShip(id)
	delete(g.clients, id)
	delete(g.inputs, id)
}

// HandleInput stores a client's latest control snapshot
func (g *Game) HandleInput(id EntityID, in Input) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.clients[id]; !ok {
		return
	}
	g.inputs[id] = in
}

// PlayerCount returns the number of human players
func (g *Game) PlayerCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.humanCount()
}

func (g *Game) humanCount() int {
	n := 0
	for _, e := range g.sim.Store.ByKind(KindShip) {
		if !e.Autonomous {
			n++
		}
	}
	return n
}

// update runs one game tick
func (g *Game) update() {
	g.mu.Lock()
	defer g.mu.Unlock()

	dt := TickDT
	g.tick++

	g.topUpBots()
	g.spawner.Update(g.sim, dt)

	// Copy held inputs; pilots overwrite their own entries inside Tick.
	// Weapon-select requests are one-shot.
	inputs := make(map[EntityID]Input, len(g.inputs))
	for id, in := range g.inputs {
		inputs[id] = in
		in.SelectWeapon = WeaponNone
		g.inputs[id] = in
	}

	g.sim.Tick(dt, inputs)
	g.dispatchEvents()

	if g.tick%BroadcastEvery == 0 {
		g.broadcastState()
	}
}

// topUpBots keeps the session populated with autonomous ships
func (g *Game) topUpBots() {
	bots := 0
	for _, e := range g.sim.Store.ByKind(KindShip) {
		if e.Autonomous {
			bots++
		}
	}
	for i := bots; i < botShips; i++ {
		g.sim.AddShip(NewPlayerState("Drone-"+GenerateID(2)), true)
	}
}

// dispatchEvents fans drained simulation events out to clients
func (g *Game) dispatchEvents() {
	for _, ev := range g.sim.DrainEvents() {
		msg := Envelope{T: MsgEvent, Data: EventMsg{
			Type:   int(ev.Type),
			ShipID: uint64(ev.ShipID),
			X:      round1(ev.X),
			Y:      round1(ev.Y),
			Amount: ev.Amount,
		}}
		for _, c := range g.clients {
			c.SendJSON(msg)
		}

		if ev.Type == EvShipDestroyed {
			g.persistProgress(ev.ShipID)
			if c, ok := g.clients[ev.ShipID]; ok {
				over := GameOverMsg{}
				if ps := g.sim.Players[ev.ShipID]; ps != nil {
					over.Score = ps.Score
					over.Credits = ps.Credits
				}
				c.SendJSON(Envelope{T: MsgGameOver, Data: over})
			}
			g.sim.RetirePlayer(ev.ShipID)
			delete(g.clients, ev.ShipID)
			delete(g.inputs, ev.ShipID)
		}
	}
}

// persistProgress writes credits and best score for registered accounts
func (g *Game) persistProgress(id EntityID) {
	ps := g.sim.Players[id]
	if ps == nil || ps.AccountID == 0 || g.db == nil {
		return
	}
	if err := g.db.SaveProgress(ps.AccountID, ps.Credits, ps.Score); err != nil {
		log.Printf("persist progress for %d: %v", ps.AccountID, err)
	}
}

// broadcastState sends the msgpack entity snapshot to all clients
func (g *Game) broadcastState() {
	state := GameState{Tick: g.tick}
	for _, e := range g.sim.Store.ByKind(KindShip, KindHazard, KindBallistic, KindGuided, KindPickup, KindPortalIn, KindPortalOut) {
		state.Entities = append(state.Entities, snapshotEntity(e))
	}
	for id, ps := range g.sim.Players {
		w := g.sim.Weapons[id]
		hud := PilotHUD{
			ShipID:  uint64(id),
			Name:    ps.Name,
			Fuel:    round1(ps.Fuel),
			Lives:   ps.Lives,
			Score:   ps.Score,
			Credits: ps.Credits,
		}
		if w != nil {
			hud.Weapon = int(w.Selected)
		}
		state.Pilots = append(state.Pilots, hud)
	}

	data, err := msgpack.Marshal(state)
	if err != nil {
		log.Printf("state marshal: %v", err)
		return
	}
	for _, c := range g.clients {
		c.SendBinary(data)
	}
}
