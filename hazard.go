package main

import "math"

const (
	HazardMinSize    = 26.0
	HazardMaxSize    = 72.0
	HazardMinSpeed   = 40.0
	HazardMaxSpeed   = 120.0
	HazardSplitSize  = 38.0 // below this, destruction leaves no fragments
	FragmentMinScale = 0.4
	FragmentMaxScale = 0.7
	FragmentSpeedMin = 60.0
	FragmentSpeedMax = 150.0
	FragmentJitter   = 0.25 // positional jitter as a fraction of parent size
	RepulsorStrength = 6.0  // fragment cone half-width = pi / this
	HazardScoreLarge = 20
	HazardScoreSmall = 10
)

var hazardColors = [...]string{"#9aa5b1", "#7b8794", "#b8c2cc", "#8e9aaf"}

// NewHazardAtEdge spawns a hazard at a random playfield edge heading inward
func NewHazardAtEdge(w, h float64) *Entity {
	size := randRange(HazardMinSize, HazardMaxSize)
	haz := &Entity{
		Kind:     KindHazard,
		W:        size,
		H:        size,
		Rotation: randFloat() * 2 * math.Pi,
		Color:    hazardColors[int(randFloat()*4)%len(hazardColors)],
	}

	speed := randRange(HazardMinSpeed, HazardMaxSpeed)
	var targetX, targetY float64
	switch edge := int(randFloat() * 4); edge {
	case 0: // left
		haz.X, haz.Y = 0, randFloat()*h
		targetX, targetY = w/2+randFloat()*w/2, randFloat()*h
	case 1: // right
		haz.X, haz.Y = w-1, randFloat()*h
		targetX, targetY = randFloat()*w/2, randFloat()*h
	case 2: // top
		haz.X, haz.Y = randFloat()*w, 0
		targetX, targetY = randFloat()*w, h/2+randFloat()*h/2
	default: // bottom
		haz.X, haz.Y = randFloat()*w, h-1
		targetX, targetY = randFloat()*w, randFloat()*h/2
	}
	angle := math.Atan2(targetY-haz.Y, targetX-haz.X)
	haz.VX = math.Cos(angle) * speed
	haz.VY = math.Sin(angle) * speed
	return haz
}

// FragmentHazard splits a destroyed hazard into 2-3 smaller pieces. Fragment
// velocity is biased away from the repulsor (the causing ship) inside a cone
// whose half-width is pi/RepulsorStrength; without a usable repulsor the
// direction is random.
func FragmentHazard(h *Entity, repulsor *Entity) []*Entity {
	if math.Max(h.W, h.H) <= HazardSplitSize {
		return nil
	}

	count := 2
	if randFloat() < 0.5 {
		count = 3
	}

	haveBearing := false
	var bearing float64
	if repulsor != nil {
		dx := h.X - repulsor.X
		dy := h.Y - repulsor.Y
		if dx != 0 || dy != 0 {
			bearing = math.Atan2(dy, dx)
			haveBearing = true
		}
	}

	frags := make([]*Entity, 0, count)
	for i := 0; i < count; i++ {
		scale := randRange(FragmentMinScale, FragmentMaxScale)
		size := math.Max(h.W, h.H) * scale

		var dir float64
		if haveBearing {
			dir = bearing + (randFloat()*2-1)*math.Pi/RepulsorStrength
		} else {
			dir = randFloat() * 2 * math.Pi
		}
		speed := randRange(FragmentSpeedMin, FragmentSpeedMax)

		jitter := math.Max(h.W, h.H) * FragmentJitter
		frags = append(frags, &Entity{
			Kind:     KindHazard,
			X:        h.X + (randFloat()*2-1)*jitter,
			Y:        h.Y + (randFloat()*2-1)*jitter,
			VX:       math.Cos(dir) * speed,
			VY:       math.Sin(dir) * speed,
			W:        size,
			H:        size,
			Rotation: randFloat() * 2 * math.Pi,
			Color:    h.Color,
		})
	}
	return frags
}

// DestroyHazard removes a hazard, spawns its fragments, credits the causing
// ship's score and emits the explosion. by may be nil (no score, random
// fragment scatter).
func (s *Sim) DestroyHazard(h *Entity, by *Entity) {
	s.Store.Remove(h.ID)
	for _, f := range FragmentHazard(h, by) {
		s.Store.Add(f)
	}

	score := HazardScoreSmall
	if math.Max(h.W, h.H) > HazardSplitSize {
		score = HazardScoreLarge
	}
	if by != nil {
		if ps := s.Players[by.ID]; ps != nil {
			ps.AddScore(score)
			s.Emit(Event{Type: EvScore, ShipID: by.ID, X: h.X, Y: h.Y, Amount: score})
		}
	}
	s.Emit(Event{Type: EvExplosion, X: h.X, Y: h.Y})
}
