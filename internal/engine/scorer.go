package engine

import "math/rand"

// ScorerPicker selects which fielded player gets credited with a goal.
// The selection policy is pluggable so the weighting law can change
// without touching the simulation loop.
type ScorerPicker interface {
	Pick(rng *rand.Rand, players []Player) (Player, bool)
}

// PointsWeightedPicker credits goals proportionally to player rating,
// so stronger cards score disproportionately more. Players with a
// non-positive rating still get weight 1 to stay eligible.
type PointsWeightedPicker struct{}

func (PointsWeightedPicker) Pick(rng *rand.Rand, players []Player) (Player, bool) {
	if len(players) == 0 {
		return Player{}, false
	}

	total := 0
	for _, p := range players {
		total += playerWeight(p)
	}

	draw := rng.Intn(total)
	for _, p := range players {
		draw -= playerWeight(p)
		if draw < 0 {
			return p, true
		}
	}
	// Unreachable: the weights sum to total.
	return players[len(players)-1], true
}

func playerWeight(p Player) int {
	if p.Points <= 0 {
		return 1
	}
	return p.Points
}

// UniformPicker credits every fielded player equally. Used in tests
// and available as an alternative policy.
type UniformPicker struct{}

func (UniformPicker) Pick(rng *rand.Rand, players []Player) (Player, bool) {
	if len(players) == 0 {
		return Player{}, false
	}
	return players[rng.Intn(len(players))], true
}
