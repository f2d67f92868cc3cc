package engine

import (
	"math/rand"
	"sort"
)

const (
	homeSide = 1
	awaySide = 2
)

// Simulator resolves matches from an injected random source. It is not
// safe for concurrent use; give each concurrent simulation its own
// Simulator (and rng), there is no other shared state.
type Simulator struct {
	rng     *rand.Rand
	scorers ScorerPicker
}

// SimulatorOption customizes a Simulator.
type SimulatorOption func(*Simulator)

// WithScorerPicker swaps the goal-credit policy.
func WithScorerPicker(p ScorerPicker) SimulatorOption {
	return func(s *Simulator) { s.scorers = p }
}

// NewSimulator creates a Simulator drawing from rng. A fixed seed
// reproduces an identical event sequence.
func NewSimulator(rng *rand.Rand, opts ...SimulatorOption) *Simulator {
	s := &Simulator{rng: rng, scorers: PointsWeightedPicker{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SimulateMatch runs the full pipeline for one pairing: strength
// evaluation, win chances, then TotalChancesPerTeam independent
// Bernoulli trials per team. Successful trials become goal events with
// a random minute and a credited scorer; failed trials are logged as
// non-scoring chance events for presentation. Events come back sorted
// by minute, home side first on equal minutes.
func (s *Simulator) SimulateMatch(home, away Team) MatchSimulation {
	homeStrength := EvaluateStrength(home)
	awayStrength := EvaluateStrength(away)
	homeChance, awayChance := CalculateWinChances(homeStrength, awayStrength)
	return s.simulate(home, away, homeChance, awayChance)
}

func (s *Simulator) simulate(home, away Team, homeChance, awayChance float64) MatchSimulation {
	events := make([]MatchEvent, 0, 2*TotalChancesPerTeam)

	events, homeGoals := s.runTrials(events, home, homeSide, homeChance)
	events, awayGoals := s.runTrials(events, away, awaySide, awayChance)

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Minute < events[j].Minute
	})

	return MatchSimulation{
		Events:          events,
		Team1Chances:    TotalChancesPerTeam,
		Team2Chances:    TotalChancesPerTeam,
		Team1Percentage: float64(homeGoals) / float64(TotalChancesPerTeam),
		Team2Percentage: float64(awayGoals) / float64(TotalChancesPerTeam),
	}
}

func (s *Simulator) runTrials(events []MatchEvent, team Team, side int, chance float64) ([]MatchEvent, int) {
	players := team.FieldedPlayers()
	goals := 0

	for trial := 0; trial < TotalChancesPerTeam; trial++ {
		event := MatchEvent{
			Minute: s.randomMinute(),
			Type:   EventChance,
			Team:   side,
		}
		if s.rng.Float64() < chance {
			event.Type = EventGoal
			if scorer, ok := s.scorers.Pick(s.rng, players); ok {
				event.PlayerID = scorer.ID
			}
			goals++
		}
		events = append(events, event)
	}
	return events, goals
}

func (s *Simulator) randomMinute() int {
	return s.rng.Intn(LastMatchMinute) + FirstMatchMinute
}
