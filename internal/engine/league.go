package engine

// GenerateLeaguePairings builds the fixed 6-match round for a 4-team
// league: every unordered pair exactly once, numbered 1..6 in
// lexicographic order over the input slice. The earlier team of each
// pair plays at home. Any other team count fails with a
// *LeagueSizeError.
func GenerateLeaguePairings(teams []Team) ([]Pairing, error) {
	if len(teams) != LeagueSize {
		return nil, &LeagueSizeError{Got: len(teams)}
	}

	pairings := make([]Pairing, 0, LeagueMatchCount)
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			pairings = append(pairings, Pairing{
				MatchNumber: len(pairings) + 1,
				Home:        teams[i],
				Away:        teams[j],
			})
		}
	}
	return pairings, nil
}

// SimulateLeague drives every pairing of a 4-team league through the
// full pipeline and returns one record per match, carrying all
// intermediate artifacts for standings computation downstream.
func (s *Simulator) SimulateLeague(teams []Team) ([]LeagueMatchRecord, error) {
	pairings, err := GenerateLeaguePairings(teams)
	if err != nil {
		return nil, err
	}

	records := make([]LeagueMatchRecord, 0, len(pairings))
	for _, pairing := range pairings {
		homeStrength := EvaluateStrength(pairing.Home)
		awayStrength := EvaluateStrength(pairing.Away)
		homeStrength.WinChance, awayStrength.WinChance = CalculateWinChances(homeStrength, awayStrength)

		sim := s.simulate(pairing.Home, pairing.Away, homeStrength.WinChance, awayStrength.WinChance)
		result := CalculateMatchResult(pairing.Home, pairing.Away, sim)

		records = append(records, LeagueMatchRecord{
			MatchNumber:  pairing.MatchNumber,
			Home:         pairing.Home,
			Away:         pairing.Away,
			Simulation:   sim,
			Result:       result,
			HomeStrength: homeStrength,
			AwayStrength: awayStrength,
		})
	}
	return records, nil
}
