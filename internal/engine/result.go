package engine

// CalculateMatchResult derives the scoreline and league points from a
// simulation. A strictly higher score earns PointsWin against
// PointsLoss; equal scores split PointsDraw each.
func CalculateMatchResult(home, away Team, sim MatchSimulation) MatchResult {
	result := MatchResult{
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
	}

	for _, event := range sim.Events {
		if event.Type != EventGoal {
			continue
		}
		switch event.Team {
		case homeSide:
			result.HomeScore++
		case awaySide:
			result.AwayScore++
		}
	}

	switch {
	case result.HomeScore > result.AwayScore:
		result.HomePoints = PointsWin
		result.AwayPoints = PointsLoss
	case result.HomeScore < result.AwayScore:
		result.HomePoints = PointsLoss
		result.AwayPoints = PointsWin
	default:
		result.HomePoints = PointsDraw
		result.AwayPoints = PointsDraw
	}

	return result
}
