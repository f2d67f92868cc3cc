package engine

// EvaluateStrength derives the comparison value for one team: the sum
// of fielded player ratings plus the lenient chemistry bonus. An empty
// roster evaluates to zero across the board. WinChance stays zero
// until CalculateWinChances runs for a concrete pairing.
func EvaluateStrength(team Team) TeamStrength {
	players := team.FieldedPlayers()

	playerPoints := 0
	for _, p := range players {
		playerPoints += p.Points
	}
	chemistryPoints := TotalChemistry(players)

	return TeamStrength{
		TeamID:          team.ID,
		PlayerPoints:    playerPoints,
		ChemistryPoints: chemistryPoints,
		TotalStrength:   playerPoints + chemistryPoints,
	}
}
