package engine

// CalculateWinChances converts two team strengths into per-trial
// scoring probabilities. Teams above the pairing's average strength
// gain probability at ModifierAbove per strength point, teams below it
// lose probability at the slower ModifierBelow rate, which gives weak
// teams some upset resistance. When both strengths are zero the linear
// model degenerates, so the pairing falls back to an even split.
// Results are clamped to [0, 1].
func CalculateWinChances(a, b TeamStrength) (chanceA, chanceB float64) {
	if a.TotalStrength == 0 && b.TotalStrength == 0 {
		return EvenWinChance, EvenWinChance
	}

	average := (float64(a.TotalStrength) + float64(b.TotalStrength)) / 2
	return trialChance(float64(a.TotalStrength), average), trialChance(float64(b.TotalStrength), average)
}

func trialChance(strength, average float64) float64 {
	diff := strength - average
	var chance float64
	if diff >= 0 {
		chance = BaseWinChance/100 + diff*ModifierAbove/100
	} else {
		chance = BaseWinChance/100 - (-diff)*ModifierBelow/100
	}
	return clampChance(chance)
}

func clampChance(chance float64) float64 {
	if chance < 0 {
		return 0
	}
	if chance > 1 {
		return 1
	}
	return chance
}
