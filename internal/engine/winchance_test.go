package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strengthOf(total int) TeamStrength {
	return TeamStrength{TotalStrength: total}
}

func TestCalculateWinChances(t *testing.T) {
	t.Run("both zero falls back to even split", func(t *testing.T) {
		a, b := CalculateWinChances(strengthOf(0), strengthOf(0))
		assert.Equal(t, EvenWinChance, a)
		assert.Equal(t, EvenWinChance, b)
	})

	t.Run("equal nonzero strengths sit at the base rate", func(t *testing.T) {
		a, b := CalculateWinChances(strengthOf(100), strengthOf(100))
		assert.InDelta(t, BaseWinChance/100, a, 1e-9)
		assert.Equal(t, a, b)
	})

	t.Run("asymmetric modifiers around the average", func(t *testing.T) {
		// Strengths 120 and 20, average 70: team one is 50 above,
		// team two 50 below.
		a, b := CalculateWinChances(strengthOf(120), strengthOf(20))
		assert.InDelta(t, 0.01+50*0.0005, a, 1e-9)
		assert.InDelta(t, 0.01-50*0.0001, b, 1e-9)
		assert.Greater(t, a, b)
	})

	t.Run("stronger team always has the higher chance", func(t *testing.T) {
		pairs := [][2]int{{10, 5}, {300, 299}, {1000, 1}, {55, 54}}
		for _, pair := range pairs {
			a, b := CalculateWinChances(strengthOf(pair[0]), strengthOf(pair[1]))
			assert.Greater(t, a, b, "strengths %v", pair)
		}
	})

	t.Run("extreme gaps clamp to the unit interval", func(t *testing.T) {
		a, b := CalculateWinChances(strengthOf(100000), strengthOf(0))
		assert.Equal(t, 1.0, a)
		assert.Equal(t, 0.0, b)
	})
}
