package engine_test

import (
	"testing"

	"github.com/mverbeek/firefight/internal/combat"
	"github.com/mverbeek/firefight/internal/engine"
	"github.com/stretchr/testify/assert"
)

func TestWinChance_NoHistoryIsEven(t *testing.T) {
	// Both sides default to a 0.30 win rate, so the difference cancels and
	// zero confidence removes the user modifier entirely.
	chance := engine.WinChance(combat.UserStats{}, combat.UserStats{}, combat.WeaponStats{})
	assert.Equal(t, 0.50, chance)
}

func TestWinChance_DominantAttacker(t *testing.T) {
	attacker := combat.UserStats{Wins: 20, Losses: 0, TotalFights: 20}
	defender := combat.UserStats{Wins: 0, Losses: 20, TotalFights: 20}

	// Full confidence on both sides, win-rate diff of 1.0: the user modifier
	// saturates its +0.20 clamp and the unused weapon contributes nothing.
	chance := engine.WinChance(attacker, defender, combat.WeaponStats{})
	assert.InDelta(t, 0.70, chance, 1e-12)
}

func TestWinChance_DominantDefender(t *testing.T) {
	attacker := combat.UserStats{Wins: 0, Losses: 20, TotalFights: 20}
	defender := combat.UserStats{Wins: 20, Losses: 0, TotalFights: 20}

	chance := engine.WinChance(attacker, defender, combat.WeaponStats{})
	assert.InDelta(t, 0.30, chance, 1e-12)
}

func TestWinChance_WeaponProficiency(t *testing.T) {
	// 50% overall, perfect record on the weapon with full weapon confidence:
	// relative 0.5 * 0.20 * 1.0 = +0.10.
	attacker := combat.UserStats{Wins: 10, Losses: 10, TotalFights: 20}
	defender := combat.UserStats{Wins: 10, Losses: 10, TotalFights: 20}
	weapon := combat.WeaponStats{Uses: 10, Wins: 10}

	chance := engine.WinChance(attacker, defender, weapon)
	assert.InDelta(t, 0.60, chance, 1e-12)
}

func TestWinChance_WeaponModifierClamped(t *testing.T) {
	// An extreme relative weapon win rate cannot push past +/-0.15.
	attacker := combat.UserStats{Wins: 0, Losses: 20, TotalFights: 20}
	defender := combat.UserStats{Wins: 0, Losses: 20, TotalFights: 20}
	weapon := combat.WeaponStats{Uses: 100, Wins: 100}

	chance := engine.WinChance(attacker, defender, weapon)
	assert.InDelta(t, 0.65, chance, 1e-12)
}

func TestWinChance_LowSampleDiscounted(t *testing.T) {
	// One fight each: confidence is 1/20, so even a 100% vs 0% record moves
	// the needle only slightly.
	attacker := combat.UserStats{Wins: 1, Losses: 0, TotalFights: 1}
	defender := combat.UserStats{Wins: 0, Losses: 1, TotalFights: 1}

	chance := engine.WinChance(attacker, defender, combat.WeaponStats{})
	assert.InDelta(t, 0.50+1.0*0.25*0.05, chance, 1e-12)
}

func TestWinChance_AlwaysBounded(t *testing.T) {
	cases := []struct {
		attacker combat.UserStats
		defender combat.UserStats
		weapon   combat.WeaponStats
	}{
		{combat.UserStats{}, combat.UserStats{}, combat.WeaponStats{}},
		{combat.UserStats{Wins: 1000, TotalFights: 1000}, combat.UserStats{Losses: 1000, TotalFights: 1000}, combat.WeaponStats{Uses: 1000, Wins: 1000}},
		{combat.UserStats{Losses: 1000, TotalFights: 1000}, combat.UserStats{Wins: 1000, TotalFights: 1000}, combat.WeaponStats{Uses: 1000}},
		{combat.UserStats{Wins: 3, Losses: 4, TotalFights: 7}, combat.UserStats{}, combat.WeaponStats{Uses: 2, Wins: 1}},
	}

	for _, tc := range cases {
		chance := engine.WinChance(tc.attacker, tc.defender, tc.weapon)
		assert.GreaterOrEqual(t, chance, 0.10)
		assert.LessOrEqual(t, chance, 0.90)
	}
}

func TestSampleOutcome(t *testing.T) {
	src := engine.NewSeededSource(42)

	wins := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		if engine.SampleOutcome(src, 0.70) {
			wins++
		}
	}
	rate := float64(wins) / float64(trials)
	assert.InDelta(t, 0.70, rate, 0.02, "sampled win rate should track the probability")
}

func TestSampleOutcome_Extremes(t *testing.T) {
	src := engine.NewSeededSource(7)
	for i := 0; i < 100; i++ {
		assert.True(t, engine.SampleOutcome(src, 1.0))
		assert.False(t, engine.SampleOutcome(src, 0.0))
	}
}

func TestSeededSourceIsDeterministic(t *testing.T) {
	a := engine.NewSeededSource(99)
	b := engine.NewSeededSource(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(50), b.Intn(50))
	}
}
