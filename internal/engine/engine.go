// Package engine computes fight outcomes from combat statistics. WinChance is
// a pure function of its inputs; the only randomness lives in SampleOutcome
// and is injected through a Source.
package engine

import (
	"github.com/charmbracelet/log"
	"github.com/mverbeek/firefight/internal/combat"
)

const (
	baseChance = 0.50
	// A user with no history fights at a slight disadvantage.
	defaultWinRate = 0.30

	// Full confidence in a user's win rate after this many fights.
	userConfidenceFights = 20.0
	// Full confidence in a weapon's win rate after this many uses.
	weaponConfidenceUses = 10.0

	userModifierScale   = 0.25
	userModifierLimit   = 0.20
	weaponModifierScale = 0.20
	weaponModifierLimit = 0.15

	minChance = 0.10
	maxChance = 0.90
)

// WinChance returns the attacker's probability of winning, always within
// [0.10, 0.90]. It blends the two users' overall win rates, scaled by how
// much history backs them, with the attacker's proficiency on the chosen
// weapon relative to their overall record.
func WinChance(attacker, defender combat.UserStats, weapon combat.WeaponStats) float64 {
	attackerWR := winRateOrDefault(attacker)
	defenderWR := winRateOrDefault(defender)

	attackerConfidence := min(1.0, float64(attacker.TotalFights)/userConfidenceFights)
	defenderConfidence := min(1.0, float64(defender.TotalFights)/userConfidenceFights)
	avgConfidence := (attackerConfidence + defenderConfidence) / 2.0

	userModifier := (attackerWR - defenderWR) * userModifierScale * avgConfidence
	userModifier = clamp(userModifier, -userModifierLimit, userModifierLimit)

	weaponModifier := 0.0
	if weapon.Uses > 0 {
		relative := weapon.WinRate() - attackerWR
		weaponConfidence := min(1.0, float64(weapon.Uses)/weaponConfidenceUses)
		weaponModifier = relative * weaponModifierScale * weaponConfidence
		weaponModifier = clamp(weaponModifier, -weaponModifierLimit, weaponModifierLimit)
	}

	chance := clamp(baseChance+userModifier+weaponModifier, minChance, maxChance)

	log.Debug("Calculated win chance",
		"base", baseChance,
		"attackerWR", attackerWR,
		"defenderWR", defenderWR,
		"userModifier", userModifier,
		"weaponModifier", weaponModifier,
		"final", chance)
	return chance
}

// SampleOutcome draws once from src and reports whether the attacker wins.
func SampleOutcome(src Source, chance float64) bool {
	return src.Float64() < chance
}

func winRateOrDefault(u combat.UserStats) float64 {
	if u.TotalFights == 0 {
		return defaultWinRate
	}
	return u.WinRate()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
