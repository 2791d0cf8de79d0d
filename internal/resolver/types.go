package resolver

import (
	"github.com/mverbeek/firefight/internal/combat"
	"github.com/mverbeek/firefight/internal/engine"
	"github.com/mverbeek/firefight/internal/metrics"
	"github.com/mverbeek/firefight/internal/notifier"
	"github.com/mverbeek/firefight/internal/pubsub"
)

// Resolver orchestrates a single fight: stats in, outcome out, bookkeeping
// as a side effect.
type Resolver struct {
	store    combat.CombatStore
	notifier notifier.Notifier
	metrics  metrics.Metrics
	pubsub   pubsub.PubSubClient
	src      engine.Source
}

// FightResult is what the caller gets back from a resolved fight.
type FightResult struct {
	FightID     string  `json:"fight_id"`
	AttackerID  string  `json:"attacker_id"`
	DefenderID  string  `json:"defender_id"`
	WeaponName  string  `json:"weapon_name"`
	AttackerWon bool    `json:"attacker_won"`
	WinChance   float64 `json:"win_chance"`
	Quip        string  `json:"quip"`
}
