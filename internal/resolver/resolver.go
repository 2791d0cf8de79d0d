package resolver

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mverbeek/firefight/internal/combat"
	"github.com/mverbeek/firefight/internal/engine"
	"github.com/mverbeek/firefight/internal/metrics"
	"github.com/mverbeek/firefight/internal/notifier"
	"github.com/mverbeek/firefight/internal/pubsub"
	"github.com/mverbeek/firefight/internal/weapons"
)

// ErrSelfAttack is returned when a user tries to fight themselves.
var ErrSelfAttack = errors.New("attacker and defender must be different users")

// New creates a new Resolver.
func New(store combat.CombatStore, notifier notifier.Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient, src engine.Source) *Resolver {
	return &Resolver{
		store:    store,
		notifier: notifier,
		metrics:  metrics,
		pubsub:   pubsub,
		src:      src,
	}
}

// ResolveFight runs one complete fight. An empty weaponName means the
// attacker grabs a random weapon from the catalog. With dryRun set, the
// outcome is computed and returned but nothing is recorded or announced.
func (r *Resolver) ResolveFight(attackerID, defenderID, weaponName string, dryRun bool) (*FightResult, error) {
	startTime := time.Now()

	if attackerID == defenderID {
		return nil, ErrSelfAttack
	}

	if weaponName == "" {
		weaponName = weapons.Random(r.src)
		log.Info("No weapon specified, picking at random", "weapon", weaponName, "attackerID", attackerID)
	} else {
		normalized, err := weapons.Normalize(weaponName)
		if err != nil {
			return nil, fmt.Errorf("weapon %q: %w", weaponName, err)
		}
		weaponName = normalized
	}

	attackerStats, err := r.store.GetUserStats(attackerID)
	if err != nil {
		r.metrics.IncStorageErrors()
		return nil, fmt.Errorf("failed to fetch attacker stats: %w", err)
	}
	defenderStats, err := r.store.GetUserStats(defenderID)
	if err != nil {
		r.metrics.IncStorageErrors()
		return nil, fmt.Errorf("failed to fetch defender stats: %w", err)
	}
	weaponStats, err := r.store.GetWeaponStats(attackerID, weaponName)
	if err != nil {
		r.metrics.IncStorageErrors()
		return nil, fmt.Errorf("failed to fetch weapon stats: %w", err)
	}

	winChance := engine.WinChance(attackerStats, defenderStats, weaponStats)
	attackerWon := engine.SampleOutcome(r.src, winChance)
	quip := weapons.FightQuip(r.src, attackerID, defenderID, weaponName, attackerWon)

	result := &FightResult{
		FightID:     uuid.New().String(),
		AttackerID:  attackerID,
		DefenderID:  defenderID,
		WeaponName:  weaponName,
		AttackerWon: attackerWon,
		WinChance:   winChance,
		Quip:        quip,
	}

	if dryRun {
		log.Info("[Dry Run] Would record fight",
			"attackerID", attackerID, "defenderID", defenderID, "weapon", weaponName, "attackerWon", attackerWon)
		return result, nil
	}

	if err := r.store.RecordFight(attackerID, defenderID, weaponName, attackerWon); err != nil {
		r.metrics.IncStorageErrors()
		return nil, fmt.Errorf("failed to record fight: %w", err)
	}

	fight := combat.Fight{
		ID:          result.FightID,
		AttackerID:  attackerID,
		DefenderID:  defenderID,
		WeaponName:  weaponName,
		AttackerWon: attackerWon,
		WinChance:   winChance,
		CreatedAt:   time.Now(),
	}
	// The fight already counted; a missing history row is an anomaly, not a failure.
	if err := r.store.InsertFight(fight); err != nil {
		r.metrics.IncStorageErrors()
		log.Error("Failed to insert fight history row", "error", err, "fightID", fight.ID)
	}

	if err := r.pubsub.SendMessage(pubsub.EventFightResolved, pubsub.FightResolvedEvent{
		FightID:     fight.ID,
		AttackerID:  attackerID,
		DefenderID:  defenderID,
		WeaponName:  weaponName,
		AttackerWon: attackerWon,
		WinChance:   winChance,
	}); err != nil {
		log.Error("Failed to publish fight-resolved event", "error", err, "fightID", fight.ID)
	}

	r.publishStatsUpdate(fight.ID, attackerID, defenderID)

	if err := r.notifier.SendCombatReport(fight, quip, dryRun); err != nil {
		log.Error("Failed to send combat report", "error", err, "fightID", fight.ID)
	}

	r.metrics.IncFightsResolved()
	r.metrics.ObserveFightDuration(time.Since(startTime).Seconds())
	log.Info("Resolved fight",
		"fightID", fight.ID, "attackerID", attackerID, "defenderID", defenderID,
		"weapon", weaponName, "attackerWon", attackerWon, "winChance", winChance)
	return result, nil
}

// publishStatsUpdate re-reads both users' counters and pushes them to
// subscribers. The fight already counted, so failures here only log.
func (r *Resolver) publishStatsUpdate(fightID, attackerID, defenderID string) {
	attacker, err := r.store.GetUserStats(attackerID)
	if err != nil {
		r.metrics.IncStorageErrors()
		log.Error("Failed to read attacker stats for stats-updated event", "error", err, "fightID", fightID)
		return
	}
	defender, err := r.store.GetUserStats(defenderID)
	if err != nil {
		r.metrics.IncStorageErrors()
		log.Error("Failed to read defender stats for stats-updated event", "error", err, "fightID", fightID)
		return
	}

	if err := r.pubsub.SendMessage(pubsub.EventStatsUpdated, pubsub.StatsUpdatedEvent{
		FightID:  fightID,
		Attacker: attacker,
		Defender: defender,
	}); err != nil {
		log.Error("Failed to publish stats-updated event", "error", err, "fightID", fightID)
	}
}

// UserRecord fetches a user's overall record plus their most used weapons.
func (r *Resolver) UserRecord(userID string, topWeapons int) (combat.UserStats, []combat.WeaponStats, error) {
	stats, err := r.store.GetUserStats(userID)
	if err != nil {
		r.metrics.IncStorageErrors()
		return combat.UserStats{}, nil, fmt.Errorf("failed to fetch user stats: %w", err)
	}
	weapons, err := r.store.GetTopWeapons(userID, topWeapons)
	if err != nil {
		r.metrics.IncStorageErrors()
		return combat.UserStats{}, nil, fmt.Errorf("failed to fetch top weapons: %w", err)
	}
	return stats, weapons, nil
}
