package pubsub

import (
	"cloud.google.com/go/pubsub"

	"github.com/mverbeek/firefight/internal/combat"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventFightResolved EventType = "fight-resolved"
	EventStatsUpdated  EventType = "stats-updated"
)

// FightResolvedEvent is the payload published after a fight is recorded.
type FightResolvedEvent struct {
	FightID     string  `msgpack:"fight_id"`
	AttackerID  string  `msgpack:"attacker_id"`
	DefenderID  string  `msgpack:"defender_id"`
	WeaponName  string  `msgpack:"weapon_name"`
	AttackerWon bool    `msgpack:"attacker_won"`
	WinChance   float64 `msgpack:"win_chance"`
}

// StatsUpdatedEvent carries both users' records as they stand after a fight
// has been counted.
type StatsUpdatedEvent struct {
	FightID  string           `msgpack:"fight_id"`
	Attacker combat.UserStats `msgpack:"attacker"`
	Defender combat.UserStats `msgpack:"defender"`
}
