package weapons

import "strings"

var winQuips = []string{
	"{attacker} flanks {defender} with their {weapon}, securing the objective!",
	"A quick burst from {attacker}'s {weapon} catches {defender} completely off guard!",
	"{attacker} pushes through smoke, eliminating {defender} point-blank with the {weapon}!",
	"Pinned down, {attacker} lands a perfect headshot on {defender} with the {weapon}.",
	"Suppressive fire from {attacker}'s {weapon} forces {defender} out of cover for the easy kill.",
	"Hearing footsteps, {attacker} pre-fires the corner with the {weapon}, catching {defender} mid-sprint.",
	"A well-thrown grenade from {attacker} weakens {defender}, allowing the {weapon} to finish the job.",
	"{attacker} holds the angle patiently, dropping {defender} with a single shot from the {weapon} as they peek.",
}

var lossQuips = []string{
	"{defender} anticipates {attacker}'s push and lands a decisive shot!",
	"{attacker}'s {weapon} jams at the critical moment, giving {defender} the advantage!",
	"Despite a valiant effort with the {weapon}, {attacker} is outmaneuvered by {defender}.",
	"{defender} gets the drop on {attacker} during a reload.",
	"A stray bullet from elsewhere takes {attacker} out while engaging {defender}.",
	"{attacker} checks the wrong corner and {defender} capitalizes on the mistake.",
	"Lag spike! {attacker} freezes just long enough for {defender} to react.",
	"{defender}'s teammate provides covering fire, allowing {defender} to win the duel against {attacker}.",
}

// FightQuip returns a randomly chosen description of the fight outcome.
func FightQuip(src interface{ Intn(n int) int }, attacker, defender, weaponName string, attackerWon bool) string {
	pool := lossQuips
	if attackerWon {
		pool = winQuips
	}
	quip := pool[src.Intn(len(pool))]

	replacer := strings.NewReplacer(
		"{attacker}", attacker,
		"{defender}", defender,
		"{weapon}", strings.ToUpper(weaponName),
	)
	return replacer.Replace(quip)
}
