package slack

import (
	"fmt"
	"strings"

	"github.com/mverbeek/firefight/internal/combat"
	"github.com/slack-go/slack"
)

// formatCombatReport creates the Slack message for a resolved fight using Block Kit.
func (s *Notifier) formatCombatReport(fight combat.Fight, quip string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "💥 Combat Report! 💥", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject("plain_text", quip, true, false), nil, nil))

	winner, loser := fight.DefenderID, fight.AttackerID
	if fight.AttackerWon {
		winner, loser = fight.AttackerID, fight.DefenderID
	}
	outcomeText := fmt.Sprintf("Outcome: %s defeated %s\nAttacker: %s (%s)\nAttacker win chance: %.1f%%",
		winner, loser, fight.AttackerID, strings.ToUpper(fight.WeaponName), fight.WinChance*100)
	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject("plain_text", outcomeText, false, false), nil, nil))

	contextText := slack.NewTextBlockObject("plain_text", "Use /stats to check your combat record.", true, false)
	blocks = append(blocks, slack.NewContextBlock("", contextText))

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboard creates the Slack message for the wins leaderboard.
func (s *Notifier) formatLeaderboard(entries []combat.LeaderboardEntry) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Combat Leaderboard 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(entries) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject("plain_text", "No fights recorded yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	var lines []string
	for i, entry := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s - %dW / %dL (%.1f%%)",
			i+1, entry.UserID, entry.Wins, entry.Losses, entry.WinPercentage))
	}
	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatUserStats creates the Slack message for a single user's combat record.
func (s *Notifier) formatUserStats(stats combat.UserStats, topWeapons []combat.WeaponStats) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("Combat Record: %s", stats.UserID), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	recordText := fmt.Sprintf("Wins: %d\nLosses: %d\nTotal fights: %d\nWin rate: %.2f%%",
		stats.Wins, stats.Losses, stats.TotalFights, stats.WinRate()*100)
	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject("plain_text", recordText, true, false), nil, nil))

	if len(topWeapons) > 0 {
		var lines []string
		for _, weapon := range topWeapons {
			lines = append(lines, fmt.Sprintf("%s: %dW / %dU (%.1f%% WR)",
				strings.ToUpper(weapon.WeaponName), weapon.Wins, weapon.Uses, weapon.WinRate()*100))
		}
		weaponsText := fmt.Sprintf("Top %d weapons (by uses):\n%s", len(topWeapons), strings.Join(lines, "\n"))
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject("plain_text", weaponsText, true, false), nil, nil))
	} else {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject("plain_text", "No weapon usage recorded yet.", true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}
