package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/mverbeek/firefight/internal/combat"
	"github.com/mverbeek/firefight/internal/metrics"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, true)
	require.NoError(t, err)
}

func TestSendCombatReport_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	fight := combat.Fight{
		ID:          "fight-1",
		AttackerID:  "alice",
		DefenderID:  "bob",
		WeaponName:  "akm",
		AttackerWon: true,
		WinChance:   0.62,
	}
	err := notifier.SendCombatReport(fight, "Alice flanks Bob!", false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

func TestFormatters_ProduceBlocks(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock())

	msg := notifier.formatLeaderboard([]combat.LeaderboardEntry{
		{UserID: "alice", Wins: 3, Losses: 1, TotalFights: 4, WinPercentage: 75},
	})
	assert.NotEmpty(t, msg.Blocks.BlockSet)

	msg = notifier.formatLeaderboard(nil)
	assert.NotEmpty(t, msg.Blocks.BlockSet)

	msg = notifier.formatUserStats(
		combat.UserStats{UserID: "alice", Wins: 3, Losses: 1, TotalFights: 4},
		[]combat.WeaponStats{{WeaponName: "akm", Uses: 4, Wins: 3}},
	)
	assert.NotEmpty(t, msg.Blocks.BlockSet)
}
