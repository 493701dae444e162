package services

import (
	"testing"

	"study-dashboard-system/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildLeaderboardReSortsDescending(t *testing.T) {
	// store ordering may be ascending or unstable — [10,50,30] must render [50,30,10]
	board := BuildLeaderboard([]models.Profile{
		{FirstName: "Ana", XP: 10},
		{FirstName: "Bea", XP: 50},
		{FirstName: "Carl", XP: 30},
	})

	if assert.Len(t, board, 3) {
		assert.Equal(t, int64(50), board[0].XP)
		assert.Equal(t, int64(30), board[1].XP)
		assert.Equal(t, int64(10), board[2].XP)

		assert.Equal(t, "🥇", board[0].Medal)
		assert.Equal(t, "🥈", board[1].Medal)
		assert.Equal(t, "🥉", board[2].Medal)
	}
}

func TestBuildLeaderboardNumericRanksBeyondPodium(t *testing.T) {
	profiles := []models.Profile{
		{XP: 500}, {XP: 400}, {XP: 300}, {XP: 200}, {XP: 100},
	}
	board := BuildLeaderboard(profiles)

	assert.Equal(t, "#4", board[3].Medal)
	assert.Equal(t, "#5", board[4].Medal)
	assert.Equal(t, 4, board[3].Position)
}

func TestBuildLeaderboardDerivesLevel(t *testing.T) {
	board := BuildLeaderboard([]models.Profile{{XP: 2000}})
	assert.Equal(t, 5, board[0].Level)
}

func TestBuildLeaderboardEmpty(t *testing.T) {
	assert.Empty(t, BuildLeaderboard(nil))
}
