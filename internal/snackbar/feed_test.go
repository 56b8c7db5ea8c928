package snackbar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFeed_ExpiryByTTL - уведомление живет ровно TTL и исчезает само
func TestFeed_ExpiryByTTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	feed := NewFeedWithClock(5*time.Second, func() time.Time { return now })

	feed.Success("Job status updated")
	require.Len(t, feed.Active(), 1)

	// За секунду до истечения еще живо
	now = now.Add(4 * time.Second)
	require.Len(t, feed.Active(), 1)

	// После TTL - исчезло
	now = now.Add(2 * time.Second)
	assert.Empty(t, feed.Active())
}

// TestFeed_ExpiredPruned - просроченные вычищаются из ленты, свежие остаются
func TestFeed_ExpiredPruned(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	feed := NewFeedWithClock(5*time.Second, func() time.Time { return now })

	feed.Error("Failed to delete user")
	now = now.Add(3 * time.Second)
	feed.Success("User deleted")
	now = now.Add(3 * time.Second)

	active := feed.Active()
	require.Len(t, active, 1)
	assert.Equal(t, LevelSuccess, active[0].Level)
	assert.Equal(t, "User deleted", active[0].Message)
}

func TestFeed_NoticeFields(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	feed := NewFeedWithClock(5*time.Second, func() time.Time { return now })

	id := feed.Push(LevelInfo, "No new responses")
	active := feed.Active()
	require.Len(t, active, 1)

	assert.Equal(t, id, active[0].ID)
	assert.NotEmpty(t, active[0].ID)
	assert.Equal(t, now, active[0].CreatedAt)
	assert.Equal(t, now.Add(5*time.Second), active[0].ExpiresAt)
}
