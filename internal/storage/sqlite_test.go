package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should be created with its parent directory")
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 5, 20} {
		_, err := store.SaveScore("snake", score, 100)
		require.NoError(t, err)
	}
	_, err := store.SaveScore("lightsout", 96, 40)
	require.NoError(t, err)

	scores, err := store.TopScores("snake", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.Equal(t, 20, scores[0].Score)
	assert.Equal(t, 10, scores[1].Score)
	assert.Equal(t, 5, scores[2].Score)
	assert.Equal(t, uint64(100), scores[0].Tick)
	assert.Equal(t, "snake", scores[0].GameID)

	other, err := store.TopScores("lightsout", 10)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := store.SaveScore("snake", (i+1)*10, 0)
		require.NoError(t, err)
	}

	scores, err := store.TopScores("snake", 3)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, []int{50, 40, 30}, []int{scores[0].Score, scores[1].Score, scores[2].Score})

	scores, err = store.TopScores("snake", 0)
	require.NoError(t, err)
	assert.Len(t, scores, 5, "non-positive limit falls back to 10")
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("snake")
	require.NoError(t, err)
	assert.Zero(t, high)

	store.SaveScore("snake", 10, 0)
	store.SaveScore("snake", 30, 0)
	store.SaveScore("snake", 20, 0)

	high, err = store.HighScore("snake")
	require.NoError(t, err)
	assert.Equal(t, 30, high)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("snake", 10, 0)
	store.SaveScore("snake", 20, 0)
	store.SaveScore("lightsout", 30, 0)

	require.NoError(t, store.ClearScores("snake"))

	snakeScores, _ := store.TopScores("snake", 10)
	assert.Empty(t, snakeScores)

	otherScores, _ := store.TopScores("lightsout", 10)
	assert.Len(t, otherScores, 1, "other games should not be affected")
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("snake", i, 0)
	}

	scores, err := store.AllScores("snake")
	require.NoError(t, err)
	assert.Len(t, scores, 20)
	assert.Equal(t, 19, scores[0].Score)
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("snake")
	require.NoError(t, err)
	assert.Zero(t, empty.Rounds)
	assert.True(t, empty.LastPlayed.IsZero())

	store.SaveScore("snake", 10, 0)
	store.SaveScore("snake", 20, 0)

	stats, err := store.Stats("snake")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Rounds)
	assert.Equal(t, 20, stats.HighScore)
	assert.InDelta(t, 15.0, stats.AvgScore, 0.001)
	assert.False(t, stats.LastPlayed.IsZero())
}

func TestStoreReplays(t *testing.T) {
	store := openTestStore(t)

	// Top bit set must survive the signed column
	const final = uint64(0x8000_0000_0000_0045)

	_, err := store.SaveReplay("snake", "/tmp/a.yaml", 600, final)
	require.NoError(t, err)
	_, err = store.SaveReplay("lightsout", "/tmp/b.yaml", 90, 1)
	require.NoError(t, err)

	snake, err := store.Replays("snake")
	require.NoError(t, err)
	require.Len(t, snake, 1)
	assert.Equal(t, "/tmp/a.yaml", snake[0].Path)
	assert.Equal(t, uint64(600), snake[0].Ticks)
	assert.Equal(t, final, snake[0].FinalState)

	all, err := store.Replays("")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "lightsout", all[0].GameID, "newest first")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/.arcade/scores.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".arcade/scores.db"), got)

	got, err = ExpandPath("/abs/path.db")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path.db", got)
}
