package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{"records", "game_events", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
	}
}

// backends runs fn against both Backend implementations.
func backends(t *testing.T, fn func(t *testing.T, b Backend)) {
	t.Run("sqlite", func(t *testing.T) { fn(t, openTestStore(t)) })
	t.Run("memory", func(t *testing.T) { fn(t, NewMemory()) })
}

func TestKV_SaveLoadDelete(t *testing.T) {
	backends(t, func(t *testing.T, b Backend) {
		ctx := context.Background()

		_, ok, err := b.Load(ctx, "ouroborosHighScore")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, b.Save(ctx, "ouroborosHighScore", "120"))
		require.NoError(t, b.Save(ctx, "ouroborosHighScore", "340"))

		v, ok, err := b.Load(ctx, "ouroborosHighScore")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "340", v)

		require.NoError(t, b.Delete(ctx, "ouroborosHighScore"))
		require.NoError(t, b.Delete(ctx, "missing"))
		_, ok, err = b.Load(ctx, "ouroborosHighScore")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestGameLog_RecentNewestFirst(t *testing.T) {
	backends(t, func(t *testing.T, b Backend) {
		ctx := context.Background()
		base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
		for i := 0; i < 4; i++ {
			err := b.AppendGameEvent(ctx, GameEvent{
				Timestamp:      base.Add(time.Duration(i) * time.Minute),
				Game:           "fractions",
				Mode:           "To Decimal",
				Score:          100 * (i + 1),
				Level:          i + 1,
				BestStreak:     i,
				TotalQuestions: 10,
				CorrectAnswers: 7,
				Duration:       90 * time.Second,
			})
			require.NoError(t, err)
		}

		games, err := b.RecentGames(ctx, 3)
		require.NoError(t, err)
		require.Len(t, games, 3)
		assert.Equal(t, 400, games[0].Score)
		assert.Equal(t, 200, games[2].Score)
		assert.Greater(t, games[0].Sequence, games[1].Sequence)
		assert.NotEmpty(t, games[0].SessionID, "session id assigned")
		assert.Equal(t, 90*time.Second, games[0].Duration)
		assert.True(t, games[0].Timestamp.Equal(base.Add(3*time.Minute)))

		all, err := b.RecentGames(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})
}

func TestReset(t *testing.T) {
	backends(t, func(t *testing.T, b Backend) {
		ctx := context.Background()
		require.NoError(t, b.Save(ctx, "tapeMeasureStats", `{"bestStreak":3}`))
		require.NoError(t, b.AppendGameEvent(ctx, GameEvent{Game: "ouroboros", Score: 10}))

		require.NoError(t, b.Reset(ctx))

		_, ok, err := b.Load(ctx, "tapeMeasureStats")
		require.NoError(t, err)
		assert.False(t, ok)
		games, err := b.RecentGames(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, games)
	})
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, dir+"/drillz/drillz.db", p)
	assert.DirExists(t, dir+"/drillz")
}
