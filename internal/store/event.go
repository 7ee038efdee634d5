package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// GameEvent is one finished game.
type GameEvent struct {
	Sequence       int64
	Timestamp      time.Time
	SessionID      string
	Game           string
	Mode           string
	Score          int
	Level          int
	BestStreak     int
	TotalQuestions int
	CorrectAnswers int
	Duration       time.Duration
}

// GameLog is the append-only history of finished games.
type GameLog interface {
	// AppendGameEvent records a game. Sequence is assigned by the log;
	// an empty SessionID gets a fresh UUID and a zero Timestamp becomes now.
	AppendGameEvent(ctx context.Context, e GameEvent) error

	// RecentGames returns up to limit games, newest first.
	RecentGames(ctx context.Context, limit int) ([]GameEvent, error)
}

func (e *GameEvent) fillDefaults() {
	if e.SessionID == "" {
		e.SessionID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
}

// sequenceCounter manages the global monotonic sequence number assigned to
// every game event. Timestamps can collide or move backwards with the wall
// clock; the sequence cannot.
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

var gameEventColumns = []string{
	"sequence", "timestamp", "session_id", "game", "mode", "score", "level",
	"best_streak", "total_questions", "correct_answers", "duration_ms",
}

func (s *Store) AppendGameEvent(ctx context.Context, e GameEvent) error {
	seqNum, err := s.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	e.fillDefaults()

	query, args := builder().Insert(gameEventsTable).
		Columns(gameEventColumns...).
		Values(
			seqNum,
			e.Timestamp.UnixMilli(),
			e.SessionID,
			e.Game,
			e.Mode,
			e.Score,
			e.Level,
			e.BestStreak,
			e.TotalQuestions,
			e.CorrectAnswers,
			e.Duration.Milliseconds(),
		).
		Query()

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save game event: %w", err)
	}
	return nil
}

func (s *Store) RecentGames(ctx context.Context, limit int) ([]GameEvent, error) {
	b := builder()
	sel := b.Select(gameEventColumns...).
		From(b.Table(gameEventsTable)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent games: %w", err)
	}
	defer rows.Close()

	var out []GameEvent
	for rows.Next() {
		var (
			e         GameEvent
			ts, durMs int64
		)
		if err := rows.Scan(
			&e.Sequence, &ts, &e.SessionID, &e.Game, &e.Mode, &e.Score,
			&e.Level, &e.BestStreak, &e.TotalQuestions, &e.CorrectAnswers, &durMs,
		); err != nil {
			return nil, fmt.Errorf("scan game event: %w", err)
		}
		e.Timestamp = time.UnixMilli(ts)
		e.Duration = time.Duration(durMs) * time.Millisecond
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate game events: %w", err)
	}
	return out, nil
}

func (m *Memory) AppendGameEvent(_ context.Context, e GameEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	e.Sequence = m.seq
	e.fillDefaults()
	m.events = append(m.events, e)
	return nil
}

func (m *Memory) RecentGames(_ context.Context, limit int) ([]GameEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := slices.Clone(m.events)
	slices.Reverse(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
