package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gridlock-xyz/go-gridlock/eventlog"
	"github.com/gridlock-xyz/go-gridlock/session"
)

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, func() session.Store {
		return session.NewMemoryStore()
	})
}

func TestSQLiteStore(t *testing.T) {
	runStoreTests(t, func() session.Store {
		store, err := session.NewSQLiteStore(":memory:")
		if err != nil {
			t.Fatalf("failed to create sqlite store: %v", err)
		}
		return store
	})
}

func runStoreTests(t *testing.T, newStore func() session.Store) {
	t.Run("CreateAndGet", func(t *testing.T) {
		store := newStore()
		defer store.Close()
		ctx := context.Background()

		started := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
		err := store.CreateSession(ctx, &session.Session{
			ID:        "sess-1",
			Puzzle:    "16_9____5",
			StartedAt: started,
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}

		got, err := store.Session(ctx, "sess-1")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Puzzle != "16_9____5" {
			t.Errorf("puzzle = %q", got.Puzzle)
		}
		if !got.StartedAt.Equal(started) {
			t.Errorf("started_at = %v, want %v", got.StartedAt, started)
		}
		if got.EndedAt != nil || got.Outcome != "" {
			t.Errorf("new session should be open, got %+v", got)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		store := newStore()
		defer store.Close()
		ctx := context.Background()

		if _, err := store.Session(ctx, "missing"); !errors.Is(err, session.ErrSessionNotFound) {
			t.Errorf("Session(missing) err = %v, want ErrSessionNotFound", err)
		}
		if _, err := store.Events(ctx, "missing"); !errors.Is(err, session.ErrSessionNotFound) {
			t.Errorf("Events(missing) err = %v, want ErrSessionNotFound", err)
		}
		err := store.EndSession(ctx, "missing", session.OutcomeSolved, 1, "")
		if !errors.Is(err, session.ErrSessionNotFound) {
			t.Errorf("EndSession(missing) err = %v, want ErrSessionNotFound", err)
		}
	})

	t.Run("EndSession", func(t *testing.T) {
		store := newStore()
		defer store.Close()
		ctx := context.Background()

		mustCreate(t, store, "sess-1", time.Now().UTC())
		if err := store.EndSession(ctx, "sess-1", session.OutcomeSolved, 42, "solution text"); err != nil {
			t.Fatalf("end failed: %v", err)
		}

		got, err := store.Session(ctx, "sess-1")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Outcome != session.OutcomeSolved || got.Steps != 42 || got.Solution != "solution text" {
			t.Errorf("unexpected session after end: %+v", got)
		}
		if got.EndedAt == nil {
			t.Error("ended_at not set")
		}
	})

	t.Run("EventsInStepOrder", func(t *testing.T) {
		store := newStore()
		defer store.Close()
		ctx := context.Background()

		mustCreate(t, store, "sess-1", time.Now().UTC())
		ts := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
		for step := 1; step <= 3; step++ {
			e := eventlog.Event{
				Session: "sess-1", Step: step, Kind: eventlog.KindAdvance,
				Cell: step, Digit: 1, Depth: step, Timestamp: ts,
			}
			if err := store.AppendEvent(ctx, e); err != nil {
				t.Fatalf("append failed: %v", err)
			}
		}

		tr, err := store.Events(ctx, "sess-1")
		if err != nil {
			t.Fatalf("events failed: %v", err)
		}
		if len(tr) != 3 {
			t.Fatalf("got %d events, want 3", len(tr))
		}
		for i, e := range tr {
			if e.Step != i+1 {
				t.Errorf("event %d has step %d", i, e.Step)
			}
			if !e.Timestamp.Equal(ts) {
				t.Errorf("event %d timestamp = %v, want %v", i, e.Timestamp, ts)
			}
		}
	})

	t.Run("SessionsOldestFirst", func(t *testing.T) {
		store := newStore()
		defer store.Close()

		base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
		mustCreate(t, store, "later", base.Add(time.Hour))
		mustCreate(t, store, "earlier", base)

		all, err := store.Sessions(context.Background())
		if err != nil {
			t.Fatalf("sessions failed: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("got %d sessions, want 2", len(all))
		}
		if all[0].ID != "earlier" || all[1].ID != "later" {
			t.Errorf("order = [%s, %s]", all[0].ID, all[1].ID)
		}
	})

	t.Run("DuplicateID", func(t *testing.T) {
		store := newStore()
		defer store.Close()

		mustCreate(t, store, "sess-1", time.Now().UTC())
		err := store.CreateSession(context.Background(), &session.Session{
			ID: "sess-1", StartedAt: time.Now().UTC(),
		})
		if err == nil {
			t.Error("expected error for duplicate session ID")
		}
	})
}

func mustCreate(t *testing.T, store session.Store, id string, started time.Time) {
	t.Helper()
	err := store.CreateSession(context.Background(), &session.Session{
		ID:        id,
		Puzzle:    "_",
		StartedAt: started,
	})
	if err != nil {
		t.Fatalf("create %s: %v", id, err)
	}
}
