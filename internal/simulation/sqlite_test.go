package simulation

import (
	"path/filepath"
	"testing"
)

func newSQLiteBackend(t *testing.T) *SQLiteBackend {
	t.Helper()
	b, err := NewSQLiteBackend(filepath.Join(t.TempDir(), DefaultDatabaseFile))
	if err != nil {
		// go-sqlite3 needs cgo; without it the driver refuses to open.
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b
}

func TestSQLiteBackend_EmptyLoadFails(t *testing.T) {
	b := newSQLiteBackend(t)
	if _, err := b.Load(); err == nil {
		t.Error("Load on an empty database should fail")
	}
}

func TestSQLiteBackend_SaveLoad(t *testing.T) {
	b := newSQLiteBackend(t)

	for _, v := range []int{3, 0, 7} {
		if err := b.Save(v); err != nil {
			t.Fatalf("Save(%d) failed: %v", v, err)
		}
		got, err := b.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if got != v {
			t.Errorf("Load: got %d, want %d", got, v)
		}
	}
}

func TestSQLiteBackend_Events(t *testing.T) {
	b := newSQLiteBackend(t)

	for _, v := range []int{1, 2, 3, 2} {
		if err := b.Save(v); err != nil {
			t.Fatalf("Save(%d) failed: %v", v, err)
		}
	}

	events, err := b.Events(3)
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events: got %d, want 3", len(events))
	}
	want := []int{2, 3, 2}
	for i, e := range events {
		if e.Value != want[i] {
			t.Errorf("event %d: value %d, want %d", i, e.Value, want[i])
		}
		if e.CreatedAt.IsZero() {
			t.Errorf("event %d: missing timestamp", i)
		}
	}
}

func TestSQLiteBackend_WithStore(t *testing.T) {
	store := NewOffsetStore(newSQLiteBackend(t), 7, nil)

	if got := store.Read(); got != 0 {
		t.Errorf("Read on empty database: got %d, want 0", got)
	}
	for i := 0; i < 10; i++ {
		if _, err := store.Increment(); err != nil {
			t.Fatalf("Increment failed: %v", err)
		}
	}
	if got := store.Read(); got != 7 {
		t.Errorf("Read after 10 arrivals: got %d, want 7", got)
	}
}

func TestSQLiteBackend_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "offset.db")

	first, err := NewSQLiteBackend(path)
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	if err := first.Save(4); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	first.Close()

	second, err := NewSQLiteBackend(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()

	got, err := second.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != 4 {
		t.Errorf("Load after reopen: got %d, want 4", got)
	}
}
