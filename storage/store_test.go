package storage

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "tournaments/Cup"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound for a missing key, got %v", err)
	}

	entries := map[string]string{
		"tournaments/Cup":   `{"name":"Cup"}`,
		"tournaments/Copa":  `{"name":"Copa"}`,
		"leagues/Liga":      `{"name":"Liga"}`,
		"matches/A vs B":    `{"key":"A vs B"}`,
		"tournaments/Cup 2": `{"name":"Cup 2"}`,
	}
	for k, v := range entries {
		if err := s.Set(ctx, k, []byte(v)); err != nil {
			t.Fatalf("Set(%q) failed: %v", k, err)
		}
	}

	got, err := s.Get(ctx, "leagues/Liga")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(got) != entries["leagues/Liga"] {
		t.Errorf("expected %s, got %s", entries["leagues/Liga"], got)
	}

	if err := s.Set(ctx, "leagues/Liga", []byte(`{"name":"Liga","v":2}`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, _ = s.Get(ctx, "leagues/Liga")
	if string(got) != `{"name":"Liga","v":2}` {
		t.Errorf("overwrite not visible, got %s", got)
	}

	keys, err := s.Keys(ctx, "tournaments/")
	if err != nil {
		t.Fatalf("Keys() failed: %v", err)
	}
	want := []string{"tournaments/Copa", "tournaments/Cup", "tournaments/Cup 2"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("expected keys %v, got %v", want, keys)
	}

	if err := s.Delete(ctx, "tournaments/Cup"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if err := s.Delete(ctx, "tournaments/Cup"); err != nil {
		t.Errorf("second Delete() should be a no-op, got %v", err)
	}
	if _, err := s.Get(ctx, "tournaments/Cup"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound after delete, got %v", err)
	}

	keys, _ = s.Keys(ctx, "nothing/")
	if len(keys) != 0 {
		t.Errorf("expected no keys, got %v", keys)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	value := []byte("original")
	_ = s.Set(ctx, "k", value)
	value[0] = 'X'

	got, _ := s.Get(ctx, "k")
	if string(got) != "original" {
		t.Errorf("store shares memory with caller: %s", got)
	}
	got[0] = 'Y'
	again, _ := s.Get(ctx, "k")
	if string(again) != "original" {
		t.Errorf("store shares memory with reader: %s", again)
	}
}

func TestMemoryStoreConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Set(ctx, "matches/"+string(rune('a'+i%26)), []byte{byte(i)})
			_, _ = s.Keys(ctx, "matches/")
		}(i)
	}
	wg.Wait()

	keys, _ := s.Keys(ctx, "matches/")
	if len(keys) != 26 {
		t.Errorf("expected 26 keys, got %d", len(keys))
	}
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	s, closeDB, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "arbitro.db"))
	if err != nil {
		// go-sqlite3 needs cgo.
		t.Skipf("sqlite unavailable: %v", err)
	}
	defer closeDB()

	exerciseStore(t, s)
}
