package blob

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	if _, err := s.Load(ctx); !errors.Is(err, ErrNotExist) {
		t.Fatalf("expected ErrNotExist before first save, got %v", err)
	}

	if err := s.Save(ctx, []byte(`{"users":{}}`)); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	data, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if string(data) != `{"users":{}}` {
		t.Errorf("unexpected data: %s", data)
	}
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	if err := s.Save(ctx, []byte("abc")); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	data, _ := s.Load(ctx)
	data[0] = 'x'

	again, _ := s.Load(ctx)
	if string(again) != "abc" {
		t.Errorf("stored data mutated through returned slice: %s", again)
	}
}

func TestFSStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "healthcare_data.json")
	s, err := NewFS(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	if _, err := s.Load(ctx); !errors.Is(err, ErrNotExist) {
		t.Fatalf("expected ErrNotExist for missing file, got %v", err)
	}

	if err := s.Save(ctx, []byte("first")); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if err := s.Save(ctx, []byte("second")); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	data, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("expected latest save to win, got %s", data)
	}
}

func TestFSStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFS(filepath.Join(dir, "data.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Save(context.Background(), []byte("x")); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "data.json" {
		t.Errorf("expected only data.json in dir, got %v", entries)
	}
}

func TestNewFS_RequiresPath(t *testing.T) {
	if _, err := NewFS(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
