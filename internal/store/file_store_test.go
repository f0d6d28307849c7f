package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"dante/internal/store"
)

func TestFileKV_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()
	kv := store.NewFileKV(home)

	got, err := kv.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing key, got %q", got)
	}

	if err := kv.Set(ctx, "k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err = kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Fatalf("unexpected value %q", got)
	}

	info, err := os.Stat(filepath.Join(home, "k.json"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected mode 0600, got %v", info.Mode().Perm())
	}

	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if got, _ := kv.Get(ctx, "k"); got != nil {
		t.Fatalf("expected nil after delete, got %q", got)
	}
}

func TestFileKV_CreatesHomeLazily(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", ".dante")
	kv := store.NewFileKV(home)
	if err := kv.Set(context.Background(), "k", []byte("x")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "k.json")); err != nil {
		t.Fatalf("expected file: %v", err)
	}
}

func TestFileKV_RejectsPathKeys(t *testing.T) {
	kv := store.NewFileKV(t.TempDir())
	for _, key := range []string{"", "../x", "a/b", ".hidden"} {
		if err := kv.Set(context.Background(), key, []byte("x")); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
}

func TestFileKV_NoTempFilesLeft(t *testing.T) {
	home := t.TempDir()
	kv := store.NewFileKV(home)
	for i := 0; i < 3; i++ {
		if err := kv.Set(context.Background(), "k", []byte("v")); err != nil {
			t.Fatalf("set: %v", err)
		}
	}
	entries, err := os.ReadDir(home)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only k.json, got %d entries", len(entries))
	}
}
