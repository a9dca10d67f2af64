package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// openTestGdata opens a throwaway gdata app and removes it afterwards.
// Returns nil where gdata has no usable data directory.
func openTestGdata(t *testing.T) *GdataStore {
	t.Helper()
	appName := fmt.Sprintf("tui_flappy_test_%d", time.Now().UnixNano())
	store, err := OpenGdata(appName)
	if err != nil {
		return nil
	}

	t.Cleanup(func() {
		home, err := os.UserHomeDir()
		if err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return store
}

func TestGdataGetSet(t *testing.T) {
	store := openTestGdata(t)
	if store == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	if _, ok, err := store.Get("flappyHighScore"); err != nil || ok {
		t.Fatalf("Get() on fresh store = ok %v, err %v; want absent", ok, err)
	}

	if err := store.Set("flappyHighScore", 17); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	v, ok, err := store.Get("flappyHighScore")
	if err != nil || !ok || v != 17 {
		t.Fatalf("Get() = %d, %v, %v; want 17, true, nil", v, ok, err)
	}

	if err := store.Set("flappyHighScore", 4); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if v, _, _ := store.Get("flappyHighScore"); v != 17 {
		t.Errorf("Get() after lower Set = %d, want 17", v)
	}
}

func TestGdataMalformedValue(t *testing.T) {
	store := openTestGdata(t)
	if store == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	if err := store.m.SaveObjectProp(gdataObject, "flappyHighScore", []byte("lots")); err != nil {
		t.Fatalf("SaveObjectProp() failed: %v", err)
	}
	if _, _, err := store.Get("flappyHighScore"); err == nil {
		t.Error("Get() accepted a non-integer value")
	}
}
