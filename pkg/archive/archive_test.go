package archive

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dd0wney/cluso-netmetrics/pkg/centrality"
)

// sampleResult builds a small analysis result to archive.
func sampleResult() *centrality.Result {
	return &centrality.Result{
		Degree:      map[string]float64{"a": 2, "b": 1},
		Betweenness: map[string]float64{"a": 0, "b": 0},
		Closeness:   map[string]float64{"a": 1, "b": 1},
		Eigenvector: map[string]float64{"a": 1, "b": 1},
		TopByDegree: []centrality.RankedNode{
			{ID: "a", Score: 2}, {ID: "b", Score: 1},
		},
		EigenvectorIterations: 3,
	}
}

// TestStore_SaveLoadRoundTrip tests the compressed snapshot cycle
func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	saved, err := store.Save("coauthors", 2, 1, sampleResult())
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("Save should assign an ID")
	}
	if saved.CreatedAt.IsZero() {
		t.Error("Save should assign a timestamp")
	}

	loaded, err := store.Load(saved.ID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Dataset != "coauthors" {
		t.Errorf("Expected dataset coauthors, got %s", loaded.Dataset)
	}
	if loaded.NodeCount != 2 || loaded.EdgeCount != 1 {
		t.Errorf("Expected counts 2/1, got %d/%d", loaded.NodeCount, loaded.EdgeCount)
	}
	if loaded.Result == nil {
		t.Fatal("Expected result payload")
	}
	if loaded.Result.Degree["a"] != 2 {
		t.Errorf("Expected degree score to survive the round trip, got %v", loaded.Result.Degree)
	}
	if len(loaded.Result.TopByDegree) != 2 || loaded.Result.TopByDegree[0].ID != "a" {
		t.Errorf("Expected ranking to survive, got %v", loaded.Result.TopByDegree)
	}
}

// TestStore_LoadMissing tests the not-found error
func TestStore_LoadMissing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	_, err = store.Load("no-such-id")
	if !errors.Is(err, ErrSnapshotNotFound) {
		t.Fatalf("Expected ErrSnapshotNotFound, got %v", err)
	}
}

// TestStore_LoadCorrupt tests the corruption error on garbage bytes
func TestStore_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	path := filepath.Join(dir, "bad.snap")
	if err := os.WriteFile(path, []byte("not snappy data"), 0o644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	_, err = store.Load("bad")
	if !errors.Is(err, ErrCorruptSnapshot) {
		t.Fatalf("Expected ErrCorruptSnapshot, got %v", err)
	}
}

// TestStore_List tests sorted ID listing
func TestStore_List(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	first, err := store.Save("one", 1, 0, sampleResult())
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	second, err := store.Save("two", 1, 0, sampleResult())
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// A stray non-snapshot file must not show up.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to write stray file: %v", err)
	}

	ids, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("Expected 2 snapshots, got %d: %v", len(ids), ids)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("IDs not sorted: %v", ids)
		}
	}

	seen := map[string]bool{ids[0]: true, ids[1]: true}
	if !seen[first.ID] || !seen[second.ID] {
		t.Errorf("Expected both saved IDs in %v", ids)
	}
}

// TestNewStore_CreatesDirectory tests directory bootstrap
func TestNewStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "snapshots")

	if _, err := NewStore(dir); err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("Expected directory to exist: %v", err)
	}
}
