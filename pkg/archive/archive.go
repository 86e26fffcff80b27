// Package archive persists computed centrality results as snappy-compressed
// JSON snapshots, the handoff artifact for external plotting and reporting
// collaborators. Snapshots are write-once and content-addressed by a
// generated ID; the graph itself is never persisted.
package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/golang/snappy"
	"github.com/google/uuid"

	"github.com/dd0wney/cluso-netmetrics/pkg/centrality"
)

// snapshotExt is the on-disk file extension for snapshots.
const snapshotExt = ".snap"

var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrCorruptSnapshot  = errors.New("snapshot data is corrupt")
)

// Snapshot is one archived analysis run.
type Snapshot struct {
	ID        string             `json:"id"`
	Dataset   string             `json:"dataset,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	NodeCount int                `json:"node_count"`
	EdgeCount int                `json:"edge_count"`
	Result    *centrality.Result `json:"result"`
}

// Store reads and writes snapshots under a single directory.
type Store struct {
	dir string
}

// NewStore opens (creating if needed) a snapshot directory.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save archives an analysis result and returns the stored snapshot,
// assigning ID and timestamp. The file is written atomically via a rename.
func (s *Store) Save(dataset string, nodeCount, edgeCount int, result *centrality.Result) (*Snapshot, error) {
	snap := &Snapshot{
		ID:        uuid.New().String(),
		Dataset:   dataset,
		CreatedAt: time.Now().UTC(),
		NodeCount: nodeCount,
		EdgeCount: edgeCount,
		Result:    result,
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	compressed := snappy.Encode(nil, data)

	final := filepath.Join(s.dir, snap.ID+snapshotExt)
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, compressed, 0o644); err != nil {
		return nil, fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return nil, fmt.Errorf("commit snapshot: %w", err)
	}

	return snap, nil
}

// Load reads a snapshot by ID.
func (s *Store) Load(id string) (*Snapshot, error) {
	compressed, err := os.ReadFile(filepath.Join(s.dir, id+snapshotExt))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("snapshot %s: %w", id, ErrSnapshotNotFound)
		}
		return nil, fmt.Errorf("read snapshot %s: %w", id, err)
	}

	data, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w: %v", id, ErrCorruptSnapshot, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w: %v", id, ErrCorruptSnapshot, err)
	}
	return &snap, nil
}

// List returns the IDs of all stored snapshots, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, snapshotExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, snapshotExt))
	}
	sort.Strings(ids)
	return ids, nil
}
