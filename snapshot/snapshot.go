// Package snapshot persists the full evaluation input state (configuration
// plus bidder records) to a single CBOR file, so a bid tab can be reopened
// later exactly as it was saved. Derived views are never persisted; they
// recompute from the inputs.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/bidlevel/bidlevel/core"
)

// CurrentVersion is the snapshot format version written by Save.
const CurrentVersion = 1

// File is the on-disk snapshot structure.
type File struct {
	Version int           `cbor:"version"`
	SavedAt time.Time     `cbor:"saved_at"`
	Config  core.Config   `cbor:"config"`
	Bidders []core.Bidder `cbor:"bidders"`
}

// Save writes the input state to path. The write is atomic: data goes to a
// temp file in the same directory first, then renames over the target, so a
// crash mid-write never leaves a truncated snapshot behind.
func Save(path string, bidders []core.Bidder, cfg core.Config) error {
	f := File{
		Version: CurrentVersion,
		SavedAt: time.Now().UTC(),
		Config:  cfg,
		Bidders: bidders,
	}

	data, err := cbor.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Load reads the input state back from path. A snapshot written by a
// different format version is rejected.
func Load(path string) ([]core.Bidder, core.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.Config{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var f File
	if err := cbor.Unmarshal(data, &f); err != nil {
		return nil, core.Config{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if f.Version != CurrentVersion {
		return nil, core.Config{}, fmt.Errorf("unsupported snapshot version %d", f.Version)
	}

	if f.Bidders == nil {
		f.Bidders = []core.Bidder{}
	}
	return f.Bidders, f.Config, nil
}
