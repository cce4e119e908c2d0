// Package storage keeps generated images on local disk and sweeps old ones.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/youruser/featuregen/internal/util"
	"go.uber.org/zap"
)

// ErrInvalidName rejects filenames that would escape the output dir.
var ErrInvalidName = errors.New("invalid filename")

// Store writes files under a single directory.
type Store struct {
	dir    string
	prefix string
	log    *zap.Logger
}

// New creates dir if needed. Sweep only touches files starting with prefix.
func New(dir, prefix string, log *zap.Logger) (*Store, error) {
	if err := util.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{dir: dir, prefix: prefix, log: log}, nil
}

// Dir is the output directory.
func (s *Store) Dir() string { return s.dir }

// Save writes data to filename atomically and returns the full path.
func (s *Store) Save(filename string, data []byte) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, filename)
	}
	path := filepath.Join(s.dir, filename)

	tmp, err := os.CreateTemp(s.dir, ".tmp-"+filename+"-*")
	if err != nil {
		return "", fmt.Errorf("create temp: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close %s: %w", filename, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("chmod %s: %w", filename, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("rename %s: %w", filename, err)
	}
	return path, nil
}

// Sweep removes generated files last modified more than maxAge before now
// and returns how many were removed.
func (s *Store) Sweep(now time.Time, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("read output dir: %w", err)
	}
	cutoff := now.Add(-maxAge)
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), s.prefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("sweep: remove failed", zap.String("file", e.Name()), zap.Error(err))
			continue
		}
		removed++
	}
	return removed, nil
}

// RunSweeper sweeps every interval until ctx is done.
func (s *Store) RunSweeper(ctx context.Context, interval, maxAge time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := s.Sweep(now, maxAge)
			if err != nil {
				s.log.Error("sweep failed", zap.Error(err))
				continue
			}
			if n > 0 {
				s.log.Info("swept generated files", zap.Int("removed", n))
			}
		}
	}
}
