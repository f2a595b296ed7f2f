// Package artifacts manages the generated weapon files on disk. Mesh files
// are the source of truth for the library endpoints: listing and stats are
// computed from the directory, not from a database.
package artifacts

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Samer-Gassouma/aeon-generator/internal/errors"
)

//go:generate mockgen -destination=mock/mock_store.go -package=artifactsmock github.com/Samer-Gassouma/aeon-generator/internal/artifacts Store

// FileInfo describes one stored weapon file
type FileInfo struct {
	Filename   string
	Path       string
	Size       int64
	ModifiedAt time.Time
}

// Stats summarizes the stored weapon files
type Stats struct {
	TotalFiles int
	TotalSize  int64

	// OldestFile and NewestFile are filenames, empty when no files exist
	OldestFile string
	NewestFile string
}

// Store defines the weapon file operations
type Store interface {
	// Write stores a weapon file and returns its absolute path
	Write(filename string, content []byte) (string, error)

	// Resolve maps a filename to its path, returning NotFound when the
	// file does not exist
	Resolve(filename string) (string, error)

	// List returns all stored weapon files, newest first
	List() ([]FileInfo, error)

	// Stats summarizes the stored files
	Stats() (*Stats, error)

	// Delete removes one weapon file
	Delete(filename string) error

	// DeleteAll removes every stored weapon file and returns the count
	DeleteAll() (int, error)

	// WriteZip streams all stored weapon files as a ZIP archive
	WriteZip(w io.Writer) (int, error)
}

// Config holds the configuration for the directory store
type Config struct {
	// Dir is the output directory, created on demand
	Dir string
}

// Validate ensures all required fields are provided
func (c *Config) Validate() error {
	if c.Dir == "" {
		return errors.InvalidArgument("output directory is required")
	}
	return nil
}

type dirStore struct {
	dir string
}

// NewDirStore creates a store backed by a single directory
func NewDirStore(cfg *Config) (Store, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create output directory")
	}

	return &dirStore{dir: cfg.Dir}, nil
}

var _ Store = (*dirStore)(nil)

// checkFilename rejects anything that could escape the output directory
func checkFilename(filename string) error {
	if filename == "" {
		return errors.InvalidArgument("filename cannot be empty")
	}
	if filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return errors.InvalidArgumentf("invalid filename %q", filename)
	}
	return nil
}

func (s *dirStore) Write(filename string, content []byte) (string, error) {
	if err := checkFilename(filename); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", errors.Wrap(err, "failed to write weapon file")
	}

	return path, nil
}

func (s *dirStore) Resolve(filename string) (string, error) {
	if err := checkFilename(filename); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", errors.NotFound("file not found").WithMeta("filename", filename)
		}
		return "", errors.Wrap(err, "failed to stat weapon file")
	}

	return path, nil
}

func (s *dirStore) List() ([]FileInfo, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "*.obj"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list weapon files")
	}

	files := make([]FileInfo, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			// file deleted between glob and stat
			continue
		}
		files = append(files, FileInfo{
			Filename:   filepath.Base(path),
			Path:       path,
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModifiedAt.After(files[j].ModifiedAt)
	})

	return files, nil
}

func (s *dirStore) Stats() (*Stats, error) {
	files, err := s.List()
	if err != nil {
		return nil, err
	}

	stats := &Stats{TotalFiles: len(files)}
	for _, f := range files {
		stats.TotalSize += f.Size
	}
	if len(files) > 0 {
		// List is newest first
		stats.NewestFile = files[0].Filename
		stats.OldestFile = files[len(files)-1].Filename
	}

	return stats, nil
}

func (s *dirStore) Delete(filename string) error {
	path, err := s.Resolve(filename)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		return errors.Wrap(err, "failed to delete weapon file")
	}

	return nil
}

func (s *dirStore) DeleteAll() (int, error) {
	files, err := s.List()
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, f := range files {
		if err := os.Remove(f.Path); err != nil {
			return deleted, errors.Wrapf(err, "failed to delete %s", f.Filename)
		}
		deleted++
	}

	return deleted, nil
}

func (s *dirStore) WriteZip(w io.Writer) (int, error) {
	files, err := s.List()
	if err != nil {
		return 0, err
	}

	zw := zip.NewWriter(w)
	count := 0
	for _, f := range files {
		entry, err := zw.Create(f.Filename)
		if err != nil {
			return count, errors.Wrapf(err, "failed to add %s to archive", f.Filename)
		}

		content, err := os.ReadFile(f.Path)
		if err != nil {
			return count, errors.Wrapf(err, "failed to read %s", f.Filename)
		}
		if _, err := entry.Write(content); err != nil {
			return count, errors.Wrapf(err, "failed to write %s to archive", f.Filename)
		}
		count++
	}

	if err := zw.Close(); err != nil {
		return count, errors.Wrap(err, "failed to finalize archive")
	}

	return count, nil
}
