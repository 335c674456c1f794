// Package scanner walks the template content tree for the search index.
package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/conneroisu/bsui/internal/errors"
	"github.com/conneroisu/bsui/internal/logging"
)

// DefaultMaxFileSize bounds the templates read into the index.
const DefaultMaxFileSize = 1 << 20

// File is one template in the content tree.
type File struct {
	// RelPath is slash separated and relative to the content root.
	RelPath string
	// Path is the path on disk.
	Path string
	Size int64
}

// Read returns the file content.
func (f File) Read() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeFileNotFound, "cannot read "+f.RelPath, err)
	}
	return data, nil
}

// ContentScanner enumerates templates below Root. Directories named in
// ExcludeDirs and directories containing IgnoreMarker are skipped along
// with everything below them.
type ContentScanner struct {
	Root         string
	Extensions   []string
	ExcludeDirs  []string
	IgnoreMarker string
	MaxFileSize  int64
	Logger       logging.Logger
}

// Files walks the content tree. Unreadable entries are skipped; only a
// missing root is reported, as an empty listing.
func (s *ContentScanner) Files() ([]File, error) {
	info, err := os.Stat(s.Root)
	if err != nil || !info.IsDir() {
		s.debug("content root not found", "root", s.Root)
		return nil, nil
	}

	excluded := make(map[string]bool, len(s.ExcludeDirs))
	for _, dir := range s.ExcludeDirs {
		excluded[dir] = true
	}
	maxSize := s.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	var files []File
	err = filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip unreadable entries silently
			if d != nil && d.IsDir() && path != s.Root {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path == s.Root {
				return nil
			}
			if excluded[d.Name()] || s.hasIgnoreMarker(path) {
				s.debug("skipping directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !s.matchesExtension(d.Name()) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return nil
		}
		if fi.Size() > maxSize {
			s.debug("skipping large file", "path", path, "size", fi.Size())
			return nil
		}

		rel, err := filepath.Rel(s.Root, path)
		if err != nil {
			return nil
		}
		files = append(files, File{RelPath: filepath.ToSlash(rel), Path: path, Size: fi.Size()})
		return nil
	})
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeFileNotFound, "cannot walk "+s.Root, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

func (s *ContentScanner) hasIgnoreMarker(dir string) bool {
	if s.IgnoreMarker == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(dir, s.IgnoreMarker))
	return err == nil
}

func (s *ContentScanner) matchesExtension(name string) bool {
	if len(s.Extensions) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, ext := range s.Extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

func (s *ContentScanner) debug(msg string, fields ...interface{}) {
	if s.Logger != nil {
		s.Logger.Debug(context.Background(), msg, fields...)
	}
}
