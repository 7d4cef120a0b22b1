// Package workspace tracks a set of parsed Org documents for editor
// integration and re-parses them as their buffers change.
package workspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dhamidi/norg/org"
	"github.com/dhamidi/norg/org/parser"
)

// File is one tracked document. Doc is nil when the last parse failed.
type File struct {
	Path    string
	Content []byte
	Doc     *org.Document
	Err     error

	// lineStarts caches the offset of each line's first byte.
	lineStarts []int
}

// Workspace is safe for concurrent use. Every update parses with a fresh
// parser over the file's own buffer; no cursor is ever shared.
type Workspace struct {
	mu     sync.RWMutex
	config parser.Config
	files  map[string]*File
}

func New(config parser.Config) *Workspace {
	return &Workspace{
		config: config,
		files:  make(map[string]*File),
	}
}

// UpdateFile replaces the tracked content of path and re-parses it.
func (w *Workspace) UpdateFile(path string, content []byte) *File {
	doc, err := org.ParseBytes(content, org.WithConfig(w.config), org.WithRawTitles())
	file := &File{
		Path:       path,
		Content:    content,
		Doc:        doc,
		Err:        err,
		lineStarts: computeLineStarts(content),
	}
	w.mu.Lock()
	w.files[path] = file
	w.mu.Unlock()
	return file
}

// ScanFile reads path from disk and tracks it.
func (w *Workspace) ScanFile(path string) *File {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return w.UpdateFile(path, content)
}

// ScanAll walks root and tracks every .org file below it.
func (w *Workspace) ScanAll(root string) {
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && strings.HasSuffix(path, ".org") {
			w.ScanFile(path)
		}
		return nil
	})
}

// GetFile returns the tracked file for path, or nil.
func (w *Workspace) GetFile(path string) *File {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Forget drops path from the workspace.
func (w *Workspace) Forget(path string) {
	w.mu.Lock()
	delete(w.files, path)
	w.mu.Unlock()
}

// Position converts a buffer offset into a zero-based line/column pair.
func (f *File) Position(offset int) (line, column int) {
	starts := f.lineStarts
	lo, hi := 0, len(starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo, offset - starts[lo]
}

func computeLineStarts(content []byte) []int {
	starts := []int{0}
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
