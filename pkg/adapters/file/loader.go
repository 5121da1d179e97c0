package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/magazine/internal/compiler"
	"github.com/aretw0/magazine/pkg/domain"
)

// Extensions lists the file extensions the Loader recognises in a directory.
var Extensions = []string{".pda", ".txt", ".yaml", ".yml", ".json"}

// Loader implements ports.DefinitionLoader over plain files.
// Root is either a single definition file or a directory scanned recursively.
// Files are re-read on every Load, so edits are picked up without a watcher.
type Loader struct {
	Root string
}

// NewLoader creates a loader for root.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// Load parses the definition identified by id.
// For a single-file root the only valid id is the file name without extension.
func (l *Loader) Load(ctx context.Context, id string) (*domain.Definition, error) {
	files, err := l.index()
	if err != nil {
		return nil, err
	}
	path, ok := files[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDefinitionNotFound, id)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}
	def, err := compiler.Parse(path, data)
	if err != nil {
		return nil, err
	}
	def.Name = id
	return def, nil
}

// List returns all definition IDs under Root.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	files, err := l.index()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(files))
	for id := range files {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// index maps every ID to its file path, detecting collisions such as a.pda and a.yaml.
func (l *Loader) index() (map[string]string, error) {
	info, err := os.Stat(l.Root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDefinitionNotFound, l.Root)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", l.Root, err)
	}
	if !info.IsDir() {
		return map[string]string{trimExtension(filepath.Base(l.Root)): l.Root}, nil
	}

	files := make(map[string]string)
	err = filepath.WalkDir(l.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !recognised(path) {
			return nil
		}
		rel, err := filepath.Rel(l.Root, path)
		if err != nil {
			return err
		}
		id := trimExtension(rel)
		if existing, ok := files[id]; ok {
			return fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existing, path)
		}
		files[id] = path
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func recognised(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func trimExtension(id string) string {
	return filepath.ToSlash(strings.TrimSuffix(id, filepath.Ext(id)))
}
