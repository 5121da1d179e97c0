package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/magazine/pkg/domain"
)

// Cache implements ports.VerdictCache using the local filesystem.
// It stores one JSON file per verdict key in BasePath.
type Cache struct {
	BasePath string
}

// NewCache creates a new Cache with the given base path.
// If basePath is empty, it defaults to ".magazine/verdicts".
func NewCache(basePath string) *Cache {
	if basePath == "" {
		basePath = filepath.Join(".magazine", "verdicts")
	}
	return &Cache{BasePath: basePath}
}

// Put writes the verdict atomically: temp file, fsync, then rename over the destination.
func (c *Cache) Put(ctx context.Context, key string, verdict *domain.Verdict) error {
	if key == "" {
		return fmt.Errorf("cache key cannot be empty")
	}
	if err := os.MkdirAll(c.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure cache directory: %w", err)
	}

	data, err := json.Marshal(verdict)
	if err != nil {
		return fmt.Errorf("failed to marshal verdict: %w", err)
	}

	// Same directory, so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(c.BasePath, "tmp-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file.
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	dest := c.path(key)
	if _, err := os.Stat(dest); err == nil {
		if err := os.Remove(dest); err != nil {
			return fmt.Errorf("failed to replace cached verdict: %w", err)
		}
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Get reads a verdict.
func (c *Cache) Get(ctx context.Context, key string) (*domain.Verdict, error) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read cached verdict: %w", err)
	}

	var verdict domain.Verdict
	if err := json.Unmarshal(data, &verdict); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached verdict: %w", err)
	}
	return &verdict, nil
}

// Delete removes a verdict file.
func (c *Cache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete cached verdict: %w", err)
	}
	return nil
}

// Keys lists the cached verdict keys, sorted.
func (c *Cache) Keys(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(c.BasePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list cache directory: %w", err)
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" || strings.HasPrefix(name, "tmp-") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(keys)
	return keys, nil
}

// Purge removes every cached verdict.
func (c *Cache) Purge(ctx context.Context) error {
	keys, err := c.Keys(ctx)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := c.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.BasePath, filepath.Base(key)+".json")
}
