package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/magazine"
	"github.com/aretw0/magazine/pkg/adapters/file"
	loamAdapter "github.com/aretw0/magazine/pkg/adapters/loam"
	"github.com/aretw0/magazine/pkg/observability"
	"github.com/aretw0/magazine/pkg/ports"
)

// createEngine initializes an engine with standard CLI conventions.
func createEngine(opts RunOptions, logger *slog.Logger, extra ...magazine.Option) (*magazine.Engine, error) {
	engineOpts := []magazine.Option{
		magazine.WithLogger(logger),
		magazine.WithMaxTicks(opts.MaxTicks),
		magazine.WithParallelism(opts.Parallelism),
	}

	if opts.Debug {
		engineOpts = append(engineOpts, magazine.WithLifecycleHooks(observability.LoggingHooks(logger)))
	}

	id := opts.DefinitionID
	if id == "" {
		id = determineDefinitionID(opts.Path)
	}
	if id != "" {
		engineOpts = append(engineOpts, magazine.WithDefinitionID(id))
	}

	if opts.CacheDir != "" {
		engineOpts = append(engineOpts, magazine.WithCache(file.NewCache(opts.CacheDir)))
	}

	engine, err := magazine.New(opts.Path, append(engineOpts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}

// openLoader opens every definition under path, without selecting one.
func openLoader(path string) (ports.DefinitionLoader, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if info.IsDir() {
		return loamAdapter.Open(abs)
	}
	return file.NewLoader(abs), nil
}
