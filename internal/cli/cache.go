package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/magazine/pkg/adapters/file"
	redisAdapter "github.com/aretw0/magazine/pkg/adapters/redis"
)

// managedCache is a verdict cache that can be listed and cleared.
type managedCache interface {
	Keys(ctx context.Context) ([]string, error)
	Purge(ctx context.Context) error
}

func openCache(ctx context.Context, opts CacheOptions) (managedCache, func() error, error) {
	if opts.RedisAddr == "" {
		return file.NewCache(opts.Dir), func() error { return nil }, nil
	}
	cache := redisAdapter.New(opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
	if err := cache.Ping(ctx); err != nil {
		_ = cache.Close()
		return nil, nil, fmt.Errorf("redis cache unavailable at %s: %w", opts.RedisAddr, err)
	}
	return cache, cache.Close, nil
}

// ListCache prints the keys of every cached verdict.
func ListCache(ctx context.Context, opts CacheOptions, out io.Writer) error {
	cache, closeFn, err := openCache(ctx, opts)
	if err != nil {
		return err
	}
	defer closeFn()

	keys, err := cache.Keys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Fprintln(out, "No cached verdicts.")
		return nil
	}
	for _, k := range keys {
		fmt.Fprintln(out, k)
	}
	return nil
}

// PurgeCache removes every cached verdict.
func PurgeCache(ctx context.Context, opts CacheOptions, out io.Writer) error {
	cache, closeFn, err := openCache(ctx, opts)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := cache.Purge(ctx); err != nil {
		return err
	}
	printSystemMessage(out, "Verdict cache purged.")
	return nil
}
