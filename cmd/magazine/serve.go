package main

import (
	"github.com/aretw0/magazine/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve [path]",
	Short: "Start the HTTP server",
	Long: `Exposes the automaton as a JSON API (see /openapi.yaml), with Prometheus metrics on
/metrics. Verdicts can be shared across instances through a Redis cache.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		opts := cli.ServeOptions{RunOptions: runOptions(cmd, args)}
		opts.Port, _ = flags.GetInt("port")
		opts.RedisAddr, _ = flags.GetString("redis-addr")
		opts.RedisPassword, _ = flags.GetString("redis-password")
		opts.RedisDB, _ = flags.GetInt("redis-db")
		opts.CacheTTL, _ = flags.GetDuration("cache-ttl")
		ctx, stop := signalContext(cmd)
		defer stop()
		return cli.Serve(ctx, opts, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	addRedisFlags(serveCmd)
	serveCmd.Flags().Duration("cache-ttl", 0, "Expiry of cached verdicts (0 keeps them forever)")
}

func addRedisFlags(cmd *cobra.Command) {
	cmd.Flags().String("redis-addr", "", "Redis address for the verdict cache (host:port)")
	cmd.Flags().String("redis-password", "", "Redis password")
	cmd.Flags().Int("redis-db", 0, "Redis database number")
}
