package main

import (
	"github.com/aretw0/magazine/internal/cli"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the verdict cache",
	Long:  `List or clear verdicts cached on disk (--cache-dir) or in Redis (--redis-addr).`,
}

var cacheLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List cached verdict keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ListCache(cmd.Context(), cacheOptions(cmd), cmd.OutOrStdout())
	},
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove every cached verdict",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.PurgeCache(cmd.Context(), cacheOptions(cmd), cmd.OutOrStdout())
	},
}

func cacheOptions(cmd *cobra.Command) cli.CacheOptions {
	flags := cmd.Flags()
	var opts cli.CacheOptions
	opts.Dir, _ = flags.GetString("cache-dir")
	opts.RedisAddr, _ = flags.GetString("redis-addr")
	opts.RedisPassword, _ = flags.GetString("redis-password")
	opts.RedisDB, _ = flags.GetInt("redis-db")
	return opts
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheLsCmd, cachePurgeCmd)
	addRedisFlags(cacheLsCmd)
	addRedisFlags(cachePurgeCmd)
}
