package cli

import "time"

// RunOptions contains the configuration shared by every command.
type RunOptions struct {
	// Path is a definition file or a directory of definitions.
	Path string
	// DefinitionID selects one definition when Path holds several.
	DefinitionID string
	Debug        bool
	MaxTicks     int
	Parallelism  int
	// CacheDir enables the file verdict cache when set.
	CacheDir string

	// REPL only.
	JSON         bool
	Trace        bool
	Watch        bool
	MaxInputSize int
}

// ServeOptions configures the HTTP server.
type ServeOptions struct {
	RunOptions
	Port          int
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
}

// MCPOptions configures the MCP server.
type MCPOptions struct {
	RunOptions
	Transport string
	Port      int
}

// CacheOptions selects the verdict cache managed by the cache commands.
// Redis wins when RedisAddr is set, otherwise the file cache under Dir is used.
type CacheOptions struct {
	Dir           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}
