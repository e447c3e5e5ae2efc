// Package config holds the driver's flag-parsed settings, in the same
// "flag.String with a sane default, then validate" shape bin/server/main.go
// and server/server.go use.
package config

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/th3f0rk/betterpython/modgraph"
)

// Config is the resolved configuration for cmd/betterpython and
// cmd/betterpython-netshell.
type Config struct {
	// EntryPath is the first positional argument: the .bp file to resolve
	// and link.
	EntryPath string
	// SearchPaths are extra module search-path entries, from
	// BETTERPYTHON_PATH, ahead of the built-in stdlib/packages fallbacks
	// (spec.md §4.C's Find algorithm).
	SearchPaths []string
	// CacheDir, if non-empty, enables modgraph.DiskCache rooted there.
	CacheDir string
	// LogPath is where diagnostics.Logger writes rotating JSON-lines
	// entries; empty disables file logging.
	LogPath string
	// PrintSymbols requests a symbol-table dump (linker.Image.PrintSymbols)
	// instead of the linked image's JSON dump.
	PrintSymbols bool
	// SSHListen is the address cmd/betterpython-netshell listens on.
	SSHListen string
	// Argv is forwarded to the VM's argv/argc built-ins.
	Argv []string
}

// DefaultCacheDir mirrors server/server.go's `filepath.Join(os.Getenv("HOME"),
// ".juicemud")` default-under-home idiom.
func DefaultCacheDir() string {
	return filepath.Join(os.Getenv("HOME"), ".betterpython", "cache")
}

// DefaultConfig returns the zero-flags configuration a bare `betterpython
// run script.bp` invocation should use.
func DefaultConfig() *Config {
	return &Config{
		CacheDir:  DefaultCacheDir(),
		SSHListen: "127.0.0.1:15099",
	}
}

// ParseFlags parses the driver's command-line flags (excluding the program
// name) into a Config, following the flag.String-with-default idiom
// server/server.go and bin/server/main.go use throughout.
func ParseFlags(fs *flag.FlagSet, args []string) (*Config, error) {
	def := DefaultConfig()

	cacheDir := fs.String("cache-dir", def.CacheDir, "Where to keep the module resolution disk cache; empty disables it")
	logPath := fs.String("log", "", "Path to a rotating JSON-lines diagnostics log; empty disables file logging")
	printSymbols := fs.Bool("symbols", false, "Print the linked image's symbol table instead of its JSON dump")
	sshListen := fs.String("ssh", def.SSHListen, "Where cmd/betterpython-netshell listens for SSH connections")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		CacheDir:     *cacheDir,
		LogPath:      *logPath,
		PrintSymbols: *printSymbols,
		SSHListen:    *sshListen,
		SearchPaths:  modgraph.SearchPathsFromEnv(os.Getenv),
	}

	rest := fs.Args()
	if len(rest) > 0 {
		cfg.EntryPath = rest[0]
		cfg.Argv = rest
	}
	return cfg, nil
}
