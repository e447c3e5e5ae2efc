// Command betterpython is the module-graph and linker driver: it resolves
// a .bp entry point's import graph, topologically orders it, and links an
// externally-compiled module set into one image. Parsing guest source
// into a Module{imports, functions} AST and compiling functions to
// bytecode are both the job of tools upstream of this one (spec.md §1
// draws that line explicitly), so "resolve" accepts only import
// declarations and "link" accepts only already-compiled JSON, the same
// two shapes modgraph and linker operate on internally.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/th3f0rk/betterpython/config"
	"github.com/th3f0rk/betterpython/diagnostics"
	"github.com/th3f0rk/betterpython/linker"
	"github.com/th3f0rk/betterpython/modgraph"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [args...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  resolve <entry.bp>        Resolve and topologically order entry's import graph\n")
		fmt.Fprintf(os.Stderr, "  link <compiled.json>      Link an externally-compiled module set into one image\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}

	cfg, err := config.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	var logger *diagnostics.Logger
	if cfg.LogPath != "" {
		logger = diagnostics.NewLogger(cfg.LogPath)
		defer logger.Close()
	}

	// config.ParseFlags treats the first non-flag token as an EntryPath
	// suitable for a bare `betterpython run script.bp` invocation; this
	// driver instead takes a leading subcommand, so it re-reads the
	// positional args itself rather than trusting cfg.EntryPath/cfg.Argv.
	rest := flag.Args()
	if len(rest) < 2 {
		flag.Usage()
		os.Exit(1)
	}
	command, path := rest[0], rest[1]

	var cmdErr error
	switch command {
	case "resolve":
		cmdErr = runResolve(path, cfg, logger)
	case "link":
		cmdErr = runLink(path, cfg, logger)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}

	if cmdErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cmdErr)
		os.Exit(1)
	}
}

// runResolve is a thin driver over modgraph: it knows nothing of
// BetterPython statement or expression syntax, only the "import NAME"
// declaration line modgraph.Module.Imports needs.
func runResolve(entryPath string, cfg *config.Config, logger *diagnostics.Logger) error {
	var cache *modgraph.DiskCache
	if cfg.CacheDir != "" {
		c, err := modgraph.OpenDiskCache(context.Background(), cfg.CacheDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: disk cache disabled: %v\n", err)
		} else {
			cache = c
		}
	}

	read := func(absPath string) ([]byte, error) {
		if cache != nil {
			if b, ok := cache.GetSource(absPath); ok {
				return b, nil
			}
		}
		b, err := os.ReadFile(absPath)
		if err != nil {
			return nil, err
		}
		if cache != nil {
			_ = cache.PutSource(absPath, b)
		}
		return b, nil
	}

	graph, err := modgraph.ResolveAll(entryPath, cfg.SearchPaths, read, scanImports)
	if err != nil {
		if logger != nil {
			_ = logger.Logf("resolve", "%v", err)
		}
		return err
	}

	order, err := modgraph.Sort(graph)
	if err != nil {
		if logger != nil {
			_ = logger.Logf("resolve", "%v", err)
		}
		return err
	}

	for _, idx := range order {
		mi := graph.Modules[idx]
		fmt.Printf("%s\t%s\n", mi.Name, mi.AbsolutePath)
	}
	return nil
}

// runLink reads a JSON-encoded []linker.CompiledModule, the shape an
// external compiler emits, and links it into one Image.
func runLink(path string, cfg *config.Config, logger *diagnostics.Logger) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var modules []linker.CompiledModule
	if err := json.Unmarshal(raw, &modules); err != nil {
		return fmt.Errorf("decoding compiled module set: %w", err)
	}

	img, err := linker.Link(modules)
	if err != nil {
		if logger != nil {
			_ = logger.Logf("link", "%v", err)
		}
		return err
	}

	if cfg.PrintSymbols {
		img.PrintSymbols(os.Stdout)
		return nil
	}

	out, err := img.Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

// scanImports is the minimal stand-in for the real parser: it reads
// "import NAME" lines and ignores everything else, just enough to build
// the dependency graph modgraph.ResolveAll needs. It emits no functions,
// since compiling them is likewise upstream of this driver.
func scanImports(sourceBytes []byte) (*modgraph.Module, error) {
	mod := &modgraph.Module{}
	for _, line := range strings.Split(string(sourceBytes), "\n") {
		line = strings.TrimSpace(line)
		if name, ok := strings.CutPrefix(line, "import "); ok {
			if name = strings.TrimSpace(name); name != "" {
				mod.Imports = append(mod.Imports, modgraph.Import{ModuleName: name})
			}
		}
	}
	return mod, nil
}
