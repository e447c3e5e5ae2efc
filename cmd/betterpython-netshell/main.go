// Command betterpython-netshell is an SSH front end onto the built-in
// dispatch layer (Component B): it gives each connection its own heap and
// a line REPL that calls builtin.Dispatch directly by name, the same
// "per-session terminal over one long-running handler" shape
// server/server.go and game/game.go's HandleSession use for JuiceMUD
// connections. It is a supplemented feature, not a VM: there is no
// bytecode executing here, only interactive built-in calls, because the
// VM instruction dispatch loop and the guest-source parser are both
// external to this core (spec.md §1).
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/buildkite/shellwords"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
	"golang.org/x/term"

	"github.com/th3f0rk/betterpython/bpcore"
	"github.com/th3f0rk/betterpython/builtin"
	"github.com/th3f0rk/betterpython/config"
	"github.com/th3f0rk/betterpython/crypto"
	"github.com/th3f0rk/betterpython/diagnostics"
	"github.com/th3f0rk/betterpython/value"
)

func main() {
	cfg, err := config.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	var logger *diagnostics.Logger
	if cfg.LogPath != "" {
		logger = diagnostics.NewLogger(cfg.LogPath)
		defer logger.Close()
	}

	dir := cfg.CacheDir
	if dir == "" {
		dir = config.DefaultCacheDir()
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		log.Fatal(err)
	}

	crypt := crypto.Crypto{
		Hostname:      "localhost",
		PrivKeyPath:   filepath.Join(dir, "netshell_privkey"),
		SSHPubKeyPath: filepath.Join(dir, "netshell_pubkey"),
		HTTPSCertPath: filepath.Join(dir, "netshell_cert"),
	}
	if _, err := os.Stat(crypt.PrivKeyPath); os.IsNotExist(err) {
		if err := crypt.Generate(); err != nil {
			log.Fatal(err)
		}
	} else if err != nil {
		log.Fatal(err)
	}

	pemBytes, err := os.ReadFile(crypt.PrivKeyPath)
	if err != nil {
		log.Fatal(err)
	}
	signer, err := gossh.ParsePrivateKey(pemBytes)
	if err != nil {
		log.Fatal(err)
	}

	srv := &session{cfg: cfg, logger: logger}

	sshServer := &ssh.Server{
		Addr:    cfg.SSHListen,
		Handler: srv.handle,
	}
	sshServer.AddHostKey(signer)
	log.Printf("betterpython-netshell listening on %q", cfg.SSHListen)
	log.Fatal(sshServer.ListenAndServe())
}

type session struct {
	cfg    *config.Config
	logger *diagnostics.Logger
}

// handle runs one REPL per SSH connection, each with its own heap and
// built-in Context, mirroring game.Game.HandleSession's per-session state.
func (s *session) handle(sess ssh.Session) {
	t := term.NewTerminal(sess, "bp> ")
	h := value.NewHeapCtx()
	ctx := builtin.NewContext(h, s.cfg.Argv)
	ctx.Getenv = os.Getenv
	ctx.ClockMs = func() int64 { return time.Now().UnixMilli() }

	fmt.Fprintln(t, "betterpython netshell. Type a built-in name and arguments, \"help\", or \"exit\".")
	for {
		line, err := t.ReadLine()
		if err != nil {
			if err != io.EOF {
				log.Println(err)
			}
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return
		}
		if line == "help" {
			fmt.Fprintln(t, strings.Join(builtin.Names(), " "))
			continue
		}
		s.evalLine(t, ctx, line)
	}
}

// evalLine dispatches one line. Dispatch itself never recovers a fatal
// panic (registry.go documents that boundary explicitly); this is the
// handler positioned to catch it, log it, and keep the connection open
// for the next line rather than crashing the whole netshell process.
func (s *session) evalLine(t *term.Terminal, ctx *builtin.Context, line string) {
	var builtinName string
	defer func() {
		if r := recover(); r != nil {
			fatal, ok := r.(*bpcore.FatalError)
			if !ok {
				panic(r)
			}
			fmt.Fprintf(t, "fatal: %v\n", fatal)
			if s.logger != nil {
				_ = s.logger.Log(diagnostics.FatalBuiltinError{Builtin: builtinName, Message: fatal.Error()})
			}
		}
	}()

	parts, err := shellwords.SplitPosix(line)
	if err != nil {
		fmt.Fprintf(t, "parse error: %v\n", err)
		return
	}
	if len(parts) == 0 {
		return
	}
	builtinName = parts[0]

	id, ok := builtin.ByName(parts[0])
	if !ok {
		fmt.Fprintf(t, "unknown built-in %q (try \"help\")\n", parts[0])
		return
	}

	args := make([]value.Value, len(parts)-1)
	for i, raw := range parts[1:] {
		args[i] = parseLiteral(ctx.H, raw)
	}

	result := builtin.Dispatch(ctx, id, args)
	fmt.Fprintln(t, value.Render(result))
}

// parseLiteral converts one shell-split token into a Value: int, float,
// bool and null literals, falling back to a heap string for anything
// else. There is no guest-visible expression syntax here, only the
// literal argument shapes the built-ins themselves expect.
func parseLiteral(h *value.HeapCtx, raw string) value.Value {
	switch raw {
	case "true":
		return value.Bool(true)
	case "false":
		return value.Bool(false)
	case "null":
		return value.Null()
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return value.Int(i)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return value.Float(f)
	}
	return h.NewStr([]byte(raw))
}
