package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Options carries the process streams so tests can drive the router.
type Options struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func (o *Options) defaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
}

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Run parses root flags, then dispatches the subcommand and returns an exit
// code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	opt.defaults()
	ui.SetOutput(opt.Out, opt.Err)

	fs := pflag.NewFlagSet("todo", pflag.ContinueOnError)
	fs.SetOutput(opt.Err)
	fs.Usage = func() { PrintHelp(opt.Out) }
	config.RegisterFlags(fs)

	cfg, rest, err := config.Load(fs, args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		ui.Fail(err.Error())
		return exitUsage
	}
	ui.SetTheme(cfg.Theme)
	ui.SetColorMode(cfg.Color)

	if len(rest) == 0 {
		PrintHelp(opt.Out)
		return exitUsage
	}
	cmd, a := rest[0], rest[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return exitOK
	case "auth":
		return runAuth(a, opt)
	case "serve":
		return runServe(ctx, cfg, a, opt)
	case "ls", "list", "add", "done", "rm", "stats":
	default:
		ui.Fail("unknown subcommand: " + cmd)
		fmt.Fprintln(opt.Err)
		PrintHelp(opt.Err)
		return exitUsage
	}

	app, code := newApp(cfg, cmd == "ls")
	if code != exitOK {
		return code
	}
	defer app.close()

	switch cmd {
	case "ls":
		return app.doInteractive(ctx)
	case "list":
		return app.doList(ctx, a)
	case "add":
		if len(a) == 0 {
			ui.Fail("usage: todo add <title...>")
			return exitUsage
		}
		return app.doAdd(ctx, strings.Join(a, " "))
	case "done":
		n, code := indexArg("done", a)
		if code != exitOK {
			return code
		}
		return app.doToggle(ctx, n)
	case "rm":
		n, code := indexArg("rm", a)
		if code != exitOK {
			return code
		}
		return app.doRemove(ctx, n)
	default: // stats
		return app.doStats(ctx)
	}
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - a to-do client for a remote list

Usage:
  todo [flags] <subcommand> [args]

Subcommands:
  ls                 Interactive list (TUI)
  list [--group]     Print items (optionally grouped by pending/done)
  add <title...>     Add a new item (title can be multiple words)
  done <index>       Toggle done for item at 1-based index
  rm <index>         Remove item at 1-based index
  stats              Show totals and progress
  auth <login|logout|status|whoami>   Token authentication
  serve [--addr A] [--seed FILE]      Run an in-memory dev API

Flags:
  --api URL          Base URL of the collection (env TADA_API_URL)
  --config FILE      Config file (default ~/.tada/config.toml)
  --theme NAME       classic, neon or mono (env TADA_THEME)
  --color, --no-color
  --log-file PATH    Write logs to PATH (env TADA_LOG_FILE)
  --log-level LEVEL  debug, info, warn, error
  --timeout DUR      Per-request timeout, e.g. 5s

Examples:
  todo add "Buy milk"
  todo ls
  todo done 2
  todo rm 3
`)
}

func indexArg(name string, a []string) (int, int) {
	if len(a) != 1 {
		ui.Fail("usage: todo " + name + " <index>")
		return 0, exitUsage
	}
	n, err := strconv.Atoi(a[0])
	if err != nil {
		ui.Fail(name + ": not a number: " + a[0])
		return 0, exitUsage
	}
	return n, exitOK
}
