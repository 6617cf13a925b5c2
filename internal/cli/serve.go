package cli

import (
	"context"
	"errors"
	"net/url"

	"github.com/spf13/pflag"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/devserver"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store/jsonstore"
	"github.com/Makepad-fr/tada/internal/ui"
)

func runServe(ctx context.Context, cfg *config.Config, args []string, opt Options) int {
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	fs.SetOutput(opt.Err)
	addr := fs.String("addr", ":8000", "listen address")
	base := fs.String("base", "", "collection path (default: path of --api)")
	seed := fs.String("seed", "", "JSON file with initial items")
	token := fs.String("token", "", "require this bearer token")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	basePath := *base
	if basePath == "" {
		if u, err := url.Parse(cfg.APIURL); err == nil && u.Path != "" {
			basePath = u.Path
		}
	}

	var items []model.Item
	if *seed != "" {
		loaded, err := jsonstore.Load(*seed)
		if err != nil {
			ui.Fail("seed: " + err.Error())
			return exitError
		}
		items = loaded
	}

	logger, err := logging.New(logging.Options{
		File:    cfg.LogFile,
		Level:   cfg.LogLevel,
		Prefix:  "tada-serve",
		Console: opt.Err,
	})
	if err != nil {
		ui.Fail("log: " + err.Error())
		return exitUsage
	}
	defer logger.Close()

	srv := devserver.New(devserver.Config{
		Addr:     *addr,
		BasePath: basePath,
		Token:    *token,
		Seed:     items,
	}, logger.Logger)
	if err := srv.ListenAndServe(ctx); err != nil {
		ui.Fail("serve: " + err.Error())
		return exitError
	}
	return exitOK
}
