package cli

import (
	"github.com/Makepad-fr/tada/internal/api"
	"github.com/Makepad-fr/tada/internal/auth"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/service"
	"github.com/Makepad-fr/tada/internal/ui"
)

// app is what the item subcommands share: the resolved config, a logger and
// the service wired to the remote client.
type app struct {
	cfg *config.Config
	log *logging.Logger
	svc *service.Service
}

// newApp wires the client. Interactive mode never logs to the terminal;
// one-shot commands at debug level log to stderr when no log file is set.
// Otherwise logs go to the log file or nowhere.
func newApp(cfg *config.Config, interactive bool) (*app, int) {
	opts := logging.Options{File: cfg.LogFile, Level: cfg.LogLevel}
	if !interactive && cfg.LogFile == "" && cfg.LogLevel == "debug" {
		opts.Console = ui.ErrOutput()
	}
	logger, err := logging.New(opts)
	if err != nil {
		ui.Fail("log: " + err.Error())
		return nil, exitUsage
	}

	clientOpts := []api.Option{api.WithTimeout(cfg.Timeout)}
	ti, err := auth.GetToken()
	if err != nil {
		logger.Warn("ignoring credentials", "err", err)
	}
	if ti != nil {
		clientOpts = append(clientOpts, api.WithToken(ti.Token))
	}
	client, err := api.New(cfg.APIURL, clientOpts...)
	if err != nil {
		_ = logger.Close()
		ui.Fail("api: " + err.Error())
		return nil, exitUsage
	}
	logger.Debug("client ready", "base", client.BaseURL(), "auth", ti != nil)

	return &app{
		cfg: cfg,
		log: logger,
		svc: service.New(client, logger.Logger),
	}, exitOK
}

func (a *app) close() { _ = a.log.Close() }
