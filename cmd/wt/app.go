package main

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/wtmanager/wt/console"
	"github.com/wtmanager/wt/i18n"
	"github.com/wtmanager/wt/logging"
	"github.com/wtmanager/wt/provision"
	"github.com/wtmanager/wt/registry"
	"github.com/wtmanager/wt/worktree"
)

var newBackendFn = func(log *zap.Logger) worktree.Backend {
	return worktree.NewGitBackend(log)
}

type appOptions struct {
	Language    string
	NoProvision bool
}

// app holds everything one invocation needs, resolved once at startup.
type app struct {
	home     string
	msgs     *i18n.Messages
	reporter *console.Reporter
	log      *zap.Logger
	closeLog func() error
	backend  worktree.Backend
	registry *registry.Store
	orch     *worktree.Orchestrator
}

func newApp(opts appOptions, stdout io.Writer, stderr io.Writer) (*app, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	home, err := worktree.HomeDir()
	if err != nil {
		return nil, err
	}

	msgs := i18n.New(i18n.ParseLanguage(resolveLanguage(opts.Language, cfg.Language)))
	reporter := console.New(msgs, stdout, stderr)

	log, closeLog, err := logging.New(logging.Config{
		FilePath: logging.DefaultPath(registry.StateDir(home)),
		Level:    cfg.LogLevel,
	})
	if err != nil {
		fmt.Fprintln(stderr, "wt warning: diagnostic log disabled:", err)
		log = zap.NewNop()
		closeLog = func() error { return nil }
	}

	store := registry.New(registry.DefaultPath(home), registry.WithLogger(log))
	backend := newBackendFn(log)

	var provisioner worktree.Provisioner
	if cfg.ProvisionEnabled() && !opts.NoProvision && !provisioningDisabled() {
		shell := cfg.Shell
		if shell == "" {
			shell = shellFromEnv()
		}
		provisioner = provision.New(provision.Options{
			Shell:    shell,
			Notifier: reporter,
			Logger:   log,
		})
	}

	orch := worktree.NewOrchestrator(worktree.Options{
		Backend:     backend,
		Registry:    store,
		Provisioner: provisioner,
		Notifier:    reporter,
		Home:        home,
		Logger:      log,
	})

	log.Debug("startup",
		zap.String("version", currentVersion()),
		zap.Stringer("language", msgs.Language()),
		zap.Bool("provision", provisioner != nil),
	)

	return &app{
		home:     home,
		msgs:     msgs,
		reporter: reporter,
		log:      log,
		closeLog: closeLog,
		backend:  backend,
		registry: store,
		orch:     orch,
	}, nil
}

func (a *app) Close() error {
	return a.closeLog()
}

// resolveLanguage picks the flag, then the config, then the locale env.
func resolveLanguage(flag string, configured string) string {
	if v := strings.TrimSpace(flag); v != "" {
		return v
	}
	if v := strings.TrimSpace(configured); v != "" {
		return v
	}
	return localeFromEnv()
}
