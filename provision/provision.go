package provision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/wtmanager/wt/i18n"
)

const defaultShell = "zsh"

type Notifier interface {
	Info(key i18n.Key, args ...any)
	Success(key i18n.Key, args ...any)
	Warn(key i18n.Key, args ...any)
	Error(key i18n.Key, args ...any)
}

// ExitError means the setup script ran and exited non-zero.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("setup exited with status %d", e.Code)
}

// Runner executes script with shell -c inside dir. A script that ran but
// failed is reported as *ExitError; any other error means it never ran.
type Runner func(ctx context.Context, shell string, dir string, script string) (stdout []byte, stderr []byte, err error)

type Options struct {
	Shell    string
	Runner   Runner
	Notifier Notifier
	Logger   *zap.Logger
}

type Provisioner struct {
	shell  string
	run    Runner
	notify Notifier
	log    *zap.Logger
}

func New(opts Options) *Provisioner {
	shell := strings.TrimSpace(opts.Shell)
	if shell == "" {
		shell = defaultShell
	}
	run := opts.Runner
	if run == nil {
		run = runShell
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Provisioner{shell: shell, run: run, notify: opts.Notifier, log: log.Named("provision")}
}

// Provision runs the detected setup in dir. Problems are reported as
// warnings and never returned.
func (p *Provisioner) Provision(dir string) {
	plan := Detect(dir)
	if plan.Empty() {
		p.log.Debug("no setup markers", zap.String("dir", dir))
		return
	}
	script := plan.Script()
	p.info(i18n.SetupRunning, script)
	p.log.Info("running setup", zap.String("dir", dir), zap.String("shell", p.shell), zap.String("script", script))

	stdout, stderr, err := p.run(context.Background(), p.shell, dir, script)
	if err == nil {
		p.success(i18n.SetupDone)
		return
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		p.log.Warn("setup could not start", zap.Error(err))
		p.warn(i18n.SetupCouldNotRun, err)
		return
	}
	p.log.Warn("setup failed", zap.Int("code", exitErr.Code))
	p.warn(i18n.SetupIssues)
	if out := strings.TrimSpace(string(stdout)); out != "" {
		p.info(i18n.SetupOutput, out)
	}
	if out := strings.TrimSpace(string(stderr)); out != "" {
		p.warn(i18n.SetupErrorOutput, out)
	}
}

func (p *Provisioner) info(key i18n.Key, args ...any) {
	if p.notify != nil {
		p.notify.Info(key, args...)
	}
}

func (p *Provisioner) success(key i18n.Key, args ...any) {
	if p.notify != nil {
		p.notify.Success(key, args...)
	}
}

func (p *Provisioner) warn(key i18n.Key, args ...any) {
	if p.notify != nil {
		p.notify.Warn(key, args...)
	}
}

func runShell(ctx context.Context, shell string, dir string, script string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, shell, "-c", script)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.Bytes(), stderr.Bytes(), &ExitError{Code: exitErr.ExitCode()}
	}
	return stdout.Bytes(), stderr.Bytes(), err
}
