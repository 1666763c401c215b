package worktree

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/wtmanager/wt/i18n"
)

// MainMarker is appended to the main worktree's selector label.
const MainMarker = " (main)"

// Registry is the part of the project registry the orchestrator touches.
type Registry interface {
	TouchProject(path string) error
}

// Provisioner sets up a directory after a switch. It reports its own
// problems and never fails the caller.
type Provisioner interface {
	Provision(dir string)
}

// Notifier receives user-facing status lines as message keys.
type Notifier interface {
	Info(key i18n.Key, args ...any)
	Success(key i18n.Key, args ...any)
	Warn(key i18n.Key, args ...any)
	Error(key i18n.Key, args ...any)
}

type Outcome int

const (
	OutcomeReused Outcome = iota
	OutcomeAttached
	OutcomeCreated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAttached:
		return "attached"
	case OutcomeCreated:
		return "created"
	default:
		return "reused"
	}
}

type Result struct {
	Path    string
	Branch  string
	Outcome Outcome
}

// RemoveError is returned by Delete when the backend refused the removal.
// The hint and the force command have already been reported.
type RemoveError struct {
	Worktree Worktree
	Err      error
}

func (e *RemoveError) Error() string { return e.Err.Error() }

func (e *RemoveError) Unwrap() error { return e.Err }

type Options struct {
	Backend     Backend
	Registry    Registry
	Provisioner Provisioner
	Notifier    Notifier
	// Home overrides the home directory used for worktree addresses.
	Home   string
	Logger *zap.Logger
}

type Orchestrator struct {
	backend     Backend
	registry    Registry
	provisioner Provisioner
	notify      Notifier
	home        string
	log         *zap.Logger
}

func NewOrchestrator(opts Options) *Orchestrator {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	notify := opts.Notifier
	if notify == nil {
		notify = discardNotifier{}
	}
	return &Orchestrator{
		backend:     opts.Backend,
		registry:    opts.Registry,
		provisioner: opts.Provisioner,
		notify:      notify,
		home:        opts.Home,
		log:         log.Named("orchestrator"),
	}
}

func (o *Orchestrator) homeDir() (string, error) {
	if strings.TrimSpace(o.home) != "" {
		return o.home, nil
	}
	return HomeDir()
}

// SwitchOrCreate makes sure a worktree for branch exists at its address and
// provisions it. An existing directory is reused without asking the backend.
func (o *Orchestrator) SwitchOrCreate(ctx context.Context, repoRoot string, branch string) (Result, error) {
	home, err := o.homeDir()
	if err != nil {
		return Result{}, err
	}
	target := Path(home, repoRoot, branch)
	log := o.log.With(zap.String("repo", repoRoot), zap.String("branch", branch), zap.String("target", target))

	exists, err := pathExists(target)
	if err != nil {
		return Result{}, err
	}
	if exists {
		log.Info("reusing existing worktree directory")
		o.notify.Info(i18n.WorktreeExists, branch)
		if err := o.touch(repoRoot); err != nil {
			return Result{}, err
		}
		o.finish(target)
		return Result{Path: target, Branch: branch, Outcome: OutcomeReused}, nil
	}

	// Not rolled back if both adds fail below.
	if err := os.MkdirAll(Base(home, repoRoot), 0o755); err != nil {
		return Result{}, fmt.Errorf("create worktree base: %w", err)
	}

	outcome := OutcomeAttached
	o.notify.Info(i18n.AddingWorktree, branch)
	if err := o.backend.AddWorktree(ctx, repoRoot, target, branch, false); err != nil {
		log.Debug("add for existing branch failed; creating branch", zap.Error(err))
		o.notify.Info(i18n.BranchNotFound, branch)
		if err := o.backend.AddWorktree(ctx, repoRoot, target, branch, true); err != nil {
			log.Warn("add with new branch failed", zap.Error(err))
			return Result{}, fmt.Errorf("failed to create new branch and worktree: %w", err)
		}
		outcome = OutcomeCreated
		o.notify.Success(i18n.BranchCreated, branch)
	} else {
		o.notify.Success(i18n.WorktreeAdded, branch)
	}
	log.Info("worktree ready", zap.Stringer("outcome", outcome))

	if err := o.touch(repoRoot); err != nil {
		return Result{}, err
	}
	o.finish(target)
	return Result{Path: target, Branch: branch, Outcome: outcome}, nil
}

// Create is the explicit create-new request from the selector. It still
// attaches an existing branch when one exists.
func (o *Orchestrator) Create(ctx context.Context, repoRoot string, branch string) (Result, error) {
	o.notify.Success(i18n.CreatingNewWorktree, branch)
	return o.SwitchOrCreate(ctx, repoRoot, branch)
}

// Open switches to the live worktree whose branch equals selection
// (case-insensitive), wherever the backend says it lives. Anything else is
// handed to SwitchOrCreate.
func (o *Orchestrator) Open(ctx context.Context, repoRoot string, selection string) (Result, error) {
	worktrees, err := o.backend.ListWorktrees(ctx, repoRoot)
	if err != nil {
		return Result{}, err
	}
	if wt, ok := findByBranch(worktrees, selection); ok {
		o.notify.Success(i18n.SwitchingToWorktree, wt.Branch)
		o.notify.Info(i18n.CdCommand, wt.Path)
		if err := o.touch(repoRoot); err != nil {
			return Result{}, err
		}
		o.provision(wt.Path)
		return Result{Path: wt.Path, Branch: wt.Branch, Outcome: OutcomeReused}, nil
	}
	o.notify.Success(i18n.CreatingNewWorktree, selection)
	return o.SwitchOrCreate(ctx, repoRoot, selection)
}

// Delete removes the non-main worktree checked out on branch.
func (o *Orchestrator) Delete(ctx context.Context, repoRoot string, branch string) (Worktree, error) {
	worktrees, err := o.backend.ListWorktrees(ctx, repoRoot)
	if err != nil {
		return Worktree{}, err
	}
	wt, ok := findByBranch(worktrees, branch)
	if !ok {
		o.notify.Error(i18n.WorktreeNotFound, branch)
		return Worktree{}, fmt.Errorf("%w: %s", ErrWorktreeNotFound, branch)
	}
	if wt.IsMain {
		o.notify.Error(i18n.CannotDeleteMain)
		return wt, ErrMainWorktree
	}

	o.notify.Info(i18n.DeletingWorktree, wt.Branch)
	if err := o.backend.RemoveWorktree(ctx, repoRoot, wt.Path); err != nil {
		o.log.Warn("remove worktree failed", zap.String("path", wt.Path), zap.Error(err))
		o.notify.Error(i18n.FailedToDelete, err)
		o.notify.Warn(i18n.UncommittedChangesTip)
		o.notify.Info(i18n.ForceDeleteCommand)
		o.notify.Info(i18n.ForceDeleteLine, wt.Path)
		return wt, &RemoveError{Worktree: wt, Err: err}
	}
	o.log.Info("worktree removed", zap.String("path", wt.Path), zap.String("branch", wt.Branch))
	o.notify.Success(i18n.WorktreeDeleted, wt.Branch)
	return wt, nil
}

// Candidates returns selector labels for the repository's live worktrees,
// in backend order, alongside the worktrees themselves.
func (o *Orchestrator) Candidates(ctx context.Context, repoRoot string) ([]string, []Worktree, error) {
	worktrees, err := o.backend.ListWorktrees(ctx, repoRoot)
	if err != nil {
		return nil, nil, err
	}
	labels := make([]string, 0, len(worktrees))
	for _, wt := range worktrees {
		label := wt.Branch
		if wt.IsMain {
			label += MainMarker
		}
		labels = append(labels, label)
	}
	return labels, worktrees, nil
}

// SwitchProject is the project-switch flow used outside any repository.
func (o *Orchestrator) SwitchProject(path string, name string) error {
	o.notify.Success(i18n.SwitchingToProject, name)
	o.notify.Info(i18n.CdCommand, path)
	if err := o.touch(path); err != nil {
		return err
	}
	o.provision(path)
	return nil
}

func (o *Orchestrator) finish(target string) {
	o.notify.Success(i18n.WorktreeReady, target)
	o.notify.Info(i18n.SwitchHint)
	o.notify.Info(i18n.CdCommand, target)
	o.provision(target)
}

func (o *Orchestrator) touch(repoRoot string) error {
	if o.registry == nil {
		return nil
	}
	if err := o.registry.TouchProject(repoRoot); err != nil {
		return fmt.Errorf("update project registry: %w", err)
	}
	return nil
}

func (o *Orchestrator) provision(dir string) {
	if o.provisioner == nil {
		return
	}
	o.provisioner.Provision(dir)
}

func findByBranch(worktrees []Worktree, branch string) (Worktree, bool) {
	branch = strings.TrimSpace(branch)
	for _, wt := range worktrees {
		if strings.EqualFold(wt.Branch, branch) {
			return wt, true
		}
	}
	return Worktree{}, false
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

type discardNotifier struct{}

func (discardNotifier) Info(i18n.Key, ...any)    {}
func (discardNotifier) Success(i18n.Key, ...any) {}
func (discardNotifier) Warn(i18n.Key, ...any)    {}
func (discardNotifier) Error(i18n.Key, ...any)   {}
