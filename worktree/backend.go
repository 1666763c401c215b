package worktree

import (
	"context"
	"errors"
)

var (
	ErrNotInRepository  = errors.New("not in a git repository")
	ErrMainWorktree     = errors.New("cannot delete main worktree")
	ErrWorktreeNotFound = errors.New("worktree not found")
)

type Worktree struct {
	Path   string
	Branch string
	IsMain bool
}

// Backend is the version-control seam. GitBackend shells out to git; tests
// use an in-memory fake.
type Backend interface {
	// ResolveMainRoot returns the main repository root for cwd, even when cwd
	// is inside a linked worktree. ok is false outside any repository.
	ResolveMainRoot(cwd string) (root string, ok bool, err error)
	ListWorktrees(ctx context.Context, repoRoot string) ([]Worktree, error)
	AddWorktree(ctx context.Context, repoRoot string, path string, branch string, createBranch bool) error
	RemoveWorktree(ctx context.Context, repoRoot string, path string) error
}
