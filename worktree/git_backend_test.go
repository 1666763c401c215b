package worktree

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestCommandErrorWithOutput_PrefersCommandOutput(t *testing.T) {
	fallback := errors.New("exit status 128")
	err := commandErrorWithOutput(fallback, []byte("fatal: worktree contains unstaged changes\n"))
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(err.Error(), "unstaged changes") {
		t.Fatalf("expected stderr message, got %q", err.Error())
	}
}

func TestCommandErrorWithOutput_FallsBackToOriginalError(t *testing.T) {
	fallback := errors.New("exit status 128")
	err := commandErrorWithOutput(fallback, []byte("   \n\t"))
	if err == nil {
		t.Fatalf("expected an error")
	}
	if err.Error() != fallback.Error() {
		t.Fatalf("expected fallback error %q, got %q", fallback.Error(), err.Error())
	}
}

func TestCommandErrorWithOutput_NilError(t *testing.T) {
	if err := commandErrorWithOutput(nil, []byte("ignored")); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=wt", "GIT_AUTHOR_EMAIL=wt@example.com",
		"GIT_COMMITTER_NAME=wt", "GIT_COMMITTER_EMAIL=wt@example.com",
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
	}
}

func initRepo(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("eval tempdir: %v", err)
	}
	repo := filepath.Join(dir, "proj")
	if err := os.MkdirAll(repo, 0o755); err != nil {
		t.Fatalf("mkdir repo: %v", err)
	}
	runGit(t, repo, "init", "-q", "-b", "main")
	if err := os.WriteFile(filepath.Join(repo, "README.md"), []byte("hi\n"), 0o644); err != nil {
		t.Fatalf("write readme: %v", err)
	}
	runGit(t, repo, "add", ".")
	runGit(t, repo, "commit", "-q", "-m", "init")
	return repo
}

func TestGitBackend_AddListRemove(t *testing.T) {
	requireGit(t)
	repo := initRepo(t)
	backend := NewGitBackend(nil)
	ctx := context.Background()
	target := filepath.Join(filepath.Dir(repo), "wt", "feature-x")

	if err := backend.AddWorktree(ctx, repo, target, "feature-x", false); err == nil {
		t.Fatalf("expected add for a missing branch to fail")
	}
	if err := backend.AddWorktree(ctx, repo, target, "feature-x", true); err != nil {
		t.Fatalf("add with new branch: %v", err)
	}

	worktrees, err := backend.ListWorktrees(ctx, repo)
	if err != nil {
		t.Fatalf("list worktrees: %v", err)
	}
	if len(worktrees) != 2 {
		t.Fatalf("expected 2 worktrees, got %+v", worktrees)
	}
	if !worktrees[0].IsMain || worktrees[0].Branch != "main" {
		t.Fatalf("expected main first, got %+v", worktrees[0])
	}
	if worktrees[1].IsMain || worktrees[1].Branch != "feature-x" || worktrees[1].Path != target {
		t.Fatalf("unexpected linked worktree %+v", worktrees[1])
	}

	if err := os.WriteFile(filepath.Join(target, "dirty.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write dirty file: %v", err)
	}
	err = backend.RemoveWorktree(ctx, repo, target)
	if err == nil {
		t.Fatalf("expected removal of a dirty worktree to fail")
	}
	if !strings.Contains(err.Error(), "--force") {
		t.Fatalf("expected git's stderr in the error, got %q", err.Error())
	}

	if err := os.Remove(filepath.Join(target, "dirty.txt")); err != nil {
		t.Fatalf("clean dirty file: %v", err)
	}
	if err := backend.RemoveWorktree(ctx, repo, target); err != nil {
		t.Fatalf("remove worktree: %v", err)
	}
}

func TestGitBackend_ResolveMainRootFromLinkedWorktree(t *testing.T) {
	requireGit(t)
	repo := initRepo(t)
	target := filepath.Join(filepath.Dir(repo), "wt", "feature-y")
	runGit(t, repo, "worktree", "add", "-q", "-b", "feature-y", target)

	root, ok, err := NewGitBackend(nil).ResolveMainRoot(target)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !ok || root != repo {
		t.Fatalf("expected %q, got %q (ok=%v)", repo, root, ok)
	}
}
