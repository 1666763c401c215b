package worktree

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

type GitBackend struct {
	gitBin string
	log    *zap.Logger
}

func NewGitBackend(log *zap.Logger) *GitBackend {
	if log == nil {
		log = zap.NewNop()
	}
	return &GitBackend{gitBin: "git", log: log.Named("git")}
}

func (b *GitBackend) ResolveMainRoot(cwd string) (string, bool, error) {
	start, err := realPath(cwd)
	if err != nil {
		return "", false, err
	}
	root, err := mainRootFromRepository(start)
	if err == nil {
		return root, true, nil
	}
	if errors.Is(err, ErrNotInRepository) {
		return "", false, nil
	}
	// go-git does not understand every repository layout (bare repos,
	// newer extensions); the git binary is the source of truth there.
	b.log.Debug("falling back to git rev-parse", zap.String("dir", start), zap.Error(err))
	out, err := b.output(context.Background(), start, "rev-parse", "--path-format=absolute", "--git-common-dir")
	if err != nil {
		return "", false, nil
	}
	commonDir := strings.TrimSpace(out)
	if commonDir == "" {
		return "", false, nil
	}
	return filepath.Dir(filepath.Clean(commonDir)), true, nil
}

func (b *GitBackend) ListWorktrees(ctx context.Context, repoRoot string) ([]Worktree, error) {
	out, err := b.output(ctx, repoRoot, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}
	return ParseWorktreeList(out), nil
}

func (b *GitBackend) AddWorktree(ctx context.Context, repoRoot string, path string, branch string, createBranch bool) error {
	args := []string{"worktree", "add"}
	if createBranch {
		args = append(args, "-b", branch, path)
	} else {
		args = append(args, path, branch)
	}
	if _, err := b.output(ctx, repoRoot, args...); err != nil {
		return fmt.Errorf("failed to add worktree: %w", err)
	}
	return nil
}

func (b *GitBackend) RemoveWorktree(ctx context.Context, repoRoot string, path string) error {
	if _, err := b.output(ctx, repoRoot, "worktree", "remove", path); err != nil {
		return fmt.Errorf("failed to remove worktree: %w", err)
	}
	return nil
}

func (b *GitBackend) output(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, b.gitBin, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	b.log.Debug("git", zap.String("dir", dir), zap.Strings("args", args), zap.Error(err))
	if err != nil {
		return "", commandErrorWithOutput(err, stderr.Bytes())
	}
	return stdout.String(), nil
}

// commandErrorWithOutput prefers what git printed over "exit status N".
func commandErrorWithOutput(err error, output []byte) error {
	if err == nil {
		return nil
	}
	msg := strings.TrimSpace(string(output))
	if msg == "" {
		return err
	}
	return errors.New(msg)
}
