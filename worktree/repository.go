package worktree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// mainRootFromRepository opens the repository containing dir with go-git and
// returns the directory that owns the common .git dir, so linked worktrees
// resolve to their main checkout.
func mainRootFromRepository(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return "", ErrNotInRepository
	}
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", err
	}
	commonDir, err := gitCommonDirForRoot(wt.Filesystem.Root())
	if err != nil {
		return "", err
	}
	return filepath.Dir(commonDir), nil
}

func gitCommonDirForRoot(root string) (string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return "", ErrNotInRepository
	}
	dotGit := filepath.Join(root, ".git")
	info, err := os.Stat(dotGit)
	if err == nil && info.IsDir() {
		return filepath.Abs(dotGit)
	}
	if err == nil {
		return parseGitdirPointer(dotGit, root)
	}
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNotInRepository
	}
	return "", err
}

// parseGitdirPointer reads a linked worktree's ".git" file
// ("gitdir: <common>/worktrees/<name>") and returns <common>.
func parseGitdirPointer(dotGitFile string, root string) (string, error) {
	data, err := os.ReadFile(dotGitFile)
	if err != nil {
		return "", err
	}
	line := strings.TrimSpace(string(data))
	const prefix = "gitdir:"
	if !strings.HasPrefix(strings.ToLower(line), prefix) {
		return "", fmt.Errorf("invalid .git file format in %s", root)
	}
	target := strings.TrimSpace(line[len(prefix):])
	if target == "" {
		return "", fmt.Errorf("empty gitdir in %s", root)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(root, target)
	}
	target = filepath.Clean(target)
	sep := string(filepath.Separator) + "worktrees" + string(filepath.Separator)
	if i := strings.LastIndex(target, sep); i > 0 {
		return filepath.Clean(target[:i]), nil
	}
	return target, nil
}

func realPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return abs, nil
		}
		return "", err
	}
	return resolved, nil
}
