package worktree

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// StoreDirName is the directory under the user's home that holds every
// managed worktree.
const StoreDirName = "_wt"

var errHomeNotResolvable = errors.New("failed to get home directory")

// HomeDir resolves the directory worktrees are stored under.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "", errHomeNotResolvable
	}
	return home, nil
}

// hashName returns the first 8 bytes of sha256(repoPath) as 16 hex chars.
func hashName(repoPath string) string {
	sum := sha256.Sum256([]byte(repoPath))
	return hex.EncodeToString(sum[:8])
}

// Base is home/_wt/<repo dir name>_<hash of the full repo path>.
func Base(home string, repoPath string) string {
	name := filepath.Base(repoPath)
	return filepath.Join(home, StoreDirName, name+"_"+hashName(repoPath))
}

// Path appends the branch verbatim. Branches with slashes become nested
// directories; callers that care must check before calling.
func Path(home string, repoPath string, branch string) string {
	return filepath.Join(Base(home, repoPath), branch)
}

func BaseForUser(repoPath string) (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return Base(home, repoPath), nil
}

func PathForUser(repoPath string, branch string) (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return Path(home, repoPath, branch), nil
}
