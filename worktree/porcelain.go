package worktree

import "strings"

// DetachedBranch labels records that have no branch line.
const DetachedBranch = "(detached)"

// ParseWorktreeList parses `git worktree list --porcelain`. Records without a
// branch line (bare or detached) count as main, and git always lists the
// main worktree first.
func ParseWorktreeList(output string) []Worktree {
	var worktrees []Worktree
	var current *Worktree

	flush := func() {
		if current == nil {
			return
		}
		if current.Branch == "" {
			current.Branch = DetachedBranch
			current.IsMain = true
		}
		worktrees = append(worktrees, *current)
		current = nil
	}

	for _, raw := range strings.Split(output, "\n") {
		line := strings.TrimRight(raw, "\r")
		switch {
		case strings.HasPrefix(line, "worktree "):
			flush()
			current = &Worktree{Path: strings.TrimPrefix(line, "worktree ")}
		case current == nil:
			continue
		case strings.HasPrefix(line, "branch "):
			current.Branch = shortBranch(strings.TrimPrefix(line, "branch "))
		case line == "bare" || line == "detached":
			current.IsMain = true
		case strings.TrimSpace(line) == "":
			flush()
		}
	}
	flush()

	if len(worktrees) > 0 {
		worktrees[0].IsMain = true
	}
	return worktrees
}

func shortBranch(ref string) string {
	ref = strings.TrimSpace(ref)
	return strings.TrimPrefix(ref, "refs/heads/")
}
