package worktree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseWorktreeList(t *testing.T) {
	output := "worktree /home/u/proj\n" +
		"HEAD 1111111111111111111111111111111111111111\n" +
		"branch refs/heads/main\n" +
		"\n" +
		"worktree /home/u/_wt/proj_abc/feature-a\n" +
		"HEAD 2222222222222222222222222222222222222222\n" +
		"branch refs/heads/feature-a\n" +
		"\n" +
		"worktree /home/u/_wt/proj_abc/feat/login\n" +
		"HEAD 3333333333333333333333333333333333333333\n" +
		"branch refs/heads/feat/login\n"

	got := ParseWorktreeList(output)
	require.Equal(t, []Worktree{
		{Path: "/home/u/proj", Branch: "main", IsMain: true},
		{Path: "/home/u/_wt/proj_abc/feature-a", Branch: "feature-a"},
		{Path: "/home/u/_wt/proj_abc/feat/login", Branch: "feat/login"},
	}, got)
}

func TestParseWorktreeList_DetachedRecordIsMain(t *testing.T) {
	output := "worktree /repo\nHEAD abc\nbranch refs/heads/main\n\n" +
		"worktree /wt/detached\nHEAD def\ndetached\n\n"

	got := ParseWorktreeList(output)
	require.Len(t, got, 2)
	require.Equal(t, DetachedBranch, got[1].Branch)
	require.True(t, got[1].IsMain)
}

func TestParseWorktreeList_BareRecord(t *testing.T) {
	got := ParseWorktreeList("worktree /srv/repo.git\nbare\n")
	require.Equal(t, []Worktree{{Path: "/srv/repo.git", Branch: DetachedBranch, IsMain: true}}, got)
}

func TestParseWorktreeList_PathLineTerminatesRecord(t *testing.T) {
	output := "worktree /repo\nbranch refs/heads/main\nworktree /wt/a\nbranch refs/heads/a"
	got := ParseWorktreeList(output)
	require.Len(t, got, 2)
	require.Equal(t, "a", got[1].Branch)
	require.False(t, got[1].IsMain)
}

func TestParseWorktreeList_Empty(t *testing.T) {
	require.Empty(t, ParseWorktreeList(""))
	require.Empty(t, ParseWorktreeList("\n\n"))
}

func TestParseWorktreeList_PathWithSpaces(t *testing.T) {
	got := ParseWorktreeList("worktree /home/u/my repo\nbranch refs/heads/main\n")
	require.Equal(t, "/home/u/my repo", got[0].Path)
}
