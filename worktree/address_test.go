package worktree

import (
	"path/filepath"
	"regexp"
	"testing"
)

func TestBase_SameDirNameDifferentParentsDoNotCollide(t *testing.T) {
	home := "/home/u"
	a := Base(home, "/home/u/work/proj")
	b := Base(home, "/home/u/personal/proj")
	if a == b {
		t.Fatalf("expected distinct bases, both were %q", a)
	}
	if filepath.Dir(a) != filepath.Join(home, "_wt") || filepath.Dir(b) != filepath.Join(home, "_wt") {
		t.Fatalf("expected both under %s, got %q and %q", filepath.Join(home, "_wt"), a, b)
	}
}

func TestBase_SuffixIsSixteenHexChars(t *testing.T) {
	base := Base("/home/u", "/home/u/proj")
	re := regexp.MustCompile(`^proj_[0-9a-f]{16}$`)
	if !re.MatchString(filepath.Base(base)) {
		t.Fatalf("unexpected base name %q", filepath.Base(base))
	}
}

func TestPath_IsDeterministicAndSideEffectFree(t *testing.T) {
	home := t.TempDir()
	first := Path(home, "/home/u/proj", "feature-x")
	second := Path(home, "/home/u/proj", "feature-x")
	if first != second {
		t.Fatalf("expected identical paths, got %q and %q", first, second)
	}
	if filepath.Base(first) != "feature-x" {
		t.Fatalf("expected branch as last segment, got %q", first)
	}
	exists, err := pathExists(filepath.Join(home, StoreDirName))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if exists {
		t.Fatalf("Path must not touch the filesystem")
	}
}

func TestPath_Layout(t *testing.T) {
	got := Path("/home/u", "/home/u/proj", "feature-x")
	want := filepath.Join("/home/u", "_wt", "proj_"+hashName("/home/u/proj"), "feature-x")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if len(hashName("/home/u/proj")) != 16 {
		t.Fatalf("expected 16 hex chars")
	}
}

func TestPath_BranchWithSlashIsUsedVerbatim(t *testing.T) {
	got := Path("/home/u", "/home/u/proj", "feat/login")
	if filepath.Base(filepath.Dir(got)) != "feat" || filepath.Base(got) != "login" {
		t.Fatalf("expected nested directories for slashed branch, got %q", got)
	}
}

func TestPathForUser_UsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := PathForUser("/home/u/proj", "main")
	if err != nil {
		t.Fatalf("PathForUser: %v", err)
	}
	if got != Path(home, "/home/u/proj", "main") {
		t.Fatalf("unexpected path %q", got)
	}
}
