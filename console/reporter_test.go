package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/wtmanager/wt/i18n"
)

func newPlain(lang i18n.Language) (*Reporter, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	r := New(i18n.New(lang), &stdout, &stderr, termenv.WithProfile(termenv.Ascii))
	return r, &stdout, &stderr
}

func TestReporter_RoutesByLevel(t *testing.T) {
	r, stdout, stderr := newPlain(i18n.English)

	r.Info(i18n.CdCommand, "/tmp/x")
	r.Success(i18n.WorktreeDeleted, "feature-a")
	r.Warn(i18n.UncommittedChangesTip)
	r.Error(i18n.CannotDeleteMain)

	wantOut := "  cd /tmp/x\n✓ Worktree 'feature-a' deleted successfully\n"
	if stdout.String() != wantOut {
		t.Fatalf("unexpected stdout %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Tip: The worktree may have uncommitted changes.") ||
		!strings.Contains(stderr.String(), "✗ Cannot delete main worktree") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func TestReporter_Korean(t *testing.T) {
	r, stdout, _ := newPlain(i18n.Korean)
	r.Success(i18n.SwitchingToProject, "proj")
	if got := stdout.String(); got != "✓ 프로젝트로 전환: proj\n" {
		t.Fatalf("unexpected korean output %q", got)
	}
}

func TestReporter_ColoursWhenSupported(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := New(i18n.New(i18n.English), &stdout, &stderr, termenv.WithProfile(termenv.ANSI))
	r.Success(i18n.SetupDone)
	if !strings.Contains(stdout.String(), "\x1b[") {
		t.Fatalf("expected ANSI colour codes, got %q", stdout.String())
	}
}

func TestReporter_Line(t *testing.T) {
	r, stdout, _ := newPlain(i18n.English)
	r.Line("/home/u/_wt/proj_0011223344556677")
	if stdout.String() != "/home/u/_wt/proj_0011223344556677\n" {
		t.Fatalf("unexpected line %q", stdout.String())
	}
}
