package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wtmanager/wt/i18n"
	"github.com/wtmanager/wt/selector"
	"github.com/wtmanager/wt/worktree"
)

var runSelectorFn = func(ctx context.Context, opts selector.Options) (selector.Action, error) {
	return selector.Run(ctx, opts)
}

var getwdFn = os.Getwd

func (a *app) resolveRepo() (string, bool, error) {
	cwd, err := getwdFn()
	if err != nil {
		return "", false, err
	}
	return a.backend.ResolveMainRoot(cwd)
}

// runDefault is `wt [branch]`: inside a repository it switches to or
// creates a worktree, outside one it offers the saved projects.
func (a *app) runDefault(ctx context.Context, branch string) error {
	root, ok, err := a.resolveRepo()
	if err != nil {
		return err
	}
	if !ok {
		return a.runProjectSelector(ctx)
	}
	if err := a.registry.UpsertProject(root); err != nil {
		return err
	}
	if branch != "" {
		_, err := a.orch.SwitchOrCreate(ctx, root, branch)
		return err
	}
	return a.runWorktreeSelector(ctx, root)
}

func (a *app) runWorktreeSelector(ctx context.Context, root string) error {
	labels, _, err := a.orch.Candidates(ctx, root)
	if err != nil {
		return err
	}
	action, err := runSelectorFn(ctx, selector.Options{
		Title:       a.msgs.Text(i18n.SelectOrCreateWorktree),
		Candidates:  labels,
		AllowCreate: true,
		AllowDelete: true,
		Messages:    a.msgs,
	})
	if err != nil {
		return err
	}
	a.log.Debug("worktree selector finished", zap.Stringer("action", action.Kind), zap.String("text", action.Text))

	switch action.Kind {
	case selector.ActionSelect:
		_, err = a.orch.Open(ctx, root, action.Text)
	case selector.ActionCreateNew:
		_, err = a.orch.Create(ctx, root, action.Text)
	case selector.ActionDelete:
		err = a.deleteWorktree(ctx, root, action.Text)
	}
	return err
}

func (a *app) runProjectSelector(ctx context.Context) error {
	projects, err := a.registry.ListProjects()
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		a.reporter.Info(i18n.NoProjectsFound)
		a.reporter.Info(i18n.NavigateToGitRepo)
		return nil
	}
	labels := make([]string, 0, len(projects))
	for _, p := range projects {
		labels = append(labels, p.Label())
	}
	action, err := runSelectorFn(ctx, selector.Options{
		Title:      a.msgs.Text(i18n.SelectProject),
		Candidates: labels,
		Messages:   a.msgs,
	})
	if err != nil {
		return err
	}
	if action.Kind != selector.ActionSelect || action.Index < 0 || action.Index >= len(projects) {
		return nil
	}
	project := projects[action.Index]
	return a.orch.SwitchProject(project.Path, project.Name)
}

func (a *app) deleteWorktree(ctx context.Context, root string, branch string) error {
	_, err := a.orch.Delete(ctx, root, branch)
	if err == nil {
		return nil
	}
	var removeErr *worktree.RemoveError
	if errors.Is(err, worktree.ErrMainWorktree) ||
		errors.Is(err, worktree.ErrWorktreeNotFound) ||
		errors.As(err, &removeErr) {
		return reportedError{err: err}
	}
	return err
}

func (a *app) requireRepo() (string, error) {
	root, ok, err := a.resolveRepo()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", worktree.ErrNotInRepository
	}
	return root, nil
}

func (a *app) runRemove(ctx context.Context, branch string) error {
	root, err := a.requireRepo()
	if err != nil {
		return err
	}
	return a.deleteWorktree(ctx, root, branch)
}

func (a *app) runPath(branch string) error {
	root, err := a.requireRepo()
	if err != nil {
		return err
	}
	if branch == "" {
		a.reporter.Line(worktree.Base(a.home, root))
		return nil
	}
	a.reporter.Line(worktree.Path(a.home, root, branch))
	return nil
}

func (a *app) runProjects() error {
	projects, err := a.registry.ListProjects()
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		a.reporter.Info(i18n.NoProjectsFound)
		return nil
	}
	for _, p := range projects {
		a.reporter.Line(fmt.Sprintf("%s\t%s", p.Name, p.Path))
	}
	return nil
}
