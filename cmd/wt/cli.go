package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCommand(args []string) *cobra.Command {
	var showVersion bool
	var opts appOptions

	// withApp builds the per-invocation app from the persistent flags.
	withApp := func(cmd *cobra.Command, fn func(*app) error) error {
		a, err := newApp(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(a)
	}

	root := &cobra.Command{
		Use:           "wt [branch]",
		Short:         "Interactive git worktree manager",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			if showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), currentVersion())
				return nil
			}
			branch := ""
			if len(cmdArgs) == 1 {
				branch = cmdArgs[0]
			}
			return withApp(cmd, func(a *app) error {
				return a.runDefault(cmd.Context(), branch)
			})
		},
	}
	root.Flags().BoolVarP(&showVersion, "version", "v", false, "Print wt version and exit")
	root.PersistentFlags().StringVar(&opts.Language, "lang", "", "Message language (en, ko); defaults to config then LANG")
	root.PersistentFlags().BoolVar(&opts.NoProvision, "no-provision", false, "Skip automatic dependency setup")

	root.AddCommand(
		&cobra.Command{
			Use:     "rm <branch>",
			Aliases: []string{"delete"},
			Short:   "Remove the worktree checked out on a branch",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, cmdArgs []string) error {
				return withApp(cmd, func(a *app) error {
					return a.runRemove(cmd.Context(), cmdArgs[0])
				})
			},
		},
		&cobra.Command{
			Use:   "path [branch]",
			Short: "Print where a branch's worktree lives",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, cmdArgs []string) error {
				branch := ""
				if len(cmdArgs) == 1 {
					branch = cmdArgs[0]
				}
				return withApp(cmd, func(a *app) error {
					return a.runPath(branch)
				})
			},
		},
		&cobra.Command{
			Use:   "projects",
			Short: "List saved projects, most recent first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd, func(a *app) error {
					return a.runProjects()
				})
			},
		},
		&cobra.Command{
			Use:   "config",
			Short: "Open interactive configuration",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return runConfigForm()
			},
		},
	)

	if len(args) > 1 {
		root.SetArgs(args[1:])
	} else {
		root.SetArgs([]string{})
	}
	return root
}
