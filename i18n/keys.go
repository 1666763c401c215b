package i18n

type Key string

const (
	// Project selector.
	SelectProject      Key = "select_project"
	NoProjectsFound    Key = "no_projects_found"
	NavigateToGitRepo  Key = "navigate_to_git_repo"
	SwitchingToProject Key = "switching_to_project"

	// Worktree selector and orchestrator.
	SelectOrCreateWorktree Key = "select_or_create_worktree"
	SwitchingToWorktree    Key = "switching_to_worktree"
	CreatingNewWorktree    Key = "creating_new_worktree"
	WorktreeExists         Key = "worktree_exists"
	AddingWorktree         Key = "adding_worktree"
	WorktreeAdded          Key = "worktree_added"
	BranchNotFound         Key = "branch_not_found"
	BranchCreated          Key = "branch_created"
	WorktreeReady          Key = "worktree_ready"
	SwitchHint             Key = "switch_hint"
	CdCommand              Key = "cd_command"
	DeletingWorktree       Key = "deleting_worktree"
	WorktreeDeleted        Key = "worktree_deleted"
	CannotDeleteMain       Key = "cannot_delete_main"
	WorktreeNotFound       Key = "worktree_not_found"
	FailedToDelete         Key = "failed_to_delete"
	UncommittedChangesTip  Key = "uncommitted_changes_tip"
	ForceDeleteCommand     Key = "force_delete_command"
	ForceDeleteLine        Key = "force_delete_line"

	// Provisioning.
	SetupRunning     Key = "setup_running"
	SetupDone        Key = "setup_done"
	SetupIssues      Key = "setup_issues"
	SetupOutput      Key = "setup_output"
	SetupErrorOutput Key = "setup_error_output"
	SetupCouldNotRun Key = "setup_could_not_run"

	// Selector help and chrome.
	HelpSearch          Key = "help_search"
	HelpTab             Key = "help_tab"
	HelpEnterSelect     Key = "help_enter_select"
	HelpCreate          Key = "help_ctrl_b_create"
	HelpDelete          Key = "help_ctrl_x_delete"
	HelpCancel          Key = "help_cancel"
	HelpBackspace       Key = "help_backspace"
	HelpCreateNewBranch Key = "help_create_new_branch"
	HelpExactMatch      Key = "help_exact_match"
	MatchesTitle        Key = "matches_title"
	CreateNewRow        Key = "create_new_row"
)
