package i18n

var tables = map[Language]map[Key]string{
	English: {
		SelectProject:      "Select Project",
		NoProjectsFound:    "No projects found in database.",
		NavigateToGitRepo:  "Navigate to a git repository and run 'wt' to add it.",
		SwitchingToProject: "✓ Switching to project: %s",

		SelectOrCreateWorktree: "Select or Create Worktree",
		SwitchingToWorktree:    "✓ Switching to worktree: %s",
		CreatingNewWorktree:    "✓ Creating new worktree: %s",
		WorktreeExists:         "Worktree already exists for branch '%s'",
		AddingWorktree:         "Adding worktree for branch '%s'",
		WorktreeAdded:          "✓ Worktree added for existing branch '%s'",
		BranchNotFound:         "Branch '%s' not found, creating new branch",
		BranchCreated:          "✓ Created new branch '%s' with worktree",
		WorktreeReady:          "✓ Worktree ready at: %s",
		SwitchHint:             "To switch to this worktree, run:",
		CdCommand:              "  cd %s",
		DeletingWorktree:       "🗑️  Deleting worktree: %s",
		WorktreeDeleted:        "✓ Worktree '%s' deleted successfully",
		CannotDeleteMain:       "✗ Cannot delete main worktree",
		WorktreeNotFound:       "✗ No worktree found for branch '%s'",
		FailedToDelete:         "✗ Failed to delete worktree: %v",
		UncommittedChangesTip:  "💡 Tip: The worktree may have uncommitted changes.",
		ForceDeleteCommand:     "   To force delete, run:",
		ForceDeleteLine:        "   git worktree remove --force %s",

		SetupRunning:     "Running automatic setup: %s",
		SetupDone:        "✓ Setup completed successfully",
		SetupIssues:      "Warning: Setup completed with issues.",
		SetupOutput:      "Output: %s",
		SetupErrorOutput: "Error output: %s",
		SetupCouldNotRun: "Warning: Could not run setup command: %v",

		HelpSearch:          "Type to search",
		HelpTab:             "Tab: Autocomplete",
		HelpEnterSelect:     "Enter: Select",
		HelpCreate:          "Ctrl+B: Create",
		HelpDelete:          "Ctrl+X: Delete",
		HelpCancel:          "Ctrl+C/Esc: Cancel",
		HelpBackspace:       "Backspace: Edit",
		HelpCreateNewBranch: "Ctrl+B: Create new branch",
		HelpExactMatch:      "(exact match)",
		MatchesTitle:        "Matches (%d)",
		CreateNewRow:        "→ Create new: '%s'",
	},
	Korean: {
		SelectProject:      "프로젝트 선택",
		NoProjectsFound:    "데이터베이스에 프로젝트가 없습니다.",
		NavigateToGitRepo:  "git 저장소로 이동한 후 'wt'를 실행하여 추가하세요.",
		SwitchingToProject: "✓ 프로젝트로 전환: %s",

		SelectOrCreateWorktree: "워크트리 선택 또는 생성",
		SwitchingToWorktree:    "✓ 워크트리로 전환: %s",
		CreatingNewWorktree:    "✓ 새 워크트리 생성: %s",
		WorktreeExists:         "브랜치 '%s'의 워크트리가 이미 존재합니다",
		AddingWorktree:         "브랜치 '%s'의 워크트리 추가 중",
		WorktreeAdded:          "✓ 기존 브랜치 '%s'의 워크트리가 추가되었습니다",
		BranchNotFound:         "브랜치 '%s'를 찾을 수 없어 새 브랜치를 생성합니다",
		BranchCreated:          "✓ 새 브랜치 '%s'와 워크트리가 생성되었습니다",
		WorktreeReady:          "✓ 워크트리 준비 완료: %s",
		SwitchHint:             "이 워크트리로 이동하려면 다음을 실행하세요:",
		CdCommand:              "  cd %s",
		DeletingWorktree:       "🗑️  워크트리 삭제: %s",
		WorktreeDeleted:        "✓ 워크트리 '%s'가 성공적으로 삭제되었습니다",
		CannotDeleteMain:       "✗ 메인 워크트리는 삭제할 수 없습니다",
		WorktreeNotFound:       "✗ 브랜치 '%s'의 워크트리를 찾을 수 없습니다",
		FailedToDelete:         "✗ 워크트리 삭제 실패: %v",
		UncommittedChangesTip:  "💡 팁: 워크트리에 커밋되지 않은 변경사항이 있을 수 있습니다.",
		ForceDeleteCommand:     "   강제 삭제하려면 다음 명령을 실행하세요:",
		ForceDeleteLine:        "   git worktree remove --force %s",

		SetupRunning:     "자동 설정 실행 중: %s",
		SetupDone:        "✓ 설정이 성공적으로 완료되었습니다",
		SetupIssues:      "경고: 설정 중 문제가 발생했습니다.",
		SetupOutput:      "출력: %s",
		SetupErrorOutput: "오류 출력: %s",
		SetupCouldNotRun: "경고: 설정 명령을 실행할 수 없습니다: %v",

		HelpSearch:          "검색어 입력",
		HelpTab:             "Tab: 자동완성",
		HelpEnterSelect:     "Enter: 선택",
		HelpCreate:          "Ctrl+B: 생성",
		HelpDelete:          "Ctrl+X: 삭제",
		HelpCancel:          "Ctrl+C/Esc: 취소",
		HelpBackspace:       "Backspace: 편집",
		HelpCreateNewBranch: "Ctrl+B: 새 브랜치 생성",
		HelpExactMatch:      "(정확히 일치)",
		MatchesTitle:        "일치 항목 (%d)",
		CreateNewRow:        "→ 새로 생성: '%s'",
	},
}
