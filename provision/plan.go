package provision

import (
	"os"
	"path/filepath"
	"strings"
)

const sourceRC = "source ~/.zshrc 2>/dev/null || source ~/.bashrc 2>/dev/null || true; "

type marker struct {
	files   []string
	command string
}

// Checked in order; the first marker present in a group wins.
var (
	toolchainMarkers = []marker{
		{files: []string{"mise.toml", ".mise.toml"}, command: "mise install"},
		{files: []string{".nvmrc"}, command: "nvm use"},
	}
	packageMarkers = []marker{
		{files: []string{"pnpm-lock.yaml"}, command: "pnpm install"},
		{files: []string{"yarn.lock"}, command: "yarn install"},
		{files: []string{"package-lock.json"}, command: "npm install"},
	}
)

// Plan is the setup detected for one directory.
type Plan struct {
	Commands []string
	// NeedsShellRC is set when a version manager has to be loaded from the
	// user's shell startup files first.
	NeedsShellRC bool
}

func (p Plan) Empty() bool {
	return len(p.Commands) == 0
}

// Script is the single shell line that runs the plan.
func (p Plan) Script() string {
	if p.Empty() {
		return ""
	}
	script := strings.Join(p.Commands, " && ")
	if p.NeedsShellRC {
		script = sourceRC + script
	}
	return script
}

// Detect inspects marker files in dir: at most one toolchain command and at
// most one package-manager install.
func Detect(dir string) Plan {
	var plan Plan
	if cmd, ok := firstPresent(dir, toolchainMarkers); ok {
		plan.Commands = append(plan.Commands, cmd)
		plan.NeedsShellRC = true
	}
	if cmd, ok := firstPresent(dir, packageMarkers); ok {
		plan.Commands = append(plan.Commands, cmd)
	}
	return plan
}

func firstPresent(dir string, markers []marker) (string, bool) {
	for _, m := range markers {
		for _, name := range m.files {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return m.command, true
			}
		}
	}
	return "", false
}
