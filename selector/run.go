package selector

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run blocks on one interactive session. The terminal is put into raw mode
// on the alternate screen for the duration of the call and restored by the
// program on every exit path. Extra program options are appended, which lets
// callers and tests swap the input and output streams.
func Run(ctx context.Context, opts Options, extra ...tea.ProgramOption) (Action, error) {
	programOpts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, extra...)
	p := tea.NewProgram(New(opts), programOpts...)
	final, err := p.Run()
	if err != nil {
		return Cancel(), err
	}
	m, ok := final.(Model)
	if !ok || !m.Done() {
		return Cancel(), nil
	}
	return m.Action(), nil
}
