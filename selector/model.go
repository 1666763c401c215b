package selector

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wtmanager/wt/i18n"
)

type Options struct {
	Title       string
	Candidates  []string
	AllowCreate bool
	AllowDelete bool
	Messages    *i18n.Messages
}

// Model is the bubbletea model behind one selector session. It is driven
// purely by key messages; once an action is chosen further input is ignored.
type Model struct {
	opts    Options
	query   string
	matches []Match
	input   textinput.Model
	action  Action
	done    bool
	width   int
}

func New(opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = opts.Messages.Text(i18n.HelpSearch)
	ti.CharLimit = 0
	ti.Focus()

	m := Model{
		opts:   opts,
		input:  ti,
		action: Cancel(),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m.finish(Cancel())
	case tea.KeyCtrlB:
		if m.opts.AllowCreate && m.query != "" {
			return m.finish(CreateNew(m.query))
		}
	case tea.KeyCtrlX:
		if !m.opts.AllowDelete || m.query == "" {
			return m, nil
		}
		if i, ok := ExactMatch(m.opts.Candidates, m.query); ok {
			return m.finish(Delete(StripAnnotation(m.opts.Candidates[i]), i))
		}
	case tea.KeyEnter:
		if len(m.matches) > 0 {
			top := m.matches[0]
			return m.finish(Select(StripAnnotation(top.Label), top.Index))
		}
	case tea.KeyTab:
		if len(m.matches) > 0 {
			m.setQuery(StripAnnotation(m.matches[0].Label))
		}
	case tea.KeyBackspace:
		if r := []rune(m.query); len(r) > 0 {
			m.setQuery(string(r[:len(r)-1]))
		}
	case tea.KeySpace:
		m.setQuery(m.query + " ")
	case tea.KeyRunes:
		if !msg.Alt {
			m.setQuery(m.query + string(msg.Runes))
		}
	}
	return m, nil
}

func (m Model) finish(action Action) (tea.Model, tea.Cmd) {
	m.action = action
	m.done = true
	return m, tea.Quit
}

func (m *Model) setQuery(q string) {
	m.query = q
	m.refresh()
}

func (m *Model) refresh() {
	m.matches = Filter(m.opts.Candidates, m.query)
	m.input.SetValue(m.query)
	m.input.CursorEnd()
}

func (m Model) Query() string { return m.query }

// Matches is the full filtered set, not only the visible rows.
func (m Model) Matches() []Match { return m.matches }

func (m Model) Done() bool { return m.done }

// Action is Cancel until the session has terminated.
func (m Model) Action() Action { return m.action }

func (m Model) exactMatch() bool {
	_, ok := ExactMatch(m.opts.Candidates, m.query)
	return ok
}
