package selector

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wtmanager/wt/i18n"
	"github.com/wtmanager/wt/ui"
)

const defaultWidth = 72

var (
	titleBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)
	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("3")).
			Padding(0, 1)
	listBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Align(lipgloss.Center)
	captionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("251"))
	createStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

var rowStyles = ui.Styles{
	Normal:   render(normalStyle),
	Selected: render(selectedStyle),
	Create:   render(createStyle),
}

func render(style lipgloss.Style) func(string) string {
	return func(s string) string { return style.Render(s) }
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	msgs := m.opts.Messages

	var b strings.Builder
	b.WriteString(titleBoxStyle.Width(inner).Render(m.opts.Title))
	b.WriteString("\n")
	b.WriteString(captionStyle.Render(" " + msgs.Text(i18n.HelpSearch)))
	b.WriteString("\n")
	b.WriteString(inputBoxStyle.Width(inner).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(captionStyle.Render(" " + msgs.Format(i18n.MatchesTitle, len(m.matches))))
	b.WriteString("\n")
	b.WriteString(listBoxStyle.Width(inner).Render(ui.RenderCandidateList(m.rows(), inner-2, rowStyles)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Width(width).Render(m.helpLine()))
	return b.String()
}

func (m Model) rows() []ui.CandidateRow {
	if len(m.matches) == 0 {
		if m.query != "" && m.opts.AllowCreate {
			return []ui.CandidateRow{{Label: m.opts.Messages.Format(i18n.CreateNewRow, m.query), Create: true}}
		}
		return nil
	}
	n := len(m.matches)
	if n > MaxVisible {
		n = MaxVisible
	}
	rows := make([]ui.CandidateRow, 0, n)
	for _, match := range m.matches[:n] {
		rows = append(rows, ui.CandidateRow{Label: match.Label})
	}
	return rows
}

// helpLine lists only the keys that would currently do something.
func (m Model) helpLine() string {
	t := m.opts.Messages.Text
	if !m.opts.AllowCreate && !m.opts.AllowDelete {
		return ui.JoinHelp(t(i18n.HelpSearch), t(i18n.HelpTab), t(i18n.HelpEnterSelect), t(i18n.HelpCancel))
	}
	hasQuery := m.query != ""
	if hasQuery && len(m.matches) == 0 {
		create := ""
		if m.opts.AllowCreate {
			create = t(i18n.HelpCreateNewBranch)
		}
		return ui.JoinHelp(create, t(i18n.HelpBackspace), t(i18n.HelpCancel))
	}

	var parts []string
	if !hasQuery {
		parts = append(parts, t(i18n.HelpSearch))
	}
	parts = append(parts, t(i18n.HelpTab), t(i18n.HelpEnterSelect))
	if m.opts.AllowCreate {
		parts = append(parts, t(i18n.HelpCreate))
	}
	if m.opts.AllowDelete {
		switch {
		case !hasQuery:
			parts = append(parts, t(i18n.HelpDelete)+" "+t(i18n.HelpExactMatch))
		case m.exactMatch():
			parts = append(parts, t(i18n.HelpDelete))
		}
	}
	if hasQuery {
		parts = append(parts, t(i18n.HelpBackspace))
	}
	parts = append(parts, t(i18n.HelpCancel))
	return ui.JoinHelp(parts...)
}
