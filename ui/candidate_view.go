package ui

import "strings"

type CandidateRow struct {
	Label  string
	Create bool
}

// RenderCandidateList renders one row per line. The first row is the one
// Enter would pick, so it gets the selected style.
func RenderCandidateList(rows []CandidateRow, width int, styles Styles) string {
	styles = styles.withDefaults()
	if width <= 0 {
		width = 60
	}
	var b strings.Builder
	for i, row := range rows {
		line := PadOrTrim(row.Label, width)
		switch {
		case row.Create:
			b.WriteString(styles.Create(line))
		case i == 0:
			b.WriteString(styles.Selected(line))
		default:
			b.WriteString(styles.Normal(line))
		}
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
