package ui

// Styles lets callers inject lipgloss renderers without this package
// depending on a particular palette.
type Styles struct {
	Normal   func(string) string
	Selected func(string) string
	Create   func(string) string
}

func identity(s string) string { return s }

func (s Styles) withDefaults() Styles {
	if s.Normal == nil {
		s.Normal = identity
	}
	if s.Selected == nil {
		s.Selected = identity
	}
	if s.Create == nil {
		s.Create = identity
	}
	return s
}
