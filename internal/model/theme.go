package model

// Theme selects the view colour scheme. It is plain configuration handed to
// the view constructor; there is no global theme state.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
