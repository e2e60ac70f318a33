package receipt

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for styled output.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Warning: lipgloss.Color("#FDCB6E"), // Yellow
	Success: lipgloss.Color("#00B894"), // Green
}

// Styles contains the lipgloss styles used by the Printer.
type Styles struct {
	Rule       lipgloss.Style
	Header     lipgloss.Style
	EntryName  lipgloss.Style
	Heading    lipgloss.Style
	Warning    lipgloss.Style
	Total      lipgloss.Style
	GrandTotal lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	return Styles{
		Rule:       lipgloss.NewStyle().Foreground(Colors.Muted),
		Header:     lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		EntryName:  lipgloss.NewStyle().Bold(true),
		Heading:    lipgloss.NewStyle().Bold(true).Underline(true),
		Warning:    lipgloss.NewStyle().Foreground(Colors.Warning),
		Total:      lipgloss.NewStyle().Bold(true),
		GrandTotal: lipgloss.NewStyle().Bold(true).Foreground(Colors.Success),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Rule:       plain,
		Header:     plain,
		EntryName:  plain,
		Heading:    plain,
		Warning:    plain,
		Total:      plain,
		GrandTotal: plain,
	}
}
