package explorer

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor   = lipgloss.Color("#7D56F4")
	secondaryColor = lipgloss.Color("#56B6C2")
	mutedColor     = lipgloss.Color("#626262")
	errorColor     = lipgloss.Color("#E06C75")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	pathStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	branchStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	leafStyle = lipgloss.NewStyle()

	selectedStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true).
			Width(10)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)
)

const (
	markerExpanded  = "▾ "
	markerCollapsed = "▸ "
	markerLeaf      = "  "
	indentUnit      = "  "
	pathSeparator   = "/"
)
