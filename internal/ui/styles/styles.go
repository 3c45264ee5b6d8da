// Package styles defines the visual styling for the application.
package styles

import "github.com/charmbracelet/lipgloss"

// Color definitions for the bikeshare theme.
var (
	// Primary colors
	Primary   = lipgloss.Color("#72BCD4") // Light blue
	Secondary = lipgloss.Color("#1F4E79") // Dark blue
	Subtle    = lipgloss.Color("240")     // Gray

	// Bar colors. The largest bar of a chart uses BarHighlight.
	BarHighlight = lipgloss.Color("#1F4E79")
	BarBase      = lipgloss.Color("#A8D5E2")

	// Status colors
	Success = lipgloss.Color("42")  // Green
	Error   = lipgloss.Color("196") // Red
	Warning = lipgloss.Color("220") // Yellow
	Info    = lipgloss.Color("39")  // Blue

	// Background colors
	BgDark  = lipgloss.Color("235")
	BgLight = lipgloss.Color("237")

	// Text colors
	TextPrimary   = lipgloss.Color("252")
	TextSecondary = lipgloss.Color("245")
	TextMuted     = lipgloss.Color("240")
)

// TitleStyle is used for page titles.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	MarginBottom(1)

// SubTitleStyle is used for section headings.
var SubTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(TextPrimary).
	MarginTop(1).
	MarginBottom(1)

// CaptionStyle is used for footnotes under a page.
var CaptionStyle = lipgloss.NewStyle().
	Foreground(TextMuted).
	Italic(true).
	MarginTop(1)

// NavbarStyle styles the top title bar.
var NavbarStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	Background(Secondary).
	Padding(0, 2)

// CardStyle creates a bordered card container.
var CardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Subtle).
	Padding(0, 2).
	MarginRight(1)

// CardTitleStyle styles card headers.
var CardTitleStyle = lipgloss.NewStyle().
	Foreground(TextSecondary)

// MetricValueStyle styles the headline number of a metric card.
var MetricValueStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(TextPrimary)

// MetricDeltaStyle styles the line under a metric value.
var MetricDeltaStyle = lipgloss.NewStyle().
	Foreground(Success)

// SidebarStyle frames the left-hand sidebar.
var SidebarStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder(), false, true, false, false).
	BorderForeground(Subtle).
	Padding(0, 1).
	MarginRight(1)

// SidebarHeaderStyle styles sidebar section headers.
var SidebarHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	MarginTop(1)

// FocusedStyle is used for focused input elements.
var FocusedStyle = lipgloss.NewStyle().
	Foreground(Primary).
	Bold(true)

// BlurredStyle is used for unfocused input elements.
var BlurredStyle = lipgloss.NewStyle().
	Foreground(TextMuted)

// BadgeStyle styles the profile link badges.
var BadgeStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("229")).
	Background(BgLight).
	Padding(0, 1)

// NotificationBaseStyle is the base for all notification types.
var NotificationBaseStyle = lipgloss.NewStyle().
	Padding(0, 2).
	MarginBottom(1).
	Border(lipgloss.RoundedBorder())

// NotificationSuccessStyle for success notifications.
var NotificationSuccessStyle = NotificationBaseStyle.
	BorderForeground(Success).
	Foreground(Success)

// NotificationErrorStyle for error notifications.
var NotificationErrorStyle = NotificationBaseStyle.
	BorderForeground(Error).
	Foreground(Error)

// NotificationWarningStyle for warning notifications.
var NotificationWarningStyle = NotificationBaseStyle.
	BorderForeground(Warning).
	Foreground(Warning)

// NotificationInfoStyle for info notifications.
var NotificationInfoStyle = NotificationBaseStyle.
	BorderForeground(Info).
	Foreground(Info)

// HelpStyle is the base style for help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(TextMuted)

// HelpKeyStyle styles keyboard shortcut keys.
var HelpKeyStyle = lipgloss.NewStyle().
	Foreground(Primary).
	Bold(true)

// HelpDescStyle styles help descriptions.
var HelpDescStyle = lipgloss.NewStyle().
	Foreground(TextSecondary)

// HelpPanelStyle creates the help overlay panel.
var HelpPanelStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(Primary).
	Padding(1, 3).
	Background(BgDark)

// ErrorTextStyle for error messages.
var ErrorTextStyle = lipgloss.NewStyle().
	Foreground(Error)

// ButtonStyle is the base button style.
var ButtonStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Width(16)

// ButtonActiveStyle styles the button of a rendered view.
var ButtonActiveStyle = ButtonStyle.
	Background(Secondary).
	Foreground(lipgloss.Color("229")).
	Bold(true)

// ButtonInactiveStyle styles the remaining buttons.
var ButtonInactiveStyle = ButtonStyle.
	Background(BgLight).
	Foreground(TextSecondary)

// BarStyle returns the bar style for a chart bar.
func BarStyle(highlight bool) lipgloss.Style {
	if highlight {
		return lipgloss.NewStyle().Foreground(BarHighlight)
	}
	return lipgloss.NewStyle().Foreground(BarBase)
}

// CenterBoth centers content both horizontally and vertically.
func CenterBoth(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(content)
}
