// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#CCCCCC"}
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"}

	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#696969"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Editor colors
	CaretColor          = lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#FFFFFF"}
	SelectionBgColor    = lipgloss.AdaptiveColor{Light: "#B4D5FE", Dark: "#264F78"}
	LineNumberColor     = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#5A5A5A"}
	ToggleActiveBgColor = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}

	// Button colors
	ButtonTextColor       = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonBgColor         = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#2D3436"}
	ButtonDisabledFgColor = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#5A5A5A"}

	// Overlay colors
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#8C8C8C"}

	// Toast notification colors
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}

	CaretStyle       = lipgloss.NewStyle().Reverse(true)
	SelectionStyle   = lipgloss.NewStyle().Background(SelectionBgColor).Foreground(TextPrimaryColor)
	LineNumberStyle  = lipgloss.NewStyle().Foreground(LineNumberColor)
	PlaceholderStyle = lipgloss.NewStyle().Foreground(TextPlaceholderColor).Italic(true)

	baseButtonStyle = lipgloss.NewStyle().Padding(0, 1)

	ButtonStyle = baseButtonStyle.
			Foreground(ButtonTextColor).
			Background(ButtonBgColor)

	ButtonDisabledStyle = baseButtonStyle.
				Foreground(ButtonDisabledFgColor)

	ToggleStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(TextMutedColor)

	ToggleActiveStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(ButtonTextColor).
				Background(ToggleActiveBgColor)

	LabelStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	StatusMutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true).
			Padding(1, 2)
)
