package terminal

import "github.com/charmbracelet/lipgloss"

var (
	// Facet colors — amber for topics, purple for formats, teal for sectors.
	colorTopic  = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#fbbf24"}
	colorFormat = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}
	colorSector = lipgloss.AdaptiveColor{Light: "#0f766e", Dark: "#2dd4bf"}

	// UI colors.
	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
	colorAccent = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
)

var (
	styleEvent = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleCount = lipgloss.NewStyle().Foreground(colorDim)

	styleTitle   = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleMeta    = lipgloss.NewStyle().Foreground(colorDim)
	styleSpeaker = lipgloss.NewStyle().Foreground(colorAccent)

	styleTopicBadge = lipgloss.NewStyle().Foreground(colorTopic).Bold(true)
	styleSectorTag  = lipgloss.NewStyle().Foreground(colorSector)
	styleFormatTag  = lipgloss.NewStyle().Foreground(colorFormat)
	styleThemeTag   = lipgloss.NewStyle().Foreground(colorDim)

	styleSeparator = lipgloss.NewStyle().Foreground(colorDim)
)
