package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all lipgloss styles for text output
var Styles = defaultStyles()

type styleSet struct {
	Header  lipgloss.Style
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
}

func defaultStyles() styleSet {
	return styleSet{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("239")),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Value:   lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),  // Green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // Orange
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red
	}
}

// DisableStyles strips colors and emphasis, e.g. when stdout is not a TTY
func DisableStyles() {
	Styles.Header = Styles.Header.UnsetForeground().UnsetBold().UnsetBorderStyle().UnsetBorderBottom()
	Styles.Title = Styles.Title.UnsetForeground().UnsetBold()
	Styles.Label = Styles.Label.UnsetForeground()
	Styles.Value = Styles.Value.UnsetBold()
	Styles.Success = Styles.Success.UnsetForeground().UnsetBold()
	Styles.Warning = Styles.Warning.UnsetForeground().UnsetBold()
	Styles.Danger = Styles.Danger.UnsetForeground().UnsetBold()
}

// ResetStyles restores the default styles
func ResetStyles() {
	Styles = defaultStyles()
}
