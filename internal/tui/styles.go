package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	variantStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)

	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	adStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	helpStyle    = lipgloss.NewStyle().MarginTop(1)
)
