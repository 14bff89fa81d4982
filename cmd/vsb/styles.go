package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"veo_builder/internal/command"
)

var (
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	shotStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

func printSummary(w io.Writer, title string, s command.Summary) {
	if s.Clips == 0 {
		fmt.Fprintln(w, mutedStyle.Render(title+": no clips (empty script)"))
		return
	}
	fmt.Fprintln(w, summaryStyle.Render(title+": "+s.String()))
	if s.LargeProject {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf(
			"Large project: %d clips. Generate 5-10 clips first to check character consistency before the whole batch.",
			s.Clips)))
	}
}
