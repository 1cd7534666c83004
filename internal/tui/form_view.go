package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Form colors.
var (
	colorTitle  = lipgloss.Color("12") //nolint:gochecknoglobals // Style palette.
	colorLabel  = lipgloss.Color("8")  //nolint:gochecknoglobals // Style palette.
	colorValue  = lipgloss.Color("15") //nolint:gochecknoglobals // Style palette.
	colorResult = lipgloss.Color("10") //nolint:gochecknoglobals // Style palette.
	colorError  = lipgloss.Color("9")  //nolint:gochecknoglobals // Style palette.
)

// Form styles.
var (
	titleStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals // Style palette.
			Foreground(colorTitle).
			Bold(true).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals // Style palette.
			Foreground(colorLabel).
			Width(24)

	focusedLabelStyle = labelStyle. //nolint:gochecknoglobals // Style palette.
				Foreground(colorValue).
				Bold(true)

	gasStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals // Style palette.
			Foreground(colorValue)

	resultStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals // Style palette.
			Foreground(colorResult).
			Bold(true).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals // Style palette.
			Foreground(colorError).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals // Style palette.
			Foreground(colorLabel).
			MarginTop(1)
)

// fieldLabels are the on-screen names of the three count fields, indexed by
// field constant.
var fieldLabels = [fieldCount]string{ //nolint:gochecknoglobals // Fixed UI copy.
	"Bump tests / month",
	"Calibrations / month",
	"Instruments",
}

// View implements tea.Model.
func (m *FormModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Calibration Gas Usage Estimator"))
	b.WriteString("\n")

	rec := m.records[m.selected]
	gasLabel := labelStyle.Render("Gas type")
	if m.focus == focusGas {
		gasLabel = focusedLabelStyle.Render("Gas type")
	}
	gasLine := gasStyle.Render("< " + rec.DisplayName + " (" + strings.Join(rec.Components, ", ") + ") >")
	b.WriteString(gasLabel + gasLine + "\n")

	for i, input := range m.inputs {
		label := labelStyle.Render(fieldLabels[i])
		if m.focus == i+1 {
			label = focusedLabelStyle.Render(fieldLabels[i])
		}
		b.WriteString(label + input.View() + "\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	case m.result != nil:
		b.WriteString(resultStyle.Render("Estimated usage: "+m.result.LitersString()) + "\n")
	}

	b.WriteString(helpStyle.Render("enter calculate • tab next field • ←/→ change gas • esc quit"))
	b.WriteString("\n")

	return b.String()
}
