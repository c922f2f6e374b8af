package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// FormatForTerminal formats a single ParseError for terminal output.
func (e ParseError) FormatForTerminal() string {
	headerColor := severityColor(e.Severity)
	return fmt.Sprintf("%s: %s\n  %s byte %d (%s)\n",
		headerColor.Sprint(e.Severity.String()),
		e.Message,
		color.New(color.FgCyan).Sprint("-->"),
		e.Offset,
		e.Kind.Code())
}

// FormatListForTerminal renders a list of errors followed by a summary.
func FormatListForTerminal(errs []ParseError) string {
	var sb strings.Builder

	for _, e := range errs {
		sb.WriteString(e.FormatForTerminal())
	}
	sb.WriteString(FormatSummary(errs))

	return sb.String()
}

// FormatSummary formats the closing counts line.
func FormatSummary(errs []ParseError) string {
	var errorCount, warningCount int
	for _, e := range errs {
		switch {
		case e.IsError():
			errorCount++
		case e.IsWarning():
			warningCount++
		}
	}

	var parts []string
	if errorCount > 0 {
		parts = append(parts, color.New(color.FgRed).Sprintf("%d parse error(s)", errorCount))
	}
	if warningCount > 0 {
		parts = append(parts, color.New(color.FgYellow).Sprintf("%d warning(s)", warningCount))
	}
	if len(parts) == 0 {
		return color.New(color.FgBlue).Sprint("no parse errors") + "\n"
	}

	return strings.Join(parts, " and ") + "\n"
}

// severityColor returns the color used for a severity's header.
func severityColor(severity Severity) *color.Color {
	switch severity {
	case Info:
		return color.New(color.FgCyan, color.Bold)
	case Warning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
