package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

func severityColor(s Severity) *color.Color {
	switch s {
	case Info:
		return color.New(color.FgBlue)
	case Warning:
		return color.New(color.FgYellow)
	case Error:
		return color.New(color.FgRed)
	case Fatal:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New()
	}
}

// FormatForTerminal renders a CompilerError for a terminal. When
// useColor is false the color.Color helpers are disabled for the
// duration of the call, matching the --no-color CLI convention.
func (e CompilerError) FormatForTerminal(useColor bool) string {
	sevColor := severityColor(e.Severity)
	arrow := color.New(color.FgCyan)
	gray := color.New(color.FgHiBlack)
	blue := color.New(color.FgBlue)
	red := color.New(color.FgRed)
	bold := color.New(color.Bold)
	help := color.New(color.FgCyan, color.Bold)

	for _, c := range []*color.Color{sevColor, arrow, gray, blue, red, bold, help} {
		c.EnableColor()
		if !useColor {
			c.DisableColor()
		}
	}

	var sb strings.Builder

	sb.WriteString(sevColor.Sprintf("%s", strings.ToUpper(e.Severity.String()[:1])+e.Severity.String()[1:]))
	sb.WriteString(fmt.Sprintf(": %s\n", e.Message))

	sb.WriteString(fmt.Sprintf("  %s %s:%d:%d\n",
		arrow.Sprint("-->"), e.Location.File, e.Location.Line, e.Location.Column))

	if len(e.Context.SourceLines) > 0 {
		sb.WriteString(formatSourceContext(e.Context, blue, gray, red))
	}

	if e.Suggestion != nil {
		sb.WriteString(formatSuggestion(*e.Suggestion, help, gray))
	}

	if len(e.RelatedErrors) > 0 {
		sb.WriteString(fmt.Sprintf("\n%s\n", bold.Sprint("Related errors:")))
		for i, related := range e.RelatedErrors {
			sb.WriteString(fmt.Sprintf("  %d. %s:%d:%d: %s\n",
				i+1, related.Location.File, related.Location.Line, related.Location.Column, related.Message))
		}
	}

	return sb.String()
}

func formatSourceContext(ctx ErrorContext, blue, gray, red *color.Color) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("   %s\n", blue.Sprint("|")))

	for i, line := range ctx.SourceLines {
		lineNum := i + 1
		isErrorLine := i == ctx.Highlight.Line

		if isErrorLine {
			sb.WriteString(fmt.Sprintf("%s %s %s\n", blue.Sprintf("%2d", lineNum), blue.Sprint("|"), line))

			sb.WriteString(fmt.Sprintf("   %s ", blue.Sprint("|")))
			for j := 0; j < ctx.Highlight.Start; j++ {
				sb.WriteString(" ")
			}

			highlightLength := ctx.Highlight.End - ctx.Highlight.Start
			if highlightLength <= 0 {
				highlightLength = 1
			}
			sb.WriteString(red.Sprintf("%s\n", strings.Repeat("^", highlightLength)))
		} else {
			sb.WriteString(fmt.Sprintf("%s %s %s\n", gray.Sprintf("%2d", lineNum), blue.Sprint("|"), line))
		}
	}

	sb.WriteString(fmt.Sprintf("   %s\n", blue.Sprint("|")))

	return sb.String()
}

func formatSuggestion(suggestion FixSuggestion, help, gray *color.Color) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\n%s %s\n", help.Sprint("Help:"), suggestion.Description))

	if suggestion.NewCode != "" {
		sb.WriteString(fmt.Sprintf("%s\n", help.Sprint("Suggestion:")))

		for _, line := range strings.Split(suggestion.NewCode, "\n") {
			sb.WriteString(fmt.Sprintf("    %s\n", line))
		}

		if suggestion.Confidence < 1.0 {
			sb.WriteString(fmt.Sprintf("%s\n", gray.Sprintf("(confidence: %d%%)", int(suggestion.Confidence*100))))
		}
	}

	return sb.String()
}

// FormatSummary formats a one-line summary of errors and warnings.
func FormatSummary(errorCount, warningCount int, useColor bool) string {
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	blue := color.New(color.FgBlue)
	bold := color.New(color.Bold)
	for _, c := range []*color.Color{red, yellow, blue, bold} {
		c.EnableColor()
		if !useColor {
			c.DisableColor()
		}
	}

	var parts []string
	if errorCount > 0 {
		parts = append(parts, red.Sprintf("%d error(s)", errorCount))
	}
	if warningCount > 0 {
		parts = append(parts, yellow.Sprintf("%d warning(s)", warningCount))
	}

	if len(parts) == 0 {
		return fmt.Sprintf("%s\n", blue.Sprint("no errors or warnings"))
	}

	return fmt.Sprintf("\n%s %s\n", bold.Sprint("parse failed with"), strings.Join(parts, " and "))
}
