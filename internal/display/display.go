// Package display renders fetch statuses for terminal output.
package display

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dstairlines/flightwatch/internal/flightapi"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	greenStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	redStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Checkpoint pairs a wire-contract field name with whether it held.
type Checkpoint struct {
	Name string
	OK   bool
}

// Checkpoints lists the ordered fetch checkpoints for a status.
func Checkpoints(status flightapi.FetchStatus) []Checkpoint {
	return []Checkpoint{
		{"connected", status.Connected},
		{"http_ok", status.HTTPOK},
		{"json_ok", status.JSONOK},
		{"api_ok", status.APIOK},
		{"has_flights_array", status.HasFlightsArray},
		{"extracted_any", status.ExtractedAny},
	}
}

// CheckpointSymbol returns a colored pass/fail marker.
// When noColor is true, the plain symbol is returned without ANSI styling.
func CheckpointSymbol(ok, noColor bool) string {
	sym, style := "✗", redStyle
	if ok {
		sym, style = "✓", greenStyle
	}
	if noColor {
		return sym
	}
	return style.Render(sym)
}

// VerdictLine renders the one-line verdict, colored by severity.
func VerdictLine(status flightapi.FetchStatus, noColor bool) string {
	verdict := status.Verdict()
	if noColor {
		return verdict
	}
	switch status.Stage() {
	case flightapi.StageOK:
		return greenStyle.Render(verdict)
	case flightapi.StageExtract:
		return yellowStyle.Render(verdict)
	default:
		return redStyle.Render(verdict)
	}
}

// RenderSummary renders the status summary block: checkpoint list, the
// verdict, and the error message when one is set.
func RenderSummary(status flightapi.FetchStatus, noColor bool) string {
	var b strings.Builder

	b.WriteString(styled(titleStyle, "Status summary", noColor))
	b.WriteByte('\n')
	b.WriteString(styled(separatorStyle, strings.Repeat("─", 40), noColor))
	b.WriteByte('\n')

	for _, cp := range Checkpoints(status) {
		b.WriteString(fmt.Sprintf("%s %s\n", CheckpointSymbol(cp.OK, noColor), cp.Name))
	}

	b.WriteByte('\n')
	b.WriteString("overall: " + VerdictLine(status, noColor))
	b.WriteByte('\n')
	if status.ErrorMessage != "" {
		b.WriteString(styled(dimStyle, status.ErrorMessage, noColor))
		b.WriteByte('\n')
	}

	return b.String()
}

// RenderSample renders up to max extracted records as indented JSON.
func RenderSample(status flightapi.FetchStatus, max int, noColor bool) string {
	var b strings.Builder

	b.WriteString(styled(titleStyle, "Sample", noColor))
	b.WriteByte('\n')

	if len(status.FlightsExtracted) == 0 {
		b.WriteString(styled(dimStyle, "(none)", noColor))
		b.WriteByte('\n')
		return b.String()
	}

	records := status.FlightsExtracted
	if len(records) > max {
		records = records[:max]
	}
	for _, record := range records {
		encoded, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			continue
		}
		b.Write(encoded)
		b.WriteByte('\n')
	}
	if rest := len(status.FlightsExtracted) - len(records); rest > 0 {
		b.WriteString(styled(dimStyle, fmt.Sprintf("… and %d more", rest), noColor))
		b.WriteByte('\n')
	}

	return b.String()
}

func styled(style lipgloss.Style, s string, noColor bool) string {
	if noColor {
		return s
	}
	return style.Render(s)
}
