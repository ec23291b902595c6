// Package surface renders MindWell results for people and for machines.
// Implementations handle the terminal and JSON output targets.
package surface

import (
	"fmt"
	"io"

	"github.com/mindwell/mindwell/pkg/mood"
	"github.com/mindwell/mindwell/pkg/scoring"
	"github.com/mindwell/mindwell/pkg/selfcare"
)

// Renderer produces formatted output for each kind of result.
type Renderer interface {
	// Render writes a questionnaire score.
	Render(w io.Writer, result *scoring.Result) error
	// RenderTrend writes a mood trend analysis.
	RenderTrend(w io.Writer, trend mood.Trend) error
	// RenderPlan writes the self-care plan of one day.
	RenderPlan(w io.Writer, plan Plan) error
}

// Plan is the self-care schedule of a single date.
type Plan struct {
	Date  string              `json:"date"`
	Tasks []selfcare.Task     `json:"tasks"`
	Stats selfcare.DailyStats `json:"stats"`
}

// Output formats accepted by ForFormat.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ForFormat returns the renderer for an --output value.
func ForFormat(format string, color ColorMode) (Renderer, error) {
	switch format {
	case "", FormatText:
		return &TerminalRenderer{Color: color}, nil
	case FormatJSON:
		return &JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatText, FormatJSON)
	}
}
