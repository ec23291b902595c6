package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mindwell/mindwell/pkg/mood"
	"github.com/mindwell/mindwell/pkg/scoring"
)

// ColorMode controls whether the terminal renderer emits ANSI styling.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto" // styled when writing to a terminal and NO_COLOR is unset
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a --color value.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
	}
}

// TerminalRenderer renders results as styled terminal text.
type TerminalRenderer struct {
	Color ColorMode
}

const wrapWidth = 70

type palette struct {
	header lipgloss.Style
	bold   lipgloss.Style
	dim    lipgloss.Style
	good   lipgloss.Style
	warn   lipgloss.Style
	bad    lipgloss.Style
	info   lipgloss.Style
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func (r *TerminalRenderer) palette(w io.Writer) palette {
	lr := lipgloss.NewRenderer(w)
	switch {
	case r.Color == ColorNever:
		lr.SetColorProfile(termenv.Ascii)
	case r.Color == ColorAlways:
		lr.SetColorProfile(termenv.ANSI)
	case noColor():
		lr.SetColorProfile(termenv.Ascii)
	}
	return palette{
		header: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		bold:   lr.NewStyle().Bold(true),
		dim:    lr.NewStyle().Foreground(lipgloss.Color("8")),
		good:   lr.NewStyle().Foreground(lipgloss.Color("10")),
		warn:   lr.NewStyle().Foreground(lipgloss.Color("3")),
		bad:    lr.NewStyle().Foreground(lipgloss.Color("9")),
		info:   lr.NewStyle().Foreground(lipgloss.Color("14")),
	}
}

// tierStyle colors a percentage by how healthy it is, whichever way the
// instrument reports.
func (p palette) tierStyle(pct int, o scoring.Orientation) lipgloss.Style {
	health := pct
	if o == scoring.OrientDistress {
		health = 100 - pct
	}
	switch {
	case health >= 60:
		return p.good
	case health >= 40:
		return p.warn
	default:
		return p.bad
	}
}

func (p palette) insightStyle(k mood.InsightKind) lipgloss.Style {
	switch k {
	case mood.InsightPositive:
		return p.good
	case mood.InsightNeutral:
		return p.warn
	case mood.InsightConcern:
		return p.bad
	default:
		return p.info
	}
}

func (r *TerminalRenderer) Render(w io.Writer, result *scoring.Result) error {
	p := r.palette(w)
	ts := p.tierStyle(result.Percentage, result.Orientation)

	fmt.Fprintf(w, "%s %s\n",
		p.header.Render(result.Name+":"),
		ts.Render(fmt.Sprintf("%s (%d%%)", result.Tier, result.Percentage)))
	fmt.Fprintf(w, "%s\n\n", p.dim.Render(fmt.Sprintf("Raw score %d of %d, %s scale", result.RawSum, result.MaxSum, result.Orientation)))

	for _, line := range wrapText(result.Description, wrapWidth) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)

	if len(result.Breakdown) > 0 {
		fmt.Fprintln(w, p.bold.Render("Breakdown:"))
		section := ""
		for _, qs := range result.Breakdown {
			if qs.Section != "" && qs.Section != section {
				section = qs.Section
				fmt.Fprintf(w, "  %s\n", p.dim.Render(section))
			}
			fmt.Fprintf(w, "  %s %d/%d  %s\n", bar(qs.Normalized, qs.Max), qs.Normalized, qs.Max, qs.Prompt)
		}
		fmt.Fprintln(w)
	}

	if len(result.Recommendations) > 0 {
		fmt.Fprintln(w, p.bold.Render("Recommendations:"))
		writeBullets(w, result.Recommendations)
		fmt.Fprintln(w)
	}

	if len(result.Concerns) > 0 {
		fmt.Fprintln(w, p.bold.Render("Areas of concern:"))
		writeBullets(w, result.Concerns)
		fmt.Fprintln(w)
	}
	return nil
}

func (r *TerminalRenderer) RenderTrend(w io.Writer, trend mood.Trend) error {
	p := r.palette(w)

	if trend.Empty {
		fmt.Fprintln(w, "No mood entries in this window.")
		return nil
	}

	fmt.Fprintf(w, "%s %d entries, average %.1f/5\n",
		p.header.Render("Mood trend:"), trend.Entries, trend.RoundedAverage())
	fmt.Fprintf(w, "Highest: %s (%d)  Lowest: %s (%d)\n\n",
		trend.Highest, trend.Highest, trend.Lowest, trend.Lowest)

	fmt.Fprintln(w, p.bold.Render("Distribution:"))
	levels := mood.Levels()
	for i := len(levels) - 1; i >= 0; i-- {
		l := levels[i]
		n := trend.Count(l)
		fmt.Fprintf(w, "  %-10s %s %d\n", l, strings.Repeat("█", n), n)
	}
	fmt.Fprintln(w)

	if len(trend.TopFactors) > 0 {
		fmt.Fprintln(w, p.bold.Render("Top factors:"))
		for _, fc := range trend.TopFactors {
			fmt.Fprintf(w, "  %s %s\n", fc.Factor, p.dim.Render(fmt.Sprintf("(%d)", fc.Count)))
		}
		fmt.Fprintln(w)
	}

	for _, in := range trend.Insights {
		fmt.Fprintf(w, "%s %s\n", p.insightStyle(in.Kind).Render("●"), p.bold.Render(in.Title))
		for _, line := range wrapText(in.Message, wrapWidth) {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	return nil
}

func (r *TerminalRenderer) RenderPlan(w io.Writer, plan Plan) error {
	p := r.palette(w)
	st := plan.Stats

	fmt.Fprintf(w, "%s %d/%d done (%d%%), %d of %d minutes\n",
		p.header.Render("Plan for "+plan.Date+":"),
		st.Completed, st.Total, st.Progress, st.CompletedMinutes, st.PlannedMinutes)

	if len(plan.Tasks) == 0 {
		fmt.Fprintln(w, "No tasks planned.")
		return nil
	}
	for _, t := range plan.Tasks {
		mark := "[ ]"
		title := t.Title
		if t.Completed {
			mark = p.good.Render("[x]")
			title = p.dim.Render(title)
		}
		fmt.Fprintf(w, "  %s %s %s %s\n", mark, t.Time, title,
			p.dim.Render(fmt.Sprintf("(%s, %s, %d min) %s", t.Category, t.Priority, t.Duration, shortID(t.ID))))
		if t.Description != "" {
			for _, line := range wrapText(t.Description, wrapWidth) {
				fmt.Fprintf(w, "        %s\n", p.dim.Render(line))
			}
		}
	}
	return nil
}

func writeBullets(w io.Writer, items []string) {
	for _, item := range items {
		lines := wrapText(item, wrapWidth)
		for i, line := range lines {
			if i == 0 {
				fmt.Fprintf(w, "  • %s\n", line)
				continue
			}
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}

// bar draws a four-cell gauge of v out of total.
func bar(v, total int) string {
	const cells = 4
	if total <= 0 {
		return strings.Repeat("░", cells)
	}
	filled := (v*cells + total/2) / total
	if filled > cells {
		filled = cells
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", cells-filled)
}

// shortID is the prefix of a task ID shown in listings. Commands accept any
// unique prefix.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
