package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/iksnae/exoquery/internal/viz"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// NoDataMessage is shown for empty plans
	NoDataMessage = "No data found for this query"

	barWidth      = 36
	labelWidth    = 18
	scatterWidth  = 56
	scatterHeight = 14
	axisDigits    = 2
)

// Renderer turns plans, result cards and transcripts into terminal text.
// It holds no transcript state.
type Renderer struct {
	format    *viz.Formatter
	presenter *Presenter
}

// NewRenderer creates a renderer; a nil formatter means English.
func NewRenderer(format *viz.Formatter) *Renderer {
	if format == nil {
		format = viz.DefaultFormatter()
	}
	return &Renderer{
		format:    format,
		presenter: NewPresenter(viz.NewDispatcher(format)),
	}
}

// Plan renders a plan by kind
func (r *Renderer) Plan(p viz.Plan) string {
	switch p.Kind {
	case viz.KindEmpty:
		return mutedStyle.Render(NoDataMessage)
	case viz.KindKPI:
		return r.kpi(p.KPI)
	case viz.KindScatter:
		return r.scatter(p.Chart)
	case viz.KindBarChart:
		return r.bars(p.Chart, p.Source == viz.KindHistogram)
	case viz.KindLineChart:
		return r.line(p.Chart)
	case viz.KindTable:
		return r.table(p.Table)
	default:
		return mutedStyle.Render(fmt.Sprintf("Unknown visualization type: %s", p.Unknown))
	}
}

func (r *Renderer) kpi(k *viz.KPIPlan) string {
	label := cases.Title(language.English).String(viz.Humanize(k.Label))
	return kpiValueStyle.Render(k.Display) + "\n" + kpiLabelStyle.Render(label)
}

// bars draws one horizontal bar per row, scaled to the largest value.
// Histogram rows are pre-bucketed and drawn the same way.
func (r *Renderer) bars(c *viz.ChartPlan, histogram bool) string {
	peak := 0.0
	for _, row := range c.Rows {
		if v, ok := viz.Number(row, c.YKey); ok && v > peak {
			peak = v
		}
	}

	var b strings.Builder
	b.WriteString(axisStyle.Render(barsTitle(c, histogram)))
	b.WriteString("\n")
	for i, row := range c.Rows {
		label := r.category(row, c.XKey)
		v, ok := viz.Number(row, c.YKey)
		n := 0
		if ok && peak > 0 && v > 0 {
			n = int(math.Round(v / peak * barWidth))
			if n == 0 {
				n = 1
			}
		}
		color := viz.Color(i)
		if i < len(c.Colors) {
			color = c.Colors[i]
		}
		value := viz.Placeholder
		if ok {
			value = r.format.Number(v, axisDigits)
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			pad(label, labelWidth),
			colored(color).Render(strings.Repeat("█", n)),
			value)
	}
	return strings.TrimRight(b.String(), "\n")
}

func barsTitle(c *viz.ChartPlan, histogram bool) string {
	if histogram {
		return fmt.Sprintf("Distribution of %s (%s per bin)", c.XLabel, c.YLabel)
	}
	return fmt.Sprintf("%s by %s", c.YLabel, c.XLabel)
}

// line draws the series one point per row, with the marker column
// proportional to the value.
func (r *Renderer) line(c *viz.ChartPlan) string {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range c.Rows {
		if v, ok := viz.Number(row, c.YKey); ok {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}

	stroke := colored(viz.Palette[0])
	var b strings.Builder
	b.WriteString(axisStyle.Render(fmt.Sprintf("%s over %s", c.YLabel, c.XLabel)))
	b.WriteString("\n")
	for _, row := range c.Rows {
		label := r.category(row, c.XKey)
		v, ok := viz.Number(row, c.YKey)
		if !ok {
			fmt.Fprintf(&b, "%s %s\n", pad(label, labelWidth), axisStyle.Render("│ "+viz.Placeholder))
			continue
		}
		pos, _ := cell(v, lo, hi, barWidth)
		fmt.Fprintf(&b, "%s %s%s%s %s\n",
			pad(label, labelWidth),
			axisStyle.Render("│"),
			stroke.Render(strings.Repeat("─", pos)),
			stroke.Render("●"),
			r.format.Number(v, axisDigits))
	}
	return strings.TrimRight(b.String(), "\n")
}

type point struct {
	x, y  float64
	color string
}

// scatter plots rows on a character grid. Log axes skip non-positive values.
func (r *Renderer) scatter(c *viz.ChartPlan) string {
	var pts []point
	for i, row := range c.Rows {
		x, okX := viz.Number(row, c.XKey)
		y, okY := viz.Number(row, c.YKey)
		if !okX || !okY {
			continue
		}
		x, okX = scaled(x, c.XScale)
		y, okY = scaled(y, c.YScale)
		if !okX || !okY {
			continue
		}
		color := viz.Palette[0]
		if i < len(c.Colors) {
			color = c.Colors[i]
		}
		pts = append(pts, point{x: x, y: y, color: color})
	}
	if len(pts) == 0 {
		return mutedStyle.Render(NoDataMessage)
	}

	minX, maxX := pts[0].x, pts[0].x
	minY, maxY := pts[0].y, pts[0].y
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.x), math.Max(maxX, p.x)
		minY, maxY = math.Min(minY, p.y), math.Max(maxY, p.y)
	}
	if maxX == minX {
		minX, maxX = minX-1, maxX+1
	}
	if maxY == minY {
		minY, maxY = minY-1, maxY+1
	}

	grid := make([][]string, scatterHeight)
	for i := range grid {
		grid[i] = strings.Split(strings.Repeat(" ", scatterWidth), "")
	}
	for _, p := range pts {
		col, okX := cell(p.x, minX, maxX, scatterWidth)
		row, okY := cell(p.y, minY, maxY, scatterHeight)
		if !okX || !okY {
			continue
		}
		grid[scatterHeight-1-row][col] = colored(p.color).Render("●")
	}

	yTop := r.format.Number(unscaled(maxY, c.YScale), axisDigits)
	yBottom := r.format.Number(unscaled(minY, c.YScale), axisDigits)
	gutter := runewidth.StringWidth(yTop)
	if w := runewidth.StringWidth(yBottom); w > gutter {
		gutter = w
	}

	var b strings.Builder
	b.WriteString(axisStyle.Render(axisTitle(c.YLabel, c.YScale)))
	b.WriteString("\n")
	for i, line := range grid {
		tick := ""
		switch i {
		case 0:
			tick = yTop
		case scatterHeight - 1:
			tick = yBottom
		}
		fmt.Fprintf(&b, "%s %s%s\n", padLeft(tick, gutter), axisStyle.Render("│"), strings.Join(line, ""))
	}
	fmt.Fprintf(&b, "%s %s\n", strings.Repeat(" ", gutter), axisStyle.Render("└"+strings.Repeat("─", scatterWidth)))

	xLeft := r.format.Number(unscaled(minX, c.XScale), axisDigits)
	xRight := r.format.Number(unscaled(maxX, c.XScale), axisDigits)
	gap := scatterWidth - runewidth.StringWidth(xLeft) - runewidth.StringWidth(xRight)
	if gap < 1 {
		gap = 1
	}
	fmt.Fprintf(&b, "%s  %s%s%s\n", strings.Repeat(" ", gutter), xLeft, strings.Repeat(" ", gap), xRight)
	fmt.Fprintf(&b, "%s  %s", strings.Repeat(" ", gutter), axisStyle.Render(axisTitle(c.XLabel, c.XScale)))

	if c.ColorKey != "" {
		b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("color: %s", c.ColorKey)))
	}
	if c.SizeKey != "" {
		b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("size: %s", c.SizeKey)))
	}
	return b.String()
}

func (r *Renderer) table(t *viz.TablePlan) string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, line := range t.Cells {
		for i, cell := range line {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	header := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = pad(h, widths[i])
	}
	b.WriteString(headerStyle.Render(strings.Join(header, "  ")))
	b.WriteString("\n")

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("─", w)
	}
	b.WriteString(axisStyle.Render(strings.Join(rule, "  ")))

	for _, line := range t.Cells {
		cells := make([]string, len(line))
		for i, cell := range line {
			cells[i] = pad(cell, widths[i])
		}
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
	}

	if t.Truncated() {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("Showing %d of %d rows", len(t.Cells), t.Total)))
	}
	return b.String()
}

func (r *Renderer) category(row *viz.Row, key string) string {
	v, _ := viz.Value(row, key)
	return r.format.Cell(v)
}

// cell maps v in [lo, hi] onto one of n cells. Halving before subtracting
// keeps the span finite for any pair of finite values.
func cell(v, lo, hi float64, n int) (int, bool) {
	span := hi/2 - lo/2
	if !(span > 0) {
		return 0, true
	}
	f := (v/2 - lo/2) / span
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	i := int(math.Round(f * float64(n-1)))
	return min(max(i, 0), n-1), true
}

func scaled(v float64, s viz.Scale) (float64, bool) {
	if s != viz.ScaleLog {
		return v, true
	}
	if v <= 0 {
		return 0, false
	}
	return math.Log10(v), true
}

func unscaled(v float64, s viz.Scale) float64 {
	if s == viz.ScaleLog {
		return math.Pow(10, v)
	}
	return v
}

func axisTitle(label string, s viz.Scale) string {
	if s == viz.ScaleLog {
		return label + " (log)"
	}
	return label
}

// pad truncates or right-pads s to exactly w display columns.
func pad(s string, w int) string {
	if runewidth.StringWidth(s) > w {
		s = runewidth.Truncate(s, w, "…")
	}
	return runewidth.FillRight(s, w)
}

func padLeft(s string, w int) string {
	return runewidth.FillLeft(s, w)
}
