package viz

const (
	// MaxTableRows caps the rows a table plan displays
	MaxTableRows = 100

	// FallbackYKey is used when a chart's y field is neither given nor inferable
	FallbackYKey = "count"

	kpiFallbackLabel = "Value"
)

// Plan is the renderer-ready form of a Spec. Exactly one of KPI, Chart,
// Table is set, except for KindEmpty (none) and KindUnknown (Unknown).
type Plan struct {
	// Kind is the arm that produced the plan. Histograms report KindBarChart.
	Kind Kind
	// Source is the kind as received from the backend.
	Source Kind

	KPI     *KPIPlan
	Chart   *ChartPlan
	Table   *TablePlan
	Unknown string
}

// Empty reports whether the plan is the "no data" placeholder
func (p Plan) Empty() bool {
	return p.Kind == KindEmpty
}

// KPIPlan is a single headline value
type KPIPlan struct {
	Label   string
	Value   any
	Display string
}

// ChartPlan covers scatter, bar and line charts
type ChartPlan struct {
	XKey     string
	YKey     string
	ColorKey string
	SizeKey  string
	XLabel   string
	YLabel   string
	XScale   Scale
	YScale   Scale
	Rows     []*Row
	// Colors holds one palette entry per row, or nil for a single-color series.
	Colors []string
}

// TablePlan is a capped, pre-formatted grid
type TablePlan struct {
	Columns []string
	Headers []string
	Cells   [][]string
	Total   int
}

// Truncated reports whether rows were dropped by the display cap
func (t *TablePlan) Truncated() bool {
	return t.Total > len(t.Cells)
}

// Dispatcher maps visualization descriptors to render plans
type Dispatcher struct {
	format *Formatter
}

// NewDispatcher creates a dispatcher; a nil formatter means English.
func NewDispatcher(format *Formatter) *Dispatcher {
	if format == nil {
		format = DefaultFormatter()
	}
	return &Dispatcher{format: format}
}

// Dispatch plans spec with the default formatter
func Dispatch(spec *Spec) Plan {
	return NewDispatcher(nil).Dispatch(spec)
}

// Dispatch selects the rendering arm for spec. It never mutates the spec
// and never fails: malformed input degrades to an empty, table or unknown plan.
func (d *Dispatcher) Dispatch(spec *Spec) Plan {
	if spec == nil || len(spec.Rows) == 0 {
		var source Kind
		if spec != nil {
			source = spec.Kind
		}
		return Plan{Kind: KindEmpty, Source: source}
	}

	switch spec.Kind {
	case KindKPI:
		return Plan{Kind: KindKPI, Source: spec.Kind, KPI: d.kpi(spec.Rows[0])}
	case KindScatter:
		if spec.XField == "" || spec.YField == "" {
			// axes must be explicit for scatter; show the raw rows instead
			return Plan{Kind: KindTable, Source: spec.Kind, Table: d.table(spec.Rows)}
		}
		return Plan{Kind: KindScatter, Source: spec.Kind, Chart: scatter(spec)}
	case KindBarChart, KindHistogram:
		chart := inferAxes(spec)
		chart.Colors = assignColors(len(chart.Rows))
		return Plan{Kind: KindBarChart, Source: spec.Kind, Chart: chart}
	case KindLineChart:
		return Plan{Kind: KindLineChart, Source: spec.Kind, Chart: inferAxes(spec)}
	case KindTable, "":
		return Plan{Kind: KindTable, Source: spec.Kind, Table: d.table(spec.Rows)}
	default:
		return Plan{Kind: KindUnknown, Source: spec.Kind, Unknown: string(spec.Kind)}
	}
}

// kpi uses the first field of the first row only.
func (d *Dispatcher) kpi(row *Row) *KPIPlan {
	keys := Keys(row)
	if len(keys) == 0 {
		return &KPIPlan{Label: kpiFallbackLabel, Display: Placeholder}
	}
	value, _ := Value(row, keys[0])
	return &KPIPlan{
		Label:   keys[0],
		Value:   value,
		Display: d.format.KPI(value),
	}
}

func scatter(spec *Spec) *ChartPlan {
	chart := &ChartPlan{
		XKey:     spec.XField,
		YKey:     spec.YField,
		ColorKey: spec.ColorField,
		SizeKey:  spec.SizeField,
		XLabel:   labelOr(spec.XLabel, spec.XField),
		YLabel:   labelOr(spec.YLabel, spec.YField),
		XScale:   parseScale(spec.XScale),
		YScale:   parseScale(spec.YScale),
		Rows:     spec.Rows,
	}
	if spec.ColorField != "" {
		// colors follow row position, not the distinct values of the color field
		chart.Colors = assignColors(len(spec.Rows))
	}
	return chart
}

func inferAxes(spec *Spec) *ChartPlan {
	keys := Keys(spec.Rows[0])

	x := spec.XField
	if x == "" && len(keys) > 0 {
		x = keys[0]
	}
	y := spec.YField
	if y == "" {
		if len(keys) > 1 {
			y = keys[1]
		} else {
			y = FallbackYKey
		}
	}

	return &ChartPlan{
		XKey:   x,
		YKey:   y,
		XLabel: labelOr(spec.XLabel, x),
		YLabel: labelOr(spec.YLabel, y),
		XScale: ScaleLinear,
		YScale: ScaleLinear,
		Rows:   spec.Rows,
	}
}

func (d *Dispatcher) table(rows []*Row) *TablePlan {
	columns := Keys(rows[0])
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = Humanize(col)
	}

	shown := rows
	if len(shown) > MaxTableRows {
		shown = shown[:MaxTableRows]
	}

	cells := make([][]string, len(shown))
	for i, row := range shown {
		line := make([]string, len(columns))
		for j, col := range columns {
			v, _ := Value(row, col)
			line[j] = d.format.Cell(v)
		}
		cells[i] = line
	}

	return &TablePlan{
		Columns: columns,
		Headers: headers,
		Cells:   cells,
		Total:   len(rows),
	}
}

func labelOr(label, key string) string {
	if label != "" {
		return label
	}
	return key
}
