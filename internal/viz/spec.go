package viz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind names a visualization type as sent by the backend
type Kind string

const (
	KindKPI       Kind = "kpi"
	KindScatter   Kind = "scatter"
	KindBarChart  Kind = "bar_chart"
	KindLineChart Kind = "line_chart"
	KindHistogram Kind = "histogram"
	KindTable     Kind = "table"

	// KindEmpty and KindUnknown never arrive on the wire; they tag degraded plans.
	KindEmpty   Kind = "empty"
	KindUnknown Kind = "unknown"
)

// Scale controls axis scaling of a scatter plot
type Scale string

const (
	ScaleLinear Scale = "linear"
	ScaleLog    Scale = "log"
)

// Row is one result row. Key order is the order the backend sent the fields in.
type Row = orderedmap.OrderedMap[string, any]

// Spec is the visualization descriptor produced by the backend
type Spec struct {
	Kind        Kind   `json:"type,omitempty" yaml:"type,omitempty"`
	Rows        []*Row `json:"data" yaml:"data"`
	XField      string `json:"x_field,omitempty" yaml:"x_field,omitempty"`
	YField      string `json:"y_field,omitempty" yaml:"y_field,omitempty"`
	ColorField  string `json:"color_field,omitempty" yaml:"color_field,omitempty"`
	SizeField   string `json:"size_field,omitempty" yaml:"size_field,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	XLabel      string `json:"x_label,omitempty" yaml:"x_label,omitempty"`
	YLabel      string `json:"y_label,omitempty" yaml:"y_label,omitempty"`
	XScale      Scale  `json:"x_scale,omitempty" yaml:"x_scale,omitempty"`
	YScale      Scale  `json:"y_scale,omitempty" yaml:"y_scale,omitempty"`
}

// ParseSpec decodes a descriptor. An absent or null descriptor yields nil.
// When the rows are malformed the descriptive fields are kept and Rows is
// left empty, so the plan degrades to Empty; the decode error is still
// returned so the caller can log it.
func ParseSpec(data []byte) (*Spec, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	var spec Spec
	err := json.Unmarshal(data, &spec)
	if err == nil {
		return &spec, nil
	}

	var header struct {
		Spec
		Rows json.RawMessage `json:"data"`
	}
	if json.Unmarshal(data, &header) != nil {
		return nil, fmt.Errorf("malformed visualization: %w", err)
	}
	degraded := header.Spec
	degraded.Rows = nil
	return &degraded, fmt.Errorf("malformed visualization data: %w", err)
}

// NewRow builds a row from alternating key/value arguments.
// Odd trailing arguments and non-string keys are ignored.
func NewRow(pairs ...any) *Row {
	row := orderedmap.New[string, any]()
	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			continue
		}
		row.Set(key, pairs[i+1])
	}
	return row
}

// Keys returns the row's field names in row order. A nil row has no keys.
func Keys(row *Row) []string {
	if row == nil {
		return nil
	}
	keys := make([]string, 0, row.Len())
	for pair := row.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Value looks up a field, tolerating nil rows and missing keys.
func Value(row *Row, key string) (any, bool) {
	if row == nil {
		return nil, false
	}
	return row.Get(key)
}

// Number returns the numeric value of a field, if it has one.
func Number(row *Row, key string) (float64, bool) {
	v, ok := Value(row, key)
	if !ok {
		return 0, false
	}
	return toFloat(v)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Humanize turns a raw field name into a display label.
func Humanize(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

func parseScale(s Scale) Scale {
	if strings.EqualFold(string(s), string(ScaleLog)) {
		return ScaleLog
	}
	return ScaleLinear
}
