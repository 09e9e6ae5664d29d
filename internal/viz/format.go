package viz

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// Placeholder is shown for null or missing cell values
	Placeholder = "-"

	tableFractionDigits = 4
	kpiFractionDigits   = 3
)

// Formatter renders scalars with locale-aware digit grouping
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a formatter for the given locale
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

var defaultFormatter = NewFormatter(language.English)

// DefaultFormatter returns the English formatter used when no locale is configured
func DefaultFormatter() *Formatter {
	return defaultFormatter
}

// Number formats v with grouping and at most maxFraction fractional digits.
func (f *Formatter) Number(v float64, maxFraction int) string {
	return f.printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(maxFraction)))
}

// Cell formats a table cell value.
func (f *Formatter) Cell(v any) string {
	return f.scalar(v, tableFractionDigits)
}

// KPI formats a headline value.
func (f *Formatter) KPI(v any) string {
	return f.scalar(v, kpiFractionDigits)
}

func (f *Formatter) scalar(v any, maxFraction int) string {
	if v == nil {
		return Placeholder
	}
	if n, ok := toFloat(v); ok {
		return f.Number(n, maxFraction)
	}
	switch s := v.(type) {
	case string:
		return s
	case bool:
		return fmt.Sprintf("%t", s)
	default:
		return fmt.Sprint(s)
	}
}
