package render

import (
	"github.com/iksnae/exoquery/internal"
	"github.com/iksnae/exoquery/internal/viz"
)

// DefaultTitle is the card title when the descriptor has none
const DefaultTitle = "Query Results"

// DisplayModel is everything a result card shows
type DisplayModel struct {
	Title       string
	Description string
	Cached      bool
	RowCount    int
	SQL         string
	Plan        viz.Plan
}

// Presenter combines result metadata with a dispatched plan
type Presenter struct {
	dispatcher *viz.Dispatcher
}

// NewPresenter creates a presenter; a nil dispatcher uses English formatting.
func NewPresenter(d *viz.Dispatcher) *Presenter {
	if d == nil {
		d = viz.NewDispatcher(nil)
	}
	return &Presenter{dispatcher: d}
}

// Present builds the display model for a result. A nil result gets the
// default title and an empty plan.
func (p *Presenter) Present(res *internal.Result) DisplayModel {
	if res == nil {
		return DisplayModel{Title: DefaultTitle, Plan: p.dispatcher.Dispatch(nil)}
	}
	model := DisplayModel{
		Title:    DefaultTitle,
		Cached:   res.Cached,
		RowCount: res.RowCount,
		SQL:      res.SQL,
		Plan:     p.dispatcher.Dispatch(res.Visualization),
	}
	if spec := res.Visualization; spec != nil {
		if spec.Title != "" {
			model.Title = spec.Title
		}
		model.Description = spec.Description
	}
	return model
}

// Disclosures tracks which result cards show their query text, keyed by
// transcript index. Everything starts collapsed. The state lives with the
// view and is never written into the transcript.
type Disclosures struct {
	open map[int]bool
}

// Toggle flips entry i and returns the new state
func (d *Disclosures) Toggle(i int) bool {
	if d.open == nil {
		d.open = make(map[int]bool)
	}
	d.open[i] = !d.open[i]
	return d.open[i]
}

// IsOpen reports whether entry i shows its query text
func (d *Disclosures) IsOpen(i int) bool {
	return d != nil && d.open[i]
}

// Reset collapses everything
func (d *Disclosures) Reset() {
	d.open = nil
}
