// Package charts renders aggregates as PNG images. Rendering is stateless;
// the only failure modes are empty input and writer errors.
package charts

import (
	"errors"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"

	"grade-analytics/app/models"
)

// ErrNoData is returned when a chart is requested over an empty aggregate.
var ErrNoData = errors.New("no data to render")

// Renderer renders the chart set of the analysis pipeline.
type Renderer struct {
	Width  int
	Height int
}

func NewRenderer() *Renderer {
	return &Renderer{Width: 1024, Height: 512}
}

// GradeHistogram draws the grade distribution from histogram bins.
func (r *Renderer) GradeHistogram(bins []models.Bin, w io.Writer) error {
	if len(bins) == 0 {
		return ErrNoData
	}
	bars := make([]chart.Value, len(bins))
	for i, b := range bins {
		bars[i] = chart.Value{Label: b.Label, Value: float64(b.Count)}
	}
	return r.render("Grade distribution", bars, nil, w)
}

// MeanBar draws one bar per group at the group's mean grade. The y axis is
// pinned to the grade scale so charts from different subsets compare.
func (r *Renderer) MeanBar(title string, groups []models.GroupStats, w io.Writer) error {
	if len(groups) == 0 {
		return ErrNoData
	}
	bars := make([]chart.Value, len(groups))
	for i, g := range groups {
		bars[i] = chart.Value{Label: g.Key, Value: g.Mean}
	}
	return r.render(title, bars, &chart.ContinuousRange{Min: models.GradeMin, Max: models.GradeMax}, w)
}

// PassRateBar draws one bar per group at the group's pass rate percentage.
func (r *Renderer) PassRateBar(title string, groups []models.GroupStats, w io.Writer) error {
	if len(groups) == 0 {
		return ErrNoData
	}
	bars := make([]chart.Value, len(groups))
	for i, g := range groups {
		bars[i] = chart.Value{Label: g.Key, Value: g.PassRate}
	}
	return r.render(title, bars, &chart.ContinuousRange{Min: 0, Max: 100}, w)
}

func (r *Renderer) render(title string, bars []chart.Value, yRange chart.Range, w io.Writer) error {
	bc := chart.BarChart{
		Title:    title,
		Width:    r.Width,
		Height:   r.Height,
		BarWidth: barWidth(r.Width, len(bars)),
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.Style{TextRotationDegrees: 30},
		Bars:  bars,
	}
	if yRange != nil {
		bc.YAxis = chart.YAxis{Range: yRange}
	}
	return bc.Render(chart.PNG, w)
}

// barWidth spreads the bars over roughly two thirds of the canvas.
func barWidth(canvasWidth, bars int) int {
	w := canvasWidth * 2 / 3 / bars
	if w < 10 {
		w = 10
	}
	if w > 80 {
		w = 80
	}
	return w
}
