package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/graf/internal/chart"
	"github.com/tonhe/graf/internal/series"
	"github.com/tonhe/graf/tui/components"
	"github.com/tonhe/graf/tui/styles"
)

// ChartView draws the current series into the body area.
type ChartView struct {
	theme  styles.Theme
	sty    *styles.Styles
	series *series.Series
	cfg    chart.Config
	width  int
	height int
}

// NewChartView creates a ChartView with the given theme and chart settings.
func NewChartView(theme styles.Theme, cfg chart.Config) ChartView {
	return ChartView{
		theme: theme,
		sty:   styles.NewStyles(theme),
		cfg:   cfg,
	}
}

// SetSeries replaces the series being shown.
func (v *ChartView) SetSeries(s *series.Series) {
	v.series = s
}

// Series returns the series being shown, or nil.
func (v ChartView) Series() *series.Series {
	return v.series
}

// SetConfig replaces the chart settings.
func (v *ChartView) SetConfig(cfg chart.Config) {
	v.cfg = cfg
}

// Config returns the chart settings.
func (v ChartView) Config() chart.Config {
	return v.cfg
}

// SetSize updates the available dimensions for the view.
func (v *ChartView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// View renders the chart, or the render error centered in the body.
func (v ChartView) View() string {
	out, _ := v.Render()
	return out
}

// Render is View that also reports the render error.
func (v ChartView) Render() (string, error) {
	if v.series == nil {
		return v.placeholder(v.sty.DimText.Render("No data loaded")), nil
	}
	out, err := components.RenderChart(v.series.Values, v.series.Labels, v.cfg, v.width, v.height, v.series.Title)
	if err != nil {
		return v.placeholder(v.sty.ErrorText.Render(err.Error())), err
	}
	return out, nil
}

func (v ChartView) placeholder(msg string) string {
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, msg)
}
