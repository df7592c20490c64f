package export

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"project-explorer/engine"
)

// ChartPNG renders one of the dashboard charts as a static PNG for
// download. name selects the chart; bins applies to the histogram only.
func ChartPNG(name string, v engine.View, bins int) ([]byte, error) {
	p := plot.New()

	var err error
	switch name {
	case "funding_histogram":
		err = plotFundingHistogram(p, v, bins)
	case "funding_by_category":
		err = plotFundingByCategory(p, v)
	case "year_trend":
		err = plotYearTrend(p, v)
	case "team_success":
		err = plotTeamSuccess(p, v)
	default:
		return nil, fmt.Errorf("unknown chart %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}

	wt, err := p.WriterTo(8*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func plotFundingHistogram(p *plot.Plot, v engine.View, bins int) error {
	if bins <= 0 {
		bins = engine.HistogramBins
	}
	p.Title.Text = "Funding Distribution"
	p.X.Label.Text = "Funding ($)"
	p.Y.Label.Text = "Number of Projects"
	if v.Len() == 0 {
		return nil
	}

	values := make(plotter.Values, v.Len())
	for i := 0; i < v.Len(); i++ {
		values[i] = v.At(i).Funding
	}
	hist, err := plotter.NewHist(values, bins)
	if err != nil {
		return err
	}
	p.Add(hist)
	return nil
}

func plotFundingByCategory(p *plot.Plot, v engine.View) error {
	p.Title.Text = "Total Funding by Category"
	p.Y.Label.Text = "Funding ($)"
	spec := engine.FundingByCategorySpec(v)
	if len(spec.Labels) == 0 {
		return nil
	}

	bars, err := plotter.NewBarChart(plotter.Values(spec.Values), vg.Points(24))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(spec.Labels...)
	return nil
}

func plotYearTrend(p *plot.Plot, v engine.View) error {
	p.Title.Text = "Projects Launched by Year"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Number of Projects"
	spec := engine.YearTrendSpec(v)
	if len(spec.X) == 0 {
		return nil
	}

	xys := make(plotter.XYs, len(spec.X))
	for i := range spec.X {
		xys[i].X = float64(spec.X[i])
		xys[i].Y = spec.Y[i]
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	p.Add(line)
	return nil
}

func plotTeamSuccess(p *plot.Plot, v engine.View) error {
	p.Title.Text = "Team Size vs Success Rate"
	p.X.Label.Text = "Team Size"
	p.Y.Label.Text = "Success Rate"
	if v.Len() == 0 {
		return nil
	}

	xys := make(plotter.XYs, v.Len())
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		xys[i].X = float64(r.TeamSize)
		xys[i].Y = r.SuccessRate
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	p.Add(scatter)
	return nil
}
