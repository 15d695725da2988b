/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Chart builds a stacked bar chart of Yes, No and Missing verdicts per
// definition.
func (r Report) Chart() *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Metabolic syndrome by definition",
			Subtitle: fmt.Sprintf("%d records", r.Records),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Records",
		}),
	)

	labels := make([]string, 0, len(r.Summaries))
	yes := make([]opts.BarData, 0, len(r.Summaries))
	no := make([]opts.BarData, 0, len(r.Summaries))
	missing := make([]opts.BarData, 0, len(r.Summaries))

	for _, s := range r.Summaries {
		labels = append(labels, string(s.Definition))
		yes = append(yes, opts.BarData{Value: s.Verdicts.Yes})
		no = append(no, opts.BarData{Value: s.Verdicts.No})
		missing = append(missing, opts.BarData{Value: s.Verdicts.Missing})
	}

	stacked := charts.WithBarChartOpts(opts.BarChart{Stack: "verdict"})

	bar.SetXAxis(labels).
		AddSeries("Yes", yes, stacked).
		AddSeries("No", no, stacked).
		AddSeries("Missing", missing, stacked).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{
			Show: opts.Bool(true),
		}))

	return bar
}

// RenderChart writes the chart as a standalone HTML page.
func (r Report) RenderChart(w io.Writer) error {
	if err := r.Chart().Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	return nil
}

// WriteChartFile renders the chart to path.
func (r Report) WriteChartFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}

	if err := r.RenderChart(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
