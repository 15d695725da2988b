/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/humaidq/metskids/obesity"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		}).
		Headers(headers...)
}

// WriteText writes the report as terminal tables: the Cole categories, the
// verdicts per definition, and the component flags per definition.
func (r Report) WriteText(w io.Writer) error {
	weight := newTable("Weight status", "Records")
	for _, c := range append(append([]obesity.Category{}, obesity.Categories...), obesity.CategoryMissing) {
		weight.Row(c.String(), percent(r.Obesity[c], r.Records))
	}

	verdicts := newTable("Definition", "Yes", "No", "Missing", "Prevalence")
	for _, s := range r.Summaries {
		prevalence := "-"
		if p, ok := s.Verdicts.Prevalence(); ok {
			prevalence = fmt.Sprintf("%.1f%%", 100*p)
		}

		total := s.Verdicts.Total()
		verdicts.Row(string(s.Definition),
			percent(s.Verdicts.Yes, total), percent(s.Verdicts.No, total), percent(s.Verdicts.Missing, total),
			prevalence)
	}

	if _, err := fmt.Fprintf(w, "%d records\n%s\n%s\n", r.Records, weight.Render(), verdicts.Render()); err != nil {
		return err
	}

	for _, s := range r.Summaries {
		components := newTable("Component", "Altered", "Normal", "Missing")
		for _, c := range s.Components {
			total := c.Altered + c.Normal + c.Missing
			components.Row(string(c.Component),
				percent(c.Altered, total), percent(c.Normal, total), percent(c.Missing, total))
		}

		if _, err := fmt.Fprintf(w, "%s\n%s\n", s.Name, components.Render()); err != nil {
			return err
		}
	}

	return nil
}
