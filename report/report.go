/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package report tabulates classified cohorts. Missing verdicts and flags
// are counted explicitly, never dropped.
package report

import (
	"fmt"

	"github.com/humaidq/metskids/cohort"
	"github.com/humaidq/metskids/mets"
	"github.com/humaidq/metskids/obesity"
)

// Count tallies verdicts.
type Count struct {
	Yes     int `json:"yes"`
	No      int `json:"no"`
	Missing int `json:"missing"`
}

// Total is the number of records counted.
func (c Count) Total() int {
	return c.Yes + c.No + c.Missing
}

// Prevalence is the share of Yes among determined verdicts. The second value
// is false when no verdict was determined.
func (c Count) Prevalence() (float64, bool) {
	n := c.Yes + c.No
	if n == 0 {
		return 0, false
	}

	return float64(c.Yes) / float64(n), true
}

func (c *Count) add(v mets.Verdict) {
	switch v {
	case mets.VerdictYes:
		c.Yes++
	case mets.VerdictNo:
		c.No++
	default:
		c.Missing++
	}
}

// ComponentCount tallies the flags of one component.
type ComponentCount struct {
	Component mets.Component `json:"component"`
	Altered   int            `json:"altered"`
	Normal    int            `json:"normal"`
	Missing   int            `json:"missing"`
}

// Summary is the tabulation for one definition.
type Summary struct {
	Definition mets.DefinitionID `json:"definition"`
	Name       string            `json:"name"`
	Verdicts   Count             `json:"verdicts"`
	Components []ComponentCount  `json:"components"`
	// ByObesity splits verdicts by Cole category, including missing.
	ByObesity map[obesity.Category]Count `json:"by_obesity"`
}

// Report is the tabulation of a classified cohort.
type Report struct {
	Records   int                      `json:"records"`
	Obesity   map[obesity.Category]int `json:"obesity"`
	Summaries []Summary                `json:"summaries"`
}

// Summary returns the summary of a definition.
func (r Report) Summary(id mets.DefinitionID) (Summary, bool) {
	for _, s := range r.Summaries {
		if s.Definition == id {
			return s, true
		}
	}

	return Summary{}, false
}

// Tabulate counts verdicts and component flags for each definition.
func Tabulate(rows []cohort.Row, defs []*mets.Definition) Report {
	r := Report{
		Records:   len(rows),
		Obesity:   make(map[obesity.Category]int),
		Summaries: make([]Summary, len(defs)),
	}

	index := make(map[mets.DefinitionID]int, len(defs))

	for i, d := range defs {
		index[d.ID] = i
		s := Summary{
			Definition: d.ID,
			Name:       d.Name,
			Components: make([]ComponentCount, len(d.Components)),
			ByObesity:  make(map[obesity.Category]Count),
		}

		for j, c := range d.Components {
			s.Components[j].Component = c
		}

		r.Summaries[i] = s
	}

	for _, row := range rows {
		r.Obesity[row.Obesity]++

		for _, res := range row.Results {
			i, ok := index[res.Definition]
			if !ok {
				continue
			}

			s := &r.Summaries[i]
			s.Verdicts.add(res.Verdict)

			byObesity := s.ByObesity[row.Obesity]
			byObesity.add(res.Verdict)
			s.ByObesity[row.Obesity] = byObesity

			for j := range s.Components {
				switch res.Flag(s.Components[j].Component) {
				case mets.FlagAltered:
					s.Components[j].Altered++
				case mets.FlagNormal:
					s.Components[j].Normal++
				default:
					s.Components[j].Missing++
				}
			}
		}
	}

	return r
}

// percent formats a share of a total.
func percent(n, total int) string {
	if total == 0 {
		return "-"
	}

	return fmt.Sprintf("%d (%.1f%%)", n, 100*float64(n)/float64(total))
}
