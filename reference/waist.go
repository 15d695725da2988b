/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package reference

// waistP90 holds the 90th percentile of waist circumference (cm) by age and
// sex (Fernández et al. 2004, NHANES III).
func waistP90() *Table {
	return &Table{
		Name:    TableWaistP90,
		Source:  "Fernandez JR et al. J Pediatr 2004;145:439",
		Columns: []string{ColumnP90},
		Rows: []Row{
			{Age: 2, Male: []float64{50.8}, Female: []float64{52.2}},
			{Age: 3, Male: []float64{54.2}, Female: []float64{55.3}},
			{Age: 4, Male: []float64{57.6}, Female: []float64{58.3}},
			{Age: 5, Male: []float64{61}, Female: []float64{61.4}},
			{Age: 6, Male: []float64{64.4}, Female: []float64{64.4}},
			{Age: 7, Male: []float64{67.8}, Female: []float64{67.5}},
			{Age: 8, Male: []float64{71.2}, Female: []float64{70.5}},
			{Age: 9, Male: []float64{74.6}, Female: []float64{73.6}},
			{Age: 10, Male: []float64{78}, Female: []float64{76.6}},
			{Age: 11, Male: []float64{81.4}, Female: []float64{79.7}},
			{Age: 12, Male: []float64{84.8}, Female: []float64{82.7}},
			{Age: 13, Male: []float64{88.2}, Female: []float64{85.8}},
			{Age: 14, Male: []float64{91.6}, Female: []float64{88.8}},
			{Age: 15, Male: []float64{95}, Female: []float64{91.9}},
			{Age: 16, Male: []float64{98.4}, Female: []float64{94.9}},
			{Age: 17, Male: []float64{101.8}, Female: []float64{98}},
			{Age: 18, Male: []float64{105.2}, Female: []float64{101}},
		},
	}
}
