/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package reference

// coleBMI holds the international BMI cutoffs for overweight and obesity by
// sex and age (Cole et al. 2000), which map to adult BMI 25 and 30 at 18.
func coleBMI() *Table {
	return &Table{
		Name:    TableColeBMI,
		Source:  "Cole TJ et al. BMJ 2000;320:1240",
		Columns: []string{ColumnOverweight, ColumnObese},
		Rows: []Row{
			{Age: 2, Male: []float64{18.41, 20.09}, Female: []float64{18.02, 19.81}},
			{Age: 2.5, Male: []float64{18.13, 19.8}, Female: []float64{17.76, 19.55}},
			{Age: 3, Male: []float64{17.89, 19.57}, Female: []float64{17.56, 19.36}},
			{Age: 3.5, Male: []float64{17.69, 19.39}, Female: []float64{17.4, 19.23}},
			{Age: 4, Male: []float64{17.55, 19.29}, Female: []float64{17.28, 19.15}},
			{Age: 4.5, Male: []float64{17.47, 19.26}, Female: []float64{17.19, 19.12}},
			{Age: 5, Male: []float64{17.42, 19.3}, Female: []float64{17.15, 19.17}},
			{Age: 5.5, Male: []float64{17.45, 19.47}, Female: []float64{17.2, 19.34}},
			{Age: 6, Male: []float64{17.55, 19.78}, Female: []float64{17.34, 19.65}},
			{Age: 6.5, Male: []float64{17.71, 20.23}, Female: []float64{17.53, 20.08}},
			{Age: 7, Male: []float64{17.92, 20.63}, Female: []float64{17.75, 20.51}},
			{Age: 7.5, Male: []float64{18.16, 21.09}, Female: []float64{18.03, 21.01}},
			{Age: 8, Male: []float64{18.44, 21.6}, Female: []float64{18.35, 21.57}},
			{Age: 8.5, Male: []float64{18.76, 22.17}, Female: []float64{18.69, 22.18}},
			{Age: 9, Male: []float64{19.1, 22.77}, Female: []float64{19.07, 22.81}},
			{Age: 9.5, Male: []float64{19.46, 23.39}, Female: []float64{19.45, 23.46}},
			{Age: 10, Male: []float64{19.84, 24}, Female: []float64{19.86, 24.11}},
			{Age: 10.5, Male: []float64{20.2, 24.57}, Female: []float64{20.29, 24.77}},
			{Age: 11, Male: []float64{20.55, 25.1}, Female: []float64{20.74, 25.42}},
			{Age: 11.5, Male: []float64{20.89, 25.58}, Female: []float64{21.2, 26.05}},
			{Age: 12, Male: []float64{21.22, 26.02}, Female: []float64{21.68, 26.67}},
			{Age: 12.5, Male: []float64{21.56, 26.43}, Female: []float64{22.14, 27.24}},
			{Age: 13, Male: []float64{21.91, 26.84}, Female: []float64{22.58, 27.76}},
			{Age: 13.5, Male: []float64{22.27, 27.25}, Female: []float64{22.98, 28.2}},
			{Age: 14, Male: []float64{22.62, 27.63}, Female: []float64{23.34, 28.57}},
			{Age: 14.5, Male: []float64{22.96, 27.98}, Female: []float64{23.66, 28.87}},
			{Age: 15, Male: []float64{23.29, 28.3}, Female: []float64{23.94, 29.11}},
			{Age: 15.5, Male: []float64{23.6, 28.6}, Female: []float64{24.17, 29.29}},
			{Age: 16, Male: []float64{23.9, 28.88}, Female: []float64{24.37, 29.43}},
			{Age: 16.5, Male: []float64{24.19, 29.14}, Female: []float64{24.54, 29.56}},
			{Age: 17, Male: []float64{24.46, 29.41}, Female: []float64{24.7, 29.69}},
			{Age: 17.5, Male: []float64{24.73, 29.7}, Female: []float64{24.85, 29.84}},
			{Age: 18, Male: []float64{25, 30}, Female: []float64{25, 30}},
		},
	}
}
