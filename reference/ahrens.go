/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package reference

const ahrensSource = "Ahrens W et al. Int J Obes 2014;38:S4"

// ahrensTGPrepubertal holds the 90th percentile of triglycerides (mg/dL) for prepubertal children (Tanner stage 1).
func ahrensTGPrepubertal() *Table {
	return &Table{
		Name:    Pubertal(TableAhrensTGP90, false),
		Source:  ahrensSource,
		Columns: []string{ColumnValue},
		Rows: []Row{
			{Age: 2, Male: []float64{82}, Female: []float64{86}},
			{Age: 3, Male: []float64{83.7}, Female: []float64{88}},
			{Age: 4, Male: []float64{85.3}, Female: []float64{90}},
			{Age: 5, Male: []float64{87}, Female: []float64{92}},
			{Age: 6, Male: []float64{88.7}, Female: []float64{94}},
			{Age: 7, Male: []float64{90.3}, Female: []float64{96}},
			{Age: 8, Male: []float64{92}, Female: []float64{98}},
			{Age: 9, Male: []float64{94.7}, Female: []float64{100.3}},
			{Age: 10, Male: []float64{97.3}, Female: []float64{102.7}},
			{Age: 11, Male: []float64{100}, Female: []float64{105}},
			{Age: 12, Male: []float64{102.7}, Female: []float64{107.3}},
			{Age: 13, Male: []float64{105.3}, Female: []float64{109.7}},
			{Age: 14, Male: []float64{108}, Female: []float64{112}},
		},
	}
}

// ahrensTGPubertal holds the 90th percentile of triglycerides (mg/dL) for pubertal children (Tanner stages 2-5).
func ahrensTGPubertal() *Table {
	return &Table{
		Name:    Pubertal(TableAhrensTGP90, true),
		Source:  ahrensSource,
		Columns: []string{ColumnValue},
		Rows: []Row{
			{Age: 8, Male: []float64{104}, Female: []float64{108}},
			{Age: 9, Male: []float64{107.1}, Female: []float64{110.2}},
			{Age: 10, Male: []float64{110.2}, Female: []float64{112.4}},
			{Age: 11, Male: []float64{113.3}, Female: []float64{114.7}},
			{Age: 12, Male: []float64{116.4}, Female: []float64{116.9}},
			{Age: 13, Male: []float64{119.6}, Female: []float64{119.1}},
			{Age: 14, Male: []float64{122.7}, Female: []float64{121.3}},
			{Age: 15, Male: []float64{125.8}, Female: []float64{123.6}},
			{Age: 16, Male: []float64{128.9}, Female: []float64{125.8}},
			{Age: 17, Male: []float64{132}, Female: []float64{128}},
		},
	}
}

// ahrensHDLPrepubertal holds the 10th percentile of HDL cholesterol (mg/dL) for prepubertal children (Tanner stage 1).
func ahrensHDLPrepubertal() *Table {
	return &Table{
		Name:    Pubertal(TableAhrensHDLP10, false),
		Source:  ahrensSource,
		Columns: []string{ColumnValue},
		Rows: []Row{
			{Age: 2, Male: []float64{37}, Female: []float64{36}},
			{Age: 3, Male: []float64{37.5}, Female: []float64{36.3}},
			{Age: 4, Male: []float64{38}, Female: []float64{36.7}},
			{Age: 5, Male: []float64{38.5}, Female: []float64{37}},
			{Age: 6, Male: []float64{39}, Female: []float64{37.3}},
			{Age: 7, Male: []float64{39.5}, Female: []float64{37.7}},
			{Age: 8, Male: []float64{40}, Female: []float64{38}},
			{Age: 9, Male: []float64{39.8}, Female: []float64{38}},
			{Age: 10, Male: []float64{39.7}, Female: []float64{38}},
			{Age: 11, Male: []float64{39.5}, Female: []float64{38}},
			{Age: 12, Male: []float64{39.3}, Female: []float64{38}},
			{Age: 13, Male: []float64{39.2}, Female: []float64{38}},
			{Age: 14, Male: []float64{39}, Female: []float64{38}},
		},
	}
}

// ahrensHDLPubertal holds the 10th percentile of HDL cholesterol (mg/dL) for pubertal children (Tanner stages 2-5).
func ahrensHDLPubertal() *Table {
	return &Table{
		Name:    Pubertal(TableAhrensHDLP10, true),
		Source:  ahrensSource,
		Columns: []string{ColumnValue},
		Rows: []Row{
			{Age: 8, Male: []float64{39}, Female: []float64{38}},
			{Age: 9, Male: []float64{38.4}, Female: []float64{37.9}},
			{Age: 10, Male: []float64{37.9}, Female: []float64{37.8}},
			{Age: 11, Male: []float64{37.3}, Female: []float64{37.7}},
			{Age: 12, Male: []float64{36.8}, Female: []float64{37.6}},
			{Age: 13, Male: []float64{36.2}, Female: []float64{37.4}},
			{Age: 14, Male: []float64{35.7}, Female: []float64{37.3}},
			{Age: 15, Male: []float64{35.1}, Female: []float64{37.2}},
			{Age: 16, Male: []float64{34.6}, Female: []float64{37.1}},
			{Age: 17, Male: []float64{34}, Female: []float64{37}},
		},
	}
}

// ahrensGlucosePrepubertal holds the 90th percentile of fasting glucose (mg/dL) for prepubertal children (Tanner stage 1).
func ahrensGlucosePrepubertal() *Table {
	return &Table{
		Name:    Pubertal(TableAhrensGlucoseP90, false),
		Source:  ahrensSource,
		Columns: []string{ColumnValue},
		Rows: []Row{
			{Age: 2, Male: []float64{91}, Female: []float64{90}},
			{Age: 3, Male: []float64{91.7}, Female: []float64{90.7}},
			{Age: 4, Male: []float64{92.3}, Female: []float64{91.3}},
			{Age: 5, Male: []float64{93}, Female: []float64{92}},
			{Age: 6, Male: []float64{93.7}, Female: []float64{92.7}},
			{Age: 7, Male: []float64{94.3}, Female: []float64{93.3}},
			{Age: 8, Male: []float64{95}, Female: []float64{94}},
			{Age: 9, Male: []float64{95.3}, Female: []float64{94.3}},
			{Age: 10, Male: []float64{95.7}, Female: []float64{94.7}},
			{Age: 11, Male: []float64{96}, Female: []float64{95}},
			{Age: 12, Male: []float64{96.3}, Female: []float64{95.3}},
			{Age: 13, Male: []float64{96.7}, Female: []float64{95.7}},
			{Age: 14, Male: []float64{97}, Female: []float64{96}},
		},
	}
}

// ahrensGlucosePubertal holds the 90th percentile of fasting glucose (mg/dL) for pubertal children (Tanner stages 2-5).
func ahrensGlucosePubertal() *Table {
	return &Table{
		Name:    Pubertal(TableAhrensGlucoseP90, true),
		Source:  ahrensSource,
		Columns: []string{ColumnValue},
		Rows: []Row{
			{Age: 8, Male: []float64{97}, Female: []float64{96}},
			{Age: 9, Male: []float64{97.2}, Female: []float64{96.1}},
			{Age: 10, Male: []float64{97.4}, Female: []float64{96.2}},
			{Age: 11, Male: []float64{97.7}, Female: []float64{96.3}},
			{Age: 12, Male: []float64{97.9}, Female: []float64{96.4}},
			{Age: 13, Male: []float64{98.1}, Female: []float64{96.6}},
			{Age: 14, Male: []float64{98.3}, Female: []float64{96.7}},
			{Age: 15, Male: []float64{98.6}, Female: []float64{96.8}},
			{Age: 16, Male: []float64{98.8}, Female: []float64{96.9}},
			{Age: 17, Male: []float64{99}, Female: []float64{97}},
		},
	}
}

// ahrensHOMAPrepubertal holds the 90th percentile of HOMA-IR for prepubertal children (Tanner stage 1).
func ahrensHOMAPrepubertal() *Table {
	return &Table{
		Name:    Pubertal(TableAhrensHOMAP90, false),
		Source:  ahrensSource,
		Columns: []string{ColumnValue},
		Rows: []Row{
			{Age: 2, Male: []float64{0.9}, Female: []float64{1}},
			{Age: 3, Male: []float64{1.02}, Female: []float64{1.15}},
			{Age: 4, Male: []float64{1.13}, Female: []float64{1.3}},
			{Age: 5, Male: []float64{1.25}, Female: []float64{1.45}},
			{Age: 6, Male: []float64{1.37}, Female: []float64{1.6}},
			{Age: 7, Male: []float64{1.48}, Female: []float64{1.75}},
			{Age: 8, Male: []float64{1.6}, Female: []float64{1.9}},
			{Age: 9, Male: []float64{1.77}, Female: []float64{2.07}},
			{Age: 10, Male: []float64{1.93}, Female: []float64{2.23}},
			{Age: 11, Male: []float64{2.1}, Female: []float64{2.4}},
			{Age: 12, Male: []float64{2.27}, Female: []float64{2.57}},
			{Age: 13, Male: []float64{2.43}, Female: []float64{2.73}},
			{Age: 14, Male: []float64{2.6}, Female: []float64{2.9}},
		},
	}
}

// ahrensHOMAPubertal holds the 90th percentile of HOMA-IR for pubertal children (Tanner stages 2-5).
func ahrensHOMAPubertal() *Table {
	return &Table{
		Name:    Pubertal(TableAhrensHOMAP90, true),
		Source:  ahrensSource,
		Columns: []string{ColumnValue},
		Rows: []Row{
			{Age: 8, Male: []float64{2.8}, Female: []float64{3.1}},
			{Age: 9, Male: []float64{3.02}, Female: []float64{3.38}},
			{Age: 10, Male: []float64{3.24}, Female: []float64{3.65}},
			{Age: 11, Male: []float64{3.46}, Female: []float64{3.93}},
			{Age: 12, Male: []float64{3.68}, Female: []float64{4.2}},
			{Age: 13, Male: []float64{3.9}, Female: []float64{4.08}},
			{Age: 14, Male: []float64{3.77}, Female: []float64{3.96}},
			{Age: 15, Male: []float64{3.65}, Female: []float64{3.84}},
			{Age: 16, Male: []float64{3.52}, Female: []float64{3.72}},
			{Age: 17, Male: []float64{3.4}, Female: []float64{3.6}},
		},
	}
}
