/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package reference

// bpHeightColumns are the blood pressure table columns, one per entry of
// HeightPercentiles.
var bpHeightColumns = []string{"h5", "h10", "h25", "h50", "h75", "h90", "h95"}

// sbpP90 holds the 90th percentile of systolic blood pressure (mmHg) by age,
// sex and height percentile (NHBPEP Fourth Report, 2004).
func sbpP90() *Table {
	return &Table{
		Name:    TableSBPP90,
		Source:  "NHBPEP Working Group. Pediatrics 2004;114:555",
		Columns: bpHeightColumns,
		Rows: []Row{
			{Age: 1, Male: []float64{95, 96, 98, 99, 101, 102, 103}, Female: []float64{97, 97, 99, 100, 101, 103, 103}},
			{Age: 2, Male: []float64{98, 99, 101, 102, 104, 105, 106}, Female: []float64{98, 98, 100, 101, 102, 104, 104}},
			{Age: 3, Male: []float64{101, 102, 104, 105, 107, 108, 109}, Female: []float64{100, 100, 102, 103, 104, 106, 106}},
			{Age: 4, Male: []float64{103, 104, 106, 107, 109, 110, 111}, Female: []float64{101, 101, 103, 104, 105, 107, 107}},
			{Age: 5, Male: []float64{104, 105, 107, 108, 110, 111, 112}, Female: []float64{103, 103, 105, 106, 107, 109, 109}},
			{Age: 6, Male: []float64{106, 107, 109, 110, 112, 113, 114}, Female: []float64{105, 105, 107, 108, 109, 111, 111}},
			{Age: 7, Male: []float64{107, 108, 110, 111, 113, 114, 115}, Female: []float64{106, 106, 108, 109, 110, 112, 112}},
			{Age: 8, Male: []float64{108, 109, 111, 112, 114, 115, 116}, Female: []float64{108, 108, 110, 111, 112, 114, 114}},
			{Age: 9, Male: []float64{110, 111, 113, 114, 116, 117, 118}, Female: []float64{110, 110, 112, 113, 114, 116, 116}},
			{Age: 10, Male: []float64{111, 112, 114, 115, 117, 118, 119}, Female: []float64{112, 112, 114, 115, 116, 118, 118}},
			{Age: 11, Male: []float64{113, 114, 116, 117, 119, 120, 121}, Female: []float64{114, 114, 116, 117, 118, 120, 120}},
			{Age: 12, Male: []float64{116, 117, 119, 120, 122, 123, 124}, Female: []float64{116, 116, 118, 119, 120, 122, 122}},
			{Age: 13, Male: []float64{118, 119, 121, 122, 124, 125, 126}, Female: []float64{118, 118, 120, 121, 122, 124, 124}},
			{Age: 14, Male: []float64{121, 122, 124, 125, 127, 128, 129}, Female: []float64{119, 119, 121, 122, 123, 125, 125}},
			{Age: 15, Male: []float64{123, 124, 126, 127, 129, 130, 131}, Female: []float64{120, 120, 122, 123, 124, 126, 126}},
			{Age: 16, Male: []float64{126, 127, 129, 130, 132, 133, 134}, Female: []float64{121, 121, 123, 124, 125, 127, 127}},
			{Age: 17, Male: []float64{128, 129, 131, 132, 134, 135, 136}, Female: []float64{122, 122, 124, 125, 126, 128, 128}},
		},
	}
}

// dbpP90 holds the 90th percentile of diastolic blood pressure (mmHg) by age,
// sex and height percentile (NHBPEP Fourth Report, 2004).
func dbpP90() *Table {
	return &Table{
		Name:    TableDBPP90,
		Source:  "NHBPEP Working Group. Pediatrics 2004;114:555",
		Columns: bpHeightColumns,
		Rows: []Row{
			{Age: 1, Male: []float64{50, 50, 51, 52, 53, 54, 55}, Female: []float64{53, 53, 53, 54, 55, 55, 56}},
			{Age: 2, Male: []float64{55, 55, 56, 57, 58, 59, 60}, Female: []float64{58, 58, 58, 59, 60, 60, 61}},
			{Age: 3, Male: []float64{59, 59, 60, 61, 62, 63, 64}, Female: []float64{62, 62, 62, 63, 64, 64, 65}},
			{Age: 4, Male: []float64{62, 62, 63, 64, 65, 66, 67}, Female: []float64{65, 65, 65, 66, 67, 67, 68}},
			{Age: 5, Male: []float64{65, 65, 66, 67, 68, 69, 70}, Female: []float64{67, 67, 67, 68, 69, 69, 70}},
			{Age: 6, Male: []float64{68, 68, 69, 70, 71, 72, 73}, Female: []float64{69, 69, 69, 70, 71, 71, 72}},
			{Age: 7, Male: []float64{70, 70, 71, 72, 73, 74, 75}, Female: []float64{70, 70, 70, 71, 72, 72, 73}},
			{Age: 8, Male: []float64{71, 71, 72, 73, 74, 75, 76}, Female: []float64{71, 71, 71, 72, 73, 73, 74}},
			{Age: 9, Male: []float64{72, 72, 73, 74, 75, 76, 77}, Female: []float64{72, 72, 72, 73, 74, 74, 75}},
			{Age: 10, Male: []float64{73, 73, 74, 75, 76, 77, 78}, Female: []float64{73, 73, 73, 74, 75, 75, 76}},
			{Age: 11, Male: []float64{73, 73, 74, 75, 76, 77, 78}, Female: []float64{74, 74, 74, 75, 76, 76, 77}},
			{Age: 12, Male: []float64{74, 74, 75, 76, 77, 78, 79}, Female: []float64{75, 75, 75, 76, 77, 77, 78}},
			{Age: 13, Male: []float64{74, 74, 75, 76, 77, 78, 79}, Female: []float64{76, 76, 76, 77, 78, 78, 79}},
			{Age: 14, Male: []float64{75, 75, 76, 77, 78, 79, 80}, Female: []float64{77, 77, 77, 78, 79, 79, 80}},
			{Age: 15, Male: []float64{76, 76, 77, 78, 79, 80, 81}, Female: []float64{78, 78, 78, 79, 80, 80, 81}},
			{Age: 16, Male: []float64{77, 77, 78, 79, 80, 81, 82}, Female: []float64{79, 79, 79, 80, 81, 81, 82}},
			{Age: 17, Male: []float64{80, 80, 81, 82, 83, 84, 85}, Female: []float64{80, 80, 80, 81, 82, 82, 83}},
		},
	}
}
