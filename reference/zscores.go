/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package reference

const (
	whoSource      = "de Onis M et al. Bull World Health Organ 2007;85:660"
	stavnsboSource = "Stavnsbo M et al. PLoS One 2017;12:e0186028"
)

// zHeight holds height-for-age LMS parameters (cm).
func zHeight() *Table {
	return &Table{
		Name:    TableZHeight,
		Source:  whoSource,
		Columns: []string{ColumnL, ColumnM, ColumnS},
		Rows: []Row{
			{Age: 2, Male: []float64{1, 87.1, 0.038}, Female: []float64{1, 85.7, 0.0388}},
			{Age: 3, Male: []float64{1, 96.1, 0.0385}, Female: []float64{1, 95.1, 0.0392}},
			{Age: 4, Male: []float64{1, 103.3, 0.039}, Female: []float64{1, 102.7, 0.0396}},
			{Age: 5, Male: []float64{1, 110.3, 0.0395}, Female: []float64{1, 109.4, 0.04}},
			{Age: 6, Male: []float64{1, 116, 0.04}, Female: []float64{1, 115.1, 0.0404}},
			{Age: 7, Male: []float64{1, 121.7, 0.0405}, Female: []float64{1, 120.8, 0.0408}},
			{Age: 8, Male: []float64{1, 127.3, 0.041}, Female: []float64{1, 126.6, 0.0412}},
			{Age: 9, Male: []float64{1, 132.6, 0.0415}, Female: []float64{1, 132.5, 0.0416}},
			{Age: 10, Male: []float64{1, 137.8, 0.042}, Female: []float64{1, 138.6, 0.042}},
			{Age: 11, Male: []float64{1, 143.1, 0.0425}, Female: []float64{1, 144.9, 0.0424}},
			{Age: 12, Male: []float64{1, 149.1, 0.043}, Female: []float64{1, 151.2, 0.0428}},
			{Age: 13, Male: []float64{1, 156, 0.0435}, Female: []float64{1, 156.4, 0.0432}},
			{Age: 14, Male: []float64{1, 163.2, 0.044}, Female: []float64{1, 159.8, 0.0436}},
			{Age: 15, Male: []float64{1, 169, 0.044}, Female: []float64{1, 161.7, 0.0436}},
			{Age: 16, Male: []float64{1, 172.9, 0.044}, Female: []float64{1, 162.5, 0.0436}},
			{Age: 17, Male: []float64{1, 175.2, 0.044}, Female: []float64{1, 162.9, 0.0436}},
			{Age: 18, Male: []float64{1, 176.1, 0.044}, Female: []float64{1, 163.1, 0.0436}},
		},
	}
}

// zWaist holds waist circumference LMS parameters (cm).
func zWaist() *Table {
	return &Table{
		Name:    TableZWaist,
		Source:  stavnsboSource,
		Columns: []string{ColumnL, ColumnM, ColumnS},
		Rows: []Row{
			{Age: 2, Male: []float64{-1.2, 47.8, 0.072}, Female: []float64{-1, 47.5, 0.074}},
			{Age: 3, Male: []float64{-1.2, 49.3875, 0.0766}, Female: []float64{-1, 49.0625, 0.0781}},
			{Age: 4, Male: []float64{-1.2, 50.975, 0.0812}, Female: []float64{-1, 50.625, 0.0822}},
			{Age: 5, Male: []float64{-1.2, 52.5625, 0.0858}, Female: []float64{-1, 52.1875, 0.0863}},
			{Age: 6, Male: []float64{-1.2, 54.15, 0.0904}, Female: []float64{-1, 53.75, 0.0904}},
			{Age: 7, Male: []float64{-1.2, 55.7375, 0.095}, Female: []float64{-1, 55.3125, 0.0945}},
			{Age: 8, Male: []float64{-1.2, 57.325, 0.0996}, Female: []float64{-1, 56.875, 0.0986}},
			{Age: 9, Male: []float64{-1.2, 58.9125, 0.1042}, Female: []float64{-1, 58.4375, 0.1027}},
			{Age: 10, Male: []float64{-1.2, 60.5, 0.1088}, Female: []float64{-1, 60, 0.1068}},
			{Age: 11, Male: []float64{-1.2, 62.8, 0.1134}, Female: []float64{-1, 61.575, 0.1109}},
			{Age: 12, Male: []float64{-1.2, 65.1, 0.118}, Female: []float64{-1, 63.15, 0.115}},
			{Age: 13, Male: []float64{-1.2, 67.4, 0.1158}, Female: []float64{-1, 64.725, 0.1138}},
			{Age: 14, Male: []float64{-1.2, 69.7, 0.1137}, Female: []float64{-1, 66.3, 0.1127}},
			{Age: 15, Male: []float64{-1.2, 72, 0.1115}, Female: []float64{-1, 67.875, 0.1115}},
			{Age: 16, Male: []float64{-1.2, 74.3, 0.1093}, Female: []float64{-1, 69.45, 0.1103}},
			{Age: 17, Male: []float64{-1.2, 76.6, 0.1072}, Female: []float64{-1, 71.025, 0.1092}},
			{Age: 18, Male: []float64{-1.2, 78.9, 0.105}, Female: []float64{-1, 72.6, 0.108}},
		},
	}
}

// zSBP holds systolic blood pressure parameters (mmHg); L = 1 so z = (x - M) / (M S).
func zSBP() *Table {
	return &Table{
		Name:    TableZSBP,
		Source:  stavnsboSource,
		Columns: []string{ColumnL, ColumnM, ColumnS},
		Rows: []Row{
			{Age: 2, Male: []float64{1, 94.5, 0.0952}, Female: []float64{1, 94, 0.0936}},
			{Age: 3, Male: []float64{1, 95.6875, 0.0941}, Female: []float64{1, 95.1875, 0.0924}},
			{Age: 4, Male: []float64{1, 96.875, 0.0929}, Female: []float64{1, 96.375, 0.0913}},
			{Age: 5, Male: []float64{1, 98.0625, 0.0918}, Female: []float64{1, 97.5625, 0.0902}},
			{Age: 6, Male: []float64{1, 99.25, 0.0907}, Female: []float64{1, 98.75, 0.0891}},
			{Age: 7, Male: []float64{1, 100.4375, 0.0896}, Female: []float64{1, 99.9375, 0.0881}},
			{Age: 8, Male: []float64{1, 101.625, 0.0886}, Female: []float64{1, 101.125, 0.087}},
			{Age: 9, Male: []float64{1, 102.8125, 0.0875}, Female: []float64{1, 102.3125, 0.086}},
			{Age: 10, Male: []float64{1, 104, 0.0865}, Female: []float64{1, 103.5, 0.085}},
			{Age: 11, Male: []float64{1, 105.875, 0.085}, Female: []float64{1, 104.375, 0.0843}},
			{Age: 12, Male: []float64{1, 107.75, 0.0835}, Female: []float64{1, 105.25, 0.0836}},
			{Age: 13, Male: []float64{1, 109.625, 0.0821}, Female: []float64{1, 106.125, 0.0829}},
			{Age: 14, Male: []float64{1, 111.5, 0.0807}, Female: []float64{1, 107, 0.0822}},
			{Age: 15, Male: []float64{1, 113.375, 0.0794}, Female: []float64{1, 107.875, 0.0816}},
			{Age: 16, Male: []float64{1, 115.25, 0.0781}, Female: []float64{1, 108.75, 0.0809}},
			{Age: 17, Male: []float64{1, 117.125, 0.0768}, Female: []float64{1, 109.625, 0.0803}},
			{Age: 18, Male: []float64{1, 119, 0.0756}, Female: []float64{1, 110.5, 0.0796}},
		},
	}
}

// zDBP holds diastolic blood pressure parameters (mmHg).
func zDBP() *Table {
	return &Table{
		Name:    TableZDBP,
		Source:  stavnsboSource,
		Columns: []string{ColumnL, ColumnM, ColumnS},
		Rows: []Row{
			{Age: 2, Male: []float64{1, 55, 0.1418}, Female: []float64{1, 56, 0.1357}},
			{Age: 3, Male: []float64{1, 55.75, 0.1399}, Female: []float64{1, 56.6875, 0.1341}},
			{Age: 4, Male: []float64{1, 56.5, 0.1381}, Female: []float64{1, 57.375, 0.1325}},
			{Age: 5, Male: []float64{1, 57.25, 0.1362}, Female: []float64{1, 58.0625, 0.1309}},
			{Age: 6, Male: []float64{1, 58, 0.1345}, Female: []float64{1, 58.75, 0.1294}},
			{Age: 7, Male: []float64{1, 58.75, 0.1328}, Female: []float64{1, 59.4375, 0.1279}},
			{Age: 8, Male: []float64{1, 59.5, 0.1311}, Female: []float64{1, 60.125, 0.1264}},
			{Age: 9, Male: []float64{1, 60.25, 0.1295}, Female: []float64{1, 60.8125, 0.125}},
			{Age: 10, Male: []float64{1, 61, 0.1279}, Female: []float64{1, 61.5, 0.1236}},
			{Age: 11, Male: []float64{1, 61.625, 0.1266}, Female: []float64{1, 62.125, 0.1223}},
			{Age: 12, Male: []float64{1, 62.25, 0.1253}, Female: []float64{1, 62.75, 0.1211}},
			{Age: 13, Male: []float64{1, 62.875, 0.1241}, Female: []float64{1, 63.375, 0.1199}},
			{Age: 14, Male: []float64{1, 63.5, 0.1228}, Female: []float64{1, 64, 0.1187}},
			{Age: 15, Male: []float64{1, 64.125, 0.1216}, Female: []float64{1, 64.625, 0.1176}},
			{Age: 16, Male: []float64{1, 64.75, 0.1205}, Female: []float64{1, 65.25, 0.1165}},
			{Age: 17, Male: []float64{1, 65.375, 0.1193}, Female: []float64{1, 65.875, 0.1154}},
			{Age: 18, Male: []float64{1, 66, 0.1182}, Female: []float64{1, 66.5, 0.1143}},
		},
	}
}

// zTG holds triglyceride parameters (mg/dL); L = 0 makes the transform log-normal.
func zTG() *Table {
	return &Table{
		Name:    TableZTG,
		Source:  stavnsboSource,
		Columns: []string{ColumnL, ColumnM, ColumnS},
		Rows: []Row{
			{Age: 2, Male: []float64{0, 55, 0.45}, Female: []float64{0, 58, 0.43}},
			{Age: 3, Male: []float64{0, 55.875, 0.45}, Female: []float64{0, 59.25, 0.43}},
			{Age: 4, Male: []float64{0, 56.75, 0.45}, Female: []float64{0, 60.5, 0.43}},
			{Age: 5, Male: []float64{0, 57.625, 0.45}, Female: []float64{0, 61.75, 0.43}},
			{Age: 6, Male: []float64{0, 58.5, 0.45}, Female: []float64{0, 63, 0.43}},
			{Age: 7, Male: []float64{0, 59.375, 0.45}, Female: []float64{0, 64.25, 0.43}},
			{Age: 8, Male: []float64{0, 60.25, 0.45}, Female: []float64{0, 65.5, 0.43}},
			{Age: 9, Male: []float64{0, 61.125, 0.45}, Female: []float64{0, 66.75, 0.43}},
			{Age: 10, Male: []float64{0, 62, 0.45}, Female: []float64{0, 68, 0.43}},
			{Age: 11, Male: []float64{0, 64, 0.45}, Female: []float64{0, 69, 0.43}},
			{Age: 12, Male: []float64{0, 66, 0.45}, Female: []float64{0, 70, 0.43}},
			{Age: 13, Male: []float64{0, 68, 0.45}, Female: []float64{0, 71, 0.43}},
			{Age: 14, Male: []float64{0, 70, 0.45}, Female: []float64{0, 72, 0.43}},
			{Age: 15, Male: []float64{0, 72, 0.45}, Female: []float64{0, 73, 0.43}},
			{Age: 16, Male: []float64{0, 74, 0.45}, Female: []float64{0, 74, 0.43}},
			{Age: 17, Male: []float64{0, 76, 0.45}, Female: []float64{0, 75, 0.43}},
			{Age: 18, Male: []float64{0, 78, 0.45}, Female: []float64{0, 76, 0.43}},
		},
	}
}

// zHDL holds HDL cholesterol parameters (mg/dL).
func zHDL() *Table {
	return &Table{
		Name:    TableZHDL,
		Source:  stavnsboSource,
		Columns: []string{ColumnL, ColumnM, ColumnS},
		Rows: []Row{
			{Age: 2, Male: []float64{1, 51, 0.2157}, Female: []float64{1, 50, 0.22}},
			{Age: 3, Male: []float64{1, 51.5, 0.2136}, Female: []float64{1, 50.375, 0.2184}},
			{Age: 4, Male: []float64{1, 52, 0.2115}, Female: []float64{1, 50.75, 0.2167}},
			{Age: 5, Male: []float64{1, 52.5, 0.2095}, Female: []float64{1, 51.125, 0.2152}},
			{Age: 6, Male: []float64{1, 53, 0.2075}, Female: []float64{1, 51.5, 0.2136}},
			{Age: 7, Male: []float64{1, 53.5, 0.2056}, Female: []float64{1, 51.875, 0.212}},
			{Age: 8, Male: []float64{1, 54, 0.2037}, Female: []float64{1, 52.25, 0.2105}},
			{Age: 9, Male: []float64{1, 54.5, 0.2018}, Female: []float64{1, 52.625, 0.209}},
			{Age: 10, Male: []float64{1, 55, 0.2}, Female: []float64{1, 53, 0.2075}},
			{Age: 11, Male: []float64{1, 53.75, 0.2047}, Female: []float64{1, 52.875, 0.208}},
			{Age: 12, Male: []float64{1, 52.5, 0.2095}, Female: []float64{1, 52.75, 0.2085}},
			{Age: 13, Male: []float64{1, 51.25, 0.2146}, Female: []float64{1, 52.625, 0.209}},
			{Age: 14, Male: []float64{1, 50, 0.22}, Female: []float64{1, 52.5, 0.2095}},
			{Age: 15, Male: []float64{1, 48.75, 0.2256}, Female: []float64{1, 52.375, 0.21}},
			{Age: 16, Male: []float64{1, 47.5, 0.2316}, Female: []float64{1, 52.25, 0.2105}},
			{Age: 17, Male: []float64{1, 46.25, 0.2378}, Female: []float64{1, 52.125, 0.211}},
			{Age: 18, Male: []float64{1, 45, 0.2444}, Female: []float64{1, 52, 0.2115}},
		},
	}
}

// zGlucose holds fasting glucose parameters (mg/dL).
func zGlucose() *Table {
	return &Table{
		Name:    TableZGlucose,
		Source:  stavnsboSource,
		Columns: []string{ColumnL, ColumnM, ColumnS},
		Rows: []Row{
			{Age: 2, Male: []float64{1, 82, 0.0854}, Female: []float64{1, 81, 0.0864}},
			{Age: 3, Male: []float64{1, 82.625, 0.0847}, Female: []float64{1, 81.5, 0.0859}},
			{Age: 4, Male: []float64{1, 83.25, 0.0841}, Female: []float64{1, 82, 0.0854}},
			{Age: 5, Male: []float64{1, 83.875, 0.0835}, Female: []float64{1, 82.5, 0.0848}},
			{Age: 6, Male: []float64{1, 84.5, 0.0828}, Female: []float64{1, 83, 0.0843}},
			{Age: 7, Male: []float64{1, 85.125, 0.0822}, Female: []float64{1, 83.5, 0.0838}},
			{Age: 8, Male: []float64{1, 85.75, 0.0816}, Female: []float64{1, 84, 0.0833}},
			{Age: 9, Male: []float64{1, 86.375, 0.081}, Female: []float64{1, 84.5, 0.0828}},
			{Age: 10, Male: []float64{1, 87, 0.0805}, Female: []float64{1, 85, 0.0824}},
			{Age: 11, Male: []float64{1, 87.25, 0.0802}, Female: []float64{1, 85.125, 0.0822}},
			{Age: 12, Male: []float64{1, 87.5, 0.08}, Female: []float64{1, 85.25, 0.0821}},
			{Age: 13, Male: []float64{1, 87.75, 0.0798}, Female: []float64{1, 85.375, 0.082}},
			{Age: 14, Male: []float64{1, 88, 0.0795}, Female: []float64{1, 85.5, 0.0819}},
			{Age: 15, Male: []float64{1, 88.25, 0.0793}, Female: []float64{1, 85.625, 0.0818}},
			{Age: 16, Male: []float64{1, 88.5, 0.0791}, Female: []float64{1, 85.75, 0.0816}},
			{Age: 17, Male: []float64{1, 88.75, 0.0789}, Female: []float64{1, 85.875, 0.0815}},
			{Age: 18, Male: []float64{1, 89, 0.0787}, Female: []float64{1, 86, 0.0814}},
		},
	}
}

// zHOMA holds HOMA-IR parameters; L = 0.
func zHOMA() *Table {
	return &Table{
		Name:    TableZHOMA,
		Source:  stavnsboSource,
		Columns: []string{ColumnL, ColumnM, ColumnS},
		Rows: []Row{
			{Age: 2, Male: []float64{0, 0.55, 0.62}, Female: []float64{0, 0.6, 0.6}},
			{Age: 3, Male: []float64{0, 0.6167, 0.62}, Female: []float64{0, 0.6833, 0.6}},
			{Age: 4, Male: []float64{0, 0.6833, 0.62}, Female: []float64{0, 0.7667, 0.6}},
			{Age: 5, Male: []float64{0, 0.75, 0.62}, Female: []float64{0, 0.85, 0.6}},
			{Age: 6, Male: []float64{0, 0.8167, 0.62}, Female: []float64{0, 0.9333, 0.6}},
			{Age: 7, Male: []float64{0, 0.8833, 0.62}, Female: []float64{0, 1.0167, 0.6}},
			{Age: 8, Male: []float64{0, 0.95, 0.62}, Female: []float64{0, 1.1, 0.6}},
			{Age: 9, Male: []float64{0, 1.2, 0.62}, Female: []float64{0, 1.45, 0.6}},
			{Age: 10, Male: []float64{0, 1.45, 0.62}, Female: []float64{0, 1.8, 0.6}},
			{Age: 11, Male: []float64{0, 1.7, 0.62}, Female: []float64{0, 2.15, 0.6}},
			{Age: 12, Male: []float64{0, 1.95, 0.62}, Female: []float64{0, 2.5, 0.6}},
			{Age: 13, Male: []float64{0, 2.2, 0.62}, Female: []float64{0, 2.4167, 0.6}},
			{Age: 14, Male: []float64{0, 2.12, 0.62}, Female: []float64{0, 2.3333, 0.6}},
			{Age: 15, Male: []float64{0, 2.04, 0.62}, Female: []float64{0, 2.25, 0.6}},
			{Age: 16, Male: []float64{0, 1.96, 0.62}, Female: []float64{0, 2.1667, 0.6}},
			{Age: 17, Male: []float64{0, 1.88, 0.62}, Female: []float64{0, 2.0833, 0.6}},
			{Age: 18, Male: []float64{0, 1.8, 0.62}, Female: []float64{0, 2, 0.6}},
		},
	}
}
