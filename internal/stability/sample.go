package stability

// SampleRecord returns a fully populated batch record used to seed demo
// workspaces.
func SampleRecord() BatchRecord {
	return BatchRecord{
		PlanNo:              "2500001",
		Product:             "CAH - Metolazone 2.5 mg Tablets",
		ProtocolNo:          "SSP/EB/CAH-CAK-CAM/001-00",
		BatchNo:             "CAH00222",
		MfgDate:             "Dec-2022",
		Market:              "EU/UK",
		RetestExpDate:       "Nov-2025",
		TypeOfBatch:         "Commercial Validation Batch",
		PackDetails:         "3X14's Duplex 250/90 White Opaque-Alu Blister",
		PurposeOfStudy:      "Exhibit Batch",
		Condition:           "30°C/75%RH",
		DateOfIncubation:    "29-Jun-25",
		DistributedQuantity: "29 Cartons",
		RemainingQty:        "15 Cartons",
		Schedule: []ScheduleEntry{
			{DueDate: "29-Jul-2025", Interval: "1 M", ChemicalAnalysis: "04 Cartons", MicroAnalysis: "0 NA"},
			{DueDate: "29-Aug-2025", Interval: "2 M", ChemicalAnalysis: "04 Cartons", MicroAnalysis: "0 NA"},
			{DueDate: "29-Sep-2025", Interval: "3 M", ChemicalAnalysis: "04 Cartons", MicroAnalysis: "0 NA"},
			{DueDate: "29-Dec-2025", Interval: "6 M", ChemicalAnalysis: "13 Cartons", MicroAnalysis: "04 Cartons"},
			{DueDate: "29-Dec-2025", Interval: "Extra Samples", ChemicalAnalysis: "06 Cartons", MicroAnalysis: "00 Cartons"},
		},
	}
}
