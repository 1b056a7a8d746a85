package stability

// DistinctChambers flattens the chamber column of every schedule row across
// records, then any extra row sets, keeping first-seen order and dropping
// empty values and exact repeats. It holds no state; callers recompute it whenever the
// records change.
func DistinctChambers(records []BatchRecord, extra ...[]ScheduleEntry) []string {
	seen := make(map[string]struct{})
	chambers := make([]string, 0)

	add := func(rows []ScheduleEntry) {
		for _, row := range rows {
			chamber := row.Chamber
			if chamber == "" {
				continue
			}
			if _, ok := seen[chamber]; ok {
				continue
			}
			seen[chamber] = struct{}{}
			chambers = append(chambers, chamber)
		}
	}

	for _, record := range records {
		add(record.Schedule)
	}
	for _, rows := range extra {
		add(rows)
	}
	return chambers
}
