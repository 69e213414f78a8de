package services

// AutoSum adds up the numeric totals of all rows in a table. Rows whose
// total does not parse contribute zero. The result does not depend on row
// order and is always computed fresh from current row state.
func AutoSum(t *LineItemTable) float64 {
	if t == nil {
		return 0
	}
	var sum float64
	for _, r := range t.rows {
		sum += Numeric(r.Total).Float()
	}
	return sum
}

// EffectiveTotal resolves a table-level manual override against the auto
// sum: a non-empty override wins (parsed laxly, so garbage degrades to 0),
// otherwise the auto sum stands.
func EffectiveTotal(manualOverride string, autoSum float64) float64 {
	if manualOverride != "" {
		return Numeric(manualOverride).Float()
	}
	return autoSum
}
