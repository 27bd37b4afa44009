package domain

// DecodedRow holds the physical values extracted from one successfully
// decoded frame, keyed by signal name. Different message types emit
// different signal sets, so the key set varies across rows; tabular output
// must union the columns and leave absent signals empty.
type DecodedRow struct {
	Timestamp float64
	Values    map[string]float64
}

// SignalNames returns the signal names present in the row, in unspecified
// order.
func (r DecodedRow) SignalNames() []string {
	names := make([]string, 0, len(r.Values))
	for name := range r.Values {
		names = append(names, name)
	}
	return names
}
