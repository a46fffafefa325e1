package responses

// BulkReport is the per-item outcome of a bulk mutation. Partial failure is
// never collapsed into a single error: successfully processed items stay
// mutated and the failures are listed with their reasons.
type BulkReport struct {
	Succeeded []string      `json:"succeeded"`
	Failed    []BulkFailure `json:"failed"`
}

type BulkFailure struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}
