package domain

// Summary is the fleet-wide aggregate over a set of travel logs.
// It is derived, never persisted, and must be recomputed whenever the
// underlying collection changes.
type Summary struct {
	// OfficialTotal is the sum of OfficialKm across all logs.
	OfficialTotal float64 `json:"official_total"`
	// PrivateTotal is the sum of PrivateKm across all logs.
	PrivateTotal float64 `json:"private_total"`
	// PerUserTotal maps each known user's email to the sum of TotalKm over
	// that user's logs. Users with no logs are present with value 0.
	PerUserTotal map[string]float64 `json:"per_user_total"`
}

// Aggregate reduces a collection of travel logs and the known users into a
// Summary. It is a pure function of its inputs: iteration order cannot affect
// the result (sums are commutative) and empty inputs yield zero totals, not
// an error.
func Aggregate(logs []TravelLog, users []User) Summary {
	s := Summary{PerUserTotal: make(map[string]float64, len(users))}
	for _, u := range users {
		s.PerUserTotal[u.Email] = 0
	}
	for _, l := range logs {
		s.OfficialTotal += l.OfficialKm
		s.PrivateTotal += l.PrivateKm
		// Per-user distance is keyed by the known users only; a log whose
		// owner is not in users does not introduce a new key.
		if _, ok := s.PerUserTotal[l.UserEmail]; ok {
			s.PerUserTotal[l.UserEmail] += l.TotalKm
		}
	}
	return s
}
