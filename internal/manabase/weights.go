package manabase

// Weights are the objective's four signed coefficients (spec §4.2 step 9,
// §9: "the recognized weights are exactly these four"). Positive weights
// reward more of that quantity; negative weights penalize it.
type Weights struct {
	ManaSpend           int
	TotalLands          int
	Pain                int
	TotalColoredSources int
}

// DefaultWeights matches the published default: favor spending mana on
// curve, penalize running more lands and more painful sources than
// necessary, and mildly reward extra colored sources as a buffer against
// variance.
var DefaultWeights = Weights{
	ManaSpend:           6,
	TotalLands:          -10,
	Pain:                -2,
	TotalColoredSources: 1,
}

// NormalizedManaSpend scales mana_spend into [0, 1] against the deck's
// max_mana_spend, for callers that want to compare manabases across decks
// of different sizes/curves rather than read the raw integer.
func NormalizedManaSpend(manaSpend, maxManaSpend int) float64 {
	if maxManaSpend == 0 {
		return 0
	}
	return float64(manaSpend) / float64(maxManaSpend)
}
