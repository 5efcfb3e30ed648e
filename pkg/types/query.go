package types

// MatchPolicy selects how a player query that does not exactly match a facet
// candidate is treated. It is chosen once when the view engine is built.
type MatchPolicy uint8

const (
	// ExactOnly treats a non-matching player query as no filter at all.
	ExactOnly MatchPolicy = iota
	// ExactWithSubstringFallback filters by substring containment on the
	// derived title token when the query matches no candidate exactly.
	ExactWithSubstringFallback
)

// FilterQuery holds the three free-text facet queries. An empty string means
// the facet is unconstrained.
type FilterQuery struct {
	Team   string `json:"team" schema:"team"`
	Player string `json:"player" schema:"player"`
	Map    string `json:"map" schema:"map"`
}

func (q FilterQuery) IsEmpty() bool {
	return q.Team == "" && q.Player == "" && q.Map == ""
}
