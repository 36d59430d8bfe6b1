package domain

// MatchQuery is the receiver side of a matching call. It is built per
// request and never persisted.
type MatchQuery struct {
	ItemName   string        `json:"itemName"`
	Category   string        `json:"category,omitempty"`
	Gender     string        `json:"gender,omitempty"`
	Profession string        `json:"profession,omitempty"`
	Age        int           `json:"age,omitempty"`
	Location   QueryLocation `json:"location"`
}

// QueryLocation carries the query point as lat/lon, the opposite field
// order from the stored (longitude, latitude) pair on Item. Conversion to
// a single canonical form happens inside the match pipeline.
type QueryLocation struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// ScoreBreakdown exposes the three blended sub-scores plus the raw
// great-circle distance used by the rule tiers.
type ScoreBreakdown struct {
	RuleScore float64 `json:"ruleScore"`
	NameScore float64 `json:"nameScore"`
	KnnScore  float64 `json:"knnScore"`
	DistKm    float64 `json:"distKm"`
}

type ScoredCandidate struct {
	Donor         Item           `json:"donor"`
	CombinedScore float64        `json:"combinedScore"`
	Breakdown     ScoreBreakdown `json:"breakdown"`
}

type MatchResult struct {
	Query           MatchQuery        `json:"query"`
	TotalCandidates int               `json:"totalCandidates"`
	Results         []ScoredCandidate `json:"results"`
}
