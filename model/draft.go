package model

// PickValuation combines a draft pick (or a current roster slot, when
// PickNumber is 0) with the ranking data matched to the player. When no
// ranking record matched, Matched is false and every ranking-derived field
// holds its documented fallback: 0 for numbers, "N/A" for labels.
type PickValuation struct {
	PickNumber   int
	PlayerName   string
	Position     Position
	TeamName     string
	RosterID     string
	ExpertRank   int
	PositionRank int
	ADP          float64
	Reach        float64
	ValueOverADP string
	Tier         string
	Val          float64
	PlayoffShare string
	IsValuePick  bool
	IsReach      bool
	Matched      bool
}

// PositionDraftSummary aggregates the picks at one position. AverageReach
// counts only valid picks: matched, ADP > 0, and not a kicker or defense.
type PositionDraftSummary struct {
	Position     Position
	TotalPicks   int
	AverageReach float64
	ValuePicks   int
	ReachPicks   int
	BestValue    *PickValuation
	WorstReach   *PickValuation
	Picks        []PickValuation
}

type DraftAnalysis struct {
	LeagueID   int32
	DraftID    string
	LeagueName string
	TotalPicks int
	Positions  []PositionDraftSummary
	Picks      []PickValuation
}
