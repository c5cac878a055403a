package model

// PositionTierAggregate describes one team's quality at one position: the
// pooled players (draft picks plus current roster, de-duplicated by name and
// position), a weighted-average rank value, and the single best player.
// HasData is false when no player in the pool carried a usable rank; such
// positions are excluded from the overall team score rather than being
// defaulted to a worst-tier constant.
type PositionTierAggregate struct {
	Position     Position
	Players      []PickValuation
	Average      float64
	HasData      bool
	BestPlayer   *PickValuation
	TotalPlayers int
}

type TeamValuation struct {
	TeamName     string
	RosterID     string
	OwnerID      string
	Positions    map[Position]PositionTierAggregate
	OverallScore float64
}

// TeamMetrics holds one team's season metrics. PowerRank orders teams by the
// composite power score; SleeperRank is the league's native standings order
// (wins, then points). The two are independent and both are kept.
type TeamMetrics struct {
	RosterID            string
	Owner               string
	Wins                int
	Losses              int
	Ties                int
	SleeperRank         int
	PowerRank           int
	PowerScore          float64
	PointsFor           float64
	PointsAgainst       float64
	SelfInflictedLosses int
	PotentialWins       int
}

// PlayerValue is a rostered player with points-based value deltas. Rank is
// the player's points rank within their position group, 1 = best.
type PlayerValue struct {
	PlayerID string
	Name     string
	Owner    string
	Position Position
	Points   float64
	Rank     int
	VORP     float64
	VORS     float64
	VOBP     float64
}
