package model

import (
	"time"
)

// Sheet is an uploaded ranking spreadsheet export. Only the raw text is
// stored; parsing happens fresh on every analysis request.
type Sheet struct {
	ID       int32
	Name     string
	Uploaded time.Time
	Raw      string
}

// RankingRecord is one row of expert-ranking data for one player at one
// position, as parsed out of a sheet. Numeric fields use 0 for "unknown",
// never a true zero value; string fields use "N/A" where the sheet has no
// data for the position (kickers and defenses have no ADP or playoff share).
type RankingRecord struct {
	Name         string
	TeamBye      string
	PositionRank int
	ECR          int
	Tier         string
	ADP          float64
	ValueOverADP string
	ValF         float64
	Val          float64
	ValC         float64
	PlayoffShare string
	Dynasty      float64
	Drafted      string
	Position     Position
}
