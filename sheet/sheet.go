// Package sheet parses the multi-section ranking spreadsheet export into
// RankingRecords. The sheet is an ad hoc tabular format: different positions
// occupy different fixed column ranges within the same rows, and different
// row ranges hold different position groups entirely. The layout is
// configuration, not inferred.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/arnavgupta1/FF-Metrics/model"
)

// ErrNoHeader reports total structural absence: the sheet has no row at the
// configured header offset. Not retryable.
var ErrNoHeader = errors.New("sheet is missing its header row")

// headerToken is the placeholder name used by repeated header rows embedded
// inside the data region. Rows carrying it are never emitted as records.
const headerToken = "Player"

// Block is one position section: a row range and the column the section
// starts at. Compact blocks use the kicker/defense sub-layout, which has no
// ADP, value-over-ADP, or playoff-share columns and substitutes a projected
// points column for the standard value column.
type Block struct {
	Position model.Position
	FirstRow int // inclusive
	LastRow  int // inclusive; -1 means through the final row of the sheet
	Column   int
	Compact  bool
}

type Layout struct {
	HeaderRow     int
	TeamsPerRound int
	Blocks        []Block
}

// DefaultLayout describes the production sheet: QB/RB/WR side by side in
// rows 7-73, tight ends reusing the QB columns in rows 41-73, and the
// compact defense/kicker sections from row 74 down. Ten teams per round.
func DefaultLayout() Layout {
	return Layout{
		HeaderRow:     6,
		TeamsPerRound: 10,
		Blocks: []Block{
			{Position: model.POS_QB, FirstRow: 7, LastRow: 73, Column: 0},
			{Position: model.POS_RB, FirstRow: 7, LastRow: 73, Column: 16},
			{Position: model.POS_WR, FirstRow: 7, LastRow: 73, Column: 32},
			{Position: model.POS_TE, FirstRow: 41, LastRow: 73, Column: 0},
			{Position: model.POS_DEF, FirstRow: 74, LastRow: -1, Column: 0, Compact: true},
			{Position: model.POS_K, FirstRow: 74, LastRow: -1, Column: 7, Compact: true},
		},
	}
}

// Field offsets within a standard block.
const (
	colName         = 3
	colTeamBye      = 4
	colPositionRank = 5
	colECR          = 6
	colTier         = 7
	colADP          = 8
	colValueOverADP = 9
	colValF         = 10
	colVal          = 11
	colValC         = 12
	colPlayoffShare = 13
	colDynasty      = 14
	colDrafted      = 15
)

// Field offsets within a compact (kicker/defense) block. Name through ECR
// line up with the standard block; projected points and tier do not.
const (
	colCompactPoints = 7
	colCompactTier   = 8
)

// Parse converts raw sheet text into ranking records in row-major scan
// order. Duplicates arising from overlapping row ranges are NOT removed
// here; run match.Dedupe before feeding records to the matcher. Individual
// malformed fields degrade to zero values and never abort the parse.
func Parse(text string, layout Layout) ([]model.RankingRecord, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1 // equal-width rows are not guaranteed

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading sheet text: %w", err)
	}

	if layout.HeaderRow >= len(rows) {
		return nil, fmt.Errorf("%w: wanted row %d, sheet has %d rows", ErrNoHeader, layout.HeaderRow, len(rows))
	}

	records := make([]model.RankingRecord, 0, 256)
	for rowIndex := 0; rowIndex < len(rows); rowIndex++ {
		for _, b := range layout.Blocks {
			if !b.covers(rowIndex, len(rows)) {
				continue
			}
			if rec, ok := extract(rows[rowIndex], b, layout.TeamsPerRound); ok {
				records = append(records, rec)
			}
		}
	}

	return records, nil
}

func (b *Block) covers(row, totalRows int) bool {
	last := b.LastRow
	if last < 0 || last >= totalRows {
		last = totalRows - 1
	}
	return row >= b.FirstRow && row <= last
}

func extract(row []string, b Block, teamsPerRound int) (model.RankingRecord, bool) {
	name := field(row, b.Column+colName)
	if name == "" || name == headerToken {
		return model.RankingRecord{}, false
	}

	rec := model.RankingRecord{
		Name:         name,
		TeamBye:      field(row, b.Column+colTeamBye),
		PositionRank: int(cleanNumber(field(row, b.Column+colPositionRank))),
		ECR:          int(cleanNumber(field(row, b.Column+colECR))),
		Position:     b.Position,
	}

	if b.Compact {
		// Kickers and defenses have no ADP, value-over-ADP, playoff-share,
		// or dynasty data; projected points stand in for the value column.
		rec.Val = cleanNumber(field(row, b.Column+colCompactPoints))
		rec.Tier = field(row, b.Column+colCompactTier)
		rec.ValueOverADP = "N/A"
		rec.PlayoffShare = "N/A"
		return rec, true
	}

	rec.Tier = field(row, b.Column+colTier)
	rec.ADP = parseADP(field(row, b.Column+colADP), teamsPerRound)
	rec.ValueOverADP = field(row, b.Column+colValueOverADP)
	rec.ValF = cleanNumber(field(row, b.Column+colValF))
	rec.Val = cleanNumber(field(row, b.Column+colVal))
	rec.ValC = cleanNumber(field(row, b.Column+colValC))
	rec.PlayoffShare = field(row, b.Column+colPlayoffShare)
	rec.Dynasty = cleanNumber(field(row, b.Column+colDynasty))
	rec.Drafted = field(row, b.Column+colDrafted)

	return rec, true
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

var numberJunk = regexp.MustCompile(`[^0-9.\-]`)

// cleanNumber strips everything but digits, '.' and '-', then parses a
// float. Anything unparseable becomes 0, which callers must read as
// "unknown", never as a true zero rank or ADP.
func cleanNumber(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(numberJunk.ReplaceAllString(s, ""), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseADP flattens a "round.pick" ADP like "3.03" into an overall pick
// number: (round-1)*teamsPerRound + pick. Values without the round.pick
// shape fall back to plain numeric cleaning.
func parseADP(s string, teamsPerRound int) float64 {
	if s == "" {
		return 0
	}

	if strings.Contains(s, ".") {
		parts := strings.Split(s, ".")
		if len(parts) == 2 {
			round, errR := strconv.Atoi(parts[0])
			pick, errP := strconv.Atoi(parts[1])
			if errR == nil && errP == nil {
				return float64((round-1)*teamsPerRound + pick)
			}
		}
	}

	return cleanNumber(s)
}
