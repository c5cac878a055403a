package testutils

import (
	"strings"
)

// sheetEntry is one player row in the generated ranking sheet.
type sheetEntry struct {
	name    string
	teamBye string
	posRank string
	ecr     string
	tier    string
	adp     string
}

// The fixture rankings line up with the players served by the fake sleeper
// server, so parse-match-analyze tests resolve every roster and draft pick.
var (
	fixtureQBs = []sheetEntry{
		{"Josh Allen", "BUF (12)", "1", "18", "QB1", "3.03"},
		{"Lamar Jackson", "BAL (14)", "2", "22", "QB1", "3.07"},
		{"Jalen Hurts", "PHI (5)", "3", "25", "QB1", "4.01"},
		{"Joe Burrow", "CIN (12)", "4", "34", "QB2", "5.02"},
	}
	fixtureRBs = []sheetEntry{
		{"Christian McCaffrey", "SF (9)", "1", "1", "RB1", "1.01"},
		{"Bijan Robinson", "ATL (12)", "2", "3", "RB1", "1.03"},
		{"Breece Hall", "NYJ (12)", "3", "5", "RB1", "1.06"},
		{"Jahmyr Gibbs", "DET (5)", "4", "9", "RB1", "1.09"},
		{"Jonathan Taylor", "IND (14)", "5", "12", "RB2", "2.02"},
		{"Kenneth Walker", "SEA (10)", "6", "21", "RB2", "3.04"},
		{"Joe Mixon", "HOU (14)", "7", "28", "RB2", "4.03"},
		{"Alvin Kamara", "NO (12)", "8", "33", "RB3", "5.01"},
		{"Raheem Mostert", "MIA (6)", "9", "52", "RB4", "7.05"},
		{"Zach Charbonnet", "SEA (10)", "10", "88", "RB5", "11.02"},
	}
	fixtureWRs = []sheetEntry{
		{"CeeDee Lamb", "DAL (7)", "1", "2", "WR1", "1.02"},
		{"Justin Jefferson", "MIN (6)", "2", "4", "WR1", "1.05"},
		{"Amon-Ra St. Brown", "DET (5)", "3", "7", "WR1", "1.08"},
		{"Garrett Wilson", "NYJ (12)", "4", "15", "WR2", "2.05"},
		{"Chris Olave", "NO (12)", "5", "19", "WR2", "3.01"},
		{"DK Metcalf", "SEA (10)", "6", "26", "WR3", "4.02"},
		{"DJ Moore", "CHI (7)", "7", "29", "WR3", "4.05"},
		{"Courtland Sutton", "DEN (14)", "8", "47", "WR4", "6.08"},
		{"Keenan Allen", "CHI (7)", "9", "42", "WR4", "6.03"},
		{"Elijah Moore", "CLE (10)", "10", "96", "WR5", "12.04"},
	}
	fixtureTEs = []sheetEntry{
		{"Travis Kelce", "KC (6)", "1", "14", "TE1", "2.04"},
		{"George Kittle", "SF (9)", "2", "31", "TE1", "4.07"},
		{"Kyle Pitts", "ATL (12)", "3", "45", "TE2", "6.06"},
		{"Pat Freiermuth", "PIT (9)", "4", "92", "TE3", "11.06"},
	}
	fixtureDEFs = []sheetEntry{
		{"Baltimore Ravens", "BAL (14)", "1", "120", "1", "131.5"},
		{"Dallas Cowboys", "DAL (7)", "2", "124", "2", "135.2"},
		{"San Francisco 49ers", "SF (9)", "3", "129", "3", "122.8"},
		{"Philadelphia Eagles", "PHI (5)", "4", "133", "4", "110.0"},
	}
	fixtureKs = []sheetEntry{
		{"Harrison Butker", "KC (6)", "1", "126", "1", "141.0"},
		{"Cameron Dicker", "LAC (5)", "2", "131", "2", "144.9"},
		{"Evan McPherson", "CIN (12)", "3", "136", "3", "128.3"},
		{"Tyler Bass", "BUF (12)", "4", "139", "4", "132.5"},
	}
)

// RankingSheetCSV renders the fixture rankings as sheet text in the
// production layout: header at row 6, QB/RB/WR side by side from row 7,
// TE reusing the QB columns from row 41, and the compact DEF/K sections
// from row 74. For compact entries the adp field is served as projected
// points.
func RankingSheetCSV() string {
	const rows = 80
	const cols = 48

	grid := make([][]string, rows)
	for i := range grid {
		grid[i] = make([]string, cols)
	}

	writeStandard := func(row, base int, e sheetEntry) {
		values := []string{e.name, e.teamBye, e.posRank, e.ecr, e.tier, e.adp, "+2", "80.0", "82.0", "84.0", "55%", "90", ""}
		for i, v := range values {
			grid[row][base+3+i] = v
		}
	}
	writeCompact := func(row, base int, e sheetEntry) {
		values := []string{e.name, e.teamBye, e.posRank, e.ecr, e.adp, e.tier}
		for i, v := range values {
			grid[row][base+3+i] = v
		}
	}

	grid[6][3] = "Player"
	for i, e := range fixtureQBs {
		writeStandard(7+i, 0, e)
	}
	for i, e := range fixtureRBs {
		writeStandard(7+i, 16, e)
	}
	for i, e := range fixtureWRs {
		writeStandard(7+i, 32, e)
	}
	for i, e := range fixtureTEs {
		writeStandard(41+i, 0, e)
	}
	for i, e := range fixtureDEFs {
		writeCompact(74+i, 0, e)
	}
	for i, e := range fixtureKs {
		writeCompact(74+i, 7, e)
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(strings.Join(row, ","))
		sb.WriteByte('\n')
	}
	return sb.String()
}
