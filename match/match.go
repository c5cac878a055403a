// Package match links player names from external sources (draft picks,
// rosters) to ranking records parsed from a sheet. Name data is dirty on
// both sides, so matching runs in tiers: exact normalized match first, then
// bounded fuzzy match, then a last-name fallback. Position must agree at
// every tier.
package match

import (
	"sort"
	"strings"
	"unicode"

	"github.com/arnavgupta1/FF-Metrics/model"
)

// SimilarityThreshold is the floor for a fuzzy match. Similarity is
// (maxLen - levenshtein) / maxLen, so 0.8 tolerates roughly one edit per
// five characters.
const SimilarityThreshold = 0.8

// Normalize lowercases a name, strips everything that is not a letter,
// digit or space, and collapses runs of whitespace. Two names match exactly
// iff their normalized forms are equal.
func Normalize(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))

	lastSpace := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				sb.WriteByte(' ')
				lastSpace = true
			}
		}
	}

	return strings.TrimRight(sb.String(), " ")
}

// Levenshtein returns the edit distance between two strings, counting
// insertions, deletions and substitutions at unit cost.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// Similarity scores two already-normalized names on [0, 1]. Identical names
// score 1; names with nothing in common approach 0.
func Similarity(a, b string) float64 {
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1
	}
	return float64(maxLen-Levenshtein(a, b)) / float64(maxLen)
}

// Index is a position-partitioned view of ranking records built once per
// match run. Records sharing a (normalized name, position) key collapse to
// the first occurrence.
type Index struct {
	byPosition map[model.Position][]entry
}

type entry struct {
	normalized string
	trimmed    string
	lastName   string
	record     model.RankingRecord
}

// NewIndex builds an index over records. Dedupe semantics apply: within a
// position, only the first record for a normalized name is kept.
func NewIndex(records []model.RankingRecord) *Index {
	idx := &Index{byPosition: make(map[model.Position][]entry)}
	seen := make(map[string]bool, len(records))

	for _, rec := range records {
		normalized := Normalize(rec.Name)
		if normalized == "" {
			continue
		}
		key := string(rec.Position) + "|" + normalized
		if seen[key] {
			continue
		}
		seen[key] = true

		idx.byPosition[rec.Position] = append(idx.byPosition[rec.Position], entry{
			normalized: normalized,
			trimmed:    Normalize(model.TrimNameSuffix(rec.Name)),
			lastName:   lastToken(normalized),
			record:     rec,
		})
	}

	return idx
}

// Dedupe collapses records that share a normalized name and position,
// keeping the first occurrence in input order.
func Dedupe(records []model.RankingRecord) []model.RankingRecord {
	seen := make(map[string]bool, len(records))
	out := make([]model.RankingRecord, 0, len(records))
	for _, rec := range records {
		key := string(rec.Position) + "|" + Normalize(rec.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, rec)
	}
	return out
}

// Find resolves a player name and position to a ranking record. Tiers run
// in order and the first tier that produces any candidate wins:
//
//  1. exact normalized name
//  2. exact after stripping generational suffixes on both sides; Sleeper
//     names carry "Jr."/"Sr." where sheet rows usually do not
//  3. fuzzy name above SimilarityThreshold, best similarity first, ties
//     broken by smaller edit distance, then by index order
//  4. shared last name
//
// The boolean result is false when no tier matched.
func (idx *Index) Find(name string, position model.Position) (model.RankingRecord, bool) {
	entries := idx.byPosition[position]
	if len(entries) == 0 {
		return model.RankingRecord{}, false
	}

	normalized := Normalize(name)
	if normalized == "" {
		return model.RankingRecord{}, false
	}

	for _, e := range entries {
		if e.normalized == normalized {
			return e.record, true
		}
	}

	trimmed := Normalize(model.TrimNameSuffix(name))
	for _, e := range entries {
		if e.trimmed == trimmed {
			return e.record, true
		}
	}

	if rec, ok := fuzzyFind(entries, normalized); ok {
		return rec, true
	}

	last := lastToken(normalized)
	for _, e := range entries {
		if e.lastName == last {
			return e.record, true
		}
	}

	return model.RankingRecord{}, false
}

type fuzzyCandidate struct {
	similarity float64
	distance   int
	order      int
	record     model.RankingRecord
}

func fuzzyFind(entries []entry, normalized string) (model.RankingRecord, bool) {
	candidates := make([]fuzzyCandidate, 0, 4)
	for i, e := range entries {
		d := Levenshtein(normalized, e.normalized)
		maxLen := len([]rune(normalized))
		if l := len([]rune(e.normalized)); l > maxLen {
			maxLen = l
		}
		if maxLen == 0 {
			continue
		}
		s := float64(maxLen-d) / float64(maxLen)
		if s > SimilarityThreshold {
			candidates = append(candidates, fuzzyCandidate{similarity: s, distance: d, order: i, record: e.record})
		}
	}

	if len(candidates) == 0 {
		return model.RankingRecord{}, false
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].similarity != candidates[j].similarity {
			return candidates[i].similarity > candidates[j].similarity
		}
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].order < candidates[j].order
	})

	return candidates[0].record, true
}

func lastToken(normalized string) string {
	if i := strings.LastIndexByte(normalized, ' '); i >= 0 {
		return normalized[i+1:]
	}
	return normalized
}
