// Package sleeper is the read-only client for the Sleeper fantasy football
// API. It fetches league, roster, matchup, draft and player data and
// converts the wire shapes into model types. Nothing here computes scores.
package sleeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/arnavgupta1/FF-Metrics/model"
	"golang.org/x/time/rate"
)

const SleeperURL = "https://api.sleeper.app"

// ErrNotFound marks a 404 from the API. Callers that can degrade (stats,
// projections) branch on it; everything else propagates it.
var ErrNotFound = errors.New("sleeper resource not found")

// Sleeper documents 1000 calls/minute as the throttle ceiling; stay well
// under it.
const (
	requestsPerSecond = 10
	retryDelay        = 2 * time.Second
)

type Client interface {
	GetLeague(ctx context.Context, leagueID string) (*model.League, error)
	GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error)
	GetUsers(ctx context.Context, leagueID string) ([]model.User, error)
	GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error)
	GetDrafts(ctx context.Context, leagueID string) ([]model.Draft, error)
	GetDraftPicks(ctx context.Context, draftID string) ([]model.DraftPick, error)
	LoadPlayers(ctx context.Context) ([]model.Player, error)
	GetStats(ctx context.Context, season string) (map[string]float64, error)
	GetProjections(ctx context.Context, season string, week int) (map[string]float64, error)
	GetState(ctx context.Context) (*NFLState, error)
}

// NFLState is the API's current-season pointer: which season and week the
// NFL is in right now.
type NFLState struct {
	Season string
	Week   int
}

type client struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
	sleep      func(time.Duration)
}

func New() (Client, error) {
	return newClient(SleeperURL), nil
}

// NewForTest returns a client pointed at a fake server, with the retry
// delay removed so 429 tests run instantly.
func NewForTest(url string) Client {
	c := newClient(url)
	c.sleep = func(time.Duration) {}
	return c
}

func newClient(url string) *client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		sleep:   time.Sleep,
	}
}

func (c *client) GetLeague(ctx context.Context, leagueID string) (*model.League, error) {
	var parsed leagueJSON
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/league/%s", leagueID), &parsed); err != nil {
		return nil, fmt.Errorf("error loading league %s: %w", leagueID, err)
	}
	return parsed.toLeague(), nil
}

func (c *client) GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error) {
	var parsed []rosterJSON
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/league/%s/rosters", leagueID), &parsed); err != nil {
		return nil, fmt.Errorf("error loading rosters for league %s: %w", leagueID, err)
	}

	rosters := make([]model.Roster, 0, len(parsed))
	for _, r := range parsed {
		rosters = append(rosters, *r.toRoster())
	}
	return rosters, nil
}

func (c *client) GetUsers(ctx context.Context, leagueID string) ([]model.User, error) {
	var parsed []userJSON
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/league/%s/users", leagueID), &parsed); err != nil {
		return nil, fmt.Errorf("error loading users for league %s: %w", leagueID, err)
	}

	users := make([]model.User, 0, len(parsed))
	for _, u := range parsed {
		users = append(users, model.User{ID: u.UserID, DisplayName: u.DisplayName})
	}
	return users, nil
}

// GetMatchups pairs the API's per-roster matchup entries by matchup id.
// Entries without a counterpart (byes, mid-write data) are dropped rather
// than surfaced as half-matchups.
func (c *client) GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error) {
	var parsed []matchupJSON
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/league/%s/matchups/%d", leagueID, week), &parsed); err != nil {
		return nil, fmt.Errorf("error loading matchups for league %s week %d: %w", leagueID, week, err)
	}

	byID := make(map[int32][]matchupJSON)
	for _, m := range parsed {
		byID[m.MatchupID] = append(byID[m.MatchupID], m)
	}

	ids := make([]int32, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	matchups := make([]model.Matchup, 0, len(ids))
	for _, id := range ids {
		pair := byID[id]
		if len(pair) != 2 {
			continue
		}
		matchups = append(matchups, model.Matchup{
			MatchupID: id,
			Week:      week,
			TeamA:     pair[0].toResult(),
			TeamB:     pair[1].toResult(),
		})
	}
	return matchups, nil
}

func (c *client) GetDrafts(ctx context.Context, leagueID string) ([]model.Draft, error) {
	var parsed []draftJSON
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/league/%s/drafts", leagueID), &parsed); err != nil {
		return nil, fmt.Errorf("error loading drafts for league %s: %w", leagueID, err)
	}

	// Most recent first, so callers can take the head.
	sort.Slice(parsed, func(i, j int) bool { return parsed[i].Created > parsed[j].Created })

	drafts := make([]model.Draft, 0, len(parsed))
	for _, d := range parsed {
		drafts = append(drafts, model.Draft{ID: d.DraftID, Season: d.Season})
	}
	return drafts, nil
}

func (c *client) GetDraftPicks(ctx context.Context, draftID string) ([]model.DraftPick, error) {
	var parsed []draftPickJSON
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/draft/%s/picks", draftID), &parsed); err != nil {
		return nil, fmt.Errorf("error loading picks for draft %s: %w", draftID, err)
	}

	picks := make([]model.DraftPick, 0, len(parsed))
	for _, p := range parsed {
		picks = append(picks, model.DraftPick{
			PickNo:   p.PickNo,
			Round:    p.Round,
			RosterID: strconv.Itoa(p.RosterID),
			PickedBy: p.PickedBy,
			PlayerID: p.PlayerID,
		})
	}
	sort.Slice(picks, func(i, j int) bool { return picks[i].PickNo < picks[j].PickNo })
	return picks, nil
}

// LoadPlayers fetches the full NFL player directory. The response is large
// (tens of thousands of entries); players at irrelevant positions and the
// API's "Player Invalid" placeholder are dropped.
func (c *client) LoadPlayers(ctx context.Context) ([]model.Player, error) {
	var parsed map[string]sleeperPlayer
	if err := c.getJSON(ctx, "/v1/players/nfl", &parsed); err != nil {
		return nil, fmt.Errorf("error loading players: %w", err)
	}

	players := make([]model.Player, 0, len(parsed))
	for _, p := range parsed {
		pos := model.ParsePosition(p.Position)
		if pos == model.POS_UNKNOWN || (p.FirstName == "Player" && p.LastName == "Invalid") {
			continue
		}
		players = append(players, *p.toPlayer())
	}
	return players, nil
}

// GetStats returns season fantasy points by player id. A missing season is
// not an error: analysis degrades to zero-valued point metrics.
func (c *client) GetStats(ctx context.Context, season string) (map[string]float64, error) {
	var parsed map[string]statLine
	err := c.getJSON(ctx, fmt.Sprintf("/v1/stats/nfl/regular/%s", season), &parsed)
	if errors.Is(err, ErrNotFound) {
		return map[string]float64{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading stats for season %s: %w", season, err)
	}
	return points(parsed), nil
}

// GetProjections returns one week's projected fantasy points by player id,
// degrading to empty like GetStats.
func (c *client) GetProjections(ctx context.Context, season string, week int) (map[string]float64, error) {
	var parsed map[string]statLine
	err := c.getJSON(ctx, fmt.Sprintf("/v1/projections/nfl/regular/%s/%d", season, week), &parsed)
	if errors.Is(err, ErrNotFound) {
		return map[string]float64{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading projections for season %s week %d: %w", season, week, err)
	}
	return points(parsed), nil
}

func (c *client) GetState(ctx context.Context) (*NFLState, error) {
	var parsed nflStateJSON
	if err := c.getJSON(ctx, "/v1/state/nfl", &parsed); err != nil {
		return nil, fmt.Errorf("error loading nfl state: %w", err)
	}
	return &NFLState{Season: parsed.Season, Week: parsed.Week}, nil
}

// getJSON performs a rate-limited GET and decodes the body. A single 429
// gets one fixed-delay retry; a second 429 is an error like any other
// unexpected status.
func (c *client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		resp.Body.Close()
		c.sleep(retryDelay)
		resp, err = c.get(ctx, path)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error parsing response from sleeper: %w", err)
	}
	return nil
}

func (c *client) get(ctx context.Context, path string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("error waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+path, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	return resp, nil
}
