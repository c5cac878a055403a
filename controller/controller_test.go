package controller

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/arnavgupta1/FF-Metrics/db"
	"github.com/arnavgupta1/FF-Metrics/model"
	"github.com/arnavgupta1/FF-Metrics/sleeper"
	"github.com/arnavgupta1/FF-Metrics/testutils"
)

// A global testDB instance to use for all of the tests instead of setting up a new one each time.
var testDB *testutils.TestDB

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if testDB != nil {
				testDB.Shutdown()
			}
			fmt.Printf("panic - %v\n", r)
		}
	}()

	testDB = testutils.NewTestDB()
	defer testDB.Shutdown()
	code := m.Run()
	os.Exit(code)
}

// newTestController wires a controller against the shared test db and a
// fresh fake sleeper server.
func newTestController(t *testing.T) (C, *testutils.FakeSleeperServer) {
	t.Helper()

	fakeSleeper := testutils.NewFakeSleeperServer()
	t.Cleanup(fakeSleeper.Close)

	c, err := New(testDB.Clock, sleeper.NewForTest(fakeSleeper.URL()), testDB.DB)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}
	return c, fakeSleeper
}

func addTestSheet(t *testing.T, c C) *model.Sheet {
	t.Helper()

	s, err := c.AddSheet(context.Background(), "test rankings", strings.NewReader(testutils.RankingSheetCSV()))
	if err != nil {
		t.Fatalf("error adding sheet: %v", err)
	}
	return s
}

func addTestLeague(t *testing.T, c C) *model.League {
	t.Helper()

	l, err := c.AddLeague(context.Background(), testutils.SleeperLeagueID)
	if err != nil {
		t.Fatalf("error adding league: %v", err)
	}
	return l
}

func TestAddSheetAndParse(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	s := addTestSheet(t, c)

	records, err := c.ParseSheet(ctx, s.ID)
	if err != nil {
		t.Fatalf("error parsing sheet: %v", err)
	}
	// 4 QB + 10 RB + 10 WR + 4 TE + 4 DEF + 4 K
	if len(records) != 36 {
		t.Fatalf("expected 36 records, got %d", len(records))
	}

	counts := map[model.Position]int{}
	for _, rec := range records {
		counts[rec.Position]++
	}
	if counts[model.POS_RB] != 10 || counts[model.POS_DEF] != 4 {
		t.Errorf("unexpected position counts: %v", counts)
	}
}

func TestAddSheetRejectsBrokenText(t *testing.T) {
	c, _ := newTestController(t)

	_, err := c.AddSheet(context.Background(), "broken", strings.NewReader("only,one,row\n"))
	if err == nil {
		t.Fatal("expected a validation error")
	}

	// Nothing should have been stored.
	sheets, err := c.ListSheets(context.Background())
	if err != nil {
		t.Fatalf("error listing sheets: %v", err)
	}
	for _, s := range sheets {
		if s.Name == "broken" {
			t.Error("broken sheet was stored")
		}
	}
}

func TestDeleteSheet(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	s := addTestSheet(t, c)
	if err := c.DeleteSheet(ctx, s.ID); err != nil {
		t.Fatalf("error deleting sheet: %v", err)
	}
	if _, err := c.GetSheet(ctx, s.ID); !errors.Is(err, db.ErrSheetNotFound) {
		t.Errorf("expected ErrSheetNotFound, got %v", err)
	}
}

func TestAddLeague(t *testing.T) {
	c, _ := newTestController(t)

	l := addTestLeague(t, c)
	if l.ID == 0 {
		t.Fatal("expected an assigned league id")
	}
	if l.Name != "Test League 2024" || l.Year != "2024" {
		t.Errorf("unexpected league: %+v", l)
	}
	if l.Status != model.StatusInSeason || l.TotalRosters != 4 {
		t.Errorf("unexpected league metadata: %+v", l)
	}
}

func TestAddLeagueUnknownID(t *testing.T) {
	c, _ := newTestController(t)

	if _, err := c.AddLeague(context.Background(), "999"); err == nil {
		t.Fatal("expected an error for an unknown league id")
	}
}

func TestRefreshLeague(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	l := addTestLeague(t, c)

	refreshed, err := c.RefreshLeague(ctx, l.ID)
	if err != nil {
		t.Fatalf("error refreshing league: %v", err)
	}
	if refreshed.ID != l.ID || refreshed.Name != "Test League 2024" {
		t.Errorf("unexpected refreshed league: %+v", refreshed)
	}
}
