package testutils

import (
	"context"
	"log"

	"github.com/arnavgupta1/FF-Metrics/containers"
	"github.com/arnavgupta1/FF-Metrics/db"
	"github.com/itbasis/go-clock"
)

// TestDB wraps a postgres test container and an initialized db.DB, shared
// by a whole test package through TestMain.
type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}
