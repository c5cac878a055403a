package model

import (
	"fmt"
	"strings"
)

// Player is a single entry in the Sleeper player directory. It is read-only
// input to the matching and valuation layers and is never persisted.
type Player struct {
	ID        string
	FirstName string
	LastName  string
	Position  Position
	Team      string
	Active    bool
}

func (p *Player) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

// Take a full name, like "Deebo Samuel Sr." and return "Deebo Samuel".
func TrimNameSuffix(fullName string) string {
	suffixList := []string{
		"Jr.",
		"Sr.",
		"II",
		"IV",
	}

	for _, s := range suffixList {
		fullName = strings.TrimSuffix(fullName, s)
	}

	return strings.TrimSpace(fullName)
}
