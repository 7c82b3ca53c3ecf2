// Package leaderboard persists finished-run records. The board is
// append-only; mid-game state never touches it.
package leaderboard

import (
	"context"
	"sort"
)

// Category classifies how a run ended.
type Category string

const (
	CategoryGood Category = "GOOD" // reached the wealth goal
	CategoryBad  Category = "BAD"  // evicted
	CategorySad  Category = "SAD"  // terminal burnout
)

// Categories lists all ending categories in display order.
var Categories = []Category{CategoryGood, CategoryBad, CategorySad}

// TopN is how many entries each category shows.
const TopN = 3

// Entry is one finished run.
type Entry struct {
	Name     string   `json:"name"`
	Day      int      `json:"day"`
	Category Category `json:"category"`
}

// Repository is the externally-owned persisted store. Append happens
// only on an explicit player save.
type Repository interface {
	Append(ctx context.Context, e Entry) error
	// Top returns at most limit entries of one category: winners
	// ranked by fewest days survived, losers by most.
	Top(ctx context.Context, cat Category, limit int) ([]Entry, error)
}

// rank orders entries per the category's ranking rule and caps them.
func rank(cat Category, entries []Entry, limit int) []Entry {
	sort.SliceStable(entries, func(a, b int) bool {
		if cat == CategoryGood {
			return entries[a].Day < entries[b].Day
		}
		return entries[a].Day > entries[b].Day
	})
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
