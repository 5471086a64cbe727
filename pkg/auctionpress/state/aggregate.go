// Package state derives the per-tick auction progress flags.
package state

import "github.com/r21league/auctionpress/pkg/auctionpress/models"

// Aggregate folds the entrant set into the auction progress flags. It is a
// pure function: AnyResolved becomes true on the first entrant with a
// resolved price; AllResolved starts true and is forced false by the first
// entrant without one, never strengthened again. An empty entrant set
// therefore leaves AllResolved vacuously true (kept as-is pending product
// clarification). In listing mode both flags stay false and are unused.
func Aggregate(entrants []models.Entrant, auctionMode bool) models.AuctionState {
	if !auctionMode {
		return models.AuctionState{}
	}

	st := models.AuctionState{AllResolved: true}
	for _, e := range entrants {
		if e.Resolved() {
			st.AnyResolved = true
		} else {
			st.AllResolved = false
		}
	}
	return st
}

// Counts returns the totals the status banner displays.
func Counts(entrants []models.Entrant) (total, resolved, remaining int) {
	total = len(entrants)
	for _, e := range entrants {
		if e.Resolved() {
			resolved++
		}
	}
	return total, resolved, total - resolved
}
