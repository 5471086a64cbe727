package models

// AuctionState holds the per-tick derived auction progress flags. It is
// recomputed from the current entrant set on every tick and never persisted.
type AuctionState struct {
	// AnyResolved is true when at least one entrant has a resolved price.
	AnyResolved bool
	// AllResolved is true when every entrant seen during the scan had a
	// resolved price. Note: an empty entrant set leaves this vacuously true.
	AllResolved bool
}
