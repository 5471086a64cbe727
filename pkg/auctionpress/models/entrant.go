// Package models defines data structures for the auction catalogue pipeline.
package models

// Entrant represents one candidate row from the primary sheet.
// All fields hold the trimmed display text of the source cell; a field whose
// header is absent from the sheet is the empty string.
type Entrant struct {
	// Name is the entrant's display name, unique within a run
	// by case-insensitive comparison.
	Name string `json:"name"`
	// TowerFlat is the entrant's residence reference.
	TowerFlat string `json:"towerFlat"`
	// Mobile is the entrant's contact number.
	Mobile string `json:"mobile"`
	// Unavailability is a free-form availability note.
	Unavailability string `json:"unavailability"`
	// PhotoURL references the entrant's photo (optional).
	PhotoURL string `json:"photo"`
	// Role is an optional role tag.
	Role string `json:"role"`
	// FinalBid is the resolved auction price; empty until the entrant is sold.
	FinalBid string `json:"soldAt"`
	// SoldToTeam is the destination team once sold.
	SoldToTeam string `json:"toTeam"`
	// TeamOwnerName is the destination team's owner.
	TeamOwnerName string `json:"toOwner"`
	// TeamOwnerMobile is the destination owner's contact.
	TeamOwnerMobile string `json:"ownerMobile"`
	// BidAmount is the entrant's own bid figure (optional).
	BidAmount string `json:"bidAmount"`
	// BasePrice is the pre-auction listing price; populated only in listing mode.
	BasePrice string `json:"basePrice"`
}

// Resolved reports whether the entrant has a non-empty resolved price.
func (e Entrant) Resolved() bool {
	return e.FinalBid != ""
}
