package models

// RosterRow is one generic row from a per-team sheet, keyed by header name.
type RosterRow map[string]string

// Owner represents one team owner row from the Owner sheet, with the roster
// pulled from the sheet whose name matches the owner's team.
type Owner struct {
	// Name is the owner's personal name.
	Name string `json:"name"`
	// TeamName is the team identity; it is also the map key used by ingestion.
	TeamName string `json:"teamName"`
	// PhotoURL references the owner's photo, NoPhoto when blank in the sheet.
	PhotoURL string `json:"photoURL"`
	// BasePrice is the owner's listing price (optional, listing mode only).
	BasePrice string `json:"basePrice"`
	// Roster holds the team sheet's rows in sheet order; empty when no sheet
	// matches TeamName.
	Roster []RosterRow `json:"sheetData"`
}

// NoPhoto is the sentinel photo reference used when a sheet row leaves
// PhotoURL blank.
const NoPhoto = "Image_Not_Given.png"

// Display pairs team and owner name the way the catalogue labels them.
func (o Owner) Display() string {
	return o.TeamName + " - " + o.Name
}
