package render

import (
	"sort"
	"strings"

	"github.com/r21league/auctionpress/pkg/auctionpress/models"
)

// The snapshot is the structured copy of every record embedded in the
// document for the client-side lookup logic. All keys and values pass through
// the string-literal escaper; output ordering is deterministic so identical
// inputs always produce byte-identical documents.

// entrantSnapshot renders the entrants as a JS object literal keyed by name.
func entrantSnapshot(entrants []models.Entrant) string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, e := range entrants {
		b.WriteString(`      "` + EscapeJS(e.Name) + `": { `)
		writeFields(&b, [][2]string{
			{"name", e.Name},
			{"towerFlat", e.TowerFlat},
			{"mobile", e.Mobile},
			{"unavailability", e.Unavailability},
			{"role", e.Role},
			{"photo", e.PhotoURL},
			{"soldAt", e.FinalBid},
			{"toTeam", e.SoldToTeam},
			{"toOwner", e.TeamOwnerName},
			{"ownerMobile", e.TeamOwnerMobile},
			{"basePrice", e.BasePrice},
		})
		b.WriteString(" },\n")
	}
	b.WriteString("    }")
	return b.String()
}

// ownerSnapshot renders the owners as a JS object literal keyed by team
// identity, matching the selector's machine values.
func ownerSnapshot(owners map[string]models.Owner) string {
	teams := make([]string, 0, len(owners))
	for team := range owners {
		teams = append(teams, team)
	}
	sort.Slice(teams, func(i, j int) bool {
		return strings.ToLower(teams[i]) < strings.ToLower(teams[j])
	})

	var b strings.Builder
	b.WriteString("{\n")
	for _, team := range teams {
		o := owners[team]
		b.WriteString(`      "` + EscapeJS(team) + `": { `)
		writeFields(&b, [][2]string{
			{"name", o.Name},
			{"teamName", o.TeamName},
			{"photoURL", o.PhotoURL},
			{"basePrice", o.BasePrice},
		})
		b.WriteString(`, "sheetData": ` + rosterJSON(o.Roster))
		b.WriteString(" },\n")
	}
	b.WriteString("    }")
	return b.String()
}

// rosterJSON renders the generic roster rows as a JSON array literal with
// keys in sorted order.
func rosterJSON(roster []models.RosterRow) string {
	if len(roster) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[")
	for i, row := range roster {
		if i > 0 {
			b.WriteString(",")
		}
		keys := make([]string, 0, len(row))
		for k := range row {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString("{")
		for j, k := range keys {
			if j > 0 {
				b.WriteString(",")
			}
			b.WriteString(`"` + EscapeJS(k) + `":"` + EscapeJS(row[k]) + `"`)
		}
		b.WriteString("}")
	}
	b.WriteString("]")
	return b.String()
}

func writeFields(b *strings.Builder, fields [][2]string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(`"` + f[0] + `": "` + EscapeJS(f[1]) + `"`)
	}
}
