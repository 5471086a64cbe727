package ingest

import (
	"testing"

	"github.com/r21league/auctionpress/pkg/auctionpress/models"
)

func TestOwnersRosterFromMatchingTeamSheet(t *testing.T) {
	wb := openTestWorkbook(t, []string{"Players", "Owner", "Falcons"}, map[string][][]string{
		"Players": {{"Name"}, {"Alice"}},
		"Owner": {
			{"Name", "TeamName", "PhotoURL", "BasePrice"},
			{"Umesh", "Falcons", "umesh.png", "10,000"},
		},
		"Falcons": {
			{"Name", "Mobile", "BidAmount"},
			{"Alice", "9876543210", "1,000"},
			{"Bob", "9123456789", "2,000"},
		},
	})

	owners := Owners(wb)
	o, ok := owners["Falcons"]
	if !ok {
		t.Fatalf("expected owner keyed by team identity, got keys %v", ownerKeys(owners))
	}
	if o.Name != "Umesh" || o.PhotoURL != "umesh.png" {
		t.Errorf("unexpected owner: %+v", o)
	}
	if len(o.Roster) != 2 {
		t.Fatalf("expected 2 roster rows, got %d", len(o.Roster))
	}
	// Sheet order, not sorted.
	if o.Roster[0]["Name"] != "Alice" || o.Roster[1]["Name"] != "Bob" {
		t.Errorf("roster rows out of sheet order: %+v", o.Roster)
	}
	if o.Roster[1]["BidAmount"] != "2,000" {
		t.Errorf("roster cell mismatch: %+v", o.Roster[1])
	}
}

func TestOwnersMissingTeamSheetYieldsEmptyRoster(t *testing.T) {
	wb := openTestWorkbook(t, []string{"Players", "Owner"}, map[string][][]string{
		"Players": {{"Name"}, {"Alice"}},
		"Owner": {
			{"Name", "TeamName"},
			{"Umesh", "Falcons"},
		},
	})

	owners := Owners(wb)
	o, ok := owners["Falcons"]
	if !ok {
		t.Fatalf("owner should still be present without a team sheet")
	}
	if len(o.Roster) != 0 {
		t.Errorf("expected empty roster, got %+v", o.Roster)
	}
}

func TestOwnersAbsentOwnerSheetYieldsEmptyMap(t *testing.T) {
	wb := openTestWorkbook(t, []string{"Players"}, map[string][][]string{
		"Players": {{"Name"}, {"Alice"}},
	})

	owners := Owners(wb)
	if len(owners) != 0 {
		t.Errorf("expected empty map, got %+v", owners)
	}
}

func TestOwnersBlankPhotoGetsSentinel(t *testing.T) {
	wb := openTestWorkbook(t, []string{"Players", "Owner"}, map[string][][]string{
		"Players": {{"Name"}},
		"Owner": {
			{"Name", "TeamName", "PhotoURL"},
			{"Umesh", "Falcons", ""},
		},
	})

	owners := Owners(wb)
	if owners["Falcons"].PhotoURL != models.NoPhoto {
		t.Errorf("expected %q, got %q", models.NoPhoto, owners["Falcons"].PhotoURL)
	}
}

func TestOwnersBlankNameExcluded(t *testing.T) {
	wb := openTestWorkbook(t, []string{"Players", "Owner"}, map[string][][]string{
		"Players": {{"Name"}},
		"Owner": {
			{"Name", "TeamName"},
			{"", "Ghosts"},
			{"Umesh", "Falcons"},
		},
	})

	owners := Owners(wb)
	if len(owners) != 1 {
		t.Errorf("expected 1 owner, got %v", ownerKeys(owners))
	}
}

func ownerKeys(owners map[string]models.Owner) []string {
	keys := make([]string, 0, len(owners))
	for k := range owners {
		keys = append(keys, k)
	}
	return keys
}
