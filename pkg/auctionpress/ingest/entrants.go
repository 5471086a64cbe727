package ingest

import (
	"sort"
	"strings"

	"github.com/r21league/auctionpress/pkg/auctionpress/models"
)

// Entrants reads the first sheet into entrant records. The first row is the
// header row; every other row is mapped through the header-name lookup, so
// column order never matters and a missing header simply leaves its field
// empty. Rows without a name are dropped. The result is sorted by name,
// case-insensitive ascending.
func Entrants(wb *Workbook, auctionMode bool) []models.Entrant {
	rows, ok := wb.SheetAt(0)
	if !ok || len(rows) == 0 {
		return nil
	}

	headers := buildHeaderMap(rows[0])
	var entrants []models.Entrant
	for _, row := range rows[1:] {
		e := models.Entrant{
			Name:            headers.cellValue(row, "Name"),
			TowerFlat:       headers.cellValue(row, "TowerFlat"),
			Mobile:          headers.cellValue(row, "Mobile"),
			Unavailability:  headers.cellValue(row, "Unavailability"),
			PhotoURL:        headers.cellValue(row, "PhotoURL"),
			Role:            headers.cellValue(row, "Role"),
			FinalBid:        headers.cellValue(row, "FinalBid"),
			SoldToTeam:      headers.cellValue(row, "SoldToTeam"),
			TeamOwnerName:   headers.cellValue(row, "TeamOwnerName"),
			TeamOwnerMobile: headers.cellValue(row, "TeamOwnerMobile"),
			BidAmount:       headers.cellValue(row, "BidAmount"),
		}
		if !auctionMode {
			e.BasePrice = headers.cellValue(row, "BasePrice")
		}
		if e.Name == "" {
			continue
		}
		entrants = append(entrants, e)
	}

	sort.SliceStable(entrants, func(i, j int) bool {
		return strings.ToLower(entrants[i].Name) < strings.ToLower(entrants[j].Name)
	})
	return entrants
}
