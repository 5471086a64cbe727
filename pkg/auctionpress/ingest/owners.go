package ingest

import (
	"github.com/sirupsen/logrus"

	"github.com/r21league/auctionpress/pkg/auctionpress/config"
	"github.com/r21league/auctionpress/pkg/auctionpress/models"
)

// ownerSheetName is the exact name of the owner sheet.
const ownerSheetName = "Owner"

// Owners reads the Owner sheet into a map keyed by team identity. An absent
// Owner sheet yields an empty map. For each kept owner row, the sheet whose
// name equals the trimmed TeamName supplies the roster, row by row in sheet
// order; no such sheet means an empty roster.
//
// The key is the team name, not the owner's personal name, so repeated
// publish ticks keep addressing the same entry even when the owner's name is
// edited between ticks.
func Owners(wb *Workbook) map[string]models.Owner {
	owners := make(map[string]models.Owner)

	rows, ok := wb.SheetByName(ownerSheetName)
	if !ok {
		config.GetLogger().WithFields(logrus.Fields{
			"module": "ingest",
			"sheet":  ownerSheetName,
		}).Info("no Owner sheet found in workbook")
		return owners
	}
	if len(rows) == 0 {
		return owners
	}

	headers := buildHeaderMap(rows[0])
	for _, row := range rows[1:] {
		name := headers.cellValue(row, "Name")
		if name == "" {
			continue
		}
		o := models.Owner{
			Name:      name,
			TeamName:  headers.cellValue(row, "TeamName"),
			PhotoURL:  headers.cellValue(row, "PhotoURL"),
			BasePrice: headers.cellValue(row, "BasePrice"),
		}
		if o.PhotoURL == "" {
			o.PhotoURL = models.NoPhoto
		}
		o.Roster = teamRoster(wb, o.TeamName)
		owners[o.TeamName] = o
	}
	return owners
}

// teamRoster reads every row of the sheet named after the team into generic
// string-keyed roster rows. The sheet's own header row names the keys.
func teamRoster(wb *Workbook, teamName string) []models.RosterRow {
	if teamName == "" {
		return nil
	}
	rows, ok := wb.SheetByName(teamName)
	if !ok {
		config.GetLogger().WithFields(logrus.Fields{
			"module": "ingest",
			"sheet":  teamName,
		}).Info("no roster sheet for team")
		return nil
	}
	if len(rows) == 0 {
		return nil
	}

	headers := buildHeaderMap(rows[0])
	roster := make([]models.RosterRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		r := make(models.RosterRow, len(headers))
		for header, col := range headers {
			r[header] = cellAt(row, col)
		}
		roster = append(roster, r)
	}
	return roster
}
