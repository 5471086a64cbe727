// Package render synthesizes the self-contained catalogue document.
//
// The document embeds the full entrant/owner snapshot plus the selection and
// detail-panel logic, so a browser needs no further network access to use it.
package render

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/r21league/auctionpress/pkg/auctionpress/models"
	"github.com/r21league/auctionpress/pkg/auctionpress/state"
)

type bannerView struct {
	Style      string
	Message    string
	ShowCounts bool
	Total      int
	Resolved   int
	Remaining  int
}

type ownerOption struct {
	Value string
	Label string
}

type docView struct {
	AuctionMode bool
	Banner      *bannerView
	Owners      []ownerOption
	Entrants    []string
	PlayersJS   string
	OwnersJS    string
	Refresh     bool
}

var docTemplate = template.Must(template.New("catalogue").Funcs(template.FuncMap{
	"esc": EscapeHTML,
}).Parse(documentBody))

// Render produces the catalogue document for one tick. refreshEnabled emits
// the client auto-refresh script; it is suppressed once every entrant is
// resolved.
func Render(entrants []models.Entrant, owners map[string]models.Owner, st models.AuctionState, auctionMode, refreshEnabled bool) ([]byte, error) {
	view := docView{
		AuctionMode: auctionMode,
		Owners:      ownerOptions(owners),
		PlayersJS:   entrantSnapshot(entrants),
		OwnersJS:    ownerSnapshot(owners),
		Refresh:     auctionMode && refreshEnabled && !st.AllResolved,
	}
	for _, e := range entrants {
		view.Entrants = append(view.Entrants, e.Name)
	}
	if auctionMode {
		view.Banner = banner(entrants, st)
	}

	var buf bytes.Buffer
	if err := docTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}
	return buf.Bytes(), nil
}

// banner picks the status banner by precedence: all resolved, then any
// resolved, then not started.
func banner(entrants []models.Entrant, st models.AuctionState) *bannerView {
	total, resolved, remaining := state.Counts(entrants)
	b := &bannerView{
		ShowCounts: total > 0,
		Total:      total,
		Resolved:   resolved,
		Remaining:  remaining,
	}
	switch {
	case st.AllResolved:
		b.Style = "banner-done"
		b.Message = "The auction is officially over! Every player has been successfully sold."
	case st.AnyResolved:
		b.Style = "banner-live"
		b.Message = "Auction is started and in Progress"
	default:
		b.Style = "banner-pending"
		b.Message = "Auction is yet to start"
	}
	return b
}

// ownerOptions sorts the owner entries by team identity, case-insensitive,
// and labels them "Team - Owner". The machine value is the team identity,
// matching the snapshot key.
func ownerOptions(owners map[string]models.Owner) []ownerOption {
	opts := make([]ownerOption, 0, len(owners))
	for team, o := range owners {
		opts = append(opts, ownerOption{Value: team, Label: o.Display()})
	}
	sort.Slice(opts, func(i, j int) bool {
		return strings.ToLower(opts[i].Value) < strings.ToLower(opts[j].Value)
	})
	return opts
}
