package scrape

import (
	"strings"

	"tibia-api/internal/tibia"
)

// Worlds extracts the worlds overview page: the global online record and
// one World per table row. The playersOnlineTotal field is derived by
// summing the rows rather than read from the page.
func Worlds(body string) (*tibia.WorldsOverview, error) {
	page, err := Parse(body)
	if err != nil {
		return nil, err
	}
	main, err := page.mainContent()
	if err != nil {
		return nil, err
	}

	blocks := main.Find(".TableContent")
	if blocks.Length() < 3 {
		return nil, unexpectedf("expected 3 content blocks, found %d", blocks.Length())
	}

	overview := &tibia.WorldsOverview{Worlds: []tibia.World{}}

	// First block holds "<n> players (on <date>)".
	record := Sanitize(blocks.Eq(0).Text())
	recordPlayers := groupedIntRe.FindString(record)
	if recordPlayers == "" {
		return nil, unexpectedf("record players not found in %q", record)
	}
	overview.RecordPlayers, err = ParseCount(recordPlayers)
	if err != nil {
		return nil, err
	}
	on := parensOnRe.FindStringSubmatch(record)
	if on == nil {
		return nil, unexpectedf("record date not found in %q", record)
	}
	overview.RecordDate, err = ParseDateTime(on[1])
	if err != nil {
		return nil, err
	}

	// Third block is the worlds table; rows come as fixed 6-cell tuples.
	cells := blocks.Eq(2).Find("tr.Odd > td, tr.Even > td")
	for i := 0; i+6 <= cells.Length(); i += 6 {
		name := cells.Eq(i).Find("a").First().Text()
		if name == "" {
			return nil, unexpectedf("world name not found")
		}
		online, err := ParseCount(cells.Eq(i + 1).Text())
		if err != nil {
			return nil, err
		}
		location, err := tibia.ParseLocation(Sanitize(cells.Eq(i + 2).Text()))
		if err != nil {
			return nil, unexpectedf("%v", err)
		}
		pvpType, err := tibia.ParsePvpType(Sanitize(cells.Eq(i + 3).Text()))
		if err != nil {
			return nil, unexpectedf("%v", err)
		}

		tooltip, _ := cells.Eq(i + 4).Find(".HelperDivIndicator").First().Attr("onmouseover")
		battlEye, battlEyeDate, err := ParseBattlEyeTooltip(tooltip)
		if err != nil {
			return nil, err
		}

		// Free-text flags; substring checks are case-sensitive and
		// order-independent.
		additional := cells.Eq(i + 5).Text()
		gameWorldType := tibia.GameWorldRegular
		if strings.Contains(additional, "experimental") {
			gameWorldType = tibia.GameWorldExperimental
		}
		var transferType *tibia.TransferType
		if strings.Contains(additional, "blocked") {
			t := tibia.TransferBlocked
			transferType = &t
		} else if strings.Contains(additional, "locked") {
			t := tibia.TransferLocked
			transferType = &t
		}

		overview.PlayersOnlineTotal += online
		overview.Worlds = append(overview.Worlds, tibia.World{
			Name:               name,
			PlayersOnlineCount: online,
			Location:           location,
			PvpType:            pvpType,
			BattlEye:           battlEye,
			BattlEyeDate:       battlEyeDate,
			PremiumRequired:    strings.Contains(additional, "premium"),
			TransferType:       transferType,
			GameWorldType:      gameWorldType,
		})
	}

	return overview, nil
}
