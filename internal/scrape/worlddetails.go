package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tibia-api/internal/tibia"
)

// WorldDetails extracts a single world's page. A page with one lone
// .InnerTableContainer block is the upstream's silent fallback for an
// unknown world and classifies as not found. The information table is
// walked as header/value pairs over a closed header set; an unrecognized
// header fails loudly rather than being skipped.
func WorldDetails(body, worldName string) (*tibia.WorldDetails, error) {
	page, err := Parse(body)
	if err != nil {
		return nil, err
	}
	main, err := page.mainContent()
	if err != nil {
		return nil, err
	}

	inner := main.Find(".InnerTableContainer")
	if inner.Length() <= 1 {
		return nil, tibia.ErrNotFound
	}

	details := &tibia.WorldDetails{
		Name:             worldName,
		IsOnline:         true,
		Location:         tibia.LocationEurope,
		PvpType:          tibia.PvpOpen,
		GameWorldType:    tibia.GameWorldRegular,
		WorldQuestTitles: []string{},
		PlayersOnline:    []tibia.Player{},
	}

	cells := inner.Eq(1).Find("td")
	for i := 0; i+2 <= cells.Length(); i += 2 {
		header := strings.TrimSpace(cells.Eq(i).Text())
		value := cells.Eq(i + 1)

		switch header {
		case "Status:":
			switch strings.TrimSpace(firstText(value)) {
			case "Online":
				details.IsOnline = true
			case "Offline":
				details.IsOnline = false
			default:
				return nil, unexpectedf("unexpected online status %q", firstText(value))
			}
		case "Players Online:":
			details.PlayersOnlineCount, err = ParseCount(value.Text())
			if err != nil {
				return nil, err
			}
		case "Online Record:":
			record := Sanitize(value.Text())
			marker := strings.Index(record, " players")
			if marker < 0 {
				return nil, unexpectedf("online record marker not found in %q", record)
			}
			details.PlayersOnlineRecord, err = ParseCount(groupedIntRe.FindString(record[:marker]))
			if err != nil {
				return nil, err
			}
			on := parensOnRe.FindStringSubmatch(record)
			if on == nil {
				return nil, unexpectedf("online record date not found in %q", record)
			}
			details.PlayersOnlineRecordDate, err = ParseDateTime(on[1])
			if err != nil {
				return nil, err
			}
		case "Creation Date:":
			details.CreationDate, err = ParseYearMonth(Sanitize(value.Text()))
			if err != nil {
				return nil, err
			}
		case "Location:":
			details.Location, err = tibia.ParseLocation(Sanitize(value.Text()))
			if err != nil {
				return nil, unexpectedf("%v", err)
			}
		case "PvP Type:":
			details.PvpType, err = tibia.ParsePvpType(Sanitize(value.Text()))
			if err != nil {
				return nil, unexpectedf("%v", err)
			}
		case "World Quest Titles:":
			value.Find("a").Each(func(_ int, a *goquery.Selection) {
				details.WorldQuestTitles = append(details.WorldQuestTitles, Sanitize(a.Text()))
			})
		case "BattlEye Status:":
			details.BattlEye, details.BattlEyeDate, err = ParseBattlEyeTooltip(value.Text())
			if err != nil {
				return nil, err
			}
		case "Transfer Type:":
			t, err := tibia.ParseTransferType(Sanitize(value.Text()))
			if err != nil {
				return nil, unexpectedf("%v", err)
			}
			details.TransferType = &t
		case "Premium Type:":
			details.PremiumRequired = strings.TrimSpace(value.Text()) == "premium"
		case "Game World Type:":
			if strings.ToLower(Sanitize(value.Text())) == "experimental" {
				details.GameWorldType = tibia.GameWorldExperimental
			}
		default:
			return nil, unexpectedf("unexpected header %q", header)
		}
	}

	// Only worlds with players online render the player table.
	if details.PlayersOnlineCount > 0 {
		if inner.Length() < 3 {
			return nil, unexpectedf("players online table not found")
		}
		playerCells := inner.Eq(2).Find("tr.Odd > td, tr.Even > td")
		for i := 0; i+3 <= playerCells.Length(); i += 3 {
			name := Sanitize(firstText(playerCells.Eq(i)))
			if name == "" {
				return nil, unexpectedf("player name not found")
			}
			level, err := ParseCount(playerCells.Eq(i + 1).Text())
			if err != nil {
				return nil, err
			}
			var vocation *tibia.Vocation
			if text := Sanitize(playerCells.Eq(i + 2).Text()); text != "None" {
				v, err := tibia.ParseVocation(text)
				if err != nil {
					return nil, unexpectedf("%v", err)
				}
				vocation = &v
			}
			details.PlayersOnline = append(details.PlayersOnline, tibia.Player{
				Name:     name,
				Level:    level,
				Vocation: vocation,
			})
		}
	}

	return details, nil
}
