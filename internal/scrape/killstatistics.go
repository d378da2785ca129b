package scrape

import "tibia-api/internal/tibia"

// KillStatistics extracts a world's kill statistics page. Data cells come
// in fixed 5-tuples of (race, killedPlayers/day, killedByPlayers/day,
// killedPlayers/week, killedByPlayers/week). The synthetic "Total" row
// populates the aggregate fields and never appears in the per-race list.
// Zero data cells is the unknown-world shape.
func KillStatistics(body string) (*tibia.KillStatistics, error) {
	page, err := Parse(body)
	if err != nil {
		return nil, err
	}
	main, err := page.mainContent()
	if err != nil {
		return nil, err
	}

	cells := main.Find("#KillStatisticsTable tr.DataRow > td")
	if cells.Length() == 0 {
		return nil, tibia.ErrNotFound
	}

	stats := &tibia.KillStatistics{Races: []tibia.RaceKillStatistics{}}
	for i := 0; i+5 <= cells.Length(); i += 5 {
		label := cells.Eq(i).Text()
		lastDay, err := parseKilledAmounts(cells.Eq(i+1).Text(), cells.Eq(i+2).Text())
		if err != nil {
			return nil, err
		}
		lastWeek, err := parseKilledAmounts(cells.Eq(i+3).Text(), cells.Eq(i+4).Text())
		if err != nil {
			return nil, err
		}

		if label == "Total" {
			stats.TotalLastDay = lastDay
			stats.TotalLastWeek = lastWeek
			continue
		}
		stats.Races = append(stats.Races, tibia.RaceKillStatistics{
			Race:     label,
			LastDay:  lastDay,
			LastWeek: lastWeek,
		})
	}
	return stats, nil
}

func parseKilledAmounts(killedPlayers, killedByPlayers string) (tibia.KilledAmounts, error) {
	kp, err := ParseCount(killedPlayers)
	if err != nil {
		return tibia.KilledAmounts{}, err
	}
	kbp, err := ParseCount(killedByPlayers)
	if err != nil {
		return tibia.KilledAmounts{}, err
	}
	return tibia.KilledAmounts{KilledPlayers: kp, KilledByPlayers: kbp}, nil
}
