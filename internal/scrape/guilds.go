package scrape

import (
	"github.com/PuerkitoBio/goquery"

	"tibia-api/internal/tibia"
)

// Guilds extracts a world's guild listing. The page carries exactly two
// anchor tables: fully founded guilds first, guilds still in formation
// second; any other table count means the world does not exist. Which
// table a row came from determines the Active flag.
func Guilds(body string) ([]tibia.Guild, error) {
	page, err := Parse(body)
	if err != nil {
		return nil, err
	}
	tables, err := page.contentTables()
	if err != nil {
		return nil, err
	}
	if tables.Length() != 2 {
		return nil, tibia.ErrNotFound
	}

	guilds := []tibia.Guild{}
	var rowErr error
	tables.EachWithBreak(func(tableIdx int, table *goquery.Selection) bool {
		table.Find("tr:not(:first-child)").EachWithBreak(func(_ int, row *goquery.Selection) bool {
			cells := row.Find("td")
			if cells.Length() < 2 {
				rowErr = unexpectedf("guild row has %d cells", cells.Length())
				return false
			}

			var logo *string
			if src, ok := cells.Eq(0).Find("img").First().Attr("src"); ok {
				logo = &src
			}

			// The second cell holds the name and, optionally, the
			// description as its first two text nodes.
			texts := textNodes(cells.Eq(1))
			if len(texts) == 0 {
				rowErr = unexpectedf("guild name not found")
				return false
			}
			var description *string
			if len(texts) > 1 {
				d := Sanitize(texts[1])
				description = &d
			}

			guilds = append(guilds, tibia.Guild{
				Logo:        logo,
				Name:        Sanitize(texts[0]),
				Description: description,
				Active:      tableIdx == 0,
			})
			return true
		})
		return rowErr == nil
	})
	if rowErr != nil {
		return nil, rowErr
	}
	return guilds, nil
}
