package scrape

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"

	"tibia-api/internal/tibia"
)

// Residences extracts a houses/guildhalls listing for one (world, town)
// pair. Two not-found shapes apply, in order: the page heading must bind
// the requested town and world into the expected sentence (the upstream
// serves a fallback page for unknown subjects instead of a 404), and the
// page must carry exactly three anchor tables (filter form, results,
// towns list). A results table whose sole row is the single-column
// "No houses found." text yields an empty list, not an error.
//
// now is the instant auction countdowns are resolved against.
func Residences(body, world string, residenceType tibia.ResidenceType, town string, now time.Time) ([]tibia.Residence, error) {
	page, err := Parse(body)
	if err != nil {
		return nil, err
	}
	main, err := page.mainContent()
	if err != nil {
		return nil, err
	}

	heading := firstText(main.Find(".Text").First())
	subjectRe, err := regexp.Compile(fmt.Sprintf(`(.*) in %s on %s`, regexp.QuoteMeta(town), regexp.QuoteMeta(world)))
	if err != nil {
		return nil, unexpectedf("compile heading pattern: %v", err)
	}
	if !subjectRe.MatchString(heading) {
		return nil, tibia.ErrNotFound
	}

	tables := main.Find(".TableContainer table.TableContent")
	if tables.Length() != 3 {
		return nil, tibia.ErrNotFound
	}

	residences := []tibia.Residence{}
	var rowErr error
	tables.Eq(0).Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		if i == 0 {
			// header row
			return true
		}
		columns := textNodes(row)
		if len(columns) == 1 {
			// "No houses found." means an empty town, not a failure.
			return true
		}
		if len(columns) != 4 {
			rowErr = unexpectedf("residence row has %d columns", len(columns))
			return false
		}

		idValue, ok := row.Find(`input[name="houseid"]`).First().Attr("value")
		if !ok {
			rowErr = unexpectedf("house id not found")
			return false
		}
		id, err := strconv.Atoi(idValue)
		if err != nil {
			rowErr = unexpectedf("parse house id %q: %v", idValue, err)
			return false
		}

		size, err := FirstNumber(columns[1])
		if err != nil {
			rowErr = err
			return false
		}
		// Rent is listed in thousands of gold.
		rent, err := FirstNumber(columns[2])
		if err != nil {
			rowErr = err
			return false
		}
		status, err := ParseResidenceStatus(Sanitize(columns[3]), now)
		if err != nil {
			rowErr = err
			return false
		}

		residences = append(residences, tibia.Residence{
			ID:     id,
			Town:   town,
			Type:   residenceType,
			Name:   Sanitize(columns[0]),
			Size:   size,
			Rent:   rent * 1000,
			Status: status,
		})
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	return residences, nil
}
