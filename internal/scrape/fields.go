package scrape

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"tibia-api/internal/tibia"
)

var (
	digitRunRe     = regexp.MustCompile(`(\d+)`)
	groupedIntRe   = regexp.MustCompile(`([\d,]+)`)
	parensOnRe     = regexp.MustCompile(`\(on (.*?)\)`)
	sinceRe        = regexp.MustCompile(`since (.*?)\.`)
	goldRe         = regexp.MustCompile(`(\d+) gold`)
	timeLeftRe     = regexp.MustCompile(`(\d+) (days?|hours?) left`)
	currentTitleRe = regexp.MustCompile(`(.*) \(\d+.*\)`)
)

// fixed offsets for the only two timezone labels the upstream site uses.
var (
	zoneCET  = time.FixedZone("CET", 1*60*60)
	zoneCEST = time.FixedZone("CEST", 2*60*60)
)

// ParseCount parses an integer that may carry thousands separators,
// e.g. "64,028".
func ParseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil {
		return 0, unexpectedf("parse count %q: %v", s, err)
	}
	return n, nil
}

// FirstNumber extracts the first run of digits in s.
func FirstNumber(s string) (int, error) {
	m := digitRunRe.FindString(s)
	if m == "" {
		return 0, unexpectedf("no number in %q", s)
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, unexpectedf("parse number %q: %v", m, err)
	}
	return n, nil
}

// ParseDateTime parses a timestamp of the form
// "Nov 28 2007, 19:26:00 CET" into UTC. The upstream site only ever labels
// timestamps CET (UTC+1) or CEST (UTC+2); anything else is a parse failure.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var zone *time.Location
	switch {
	case strings.HasSuffix(s, " CEST"):
		zone = zoneCEST
		s = strings.TrimSuffix(s, " CEST")
	case strings.HasSuffix(s, " CET"):
		zone = zoneCET
		s = strings.TrimSuffix(s, " CET")
	default:
		return time.Time{}, unexpectedf("no known timezone label in %q", s)
	}
	t, err := time.ParseInLocation("Jan 2 2006, 15:04:05", s, zone)
	if err != nil {
		return time.Time{}, unexpectedf("parse timestamp %q: %v", s, err)
	}
	return t.UTC(), nil
}

var dateLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
}

// ParseDate parses a bare calendar date such as "August 29, 2017" or
// "Sep 08 2023". No timezone is implied.
func ParseDate(s string) (tibia.Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return tibia.NewDate(t.Year(), t.Month(), t.Day()), nil
		}
	}
	return tibia.Date{}, unexpectedf("parse date %q", s)
}

// ParseYearMonth parses a month-granularity date, either the "10/20" form
// of the worlds overview or the "October 2020" form of the details page.
func ParseYearMonth(s string) (tibia.YearMonth, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("01/06", s); err == nil {
		return tibia.NewYearMonth(t.Year(), t.Month()), nil
	}
	if t, err := time.Parse("January 2006", s); err == nil {
		return tibia.NewYearMonth(t.Year(), t.Month()), nil
	}
	return tibia.YearMonth{}, unexpectedf("parse year-month %q", s)
}

// ParseBattlEyeTooltip classifies a BattlEye indicator tooltip: text
// mentioning "release" means protected since release (no date), "since "
// followed by a date up to the trailing period means protected since that
// date, anything else means unprotected.
func ParseBattlEyeTooltip(s string) (bool, *tibia.Date, error) {
	if strings.Contains(s, "release") {
		return true, nil, nil
	}
	if m := sinceRe.FindStringSubmatch(s); m != nil {
		d, err := ParseDate(m[1])
		if err != nil {
			return false, nil, err
		}
		return true, &d, nil
	}
	return false, nil, nil
}

// ExpiryFromCountdown resolves a coarse "<n> days/hours left" countdown to
// an absolute UTC instant. Day counts anchor to the 08:00 UTC server save
// of the current day; hour counts anchor to the next hour boundary. The
// upstream site reports countdowns synchronized to these boundaries, not
// exact seconds.
func ExpiryFromCountdown(n int, unit string, now time.Time) (time.Time, error) {
	now = now.UTC()
	switch unit {
	case "day", "days":
		save := time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, time.UTC)
		return save.AddDate(0, 0, n), nil
	case "hour", "hours":
		top := now.Truncate(time.Hour)
		return top.Add(time.Duration(n+1) * time.Hour), nil
	default:
		return time.Time{}, unexpectedf("unknown countdown unit %q", unit)
	}
}

// ParseResidenceStatus classifies a sanitized residence status cell. Both
// historical spellings of the no-bid auction text are accepted.
func ParseResidenceStatus(s string, now time.Time) (tibia.ResidenceStatus, error) {
	switch s {
	case "rented":
		return tibia.Rented(), nil
	case "auctioned (no bid yet)", "auction (no bid yet)":
		return tibia.AuctionNoBid(), nil
	}

	gold := goldRe.FindStringSubmatch(s)
	if gold == nil {
		return tibia.ResidenceStatus{}, unexpectedf("no gold amount in residence status %q", s)
	}
	bid, err := strconv.Atoi(gold[1])
	if err != nil {
		return tibia.ResidenceStatus{}, unexpectedf("parse bid %q: %v", gold[1], err)
	}

	if strings.Contains(s, "finished") {
		return tibia.AuctionFinished(bid), nil
	}

	left := timeLeftRe.FindStringSubmatch(s)
	if left == nil {
		return tibia.ResidenceStatus{}, unexpectedf("no countdown in residence status %q", s)
	}
	count, err := strconv.Atoi(left[1])
	if err != nil {
		return tibia.ResidenceStatus{}, unexpectedf("parse countdown %q: %v", left[1], err)
	}
	expiry, err := ExpiryFromCountdown(count, left[2], now)
	if err != nil {
		return tibia.ResidenceStatus{}, err
	}
	return tibia.AuctionWithBid(bid, expiry), nil
}
