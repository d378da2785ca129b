package scrape

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tibia-api/internal/tibia"
)

var (
	houseIDRe   = regexp.MustCompile(`houseid=(\d+)`)
	paidUntilRe = regexp.MustCompile(`\((.*)\) is paid until (.*)`)
	guildRoleRe = regexp.MustCompile(`(.*) of the`)
)

// Character extracts a character page. The upstream returns HTTP 200 for
// unknown characters; the absence of the information table is the only
// not-found signal. Rows are header/value pairs over a closed header set,
// and an unrecognized header is a loud failure.
func Character(body string) (*tibia.CharacterInfo, error) {
	page, err := Parse(body)
	if err != nil {
		return nil, err
	}
	tables, err := page.contentTables()
	if err != nil {
		return nil, err
	}
	if tables.Length() == 0 {
		return nil, tibia.ErrNotFound
	}

	info := &tibia.CharacterInfo{Sex: tibia.SexMale}
	var rowErr error
	tables.Eq(0).Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		if i == 0 {
			// "Character Information" banner row
			return true
		}
		cells := row.Find("td")
		if cells.Length() != 2 {
			rowErr = unexpectedf("character info row has %d cells", cells.Length())
			return false
		}
		key := Sanitize(firstText(cells.Eq(0)))
		value := cells.Eq(1)

		if err := applyCharacterField(info, key, value); err != nil {
			rowErr = err
			return false
		}
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	return info, nil
}

func applyCharacterField(info *tibia.CharacterInfo, key string, value *goquery.Selection) error {
	switch key {
	case "Name:":
		info.Name = Sanitize(firstText(value))
	case "Former Names:":
		for _, name := range strings.Split(firstText(value), ",") {
			info.FormerNames = append(info.FormerNames, Sanitize(name))
		}
	case "Title:":
		// "Trolltrasher (4 titles unlocked)" keeps only the prefix.
		m := currentTitleRe.FindStringSubmatch(firstText(value))
		if m == nil {
			return unexpectedf("parse title %q", firstText(value))
		}
		if title := Sanitize(m[1]); title != "None" {
			info.Title = &title
		}
	case "Sex:":
		switch strings.TrimSpace(firstText(value)) {
		case "male":
			info.Sex = tibia.SexMale
		case "female":
			info.Sex = tibia.SexFemale
		default:
			return unexpectedf("unexpected sex %q", firstText(value))
		}
	case "Vocation:":
		text := Sanitize(firstText(value))
		if text != "None" {
			v, err := tibia.ParseVocation(text)
			if err != nil {
				return unexpectedf("%v", err)
			}
			info.Vocation = &v
		}
	case "Level:":
		level, err := ParseCount(firstText(value))
		if err != nil {
			return err
		}
		info.Level = level
	case "Achievement Points:":
		points, err := ParseCount(firstText(value))
		if err != nil {
			return err
		}
		info.AchievementPoints = points
	case "Residence:":
		town := Sanitize(firstText(value))
		if town == "" {
			return unexpectedf("residence town is empty")
		}
		info.SpawnPoint = town
	case "World:":
		world := Sanitize(firstText(value))
		if world == "" {
			return unexpectedf("world is empty")
		}
		info.World = world
	case "House:":
		house, err := parseCharacterHouse(value)
		if err != nil {
			return err
		}
		info.Houses = append(info.Houses, house)
	case "Guild Membership:":
		guildName := Sanitize(firstText(value.Find("a").First()))
		if guildName == "" {
			return unexpectedf("guild name not found")
		}
		m := guildRoleRe.FindStringSubmatch(firstText(value))
		if m == nil {
			return unexpectedf("parse guild role %q", firstText(value))
		}
		info.Guild = &tibia.GuildMembership{Role: Sanitize(m[1]), GuildName: guildName}
	case "Last Login:":
		login, err := ParseDateTime(Sanitize(firstText(value)))
		if err != nil {
			return err
		}
		info.LastLogin = &login
	case "Account Status:":
		switch strings.TrimSpace(firstText(value)) {
		case "Premium Account":
			info.HasPremium = true
		case "Free Account":
			info.HasPremium = false
		default:
			return unexpectedf("unexpected account status %q", firstText(value))
		}
	default:
		return unexpectedf("unexpected header %q", key)
	}
	return nil
}

// parseCharacterHouse reads a "<a href=...houseid=N>Name</a> (Town) is
// paid until <date>" cell.
func parseCharacterHouse(value *goquery.Selection) (tibia.CharacterHouse, error) {
	link := value.Find("a").First()
	href, ok := link.Attr("href")
	if !ok {
		return tibia.CharacterHouse{}, unexpectedf("house link not found")
	}
	m := houseIDRe.FindStringSubmatch(href)
	if m == nil {
		return tibia.CharacterHouse{}, unexpectedf("house id not found in %q", href)
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return tibia.CharacterHouse{}, unexpectedf("parse house id %q: %v", m[1], err)
	}
	name := Sanitize(firstText(link))
	if name == "" {
		return tibia.CharacterHouse{}, unexpectedf("house name not found")
	}

	texts := textNodes(value)
	if len(texts) < 2 {
		return tibia.CharacterHouse{}, unexpectedf("house ownership text not found")
	}
	ownership := paidUntilRe.FindStringSubmatch(Sanitize(strings.Join(texts[1:], " ")))
	if ownership == nil {
		return tibia.CharacterHouse{}, unexpectedf("parse house ownership %q", strings.Join(texts[1:], " "))
	}
	paidUntil, err := ParseDate(Sanitize(ownership[2]))
	if err != nil {
		return tibia.CharacterHouse{}, err
	}

	return tibia.CharacterHouse{
		ID:        id,
		Name:      name,
		PaidUntil: paidUntil,
		Town:      Sanitize(ownership[1]),
	}, nil
}
