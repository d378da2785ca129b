// Package tibia defines the domain records extracted from tibia.com
// community pages, plus the interfaces the extraction pipeline depends on.
package tibia

import (
	"fmt"
	"time"
)

// Location is the physical region a game world is hosted in.
type Location string

const (
	LocationEurope       Location = "europe"
	LocationNorthAmerica Location = "northAmerica"
	LocationSouthAmerica Location = "southAmerica"
	LocationOceania      Location = "oceania"
)

// ParseLocation converts the location text displayed on tibia.com.
func ParseLocation(s string) (Location, error) {
	switch s {
	case "Europe":
		return LocationEurope, nil
	case "North America":
		return LocationNorthAmerica, nil
	case "South America":
		return LocationSouthAmerica, nil
	case "Oceania":
		return LocationOceania, nil
	default:
		return "", fmt.Errorf("unexpected location %q", s)
	}
}

// PvpType is a world's player-versus-player ruleset.
type PvpType string

const (
	PvpOpen          PvpType = "open"
	PvpOptional      PvpType = "optional"
	PvpHardcore      PvpType = "hardcore"
	PvpRetroOpen     PvpType = "retroOpen"
	PvpRetroHardcore PvpType = "retroHardcore"
)

// ParsePvpType converts the pvp type text displayed on tibia.com.
func ParsePvpType(s string) (PvpType, error) {
	switch s {
	case "Open PvP":
		return PvpOpen, nil
	case "Optional PvP":
		return PvpOptional, nil
	case "Hardcore PvP":
		return PvpHardcore, nil
	case "Retro Open PvP":
		return PvpRetroOpen, nil
	case "Retro Hardcore PvP":
		return PvpRetroHardcore, nil
	default:
		return "", fmt.Errorf("unexpected pvp type %q", s)
	}
}

// GameWorldType distinguishes regular worlds from experimental ones.
type GameWorldType string

const (
	GameWorldRegular      GameWorldType = "regular"
	GameWorldExperimental GameWorldType = "experimental"
)

// TransferType restricts character transfers to or from a world.
type TransferType string

const (
	TransferBlocked TransferType = "blocked"
	TransferLocked  TransferType = "locked"
)

// ParseTransferType converts the transfer type text displayed on tibia.com.
func ParseTransferType(s string) (TransferType, error) {
	switch s {
	case "blocked":
		return TransferBlocked, nil
	case "locked":
		return TransferLocked, nil
	default:
		return "", fmt.Errorf("unexpected transfer type %q", s)
	}
}

// Vocation is a character's profession. The vocabulary is closed; any
// other text on a page means the page format has drifted.
type Vocation string

const (
	VocationKnight         Vocation = "knight"
	VocationEliteKnight    Vocation = "eliteKnight"
	VocationSorcerer       Vocation = "sorcerer"
	VocationMasterSorcerer Vocation = "masterSorcerer"
	VocationDruid          Vocation = "druid"
	VocationElderDruid     Vocation = "elderDruid"
	VocationPaladin        Vocation = "paladin"
	VocationRoyalPaladin   Vocation = "royalPaladin"
)

// ParseVocation converts the vocation text displayed on tibia.com.
func ParseVocation(s string) (Vocation, error) {
	switch s {
	case "Knight":
		return VocationKnight, nil
	case "Elite Knight":
		return VocationEliteKnight, nil
	case "Sorcerer":
		return VocationSorcerer, nil
	case "Master Sorcerer":
		return VocationMasterSorcerer, nil
	case "Druid":
		return VocationDruid, nil
	case "Elder Druid":
		return VocationElderDruid, nil
	case "Paladin":
		return VocationPaladin, nil
	case "Royal Paladin":
		return VocationRoyalPaladin, nil
	default:
		return "", fmt.Errorf("unexpected vocation %q", s)
	}
}

// Sex is a character's sex as displayed on its page.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ResidenceType is the kind of rentable property.
type ResidenceType string

const (
	ResidenceHouse     ResidenceType = "house"
	ResidenceGuildhall ResidenceType = "guildhall"
)

// ParseResidenceType converts the `type` query parameter value
// ("houses" or "guildhalls") used by the upstream site and this API.
func ParseResidenceType(s string) (ResidenceType, error) {
	switch s {
	case "houses":
		return ResidenceHouse, nil
	case "guildhalls":
		return ResidenceGuildhall, nil
	default:
		return "", fmt.Errorf("unexpected residence type %q", s)
	}
}

// QueryValue returns the upstream `type` query parameter for the type.
func (t ResidenceType) QueryValue() string {
	if t == ResidenceGuildhall {
		return "guildhalls"
	}
	return "houses"
}

// Label returns the heading label the upstream site uses for the type.
func (t ResidenceType) Label() string {
	if t == ResidenceGuildhall {
		return "Guildhalls"
	}
	return "Houses"
}

// World is one row of the worlds overview page.
type World struct {
	Name               string        `json:"name"`
	PlayersOnlineCount int           `json:"playersOnlineCount"`
	Location           Location      `json:"location"`
	PvpType            PvpType       `json:"pvpType"`
	BattlEye           bool          `json:"battlEye"`
	BattlEyeDate       *Date         `json:"battlEyeDate,omitempty"`
	PremiumRequired    bool          `json:"premiumRequired"`
	TransferType       *TransferType `json:"transferType,omitempty"`
	GameWorldType      GameWorldType `json:"gameWorldType"`
}

// WorldsOverview is the full worlds page: the global online record plus
// every world row. PlayersOnlineTotal is derived by summing the rows,
// not read from the page.
type WorldsOverview struct {
	PlayersOnlineTotal int       `json:"playersOnlineTotal"`
	RecordPlayers      int       `json:"recordPlayers"`
	RecordDate         time.Time `json:"recordDate"`
	Worlds             []World   `json:"worlds"`
}

// Player is one row of a world's online player list.
type Player struct {
	Name     string    `json:"name"`
	Level    int       `json:"level"`
	Vocation *Vocation `json:"vocation,omitempty"`
}

// WorldDetails is the per-world page: the overview fields plus status,
// record, creation date, quest titles and the online player list.
type WorldDetails struct {
	Name                    string        `json:"name"`
	IsOnline                bool          `json:"isOnline"`
	PlayersOnlineCount      int           `json:"playersOnlineCount"`
	PlayersOnlineRecord     int           `json:"playersOnlineRecord"`
	PlayersOnlineRecordDate time.Time     `json:"playersOnlineRecordDate"`
	CreationDate            YearMonth     `json:"creationDate"`
	Location                Location      `json:"location"`
	PvpType                 PvpType       `json:"pvpType"`
	WorldQuestTitles        []string      `json:"worldQuestTitles"`
	BattlEye                bool          `json:"battlEye"`
	BattlEyeDate            *Date         `json:"battlEyeDate,omitempty"`
	GameWorldType           GameWorldType `json:"gameWorldType"`
	TransferType            *TransferType `json:"transferType,omitempty"`
	PremiumRequired         bool          `json:"premiumRequired"`
	PlayersOnline           []Player      `json:"playersOnline"`
}

// Guild is one row of a world's guild listing. Active distinguishes fully
// founded guilds from guilds still in formation.
type Guild struct {
	Logo        *string `json:"logo,omitempty"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Active      bool    `json:"active"`
}

// KilledAmounts is a pair of kill counts for one time window.
type KilledAmounts struct {
	KilledPlayers   int `json:"killedPlayers"`
	KilledByPlayers int `json:"killedByPlayers"`
}

// RaceKillStatistics is the per-race entry of the kill statistics page.
type RaceKillStatistics struct {
	Race     string        `json:"race"`
	LastDay  KilledAmounts `json:"lastDay"`
	LastWeek KilledAmounts `json:"lastWeek"`
}

// KillStatistics is a world's kill statistics page. The synthetic "Total"
// row is split out into the aggregate fields and never appears in Races.
type KillStatistics struct {
	TotalLastDay  KilledAmounts        `json:"totalLastDay"`
	TotalLastWeek KilledAmounts        `json:"totalLastWeek"`
	Races         []RaceKillStatistics `json:"races"`
}

// Residence is one rentable property row of a houses/guildhalls page.
type Residence struct {
	ID     int             `json:"id"`
	Town   string          `json:"town"`
	Type   ResidenceType   `json:"type"`
	Name   string          `json:"name"`
	Size   int             `json:"size"`
	Rent   int             `json:"rent"`
	Status ResidenceStatus `json:"status"`
}

// CharacterHouse is a house owned by a character.
type CharacterHouse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	PaidUntil Date   `json:"paidUntil"`
	Town      string `json:"town"`
}

// GuildMembership is a character's guild and role within it.
type GuildMembership struct {
	Role      string `json:"role"`
	GuildName string `json:"guildName"`
}

// CharacterInfo is the character page.
type CharacterInfo struct {
	Name              string           `json:"name"`
	FormerNames       []string         `json:"formerNames,omitempty"`
	Title             *string          `json:"title,omitempty"`
	Sex               Sex              `json:"sex"`
	Vocation          *Vocation        `json:"vocation,omitempty"`
	Level             int              `json:"level"`
	AchievementPoints int              `json:"achievementPoints"`
	World             string           `json:"world"`
	SpawnPoint        string           `json:"spawnPoint"`
	Houses            []CharacterHouse `json:"houses,omitempty"`
	Guild             *GuildMembership `json:"guild,omitempty"`
	LastLogin         *time.Time       `json:"lastLogin,omitempty"`
	HasPremium        bool             `json:"hasPremium"`
}
