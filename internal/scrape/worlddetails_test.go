package scrape

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tibia-api/internal/tibia"
)

const worldDetailsPage = `<html>
<head><title>Tibia - Game Worlds</title></head>
<body>
<div class="main-content">
<div class="InnerTableContainer"><table><tr><td>World Selection</td></tr></table></div>
<div class="InnerTableContainer">
<table>
<tr><td>Status:</td><td>Online</td></tr>
<tr><td>Players Online:</td><td>152</td></tr>
<tr><td>Online Record:</td><td>1,211 players (on Apr 23 2023, 21:28:01 CEST)</td></tr>
<tr><td>Creation Date:</td><td>April 2013</td></tr>
<tr><td>Location:</td><td>South America</td></tr>
<tr><td>PvP Type:</td><td>Retro Open PvP</td></tr>
<tr><td>World Quest Titles:</td><td><a href="#">Rise of Devovorga</a>, <a href="#">The Colours of Magic</a></td></tr>
<tr><td>BattlEye Status:</td><td>Protected by BattlEye since release</td></tr>
<tr><td>Transfer Type:</td><td>locked</td></tr>
<tr><td>Premium Type:</td><td>premium</td></tr>
<tr><td>Game World Type:</td><td>Regular</td></tr>
</table>
</div>
<div class="InnerTableContainer">
<table>
<tr class="LabelH"><td>Name</td><td>Level</td><td>Vocation</td></tr>
<tr class="Odd"><td><a href="#">Bubble</a></td><td>752</td><td>Master Sorcerer</td></tr>
<tr class="Even"><td><a href="#">Mad Mustazza</a></td><td>23</td><td>None</td></tr>
</table>
</div>
</div>
</body>
</html>`

func TestWorldDetails(t *testing.T) {
	t.Parallel()

	details, err := WorldDetails(worldDetailsPage, "Ferobra")
	require.NoError(t, err)

	require.Equal(t, "Ferobra", details.Name)
	require.True(t, details.IsOnline)
	require.Equal(t, 152, details.PlayersOnlineCount)
	require.Equal(t, 1211, details.PlayersOnlineRecord)
	require.True(t, details.PlayersOnlineRecordDate.Equal(time.Date(2023, time.April, 23, 19, 28, 1, 0, time.UTC)))
	require.Equal(t, tibia.NewYearMonth(2013, time.April), details.CreationDate)
	require.Equal(t, tibia.LocationSouthAmerica, details.Location)
	require.Equal(t, tibia.PvpRetroOpen, details.PvpType)
	require.Equal(t, []string{"Rise of Devovorga", "The Colours of Magic"}, details.WorldQuestTitles)
	require.True(t, details.BattlEye)
	require.Nil(t, details.BattlEyeDate)
	require.NotNil(t, details.TransferType)
	require.Equal(t, tibia.TransferLocked, *details.TransferType)
	require.True(t, details.PremiumRequired)
	require.Equal(t, tibia.GameWorldRegular, details.GameWorldType)

	require.Len(t, details.PlayersOnline, 2)
	require.Equal(t, "Bubble", details.PlayersOnline[0].Name)
	require.Equal(t, 752, details.PlayersOnline[0].Level)
	require.NotNil(t, details.PlayersOnline[0].Vocation)
	require.Equal(t, tibia.VocationMasterSorcerer, *details.PlayersOnline[0].Vocation)
	require.Equal(t, "Mad Mustazza", details.PlayersOnline[1].Name)
	require.Nil(t, details.PlayersOnline[1].Vocation, "vocation None maps to absent")
}

// The upstream site answers an unknown world name with a page that only
// carries the world selection block.
func TestWorldDetailsUnknownWorld(t *testing.T) {
	t.Parallel()

	page := `<html><head><title>Tibia - Game Worlds</title></head><body>
<div class="main-content">
<div class="InnerTableContainer"><table><tr><td>World Selection</td></tr></table></div>
</div>
</body></html>`

	_, err := WorldDetails(page, "Nonexista")
	require.ErrorIs(t, err, tibia.ErrNotFound)
}

func TestWorldDetailsUnknownHeader(t *testing.T) {
	t.Parallel()

	page := `<html><head><title>Tibia - Game Worlds</title></head><body>
<div class="main-content">
<div class="InnerTableContainer"><table><tr><td>World Selection</td></tr></table></div>
<div class="InnerTableContainer">
<table><tr><td>Server Owner:</td><td>CipSoft</td></tr></table>
</div>
</div>
</body></html>`

	_, err := WorldDetails(page, "Antica")
	require.ErrorIs(t, err, tibia.ErrUnexpectedContent)
}

func TestWorldDetailsMaintenance(t *testing.T) {
	t.Parallel()

	_, err := WorldDetails(maintenancePage, "Antica")
	require.ErrorIs(t, err, tibia.ErrMaintenance)
}
