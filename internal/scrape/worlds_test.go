package scrape

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tibia-api/internal/tibia"
)

const worldsPage = `<html>
<head><title>Tibia - Game Worlds</title></head>
<body>
<div class="main-content">
<div class="TableContainer">
<table class="TableContent">
<tr><td>Overall Maximum: 64,028 players (on Nov 28 2007, 19:26:00 CET)</td></tr>
</table>
</div>
<div class="TableContainer">
<table class="TableContent"><tr><td>Regular Game Worlds</td></tr></table>
</div>
<div class="TableContainer">
<table class="TableContent">
<tr class="LabelH"><td>World</td><td>Online</td><td>Location</td><td>PvP Type</td><td>BattlEye Status</td><td>Additional Information</td></tr>
<tr class="Odd">
<td><a href="?subtopic=worlds&world=Antica">Antica</a></td>
<td>1,052</td>
<td>Europe</td>
<td>Open PvP</td>
<td><span class="HelperDivIndicator" onmouseover="Box('Protected by BattlEye since August 29, 2017.')">&nbsp;</span></td>
<td></td>
</tr>
<tr class="Even">
<td><a href="?subtopic=worlds&world=Belobra">Belobra</a></td>
<td>204</td>
<td>North America</td>
<td>Retro Hardcore PvP</td>
<td><span class="HelperDivIndicator" onmouseover="Box('Protected by BattlEye since release')">&nbsp;</span></td>
<td>blocked, premium, experimental</td>
</tr>
<tr class="Odd">
<td><a href="?subtopic=worlds&world=Oceanis">Oceanis</a></td>
<td>33</td>
<td>Oceania</td>
<td>Optional PvP</td>
<td><span class="HelperDivIndicator" onmouseover="Box('Not protected by BattlEye.')">&nbsp;</span></td>
<td>locked</td>
</tr>
</table>
</div>
</div>
</body>
</html>`

func TestWorlds(t *testing.T) {
	t.Parallel()

	overview, err := Worlds(worldsPage)
	require.NoError(t, err)

	require.Equal(t, 64028, overview.RecordPlayers)
	require.True(t, overview.RecordDate.Equal(time.Date(2007, time.November, 28, 18, 26, 0, 0, time.UTC)))
	require.Equal(t, 1052+204+33, overview.PlayersOnlineTotal)
	require.Len(t, overview.Worlds, 3)

	antica := overview.Worlds[0]
	require.Equal(t, "Antica", antica.Name)
	require.Equal(t, 1052, antica.PlayersOnlineCount)
	require.Equal(t, tibia.LocationEurope, antica.Location)
	require.Equal(t, tibia.PvpOpen, antica.PvpType)
	require.True(t, antica.BattlEye)
	require.NotNil(t, antica.BattlEyeDate)
	require.Equal(t, tibia.NewDate(2017, time.August, 29), *antica.BattlEyeDate)
	require.False(t, antica.PremiumRequired)
	require.Nil(t, antica.TransferType)
	require.Equal(t, tibia.GameWorldRegular, antica.GameWorldType)

	belobra := overview.Worlds[1]
	require.Equal(t, tibia.LocationNorthAmerica, belobra.Location)
	require.Equal(t, tibia.PvpRetroHardcore, belobra.PvpType)
	require.True(t, belobra.BattlEye)
	require.Nil(t, belobra.BattlEyeDate, "since release carries no date")
	require.True(t, belobra.PremiumRequired)
	require.NotNil(t, belobra.TransferType)
	require.Equal(t, tibia.TransferBlocked, *belobra.TransferType)
	require.Equal(t, tibia.GameWorldExperimental, belobra.GameWorldType)

	oceanis := overview.Worlds[2]
	require.Equal(t, tibia.LocationOceania, oceanis.Location)
	require.False(t, oceanis.BattlEye)
	require.NotNil(t, oceanis.TransferType)
	require.Equal(t, tibia.TransferLocked, *oceanis.TransferType)
}

func TestWorldsMaintenance(t *testing.T) {
	t.Parallel()

	_, err := Worlds(maintenancePage)
	require.ErrorIs(t, err, tibia.ErrMaintenance)
}

func TestWorldsTooFewBlocks(t *testing.T) {
	t.Parallel()

	_, err := Worlds(`<html><head><title>Tibia - Game Worlds</title></head><body>
<div class="main-content"><table class="TableContent"><tr><td>only one</td></tr></table></div>
</body></html>`)
	require.ErrorIs(t, err, tibia.ErrUnexpectedContent)
}
