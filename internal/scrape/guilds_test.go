package scrape

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tibia-api/internal/tibia"
)

const guildsPage = `<html>
<head><title>Tibia - Guilds</title></head>
<body>
<div class="main-content">
<div class="TableContainer">
<table class="TableContent">
<tr><td>Logo</td><td>Description</td><td></td></tr>
<tr>
<td><img src="https://static.tibia.com/images/guildlogos/Elysium.gif" /></td>
<td><b>Elysium</b><br/>We fight together or die alone.</td>
<td><a href="#">View</a></td>
</tr>
<tr>
<td></td>
<td><b>Silent Order</b></td>
<td><a href="#">View</a></td>
</tr>
</table>
</div>
<div class="TableContainer">
<table class="TableContent">
<tr><td>Logo</td><td>Description</td><td></td></tr>
<tr>
<td><img src="https://static.tibia.com/images/guildlogos/default.gif" /></td>
<td><b>Fresh Blood</b><br/>Recruiting everyone!</td>
<td><a href="#">View</a></td>
</tr>
</table>
</div>
</div>
</body>
</html>`

func TestGuilds(t *testing.T) {
	t.Parallel()

	guilds, err := Guilds(guildsPage)
	require.NoError(t, err)
	require.Len(t, guilds, 3)

	elysium := guilds[0]
	require.Equal(t, "Elysium", elysium.Name)
	require.NotNil(t, elysium.Logo)
	require.Equal(t, "https://static.tibia.com/images/guildlogos/Elysium.gif", *elysium.Logo)
	require.NotNil(t, elysium.Description)
	require.Equal(t, "We fight together or die alone.", *elysium.Description)
	require.True(t, elysium.Active)

	silent := guilds[1]
	require.Equal(t, "Silent Order", silent.Name)
	require.Nil(t, silent.Logo)
	require.Nil(t, silent.Description)
	require.True(t, silent.Active)

	forming := guilds[2]
	require.Equal(t, "Fresh Blood", forming.Name)
	require.False(t, forming.Active, "second table holds guilds still in formation")
}

// A guilds page for an unknown world carries no anchor tables.
func TestGuildsUnknownWorld(t *testing.T) {
	t.Parallel()

	page := `<html><head><title>Tibia - Guilds</title></head><body>
<div class="main-content"><div class="TableContainer"></div></div>
</body></html>`

	_, err := Guilds(page)
	require.ErrorIs(t, err, tibia.ErrNotFound)
}

func TestGuildsMaintenance(t *testing.T) {
	t.Parallel()

	_, err := Guilds(maintenancePage)
	require.ErrorIs(t, err, tibia.ErrMaintenance)
}
