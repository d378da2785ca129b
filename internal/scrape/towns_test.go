package scrape

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tibia-api/internal/tibia"
)

const townsPage = `<html>
<head><title>Tibia - Houses</title></head>
<body>
<div class="main-content">
<div id="houses">
<table class="TableContent"><tr><td>Header decoration</td></tr></table>
<table class="TableContent">
<tr>
<td valign="top">
<label>Ab'Dendriel</label>
<label>Ankrahmun</label>
<label>Carlin</label>
<label>Darashia</label>
<label>Edron</label>
<label>Farmine</label>
<label>Gray Beach</label>
<label>Issavi</label>
<label>Kazordoon</label>
<label>Liberty Bay</label>
<label>Moonfall</label>
<label>Port Hope</label>
<label>Rathleton</label>
<label>Silvertides</label>
<label>Svargrond</label>
<label>Thais</label>
<label>Venore</label>
<label>Yalahar</label>
</td>
<td valign="top">other column</td>
</tr>
</table>
</div>
</div>
</body>
</html>`

func TestTowns(t *testing.T) {
	t.Parallel()

	towns, err := Towns(townsPage)
	require.NoError(t, err)
	require.Equal(t, []string{
		"Ab'Dendriel", "Ankrahmun", "Carlin", "Darashia", "Edron", "Farmine",
		"Gray Beach", "Issavi", "Kazordoon", "Liberty Bay", "Moonfall",
		"Port Hope", "Rathleton", "Silvertides", "Svargrond", "Thais",
		"Venore", "Yalahar",
	}, towns)
}

func TestTownsMaintenance(t *testing.T) {
	t.Parallel()

	_, err := Towns(maintenancePage)
	require.ErrorIs(t, err, tibia.ErrMaintenance)
}

func TestTownsMissingTable(t *testing.T) {
	t.Parallel()

	_, err := Towns(`<html><head><title>Tibia - Houses</title></head><body><div class="main-content"></div></body></html>`)
	require.ErrorIs(t, err, tibia.ErrUnexpectedContent)
}
