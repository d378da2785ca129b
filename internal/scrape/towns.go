package scrape

import "github.com/PuerkitoBio/goquery"

// Towns extracts the town list from the houses subtopic page, preserving
// document order. That order is canonical: residence aggregation without an
// explicit town filter iterates it as-is. The houses listing always exists,
// so there is no not-found shape for this page.
func Towns(body string) ([]string, error) {
	page, err := Parse(body)
	if err != nil {
		return nil, err
	}
	main, err := page.mainContent()
	if err != nil {
		return nil, err
	}

	table := main.Find("#houses table.TableContent").Last()
	if table.Length() == 0 {
		return nil, unexpectedf("towns table not found")
	}
	row := table.Find(`tr > td[valign="top"]`).First()
	if row.Length() == 0 {
		return nil, unexpectedf("towns row not found")
	}

	var towns []string
	row.Find("label").Each(func(_ int, label *goquery.Selection) {
		if name := Sanitize(label.Text()); name != "" {
			towns = append(towns, name)
		}
	})
	return towns, nil
}
