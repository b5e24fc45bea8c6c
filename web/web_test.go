package web

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhilm2223/vertical-farmingg/entities"
)

func render(t *testing.T, name string, data any) *goquery.Document {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, name, data, nil))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestFormPageDefaults(t *testing.T) {
	doc := render(t, PageForm, NewFormPage())

	assert.Equal(t, "/results", doc.Find("form").AttrOr("action", ""))
	assert.Equal(t, "2", doc.Find("#space").AttrOr("value", ""))
	assert.Equal(t, "1", doc.Find("#farmWidth").AttrOr("value", ""))
	assert.Equal(t, 4, doc.Find("#lightSource option").Length())
	assert.Equal(t, "natural", doc.Find("#lightSource option[selected]").AttrOr("value", ""))
	assert.Equal(t, "LED grow lights", doc.Find(`#lightSource option[value="led"]`).Text())
	assert.Zero(t, doc.Find("#form-errors").Length())
}

func TestFormPageShowsErrors(t *testing.T) {
	page := NewFormPage()
	page.Form.Location = "<Oslo>"
	page.Form.LightSource = "led"
	page.Errors = entities.FieldErrors{"humidity": "Humidity must be between 0 and 100%"}
	doc := render(t, PageForm, page)

	assert.Equal(t, "Humidity must be between 0 and 100%", doc.Find(`#form-errors li[data-field="humidity"]`).Text())
	assert.Equal(t, "<Oslo>", doc.Find("#location").AttrOr("value", ""))
	assert.Equal(t, "led", doc.Find("#lightSource option[selected]").AttrOr("value", ""))
}

func TestResultsPage(t *testing.T) {
	plan := entities.FarmingPlan{
		ZoneID: entities.ZoneTemperate,
		Input: entities.UserInput{
			Location: "Lyon", AvgTempC: 22, HumidityPct: 55, VerticalSpaceM: 2,
			LightSource: entities.LightNatural, WidthM: 1, DepthM: 1,
		},
		Crops: []entities.CropPlan{{
			CropID: "Lettuce", TierCount: 6, SeedsPerTier: 25, TotalSeeds: 150,
			WaterLitersPerDay: 4.800000000000001, WaterMethod: entities.WaterSpray,
			LightHoursDaily: 8, LightIntensityLux: 12000,
			Nutrients: []string{"N-P-K 4-2-3", "Iron"}, SpacingCM: 20, HarvestTimeDays: 35,
		}},
		Layout: entities.FarmLayout{TierCount: 6, AreaSqm: 1, GrowingAreaSqm: 6},
		Setup:  []entities.SetupSection{{Title: "Monitoring", Steps: []string{"Check moisture levels every 1-2 days"}}},
	}
	doc := render(t, PageResults, ResultsPage{Plan: plan})

	assert.Equal(t, "Temperate", doc.Find("#zone").Text())
	assert.Equal(t, "6", doc.Find("#tiers").Text())
	card := doc.Find(`.crop-card[data-crop="Lettuce"]`)
	require.Equal(t, 1, card.Length())
	assert.Equal(t, "150", card.Find(".total-seeds").Text())
	assert.Contains(t, card.Text(), "4.8L/day (spray system)")
	assert.Contains(t, card.Text(), "(25 per tier)")
	assert.Contains(t, card.Text(), "N-P-K 4-2-3, Iron")
	assert.Contains(t, card.Text(), "20.0cm between plants")
	assert.Contains(t, doc.Find("#environment").Text(), "Natural sunlight")
	assert.Equal(t, "Check moisture levels every 1-2 days", doc.Find(".setup-instructions li").First().Text())
}

func TestResultsPageZeroTiersAndNoCrops(t *testing.T) {
	plan := entities.FarmingPlan{
		ZoneID: entities.ZoneArid,
		Input:  entities.UserInput{Location: "x", LightSource: entities.LightLED, VerticalSpaceM: 0.29, WidthM: 1, DepthM: 1},
		Crops:  []entities.CropPlan{{CropID: "Thyme", SpacingCM: 25.8}},
	}
	doc := render(t, PageResults, ResultsPage{Plan: plan})
	assert.Contains(t, doc.Find(".crop-card").Text(), "(n/a per tier)")

	plan.Crops = []entities.CropPlan{}
	doc = render(t, PageResults, ResultsPage{Plan: plan})
	assert.Equal(t, 1, doc.Find(".empty").Length())
}

func TestStaticServesStylesheet(t *testing.T) {
	b, err := fs.ReadFile(Static(), "css/styles.css")
	require.NoError(t, err)
	assert.Contains(t, string(b), "--primary")
}
