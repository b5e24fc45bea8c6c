package climate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhilm2223/vertical-farmingg/entities"
	"github.com/akhilm2223/vertical-farmingg/pkg/catalog"
)

func engine() RulesEngine { return New(catalog.Default()) }

func input(space float64, light entities.LightSource) entities.UserInput {
	return entities.UserInput{
		Location:       "Lyon, France",
		AvgTempC:       22,
		HumidityPct:    55,
		VerticalSpaceM: space,
		LightSource:    light,
		WidthM:         1,
		DepthM:         1,
	}
}

func TestClassify(t *testing.T) {
	r := engine()
	cases := []struct {
		name     string
		temp     float64
		humidity float64
		want     entities.ZoneID
	}{
		{"temperate", 22, 55, entities.ZoneTemperate},
		// 22/60 is on tropical's lower humidity bound; tropical is declared first
		{"tropical humidity bound", 22, 60, entities.ZoneTropical},
		{"tropical", 30, 80, entities.ZoneTropical},
		{"arid", 35, 20, entities.ZoneArid},
		{"cold", 0, 50, entities.ZoneCold},
		{"inclusive bounds", -10, 70, entities.ZoneCold},
		// 25/60 sits in tropical and temperate; tropical is declared first
		{"overlap tropical wins", 25, 60, entities.ZoneTropical},
		// 10/50 sits in temperate and cold; temperate is declared first
		{"overlap temperate wins", 10, 50, entities.ZoneTemperate},
		{"no match falls back", 50, 95, entities.ZoneTemperate},
		{"extreme cold falls back", -45, 5, entities.ZoneTemperate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Classify(tc.temp, tc.humidity))
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	r := engine()
	known := map[entities.ZoneID]bool{}
	for _, z := range catalog.Default().Zones() {
		known[z.ID] = true
	}
	for temp := -50.0; temp <= 60; temp += 2.5 {
		for hum := 0.0; hum <= 100; hum += 5 {
			assert.True(t, known[r.Classify(temp, hum)], "temp=%v humidity=%v", temp, hum)
		}
	}
}

func isSubsequence(sub, seq []entities.CropID) bool {
	i := 0
	for _, v := range seq {
		if i < len(sub) && sub[i] == v {
			i++
		}
	}
	return i == len(sub)
}

func TestSelectCropsProperties(t *testing.T) {
	r := engine()
	cat := catalog.Default()
	for _, z := range cat.Zones() {
		for _, light := range entities.LightSources {
			got := r.SelectCrops(z.ID, light)
			assert.LessOrEqual(t, len(got), MaxRecommendations)
			assert.True(t, isSubsequence(got, z.EligibleCrops), "%s/%s: %v", z.ID, light, got)
			if light.ArtificialOnly() {
				for _, id := range got {
					p, _ := cat.Crop(id)
					assert.True(t, p.SupportsArtificialLight, "%s/%s: %s", z.ID, light, id)
				}
			}
		}
	}
}

func TestSelectCropsTemperateNatural(t *testing.T) {
	got := engine().SelectCrops(entities.ZoneTemperate, entities.LightNatural)
	assert.Equal(t, []entities.CropID{"Strawberries", "Lettuce", "Spinach"}, got)
}

func TestSelectCropsAridLED(t *testing.T) {
	r := engine()
	got := r.SelectCrops(entities.ZoneArid, entities.LightLED)
	assert.Equal(t, []entities.CropID{"Rosemary", "Thyme", "Sage"}, got)
	assert.NotContains(t, got, entities.CropID("Bell Peppers"))

	// mixed light keeps the sunlight-only crops in play
	assert.Equal(t, got, r.SelectCrops(entities.ZoneArid, entities.LightMixed))
}

func TestSelectCropsShortAndEmptyLists(t *testing.T) {
	zones := []entities.ClimateZoneDef{
		{ID: entities.ZoneTemperate, TempRange: entities.Range{Min: 10, Max: 25}, HumidityRange: entities.Range{Min: 40, Max: 70},
			EligibleCrops: []entities.CropID{"Cherry Tomatoes", "Bell Peppers", "Lettuce"}},
		{ID: entities.ZoneArid, TempRange: entities.Range{Min: 25, Max: 45}, HumidityRange: entities.Range{Min: 10, Max: 30},
			EligibleCrops: []entities.CropID{"Bell Peppers"}},
	}
	var crops []entities.CropProfile
	for _, id := range []entities.CropID{"Cherry Tomatoes", "Bell Peppers", "Lettuce"} {
		p, _ := catalog.Default().Crop(id)
		crops = append(crops, p)
	}
	r := New(catalog.MustNew(zones, crops))

	assert.Equal(t, []entities.CropID{"Lettuce"}, r.SelectCrops(entities.ZoneTemperate, entities.LightFluorescent))
	got := r.SelectCrops(entities.ZoneArid, entities.LightLED)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	// unknown zone ids resolve to the default zone
	assert.Equal(t, []entities.CropID{"Lettuce"}, r.SelectCrops("polar", entities.LightLED))
}

func TestTierCount(t *testing.T) {
	assert.Equal(t, 6, TierCount(2))
	assert.Equal(t, 0, TierCount(0.29))
	assert.Equal(t, 1, TierCount(0.3))
	assert.Equal(t, 3, TierCount(0.9))
}

func TestComputeLettuceScenario(t *testing.T) {
	r := engine()
	in := input(2, entities.LightNatural)
	ids := r.SelectCrops(r.Classify(in.AvgTempC, in.HumidityPct), in.LightSource)
	plans := r.Compute(ids, in)
	require.Len(t, plans, 3)

	lettuce := plans[1]
	assert.Equal(t, entities.CropID("Lettuce"), lettuce.CropID)
	assert.Equal(t, 6, lettuce.TierCount)
	assert.Equal(t, 25, lettuce.SeedsPerTier)
	assert.Equal(t, 150, lettuce.TotalSeeds)
	assert.InDelta(t, 4.8, lettuce.WaterLitersPerDay, 1e-9)
	assert.InDelta(t, 20.0, lettuce.SpacingCM, 1e-9)
	assert.Equal(t, entities.WaterSpray, lettuce.WaterMethod)
	assert.Equal(t, 8.0, lettuce.LightHoursDaily)
	assert.Equal(t, 12000, lettuce.LightIntensityLux)
	assert.Equal(t, []string{"N-P-K 4-2-3", "Iron", "Calcium"}, lettuce.Nutrients)
	assert.Equal(t, 35, lettuce.HarvestTimeDays)

	for _, p := range plans {
		assert.Equal(t, 6, p.TierCount)
	}
}

func TestComputeRoundsSeedsUp(t *testing.T) {
	in := input(0.6, entities.LightNatural)
	in.WidthM, in.DepthM = 0.5, 0.5
	plans := engine().Compute([]entities.CropID{"Strawberries", "Cherry Tomatoes"}, in)
	require.Len(t, plans, 2)
	// 8 seeds/m² over 0.25 m² is exactly 2; 5 seeds/m² is 1.25 and rounds up
	assert.Equal(t, 2, plans[0].SeedsPerTier)
	assert.Equal(t, 4, plans[0].TotalSeeds)
	assert.Equal(t, 2, plans[1].SeedsPerTier)
	assert.Equal(t, 4, plans[1].TotalSeeds)
	assert.InDelta(t, 0.5, plans[1].WaterLitersPerDay, 1e-9)
	assert.InDelta(t, 44.72135955, plans[1].SpacingCM, 1e-6)
}

func TestComputeZeroTiers(t *testing.T) {
	r := engine()
	plans := r.Compute([]entities.CropID{"Lettuce", "Basil"}, input(0.29, entities.LightNatural))
	require.Len(t, plans, 2)
	for _, p := range plans {
		assert.Equal(t, 0, p.TierCount)
		assert.Equal(t, 0, p.TotalSeeds)
		assert.Equal(t, 0, p.SeedsPerTier)
		assert.Equal(t, 0.0, p.WaterLitersPerDay)
		assert.Greater(t, p.SpacingCM, 0.0)
	}
}

func TestComputePreservesOrder(t *testing.T) {
	ids := []entities.CropID{"Parsley", "Basil", "Durian", "Kale"}
	plans := engine().Compute(ids, input(1, entities.LightMixed))
	require.Len(t, plans, len(ids))
	for i := range ids {
		assert.Equal(t, ids[i], plans[i].CropID)
	}
	assert.Equal(t, 0, plans[2].TotalSeeds)
	assert.Empty(t, engine().Compute(nil, input(1, entities.LightMixed)))
}

func TestComputeDoesNotShareNutrients(t *testing.T) {
	r := engine()
	in := input(2, entities.LightNatural)
	first := r.Compute([]entities.CropID{"Kale"}, in)
	first[0].Nutrients[0] = "changed"
	second := r.Compute([]entities.CropID{"Kale"}, in)
	assert.Equal(t, "N-P-K 5-3-3", second[0].Nutrients[0])
}

func TestLayout(t *testing.T) {
	in := input(2, entities.LightNatural)
	in.WidthM, in.DepthM = 2, 1.5
	l := engine().Layout(in)
	assert.Equal(t, 6, l.TierCount)
	assert.InDelta(t, 3.0, l.AreaSqm, 1e-9)
	assert.InDelta(t, 18.0, l.GrowingAreaSqm, 1e-9)
}
