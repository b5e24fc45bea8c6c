package climate

import (
	"math"

	"github.com/akhilm2223/vertical-farmingg/entities"
	"github.com/akhilm2223/vertical-farmingg/pkg/catalog"
)

const (
	// TierHeightM is the vertical room one growing level takes.
	TierHeightM = 0.3
	// MaxRecommendations caps the crops suggested per plan.
	MaxRecommendations = 3
)

type RulesEngine interface {
	Classify(tempC, humidityPct float64) entities.ZoneID
	SelectCrops(zone entities.ZoneID, light entities.LightSource) []entities.CropID
	Compute(crops []entities.CropID, in entities.UserInput) []entities.CropPlan
	Layout(in entities.UserInput) entities.FarmLayout
	Advise(zone entities.ZoneID, in entities.UserInput) []entities.SetupSection
}

type rules struct {
	cat *catalog.Catalog
}

func New(cat *catalog.Catalog) RulesEngine { return &rules{cat: cat} }

// TierCount is how many tiers fit in the given height. It may be 0.
func TierCount(verticalSpaceM float64) int {
	return int(math.Floor(verticalSpaceM / TierHeightM))
}

// Classify returns the first zone, in catalog order, whose ranges contain
// both readings, falling back to the default zone.
func (r *rules) Classify(tempC, humidityPct float64) entities.ZoneID {
	for _, z := range r.cat.Zones() {
		if z.TempRange.Contains(tempC) && z.HumidityRange.Contains(humidityPct) {
			return z.ID
		}
	}
	return catalog.DefaultZone
}

// SelectCrops keeps the zone's priority order. Light sources with no
// sunlight drop crops that cannot grow under artificial light.
func (r *rules) SelectCrops(zone entities.ZoneID, light entities.LightSource) []entities.CropID {
	z, ok := r.cat.Zone(zone)
	if !ok {
		z, _ = r.cat.Zone(catalog.DefaultZone)
	}
	out := make([]entities.CropID, 0, MaxRecommendations)
	for _, id := range z.EligibleCrops {
		if len(out) == MaxRecommendations {
			break
		}
		if light.ArtificialOnly() {
			p, ok := r.cat.Crop(id)
			if !ok || !p.SupportsArtificialLight {
				continue
			}
		}
		out = append(out, id)
	}
	return out
}

func (r *rules) Compute(crops []entities.CropID, in entities.UserInput) []entities.CropPlan {
	area := in.WidthM * in.DepthM
	tiers := TierCount(in.VerticalSpaceM)

	out := make([]entities.CropPlan, 0, len(crops))
	for _, id := range crops {
		p, ok := r.cat.Crop(id)
		if !ok {
			out = append(out, entities.CropPlan{CropID: id, TierCount: tiers})
			continue
		}
		seedsPerTier := int(math.Ceil(p.SeedDensityPerSqm * area))
		cp := entities.CropPlan{
			CropID:            id,
			TierCount:         tiers,
			TotalSeeds:        seedsPerTier * tiers,
			WaterLitersPerDay: p.WaterDailyPerSqm * area * float64(tiers),
			WaterMethod:       p.WaterMethod,
			LightHoursDaily:   p.LightHoursDaily,
			LightIntensityLux: p.LightIntensityLux,
			Nutrients:         p.Nutrients,
			SpacingCM:         math.Sqrt(10000 / p.SeedDensityPerSqm),
			HarvestTimeDays:   p.HarvestTimeDays,
		}
		if tiers > 0 {
			cp.SeedsPerTier = seedsPerTier
		}
		out = append(out, cp)
	}
	return out
}

func (r *rules) Layout(in entities.UserInput) entities.FarmLayout {
	area := in.WidthM * in.DepthM
	tiers := TierCount(in.VerticalSpaceM)
	return entities.FarmLayout{
		TierCount:      tiers,
		AreaSqm:        area,
		GrowingAreaSqm: area * float64(tiers),
	}
}
