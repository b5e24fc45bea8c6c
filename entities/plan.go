package entities

type CropPlan struct {
	CropID            CropID      `json:"crop_id"`
	TierCount         int         `json:"tier_count"`
	SeedsPerTier      int         `json:"seeds_per_tier"` // 0 when TierCount is 0
	TotalSeeds        int         `json:"total_seeds"`
	WaterLitersPerDay float64     `json:"water_liters_per_day"`
	WaterMethod       WaterMethod `json:"water_method"`
	LightHoursDaily   float64     `json:"light_hours_daily"`
	LightIntensityLux int         `json:"light_intensity_lux"`
	Nutrients         []string    `json:"nutrients"`
	SpacingCM         float64     `json:"spacing_cm"`
	HarvestTimeDays   int         `json:"harvest_time_days"`
}

type FarmLayout struct {
	TierCount      int     `json:"tier_count"`
	AreaSqm        float64 `json:"area_sqm"`
	GrowingAreaSqm float64 `json:"growing_area_sqm"` // area across all tiers
}

type SetupSection struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

type FarmingPlan struct {
	ZoneID ZoneID         `json:"zone_id"`
	Input  UserInput      `json:"input"`
	Crops  []CropPlan     `json:"crops"`
	Layout FarmLayout     `json:"layout"`
	Setup  []SetupSection `json:"setup,omitempty"`
}
