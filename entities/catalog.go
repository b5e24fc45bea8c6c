package entities

type ZoneID string

const (
	ZoneTropical  ZoneID = "tropical"
	ZoneArid      ZoneID = "arid"
	ZoneTemperate ZoneID = "temperate"
	ZoneCold      ZoneID = "cold"
)

type CropID string

type WaterMethod string

const (
	WaterDrip  WaterMethod = "drip"
	WaterSpray WaterMethod = "spray"
)

func (m WaterMethod) Valid() bool { return m == WaterDrip || m == WaterSpray }

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

type ClimateZoneDef struct {
	ID            ZoneID   `json:"zone_id"`
	TempRange     Range    `json:"temp_range"`
	HumidityRange Range    `json:"humidity_range"`
	EligibleCrops []CropID `json:"eligible_crops"` // priority order
}

type CropProfile struct {
	ID                      CropID      `json:"crop_id"`
	WaterDailyPerSqm        float64     `json:"water_daily_per_sqm"` // L/m²/day
	WaterMethod             WaterMethod `json:"water_method"`
	SeedDensityPerSqm       float64     `json:"seed_density_per_sqm"`
	SeedDepthCM             float64     `json:"seed_depth_cm"`
	LightHoursDaily         float64     `json:"light_hours_daily"`
	LightIntensityLux       int         `json:"light_intensity_lux"`
	Nutrients               []string    `json:"nutrients"`
	SupportsArtificialLight bool        `json:"supports_artificial_light"`
	HarvestTimeDays         int         `json:"harvest_time_days"`
}
