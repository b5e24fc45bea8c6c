package entities

import "time"

// ZoneRow is the stored form of a ClimateZoneDef. Position keeps the
// classification order.
type ZoneRow struct {
	ZoneID      string   `gorm:"primaryKey" json:"zone_id"`
	Position    int      `gorm:"index" json:"position"`
	TempMin     float64  `json:"temp_min"`
	TempMax     float64  `json:"temp_max"`
	HumidityMin float64  `json:"humidity_min"`
	HumidityMax float64  `json:"humidity_max"`
	Crops       []string `gorm:"serializer:json" json:"crops"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ZoneRow) TableName() string { return "climate_zones" }

type CropRow struct {
	CropID      string   `gorm:"primaryKey" json:"crop_id"`
	Position    int      `gorm:"index" json:"position"`
	WaterDaily  float64  `json:"water_daily"`
	WaterMethod string   `json:"water_method"`
	SeedsPerSqm float64  `json:"seeds_per_sqm"`
	SeedDepthCM float64  `json:"seed_depth_cm"`
	LightHours  float64  `json:"light_hours"`
	LightLux    int      `json:"light_lux"`
	Nutrients   []string `gorm:"serializer:json" json:"nutrients"`
	Artificial  bool     `json:"artificial"`
	HarvestDays int      `json:"harvest_days"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CropRow) TableName() string { return "crop_profiles" }

func NewZoneRow(pos int, d ClimateZoneDef) ZoneRow {
	crops := make([]string, len(d.EligibleCrops))
	for i, c := range d.EligibleCrops {
		crops[i] = string(c)
	}
	return ZoneRow{
		ZoneID: string(d.ID), Position: pos,
		TempMin: d.TempRange.Min, TempMax: d.TempRange.Max,
		HumidityMin: d.HumidityRange.Min, HumidityMax: d.HumidityRange.Max,
		Crops: crops,
	}
}

func (r ZoneRow) Def() ClimateZoneDef {
	crops := make([]CropID, len(r.Crops))
	for i, c := range r.Crops {
		crops[i] = CropID(c)
	}
	return ClimateZoneDef{
		ID:            ZoneID(r.ZoneID),
		TempRange:     Range{Min: r.TempMin, Max: r.TempMax},
		HumidityRange: Range{Min: r.HumidityMin, Max: r.HumidityMax},
		EligibleCrops: crops,
	}
}

func NewCropRow(pos int, p CropProfile) CropRow {
	return CropRow{
		CropID: string(p.ID), Position: pos,
		WaterDaily: p.WaterDailyPerSqm, WaterMethod: string(p.WaterMethod),
		SeedsPerSqm: p.SeedDensityPerSqm, SeedDepthCM: p.SeedDepthCM,
		LightHours: p.LightHoursDaily, LightLux: p.LightIntensityLux,
		Nutrients:   append([]string(nil), p.Nutrients...),
		Artificial:  p.SupportsArtificialLight,
		HarvestDays: p.HarvestTimeDays,
	}
}

func (r CropRow) Profile() CropProfile {
	return CropProfile{
		ID:                      CropID(r.CropID),
		WaterDailyPerSqm:        r.WaterDaily,
		WaterMethod:             WaterMethod(r.WaterMethod),
		SeedDensityPerSqm:       r.SeedsPerSqm,
		SeedDepthCM:             r.SeedDepthCM,
		LightHoursDaily:         r.LightHours,
		LightIntensityLux:       r.LightLux,
		Nutrients:               append([]string(nil), r.Nutrients...),
		SupportsArtificialLight: r.Artificial,
		HarvestTimeDays:         r.HarvestDays,
	}
}
