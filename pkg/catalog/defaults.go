package catalog

import "github.com/akhilm2223/vertical-farmingg/entities"

var defaultZones = []entities.ClimateZoneDef{
	{
		ID:            entities.ZoneTropical,
		TempRange:     entities.Range{Min: 20, Max: 35},
		HumidityRange: entities.Range{Min: 60, Max: 100},
		EligibleCrops: []entities.CropID{"Basil", "Kale", "Mint", "Spinach", "Lettuce", "Cherry Tomatoes", "Microgreens", "Cilantro"},
	},
	{
		ID:            entities.ZoneArid,
		TempRange:     entities.Range{Min: 25, Max: 45},
		HumidityRange: entities.Range{Min: 10, Max: 30},
		EligibleCrops: []entities.CropID{"Rosemary", "Thyme", "Sage", "Cherry Tomatoes", "Bell Peppers", "Microgreens", "Mint"},
	},
	{
		ID:            entities.ZoneTemperate,
		TempRange:     entities.Range{Min: 10, Max: 25},
		HumidityRange: entities.Range{Min: 40, Max: 70},
		EligibleCrops: []entities.CropID{"Strawberries", "Lettuce", "Spinach", "Kale", "Basil", "Cilantro", "Microgreens", "Arugula"},
	},
	{
		ID:            entities.ZoneCold,
		TempRange:     entities.Range{Min: -10, Max: 10},
		HumidityRange: entities.Range{Min: 30, Max: 70},
		EligibleCrops: []entities.CropID{"Kale", "Spinach", "Lettuce", "Microgreens", "Mint", "Chard", "Parsley"},
	},
}

func crop(id string, water float64, method entities.WaterMethod, seeds, depth, hours float64, lux int, artificial bool, harvest int, nutrients ...string) entities.CropProfile {
	return entities.CropProfile{
		ID:                      entities.CropID(id),
		WaterDailyPerSqm:        water,
		WaterMethod:             method,
		SeedDensityPerSqm:       seeds,
		SeedDepthCM:             depth,
		LightHoursDaily:         hours,
		LightIntensityLux:       lux,
		Nutrients:               nutrients,
		SupportsArtificialLight: artificial,
		HarvestTimeDays:         harvest,
	}
}

var defaultCrops = []entities.CropProfile{
	crop("Basil", 0.5, entities.WaterDrip, 40, 0.6, 6, 15000, true, 28, "N-P-K 3-1-2", "Calcium"),
	crop("Lettuce", 0.8, entities.WaterSpray, 25, 0.3, 8, 12000, true, 35, "N-P-K 4-2-3", "Iron", "Calcium"),
	crop("Spinach", 0.7, entities.WaterDrip, 30, 0.5, 5, 10000, true, 40, "N-P-K 4-1-2", "Iron", "Magnesium"),
	crop("Kale", 0.6, entities.WaterDrip, 20, 0.5, 7, 14000, true, 50, "N-P-K 5-3-3", "Calcium", "Magnesium"),
	crop("Mint", 0.6, entities.WaterSpray, 15, 0.2, 5, 10000, true, 30, "N-P-K 3-1-2", "Iron"),
	crop("Strawberries", 0.9, entities.WaterDrip, 8, 0.5, 10, 20000, true, 60, "N-P-K 2-3-6", "Calcium", "Magnesium"),
	crop("Cherry Tomatoes", 1.0, entities.WaterDrip, 5, 1.0, 12, 25000, false, 75, "N-P-K 5-10-10", "Calcium", "Magnesium", "Sulfur"),
	crop("Bell Peppers", 0.9, entities.WaterDrip, 6, 0.8, 12, 22000, false, 80, "N-P-K 5-10-10", "Calcium", "Magnesium"),
	crop("Microgreens", 0.5, entities.WaterSpray, 150, 0.1, 6, 10000, true, 14, "N-P-K 2-1-2", "Trace minerals"),
	crop("Cilantro", 0.6, entities.WaterSpray, 40, 0.3, 6, 12000, true, 25, "N-P-K 3-1-2", "Calcium"),
	crop("Arugula", 0.7, entities.WaterSpray, 30, 0.3, 6, 12000, true, 30, "N-P-K 3-1-3", "Iron", "Calcium"),
	crop("Rosemary", 0.4, entities.WaterDrip, 10, 0.3, 8, 18000, true, 90, "N-P-K 2-2-2", "Calcium"),
	crop("Thyme", 0.3, entities.WaterDrip, 15, 0.2, 7, 16000, true, 60, "N-P-K 2-2-2", "Iron"),
	crop("Sage", 0.4, entities.WaterDrip, 10, 0.3, 7, 16000, true, 75, "N-P-K 3-1-2", "Calcium"),
	crop("Chard", 0.8, entities.WaterDrip, 20, 0.5, 6, 12000, true, 45, "N-P-K 4-3-3", "Iron", "Magnesium"),
	crop("Parsley", 0.6, entities.WaterSpray, 35, 0.3, 5, 12000, true, 40, "N-P-K 3-1-2", "Iron"),
}

var builtin = MustNew(defaultZones, defaultCrops)

// Default returns the built-in reference tables.
func Default() *Catalog { return builtin }
