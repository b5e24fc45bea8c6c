// Package catalog holds the reference tables the planner works from: climate
// zone definitions and crop profiles. A Catalog is validated once on
// construction and is read-only afterwards, so it can be shared freely.
package catalog

import (
	"errors"
	"fmt"

	"github.com/akhilm2223/vertical-farmingg/entities"
)

// DefaultZone is returned by classification when no zone matches.
const DefaultZone = entities.ZoneTemperate

var ErrInvalidCatalog = errors.New("invalid catalog")

type Catalog struct {
	zones     []entities.ClimateZoneDef
	zoneIdx   map[entities.ZoneID]int
	crops     map[entities.CropID]entities.CropProfile
	cropOrder []entities.CropID
}

// New builds a catalog from zones (in classification order) and crop
// profiles. Every violation found is reported in one error wrapping
// ErrInvalidCatalog.
func New(zones []entities.ClimateZoneDef, crops []entities.CropProfile) (*Catalog, error) {
	c := &Catalog{
		zoneIdx: make(map[entities.ZoneID]int, len(zones)),
		crops:   make(map[entities.CropID]entities.CropProfile, len(crops)),
	}
	var errs []error
	for _, p := range crops {
		if _, dup := c.crops[p.ID]; dup {
			errs = append(errs, fmt.Errorf("crop %q defined twice", p.ID))
			continue
		}
		errs = append(errs, checkCrop(p)...)
		c.crops[p.ID] = cloneCrop(p)
		c.cropOrder = append(c.cropOrder, p.ID)
	}
	for _, z := range zones {
		if _, dup := c.zoneIdx[z.ID]; dup {
			errs = append(errs, fmt.Errorf("zone %q defined twice", z.ID))
			continue
		}
		errs = append(errs, c.checkZone(z)...)
		c.zoneIdx[z.ID] = len(c.zones)
		c.zones = append(c.zones, cloneZone(z))
	}
	if len(c.zones) == 0 {
		errs = append(errs, errors.New("no climate zones"))
	} else if _, ok := c.zoneIdx[DefaultZone]; !ok {
		errs = append(errs, fmt.Errorf("default zone %q missing", DefaultZone))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return c, nil
}

// MustNew is New for tables known at compile time.
func MustNew(zones []entities.ClimateZoneDef, crops []entities.CropProfile) *Catalog {
	c, err := New(zones, crops)
	if err != nil {
		panic(err)
	}
	return c
}

func checkCrop(p entities.CropProfile) []error {
	var errs []error
	if p.ID == "" {
		errs = append(errs, errors.New("crop with empty id"))
	}
	positive := []struct {
		name string
		v    float64
	}{
		{"water_daily", p.WaterDailyPerSqm},
		{"seeds_per_sqm", p.SeedDensityPerSqm},
		{"seed_depth_cm", p.SeedDepthCM},
		{"light_hours", p.LightHoursDaily},
		{"light_lux", float64(p.LightIntensityLux)},
		{"harvest_days", float64(p.HarvestTimeDays)},
	}
	for _, f := range positive {
		if f.v <= 0 {
			errs = append(errs, fmt.Errorf("crop %q: %s must be > 0", p.ID, f.name))
		}
	}
	if !p.WaterMethod.Valid() {
		errs = append(errs, fmt.Errorf("crop %q: unknown water method %q", p.ID, p.WaterMethod))
	}
	return errs
}

func (c *Catalog) checkZone(z entities.ClimateZoneDef) []error {
	var errs []error
	if z.ID == "" {
		errs = append(errs, errors.New("zone with empty id"))
	}
	if z.TempRange.Min > z.TempRange.Max {
		errs = append(errs, fmt.Errorf("zone %q: temperature range is inverted", z.ID))
	}
	if z.HumidityRange.Min > z.HumidityRange.Max {
		errs = append(errs, fmt.Errorf("zone %q: humidity range is inverted", z.ID))
	}
	for _, id := range z.EligibleCrops {
		if _, ok := c.crops[id]; !ok {
			errs = append(errs, fmt.Errorf("zone %q references unknown crop %q", z.ID, id))
		}
	}
	return errs
}

func cloneZone(z entities.ClimateZoneDef) entities.ClimateZoneDef {
	z.EligibleCrops = append([]entities.CropID(nil), z.EligibleCrops...)
	return z
}

func cloneCrop(p entities.CropProfile) entities.CropProfile {
	p.Nutrients = append([]string(nil), p.Nutrients...)
	return p
}

// Zone returns a copy of the zone definition.
func (c *Catalog) Zone(id entities.ZoneID) (entities.ClimateZoneDef, bool) {
	i, ok := c.zoneIdx[id]
	if !ok {
		return entities.ClimateZoneDef{}, false
	}
	return cloneZone(c.zones[i]), true
}

// Crop returns a copy of the crop profile.
func (c *Catalog) Crop(id entities.CropID) (entities.CropProfile, bool) {
	p, ok := c.crops[id]
	if !ok {
		return entities.CropProfile{}, false
	}
	return cloneCrop(p), true
}

// Zones returns the zone definitions in classification order.
func (c *Catalog) Zones() []entities.ClimateZoneDef {
	out := make([]entities.ClimateZoneDef, len(c.zones))
	for i, z := range c.zones {
		out[i] = cloneZone(z)
	}
	return out
}

// Crops returns the crop profiles in declaration order.
func (c *Catalog) Crops() []entities.CropProfile {
	out := make([]entities.CropProfile, len(c.cropOrder))
	for i, id := range c.cropOrder {
		out[i] = cloneCrop(c.crops[id])
	}
	return out
}
