package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/akhilm2223/vertical-farmingg/entities"
)

// Workbook sheet names.
const (
	SheetZones = "Zones"
	SheetCrops = "Crops"
)

// list cells hold several values separated by listSep
const listSep = ";"

var (
	zoneHeader = []string{"Zone", "TempMin", "TempMax", "HumidityMin", "HumidityMax", "Crops"}
	cropHeader = []string{"Crop", "WaterDaily", "WaterMethod", "SeedsPerSqm", "SeedDepthCM", "LightHours", "LightLux", "Nutrients", "Artificial", "HarvestDays"}
)

func normHeader(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

type header map[string]int

func newHeader(row []string) header {
	h := header{}
	for i, c := range row {
		h[normHeader(c)] = i
	}
	return h
}

// find returns the column of the first alias present, or -1.
func (h header) find(keys ...string) int {
	for _, k := range keys {
		if idx, ok := h[normHeader(k)]; ok {
			return idx
		}
	}
	return -1
}

// record reads typed cells from one data row and keeps the first error.
type record struct {
	table string
	line  int
	cells []string
	err   error
}

func (r *record) str(idx int) string {
	if idx < 0 || idx >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[idx])
}

func (r *record) fail(col string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("%s row %d: %s: %w", r.table, r.line, col, err)
	}
}

func (r *record) floatCell(idx int, col string) float64 {
	v, err := strconv.ParseFloat(r.str(idx), 64)
	if err != nil {
		r.fail(col, err)
	}
	return v
}

func (r *record) intCell(idx int, col string) int {
	v, err := strconv.Atoi(r.str(idx))
	if err != nil {
		f, ferr := strconv.ParseFloat(r.str(idx), 64)
		if ferr != nil || f != float64(int(f)) {
			r.fail(col, err)
			return 0
		}
		v = int(f)
	}
	return v
}

func (r *record) boolCell(idx int, col string) bool {
	v, err := strconv.ParseBool(r.str(idx))
	if err != nil {
		r.fail(col, err)
	}
	return v
}

func (r *record) list(idx int) []string {
	var out []string
	for _, p := range strings.Split(r.str(idx), listSep) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func missingColumns(table string, head []string, cols map[string]int) error {
	var missing []string
	for name, idx := range cols {
		if idx == -1 {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%s table missing required columns %v (found headers: %v)", table, missing, head)
}

func parseZones(rows [][]string) ([]entities.ClimateZoneDef, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("zones table is empty")
	}
	h := newHeader(rows[0])
	cID := h.find("Zone", "zone_id", "id", "name")
	cTMin := h.find("TempMin", "temp_min", "min_temp", "temperature_min")
	cTMax := h.find("TempMax", "temp_max", "max_temp", "temperature_max")
	cHMin := h.find("HumidityMin", "humidity_min", "min_humidity")
	cHMax := h.find("HumidityMax", "humidity_max", "max_humidity")
	cCrops := h.find("Crops", "eligible_crops", "crop_list")
	if err := missingColumns("zones", rows[0], map[string]int{
		"Zone": cID, "TempMin": cTMin, "TempMax": cTMax,
		"HumidityMin": cHMin, "HumidityMax": cHMax, "Crops": cCrops,
	}); err != nil {
		return nil, err
	}

	var out []entities.ClimateZoneDef
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		r := &record{table: "zones", line: i + 2, cells: row}
		z := entities.ClimateZoneDef{
			ID:            entities.ZoneID(strings.ToLower(r.str(cID))),
			TempRange:     entities.Range{Min: r.floatCell(cTMin, "TempMin"), Max: r.floatCell(cTMax, "TempMax")},
			HumidityRange: entities.Range{Min: r.floatCell(cHMin, "HumidityMin"), Max: r.floatCell(cHMax, "HumidityMax")},
		}
		for _, c := range r.list(cCrops) {
			z.EligibleCrops = append(z.EligibleCrops, entities.CropID(c))
		}
		if r.err != nil {
			return nil, r.err
		}
		out = append(out, z)
	}
	return out, nil
}

func parseCrops(rows [][]string) ([]entities.CropProfile, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("crops table is empty")
	}
	h := newHeader(rows[0])
	cID := h.find("Crop", "crop_id", "id", "name")
	cWater := h.find("WaterDaily", "water_daily", "water", "water_per_sqm")
	cMethod := h.find("WaterMethod", "water_method", "method", "irrigation")
	cSeeds := h.find("SeedsPerSqm", "seeds_per_sqm", "per_sqm", "seed_density")
	cDepth := h.find("SeedDepthCM", "seed_depth_cm", "seed_depth", "depth")
	cHours := h.find("LightHours", "light_hours", "light_daily", "light_hours_daily")
	cLux := h.find("LightLux", "light_lux", "lux", "light_intensity")
	cNut := h.find("Nutrients", "nutrient", "fertilizer")
	cArt := h.find("Artificial", "supports_artificial_light", "artificial_light")
	cHarvest := h.find("HarvestDays", "harvest_days", "harvest_time", "harvest")
	if err := missingColumns("crops", rows[0], map[string]int{
		"Crop": cID, "WaterDaily": cWater, "WaterMethod": cMethod, "SeedsPerSqm": cSeeds,
		"SeedDepthCM": cDepth, "LightHours": cHours, "LightLux": cLux,
		"Artificial": cArt, "HarvestDays": cHarvest,
	}); err != nil {
		return nil, err
	}

	var out []entities.CropProfile
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		r := &record{table: "crops", line: i + 2, cells: row}
		p := entities.CropProfile{
			ID:                      entities.CropID(r.str(cID)),
			WaterDailyPerSqm:        r.floatCell(cWater, "WaterDaily"),
			WaterMethod:             entities.WaterMethod(strings.ToLower(r.str(cMethod))),
			SeedDensityPerSqm:       r.floatCell(cSeeds, "SeedsPerSqm"),
			SeedDepthCM:             r.floatCell(cDepth, "SeedDepthCM"),
			LightHoursDaily:         r.floatCell(cHours, "LightHours"),
			LightIntensityLux:       r.intCell(cLux, "LightLux"),
			Nutrients:               r.list(cNut),
			SupportsArtificialLight: r.boolCell(cArt, "Artificial"),
			HarvestTimeDays:         r.intCell(cHarvest, "HarvestDays"),
		}
		if r.err != nil {
			return nil, r.err
		}
		out = append(out, p)
	}
	return out, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

// LoadCSV reads the zone and crop tables from two CSV files and validates
// them.
func LoadCSV(zonesPath, cropsPath string) (*Catalog, error) {
	zrows, err := readCSV(zonesPath)
	if err != nil {
		return nil, fmt.Errorf("read zones csv: %w", err)
	}
	crows, err := readCSV(cropsPath)
	if err != nil {
		return nil, fmt.Errorf("read crops csv: %w", err)
	}
	return fromRows(zrows, crows)
}

// LoadWorkbook reads the Zones and Crops sheets of an XLSX workbook.
func LoadWorkbook(path string) (*Catalog, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer x.Close()

	zrows, err := x.GetRows(SheetZones)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", SheetZones, err)
	}
	crows, err := x.GetRows(SheetCrops)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", SheetCrops, err)
	}
	return fromRows(zrows, crows)
}

func fromRows(zrows, crows [][]string) (*Catalog, error) {
	crops, err := parseCrops(crows)
	if err != nil {
		return nil, err
	}
	zones, err := parseZones(zrows)
	if err != nil {
		return nil, err
	}
	return New(zones, crops)
}

// WriteWorkbook saves the catalog as an XLSX workbook readable by
// LoadWorkbook.
func WriteWorkbook(c *Catalog, path string) error {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", SheetZones); err != nil {
		return err
	}
	if _, err := x.NewSheet(SheetCrops); err != nil {
		return err
	}

	zrows := [][]any{toAny(zoneHeader)}
	for _, z := range c.Zones() {
		crops := make([]string, len(z.EligibleCrops))
		for i, id := range z.EligibleCrops {
			crops[i] = string(id)
		}
		zrows = append(zrows, []any{
			string(z.ID), z.TempRange.Min, z.TempRange.Max,
			z.HumidityRange.Min, z.HumidityRange.Max, strings.Join(crops, listSep),
		})
	}
	crows := [][]any{toAny(cropHeader)}
	for _, p := range c.Crops() {
		crows = append(crows, []any{
			string(p.ID), p.WaterDailyPerSqm, string(p.WaterMethod), p.SeedDensityPerSqm,
			p.SeedDepthCM, p.LightHoursDaily, p.LightIntensityLux,
			strings.Join(p.Nutrients, listSep), strconv.FormatBool(p.SupportsArtificialLight), p.HarvestTimeDays,
		})
	}
	if err := writeSheet(x, SheetZones, zrows); err != nil {
		return err
	}
	if err := writeSheet(x, SheetCrops, crows); err != nil {
		return err
	}
	if err := x.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSheet(x *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
