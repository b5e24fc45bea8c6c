package climate

import (
	"fmt"

	"github.com/akhilm2223/vertical-farmingg/entities"
	"github.com/akhilm2223/vertical-farmingg/pkg/catalog"
)

var climateControl = map[entities.ZoneID][]string{
	entities.ZoneTropical: {
		"Install good ventilation to prevent mold in high humidity",
		"Consider a dehumidifier if indoor humidity exceeds 80%",
		"Use shade cloth to reduce light intensity during peak hours",
		"Install fans to keep air moving around plants",
		"Monitor for pests common in tropical environments",
	},
	entities.ZoneArid: {
		"Use humidity trays or a humidifier to increase local humidity",
		"Install shade cloth to reduce light intensity and heat",
		"Consider adding a misting system on timers",
		"Use water-retaining growing medium",
		"Install thermal insulation to maintain cooler temperatures",
	},
	entities.ZoneTemperate: {
		"Maintain moderate humidity levels (40-60%)",
		"Ensure good air circulation around plants",
		"Provide supplemental lighting during darker months",
		"Consider heating mats for germination during colder seasons",
		"Rotate crops seasonally for best results",
	},
	entities.ZoneCold: {
		"Provide insulation around the structure",
		"Use heat mats under seedlings for germination",
		"Install LED lights that don't generate excessive heat",
		"Consider a small space heater with thermostat",
		"Focus on cold-tolerant crops during winter months",
	},
}

var lighting = map[entities.LightSource][]string{
	entities.LightLED: {
		"Install LED grow lights 30-45cm above each tier",
		"Use a timer to provide the recommended light hours",
		"Position lights to provide even coverage",
	},
	entities.LightFluorescent: {
		"Mount fluorescent fixtures 15-20cm above plants",
		"Use full-spectrum bulbs for vegetative growth",
		"Install reflectors to maximize light efficiency",
	},
}

// Advise returns the setup checklist for a farm. The lighting section is
// only present for fully artificial light.
func (r *rules) Advise(zone entities.ZoneID, in entities.UserInput) []entities.SetupSection {
	tiers := TierCount(in.VerticalSpaceM)
	out := []entities.SetupSection{
		{Title: "Structure Setup", Steps: []string{
			fmt.Sprintf("Build %d tiers with strong shelving", tiers),
			"Ensure each tier can hold at least 10kg/m²",
			"Use waterproof material for shelving",
			"Consider installing adjustable shelving for flexibility",
		}},
		{Title: "Irrigation System", Steps: []string{
			"Install a main water reservoir at the base",
			"Set up a pump with timer for automation",
			"Use drip irrigation lines for each tier",
			"Consider a water recycling system to collect runoff",
			"Install a water quality monitor if possible",
		}},
	}
	if steps, ok := lighting[in.LightSource]; ok {
		out = append(out, entities.SetupSection{Title: "Lighting", Steps: copyStrings(steps)})
	}
	cc, ok := climateControl[zone]
	if !ok {
		cc = climateControl[catalog.DefaultZone]
	}
	out = append(out,
		entities.SetupSection{Title: "Climate Control", Steps: copyStrings(cc)},
		entities.SetupSection{Title: "Monitoring", Steps: []string{
			"Check moisture levels every 1-2 days",
			"Measure pH of irrigation water weekly (target: 5.5-6.5)",
			"Monitor plant health and adjust nutrients as needed",
		}},
		entities.SetupSection{Title: "Maintenance Schedule", Steps: []string{
			"Clean the system thoroughly between crop cycles",
			"Sanitize irrigation lines monthly",
			"Replace growing medium as recommended for each crop",
			"Rotate crops to prevent disease buildup",
		}},
	)
	return out
}

func copyStrings(ss []string) []string { return append([]string(nil), ss...) }
